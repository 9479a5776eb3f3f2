package eventservices

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

const snapTradeAPIPrefix = "/api/v1"

type SnapTradeClient struct {
	client      *resty.Client
	clientID    string
	consumerKey string
	userID      string
	userSecret  string
	now         func() time.Time
}

type SnapTradeConfig struct {
	BaseURL     string
	ClientID    string
	ConsumerKey string
	UserID      string
	UserSecret  string
	Timeout     time.Duration
}

func NewSnapTradeClient(config SnapTradeConfig) *SnapTradeClient {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &SnapTradeClient{
		client:      client,
		clientID:    config.ClientID,
		consumerKey: config.ConsumerKey,
		userID:      config.UserID,
		userSecret:  config.UserSecret,
		now:         time.Now,
	}
}

type snapTradeSignaturePayload struct {
	Content interface{} `json:"content"`
	Path    string      `json:"path"`
	Query   string      `json:"query"`
}

// sign returns the base64 HMAC-SHA256 of the request path and query, keyed by the consumer key.
// The query is signed verbatim, so the payload must not HTML-escape '&'.
func (c *SnapTradeClient) sign(path, query string) (string, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(snapTradeSignaturePayload{
		Content: nil,
		Path:    path,
		Query:   query,
	}); err != nil {
		return "", fmt.Errorf("SnapTradeClient: sign: failed to encode payload: %w", err)
	}

	payload := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	mac := hmac.New(sha256.New, []byte(url.QueryEscape(c.consumerKey)))
	mac.Write(payload)

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

func (c *SnapTradeClient) get(ctx context.Context, path string, params map[string]string, result interface{}) error {
	ctx, span := otel.Tracer("SnapTradeClient").Start(ctx, "SnapTradeClient.get")
	defer span.End()

	span.SetAttributes(attribute.String("path", path))

	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}

	query.Set("clientId", c.clientID)
	query.Set("timestamp", strconv.FormatInt(c.now().Unix(), 10))
	query.Set("userId", c.userID)
	query.Set("userSecret", c.userSecret)

	encodedQuery := query.Encode()
	fullPath := snapTradeAPIPrefix + path

	signature, err := c.sign(fullPath, encodedQuery)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Signature", signature).
		SetQueryString(encodedQuery).
		SetResult(result).
		Get(fullPath)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("SnapTradeClient: GET %s: %w", path, err)
	}

	if resp.IsError() {
		err := snapTradeStatusError(resp.StatusCode(), resp.String())
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("SnapTradeClient: GET %s: %w", path, err)
	}

	log.WithContext(ctx).Debugf("SnapTradeClient: GET %s: %s", path, resp.Status())

	return nil
}

func snapTradeStatusError(statusCode int, body string) error {
	status := http.StatusBadGateway
	if statusCode == http.StatusNotFound {
		status = http.StatusNotFound
	}

	return eventmodels.NewWebError(status, fmt.Sprintf("brokerage returned status %d", statusCode), errors.New(body))
}

func (c *SnapTradeClient) FetchAccounts(ctx context.Context) ([]eventmodels.BrokerageAccount, error) {
	var dtos []eventmodels.SnapTradeAccountDTO
	if err := c.get(ctx, "/accounts", nil, &dtos); err != nil {
		return nil, fmt.Errorf("FetchAccounts: %w", err)
	}

	accounts := make([]eventmodels.BrokerageAccount, 0, len(dtos))
	for _, dto := range dtos {
		accounts = append(accounts, dto.ToModel())
	}

	return accounts, nil
}

// FetchStockHoldings returns the equity positions of an account. Records without a symbol are dropped.
func (c *SnapTradeClient) FetchStockHoldings(ctx context.Context, accountID string) ([]eventmodels.StockHolding, error) {
	var dtos []eventmodels.SnapTradePositionDTO
	if err := c.get(ctx, fmt.Sprintf("/accounts/%s/positions", url.PathEscape(accountID)), nil, &dtos); err != nil {
		return nil, fmt.Errorf("FetchStockHoldings: %w", err)
	}

	holdings := make([]eventmodels.StockHolding, 0, len(dtos))
	for _, dto := range dtos {
		holding, ok := dto.ToModel()
		if !ok {
			log.Warnf("FetchStockHoldings: skipping position without symbol in account %s", accountID)
			continue
		}

		holdings = append(holdings, holding)
	}

	return holdings, nil
}

func (c *SnapTradeClient) FetchOptionPositions(ctx context.Context, accountID string) ([]eventmodels.OptionPosition, error) {
	var dtos []eventmodels.SnapTradeOptionPositionDTO
	if err := c.get(ctx, fmt.Sprintf("/accounts/%s/options", url.PathEscape(accountID)), nil, &dtos); err != nil {
		return nil, fmt.Errorf("FetchOptionPositions: %w", err)
	}

	positions := make([]eventmodels.OptionPosition, 0, len(dtos))
	for _, dto := range dtos {
		positions = append(positions, dto.ToModel())
	}

	return positions, nil
}

// FetchActivities returns account transactions. Empty dates are left out of the query.
func (c *SnapTradeClient) FetchActivities(ctx context.Context, accountID, startDate, endDate string) ([]eventmodels.AccountActivity, error) {
	params := map[string]string{
		"accounts": accountID,
	}

	if startDate != "" {
		params["startDate"] = startDate
	}

	if endDate != "" {
		params["endDate"] = endDate
	}

	var dtos []eventmodels.SnapTradeActivityDTO
	if err := c.get(ctx, "/activities", params, &dtos); err != nil {
		return nil, fmt.Errorf("FetchActivities: %w", err)
	}

	activities := make([]eventmodels.AccountActivity, 0, len(dtos))
	for _, dto := range dtos {
		activities = append(activities, dto.ToModel())
	}

	return activities, nil
}
