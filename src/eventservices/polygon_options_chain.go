package eventservices

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

const optionsChainPageLimit = 250

type OptionsChainFetcher interface {
	FetchOptionsChain(ctx context.Context, query eventmodels.OptionsChainQuery) ([]eventmodels.OptionChainContract, error)
}

type listOptionsChainFunc func(ctx context.Context, params *models.ListOptionsChainParams) ([]models.OptionContractSnapshot, error)

// PolygonOptionsChainFetcher reads option chain snapshots and caches each query for a few minutes.
type PolygonOptionsChainFetcher struct {
	list  listOptionsChainFunc
	cache *cache.Cache
}

func NewPolygonOptionsChainFetcher(apiKey string) *PolygonOptionsChainFetcher {
	client := polygon.New(apiKey)

	return newPolygonOptionsChainFetcher(func(ctx context.Context, params *models.ListOptionsChainParams) ([]models.OptionContractSnapshot, error) {
		iter := client.ListOptionsChainSnapshot(ctx, params)

		var snapshots []models.OptionContractSnapshot
		for iter.Next() {
			snapshots = append(snapshots, iter.Item())
		}

		if err := iter.Err(); err != nil {
			return nil, err
		}

		return snapshots, nil
	})
}

func newPolygonOptionsChainFetcher(list listOptionsChainFunc) *PolygonOptionsChainFetcher {
	return &PolygonOptionsChainFetcher{
		list:  list,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (f *PolygonOptionsChainFetcher) FetchOptionsChain(ctx context.Context, query eventmodels.OptionsChainQuery) ([]eventmodels.OptionChainContract, error) {
	ctx, span := otel.Tracer("PolygonOptionsChainFetcher").Start(ctx, "PolygonOptionsChainFetcher.FetchOptionsChain")
	defer span.End()

	span.SetAttributes(
		attribute.String("underlying", query.Underlying.String()),
		attribute.String("option_type", string(query.OptionType)),
	)

	if err := query.Validate(); err != nil {
		return nil, eventmodels.NewWebError(400, "invalid options chain query", err)
	}

	if cached, found := f.cache.Get(query.CacheKey()); found {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached.([]eventmodels.OptionChainContract), nil
	}

	params, err := newListOptionsChainParams(query)
	if err != nil {
		return nil, fmt.Errorf("PolygonOptionsChainFetcher: %w", err)
	}

	snapshots, err := f.list(ctx, params)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("PolygonOptionsChainFetcher: failed to list options chain for %s: %w", query.Underlying, err)
	}

	contracts := make([]eventmodels.OptionChainContract, 0, len(snapshots))
	for _, snapshot := range snapshots {
		contract, ok := convertOptionContractSnapshot(snapshot)
		if !ok {
			log.WithContext(ctx).Debugf("PolygonOptionsChainFetcher: skipping snapshot with ticker %q", snapshot.Details.Ticker)
			continue
		}

		contracts = append(contracts, contract)
	}

	f.cache.Set(query.CacheKey(), contracts, cache.DefaultExpiration)

	log.WithContext(ctx).Debugf("PolygonOptionsChainFetcher: fetched %d contracts for %s", len(contracts), query.Underlying)

	return contracts, nil
}

func newListOptionsChainParams(query eventmodels.OptionsChainQuery) (*models.ListOptionsChainParams, error) {
	minExpiration, err := query.MinExpiration.Time()
	if err != nil {
		return nil, err
	}

	maxExpiration, err := query.MaxExpiration.Time()
	if err != nil {
		return nil, err
	}

	contractType := models.ContractCall
	if query.OptionType == eventmodels.OptionTypePut {
		contractType = models.ContractPut
	}

	params := models.ListOptionsChainParams{
		UnderlyingAsset: query.Underlying.String(),
	}.
		WithContractType(contractType).
		WithLimit(optionsChainPageLimit)

	params = params.WithExpirationDate(models.GTE, models.Date(minExpiration))
	params = params.WithExpirationDate(models.LTE, models.Date(maxExpiration))

	return params, nil
}

func convertOptionContractSnapshot(snapshot models.OptionContractSnapshot) (eventmodels.OptionChainContract, bool) {
	if snapshot.Details.Ticker == "" {
		return eventmodels.OptionChainContract{}, false
	}

	contract := eventmodels.NewOptionChainContract(
		eventmodels.OptionSymbol(snapshot.Details.Ticker),
		positiveOrNil(snapshot.LastQuote.Bid),
		positiveOrNil(snapshot.LastQuote.Ask),
		positiveOrNil(snapshot.LastTrade.Price),
	)

	if snapshot.Details.StrikePrice > 0 {
		contract.StrikePrice = snapshot.Details.StrikePrice
	}

	if snapshot.Details.ContractType != "" {
		contract.OptionType = eventmodels.NewOptionType(snapshot.Details.ContractType)
	}

	if expiration := time.Time(snapshot.Details.ExpirationDate); !expiration.IsZero() {
		contract.ExpirationDate = eventmodels.NewExpirationDate(expiration)
	}

	if contract.UnderlyingSymbol == "" && snapshot.UnderlyingAsset.Ticker != "" {
		contract.UnderlyingSymbol = eventmodels.NewStockSymbol(snapshot.UnderlyingAsset.Ticker)
	}

	return contract, contract.UnderlyingSymbol != ""
}

// polygon reports missing quotes as zero
func positiveOrNil(v float64) *float64 {
	if v <= 0 {
		return nil
	}

	return &v
}
