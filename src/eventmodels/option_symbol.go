package eventmodels

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var occSymbolRegex = regexp.MustCompile(`^([A-Z0-9.]{1,6})\s*(\d{6})([CP])(\d{8})$`)

type OptionSymbol string

func (s OptionSymbol) NoPrefix() string {
	if strings.HasPrefix(string(s), "O:") {
		return string(s)[2:]
	}

	return string(s)
}

func (s OptionSymbol) Description() (string, error) {
	components, err := NewOptionSymbolComponents(s)
	if err != nil {
		return "", fmt.Errorf("OptionSymbol.Description: failed to parse option symbol: %w", err)
	}

	expiration := components.Expiration.Format("Jan 2 2006")
	strikePrice := fmt.Sprintf("%.2f", components.StrikePrice)

	optionType := "Call"
	if components.OptionType == OptionTypePut {
		optionType = "Put"
	}

	return fmt.Sprintf("%s %s $%s %s", components.Underlying, expiration, strikePrice, optionType), nil
}

// NewOptionSymbolComponents parses an OCC symbol such as O:AAPL240621P00190000.
func NewOptionSymbolComponents(s OptionSymbol) (*OptionSymbolComponents, error) {
	matches := occSymbolRegex.FindStringSubmatch(strings.ToUpper(s.NoPrefix()))
	if matches == nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: invalid option symbol: %s", s)
	}

	expiration, err := time.ParseInLocation("060102", matches[2], MarketLocation)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: invalid expiration %s: %w", matches[2], err)
	}

	strike, err := strconv.ParseInt(matches[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: invalid strike %s: %w", matches[4], err)
	}

	return &OptionSymbolComponents{
		Underlying:  NewStockSymbol(matches[1]),
		Expiration:  expiration,
		OptionType:  NewOptionType(matches[3]),
		StrikePrice: float64(strike) / 1000,
		Symbol:      s,
	}, nil
}

func NewOptionSymbol(option OptionSymbolComponents) (OptionSymbol, error) {
	if err := option.OptionType.Validate(); err != nil {
		return "", fmt.Errorf("NewOptionSymbol: %w", err)
	}

	year := option.Expiration.Year() % 100
	month := int(option.Expiration.Month())
	day := option.Expiration.Day()

	strikePrice := fmt.Sprintf("%08d", int64(math.Round(option.StrikePrice*1000)))

	ticker := fmt.Sprintf("%s%02d%02d%02d%s%s",
		option.Underlying, year, month, day, option.OptionType.OccCode(), strikePrice)

	return OptionSymbol(ticker), nil
}
