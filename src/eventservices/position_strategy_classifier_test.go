package eventservices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

func newPosition(underlying string, optionType eventmodels.OptionType, strike float64, expiration string, units, avgPrice float64) eventmodels.OptionPosition {
	return eventmodels.OptionPosition{
		UnderlyingSymbol:     eventmodels.StockSymbol(underlying),
		OptionType:           optionType,
		StrikePrice:          strike,
		ExpirationDate:       eventmodels.ExpirationDate(expiration),
		Units:                units,
		AveragePurchasePrice: avgPrice,
	}
}

func TestClassifyPositions__SingleLeg(t *testing.T) {
	t.Run("short call with enough shares is covered", func(t *testing.T) {
		options := []eventmodels.OptionPosition{newPosition("AAPL", eventmodels.OptionTypeCall, 200, "2024-06-21", -2, 1.5)}
		holdings := []eventmodels.StockHolding{{UnderlyingSymbol: "AAPL", Units: 300}}

		result := ClassifyPositions(options, holdings)

		require.Len(t, result, 1)
		assert.Equal(t, eventmodels.StrategyTypeCoveredCalls, result[0].StrategyType)
		assert.Nil(t, result[0].SpreadID)
	})

	t.Run("short call without enough shares is unknown", func(t *testing.T) {
		options := []eventmodels.OptionPosition{newPosition("AAPL", eventmodels.OptionTypeCall, 200, "2024-06-21", -2, 1.5)}
		holdings := []eventmodels.StockHolding{{UnderlyingSymbol: "AAPL", Units: 150}}

		result := ClassifyPositions(options, holdings)

		require.Len(t, result, 1)
		assert.Equal(t, eventmodels.StrategyTypeUnknown, result[0].StrategyType)
	})

	t.Run("cover must be strictly greater than contracts times 100", func(t *testing.T) {
		options := []eventmodels.OptionPosition{newPosition("AAPL", eventmodels.OptionTypeCall, 200, "2024-06-21", -2, 1.5)}
		holdings := []eventmodels.StockHolding{{UnderlyingSymbol: "AAPL", Units: 200}}

		result := ClassifyPositions(options, holdings)

		assert.Equal(t, eventmodels.StrategyTypeUnknown, result[0].StrategyType)
	})

	t.Run("shares across holdings of the same underlying are summed", func(t *testing.T) {
		options := []eventmodels.OptionPosition{newPosition("aapl", eventmodels.OptionTypeCall, 200, "2024-06-21", -1, 1.5)}
		holdings := []eventmodels.StockHolding{
			{UnderlyingSymbol: "AAPL", Units: 60},
			{UnderlyingSymbol: "MSFT", Units: 500},
			{UnderlyingSymbol: "aapl", Units: 50},
		}

		result := ClassifyPositions(options, holdings)

		assert.Equal(t, eventmodels.StrategyTypeCoveredCalls, result[0].StrategyType)
	})

	t.Run("long call is a leap regardless of holdings", func(t *testing.T) {
		options := []eventmodels.OptionPosition{newPosition("AAPL", eventmodels.OptionTypeCall, 200, "2026-01-16", 5, 20)}

		assert.Equal(t, eventmodels.StrategyTypeLeap, ClassifyPositions(options, nil)[0].StrategyType)

		holdings := []eventmodels.StockHolding{{UnderlyingSymbol: "AAPL", Units: 10000}}
		assert.Equal(t, eventmodels.StrategyTypeLeap, ClassifyPositions(options, holdings)[0].StrategyType)
	})

	t.Run("puts of either sign are cash secured", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("TSLA", eventmodels.OptionTypePut, 150, "2024-06-21", -1, 3),
			newPosition("NVDA", eventmodels.OptionTypePut, 90, "2024-06-21", 2, 1),
		}

		result := ClassifyPositions(options, nil)

		require.Len(t, result, 2)
		assert.Equal(t, eventmodels.StrategyTypeCashSecuredPut, result[0].StrategyType)
		assert.Equal(t, eventmodels.StrategyTypeCashSecuredPut, result[1].StrategyType)
	})

	t.Run("malformed and zero quantity positions are unknown", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			{Units: -1},
			newPosition("AAPL", "", 200, "2024-06-21", -1, 1),
			newPosition("AAPL", eventmodels.OptionTypePut, 0, "2024-06-21", -1, 1),
			newPosition("AAPL", eventmodels.OptionTypePut, 200, "06/21/2024", -1, 1),
			newPosition("", eventmodels.OptionTypePut, 200, "2024-06-21", -1, 1),
			newPosition("AAPL", eventmodels.OptionTypePut, 200, "2024-06-21", 0, 1),
		}

		result := ClassifyPositions(options, nil)

		require.Len(t, result, len(options))
		for i, r := range result {
			assert.Equal(t, eventmodels.StrategyTypeUnknown, r.StrategyType, "position %d", i)
			assert.Nil(t, r.SpreadID, "position %d", i)
		}
	})
}

func TestClassifyPositions__Spreads(t *testing.T) {
	t.Run("bull put credit spread", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("SPY", eventmodels.OptionTypePut, 500, "2024-06-21", -1, 4.2),
			newPosition("SPY", eventmodels.OptionTypePut, 495, "2024-06-21", 1, 2.9),
		}

		result := ClassifyPositions(options, nil)

		require.Len(t, result, 2)
		assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result[0].StrategyType)
		assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result[1].StrategyType)
		require.NotNil(t, result[0].SpreadID)
		require.NotNil(t, result[1].SpreadID)
		assert.NotEmpty(t, *result[0].SpreadID)
		assert.Equal(t, *result[0].SpreadID, *result[1].SpreadID)
		assert.Contains(t, *result[0].SpreadID, "SPY-2024-06-21")
	})

	t.Run("swapped legs without a credit fall through to single leg rules", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("SPY", eventmodels.OptionTypePut, 500, "2024-06-21", 1, 4.2),
			newPosition("SPY", eventmodels.OptionTypePut, 495, "2024-06-21", -1, 2.9),
		}

		result := ClassifyPositions(options, nil)

		require.Len(t, result, 2)
		for _, r := range result {
			assert.Equal(t, eventmodels.StrategyTypeCashSecuredPut, r.StrategyType)
			assert.Nil(t, r.SpreadID)
		}
	})

	t.Run("bear call credit spread", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("QQQ", eventmodels.OptionTypeCall, 460, "2024-07-19", 3, 1.1),
			newPosition("QQQ", eventmodels.OptionTypeCall, 450, "2024-07-19", -3, 2.5),
		}

		result := ClassifyPositions(options, nil)

		assert.Equal(t, eventmodels.StrategyTypeBearCallCreditSpread, result[0].StrategyType)
		assert.Equal(t, eventmodels.StrategyTypeBearCallCreditSpread, result[1].StrategyType)
		assert.Equal(t, result[0].GetSpreadID(), result[1].GetSpreadID())
	})

	t.Run("premium magnitudes are compared when the provider signs prices", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("SPY", eventmodels.OptionTypePut, 500, "2024-06-21", -1, -4.2),
			newPosition("SPY", eventmodels.OptionTypePut, 495, "2024-06-21", 1, 2.9),
		}

		result := ClassifyPositions(options, nil)

		assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result[0].StrategyType)
	})

	t.Run("legs must match type, expiration and quantity", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("SPY", eventmodels.OptionTypePut, 500, "2024-06-21", -1, 4.2),
			newPosition("SPY", eventmodels.OptionTypeCall, 495, "2024-06-21", 1, 2.9),
			newPosition("SPY", eventmodels.OptionTypePut, 495, "2024-06-28", 1, 2.9),
			newPosition("SPY", eventmodels.OptionTypePut, 495, "2024-06-21", 2, 2.9),
			newPosition("SPY", eventmodels.OptionTypePut, 490, "2024-06-21", -1, 1.0),
		}

		result := ClassifyPositions(options, nil)

		require.Len(t, result, 5)
		assert.Equal(t, eventmodels.StrategyTypeCashSecuredPut, result[0].StrategyType)
		assert.Equal(t, eventmodels.StrategyTypeLeap, result[1].StrategyType)
		assert.Equal(t, eventmodels.StrategyTypeCashSecuredPut, result[2].StrategyType)
		assert.Equal(t, eventmodels.StrategyTypeCashSecuredPut, result[3].StrategyType)
		assert.Equal(t, eventmodels.StrategyTypeCashSecuredPut, result[4].StrategyType)
	})

	t.Run("spreads never span underlyings", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("SPY", eventmodels.OptionTypePut, 500, "2024-06-21", -1, 4.2),
			newPosition("IWM", eventmodels.OptionTypePut, 495, "2024-06-21", 1, 2.9),
		}

		result := ClassifyPositions(options, nil)

		assert.Nil(t, result[0].SpreadID)
		assert.Nil(t, result[1].SpreadID)
	})

	t.Run("closest strike wins", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("SPY", eventmodels.OptionTypePut, 500, "2024-06-21", -1, 4.2),
			newPosition("SPY", eventmodels.OptionTypePut, 480, "2024-06-21", 1, 0.5),
			newPosition("SPY", eventmodels.OptionTypePut, 495, "2024-06-21", 1, 2.9),
		}

		result := ClassifyPositions(options, nil)

		assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result[0].StrategyType)
		assert.Equal(t, eventmodels.StrategyTypeCashSecuredPut, result[1].StrategyType)
		assert.Nil(t, result[1].SpreadID)
		assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result[2].StrategyType)
		assert.Equal(t, result[0].GetSpreadID(), result[2].GetSpreadID())
	})

	t.Run("equal strike distance goes to the first candidate encountered", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("SPY", eventmodels.OptionTypePut, 500, "2024-06-21", -1, 4.2),
			newPosition("SPY", eventmodels.OptionTypePut, 505, "2024-06-21", 1, 2.0),
			newPosition("SPY", eventmodels.OptionTypePut, 495, "2024-06-21", 1, 2.9),
		}

		result := ClassifyPositions(options, nil)

		assert.Equal(t, result[0].GetSpreadID(), result[1].GetSpreadID())
		assert.NotEmpty(t, result[0].GetSpreadID())
		assert.Nil(t, result[2].SpreadID)

		// reversing the candidates flips the winner
		options[1], options[2] = options[2], options[1]
		result = ClassifyPositions(options, nil)

		assert.Equal(t, result[0].GetSpreadID(), result[1].GetSpreadID())
		assert.Equal(t, 495.0, result[1].StrikePrice)
		assert.Nil(t, result[2].SpreadID)
	})

	t.Run("a failed credit check does not try the next closest candidate", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("SPY", eventmodels.OptionTypePut, 500, "2024-06-21", -1, 2.0),
			newPosition("SPY", eventmodels.OptionTypePut, 495, "2024-06-21", 1, 3.0),
			newPosition("SPY", eventmodels.OptionTypePut, 480, "2024-06-21", 1, 0.5),
		}

		result := ClassifyPositions(options, nil)

		// 500 picks 495 and fails; 495 picks 500 and fails; 480 picks 500 and succeeds
		assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result[0].StrategyType)
		assert.Equal(t, eventmodels.StrategyTypeCashSecuredPut, result[1].StrategyType)
		assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result[2].StrategyType)
		assert.Equal(t, result[0].GetSpreadID(), result[2].GetSpreadID())
	})

	t.Run("spread ids are unique within a run", func(t *testing.T) {
		options := []eventmodels.OptionPosition{
			newPosition("SPY", eventmodels.OptionTypePut, 500, "2024-06-21", -1, 4.2),
			newPosition("SPY", eventmodels.OptionTypePut, 495, "2024-06-21", 1, 2.9),
			newPosition("SPY", eventmodels.OptionTypePut, 450, "2024-06-21", -1, 1.2),
			newPosition("SPY", eventmodels.OptionTypePut, 445, "2024-06-21", 1, 0.8),
		}

		result := ClassifyPositions(options, nil)

		for _, r := range result {
			assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, r.StrategyType)
		}

		assert.Equal(t, result[0].GetSpreadID(), result[1].GetSpreadID())
		assert.Equal(t, result[2].GetSpreadID(), result[3].GetSpreadID())
		assert.NotEqual(t, result[0].GetSpreadID(), result[2].GetSpreadID())
	})
}

func TestClassifyPositions__PreservesLengthAndOrder(t *testing.T) {
	options := []eventmodels.OptionPosition{
		newPosition("SPY", eventmodels.OptionTypePut, 500, "2024-06-21", -1, 4.2),
		newPosition("AAPL", eventmodels.OptionTypeCall, 200, "2024-06-21", -1, 1.5),
		{ID: "broken"},
		newPosition("SPY", eventmodels.OptionTypePut, 495, "2024-06-21", 1, 2.9),
		newPosition("AAPL", eventmodels.OptionTypeCall, 250, "2025-01-17", 1, 8),
	}

	for i := range options {
		if options[i].ID == "" {
			options[i].ID = string(rune('a' + i))
		}
	}

	result := ClassifyPositions(options, []eventmodels.StockHolding{{UnderlyingSymbol: "AAPL", Units: 101}})

	require.Len(t, result, len(options))
	for i := range options {
		assert.Equal(t, options[i].ID, result[i].ID)
	}

	assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result[0].StrategyType)
	assert.Equal(t, eventmodels.StrategyTypeCoveredCalls, result[1].StrategyType)
	assert.Equal(t, eventmodels.StrategyTypeUnknown, result[2].StrategyType)
	assert.Equal(t, eventmodels.StrategyTypeBullPutCreditSpread, result[3].StrategyType)
	assert.Equal(t, eventmodels.StrategyTypeLeap, result[4].StrategyType)

	assert.Empty(t, ClassifyPositions(nil, nil))
}
