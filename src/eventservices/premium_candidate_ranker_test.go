package eventservices

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

func price(p float64) *float64 {
	return &p
}

func newChainContract(strike float64, expiration string, bid *float64) eventmodels.OptionChainContract {
	return eventmodels.OptionChainContract{
		Symbol:           "O:SPY240621P00500000",
		UnderlyingSymbol: "SPY",
		OptionType:       eventmodels.OptionTypePut,
		StrikePrice:      strike,
		ExpirationDate:   eventmodels.ExpirationDate(expiration),
		BidPrice:         bid,
	}
}

func TestAugmentCandidates(t *testing.T) {
	now := time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC)

	t.Run("derives expected and annualized returns", func(t *testing.T) {
		candidates := AugmentCandidates([]eventmodels.OptionChainContract{
			newChainContract(200, "2024-06-21", price(2.0)),
		}, now)

		require.Len(t, candidates, 1)
		require.NotNil(t, candidates[0].ExpectedReturnPercentage)
		require.NotNil(t, candidates[0].DaysToExpiration)
		require.NotNil(t, candidates[0].ExpectedAnnualizedReturnPercentage)

		assert.InDelta(t, 1.0, *candidates[0].ExpectedReturnPercentage, 1e-9)
		assert.Equal(t, 7, *candidates[0].DaysToExpiration)
		assert.InDelta(t, 365.0/7.0, *candidates[0].ExpectedAnnualizedReturnPercentage, 1e-9)
	})

	t.Run("days to expiration rounds up against midnight UTC-5", func(t *testing.T) {
		// 2024-06-21T00:00-05:00 is 05:00 UTC
		justBefore := time.Date(2024, 6, 20, 4, 59, 0, 0, time.UTC)
		justAfter := time.Date(2024, 6, 20, 5, 1, 0, 0, time.UTC)

		before := AugmentCandidates([]eventmodels.OptionChainContract{newChainContract(200, "2024-06-21", price(2.0))}, justBefore)
		after := AugmentCandidates([]eventmodels.OptionChainContract{newChainContract(200, "2024-06-21", price(2.0))}, justAfter)

		assert.Equal(t, 2, *before[0].DaysToExpiration)
		assert.Equal(t, 1, *after[0].DaysToExpiration)
	})

	t.Run("missing bid or strike leaves returns undefined", func(t *testing.T) {
		candidates := AugmentCandidates([]eventmodels.OptionChainContract{
			newChainContract(0, "2024-06-21", price(2.0)),
			newChainContract(200, "2024-06-21", nil),
			newChainContract(200, "2024-06-21", price(0)),
			newChainContract(-5, "2024-06-21", price(2.0)),
		}, now)

		require.Len(t, candidates, 4)
		for i, c := range candidates {
			assert.Nil(t, c.ExpectedReturnPercentage, "candidate %d", i)
			assert.Nil(t, c.ExpectedAnnualizedReturnPercentage, "candidate %d", i)
		}
	})

	t.Run("missing or malformed expiration leaves the annualized return undefined", func(t *testing.T) {
		candidates := AugmentCandidates([]eventmodels.OptionChainContract{
			newChainContract(200, "", price(2.0)),
			newChainContract(200, "21/06/2024", price(2.0)),
		}, now)

		for _, c := range candidates {
			require.NotNil(t, c.ExpectedReturnPercentage)
			assert.Nil(t, c.DaysToExpiration)
			assert.Nil(t, c.ExpectedAnnualizedReturnPercentage)
		}
	})

	t.Run("same day and expired contracts have no annualized return", func(t *testing.T) {
		sameDay := time.Date(2024, 6, 21, 5, 0, 0, 0, time.UTC)
		expired := time.Date(2024, 6, 25, 12, 0, 0, 0, time.UTC)

		for _, ts := range []time.Time{sameDay, expired} {
			candidates := AugmentCandidates([]eventmodels.OptionChainContract{newChainContract(200, "2024-06-21", price(2.0))}, ts)
			require.NotNil(t, candidates[0].ExpectedReturnPercentage)
			assert.Nil(t, candidates[0].ExpectedAnnualizedReturnPercentage)
		}
	})

	t.Run("is idempotent for a fixed evaluation date", func(t *testing.T) {
		contracts := []eventmodels.OptionChainContract{
			newChainContract(200, "2024-06-21", price(2.0)),
			newChainContract(150, "2024-07-19", price(1.3)),
			newChainContract(0, "2024-07-19", nil),
		}

		first := AugmentCandidates(contracts, now)
		second := AugmentCandidates(contracts, now)

		assert.Equal(t, first, second)
	})
}

func TestSelectGoodCandidates(t *testing.T) {
	now := time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC)

	contracts := []eventmodels.OptionChainContract{
		newChainContract(100, "2024-06-21", price(0.59)), // 0.59%
		newChainContract(100, "2024-06-21", price(0.6)),  // 0.6%
		newChainContract(100, "2024-06-21", price(1.2)),  // 1.2%
		newChainContract(100, "2024-06-21", price(1.5)),  // 1.5%
		newChainContract(100, "2024-06-21", price(1.51)), // 1.51%
		newChainContract(200, "2024-06-21", price(2.4)),  // 1.2%
		newChainContract(0, "2024-06-21", price(1.0)),
		newChainContract(100, "2024-06-21", nil),
		newChainContract(100, "2024-06-14", price(1.0)),
	}

	good := SelectGoodCandidates(AugmentCandidates(contracts, now))

	require.Len(t, good, 4)

	for i, c := range good {
		require.NotNil(t, c.ExpectedReturnPercentage)
		assert.GreaterOrEqual(t, *c.ExpectedReturnPercentage, 0.6)
		assert.LessOrEqual(t, *c.ExpectedReturnPercentage, 1.5)
		assert.False(t, math.IsNaN(*c.ExpectedReturnPercentage))

		if i > 0 {
			assert.GreaterOrEqual(t, *good[i-1].ExpectedReturnPercentage, *c.ExpectedReturnPercentage)
		}
	}

	assert.InDelta(t, 1.5, *good[0].ExpectedReturnPercentage, 1e-9)
	assert.InDelta(t, 0.6, *good[3].ExpectedReturnPercentage, 1e-9)

	t.Run("ties keep their original order", func(t *testing.T) {
		assert.Equal(t, 100.0, good[1].StrikePrice)
		assert.Equal(t, 200.0, good[2].StrikePrice)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SelectGoodCandidates(nil))
	})

	t.Run("custom thresholds", func(t *testing.T) {
		thresholds := eventmodels.CandidateThresholds{MinExpectedReturnPercentage: 1.0, MaxExpectedReturnPercentage: 2.0}

		selected := SelectGoodCandidatesWithThresholds(AugmentCandidates(contracts, now), thresholds)

		require.Len(t, selected, 4)
		assert.InDelta(t, 1.51, *selected[0].ExpectedReturnPercentage, 1e-9)
	})
}
