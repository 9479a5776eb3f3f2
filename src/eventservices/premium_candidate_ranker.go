package eventservices

import (
	"math"
	"sort"
	"time"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

const daysPerYear = 365

// AugmentCandidates derives the premium-to-strike return and its annualized figure for every
// contract. Missing or non-positive inputs leave the derived fields nil.
func AugmentCandidates(contracts []eventmodels.OptionChainContract, now time.Time) []eventmodels.RankedCandidate {
	candidates := make([]eventmodels.RankedCandidate, 0, len(contracts))

	for _, contract := range contracts {
		candidate := eventmodels.RankedCandidate{
			OptionChainContract: contract,
		}

		candidate.ExpectedReturnPercentage = calculateExpectedReturnPercentage(contract.BidPrice, contract.StrikePrice)

		if dte, ok := calculateDaysToExpiration(contract.ExpirationDate, now); ok {
			candidate.DaysToExpiration = &dte

			if candidate.ExpectedReturnPercentage != nil && dte > 0 {
				annualized := *candidate.ExpectedReturnPercentage * daysPerYear / float64(dte)
				candidate.ExpectedAnnualizedReturnPercentage = finiteOrNil(annualized)
			}
		}

		candidates = append(candidates, candidate)
	}

	return candidates
}

// SelectGoodCandidates keeps the candidates inside the default return band, best first.
func SelectGoodCandidates(candidates []eventmodels.RankedCandidate) []eventmodels.RankedCandidate {
	return SelectGoodCandidatesWithThresholds(candidates, eventmodels.DefaultCandidateThresholds())
}

func SelectGoodCandidatesWithThresholds(candidates []eventmodels.RankedCandidate, thresholds eventmodels.CandidateThresholds) []eventmodels.RankedCandidate {
	good := make([]eventmodels.RankedCandidate, 0)

	for _, c := range candidates {
		if c.ExpectedReturnPercentage == nil || c.ExpectedAnnualizedReturnPercentage == nil {
			continue
		}

		if !thresholds.Contains(*c.ExpectedReturnPercentage) {
			continue
		}

		good = append(good, c)
	}

	SortCandidatesByExpectedReturn(good)

	return good
}

// SortCandidatesByExpectedReturn sorts descending; equal returns keep their relative order.
func SortCandidatesByExpectedReturn(candidates []eventmodels.RankedCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return expectedReturnOf(candidates[i]) > expectedReturnOf(candidates[j])
	})
}

func expectedReturnOf(c eventmodels.RankedCandidate) float64 {
	if c.ExpectedReturnPercentage == nil {
		return math.Inf(-1)
	}

	return *c.ExpectedReturnPercentage
}

func calculateExpectedReturnPercentage(bid *float64, strike float64) *float64 {
	if bid == nil || *bid <= 0 || strike <= 0 {
		return nil
	}

	return finiteOrNil(*bid / strike * 100)
}

// calculateDaysToExpiration counts whole days, rounded up, from now to midnight of the
// expiration date in the market's fixed UTC-5 offset.
func calculateDaysToExpiration(expiration eventmodels.ExpirationDate, now time.Time) (int, bool) {
	if expiration == "" {
		return 0, false
	}

	expiresAt, err := expiration.MarketTime()
	if err != nil {
		return 0, false
	}

	days := math.Ceil(expiresAt.Sub(now).Hours() / 24)

	return int(days), true
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}
