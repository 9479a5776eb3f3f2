package eventservices

import (
	"fmt"
	"math"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

const sharesPerContract = 100

// spreadIDGenerator hands out spread ids that are unique within one classification run.
type spreadIDGenerator struct {
	seq int
}

func (g *spreadIDGenerator) next(underlying eventmodels.StockSymbol, expiration eventmodels.ExpirationDate) string {
	g.seq++
	return fmt.Sprintf("%s-%s-%d", underlying, expiration, g.seq)
}

// ClassifyPositions labels every option position with the strategy it implements. The output
// has the same length and order as options. Offsetting legs of the same underlying, type and
// expiration that open for a net credit are paired into credit spreads and share a spread id.
func ClassifyPositions(options []eventmodels.OptionPosition, holdings []eventmodels.StockHolding) []eventmodels.ClassifiedOption {
	result := make([]eventmodels.ClassifiedOption, len(options))
	for i, option := range options {
		result[i] = eventmodels.ClassifiedOption{
			OptionPosition: option,
			StrategyType:   eventmodels.StrategyTypeUnknown,
		}
	}

	sharesHeld := sumSharesByUnderlying(holdings)
	paired := make([]bool, len(options))
	ids := &spreadIDGenerator{}

	underlyings, groups := groupByUnderlying(options)
	for _, underlying := range underlyings {
		pairSpreads(options, groups[underlying], paired, result, ids)
	}

	for i := range options {
		if paired[i] {
			continue
		}

		result[i].StrategyType = classifySingleLeg(&options[i], sharesHeld)
	}

	return result
}

func sumSharesByUnderlying(holdings []eventmodels.StockHolding) map[eventmodels.StockSymbol]float64 {
	shares := make(map[eventmodels.StockSymbol]float64)
	for _, h := range holdings {
		shares[eventmodels.NewStockSymbol(string(h.UnderlyingSymbol))] += h.Units
	}

	return shares
}

// groupByUnderlying returns input indexes per underlying, and the underlyings in the order
// they were first encountered. Malformed or zero-quantity positions never take part in pairing.
func groupByUnderlying(options []eventmodels.OptionPosition) ([]eventmodels.StockSymbol, map[eventmodels.StockSymbol][]int) {
	var order []eventmodels.StockSymbol
	groups := make(map[eventmodels.StockSymbol][]int)

	for i := range options {
		if !isPairable(&options[i]) {
			continue
		}

		underlying := eventmodels.NewStockSymbol(string(options[i].UnderlyingSymbol))
		if _, found := groups[underlying]; !found {
			order = append(order, underlying)
		}

		groups[underlying] = append(groups[underlying], i)
	}

	return order, groups
}

func isPairable(p *eventmodels.OptionPosition) bool {
	return p.Units != 0 && p.IsWellFormed()
}

func pairSpreads(options []eventmodels.OptionPosition, group []int, paired []bool, result []eventmodels.ClassifiedOption, ids *spreadIDGenerator) {
	for _, a := range group {
		if paired[a] {
			continue
		}

		b, found := findSpreadPartner(options, group, paired, a)
		if !found {
			continue
		}

		short, long := a, b
		if options[a].IsLong() {
			short, long = b, a
		}

		if !opensForCredit(&options[short], &options[long]) {
			continue
		}

		spreadID := ids.next(eventmodels.NewStockSymbol(string(options[a].UnderlyingSymbol)), options[a].ExpirationDate)
		strategy := eventmodels.NewCreditSpreadStrategyType(options[a].OptionType)

		for _, leg := range []int{a, b} {
			id := spreadID
			result[leg].StrategyType = strategy
			result[leg].SpreadID = &id
			paired[leg] = true
		}
	}
}

// findSpreadPartner picks the unpaired offsetting leg whose strike is closest to a's.
// Ties go to the first candidate encountered.
func findSpreadPartner(options []eventmodels.OptionPosition, group []int, paired []bool, a int) (int, bool) {
	best := -1
	minDistance := math.Inf(1)

	for _, b := range group {
		if b == a || paired[b] {
			continue
		}

		if !isOffsettingLeg(&options[a], &options[b]) {
			continue
		}

		distance := math.Abs(options[a].StrikePrice - options[b].StrikePrice)
		if distance < minDistance {
			minDistance = distance
			best = b
		}
	}

	return best, best >= 0
}

func isOffsettingLeg(a, b *eventmodels.OptionPosition) bool {
	if (a.Units > 0) == (b.Units > 0) {
		return false
	}

	if a.OptionType != b.OptionType {
		return false
	}

	if a.ExpirationDate != b.ExpirationDate {
		return false
	}

	return math.Abs(a.Units) == math.Abs(b.Units)
}

// opensForCredit approximates a net credit on entry by comparing premium magnitudes.
func opensForCredit(short, long *eventmodels.OptionPosition) bool {
	return math.Abs(short.AveragePurchasePrice) > math.Abs(long.AveragePurchasePrice)
}

func classifySingleLeg(p *eventmodels.OptionPosition, sharesHeld map[eventmodels.StockSymbol]float64) eventmodels.StrategyType {
	if p.Units == 0 || !p.IsWellFormed() {
		return eventmodels.StrategyTypeUnknown
	}

	switch p.OptionType {
	case eventmodels.OptionTypeCall:
		if p.IsLong() {
			return eventmodels.StrategyTypeLeap
		}

		shares := sharesHeld[eventmodels.NewStockSymbol(string(p.UnderlyingSymbol))]
		if shares > math.Abs(p.Units)*sharesPerContract {
			return eventmodels.StrategyTypeCoveredCalls
		}

		// a short call without enough shares behind it has no label
		return eventmodels.StrategyTypeUnknown

	case eventmodels.OptionTypePut:
		// cash balance is not checked: every put is reported as cash secured
		return eventmodels.StrategyTypeCashSecuredPut
	}

	return eventmodels.StrategyTypeUnknown
}
