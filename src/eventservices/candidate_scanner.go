package eventservices

import (
	"context"
	"fmt"

	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

// CandidateScanner ranks premium candidates across many underlyings, throttling calls to the
// options chain fetcher.
type CandidateScanner struct {
	fetcher        OptionsChainFetcher
	limiter        *rate.Limiter
	maxConcurrency int
}

func NewCandidateScanner(fetcher OptionsChainFetcher, requestsPerSecond float64, maxConcurrency int) *CandidateScanner {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	return &CandidateScanner{
		fetcher:        fetcher,
		limiter:        rate.NewLimiter(limit, maxConcurrency),
		maxConcurrency: maxConcurrency,
	}
}

// Scan fetches, augments and filters each underlying's chain and merges the results best first.
// Underlyings whose fetch fails are reported in Failed; Scan only fails when every fetch failed.
func (s *CandidateScanner) Scan(ctx context.Context, symbols []eventmodels.StockSymbol, params eventmodels.ScanParams) (*eventmodels.CandidateScanResult, error) {
	ctx, span := otel.Tracer("CandidateScanner").Start(ctx, "CandidateScanner.Scan")
	defer span.End()

	symbols = uniqueSymbols(symbols)
	span.SetAttributes(attribute.Int("symbols", len(symbols)))

	result := &eventmodels.CandidateScanResult{
		Candidates: []eventmodels.RankedCandidate{},
	}

	if len(symbols) == 0 {
		return result, nil
	}

	// Per-symbol slots keep the merge in input order regardless of which fetch finishes first.
	candidates := make([][]eventmodels.RankedCandidate, len(symbols))
	errs := make([]error, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	for i, symbol := range symbols {
		i, symbol := i, symbol

		g.Go(func() error {
			if err := s.limiter.Wait(gctx); err != nil {
				return fmt.Errorf("CandidateScanner: rate limiter: %w", err)
			}

			query := eventmodels.NewOptionsChainQuery(symbol, params.OptionType, params.MaxDaysToExpiration, params.Now)

			contracts, err := s.fetcher.FetchOptionsChain(gctx, query)
			if err != nil {
				log.WithContext(gctx).WithField("symbol", symbol).Warnf("CandidateScanner: skipping underlying: %v", err)
				errs[i] = err
				return nil
			}

			candidates[i] = SelectGoodCandidatesWithThresholds(AugmentCandidates(contracts, params.Now), params.Thresholds)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var lastErr error
	for i, symbol := range symbols {
		if errs[i] != nil {
			result.Failed = append(result.Failed, symbol)
			lastErr = errs[i]
			continue
		}

		result.Candidates = append(result.Candidates, candidates[i]...)
	}

	if len(result.Failed) == len(symbols) {
		return nil, fmt.Errorf("CandidateScanner: all %d underlyings failed: %w", len(symbols), lastErr)
	}

	SortCandidatesByExpectedReturn(result.Candidates)
	result.Summary = SummarizeCandidates(result.Candidates)

	return result, nil
}

func uniqueSymbols(symbols []eventmodels.StockSymbol) []eventmodels.StockSymbol {
	seen := make(map[eventmodels.StockSymbol]struct{}, len(symbols))
	unique := make([]eventmodels.StockSymbol, 0, len(symbols))

	for _, s := range symbols {
		symbol := eventmodels.NewStockSymbol(string(s))
		if symbol == "" {
			continue
		}

		if _, found := seen[symbol]; found {
			continue
		}

		seen[symbol] = struct{}{}
		unique = append(unique, symbol)
	}

	return unique
}

// SummarizeCandidates reports the distribution of returns across candidates. Undefined returns are skipped.
func SummarizeCandidates(candidates []eventmodels.RankedCandidate) eventmodels.CandidateSummary {
	var expected, annualized stats.Float64Data

	for _, c := range candidates {
		if c.ExpectedReturnPercentage != nil {
			expected = append(expected, *c.ExpectedReturnPercentage)
		}

		if c.ExpectedAnnualizedReturnPercentage != nil {
			annualized = append(annualized, *c.ExpectedAnnualizedReturnPercentage)
		}
	}

	summary := eventmodels.CandidateSummary{
		Count: len(candidates),
	}

	if len(expected) > 0 {
		summary.MeanExpectedReturn, _ = stats.Mean(expected)
		summary.MedianExpectedReturn, _ = stats.Median(expected)
		summary.MaxExpectedReturn, _ = stats.Max(expected)
	}

	if len(annualized) > 0 {
		summary.MeanAnnualizedReturn, _ = stats.Mean(annualized)
		summary.StdDevAnnualizedReturn, _ = stats.StandardDeviation(annualized)
	}

	return summary
}
