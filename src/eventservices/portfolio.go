package eventservices

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

type PositionsFetcher interface {
	FetchStockHoldings(ctx context.Context, accountID string) ([]eventmodels.StockHolding, error)
	FetchOptionPositions(ctx context.Context, accountID string) ([]eventmodels.OptionPosition, error)
}

// summaryOrder fixes the order strategies are reported in.
var summaryOrder = []eventmodels.StrategyType{
	eventmodels.StrategyTypeCoveredCalls,
	eventmodels.StrategyTypeCashSecuredPut,
	eventmodels.StrategyTypeLeap,
	eventmodels.StrategyTypeBullPutCreditSpread,
	eventmodels.StrategyTypeBearCallCreditSpread,
	eventmodels.StrategyTypeUnknown,
}

type PortfolioService struct {
	positions PositionsFetcher
}

func NewPortfolioService(positions PositionsFetcher) *PortfolioService {
	return &PortfolioService{
		positions: positions,
	}
}

// FetchClassifiedPortfolio loads an account's holdings and option positions and labels each option.
func (s *PortfolioService) FetchClassifiedPortfolio(ctx context.Context, accountID string) (*eventmodels.Portfolio, error) {
	ctx, span := otel.Tracer("PortfolioService").Start(ctx, "PortfolioService.FetchClassifiedPortfolio")
	defer span.End()

	var holdings []eventmodels.StockHolding
	var options []eventmodels.OptionPosition

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		holdings, err = s.positions.FetchStockHoldings(gctx, accountID)
		return err
	})

	g.Go(func() error {
		var err error
		options, err = s.positions.FetchOptionPositions(gctx, accountID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("PortfolioService: FetchClassifiedPortfolio: %w", err)
	}

	classified := ClassifyPositions(options, holdings)

	log.WithContext(ctx).WithField("accountId", accountID).Infof("classified %d option positions against %d holdings", len(classified), len(holdings))

	return &eventmodels.Portfolio{
		AccountID: accountID,
		Stocks:    holdings,
		Options:   classified,
		Summary:   SummarizePortfolio(classified),
	}, nil
}

// SummarizePortfolio totals contracts per strategy, the premium received on short legs and the
// cash held against short puts. Prices are per share.
func SummarizePortfolio(options []eventmodels.ClassifiedOption) eventmodels.PortfolioSummary {
	multiplier := decimal.NewFromInt(sharesPerContract)
	byStrategy := make(map[eventmodels.StrategyType]*eventmodels.StrategySummary)
	spreadIDs := make(map[string]struct{})

	summary := eventmodels.PortfolioSummary{
		Strategies:            []eventmodels.StrategySummary{},
		TotalPremiumCollected: decimal.Zero,
		TotalCapitalSecured:   decimal.Zero,
	}

	for _, option := range options {
		s, found := byStrategy[option.StrategyType]
		if !found {
			s = &eventmodels.StrategySummary{
				StrategyType:     option.StrategyType,
				Contracts:        decimal.Zero,
				PremiumCollected: decimal.Zero,
				CapitalSecured:   decimal.Zero,
			}
			byStrategy[option.StrategyType] = s
		}

		contracts := decimal.NewFromFloat(option.Units).Abs()

		s.Positions++
		s.Contracts = s.Contracts.Add(contracts)

		if option.SpreadID != nil {
			spreadIDs[*option.SpreadID] = struct{}{}
		}

		if !option.IsShort() {
			continue
		}

		premium := decimal.NewFromFloat(option.AveragePurchasePrice).Abs().Mul(contracts).Mul(multiplier)
		s.PremiumCollected = s.PremiumCollected.Add(premium)
		summary.TotalPremiumCollected = summary.TotalPremiumCollected.Add(premium)

		if option.StrategyType == eventmodels.StrategyTypeCashSecuredPut {
			secured := decimal.NewFromFloat(option.StrikePrice).Mul(contracts).Mul(multiplier)
			s.CapitalSecured = s.CapitalSecured.Add(secured)
			summary.TotalCapitalSecured = summary.TotalCapitalSecured.Add(secured)
		}
	}

	for _, strategy := range summaryOrder {
		if s, found := byStrategy[strategy]; found {
			summary.Strategies = append(summary.Strategies, *s)
		}
	}

	summary.SpreadCount = len(spreadIDs)

	return summary
}
