package run

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/jiaming2012/optionshq/src/eventmodels"
	"github.com/jiaming2012/optionshq/src/eventservices"
	"github.com/jiaming2012/optionshq/src/utils"
)

type RunArgs struct {
	OptionsFile  string
	HoldingsFile string
}

type RunResult struct {
	Options []eventmodels.ClassifiedOption
	Summary eventmodels.PortfolioSummary
}

// Run classifies the option positions of a CSV export against the stock holdings of another.
func Run(args RunArgs) (RunResult, error) {
	options, err := utils.ReadCSVFile[eventmodels.OptionPosition](args.OptionsFile)
	if err != nil {
		return RunResult{}, fmt.Errorf("classify: %w", err)
	}

	for i := range options {
		options[i].UnderlyingSymbol = eventmodels.NewStockSymbol(string(options[i].UnderlyingSymbol))
		if options[i].OptionType != "" {
			options[i].OptionType = eventmodels.NewOptionType(string(options[i].OptionType))
		}
	}

	var holdings []eventmodels.StockHolding
	if args.HoldingsFile != "" {
		if holdings, err = utils.ReadCSVFile[eventmodels.StockHolding](args.HoldingsFile); err != nil {
			return RunResult{}, fmt.Errorf("classify: %w", err)
		}
	}

	classified := eventservices.ClassifyPositions(options, holdings)

	return RunResult{
		Options: classified,
		Summary: eventservices.SummarizePortfolio(classified),
	}, nil
}

func RenderTable(w io.Writer, result RunResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Underlying", "Type", "Strike", "Expiration", "Units", "Strategy", "Spread"})

	for _, o := range result.Options {
		table.Append([]string{
			o.UnderlyingSymbol.String(),
			string(o.OptionType),
			fmt.Sprintf("%.2f", o.StrikePrice),
			string(o.ExpirationDate),
			fmt.Sprintf("%g", o.Units),
			string(o.StrategyType),
			o.GetSpreadID(),
		})
	}

	table.Render()

	summary := tablewriter.NewWriter(w)
	summary.SetHeader([]string{"Strategy", "Positions", "Contracts", "Premium", "Secured"})

	for _, s := range result.Summary.Strategies {
		summary.Append([]string{
			string(s.StrategyType),
			fmt.Sprintf("%d", s.Positions),
			s.Contracts.String(),
			utils.FormatCurrency(s.PremiumCollected),
			utils.FormatCurrency(s.CapitalSecured),
		})
	}

	summary.SetFooter([]string{"total", "", "", utils.FormatCurrency(result.Summary.TotalPremiumCollected), utils.FormatCurrency(result.Summary.TotalCapitalSecured)})
	summary.Render()
}
