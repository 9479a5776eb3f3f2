package run

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/jiaming2012/optionshq/src/eventmodels"
	"github.com/jiaming2012/optionshq/src/eventservices"
	"github.com/jiaming2012/optionshq/src/utils"
)

type RunArgs struct {
	Symbols    []eventmodels.StockSymbol
	OptionType eventmodels.OptionType
	MaxDays    int
	Config     eventmodels.ScreenerConfigYAML
	Now        time.Time
}

type RunResult struct {
	Result *eventmodels.CandidateScanResult
}

func Run(ctx context.Context, fetcher eventservices.OptionsChainFetcher, args RunArgs) (RunResult, error) {
	params := eventmodels.ScanParams{
		OptionType:          args.Config.OptionType,
		MaxDaysToExpiration: args.Config.MaxDaysToExpiration,
		Thresholds:          args.Config.Thresholds,
		Now:                 args.Now,
	}

	if args.OptionType != "" {
		params.OptionType = args.OptionType
	}

	if args.MaxDays > 0 {
		params.MaxDaysToExpiration = args.MaxDays
	}

	if err := params.OptionType.Validate(); err != nil {
		return RunResult{}, fmt.Errorf("scan: %w", err)
	}

	scanner := eventservices.NewCandidateScanner(fetcher, args.Config.RequestsPerSecond, args.Config.MaxConcurrency)

	result, err := scanner.Scan(ctx, args.Symbols, params)
	if err != nil {
		return RunResult{}, fmt.Errorf("scan: %w", err)
	}

	return RunResult{Result: result}, nil
}

func RenderTable(w io.Writer, result *eventmodels.CandidateScanResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Type", "Strike", "Expiration", "DTE", "Bid", "Return", "Annualized"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, c := range result.Candidates {
		dte := "-"
		if c.DaysToExpiration != nil {
			dte = fmt.Sprintf("%d", *c.DaysToExpiration)
		}

		bid := "-"
		if c.BidPrice != nil {
			bid = fmt.Sprintf("%.2f", *c.BidPrice)
		}

		table.Append([]string{
			c.Symbol.NoPrefix(),
			string(c.OptionType),
			fmt.Sprintf("%.2f", c.StrikePrice),
			string(c.ExpirationDate),
			dte,
			bid,
			utils.FormatPercent(c.ExpectedReturnPercentage),
			utils.FormatPercent(c.ExpectedAnnualizedReturnPercentage),
		})
	}

	table.SetFooter([]string{"", "", "", "", "", "count", fmt.Sprintf("%d", result.Summary.Count), utils.FormatPercent(&result.Summary.MeanAnnualizedReturn)})
	table.Render()

	if len(result.Failed) > 0 {
		fmt.Fprintf(w, "failed underlyings: %v\n", result.Failed)
	}
}
