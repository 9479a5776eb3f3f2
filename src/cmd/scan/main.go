package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/optionshq/src/cmd/scan/run"
	"github.com/jiaming2012/optionshq/src/eventmodels"
	"github.com/jiaming2012/optionshq/src/eventservices"
	"github.com/jiaming2012/optionshq/src/utils"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/scan/main.go --symbols SPY,AAPL --option-type put --max-days 30",
	Short: "Rank cash secured premium candidates across underlyings",
	Run: func(cmd *cobra.Command, args []string) {
		symbols, err := cmd.Flags().GetStringSlice("symbols")
		if err != nil {
			log.Fatalf("error getting symbols: %v", err)
		}

		optionType, err := cmd.Flags().GetString("option-type")
		if err != nil {
			log.Fatalf("error getting option-type: %v", err)
		}

		maxDays, err := cmd.Flags().GetInt("max-days")
		if err != nil {
			log.Fatalf("error getting max-days: %v", err)
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		outFile, err := cmd.Flags().GetString("out")
		if err != nil {
			log.Fatalf("error getting out: %v", err)
		}

		if err := utils.InitEnvironmentVariables(); err != nil {
			log.Fatalf("error loading environment variables: %v", err)
		}

		polygonApiKey, err := utils.GetEnv("POLYGON_API_KEY")
		if err != nil {
			log.Fatalf("%v", err)
		}

		config := eventmodels.DefaultScreenerConfig()
		if configFile != "" {
			if config, err = eventmodels.LoadScreenerConfig(configFile); err != nil {
				log.Fatalf("error loading screener config: %v", err)
			}
		}

		runArgs := run.RunArgs{
			MaxDays: maxDays,
			Config:  config,
			Now:     time.Now(),
		}

		if optionType != "" {
			runArgs.OptionType = eventmodels.NewOptionType(optionType)
		}

		if len(symbols) == 0 {
			symbols = config.DefaultWatchlist
		}

		for _, s := range symbols {
			runArgs.Symbols = append(runArgs.Symbols, eventmodels.NewStockSymbol(s))
		}

		result, err := run.Run(context.Background(), eventservices.NewPolygonOptionsChainFetcher(polygonApiKey), runArgs)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		if outFile == "" {
			run.RenderTable(os.Stdout, result.Result)
			return
		}

		if err := utils.WriteCSVFile(result.Result.Candidates, outFile); err != nil {
			log.Fatalf("Failed to export to CSV: %v", err)
		}

		fmt.Println("CSV file written to: ", outFile)
	},
}

func main() {
	runCmd.PersistentFlags().StringSlice("symbols", []string{}, "Underlyings to scan. Defaults to the config's watchlist.")
	runCmd.PersistentFlags().String("option-type", "", "call or put. Defaults to the config's option type.")
	runCmd.PersistentFlags().Int("max-days", 0, "Latest expiration, in days from today.")
	runCmd.PersistentFlags().String("config", "", "Path to a screener config YAML file.")
	runCmd.PersistentFlags().String("out", "", "Write candidates to this CSV file instead of printing a table.")

	if err := runCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
