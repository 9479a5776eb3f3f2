package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/optionshq/src/cmd/classify/run"
	"github.com/jiaming2012/optionshq/src/utils"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/classify/main.go --options options.csv --holdings holdings.csv",
	Short: "Label option positions with the strategy they implement",
	Run: func(cmd *cobra.Command, args []string) {
		optionsFile, err := cmd.Flags().GetString("options")
		if err != nil {
			log.Fatalf("error getting options: %v", err)
		}

		holdingsFile, err := cmd.Flags().GetString("holdings")
		if err != nil {
			log.Fatalf("error getting holdings: %v", err)
		}

		outFile, err := cmd.Flags().GetString("out")
		if err != nil {
			log.Fatalf("error getting out: %v", err)
		}

		result, err := run.Run(run.RunArgs{
			OptionsFile:  optionsFile,
			HoldingsFile: holdingsFile,
		})
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		if outFile == "" {
			run.RenderTable(os.Stdout, result)
			return
		}

		if err := utils.WriteCSVFile(result.Options, outFile); err != nil {
			log.Fatalf("Failed to export to CSV: %v", err)
		}

		fmt.Println("CSV file written to: ", outFile)
	},
}

func main() {
	runCmd.PersistentFlags().String("options", "", "CSV file of option positions.")
	runCmd.PersistentFlags().String("holdings", "", "CSV file of stock holdings.")
	runCmd.PersistentFlags().String("out", "", "Write classified positions to this CSV file instead of printing a table.")

	runCmd.MarkPersistentFlagRequired("options")

	if err := runCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
