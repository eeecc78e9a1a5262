package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stockcharts/journal"
	"github.com/rustyeddy/stockcharts/pipeline"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [symbol...]",
	Short: "Print monthly OHLC summaries",
	Long: `Print the monthly summaries of the recent and historical ranges.

With no symbols every configured instrument is printed.

Examples:
  stockcharts summarize
  stockcharts summarize AAPL MSFT`,
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rep, err := pipeline.Run(cfg, newLogger())
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := recordJournal(cfg, rep); err != nil {
		return err
	}

	symbols := args
	if len(symbols) == 0 {
		for _, in := range cfg.Instruments {
			symbols = append(symbols, in.Symbol)
		}
	}

	var recs []journal.SummaryRecord
	for _, sym := range symbols {
		s, ok := rep.Summary(sym)
		if !ok {
			return fmt.Errorf("unknown instrument: %s", sym)
		}
		one := pipeline.Report{Ranges: rep.Ranges, Summaries: []pipeline.Summary{s}}
		recs = append(recs, one.Records("")...)
	}

	fmt.Print(journal.FormatSummariesTable(recs))
	return nil
}
