package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stockcharts/market"
	"github.com/rustyeddy/stockcharts/pipeline"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the price indicators of a single day",
	Long: `Print open, high, low and close of one instrument on one day.

Examples:
  stockcharts snapshot
  stockcharts snapshot --symbol MSFT --date 2021-06-01`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

var (
	snapshotSymbol string
	snapshotDate   string
)

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVarP(&snapshotSymbol, "symbol", "s", "", "instrument symbol (default from config)")
	snapshotCmd.Flags().StringVarP(&snapshotDate, "date", "d", "", "day as YYYY-MM-DD (default from config)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if snapshotSymbol == "" {
		snapshotSymbol = cfg.Snapshot.Instrument
	}
	if snapshotDate == "" {
		snapshotDate = cfg.Snapshot.Date
	}

	in, ok := cfg.Instrument(snapshotSymbol)
	if !ok {
		return fmt.Errorf("unknown instrument: %s", snapshotSymbol)
	}
	d, err := market.ParseDate(snapshotDate)
	if err != nil {
		return err
	}

	series, err := pipeline.LoadSeries(cfg, in)
	if err != nil {
		return err
	}

	inds := pipeline.Snapshot(series.Records, d)
	if len(inds) == 0 {
		fmt.Printf("no %s record on %s\n", in.Symbol, d)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Indicators\tDollars")
	for _, ind := range inds {
		fmt.Fprintf(tw, "%s\t%g\n", ind.Name, ind.Value)
	}
	return tw.Flush()
}
