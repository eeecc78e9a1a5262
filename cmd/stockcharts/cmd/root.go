package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stockcharts/config"
)

var rootCmd = &cobra.Command{
	Use:   "stockcharts",
	Short: "Monthly OHLC charts from daily equity prices",
	Long: `Stockcharts loads daily price files for a set of equities, resamples
them to monthly open/high/low/close summaries and renders the results.

It provides tools for:
  - Rendering bar, candlestick and candlestick/trend charts to HTML
  - Serving the charts over HTTP
  - Printing monthly summaries and single-day snapshots
  - Exporting summaries to CSV or SQLite journals`,
	SilenceUsage: true,
}

var (
	cfgFile string
	verbose bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "stockcharts.yaml", "config file (defaults are used when it does not exist)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress to stderr")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

func newLogger() *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}
