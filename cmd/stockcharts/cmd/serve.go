package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stockcharts/chart/render"
	"github.com/rustyeddy/stockcharts/pipeline"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve charts over HTTP",
	Long: `Run the pipeline once and serve the resulting chart page.

  /           all displayed charts
  /chart/{n}  a single chart

Examples:
  stockcharts serve
  stockcharts serve --addr :9000 --all`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr string
	serveAll  bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config)")
	serveCmd.Flags().BoolVar(&serveAll, "all", false, "include hidden trend charts")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Output.Addr = serveAddr
	}

	rep, err := pipeline.Run(cfg, newLogger())
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := recordJournal(cfg, rep); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	h := render.Handler(pageTitle, rep.Figures(serveAll))
	return render.Serve(ctx, cfg.Output.Addr, h, logger)
}
