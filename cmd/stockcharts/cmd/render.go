package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stockcharts/chart/render"
	"github.com/rustyeddy/stockcharts/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render charts to HTML files",
	Long: `Run the pipeline and write the charts as HTML.

index.html holds every displayed chart; each chart is also written to its
own file. Trend charts are included when charts.show_trend is set or --all
is given.

Examples:
  stockcharts render
  stockcharts render --out ./site --all`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var (
	renderOut string
	renderAll bool
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output directory (default from config)")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "include hidden trend charts")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if renderOut != "" {
		cfg.Output.Dir = renderOut
	}

	rep, err := pipeline.Run(cfg, newLogger())
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	paths, err := render.WriteFiles(cfg.Output.Dir, pageTitle, rep.Figures(renderAll))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := recordJournal(cfg, rep); err != nil {
		return err
	}

	fmt.Printf("✓ Wrote %d files to %s\n", len(paths), cfg.Output.Dir)
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

const pageTitle = "Stock Price Charts"
