package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/stockcharts/config"
	"github.com/rustyeddy/stockcharts/id"
	"github.com/rustyeddy/stockcharts/journal"
	"github.com/rustyeddy/stockcharts/pipeline"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query exported summary runs",
	Long: `Query monthly summaries recorded to a SQLite journal.

Subcommands:
  runs  - List recorded runs
  show  - Print the summaries of a run

Examples:
  stockcharts journal runs
  stockcharts journal show 01HV6Z0Q1N9W7S1BZ9J5R2K3XG`,
}

var journalRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runJournalRuns,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the summaries of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRunsCmd)
	journalCmd.AddCommand(journalShowCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./stockcharts.sqlite", "path to SQLite journal DB")
}

func runJournalRuns(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	runs, err := j.ListRuns()
	if err != nil {
		return fmt.Errorf("query runs: %w", err)
	}

	fmt.Print(journal.FormatRunsTable(runs))
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	runID, err := id.ParseRunID(args[0])
	if err != nil {
		return err
	}
	if _, err := j.GetRun(runID); err != nil {
		return err
	}
	recs, err := j.ListSummaries(runID)
	if err != nil {
		return fmt.Errorf("query summaries: %w", err)
	}

	fmt.Print(journal.FormatSummariesTable(recs))
	return nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.Path)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.Path)
	}
	return journal.Nop{}, nil
}

// recordJournal exports the run when a journal is configured.
func recordJournal(cfg *config.Config, rep *pipeline.Report) error {
	if cfg.Journal.Type == "" || cfg.Journal.Type == "none" {
		return nil
	}

	j, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	cfgYAML, err := yaml.Marshal(cfg)
	if err != nil {
		j.Close()
		return fmt.Errorf("marshal config: %w", err)
	}

	runID, err := id.NewRun()
	if err != nil {
		j.Close()
		return err
	}
	if err := j.RecordRun(journal.Run{RunID: runID, StartedAt: time.Now().UTC(), Config: string(cfgYAML)}); err != nil {
		j.Close()
		return fmt.Errorf("record run: %w", err)
	}
	if err := rep.Journal(j, runID); err != nil {
		j.Close()
		return err
	}
	if err := j.Close(); err != nil {
		return err
	}

	fmt.Printf("✓ Recorded run %s to %s journal %s\n", runID, cfg.Journal.Type, cfg.Journal.Path)
	return nil
}
