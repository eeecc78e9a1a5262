package journal

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// FormatSummariesTable renders summaries as an aligned plain text table.
func FormatSummariesTable(recs []SummaryRecord) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "instrument\trange\tmonth\topen\thigh\tlow\tclose\tdays\t")
	for _, s := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t\n",
			s.Instrument, s.Range, s.Month.Format("2006-01"),
			s.Open, s.High, s.Low, s.Close, s.Days)
	}
	tw.Flush()
	return b.String()
}

// FormatRunsTable lists runs with their start time.
func FormatRunsTable(runs []Run) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "run_id\tstarted_at")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\n", r.RunID, r.StartedAt.UTC().Format("2006-01-02 15:04:05"))
	}
	tw.Flush()
	return b.String()
}
