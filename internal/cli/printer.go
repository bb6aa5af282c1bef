package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/extstat/internal/extstat"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintReport outputs the per-extension statistics followed by a summary,
// in the order extensions were first seen.
func PrintReport[V extstat.Value](report *extstat.Report[V], summary extstat.Summary, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "Extensions:\t")

	if report.Len() == 0 {
		fmt.Fprintln(w, "  (none)\t")
	}

	for ext, v := range report.All() {
		if ext == "" {
			ext = "\"\""
		}

		fmt.Fprintf(w, "  %s:\t%v\n", ext, v)
	}

	fmt.Fprintln(w, "\nStats:\t")
	fmt.Fprintf(w, "Total files:\t%s\n", humanize.Comma(summary.FileCount))
	fmt.Fprintf(w, "Total size:\t%s (%s bytes)\n",
		humanize.IBytes(uint64(summary.TotalBytes)), //nolint:gosec // Sizes are never negative
		humanize.Comma(summary.TotalBytes))
	fmt.Fprintf(w, "Elapsed:\t%v\n", summary.Elapsed)

	return w.Flush()
}
