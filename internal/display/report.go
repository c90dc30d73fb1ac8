package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/planaudit/internal/models"
)

// PreviewLimit is the maximum number of unchecked entries shown per document
const PreviewLimit = 5

// Reporter formats per-document audit blocks to a writer.
// Color output is enabled automatically when the writer is a terminal.
type Reporter struct {
	writer      io.Writer
	colorOutput bool
}

// NewReporter creates a Reporter writing to the provided io.Writer.
// If writer is nil, output is silently discarded.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		writer:      w,
		colorOutput: isTerminal(w),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// Respects the NO_COLOR convention via the color library.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return !color.NoColor
}

// PrintReport emits one output block for a document: either a "no task
// checkboxes" notice, or a summary line followed by up to PreviewLimit
// unchecked entries and an overflow count when more exist.
func (r *Reporter) PrintReport(path string, report models.DocumentReport) {
	if r.writer == nil {
		return
	}

	if !report.HasTasks() {
		fmt.Fprintf(r.writer, "%s :: no task checkboxes\n", path)
		return
	}

	// Standard rounding to whole percent, total is nonzero in this branch
	pct := fmt.Sprintf("%.0f", report.Percent())

	displayPath := path
	if r.colorOutput {
		displayPath = color.New(color.Bold).Sprint(path)
		if pct == "100" {
			pct = color.New(color.FgGreen).Sprint(pct)
		}
	}

	fmt.Fprintf(r.writer, "%s :: %dx + %d~ / %d total = %s%% tested\n",
		displayPath, report.Done, report.InProgress, report.Total, pct)

	for i, entry := range report.Unchecked {
		if i >= PreviewLimit {
			break
		}
		fmt.Fprintf(r.writer, "  [ ] %d: %s\n", entry.Number, entry.Text)
	}

	if overflow := len(report.Unchecked) - PreviewLimit; overflow > 0 {
		if r.colorOutput {
			fmt.Fprintf(r.writer, "%s\n", color.New(color.FgYellow).Sprintf("  ... %d more unchecked", overflow))
		} else {
			fmt.Fprintf(r.writer, "  ... %d more unchecked\n", overflow)
		}
	}
}
