package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"listprof/internal/benchmark"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")) // Brand Color
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // Cyan/Teal
	foundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")) // Green
	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")) // Gray
	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
)

// Console prints reports in the layout of the classic list profiler:
//
//	Timing ArrayList:
//		Filling List: 1.234ms
//		...
type Console struct {
	w      io.Writer
	logger *slog.Logger
}

func NewConsole(w io.Writer, logger *slog.Logger) *Console {
	return &Console{w: w, logger: logger}
}

func (c *Console) Report(r benchmark.Report) {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Timing %s:", r.Container)))
	b.WriteString("\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "\t%s %s\n", labelStyle.Render(phaseLabel(p.Phase)+":"), durationStyle.Render(formatMillis(p.Duration)))
		if p.Phase == benchmark.PhaseSearch {
			fmt.Fprintf(&b, "\t\tSearch results: %s\n", renderSearches(p.Searches))
		}
	}
	if r.Failed() {
		fmt.Fprintf(&b, "\t%s\n", failureStyle.Render("Failed: "+r.Failure))
	}
	b.WriteString("\n")

	if _, err := io.WriteString(c.w, b.String()); err != nil {
		c.logger.Error("failed to write console report", "container", r.Container, "error", err)
	}
}

func renderSearches(results []benchmark.SearchResult) string {
	flags := make([]string, len(results))
	for i, s := range results {
		if s.Found {
			flags[i] = foundStyle.Render("true")
		} else {
			flags[i] = missingStyle.Render("false")
		}
	}
	return "[" + strings.Join(flags, " ") + "]"
}

// formatMillis keeps sub-millisecond precision, which matters for the
// search phase.
func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}
