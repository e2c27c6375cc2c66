package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"

	"listprof/internal/benchmark"
)

// Markdown renders each report as a markdown table through glamour.
type Markdown struct {
	w        io.Writer
	logger   *slog.Logger
	renderer *glamour.TermRenderer
}

// NewMarkdown falls back to raw markdown when no terminal renderer can be
// built.
func NewMarkdown(w io.Writer, logger *slog.Logger) *Markdown {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		logger.Warn("markdown renderer unavailable, printing raw markdown", "error", err)
		renderer = nil
	}
	return &Markdown{w: w, logger: logger, renderer: renderer}
}

func (m *Markdown) Report(r benchmark.Report) {
	doc := markdownTable(r)
	out := doc
	if m.renderer != nil {
		rendered, err := m.renderer.Render(doc)
		if err != nil {
			m.logger.Warn("markdown render failed", "container", r.Container, "error", err)
		} else {
			out = rendered
		}
	}
	if _, err := io.WriteString(m.w, out); err != nil {
		m.logger.Error("failed to write markdown report", "container", r.Container, "error", err)
	}
}

func markdownTable(r benchmark.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s (n=%d)\n\n", r.Container, r.Length)
	b.WriteString("| Phase | Duration | Operations | Observations |\n")
	b.WriteString("|---|---:|---:|---|\n")
	for _, p := range r.Phases {
		obs := ""
		if len(p.Searches) > 0 {
			parts := make([]string, len(p.Searches))
			for i, s := range p.Searches {
				parts[i] = fmt.Sprintf("%d=%t", s.Value, s.Found)
			}
			obs = strings.Join(parts, ", ")
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", phaseLabel(p.Phase), formatMillis(p.Duration), p.Operations, obs)
	}
	if r.Failed() {
		fmt.Fprintf(&b, "\n**Failed:** %s\n", r.Failure)
	}
	return b.String()
}
