// Package report renders benchmark reports. Reporters never modify the
// report they are given and never fail the benchmark: rendering errors are
// logged and swallowed.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"listprof/internal/benchmark"
)

// Reporter receives a finished benchmark report and renders it.
type Reporter interface {
	Report(r benchmark.Report)
}

// Multi fans a report out to several reporters in order.
type Multi []Reporter

func (m Multi) Report(r benchmark.Report) {
	for _, rep := range m {
		rep.Report(r)
	}
}

// New builds the reporter registered under format, writing to w.
func New(format string, w io.Writer, logger *slog.Logger) (Reporter, error) {
	switch strings.ToLower(format) {
	case "console", "":
		return NewConsole(w, logger), nil
	case "log":
		return NewLog(logger), nil
	case "json":
		return NewJSON(w, logger), nil
	case "yaml":
		return NewYAML(w, logger), nil
	case "markdown", "md":
		return NewMarkdown(w, logger), nil
	default:
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
}

// phaseLabels mirror the wording of the classic list profiler output.
var phaseLabels = map[benchmark.Phase]string{
	benchmark.PhaseFill:      "Filling List",
	benchmark.PhaseIncrement: "Incrementing List",
	benchmark.PhaseSearch:    "Searching List",
	benchmark.PhaseDrain:     "Pop Front of List",
}

func phaseLabel(p benchmark.Phase) string {
	if l, ok := phaseLabels[p]; ok {
		return l
	}
	return string(p)
}

// searchFlags renders search answers as "[true true false]".
func searchFlags(results []benchmark.SearchResult) string {
	flags := make([]string, len(results))
	for i, s := range results {
		flags[i] = fmt.Sprintf("%t", s.Found)
	}
	return "[" + strings.Join(flags, " ") + "]"
}
