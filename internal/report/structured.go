package report

import (
	"encoding/json"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"listprof/internal/benchmark"
)

// JSON writes one JSON object per report, newline delimited.
type JSON struct {
	enc    *json.Encoder
	logger *slog.Logger
}

func NewJSON(w io.Writer, logger *slog.Logger) *JSON {
	return &JSON{enc: json.NewEncoder(w), logger: logger}
}

func (j *JSON) Report(r benchmark.Report) {
	if err := j.enc.Encode(r); err != nil {
		j.logger.Error("failed to write json report", "container", r.Container, "error", err)
	}
}

// YAML writes one YAML document per report.
type YAML struct {
	w      io.Writer
	logger *slog.Logger
}

func NewYAML(w io.Writer, logger *slog.Logger) *YAML {
	return &YAML{w: w, logger: logger}
}

func (y *YAML) Report(r benchmark.Report) {
	data, err := yaml.Marshal(r)
	if err != nil {
		y.logger.Error("failed to marshal yaml report", "container", r.Container, "error", err)
		return
	}
	if _, err := y.w.Write(append([]byte("---\n"), data...)); err != nil {
		y.logger.Error("failed to write yaml report", "container", r.Container, "error", err)
	}
}
