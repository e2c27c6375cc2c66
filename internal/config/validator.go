package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"listprof/internal/container"
)

var (
	// Formats lists the accepted report formats.
	Formats = []string{"console", "log", "json", "yaml", "markdown"}
	// HistoryTypes lists the accepted history backends.
	HistoryTypes = []string{"file", "sqlite", "postgres"}
	// TalkativeOutputs lists where TalkativeList narration can go.
	TalkativeOutputs = []string{"stdout", "log", "none"}
)

// Containers returns the configured container kinds. viper hands back a
// string slice from YAML but a single string from the environment, so a
// comma separated value is split as well.
func Containers() []string {
	var out []string
	for _, entry := range viper.GetStringSlice("containers") {
		for _, name := range strings.Split(entry, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if length := viper.GetInt("length"); length < 2 {
		errors = append(errors, fmt.Sprintf("length must be at least 2, got: %d", length))
	}

	containers := Containers()
	if len(containers) == 0 {
		errors = append(errors, "containers must name at least one container")
	}
	for _, name := range containers {
		if _, err := container.ParseKind(name); err != nil {
			errors = append(errors, err.Error())
		}
	}

	if format := viper.GetString("format"); !oneOf(format, Formats) {
		errors = append(errors, fmt.Sprintf("format must be one of %s, got: %q", strings.Join(Formats, ", "), format))
	}

	if out := viper.GetString("talkative.output"); !oneOf(out, TalkativeOutputs) {
		errors = append(errors, fmt.Sprintf("talkative.output must be one of %s, got: %q", strings.Join(TalkativeOutputs, ", "), out))
	}

	if typ := viper.GetString("history.type"); !oneOf(typ, HistoryTypes) {
		errors = append(errors, fmt.Sprintf("history.type must be one of %s, got: %q", strings.Join(HistoryTypes, ", "), typ))
	}

	if viper.GetBool("history.enabled") && viper.GetString("history.type") == "postgres" && viper.GetString("history.dsn") == "" {
		errors = append(errors, "history.dsn is required for the postgres history store")
	}

	if threshold := viper.GetFloat64("compare.threshold"); threshold < 0 {
		errors = append(errors, fmt.Sprintf("compare.threshold must not be negative, got: %v", threshold))
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}
