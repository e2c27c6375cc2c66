package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"listprof/internal/benchmark"
	"listprof/internal/config"
	"listprof/internal/container"
	"listprof/internal/db"
	"listprof/internal/report"
	"listprof/internal/telemetry"
)

// askOneFunc allows mocking the interactive prompt in tests.
var askOneFunc = survey.AskOne

// newStoreFunc allows swapping the history store in tests.
var newStoreFunc = func(cfg db.StoreConfig) (benchmark.Store, error) {
	return db.NewStore(cfg)
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Time fill, increment, search and drain on each list implementation",
		Long: `Runs the fixed four-phase workload once against a fresh instance of
every selected container and reports the wall-clock time of each phase.

Containers: array, linked, sync, talkative.`,
		Args: cobra.NoArgs,
		RunE: runProfile,
	}

	flags := cmd.Flags()
	flags.IntP("length", "n", 100000, "Number of elements in the workload")
	flags.StringSliceP("containers", "c", nil, "Containers to profile (default all)")
	flags.StringP("format", "f", "console", "Report format: "+strings.Join(config.Formats, ", "))
	flags.String("talkative-output", "stdout", "Where TalkativeList narrates searches: stdout, log, none")
	flags.Bool("save", false, "Save the session to history")
	flags.String("history-type", "file", "History store: file, sqlite, postgres")
	flags.String("history-dsn", "", "History file path or database DSN (default .listprof/history.json or .listprof/history.db)")
	flags.Bool("compare", false, "Compare with the latest saved session")
	flags.Float64("threshold", 10.0, "Percentage slowdown reported as a regression")
	flags.Bool("fail-on-regression", false, "Exit non-zero when a regression is found")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address after the run until interrupted")
	flags.String("metrics-textfile", "", "Write Prometheus metrics to this textfile")
	flags.BoolP("interactive", "i", false, "Pick containers interactively")

	bindFlag(flags, "length", "length")
	bindFlag(flags, "containers", "containers")
	bindFlag(flags, "format", "format")
	bindFlag(flags, "talkative-output", "talkative.output")
	bindFlag(flags, "save", "history.enabled")
	bindFlag(flags, "history-type", "history.type")
	bindFlag(flags, "history-dsn", "history.dsn")
	bindFlag(flags, "threshold", "compare.threshold")
	bindFlag(flags, "metrics-addr", "metrics.addr")
	bindFlag(flags, "metrics-textfile", "metrics.textfile")

	return cmd
}

func runProfile(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logger := slog.Default()

	kinds, err := selectKinds(cmd)
	if err != nil {
		return err
	}

	workload, err := benchmark.NewWorkload(viper.GetInt("length"))
	if err != nil {
		return err
	}

	rep, err := report.New(viper.GetString("format"), out, logger)
	if err != nil {
		return err
	}
	metrics := telemetry.NewMetrics()
	reporter := report.Multi{rep, report.NewMetrics(metrics)}

	subjects := buildSubjects(kinds, talkativeObserver(cmd, logger))

	runner := benchmark.NewRunner(benchmark.WithLogger(logger))
	session := runner.RunSession(cmd.Context(), workload, subjects, reporter.Report)

	compareOn, _ := cmd.Flags().GetBool("compare")
	failOnRegression, _ := cmd.Flags().GetBool("fail-on-regression")
	regressions, err := recordHistory(out, session, compareOn)
	if err != nil {
		return err
	}

	if path := viper.GetString("metrics.textfile"); path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			return err
		}
	}

	if addr := viper.GetString("metrics.addr"); addr != "" && !session.Interrupted {
		fmt.Fprintf(out, "Serving metrics on %s/metrics, press Ctrl+C to stop\n", addr)
		if err := telemetry.StartMetricsServer(cmd.Context(), addr, metrics.Handler()); err != nil {
			return fmt.Errorf("metrics server failed: %w", err)
		}
	}

	if session.Interrupted {
		return fmt.Errorf("profiling interrupted after %d of %d containers", len(session.Reports), len(subjects))
	}
	if err := session.Err(); err != nil {
		return fmt.Errorf("profiling failed: %w", err)
	}
	if failOnRegression && len(regressions) > 0 {
		return fmt.Errorf("performance regression detected: %s", strings.Join(regressions, ", "))
	}
	return nil
}

// selectKinds returns the configured kinds, or asks for them when running
// interactively.
func selectKinds(cmd *cobra.Command) ([]container.Kind, error) {
	names := config.Containers()

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		var options []string
		for _, k := range container.Kinds() {
			options = append(options, string(k))
		}
		var selected []string
		prompt := &survey.MultiSelect{
			Message: "Select containers to profile:",
			Options: options,
			Default: names,
		}
		if err := askOneFunc(prompt, &selected); err != nil {
			return nil, err
		}
		if len(selected) == 0 {
			return nil, fmt.Errorf("no containers selected")
		}
		names = selected
	}

	kinds := make([]container.Kind, 0, len(names))
	for _, name := range names {
		k, err := container.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// talkativeObserver picks where TalkativeList narrates its searches. JSON
// and YAML reports own stdout, so narration meant for stdout goes to stderr
// for them.
func talkativeObserver(cmd *cobra.Command, logger *slog.Logger) container.Observer[int] {
	switch strings.ToLower(viper.GetString("talkative.output")) {
	case "log":
		return container.LogObserver[int](logger)
	case "none":
		return nil
	}
	if structuredFormat(viper.GetString("format")) {
		return container.WriterObserver[int](cmd.ErrOrStderr())
	}
	return container.WriterObserver[int](cmd.OutOrStdout())
}

func structuredFormat(format string) bool {
	switch strings.ToLower(format) {
	case "json", "yaml":
		return true
	}
	return false
}

func buildSubjects(kinds []container.Kind, observer container.Observer[int]) []benchmark.Subject {
	subjects := make([]benchmark.Subject, 0, len(kinds))
	for _, k := range kinds {
		k := k
		subjects = append(subjects, benchmark.Subject{
			Name: k.DisplayName(),
			New: func() container.List[int] {
				// kinds are validated by ParseKind, New cannot fail here
				l, _ := container.New[int](k, observer)
				return l
			},
		})
	}
	return subjects
}

// recordHistory compares the session with the latest stored one and saves
// it, depending on flags. It returns the regressions found.
func recordHistory(out io.Writer, session benchmark.Session, compareOn bool) ([]string, error) {
	save := viper.GetBool("history.enabled")
	if !save && !compareOn {
		return nil, nil
	}

	store, err := newStoreFunc(db.StoreConfig{
		Type:             viper.GetString("history.type"),
		ConnectionString: viper.GetString("history.dsn"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	var regressions []string
	if compareOn {
		prev, err := store.LoadLatest()
		if err != nil {
			return nil, fmt.Errorf("failed to load history: %w", err)
		}
		if prev == nil {
			fmt.Fprintln(out, "No previous session to compare with.")
		} else {
			threshold := viper.GetFloat64("compare.threshold")
			comps := benchmark.Compare(*prev, session)
			fmt.Fprintf(out, "Comparison with previous session %s:\n", shortID(prev.ID))
			printComparison(out, comps, threshold)
			for _, c := range comps {
				if c.Regressed(threshold) {
					regressions = append(regressions, fmt.Sprintf("%s/%s %.2f%% slower", c.Container, c.Phase, c.Diff))
				}
			}
		}
	}

	if save {
		if err := store.Save(session); err != nil {
			return nil, fmt.Errorf("failed to save history: %w", err)
		}
		fmt.Fprintf(out, "Session %s saved to %s history\n", shortID(session.ID), viper.GetString("history.type"))
	}
	return regressions, nil
}
