package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"listprof/internal/benchmark"
	"listprof/internal/db"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved profiling sessions",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}

	flags := cmd.Flags()
	flags.Int("limit", 10, "Show at most this many sessions, newest last")
	flags.Bool("compare", false, "Compare the two most recent sessions")
	flags.String("history-type", "file", "History store: file, sqlite, postgres")
	flags.String("history-dsn", "", "History file path or database DSN (default .listprof/history.json or .listprof/history.db)")
	flags.Float64("threshold", 10.0, "Percentage slowdown reported as a regression")

	bindFlag(flags, "history-type", "history.type")
	bindFlag(flags, "history-dsn", "history.dsn")
	bindFlag(flags, "threshold", "compare.threshold")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	store, err := newStoreFunc(db.StoreConfig{
		Type:             viper.GetString("history.type"),
		ConnectionString: viper.GetString("history.dsn"),
	})
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	sessions, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No saved sessions.")
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[len(sessions)-limit:]
	}
	printSessions(out, sessions)

	if compareOn, _ := cmd.Flags().GetBool("compare"); compareOn {
		if len(sessions) < 2 {
			fmt.Fprintln(out, "\nNeed at least two sessions to compare.")
			return nil
		}
		prev, curr := sessions[len(sessions)-2], sessions[len(sessions)-1]
		fmt.Fprintf(out, "\nComparison %s -> %s:\n", shortID(prev.ID), shortID(curr.ID))
		printComparison(out, benchmark.Compare(prev, curr), viper.GetFloat64("compare.threshold"))
	}
	return nil
}

func printSessions(out io.Writer, sessions []benchmark.Session) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SESSION\tTIME\tLENGTH\tCONTAINER\tTOTAL\tSTATUS")
	for _, s := range sessions {
		for _, r := range s.Reports {
			status := "OK"
			if r.Failed() {
				status = "FAILED"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
				shortID(s.ID), s.Timestamp.Format(time.DateTime), s.Length, r.Container, r.Total().Round(time.Microsecond), status)
		}
	}
	w.Flush()
}

func printComparison(out io.Writer, comps []benchmark.Comparison, threshold float64) {
	if len(comps) == 0 {
		fmt.Fprintln(out, "No common container phases to compare.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CONTAINER\tPHASE\tPREV\tCURR\tDIFF %\tSTATUS")
	for _, c := range comps {
		status := "PASS"
		if c.Regressed(threshold) {
			status = "SLOWER"
		} else if c.Diff < -threshold {
			status = "FASTER"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%+.2f%%\t%s\n",
			c.Container, c.Phase, c.Prev.Round(time.Microsecond), c.Curr.Round(time.Microsecond), c.Diff, status)
	}
	w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
