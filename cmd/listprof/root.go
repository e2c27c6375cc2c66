package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"listprof/internal/config"
	"listprof/internal/telemetry"
)

var exit = os.Exit

// newRootCmd builds the command tree. Commands are built fresh on every call
// so tests never share flag state.
func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "listprof",
		Short: "Profile list implementations under an identical workload",
		Long: `listprof fills, increments, searches and drains several list
implementations with the same deterministic workload and reports how long
each phase took.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindViperFlags(cmd); err != nil {
				return err
			}
			return initConfig(cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also append JSON logs to this file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	bindFlag(rootCmd.PersistentFlags(), "verbose", "verbose")
	bindFlag(rootCmd.PersistentFlags(), "log-file", "log_file")
	bindFlag(rootCmd.PersistentFlags(), "no-color", "no_color")

	rootCmd.AddCommand(newProfileCmd(), newHistoryCmd(), newFibCmd(), newFizzBuzzCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		exit(1)
	}
}

const viperKeyAnnotation = "listprof_viper_key"

// bindFlag marks a flag as the command-line source of a config key. Binding
// happens once the executing command is known, because several commands
// share keys such as history.type.
func bindFlag(flags *pflag.FlagSet, name, key string) {
	_ = flags.SetAnnotation(name, viperKeyAnnotation, []string{key})
}

func bindViperFlags(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[viperKeyAnnotation]
		if len(keys) == 0 || err != nil {
			return
		}
		err = viper.BindPFlag(keys[0], f)
	})
	return err
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cfgFile string) error {
	if err := config.Load(cfgFile); err != nil {
		return err
	}

	// Validate configuration values
	if err := config.ValidateConfig(); err != nil {
		return err
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))

	if viper.GetBool("no_color") {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}
