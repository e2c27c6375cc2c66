package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"listprof/internal/basics"
)

func newFibCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Print the Fibonacci sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("recursive") {
				n, _ := cmd.Flags().GetInt("recursive")
				if n < 0 || n > 50 {
					return fmt.Errorf("--recursive must be between 0 and 50, got %d", n)
				}
				fmt.Fprintln(out, basics.Fibonacci(n))
				return nil
			}

			length, _ := cmd.Flags().GetInt("length")
			if length < 1 {
				return fmt.Errorf("--length must be positive, got %d", length)
			}
			for _, v := range basics.FibonacciSequence(length) {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().Int("length", 100, "How many numbers of the sequence to print")
	cmd.Flags().Int("recursive", 0, "Compute only the nth number, recursively")
	return cmd
}

func newFizzBuzzCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fizzbuzz",
		Short: "Play FizzBuzz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetInt("from")
			to, _ := cmd.Flags().GetInt("to")
			if to < from {
				return fmt.Errorf("--to (%d) must not be less than --from (%d)", to, from)
			}
			for _, line := range basics.FizzBuzzRange(from, to) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().Int("from", 1, "First number")
	cmd.Flags().Int("to", 99, "Last number")
	return cmd
}
