package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/ictest/clock"
	"github.com/sarchlab/ictest/command"
)

var clockCmd = &cobra.Command{
	Use:   "clock <frequency-hz>",
	Short: "Show the divider/compare selection for a clock frequency",
	Long: `Compute the divider and compare value the hardware counter would ` +
		`use for the requested output frequency, and the actual frequency ` +
		`the integer approximation yields.`,
	Args: cobra.ExactArgs(1),
	RunE: runClock,
}

func init() {
	rootCmd.AddCommand(clockCmd)
}

func runClock(cmd *cobra.Command, args []string) error {
	f, err := command.ParseFrequency(args[0])
	if err != nil {
		return err
	}

	ref := refClockFromEnv()
	counter := clock.NewSimCounter()
	generator := clock.MakeBuilder().
		WithCounter(counter).
		WithRefClock(ref).
		Build()

	generator.Configure(f)
	generator.Start()
	defer generator.Stop()

	fmt.Printf("Requested: %.0f Hz\n", float64(f))
	fmt.Printf("Reference: %.0f Hz\n", float64(ref))
	fmt.Printf("Divider:   %d\n", counter.Divider())
	fmt.Printf("Compare:   %d\n", counter.Compare())
	fmt.Printf("Actual:    %.3f Hz\n", float64(counter.OutputFreq(ref)))

	return nil
}
