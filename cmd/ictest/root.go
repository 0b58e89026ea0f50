package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "ictest",
	Short: "ictest drives a parallel address/data bus to exercise memory " +
		"and CPU devices under test.",
	Long: `ictest drives a parallel address/data bus to exercise a memory ` +
		`device, or by extension a CPU, in the tester socket. It runs a ` +
		`battery of memory-integrity patterns with sampled or exhaustive ` +
		`coverage and generates a configurable hardware clock for CPU ` +
		`sockets.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can carry the defaults for monitor port, trace path and
	// reference clock.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
