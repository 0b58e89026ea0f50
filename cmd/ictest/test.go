package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/ictest/clock"
	"github.com/sarchlab/ictest/command"
	"github.com/sarchlab/ictest/session"
	"github.com/sarchlab/ictest/strategy"
)

var testFlags struct {
	device      string
	size        string
	clockHz     string
	traceFile   string
	monitorPort int
	openBrowser bool

	stuckDataBit int
	stuckAddrBit int
}

var testCmd = &cobra.Command{
	Use:   "test [selection...]",
	Short: "Run the test suite against the device in the socket",
	Long: `Run tests against the selected device. With no selection the ` +
		`suite of tests 1-6 runs with sampled coverage. FULL escalates to ` +
		`exhaustive coverage, RANDOM includes the random-pattern test, and ` +
		`a bare test number 1-7 runs a single test. FULL composes with ` +
		`both.`,
	Example: `  ictest test --device SRAM --size 32768
  ictest test FULL RANDOM
  ictest test 3 FULL
  ictest test --device Z80 --clock 1000000`,
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)

	testCmd.Flags().StringVar(&testFlags.device, "device", "SRAM",
		"device type: Z80, 6502 or SRAM")
	testCmd.Flags().StringVar(&testFlags.size, "size",
		envString("ICTEST_SIZE", "32768"),
		"memory device size in bytes (8192 or 32768)")
	testCmd.Flags().StringVar(&testFlags.clockHz, "clock", "",
		"clock frequency in Hz for CPU sockets (1 - 8000000)")
	testCmd.Flags().StringVar(&testFlags.traceFile, "trace",
		envString("ICTEST_TRACE", ""),
		"record bus transactions to this SQLite file")
	testCmd.Flags().IntVar(&testFlags.monitorPort, "monitor",
		envInt("ICTEST_MONITOR_PORT", 0),
		"serve live status and progress on this port")
	testCmd.Flags().BoolVar(&testFlags.openBrowser, "open", false,
		"open the status page when the monitor starts")

	testCmd.Flags().IntVar(&testFlags.stuckDataBit, "stuck-data-bit", -1,
		"inject a stuck-low data line into the simulated device")
	testCmd.Flags().IntVar(&testFlags.stuckAddrBit, "stuck-addr-bit", -1,
		"inject an open address line into the simulated device")
}

func runTest(cmd *cobra.Command, args []string) error {
	mode, err := command.ParseMode(testFlags.device)
	if err != nil {
		return err
	}

	size, err := command.ParseSize(testFlags.size)
	if err != nil {
		return err
	}

	sel, err := command.ParseSelection(args)
	if err != nil {
		return err
	}

	builder := session.MakeBuilder().
		WithSize(size).
		WithEventLogger(log.New(os.Stdout, "", 0)).
		WithRefClock(refClockFromEnv())
	if testFlags.traceFile != "" {
		builder = builder.WithTraceFile(testFlags.traceFile)
	}
	if testFlags.monitorPort != 0 {
		builder = builder.WithMonitorPort(testFlags.monitorPort)
		if testFlags.openBrowser {
			builder = builder.WithOpenDashboard()
		}
	}

	s := builder.Build()
	defer s.Flush()

	if testFlags.stuckDataBit >= 0 {
		s.Chip().InjectDataFault(testFlags.stuckDataBit)
	}
	if testFlags.stuckAddrBit >= 0 {
		s.Chip().InjectAddressFault(testFlags.stuckAddrBit)
	}

	if err := s.Bind(mode); err != nil {
		return err
	}

	if mode != strategy.SRAM {
		if testFlags.clockHz == "" {
			return fmt.Errorf("CPU sockets need --clock")
		}
		f, err := command.ParseFrequency(testFlags.clockHz)
		if err != nil {
			return err
		}
		s.ConfigureClock(f)
		s.StartClock()
		defer s.StopClock()
	}

	passed, err := s.RunSelection(sel)
	if err != nil {
		return err
	}

	if !passed {
		cmd.SilenceUsage = true
		return fmt.Errorf("device FAILED")
	}

	return nil
}

func refClockFromEnv() clock.Freq {
	return clock.Freq(envInt("ICTEST_REF_CLOCK", 16000000))
}
