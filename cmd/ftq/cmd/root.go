/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/facebook/ftq/ftq"
	"github.com/facebook/ftq/platform"
)

// RootCmd is a main entry point
var RootCmd = &cobra.Command{
	Use:   "ftq",
	Short: "Fixed Time Quantum OS noise benchmark",
	Long: `ftq counts how many fixed units of work each thread completes in successive
quanta of equal length. Quanta with lower counts show interference from the OS
or hardware. Thread N is pinned to core N and writes <outname>_N.dat.`,
	Args: cobra.NoArgs,
	Run:  runRootCmd,
}

// flags
var (
	rootVerboseFlag bool
	rootConfigFlag  string
	rootFlags       = ftq.DefaultConfig()
)

// runConfig runs the benchmark with the prepared config
var runConfig = func(cfg *ftq.Config) error {
	return run(cfg, platform.New(), os.Stdout, os.Stderr)
}

func init() {
	flags := RootCmd.Flags()
	flags.BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	flags.StringVar(&rootConfigFlag, "config", "", "path to the yaml config, flags override its values")
	flags.IntVarP(&rootFlags.Threads, ftq.FlagThreads, "t", rootFlags.Threads, "number of measurement threads, thread N runs on core N")
	flags.IntVarP(&rootFlags.Samples, ftq.FlagSamples, "n", rootFlags.Samples, fmt.Sprintf("samples per thread, at most %d", ftq.MaxSamples))
	flags.Float64VarP(&rootFlags.Frequency, ftq.FlagFrequency, "f", rootFlags.Frequency, "sampling frequency in Hz")
	flags.StringVarP(&rootFlags.OutName, ftq.FlagOutName, "o", rootFlags.OutName, "output file name prefix")
	flags.BoolVarP(&rootFlags.Stdout, ftq.FlagStdout, "s", false, "write samples to stdout, only with a single thread")
	flags.Float64VarP(&rootFlags.TicksPerNS, ftq.FlagTicksPerNS, "T", 0, "cycle counter ticks per ns, calibrated when 0")
	flags.BoolVarP(&rootFlags.IgnoreWireFailures, ftq.FlagIgnoreWireFailures, "w", false, "keep going if a thread can't be pinned to its core. Only do this if there is no option")
	flags.BoolVarP(&rootFlags.Realtime, ftq.FlagRealtime, "r", false, "run measurement threads with real-time priority")
	flags.StringVarP(&rootFlags.Argument, ftq.FlagArgument, "a", "", "argument passed to the work unit")
	flags.StringVar(&rootFlags.Work, ftq.FlagWork, rootFlags.Work, fmt.Sprintf("work unit, one of %v", ftq.WorkNames()))
	flags.StringVar(&rootFlags.MetricsFile, ftq.FlagMetricsFile, "", "write run metrics in prometheus text format into this file")
	flags.BoolVar(&rootFlags.Summary, ftq.FlagSummary, false, "print per-thread diagnostics table to stderr")
}

// ConfigureVerbosity configures log verbosity based on parsed flags
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

// prepareRootConfig merges the config file with flags set on the command line
func prepareRootConfig(c *cobra.Command) (*ftq.Config, error) {
	setFlags := map[string]bool{}
	c.Flags().Visit(func(f *pflag.Flag) {
		setFlags[f.Name] = true
	})
	return ftq.PrepareConfig(rootConfigFlag, rootFlags, setFlags)
}

func runRootCmd(c *cobra.Command, _ []string) {
	ConfigureVerbosity()
	cfg, err := prepareRootConfig(c)
	if err != nil {
		log.Fatal(err)
	}
	if err := runConfig(cfg); err != nil {
		log.Fatal(err)
	}
}

// Execute is the main entry point for CLI interface
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
