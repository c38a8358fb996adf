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

package ftq

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

const (
	// MaxSamples is the maximum number of samples per thread
	MaxSamples = 2000000
	// DefaultSamples is the default number of samples per thread
	DefaultSamples = 524288
	// DefaultFrequency is the default sampling frequency in Hz, giving a 100us quantum
	DefaultFrequency = 10000.0
	// DefaultOutName is the default prefix of output files
	DefaultOutName = "ftq"
)

// ErrStdoutThreads is returned when single stream output is combined with multiple threads
var ErrStdoutThreads = errors.New("cannot output to stdout for more than one thread")

// Config specifies FTQ run options
type Config struct {
	Samples            int     `yaml:"samples"`              // samples per thread
	Frequency          float64 `yaml:"frequency"`            // sampling frequency in Hz, defines the quantum
	Threads            int     `yaml:"threads"`              // number of measurement threads, thread N is pinned to core N
	TicksPerNS         float64 `yaml:"ticks_per_ns"`         // counter rate, calibrated when 0
	Argument           string  `yaml:"argument"`             // opaque argument passed to the work unit
	Work               string  `yaml:"work"`                 // name of the work unit
	IgnoreWireFailures bool    `yaml:"ignore_wire_failures"` // keep going when a thread can't be pinned
	Realtime           bool    `yaml:"realtime"`             // request real-time scheduling for measurement threads
	Stdout             bool    `yaml:"stdout"`               // write samples to stdout, single thread only
	OutName            string  `yaml:"outname"`              // prefix of per-thread output files
	MetricsFile        string  `yaml:"metrics_file"`         // write run metrics in prometheus text format here
	Summary            bool    `yaml:"summary"`              // print per-thread diagnostics table to stderr
}

// DefaultConfig returns Config initialized with default values
func DefaultConfig() *Config {
	return &Config{
		Samples:   DefaultSamples,
		Frequency: DefaultFrequency,
		Threads:   1,
		Work:      WorkSpin,
		OutName:   DefaultOutName,
	}
}

// Quantum returns the length of a single sampling quantum
func (c *Config) Quantum() time.Duration {
	return time.Duration(1e9 / c.Frequency)
}

// Validate Config is sane
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("bad config: 'samples' must be >0")
	}
	if c.Samples > MaxSamples {
		return fmt.Errorf("bad config: 'samples' must be <=%d", MaxSamples)
	}
	if !finite(c.Frequency) || c.Frequency <= 0 || c.Frequency > 1e9 {
		return fmt.Errorf("bad config: 'frequency' must be between 0 and 1GHz")
	}
	if c.Threads < 1 {
		return fmt.Errorf("bad config: 'threads' must be >0")
	}
	if !finite(c.TicksPerNS) || c.TicksPerNS < 0 {
		return fmt.Errorf("bad config: 'ticks_per_ns' must be positive, or 0 to calibrate")
	}
	if _, ok := works[c.Work]; !ok {
		return fmt.Errorf("bad config: unsupported 'work' %q, must be one of %v", c.Work, WorkNames())
	}
	if c.Stdout && c.Threads > 1 {
		return fmt.Errorf("bad config: %w", ErrStdoutThreads)
	}
	if !c.Stdout && c.OutName == "" {
		return fmt.Errorf("bad config: 'outname' must be specified when not writing to stdout")
	}
	return nil
}

// ReadConfig reads config from the file
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// flag names which can override values from the config file
const (
	FlagSamples            = "numsamples"
	FlagFrequency          = "frequency"
	FlagThreads            = "threads"
	FlagTicksPerNS         = "ticksperns"
	FlagArgument           = "argument"
	FlagWork               = "work"
	FlagIgnoreWireFailures = "ignore-wire-failures"
	FlagRealtime           = "realtime"
	FlagStdout             = "stdout"
	FlagOutName            = "outname"
	FlagMetricsFile        = "metrics-file"
	FlagSummary            = "summary"
)

// PrepareConfig reads the config file if provided, applies values of the flags which were set
// explicitly and validates the result.
func PrepareConfig(cfgPath string, flags *Config, setFlags map[string]bool) (*Config, error) {
	cfg := DefaultConfig()
	var err error
	if cfgPath != "" {
		cfg, err = ReadConfig(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("reading config from %q: %w", cfgPath, err)
		}
	}
	override := func(name string, apply func()) {
		if !setFlags[name] {
			return
		}
		if cfgPath != "" {
			log.Warningf("overriding %s from CLI flag", name)
		}
		apply()
	}
	override(FlagSamples, func() { cfg.Samples = flags.Samples })
	override(FlagFrequency, func() { cfg.Frequency = flags.Frequency })
	override(FlagThreads, func() { cfg.Threads = flags.Threads })
	override(FlagTicksPerNS, func() { cfg.TicksPerNS = flags.TicksPerNS })
	override(FlagArgument, func() { cfg.Argument = flags.Argument })
	override(FlagWork, func() { cfg.Work = flags.Work })
	override(FlagIgnoreWireFailures, func() { cfg.IgnoreWireFailures = flags.IgnoreWireFailures })
	override(FlagRealtime, func() { cfg.Realtime = flags.Realtime })
	override(FlagStdout, func() { cfg.Stdout = flags.Stdout })
	override(FlagOutName, func() { cfg.OutName = flags.OutName })
	override(FlagMetricsFile, func() { cfg.MetricsFile = flags.MetricsFile })
	override(FlagSummary, func() { cfg.Summary = flags.Summary })

	if cfg.Samples > MaxSamples {
		log.Warningf("sample count %d exceeds maximum, setting count to %d", cfg.Samples, MaxSamples)
		cfg.Samples = MaxSamples
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	log.Debugf("config: %s", spew.Sdump(cfg))
	return cfg, nil
}

// finite is false for NaN and infinities, which pass ordinary range checks
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
