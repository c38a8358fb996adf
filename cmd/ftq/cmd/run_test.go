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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/facebook/ftq/ftq"
)

// steppingPlatform advances a virtual nanosecond clock on every read,
// counter runs at 2 ticks per ns
type steppingPlatform struct {
	ns atomic.Int64
}

func (p *steppingPlatform) NowNS() int64 { return p.ns.Add(1000) }
func (p *steppingPlatform) NowTicks() uint64 { return uint64(p.ns.Add(500) * 2) }
func (p *steppingPlatform) PinToCore(int) error { return nil }
func (p *steppingPlatform) RaisePriority() error { return nil }
func (p *steppingPlatform) CoreCount() int { return 4 }
func (p *steppingPlatform) Describe(int) []string { return []string{"stepping platform"} }

func TestRunStdout(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "ftq.prom")
	cfg := ftq.DefaultConfig()
	cfg.Samples = 5
	cfg.Frequency = 1000
	cfg.Stdout = true
	cfg.Summary = true
	cfg.MetricsFile = metrics
	require.NoError(t, cfg.Validate())

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(cfg, &steppingPlatform{}, &stdout, &stderr))
	require.InDelta(t, 2.0, cfg.TicksPerNS, 0.1)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 7+5)
	require.Equal(t, "# stepping platform", lines[6])
	require.True(t, strings.HasPrefix(lines[7], "0 "))
	require.Contains(t, strings.ToUpper(stderr.String()), "STDDEV")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(data), "ftq_samples{thread=\"0\"} 5")
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := ftq.DefaultConfig()
	cfg.Samples = 4
	cfg.Frequency = 2000
	cfg.Threads = 3
	cfg.TicksPerNS = 2
	cfg.OutName = filepath.Join(dir, "ftq")
	require.NoError(t, cfg.Validate())

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(cfg, &steppingPlatform{}, &stdout, &stderr))
	require.Empty(t, stdout.String())
	require.Empty(t, stderr.String())

	for _, name := range []string{"ftq_0.dat", "ftq_1.dat", "ftq_2.dat"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 7+4)
	}
}

func TestRunRejectsStdoutThreads(t *testing.T) {
	cfg := ftq.DefaultConfig()
	cfg.Threads = 2
	cfg.Stdout = true
	cfg.TicksPerNS = 1
	err := run(cfg, &steppingPlatform{}, &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorIs(t, err, ftq.ErrStdoutThreads)
}

func TestRootCmdFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ftq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: 4\nfrequency: 500\nticks_per_ns: 3\noutname: fromfile\n"), 0644))

	var got *ftq.Config
	oldRun := runConfig
	runConfig = func(cfg *ftq.Config) error {
		got = cfg
		return nil
	}
	defer func() { runConfig = oldRun }()

	RootCmd.SetArgs([]string{
		"--config", path,
		"-t", "2",
		"-n", "100",
		"-T", "2.5",
		"-w",
		"-r",
		"-a", "key",
		"--work", "hash",
		"--metrics-file", "ftq.prom",
		"--summary",
	})
	require.NoError(t, RootCmd.Execute())
	require.NotNil(t, got)

	expected := &ftq.Config{
		Samples:            100,
		Frequency:          500,
		Threads:            2,
		TicksPerNS:         2.5,
		Argument:           "key",
		Work:               ftq.WorkHash,
		IgnoreWireFailures: true,
		Realtime:           true,
		OutName:            "fromfile",
		MetricsFile:        "ftq.prom",
		Summary:            true,
	}
	require.Equal(t, expected, got)
}
