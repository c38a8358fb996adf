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

package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/facebook/ftq/ftq"
)

func TestRegistry(t *testing.T) {
	cfg := ftq.DefaultConfig()
	cfg.TicksPerNS = 3
	res := &ftq.Result{EndNS: int64(2 * time.Second), Unwired: true}
	buf := testBuffer(t, 2, testSamples())

	registry, err := Registry(cfg, res, buf)
	require.NoError(t, err)
	families, err := registry.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, f := range families {
		require.NotEqual(t, f.GetName(), f.GetHelp())
		require.NotEmpty(t, f.GetHelp())
		for _, m := range f.GetMetric() {
			name := f.GetName()
			for _, l := range m.GetLabel() {
				name += "/" + l.GetValue()
			}
			values[name] = m.GetGauge().GetValue()
		}
	}
	require.Equal(t, map[string]float64{
		"ftq_frequency_hz":         10000,
		"ftq_ticks_per_ns":         3,
		"ftq_run_duration_seconds": 2,
		"ftq_threads":              2,
		"ftq_unwired":              1,
		"ftq_priority_failed":      0,
		"ftq_samples/0":            3,
		"ftq_samples/1":            3,
		"ftq_work_units/0":         928,
		"ftq_work_units/1":         928,
	}, values)
}

func TestWriteMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ftq.prom")
	buf := testBuffer(t, 1, testSamples())
	require.NoError(t, WriteMetrics(path, ftq.DefaultConfig(), &ftq.Result{}, buf))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "ftq_samples{thread=\"0\"} 3\n")
	require.Contains(t, string(data), "ftq_unwired 0\n")
	require.Contains(t, string(data), "# HELP ftq_unwired 1 if at least one thread was not pinned to its core\n")
}
