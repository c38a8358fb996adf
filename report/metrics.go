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
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/facebook/ftq/ftq"
)

// Registry returns prometheus registry with metrics describing the run
func Registry(cfg *ftq.Config, res *ftq.Result, buf *ftq.Buffer) (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()

	samples := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ftq_samples",
		Help: "Number of samples recorded by the thread",
	}, []string{"thread"})
	work := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ftq_work_units",
		Help: "Work units completed by the thread during the run",
	}, []string{"thread"})
	gauges := []struct {
		name  string
		help  string
		value float64
	}{
		{"ftq_frequency_hz", "Sampling frequency, one sample per quantum", cfg.Frequency},
		{"ftq_ticks_per_ns", "Cycle counter ticks per nanosecond used to size the quantum", cfg.TicksPerNS},
		{"ftq_run_duration_seconds", "Wall time from opening the start gate to joining the last thread", res.Elapsed().Seconds()},
		{"ftq_threads", "Number of measurement threads", float64(buf.Threads())},
		{"ftq_unwired", "1 if at least one thread was not pinned to its core", boolToFloat(res.Unwired)},
		{"ftq_priority_failed", "1 if at least one thread didn't get real-time priority", boolToFloat(res.PriorityFailed)},
	}
	collectors := []prometheus.Collector{samples, work}
	for _, gauge := range gauges {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: gauge.name,
			Help: gauge.help,
		})
		g.Set(gauge.value)
		collectors = append(collectors, g)
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	for t := 0; t < buf.Threads(); t++ {
		label := strconv.Itoa(t)
		var total uint64
		for _, s := range buf.Thread(t) {
			total += s.Count
		}
		samples.WithLabelValues(label).Set(float64(buf.PerThread()))
		work.WithLabelValues(label).Set(float64(total))
	}
	return registry, nil
}

// WriteMetrics writes run metrics into path in prometheus text format
func WriteMetrics(path string, cfg *ftq.Config, res *ftq.Result, buf *ftq.Buffer) error {
	registry, err := Registry(cfg, res, buf)
	if err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, registry)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
