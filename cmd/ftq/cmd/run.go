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
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/facebook/ftq/ftq"
	"github.com/facebook/ftq/platform"
	"github.com/facebook/ftq/report"
)

// run calibrates, samples and reports. Config must be validated.
func run(cfg *ftq.Config, p platform.Platform, stdout, stderr io.Writer) error {
	if cfg.TicksPerNS == 0 {
		tpn, err := platform.Calibrate(p, platform.CalibrationInterval)
		if err != nil {
			return fmt.Errorf("calibrating cycle counter: %w", err)
		}
		cfg.TicksPerNS = tpn
		log.Debugf("calibrated ticks per ns: %f", tpn)
	}
	if cores := p.CoreCount(); cfg.Threads > cores {
		log.Warningf("%d threads requested but only %d cores available", cfg.Threads, cores)
	}
	// sampler first: it rejects bad configs before we allocate anything
	sampler, err := ftq.NewSampler(cfg, p)
	if err != nil {
		return err
	}
	buf, err := ftq.NewBuffer(cfg.Threads, cfg.Samples)
	if err != nil {
		return err
	}
	defer func() {
		if err := buf.Release(); err != nil {
			log.Errorf("releasing sample buffer: %v", err)
		}
	}()

	res, err := sampler.Run(buf)
	if err != nil {
		return err
	}
	logResult(cfg, res)
	if res.Unwired {
		log.Warning("some threads were not wired to their cores, results may be flaky")
	}

	r := report.New(cfg, res, p)
	if err := r.Write(buf, stdout); err != nil {
		return err
	}
	if cfg.MetricsFile != "" {
		if err := report.WriteMetrics(cfg.MetricsFile, cfg, res, buf); err != nil {
			return fmt.Errorf("writing metrics to %q: %w", cfg.MetricsFile, err)
		}
	}
	if cfg.Summary {
		if err := report.WriteSummary(stderr, buf, res); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}

func logResult(cfg *ftq.Config, res *ftq.Result) {
	log.Infof("Start %d end %d elapsed %d", res.StartNS, res.EndNS, res.Elapsed().Nanoseconds())
	log.Infof("cyclestart %d cycleend %d elapsed %d", res.StartTicks, res.EndTicks, res.Ticks())
	if nspt := res.NSPerTick(); nspt > 0 {
		log.Infof("Avg Cycles(ticks) per ns. is %f; nspercycle is %f", 1/nspt, nspt)
	}
	log.Infof("Pre-computed ticks per ns: %f", cfg.TicksPerNS)
	log.Infof("Sample frequency is %f", cfg.Frequency)
}
