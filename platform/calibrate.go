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

package platform

import (
	"fmt"
	"time"
)

// CalibrationInterval is how long Calibrate spins when measuring the counter rate
const CalibrationInterval = 100 * time.Millisecond

// MaxStalledReads is how many reads in a row may return no progress of the
// nanosecond clock before Calibrate gives up
const MaxStalledReads = 1 << 24

// Calibrate measures how many counter ticks happen per nanosecond.
// It spins reading the nanosecond clock until interval has passed, and compares
// elapsed ticks with elapsed nanoseconds.
func Calibrate(c Clock, interval time.Duration) (float64, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("calibration interval must be positive, got %v", interval)
	}
	startNS := c.NowNS()
	startTicks := c.NowTicks()
	ns := startNS
	stalled := 0
	for ns-startNS < interval.Nanoseconds() {
		next := c.NowNS()
		if next <= ns {
			stalled++
			if stalled >= MaxStalledReads {
				return 0, fmt.Errorf("nanosecond clock stuck at %d during calibration", next)
			}
			continue
		}
		stalled = 0
		ns = next
	}
	endTicks := c.NowTicks()
	if endTicks <= startTicks {
		return 0, fmt.Errorf("cycle counter did not advance during calibration (%d -> %d)", startTicks, endTicks)
	}
	return float64(endTicks-startTicks) / float64(ns-startNS), nil
}
