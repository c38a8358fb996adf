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
	"runtime"
	"time"
)

// Portable is a Platform which only relies on the Go runtime.
// Ticks are nanoseconds of the monotonic clock, and pinning is not available.
type Portable struct {
	epoch time.Time
}

// NewPortable returns Portable platform
func NewPortable() *Portable {
	return &Portable{epoch: time.Now()}
}

// NowNS returns nanoseconds since the platform was created
func (p *Portable) NowNS() int64 {
	return int64(time.Since(p.epoch))
}

// NowTicks returns the same value as NowNS
func (p *Portable) NowTicks() uint64 {
	return uint64(time.Since(p.epoch))
}

// PinToCore always fails
func (p *Portable) PinToCore(core int) error {
	return fmt.Errorf("pinning to core %d: %w", core, ErrNotSupported)
}

// RaisePriority always fails
func (p *Portable) RaisePriority() error {
	return fmt.Errorf("real-time priority: %w", ErrNotSupported)
}

// CoreCount returns number of logical CPUs usable by the process
func (p *Portable) CoreCount() int {
	return runtime.NumCPU()
}

// Describe returns runtime and host information
func (p *Portable) Describe(core int) []string {
	lines := []string{
		fmt.Sprintf("runtime: %s/%s %s, %d cpus", runtime.GOOS, runtime.GOARCH, runtime.Version(), runtime.NumCPU()),
	}
	lines = append(lines, hostLines()...)
	return append(lines, cpuLines(core)...)
}
