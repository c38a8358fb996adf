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
	"errors"
)

//go:generate mockgen -source=platform.go -destination=platform_mock.go -package=platform

// ErrNotSupported is returned by operations the current platform can't perform
var ErrNotSupported = errors.New("not supported on this platform")

// Clock gives access to the two time sources used during a run.
type Clock interface {
	// NowNS returns monotonic time in nanoseconds
	NowNS() int64
	// NowTicks returns the free running cycle counter. It must be comparable across threads.
	NowTicks() uint64
}

// Platform is the set of OS capabilities used by the sampler and the reporter
type Platform interface {
	Clock
	// PinToCore binds the calling OS thread to the logical CPU core
	PinToCore(core int) error
	// RaisePriority moves the calling OS thread to real-time scheduling
	RaisePriority() error
	// CoreCount returns number of logical CPUs
	CoreCount() int
	// Describe returns human readable lines about the system and the given core
	Describe(core int) []string
}
