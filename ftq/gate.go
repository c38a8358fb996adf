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

import "sync/atomic"

const (
	gateClosed int32 = iota
	gateOpen
	gateAborted
)

// Gate is a one-shot start signal shared by all measurement threads.
// It is written once by the coordinator and polled by every thread.
type Gate struct {
	state atomic.Int32
}

// Open releases all waiting threads
func (g *Gate) Open() {
	g.state.CompareAndSwap(gateClosed, gateOpen)
}

// Abort releases all waiting threads telling them not to measure
func (g *Gate) Abort() {
	g.state.CompareAndSwap(gateClosed, gateAborted)
}

// Wait spins until the gate is opened or aborted. Returns true if it was opened.
// Spinning instead of blocking keeps the thread on its core and out of the scheduler.
func (g *Gate) Wait() bool {
	for {
		switch g.state.Load() {
		case gateOpen:
			return true
		case gateAborted:
			return false
		}
	}
}
