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
	"fmt"
	"math"
	"unsafe"
)

// Sample is a single quantum boundary: counter value when the quantum ended,
// and how many work units completed during the quantum
type Sample struct {
	Ticks uint64
	Count uint64
}

// sampleSize is used to size the raw sample memory
const sampleSize = int(unsafe.Sizeof(Sample{}))

// Buffer holds samples of all threads in one contiguous zeroed allocation.
// Thread t owns samples [t*PerThread, (t+1)*PerThread).
type Buffer struct {
	samples   []Sample
	threads   int
	perThread int
	release   func() error
}

// NewBuffer allocates memory for perThread samples of each of threads threads
func NewBuffer(threads, perThread int) (*Buffer, error) {
	if threads < 1 || perThread < 1 {
		return nil, fmt.Errorf("buffer needs at least one thread and one sample, got %d threads and %d samples", threads, perThread)
	}
	if perThread > math.MaxInt/sampleSize/threads {
		return nil, fmt.Errorf("buffer of %d x %d samples is too large", threads, perThread)
	}
	samples, release, err := allocSamples(threads * perThread)
	if err != nil {
		return nil, fmt.Errorf("allocating sample buffer: %w", err)
	}
	// fresh mappings are zeroed, but MAP_POPULATE is not guaranteed to fault everything in
	clear(samples)
	return &Buffer{
		samples:   samples,
		threads:   threads,
		perThread: perThread,
		release:   release,
	}, nil
}

// Threads returns number of per-thread slices
func (b *Buffer) Threads() int {
	return b.threads
}

// PerThread returns number of samples in each slice
func (b *Buffer) PerThread() int {
	return b.perThread
}

// Thread returns the slice owned by thread t
func (b *Buffer) Thread(t int) []Sample {
	start := t * b.perThread
	return b.samples[start : start+b.perThread : start+b.perThread]
}

// Release returns the memory to the OS. Buffer must not be used afterwards.
func (b *Buffer) Release() error {
	b.samples = nil
	if b.release == nil {
		return nil
	}
	release := b.release
	b.release = nil
	return release()
}
