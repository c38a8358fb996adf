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
	"runtime"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/facebook/ftq/platform"
)

// ErrWire is returned when a measurement thread can't be pinned to its core
var ErrWire = errors.New("failed to wire thread to core")

// Result describes how the run went. Samples themselves are in the Buffer.
type Result struct {
	StartNS        int64
	EndNS          int64
	StartTicks     uint64
	EndTicks       uint64
	Unwired        bool // at least one thread was not pinned to its core
	PriorityFailed bool // at least one thread didn't get real-time priority
	// Wired[t] is true when thread t was pinned to core t
	Wired []bool
}

// ThreadWired reports whether thread t was pinned to its core.
// Falls back to the run-wide status when per-thread data is missing.
func (r *Result) ThreadWired(t int) bool {
	if t >= 0 && t < len(r.Wired) {
		return r.Wired[t]
	}
	return !r.Unwired
}

// Elapsed returns duration of the whole run
func (r *Result) Elapsed() time.Duration {
	return time.Duration(r.EndNS - r.StartNS)
}

// Ticks returns number of counter ticks the whole run took
func (r *Result) Ticks() uint64 {
	return r.EndTicks - r.StartTicks
}

// NSPerTick returns nanoseconds per counter tick measured over the whole run, 0 if unknown
func (r *Result) NSPerTick() float64 {
	if r.EndTicks <= r.StartTicks || r.EndNS <= r.StartNS {
		return 0
	}
	return float64(r.EndNS-r.StartNS) / float64(r.EndTicks-r.StartTicks)
}

// threadState is what a measurement thread reports back to the coordinator
type threadState struct {
	err            error
	unwired        bool
	priorityFailed bool
	sink           uint64
}

// Sampler runs measurement threads according to the Config
type Sampler struct {
	cfg          *Config
	p            platform.Platform
	work         Work
	quantumTicks uint64
	// spawn starts fn as a member of the group
	spawn func(g *errgroup.Group, fn func() error)
}

// NewSampler returns new Sampler. Config must have TicksPerNS calibrated already.
func NewSampler(cfg *Config, p platform.Platform) (*Sampler, error) {
	if cfg.Stdout && cfg.Threads > 1 {
		return nil, ErrStdoutThreads
	}
	if !finite(cfg.Frequency) || cfg.Frequency <= 0 {
		return nil, fmt.Errorf("frequency must be a positive number, got %f", cfg.Frequency)
	}
	if !finite(cfg.TicksPerNS) || cfg.TicksPerNS <= 0 {
		return nil, fmt.Errorf("ticks per ns must be calibrated before sampling, got %f", cfg.TicksPerNS)
	}
	work, err := NewWork(cfg.Work, cfg.Argument)
	if err != nil {
		return nil, err
	}
	q := float64(cfg.Quantum().Nanoseconds()) * cfg.TicksPerNS
	if q >= math.MaxInt64 {
		return nil, fmt.Errorf("quantum of %v doesn't fit the counter at %f ticks per ns", cfg.Quantum(), cfg.TicksPerNS)
	}
	quantumTicks := uint64(q)
	if quantumTicks == 0 {
		quantumTicks = 1
	}
	return &Sampler{
		cfg:          cfg,
		p:            p,
		work:         work,
		quantumTicks: quantumTicks,
		spawn: func(g *errgroup.Group, fn func() error) {
			g.Go(fn)
		},
	}, nil
}

// QuantumTicks returns quantum length in counter ticks
func (s *Sampler) QuantumTicks() uint64 {
	return s.quantumTicks
}

// Run fills the buffer with samples from all threads.
// With a single thread everything runs on the calling goroutine.
func (s *Sampler) Run(buf *Buffer) (*Result, error) {
	if buf.Threads() != s.cfg.Threads || buf.PerThread() != s.cfg.Samples {
		return nil, fmt.Errorf("buffer of %d x %d samples doesn't match %d threads x %d samples",
			buf.Threads(), buf.PerThread(), s.cfg.Threads, s.cfg.Samples)
	}
	if s.cfg.Threads == 1 {
		return s.runInline(buf)
	}
	return s.runThreads(buf)
}

func (s *Sampler) runInline(buf *Buffer) (*Result, error) {
	gate := &Gate{}
	st := &threadState{}
	if err := s.setup(0, st); err != nil {
		return nil, err
	}
	res := &Result{Unwired: st.unwired, PriorityFailed: st.priorityFailed, Wired: []bool{!st.unwired}}
	res.StartNS = s.p.NowNS()
	res.StartTicks = s.p.NowTicks()
	gate.Open()
	st.sink = s.measure(gate, buf.Thread(0))
	res.EndTicks = s.p.NowTicks()
	res.EndNS = s.p.NowNS()
	log.Debugf("thread 0 done, work sink %x", st.sink)
	return res, nil
}

func (s *Sampler) runThreads(buf *Buffer) (*Result, error) {
	n := s.cfg.Threads
	gate := &Gate{}
	states := make([]threadState, n)
	eg := &errgroup.Group{}
	ready := &sync.WaitGroup{}
	ready.Add(n)
	for t := 0; t < n; t++ {
		s.spawn(eg, func() error {
			return s.thread(t, gate, buf.Thread(t), ready, &states[t])
		})
	}
	// every thread has either failed or is pinned and polling the gate
	ready.Wait()
	res := &Result{Wired: make([]bool, n)}
	setupErrs := []error{}
	for t := range states {
		res.Wired[t] = !states[t].unwired
		if states[t].err != nil {
			setupErrs = append(setupErrs, states[t].err)
		}
		res.Unwired = res.Unwired || states[t].unwired
		res.PriorityFailed = res.PriorityFailed || states[t].priorityFailed
	}
	if len(setupErrs) > 0 {
		gate.Abort()
		_ = eg.Wait()
		return nil, errors.Join(setupErrs...)
	}
	res.StartNS = s.p.NowNS()
	res.StartTicks = s.p.NowTicks()
	gate.Open()
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("joining measurement threads: %w", err)
	}
	res.EndTicks = s.p.NowTicks()
	res.EndNS = s.p.NowNS()
	for t := range states {
		log.Debugf("thread %d done, work sink %x", t, states[t].sink)
	}
	return res, nil
}

// thread is the body of a spawned measurement thread
func (s *Sampler) thread(t int, gate *Gate, out []Sample, ready *sync.WaitGroup, st *threadState) (err error) {
	signalled := false
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("measurement thread %d: %v", t, r)
		}
		if !signalled {
			st.err = err
			ready.Done()
		}
	}()
	if err = s.setup(t, st); err != nil {
		return err
	}
	signalled = true
	ready.Done()
	st.sink = s.measure(gate, out)
	return nil
}

// setup locks the calling goroutine to its thread, pins it to core t and raises
// its priority if requested. The thread stays locked: when a spawned goroutine exits
// the runtime throws the pinned thread away.
func (s *Sampler) setup(t int, st *threadState) error {
	runtime.LockOSThread()
	if err := s.p.PinToCore(t); err != nil {
		if !s.cfg.IgnoreWireFailures {
			return fmt.Errorf("%w: thread %d: %w", ErrWire, t, err)
		}
		log.Warningf("thread %d is not wired to core %d, results may be flaky: %v", t, t, err)
		st.unwired = true
	}
	if s.cfg.Realtime {
		if err := s.p.RaisePriority(); err != nil {
			log.Warningf("thread %d: failed to set real-time priority: %v", t, err)
			st.priorityFailed = true
		}
	}
	return nil
}

// measure waits for the gate and records len(out) samples.
// Returns the work accumulator.
func (s *Sampler) measure(gate *Gate, out []Sample) uint64 {
	if !gate.Wait() {
		return 0
	}
	var acc uint64
	work := s.work
	quantum := s.quantumTicks
	start := s.p.NowTicks()
	for i := range out {
		var count, now uint64
		for {
			for k := 0; k < Grain; k++ {
				acc = work(acc)
			}
			count += Grain
			now = s.p.NowTicks()
			if now-start >= quantum {
				break
			}
		}
		out[i] = Sample{Ticks: now, Count: count}
		start = now
	}
	return acc
}
