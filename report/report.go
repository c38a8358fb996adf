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
	"bufio"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/facebook/ftq/ftq"
)

// Describer provides machine description for the header
type Describer interface {
	Describe(core int) []string
}

// Reporter formats samples of a finished run
type Reporter struct {
	cfg       *ftq.Config
	res       *ftq.Result
	describer Describer
}

// New returns new Reporter
func New(cfg *ftq.Config, res *ftq.Result, d Describer) *Reporter {
	return &Reporter{cfg: cfg, res: res, describer: d}
}

// NSPerTick returns the factor used to convert ticks to nanoseconds.
// The rate measured over the whole run is preferred, the calibrated one is the fallback.
func (r *Reporter) NSPerTick() float64 {
	if v := r.res.NSPerTick(); v > 0 {
		return v
	}
	if r.cfg.TicksPerNS > 0 {
		return 1 / r.cfg.TicksPerNS
	}
	return 1
}

// Header writes the comment block describing the run and the core
func (r *Reporter) Header(w io.Writer, core int) error {
	freq := r.cfg.Frequency
	lines := []string{
		fmt.Sprintf("Frequency %f", freq),
		fmt.Sprintf("Ticks per ns: %g", r.cfg.TicksPerNS),
		"octave: pkg load signal",
		"x = load(<file name>)",
		fmt.Sprintf("pwelch(x(:,2),[],[],[],%f)", freq),
		fmt.Sprintf("core %d", core),
	}
	if !r.res.ThreadWired(core) {
		lines = append(lines, "Warning: not wired to this core; results may be flaky")
	}
	if r.describer != nil {
		lines = append(lines, r.describer.Describe(core)...)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "# %s\n", l); err != nil {
			return err
		}
	}
	return nil
}

// Samples writes one line per sample: nanoseconds since the first sample and the count
func (r *Reporter) Samples(w io.Writer, samples []ftq.Sample) error {
	if len(samples) == 0 {
		return nil
	}
	nsPerTick := r.NSPerTick()
	base := samples[0].Ticks
	for _, s := range samples {
		ns := int64(nsPerTick * float64(s.Ticks-base))
		if _, err := fmt.Fprintf(w, "%d %d\n", ns, s.Count); err != nil {
			return err
		}
	}
	return nil
}

// Thread writes header and samples of a single thread
func (r *Reporter) Thread(w io.Writer, buf *ftq.Buffer, t int) error {
	bw := bufio.NewWriter(w)
	if err := r.Header(bw, t); err != nil {
		return err
	}
	if err := r.Samples(bw, buf.Thread(t)); err != nil {
		return err
	}
	return bw.Flush()
}

// FileName returns output file name of thread t
func (r *Reporter) FileName(t int) string {
	return fmt.Sprintf("%s_%d.dat", r.cfg.OutName, t)
}

// Write writes all threads either into stdout or into one file per thread
func (r *Reporter) Write(buf *ftq.Buffer, stdout io.Writer) error {
	if r.cfg.Stdout {
		if buf.Threads() > 1 {
			return ftq.ErrStdoutThreads
		}
		return r.Thread(stdout, buf, 0)
	}
	for t := 0; t < buf.Threads(); t++ {
		name := r.FileName(t)
		if err := r.writeFile(name, buf, t); err != nil {
			return err
		}
		log.Debugf("wrote %d samples of thread %d to %s", buf.PerThread(), t, name)
	}
	return nil
}

func (r *Reporter) writeFile(name string, buf *ftq.Buffer, t int) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %q: %w", name, err)
	}
	if err := r.Thread(f, buf, t); err != nil {
		f.Close()
		return fmt.Errorf("writing %q: %w", name, err)
	}
	return f.Close()
}
