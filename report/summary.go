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
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/eclesh/welford"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/facebook/ftq/ftq"
)

// ThreadSummary is a short description of one thread's counts
type ThreadSummary struct {
	Thread  int
	Samples int
	Min     uint64
	Max     uint64
	Mean    float64
	Stddev  float64
}

// Summarize returns count summary of every thread
func Summarize(buf *ftq.Buffer) []ThreadSummary {
	result := make([]ThreadSummary, 0, buf.Threads())
	for t := 0; t < buf.Threads(); t++ {
		samples := buf.Thread(t)
		s := welford.New()
		sum := ThreadSummary{Thread: t, Samples: len(samples), Min: math.MaxUint64}
		for _, sample := range samples {
			s.Add(float64(sample.Count))
			sum.Min = min(sum.Min, sample.Count)
			sum.Max = max(sum.Max, sample.Count)
		}
		if len(samples) == 0 {
			sum.Min = 0
		} else {
			sum.Mean = s.Mean()
			sum.Stddev = s.Stddev()
		}
		result = append(result, sum)
	}
	return result
}

// WriteSummary prints diagnostics table of the run
func WriteSummary(w io.Writer, buf *ftq.Buffer, res *ftq.Result) error {
	table := tablewriter.NewWriter(w)
	table.Header("thread", "wired", "samples", "min", "max", "mean", "stddev")
	for _, s := range Summarize(buf) {
		wired := color.GreenString("yes")
		if !res.ThreadWired(s.Thread) {
			wired = color.YellowString("no")
		}
		row := []string{
			strconv.Itoa(s.Thread),
			wired,
			strconv.Itoa(s.Samples),
			strconv.FormatUint(s.Min, 10),
			strconv.FormatUint(s.Max, 10),
			fmt.Sprintf("%.2f", s.Mean),
			fmt.Sprintf("%.2f", s.Stddev),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
