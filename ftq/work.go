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
	"sort"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/maps"
)

// Grain is how many work units are done between two reads of the cycle counter.
// It's a constant so results of different runs stay comparable.
const Grain = 32

// supported work units
const (
	WorkSpin = "spin"
	WorkHash = "hash"
)

// Work is a single unit of busy work. It takes and returns an accumulator,
// which keeps the compiler from dropping the computation.
// Work must not allocate, block or do I/O.
type Work func(acc uint64) uint64

var works = map[string]func(arg string) Work{
	WorkSpin: func(string) Work { return spin },
	WorkHash: func(arg string) Work {
		return func(acc uint64) uint64 {
			return acc ^ xxhash.Sum64String(arg)
		}
	},
}

// spin is one step of a linear congruential generator
func spin(acc uint64) uint64 {
	return acc*6364136223846793005 + 1442695040888963407
}

// NewWork returns work unit by name, bound to the argument
func NewWork(name, arg string) (Work, error) {
	w, ok := works[name]
	if !ok {
		return nil, fmt.Errorf("unsupported work %q, must be one of %v", name, WorkNames())
	}
	return w(arg), nil
}

// WorkNames returns names of all supported work units
func WorkNames() []string {
	names := maps.Keys(works)
	sort.Strings(names)
	return names
}
