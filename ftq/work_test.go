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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWork(t *testing.T) {
	require.Equal(t, []string{"hash", "spin"}, WorkNames())

	_, err := NewWork("sleep", "")
	require.Error(t, err)

	w, err := NewWork(WorkSpin, "")
	require.NoError(t, err)
	require.Equal(t, spin(1), w(1))
	require.NotEqual(t, w(1), w(w(1)))

	h1, err := NewWork(WorkHash, "some argument")
	require.NoError(t, err)
	h2, err := NewWork(WorkHash, "other argument")
	require.NoError(t, err)
	require.Equal(t, h1(7), h1(7))
	require.NotEqual(t, h1(7), h2(7))
}

func TestWorkDoesNotAllocate(t *testing.T) {
	for _, name := range WorkNames() {
		w, err := NewWork(name, "argument")
		require.NoError(t, err)
		var acc uint64
		allocs := testing.AllocsPerRun(1000, func() {
			for k := 0; k < Grain; k++ {
				acc = w(acc)
			}
		})
		require.Zero(t, allocs, "work %q allocates", name)
	}
}
