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

func TestNewBuffer(t *testing.T) {
	buf, err := NewBuffer(3, 4)
	require.NoError(t, err)
	defer buf.Release()
	require.Equal(t, 3, buf.Threads())
	require.Equal(t, 4, buf.PerThread())

	for th := 0; th < 3; th++ {
		s := buf.Thread(th)
		require.Len(t, s, 4)
		require.Equal(t, 4, cap(s))
		for _, sample := range s {
			require.Equal(t, Sample{}, sample)
		}
	}
}

func TestBufferSlicesAreDisjoint(t *testing.T) {
	buf, err := NewBuffer(4, 8)
	require.NoError(t, err)
	defer buf.Release()

	for th := 0; th < buf.Threads(); th++ {
		s := buf.Thread(th)
		for i := range s {
			s[i] = Sample{Ticks: uint64(th), Count: uint64(i)}
		}
	}
	for th := 0; th < buf.Threads(); th++ {
		for i, s := range buf.Thread(th) {
			require.Equal(t, Sample{Ticks: uint64(th), Count: uint64(i)}, s)
		}
	}

	// appending can't spill into the next thread's slice
	s := buf.Thread(0)
	_ = append(s, Sample{Ticks: 42})
	require.Equal(t, Sample{Ticks: 1, Count: 0}, buf.Thread(1)[0])
}

func TestNewBufferBadSize(t *testing.T) {
	_, err := NewBuffer(0, 10)
	require.Error(t, err)
	_, err = NewBuffer(1, 0)
	require.Error(t, err)
	_, err = NewBuffer(1<<40, 1<<40)
	require.Error(t, err)
}

func TestBufferRelease(t *testing.T) {
	buf, err := NewBuffer(1, 16)
	require.NoError(t, err)
	require.NoError(t, buf.Release())
	// second release is a no-op
	require.NoError(t, buf.Release())
}
