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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// syntheticClock advances by step nanoseconds on every NowNS call,
// ticks are always ns*ratio
type syntheticClock struct {
	ns    int64
	step  int64
	ratio float64
}

func (c *syntheticClock) NowNS() int64 {
	c.ns += c.step
	return c.ns
}

func (c *syntheticClock) NowTicks() uint64 {
	return uint64(float64(c.ns) * c.ratio)
}

func TestCalibrateSynthetic(t *testing.T) {
	for _, ratio := range []float64{0.5, 1, 2.9, 3.3} {
		c := &syntheticClock{ns: 1000000, step: 100, ratio: ratio}
		got, err := Calibrate(c, 10*time.Millisecond)
		require.NoError(t, err)
		require.InEpsilon(t, ratio, got, 1e-6)
	}
}

func TestCalibrateBadInterval(t *testing.T) {
	c := &syntheticClock{step: 1, ratio: 1}
	_, err := Calibrate(c, 0)
	require.Error(t, err)
}

func TestCalibrateStuckCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := NewMockClock(ctrl)
	var ns int64
	clock.EXPECT().NowNS().DoAndReturn(func() int64 {
		ns += 1000
		return ns
	}).AnyTimes()
	clock.EXPECT().NowTicks().Return(uint64(42)).Times(2)

	_, err := Calibrate(clock, time.Microsecond*10)
	require.ErrorContains(t, err, "did not advance")
}

func TestCalibrateStuckClock(t *testing.T) {
	// clock_gettime failing makes NowNS return 0 forever
	c := &syntheticClock{step: 0, ratio: 1}
	_, err := Calibrate(c, time.Millisecond)
	require.ErrorContains(t, err, "stuck")
}

func TestCalibrateClockGoingBack(t *testing.T) {
	c := &backwardsClock{ns: 5000}
	_, err := Calibrate(c, time.Millisecond)
	require.ErrorContains(t, err, "stuck")
}

// backwardsClock reports progress once and then keeps going back
type backwardsClock struct {
	ns    int64
	calls int
}

func (c *backwardsClock) NowNS() int64 {
	c.calls++
	if c.calls == 2 {
		return c.ns + 10
	}
	return c.ns - int64(c.calls)
}

func (c *backwardsClock) NowTicks() uint64 {
	return uint64(c.calls)
}

func TestCalibratePortable(t *testing.T) {
	p := NewPortable()
	got, err := Calibrate(p, 5*time.Millisecond)
	require.NoError(t, err)
	// both clocks are the same source
	require.InDelta(t, 1.0, got, 0.01)
}
