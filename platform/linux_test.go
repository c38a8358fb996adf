//go:build linux

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
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestOSRelease(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "os-release")
	data := `NAME="Fedora Linux"
VERSION="40 (Server Edition)"
ID=fedora
PRETTY_NAME="Fedora Linux 40 (Server Edition)"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	name, err := osRelease(path)
	require.NoError(t, err)
	require.Equal(t, "Fedora Linux 40 (Server Edition)", name)

	data = `NAME=Debian
VERSION=12
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	name, err = osRelease(path)
	require.NoError(t, err)
	require.Equal(t, "Debian 12", name)

	_, err = osRelease(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestLinuxClocks(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	l := NewLinux()
	ns1 := l.NowNS()
	ticks1 := l.NowTicks()
	time.Sleep(time.Millisecond)
	ns2 := l.NowNS()
	ticks2 := l.NowTicks()
	require.Greater(t, ns2, ns1)
	require.Greater(t, ticks2, ticks1)

	tpn, err := Calibrate(l, 10*time.Millisecond)
	require.NoError(t, err)
	require.Positive(t, tpn)
}

func TestLinuxPinToAllowedCore(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var orig unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &orig))
	defer func() {
		_ = unix.SchedSetaffinity(0, &orig)
	}()
	core := -1
	for i := 0; i < len(orig)*64; i++ {
		if orig.IsSet(i) {
			core = i
			break
		}
	}
	require.NotEqual(t, -1, core)

	l := NewLinux()
	require.NoError(t, l.PinToCore(core))
	var got unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &got))
	require.Equal(t, 1, got.Count())
	require.True(t, got.IsSet(core))
}

func TestLinuxDescribe(t *testing.T) {
	l := NewLinux()
	require.Positive(t, l.CoreCount())
	lines := l.Describe(0)
	require.NotEmpty(t, lines)
	require.Contains(t, lines[0], "uname: Linux")
	require.NotEmpty(t, KernelRelease())
}
