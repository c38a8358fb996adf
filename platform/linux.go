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
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-ini/ini"
	version "github.com/hashicorp/go-version"
	"github.com/shirou/gopsutil/cpu"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// OSReleasePath is where we look for distribution information
var OSReleasePath = "/etc/os-release"

// sched_setattr(2) appeared in 3.14, older kernels only have sched_setscheduler(2)
var schedSetattrMinKernel = version.Must(version.NewVersion("3.14"))

// Linux implements Platform on top of Linux syscalls
type Linux struct {
	kernel *version.Version
}

// NewLinux returns Linux platform
func NewLinux() *Linux {
	l := &Linux{}
	release := KernelRelease()
	v, err := version.NewVersion(release)
	if err != nil {
		log.Debugf("can't parse kernel release %q: %v", release, err)
	} else {
		l.kernel = v
	}
	return l
}

// NowNS returns CLOCK_MONOTONIC_RAW time in nanoseconds
func (l *Linux) NowNS() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		return 0
	}
	return ts.Nano()
}

// NowTicks returns the cycle counter
func (l *Linux) NowTicks() uint64 {
	return readTicks()
}

// PinToCore sets the affinity of the calling thread to a single core.
// The caller must have locked its goroutine to the OS thread.
func (l *Linux) PinToCore(core int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("sched_setaffinity to core %d: %w", core, err)
	}
	return nil
}

// RaisePriority switches the calling thread to SCHED_FIFO with maximum priority
func (l *Linux) RaisePriority() error {
	prio, _, errno := unix.RawSyscall(unix.SYS_SCHED_GET_PRIORITY_MAX, unix.SCHED_FIFO, 0, 0)
	if errno != 0 {
		return fmt.Errorf("sched_get_priority_max: %w", errno)
	}
	if l.kernel == nil || l.kernel.GreaterThanOrEqual(schedSetattrMinKernel) {
		attr := &unix.SchedAttr{
			Size:     unix.SizeofSchedAttr,
			Policy:   unix.SCHED_FIFO,
			Priority: uint32(prio),
		}
		if err := unix.SchedSetAttr(0, attr, 0); err != nil {
			return fmt.Errorf("sched_setattr: %w", err)
		}
		return nil
	}
	param := struct{ priority int32 }{priority: int32(prio)}
	_, _, errno = unix.RawSyscall(unix.SYS_SCHED_SETSCHEDULER, 0, unix.SCHED_FIFO, uintptr(unsafe.Pointer(&param)))
	if errno != 0 {
		return fmt.Errorf("sched_setscheduler: %w", errno)
	}
	return nil
}

// CoreCount returns number of logical CPUs
func (l *Linux) CoreCount() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// Describe returns uname, distribution and cpuinfo of the core
func (l *Linux) Describe(core int) []string {
	lines := []string{}
	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		lines = append(lines, fmt.Sprintf("uname: %s %s %s %s %s",
			unix.ByteSliceToString(uts.Sysname[:]),
			unix.ByteSliceToString(uts.Nodename[:]),
			unix.ByteSliceToString(uts.Release[:]),
			unix.ByteSliceToString(uts.Version[:]),
			unix.ByteSliceToString(uts.Machine[:]),
		))
	}
	if name, err := osRelease(OSReleasePath); err == nil {
		lines = append(lines, fmt.Sprintf("os: %s", name))
	} else {
		log.Debugf("reading %s: %v", OSReleasePath, err)
	}
	lines = append(lines, hostLines()...)
	lines = append(lines, cpuLines(core)...)
	return lines
}

// KernelRelease returns kernel release as reported by uname
func KernelRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}

func osRelease(path string) (string, error) {
	f, err := ini.Load(path)
	if err != nil {
		return "", err
	}
	s := f.Section("")
	if name := s.Key("PRETTY_NAME").String(); name != "" {
		return name, nil
	}
	return strings.TrimSpace(s.Key("NAME").String() + " " + s.Key("VERSION").String()), nil
}
