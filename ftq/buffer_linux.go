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

package ftq

import (
	"unsafe"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// allocSamples maps populated and locked anonymous memory, so the measurement
// loop never takes a page fault. When that's not allowed (RLIMIT_MEMLOCK) we fall
// back to the Go heap.
func allocSamples(n int) ([]Sample, func() error, error) {
	size := n * sampleSize
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_POPULATE|unix.MAP_LOCKED)
	if err != nil {
		log.Warningf("failed to mmap %d bytes of locked memory, will use heap: %v", size, err)
		return make([]Sample, n), nil, nil
	}
	samples := unsafe.Slice((*Sample)(unsafe.Pointer(&mem[0])), n)
	return samples, func() error { return unix.Munmap(mem) }, nil
}
