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
	"strings"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	log "github.com/sirupsen/logrus"
)

func hostLines() []string {
	info, err := host.Info()
	if err != nil {
		log.Debugf("reading host info: %v", err)
		return nil
	}
	lines := []string{
		fmt.Sprintf("host: %s %s %s %s", info.Hostname, info.Platform, info.PlatformVersion, info.KernelArch),
	}
	if info.VirtualizationSystem != "" {
		lines = append(lines, fmt.Sprintf("virtualization: %s %s", info.VirtualizationSystem, info.VirtualizationRole))
	}
	return lines
}

// cpuLines returns cpuinfo of a single logical core
func cpuLines(core int) []string {
	infos, err := cpu.Info()
	if err != nil {
		log.Debugf("reading cpu info: %v", err)
		return nil
	}
	for _, info := range infos {
		if int(info.CPU) != core {
			continue
		}
		return []string{
			fmt.Sprintf("processor: %d", info.CPU),
			fmt.Sprintf("vendor_id: %s", info.VendorID),
			fmt.Sprintf("cpu family: %s", info.Family),
			fmt.Sprintf("model: %s", info.Model),
			fmt.Sprintf("model name: %s", info.ModelName),
			fmt.Sprintf("stepping: %d", info.Stepping),
			fmt.Sprintf("microcode: %s", info.Microcode),
			fmt.Sprintf("cpu MHz: %.3f", info.Mhz),
			fmt.Sprintf("cache size: %d KB", info.CacheSize),
			fmt.Sprintf("physical id: %s", info.PhysicalID),
			fmt.Sprintf("core id: %s", info.CoreID),
			fmt.Sprintf("flags: %s", strings.Join(info.Flags, " ")),
		}
	}
	return nil
}
