// Copyright (c) 2026, The intel-gpu-temp Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gpu builds an inventory of Intel GPUs from sysfs.
//
// The collector walks /sys/class/drm, keeps card devices whose PCI vendor
// is Intel (0x8086), and builds one Record per device:
//
//   - fullName: from the PCI listing utility (lspci -s <slot> -d 8086:),
//     or "Intel GPU" when the lookup fails
//   - name/displayName: a shortened label derived from fullName
//   - pciId: "<vendor>:<device>" from the vendor and device attributes
//   - temperature: highest plausible hwmon temp*_input reading in Celsius
//   - memoryUsed/memoryTotal: VRAM counters, or GTT counters for integrated
//     parts without VRAM
//   - driver: "xe" for Arc/Xe class names, "i915" otherwise
//
// # Usage
//
//	collector := gpu.NewCollector()
//	inventory, err := collector.Collect(ctx)
//	if err != nil {
//	    return err // context canceled
//	}
//	for _, r := range inventory.GPUs {
//	    fmt.Printf("%d %s %.1f°C\n", r.Index, r.Name, r.Temperature)
//	}
//
// # Degradation
//
// Every attribute is read on a best-effort basis. A missing or unreadable
// file leaves the corresponding field at its default and never drops the
// record; a host without DRM devices yields an empty inventory. The only
// error Collect returns is context cancellation.
//
// # Name Resolution
//
// Name lookup goes through the Resolver interface. LspciResolver runs the
// PCI listing utility through k8s.io/utils/exec so tests can substitute a
// fake executor. PCIDBResolver answers from the PCI ID database via ghw
// without spawning a process.
//
// # Testing Against a Synthetic Tree
//
//	c := gpu.NewCollector(
//	    gpu.WithSysRoot(filepath.Join(tmp, "sys")),
//	    gpu.WithResolver(fakeResolver),
//	)
package gpu
