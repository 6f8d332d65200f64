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

package gpu

import (
	"path/filepath"

	"github.com/event-horizon/intel-gpu-temp/pkg/collector/file"
	"github.com/event-horizon/intel-gpu-temp/pkg/defaults"
)

// readMemory returns used and total bytes, preferring dedicated VRAM and
// falling back to GTT counters when no VRAM total is reported.
func readMemory(devicePath string) (used, total uint64) {
	used, _ = file.ReadUint(filepath.Join(devicePath, "mem_info_vram_used"))
	total, _ = file.ReadUint(filepath.Join(devicePath, "mem_info_vram_total"))

	if total == 0 {
		if v, ok := file.ReadUint(filepath.Join(devicePath, "mem_info_gtt_used")); ok {
			used = v
		}
		if v, ok := file.ReadUint(filepath.Join(devicePath, "mem_info_gtt_total")); ok {
			total = v
		}
	}

	return used, total
}

// toMB converts bytes to whole megabytes, rounding down.
func toMB(bytes uint64) uint64 {
	return bytes / defaults.BytesPerMB
}
