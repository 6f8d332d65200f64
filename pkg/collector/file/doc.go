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

// Package file reads small text files from sysfs and similar pseudo
// filesystems.
//
// Sysfs attributes are single-line text files that may vanish or refuse
// reads at any time (hot-unplug, permissions, driver unload). The readers
// in this package never return errors for those cases; they report
// whether a value was obtained and leave the fallback to the caller:
//
//	vendor, ok := file.ReadString("/sys/class/drm/card0/device/vendor")
//	if !ok {
//	    // device has no vendor attribute
//	}
//
//	used, _ := file.ReadUint("/sys/class/drm/card0/device/mem_info_vram_used")
//
// Multi-line KEY=VALUE attributes such as uevent are handled by Parser:
//
//	kv, err := file.NewParser().GetMap("/sys/class/drm/card0/device/uevent")
//	slot := kv["PCI_SLOT_NAME"]
//
// Functions in this package are safe for concurrent use.
package file
