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

package defaults

import "time"

// Sysfs layout.
const (
	// SysRoot is the mount point of sysfs.
	SysRoot = "/sys"

	// DRMClassDir is the DRM class directory relative to SysRoot.
	DRMClassDir = "class/drm"

	// UeventMaxSize caps a device uevent read. The kernel limits uevent
	// buffers to one page.
	UeventMaxSize = 4 << 10
)

// PCI identification.
const (
	// IntelVendorID is the PCI vendor ID of Intel as sysfs prints it.
	IntelVendorID = "0x8086"

	// IntelVendorIDShort is the same ID without the hex prefix.
	IntelVendorIDShort = "8086"

	// LspciCommand is the PCI listing utility used for device names.
	LspciCommand = "lspci"
)

// Record fallbacks.
const (
	// VendorName is written into every record.
	VendorName = "Intel"

	// GenericFullName is used when the PCI name lookup fails.
	GenericFullName = "Intel GPU"

	// GenericShortName is used when a shortened name is too short to be useful.
	GenericShortName = "Intel Graphics"

	// DriverI915 is the default driver family.
	DriverI915 = "i915"

	// DriverXe is the driver family of Arc and Xe class devices.
	DriverXe = "xe"
)

// Sensor and naming bounds.
const (
	// ShortNameMaxLen is the length above which codename lookup is tried.
	ShortNameMaxLen = 20

	// ShortNameMinLen is the minimum length of a usable short name.
	ShortNameMinLen = 3

	// MaxValidCelsius is the exclusive upper bound of a plausible reading.
	MaxValidCelsius = 150.0

	// BytesPerMB is the divisor for the MB fields.
	BytesPerMB = 1024 * 1024
)

// ResolverTimeout is the default bound on one PCI name lookup.
// Zero disables the deadline.
const ResolverTimeout time.Duration = 0
