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
	"strings"

	"github.com/event-horizon/intel-gpu-temp/pkg/collector/file"
	"github.com/event-horizon/intel-gpu-temp/pkg/defaults"
)

// readTemperature returns the highest plausible temperature in Celsius
// reported by the device's hwmon nodes, or 0 if there is none.
func readTemperature(devicePath string) float64 {
	hwmonDirs := file.Glob(filepath.Join(devicePath, "hwmon", "hwmon*"))

	if celsius, ok := maxTemperature(hwmonDirs); ok {
		return celsius
	}

	// Second pass over the driver's own hwmon instances only.
	var driverDirs []string
	for _, dir := range hwmonDirs {
		name, ok := file.ReadString(filepath.Join(dir, "name"))
		if !ok {
			continue
		}
		name = strings.ToLower(name)
		if strings.Contains(name, "i915") || strings.Contains(name, "xe") {
			driverDirs = append(driverDirs, dir)
		}
	}

	if celsius, ok := maxTemperature(driverDirs); ok {
		return celsius
	}
	return 0
}

// maxTemperature scans temp*_input files (millidegrees) in the given hwmon
// directories and returns the maximum reading strictly between 0 and
// MaxValidCelsius.
func maxTemperature(hwmonDirs []string) (float64, bool) {
	var best float64
	found := false

	for _, dir := range hwmonDirs {
		for _, input := range file.Glob(filepath.Join(dir, "temp*_input")) {
			milli, ok := file.ReadUint(input)
			if !ok {
				continue
			}
			celsius := float64(milli) / 1000.0
			if celsius <= 0 || celsius >= defaults.MaxValidCelsius {
				continue
			}
			if !found || celsius > best {
				best = celsius
				found = true
			}
		}
	}

	return best, found
}
