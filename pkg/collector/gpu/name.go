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
	"strings"
	"unicode/utf8"

	"github.com/event-horizon/intel-gpu-temp/pkg/defaults"
)

// nameSuffixes are checked in order; the first match is stripped.
var nameSuffixes = []string{
	"Processor Graphics",
	"Graphics",
	"UHD Graphics",
	"HD Graphics",
}

// platformCodenames are matched in order against the full name.
var platformCodenames = []string{
	"TigerLake",
	"AlderLake",
	"RaptorLake",
	"MeteorLake",
	"IceLake",
	"CometLake",
	"KabyLake",
	"SkyLake",
	"Broadwell",
	"Haswell",
	"Apollo",
}

// ShortName derives a compact label from a full device name for display in
// narrow widgets.
func ShortName(fullName string) string {
	name := fullName

	switch {
	case strings.HasPrefix(name, "Intel(R)"):
		name = strings.TrimSpace(strings.TrimPrefix(name, "Intel(R)"))
	case strings.HasPrefix(name, "Intel "):
		name = strings.TrimSpace(strings.TrimPrefix(name, "Intel "))
	}

	for _, suffix := range nameSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSpace(strings.TrimSuffix(name, suffix))
			break
		}
	}

	if utf8.RuneCountInString(name) > defaults.ShortNameMaxLen {
		lower := strings.ToLower(fullName)
		for _, platform := range platformCodenames {
			if strings.Contains(lower, strings.ToLower(platform)) {
				return "Intel " + platform
			}
		}
	}

	if utf8.RuneCountInString(name) < defaults.ShortNameMinLen {
		return defaults.GenericShortName
	}

	return name
}

// ClassifyDriver guesses the kernel driver family from the device name.
func ClassifyDriver(fullName string) string {
	lower := strings.ToLower(fullName)
	if strings.Contains(lower, "arc") || strings.Contains(lower, "xe") {
		return defaults.DriverXe
	}
	return defaults.DriverI915
}
