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
	"github.com/event-horizon/intel-gpu-temp/pkg/errors"
)

const keyPCISlotName = "PCI_SLOT_NAME"

// IsCardDevice returns true for DRM card device names (card0, card1, ...)
// but not connectors (card0-DP-1) or render nodes (renderD128).
func IsCardDevice(name string) bool {
	if !strings.HasPrefix(name, "card") {
		return false
	}
	suffix := name[4:]
	if len(suffix) == 0 {
		return false
	}
	for _, character := range suffix {
		if character < '0' || character > '9' {
			return false
		}
	}
	return true
}

// IsIntelVendor reports whether a sysfs vendor attribute names Intel.
func IsIntelVendor(vendor string) bool {
	switch strings.ToLower(vendor) {
	case defaults.IntelVendorID, defaults.IntelVendorIDShort:
		return true
	default:
		return false
	}
}

// listCards returns the card names under the DRM class directory, in
// ascending lexicographic order, that have a backing device directory.
func listCards(drmDir string) []string {
	names, ok := file.ListDir(drmDir)
	if !ok {
		return nil
	}

	cards := make([]string, 0, len(names))
	for _, name := range names {
		if !IsCardDevice(name) {
			continue
		}
		if !file.Exists(filepath.Join(drmDir, name, "device")) {
			continue
		}
		cards = append(cards, name)
	}
	return cards
}

// pciID formats "<vendor>:<device>", or returns the card name when the
// device attribute is unavailable.
func pciID(cardName, vendor, devicePath string) string {
	deviceID, ok := file.ReadString(filepath.Join(devicePath, "device"))
	if !ok {
		return cardName
	}
	return vendor + ":" + deviceID
}

// pciSlot reads PCI_SLOT_NAME from the device's uevent file.
func pciSlot(devicePath string) (string, error) {
	path := filepath.Join(devicePath, "uevent")
	kv, err := file.NewParser(file.WithMaxSize(defaults.UeventMaxSize)).GetMap(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNotFound, "uevent unavailable", err)
	}
	slot := kv[keyPCISlotName]
	if slot == "" {
		return "", errors.NewWithContext(errors.ErrCodeNotFound, "uevent has no PCI slot",
			map[string]any{"path": path})
	}
	return slot, nil
}
