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
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/event-horizon/intel-gpu-temp/pkg/collector/file"
	"github.com/event-horizon/intel-gpu-temp/pkg/defaults"
)

// Option configures a Collector.
type Option func(*Collector)

// WithSysRoot sets the root of the sysfs filesystem. Defaults to "/sys".
func WithSysRoot(root string) Option {
	return func(c *Collector) {
		if root != "" {
			c.sysRoot = root
		}
	}
}

// WithResolver sets the name resolver. Defaults to an LspciResolver without
// a timeout.
func WithResolver(r Resolver) Option {
	return func(c *Collector) {
		if r != nil {
			c.resolver = r
		}
	}
}

// Collector builds the Intel GPU inventory from sysfs.
type Collector struct {
	sysRoot  string
	resolver Resolver
}

// NewCollector creates a Collector with the provided options.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		sysRoot: defaults.SysRoot,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resolver == nil {
		c.resolver = NewLspciResolver(defaults.LspciCommand, defaults.ResolverTimeout)
	}
	return c
}

// Collect enumerates Intel GPUs in lexicographic card order and returns one
// record per device. Unreadable attributes degrade fields to their defaults;
// the only error returned is the context's.
func (c *Collector) Collect(ctx context.Context) (*Inventory, error) {
	slog.Debug("collecting Intel GPU inventory", "sysroot", c.sysRoot)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	inventory := NewInventory()
	drmDir := filepath.Join(c.sysRoot, defaults.DRMClassDir)

	for _, card := range listCards(drmDir) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		devicePath := filepath.Join(drmDir, card, "device")
		vendor, ok := file.ReadString(filepath.Join(devicePath, "vendor"))
		if !ok || !IsIntelVendor(vendor) {
			slog.Debug("skipping non-Intel card", "card", card, "vendor", vendor)
			continue
		}

		record := c.collectDevice(ctx, card, devicePath, vendor)
		record.Index = len(inventory.GPUs)
		inventory.GPUs = append(inventory.GPUs, record)
	}

	slog.Info("inventory complete",
		"gpus", len(inventory.GPUs),
		"duration", time.Since(start))

	return inventory, nil
}

// collectDevice reads every field of one Intel device.
func (c *Collector) collectDevice(ctx context.Context, card, devicePath, vendor string) Record {
	fullName := c.resolveName(ctx, card, devicePath)
	shortName := ShortName(fullName)
	used, total := readMemory(devicePath)

	return Record{
		Name:          shortName,
		DisplayName:   shortName,
		FullName:      fullName,
		PCIID:         pciID(card, vendor, devicePath),
		Temperature:   readTemperature(devicePath),
		MemoryUsed:    used,
		MemoryTotal:   total,
		MemoryUsedMB:  toMB(used),
		MemoryTotalMB: toMB(total),
		Vendor:        defaults.VendorName,
		Driver:        ClassifyDriver(fullName),
	}
}

// resolveName returns the device's full name, or the generic label if the
// slot or the lookup is unavailable.
func (c *Collector) resolveName(ctx context.Context, card, devicePath string) string {
	slot, err := pciSlot(devicePath)
	if err != nil {
		slog.Debug("no PCI slot for card", "card", card, "error", err)
		return defaults.GenericFullName
	}

	name, err := c.resolver.Resolve(ctx, slot)
	if err != nil {
		slog.Debug("device name lookup failed", "card", card, "slot", slot, "error", err)
		return defaults.GenericFullName
	}
	return name
}
