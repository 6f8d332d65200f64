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
	"path/filepath"
	"strings"
	"sync"

	"github.com/jaypipes/ghw"
	ghwgpu "github.com/jaypipes/ghw/pkg/gpu"

	"github.com/event-horizon/intel-gpu-temp/pkg/defaults"
	"github.com/event-horizon/intel-gpu-temp/pkg/errors"
)

// PCIDBResolver resolves names from the PCI ID database through ghw, without
// spawning a process. The graphics card list is loaded once per resolver.
type PCIDBResolver struct {
	sysRoot string
	load    func() (*ghwgpu.Info, error)

	once  sync.Once
	cards map[string]*ghwgpu.GraphicsCard
	err   error
}

// NewPCIDBResolver creates a resolver backed by the host's PCI database.
// Cards are enumerated under sysRoot, the same tree the collector walks;
// the database itself is always read from the host.
func NewPCIDBResolver(sysRoot string) *PCIDBResolver {
	args := []any{ghw.WithDisableWarnings()}
	if overrides := sysPathOverrides(sysRoot); overrides != nil {
		args = append(args, ghw.WithPathOverrides(overrides))
	}
	return &PCIDBResolver{
		sysRoot: sysRoot,
		load:    func() (*ghwgpu.Info, error) { return ghw.GPU(args...) },
	}
}

// SysRoot returns the sysfs root the card list is read from.
func (r *PCIDBResolver) SysRoot() string {
	return r.sysRoot
}

// sysPathOverrides maps ghw's /sys root onto sysRoot. Nil means the host's
// own /sys.
func sysPathOverrides(sysRoot string) map[string]string {
	root := strings.TrimSpace(sysRoot)
	if root == "" {
		return nil
	}
	root = filepath.Clean(root)
	if root == defaults.SysRoot {
		return nil
	}
	return map[string]string{"/sys": root}
}

// Resolve returns "<vendor> <product>" for the card at slot, cut at the
// first bracket like the PCI listing output.
func (r *PCIDBResolver) Resolve(ctx context.Context, slot string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if slot == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "empty PCI slot")
	}

	r.once.Do(r.index)
	if r.err != nil {
		return "", r.err
	}

	card, ok := r.cards[strings.ToLower(slot)]
	if !ok || card.DeviceInfo == nil {
		return "", errors.NewWithContext(errors.ErrCodeNotFound, "PCI device not in database",
			map[string]any{"slot": slot})
	}

	var parts []string
	if v := card.DeviceInfo.Vendor; v != nil && v.Name != "" {
		parts = append(parts, v.Name)
	}
	if p := card.DeviceInfo.Product; p != nil && p.Name != "" {
		parts = append(parts, p.Name)
	}

	name, _, _ := strings.Cut(strings.Join(parts, " "), "[")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.NewWithContext(errors.ErrCodeNotFound, "PCI device has no name",
			map[string]any{"slot": slot})
	}
	return name, nil
}

func (r *PCIDBResolver) index() {
	info, err := r.load()
	if err != nil {
		r.err = errors.Wrap(errors.ErrCodeUnavailable, "PCI database unavailable", err)
		return
	}
	if info == nil {
		r.err = errors.New(errors.ErrCodeUnavailable, "PCI database returned no data")
		return
	}

	r.cards = make(map[string]*ghwgpu.GraphicsCard, len(info.GraphicsCards))
	for _, card := range info.GraphicsCards {
		if card == nil {
			continue
		}
		r.cards[strings.ToLower(card.Address)] = card
	}
}
