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
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/event-horizon/intel-gpu-temp/pkg/defaults"
	"github.com/event-horizon/intel-gpu-temp/pkg/errors"
)

// writeSyntheticFile creates a file at the given path within root,
// creating parent directories as needed.
func writeSyntheticFile(t *testing.T, root, path, content string) {
	t.Helper()
	fullPath := filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
}

// syntheticCard describes one DRM card in a synthetic sysfs tree.
type syntheticCard struct {
	name   string
	vendor string
	device string
	slot   string
	attrs  map[string]string
}

// createSyntheticCard lays out <root>/class/drm/<card>/device/... for one card.
func createSyntheticCard(t *testing.T, root string, card syntheticCard) {
	t.Helper()
	devicePath := filepath.Join("class/drm", card.name, "device")
	require.NoError(t, os.MkdirAll(filepath.Join(root, devicePath), 0o755))

	if card.vendor != "" {
		writeSyntheticFile(t, root, filepath.Join(devicePath, "vendor"), card.vendor+"\n")
	}
	if card.device != "" {
		writeSyntheticFile(t, root, filepath.Join(devicePath, "device"), card.device+"\n")
	}
	if card.slot != "" {
		writeSyntheticFile(t, root, filepath.Join(devicePath, "uevent"),
			"DRIVER=i915\nPCI_CLASS=30000\nPCI_ID=8086:46A6\nPCI_SLOT_NAME="+card.slot+"\n")
	}
	for rel, content := range card.attrs {
		writeSyntheticFile(t, root, filepath.Join(devicePath, rel), content)
	}
}

// fakeResolver returns canned names per slot and records every lookup.
type fakeResolver struct {
	names map[string]string
	calls []string
}

func (f *fakeResolver) Resolve(_ context.Context, slot string) (string, error) {
	f.calls = append(f.calls, slot)
	name, ok := f.names[slot]
	if !ok {
		return "", errors.New(errors.ErrCodeUnavailable, "no such slot")
	}
	return name, nil
}

func TestCollectSingleGPU(t *testing.T) {
	root := t.TempDir()
	createSyntheticCard(t, root, syntheticCard{
		name:   "card0",
		vendor: "0x8086",
		device: "0x46a6",
		slot:   "0000:00:02.0",
		attrs: map[string]string{
			"hwmon/hwmon3/name":        "i915\n",
			"hwmon/hwmon3/temp1_input": "45231\n",
			"mem_info_vram_total":      "0\n",
			"mem_info_vram_used":       "0\n",
			"mem_info_gtt_total":       "2147483648\n",
			"mem_info_gtt_used":        "1073741824\n",
		},
	})

	resolver := &fakeResolver{names: map[string]string{"0000:00:02.0": "Intel(R) Iris(R) Xe Graphics"}}
	collector := NewCollector(WithSysRoot(root), WithResolver(resolver))

	inventory, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory.GPUs, 1)

	gpu := inventory.GPUs[0]
	assert.Equal(t, 0, gpu.Index)
	assert.Equal(t, "Iris(R) Xe", gpu.Name)
	assert.Equal(t, gpu.Name, gpu.DisplayName)
	assert.Equal(t, "Intel(R) Iris(R) Xe Graphics", gpu.FullName)
	assert.Equal(t, "0x8086:0x46a6", gpu.PCIID)
	assert.Equal(t, 45.231, gpu.Temperature)
	assert.Equal(t, uint64(2147483648), gpu.MemoryTotal)
	assert.Equal(t, uint64(1073741824), gpu.MemoryUsed)
	assert.Equal(t, uint64(2048), gpu.MemoryTotalMB)
	assert.Equal(t, uint64(1024), gpu.MemoryUsedMB)
	assert.Equal(t, "Intel", gpu.Vendor)
	assert.Equal(t, "xe", gpu.Driver)
	assert.Equal(t, []string{"0000:00:02.0"}, resolver.calls)
}

func TestCollectExcludesNonIntel(t *testing.T) {
	root := t.TempDir()
	createSyntheticCard(t, root, syntheticCard{name: "card0", vendor: "0x1002", device: "0x744c", slot: "0000:03:00.0"})
	createSyntheticCard(t, root, syntheticCard{name: "card1", vendor: "0x10de", device: "0x2684", slot: "0000:04:00.0"})
	createSyntheticCard(t, root, syntheticCard{name: "card2", vendor: "0x8086", device: "0xa780", slot: "0000:00:02.0"})

	resolver := &fakeResolver{}
	inventory, err := NewCollector(WithSysRoot(root), WithResolver(resolver)).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory.GPUs, 1)

	assert.Equal(t, 0, inventory.GPUs[0].Index)
	assert.Equal(t, "0x8086:0xa780", inventory.GPUs[0].PCIID)
	assert.Equal(t, []string{"0000:00:02.0"}, resolver.calls, "non-Intel devices must not be looked up")
}

func TestCollectVendorForms(t *testing.T) {
	tests := []struct {
		vendor string
		want   int
	}{
		{"0x8086", 1},
		{"0X8086", 1},
		{"8086", 1},
		{"0x80860", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.vendor, func(t *testing.T) {
			root := t.TempDir()
			createSyntheticCard(t, root, syntheticCard{name: "card0", vendor: tt.vendor, device: "0x46a6"})
			if tt.vendor == "" {
				writeSyntheticFile(t, root, "class/drm/card0/device/vendor", "\n")
			}

			inventory, err := NewCollector(WithSysRoot(root), WithResolver(NoopResolver{})).Collect(context.Background())
			require.NoError(t, err)
			assert.Len(t, inventory.GPUs, tt.want)
		})
	}
}

func TestCollectLexicographicOrder(t *testing.T) {
	root := t.TempDir()
	for _, card := range []syntheticCard{
		{name: "card2", vendor: "0x8086", device: "0x0002"},
		{name: "card10", vendor: "0x8086", device: "0x0010"},
		{name: "card1", vendor: "0x8086", device: "0x0001"},
	} {
		createSyntheticCard(t, root, card)
	}

	collector := NewCollector(WithSysRoot(root), WithResolver(NoopResolver{}))

	for run := 0; run < 3; run++ {
		inventory, err := collector.Collect(context.Background())
		require.NoError(t, err)
		require.Len(t, inventory.GPUs, 3)

		want := []string{"0x8086:0x0001", "0x8086:0x0010", "0x8086:0x0002"}
		for i, gpu := range inventory.GPUs {
			assert.Equal(t, i, gpu.Index)
			assert.Equal(t, want[i], gpu.PCIID)
		}
	}
}

func TestCollectSkipsConnectorsAndMissingDevice(t *testing.T) {
	root := t.TempDir()
	createSyntheticCard(t, root, syntheticCard{name: "card0-eDP-1", vendor: "0x8086", device: "0x46a6"})
	createSyntheticCard(t, root, syntheticCard{name: "renderD128", vendor: "0x8086", device: "0x46a6"})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "class/drm/card1"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "class/drm/card1/device")))
	writeSyntheticFile(t, root, "class/drm/version", "drm 1.1.0 20060810\n")

	inventory, err := NewCollector(WithSysRoot(root), WithResolver(NoopResolver{})).Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, inventory.GPUs)
}

func TestCollectFollowsDeviceSymlink(t *testing.T) {
	root := t.TempDir()
	pciDir := "devices/pci0000:00/0000:00:02.0"
	writeSyntheticFile(t, root, filepath.Join(pciDir, "vendor"), "0x8086\n")
	writeSyntheticFile(t, root, filepath.Join(pciDir, "device"), "0x9a49\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "class/drm/card0"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(root, pciDir), filepath.Join(root, "class/drm/card0/device")))

	inventory, err := NewCollector(WithSysRoot(root), WithResolver(NoopResolver{})).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory.GPUs, 1)
	assert.Equal(t, "0x8086:0x9a49", inventory.GPUs[0].PCIID)
}

func TestCollectEmptyHost(t *testing.T) {
	inventory, err := NewCollector(WithSysRoot(t.TempDir()), WithResolver(NoopResolver{})).Collect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, inventory.GPUs)
	assert.Empty(t, inventory.GPUs)

	data, err := json.Marshal(inventory)
	require.NoError(t, err)
	assert.JSONEq(t, `{"gpus":[]}`, string(data))
}

func TestCollectResolverFailureKeepsRecord(t *testing.T) {
	root := t.TempDir()
	createSyntheticCard(t, root, syntheticCard{
		name:   "card0",
		vendor: "0x8086",
		device: "0x46a6",
		slot:   "0000:00:02.0",
		attrs: map[string]string{
			"hwmon/hwmon0/temp1_input": "51000\n",
			"mem_info_gtt_total":       "4294967296\n",
			"mem_info_gtt_used":        "536870912\n",
		},
	})

	resolver := &fakeResolver{}
	inventory, err := NewCollector(WithSysRoot(root), WithResolver(resolver)).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory.GPUs, 1)

	gpu := inventory.GPUs[0]
	assert.Equal(t, defaults.GenericFullName, gpu.FullName)
	assert.Equal(t, "GPU", gpu.Name)
	assert.Equal(t, "i915", gpu.Driver)
	assert.Equal(t, 51.0, gpu.Temperature)
	assert.Equal(t, uint64(4096), gpu.MemoryTotalMB)
	assert.Equal(t, uint64(512), gpu.MemoryUsedMB)
	assert.Len(t, resolver.calls, 1)
}

func TestCollectWithoutUeventSkipsLookup(t *testing.T) {
	root := t.TempDir()
	createSyntheticCard(t, root, syntheticCard{name: "card0", vendor: "0x8086", device: "0x46a6"})

	resolver := &fakeResolver{}
	inventory, err := NewCollector(WithSysRoot(root), WithResolver(resolver)).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory.GPUs, 1)
	assert.Equal(t, defaults.GenericFullName, inventory.GPUs[0].FullName)
	assert.Empty(t, resolver.calls)
}

func TestCollectOversizedUeventSkipsLookup(t *testing.T) {
	root := t.TempDir()
	createSyntheticCard(t, root, syntheticCard{
		name:   "card0",
		vendor: "0x8086",
		device: "0x46a6",
		attrs: map[string]string{
			"uevent": "PCI_SLOT_NAME=0000:00:02.0\n" + strings.Repeat("X=Y\n", defaults.UeventMaxSize/4+1),
		},
	})

	resolver := &fakeResolver{names: map[string]string{"0000:00:02.0": "Intel Corporation Alder Lake-P GT2"}}
	inventory, err := NewCollector(WithSysRoot(root), WithResolver(resolver)).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory.GPUs, 1)
	assert.Equal(t, defaults.GenericFullName, inventory.GPUs[0].FullName)
	assert.Empty(t, resolver.calls)
}

func TestCollectDefaults(t *testing.T) {
	root := t.TempDir()
	createSyntheticCard(t, root, syntheticCard{name: "card0", vendor: "0x8086"})

	inventory, err := NewCollector(WithSysRoot(root), WithResolver(NoopResolver{})).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory.GPUs, 1)

	gpu := inventory.GPUs[0]
	assert.Equal(t, "card0", gpu.PCIID)
	assert.Zero(t, gpu.Temperature)
	assert.Zero(t, gpu.MemoryUsed)
	assert.Zero(t, gpu.MemoryTotal)
	assert.Zero(t, gpu.MemoryUsedMB)
	assert.Zero(t, gpu.MemoryTotalMB)
	assert.Equal(t, "Intel", gpu.Vendor)
}

func TestCollectJSONShape(t *testing.T) {
	root := t.TempDir()
	createSyntheticCard(t, root, syntheticCard{
		name:   "card0",
		vendor: "0x8086",
		device: "0x56a0",
		slot:   "0000:03:00.0",
		attrs: map[string]string{
			"hwmon/hwmon2/temp2_input": "62500\n",
			"mem_info_vram_total":      "17163091968\n",
			"mem_info_vram_used":       "1205862400\n",
		},
	})

	resolver := &fakeResolver{names: map[string]string{"0000:03:00.0": "Intel Corporation DG2 Arc A770"}}
	inventory, err := NewCollector(WithSysRoot(root), WithResolver(resolver)).Collect(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(inventory)
	require.NoError(t, err)
	assert.JSONEq(t, `{"gpus":[{
		"index":0,
		"name":"Corporation DG2 Arc A770",
		"displayName":"Corporation DG2 Arc A770",
		"fullName":"Intel Corporation DG2 Arc A770",
		"pciId":"0x8086:0x56a0",
		"temperature":62.5,
		"memoryUsed":1205862400,
		"memoryTotal":17163091968,
		"memoryUsedMB":1150,
		"memoryTotalMB":16368,
		"vendor":"Intel",
		"driver":"xe"
	}]}`, string(data))
}

func TestCollectContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inventory, err := NewCollector(WithSysRoot(t.TempDir()), WithResolver(NoopResolver{})).Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, inventory)
}

func TestCollectMissingLspci(t *testing.T) {
	root := t.TempDir()
	createSyntheticCard(t, root, syntheticCard{
		name:   "card0",
		vendor: "0x8086",
		device: "0x46a6",
		slot:   "0000:00:02.0",
		attrs:  map[string]string{"hwmon/hwmon0/temp1_input": "40000\n"},
	})

	resolver := NewLspciResolver(filepath.Join(root, "no-such-lspci"), 0)
	inventory, err := NewCollector(WithSysRoot(root), WithResolver(resolver)).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory.GPUs, 1)
	assert.Equal(t, defaults.GenericFullName, inventory.GPUs[0].FullName)
	assert.Equal(t, 40.0, inventory.GPUs[0].Temperature)
}

func TestCollectWithLspciScript(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}

	root := t.TempDir()
	createSyntheticCard(t, root, syntheticCard{name: "card0", vendor: "0x8086", device: "0xa7a0", slot: "0000:00:02.0"})
	createSyntheticCard(t, root, syntheticCard{name: "card1", vendor: "0x8086", device: "0x56a0", slot: "0000:03:00.0"})

	script := filepath.Join(root, "lspci")
	writeSyntheticFile(t, root, "lspci", `#!/bin/sh
if [ "$2" = "0000:03:00.0" ]; then
  exit 1
fi
echo "00:02.0 VGA compatible controller: Intel Corporation Raptor Lake-P [Iris Xe Graphics] (rev 04)"
`)
	require.NoError(t, os.Chmod(script, 0o755))

	inventory, err := NewCollector(WithSysRoot(root), WithResolver(NewLspciResolver(script, 0))).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory.GPUs, 2)

	assert.Equal(t, "Intel Corporation Raptor Lake-P", inventory.GPUs[0].FullName)
	assert.Equal(t, "Corporation Raptor Lake-P", inventory.GPUs[0].Name)
	assert.Equal(t, defaults.GenericFullName, inventory.GPUs[1].FullName)
	assert.Equal(t, 1, inventory.GPUs[1].Index)
}

func TestIsCardDevice(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"card0", true},
		{"card12", true},
		{"card", false},
		{"card0-DP-1", false},
		{"card1-eDP-1", false},
		{"renderD128", false},
		{"version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCardDevice(tt.name))
		})
	}
}
