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

// Record describes one Intel GPU.
type Record struct {
	Index         int     `json:"index" yaml:"index"`
	Name          string  `json:"name" yaml:"name"`
	DisplayName   string  `json:"displayName" yaml:"displayName"`
	FullName      string  `json:"fullName" yaml:"fullName"`
	PCIID         string  `json:"pciId" yaml:"pciId"`
	Temperature   float64 `json:"temperature" yaml:"temperature"`
	MemoryUsed    uint64  `json:"memoryUsed" yaml:"memoryUsed"`
	MemoryTotal   uint64  `json:"memoryTotal" yaml:"memoryTotal"`
	MemoryUsedMB  uint64  `json:"memoryUsedMB" yaml:"memoryUsedMB"`
	MemoryTotalMB uint64  `json:"memoryTotalMB" yaml:"memoryTotalMB"`
	Vendor        string  `json:"vendor" yaml:"vendor"`
	Driver        string  `json:"driver" yaml:"driver"`
}

// Inventory is the document emitted per run.
// GPUs is never nil so it serializes as an empty list.
type Inventory struct {
	GPUs []Record `json:"gpus" yaml:"gpus"`
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{GPUs: make([]Record, 0)}
}
