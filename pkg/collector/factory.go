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

package collector

import (
	"context"

	"github.com/event-horizon/intel-gpu-temp/pkg/collector/gpu"
	"github.com/event-horizon/intel-gpu-temp/pkg/defaults"
)

// Collector gathers one GPU inventory.
type Collector interface {
	Collect(ctx context.Context) (*gpu.Inventory, error)
}

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateGPUCollector() Collector
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithSysRoot sets the sysfs root handed to collectors.
func WithSysRoot(root string) Option {
	return func(f *DefaultFactory) {
		f.SysRoot = root
	}
}

// WithResolver sets the device name resolver handed to collectors.
func WithResolver(r gpu.Resolver) Option {
	return func(f *DefaultFactory) {
		f.Resolver = r
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	SysRoot  string
	Resolver gpu.Resolver
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		SysRoot: defaults.SysRoot,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateGPUCollector creates an Intel GPU inventory collector. A nil
// Resolver selects the PCI listing utility.
func (f *DefaultFactory) CreateGPUCollector() Collector {
	return gpu.NewCollector(
		gpu.WithSysRoot(f.SysRoot),
		gpu.WithResolver(f.Resolver),
	)
}
