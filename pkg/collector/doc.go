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

// Package collector defines how inventory collectors are created.
//
// A Factory hands out collectors wired with their dependencies, so commands
// can swap the sysfs root or the name resolver without touching collection
// code:
//
//	factory := collector.NewDefaultFactory(
//		collector.WithSysRoot("/sys"),
//		collector.WithResolver(gpu.NewLspciResolver("lspci", 0)),
//	)
//	inventory, err := factory.CreateGPUCollector().Collect(ctx)
//
// Sub-packages:
//   - file: sysfs attribute and key=value file readers
//   - gpu: the Intel GPU inventory collector
package collector
