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

// Package defaults provides centralized constants for the collector.
//
// Sysfs locations, the PCI vendor filter, sanity bounds and the fallback
// labels written into records all live here so the collector, the CLI and
// the tests agree on them.
//
// # Usage
//
//	import "github.com/event-horizon/intel-gpu-temp/pkg/defaults"
//
//	c := gpu.NewCollector(gpu.WithSysRoot(defaults.SysRoot))
//
// # Timeouts
//
// The PCI name lookup has no deadline by default; polling widgets that
// prefer a bounded run pass --resolver-timeout on the command line.
package defaults
