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

// Package exporter renders a GPU inventory as Prometheus metrics and writes
// them in the text exposition format read by the node_exporter textfile
// collector.
//
// Each Exporter owns a private registry, so repeated collections in one
// process never clash with the default registry:
//
//	exp := exporter.New()
//	exp.Observe(inventory, elapsed)
//	if err := exp.WriteTextfile("/var/lib/node_exporter/intel_gpu.prom"); err != nil {
//		slog.Warn("metrics export failed", "error", err)
//	}
package exporter
