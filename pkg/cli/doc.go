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

// Package cli implements the intel-gpu-temp command line.
//
// The command runs once: it collects the Intel GPU inventory from sysfs,
// prints it and exits.
//
//	intel-gpu-temp [--format json|yaml|table] [--output PATH]
//
// # Flags
//
//	--format, -t        Output format: json, yaml, table (default: json, compact)
//	--output, -o        Output file path (default: stdout); without --format
//	                    the extension (.json, .yaml, .yml, .table, .txt)
//	                    picks the format
//	--sysfs-root        Root of the sysfs filesystem (default: /sys)
//	--lspci             PCI listing utility (default: lspci)
//	--resolver          Name source: lspci, pcidb, none (default: lspci)
//	--resolver-timeout  Bound on each name lookup (default: 0, none)
//	--metrics-file      Also write Prometheus textfile metrics to PATH
//	--log-level         Log level on stderr (default: warn)
//	--help, -h          Show command help
//	--version, -v       Show version information
//
// # Environment Variables
//
//	LOG_LEVEL                   Same as --log-level
//	INTEL_GPU_FORMAT            Same as --format
//	INTEL_GPU_SYSFS_ROOT        Same as --sysfs-root
//	INTEL_GPU_LSPCI             Same as --lspci
//	INTEL_GPU_RESOLVER          Same as --resolver
//	INTEL_GPU_RESOLVER_TIMEOUT  Same as --resolver-timeout
//	INTEL_GPU_METRICS_FILE      Same as --metrics-file
//
// # Exit Codes
//
//	0  Success, including hosts without Intel GPUs
//	1  Invalid arguments, or the document could not be written
package cli
