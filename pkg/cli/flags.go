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

package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/event-horizon/intel-gpu-temp/pkg/collector/gpu"
	"github.com/event-horizon/intel-gpu-temp/pkg/defaults"
	"github.com/event-horizon/intel-gpu-temp/pkg/logging"
	"github.com/event-horizon/intel-gpu-temp/pkg/serializer"
)

// Name resolver choices for --resolver.
const (
	resolverLspci = "lspci"
	resolverPCIDB = "pcidb"
	resolverNone  = "none"
)

// Flag names.
const (
	flagFormat          = "format"
	flagOutput          = "output"
	flagSysfsRoot       = "sysfs-root"
	flagLspci           = "lspci"
	flagResolver        = "resolver"
	flagResolverTimeout = "resolver-timeout"
	flagMetricsFile     = "metrics-file"
	flagLogLevel        = "log-level"
)

// rootFlags returns a fresh set of flags; flag values hold parse state and
// must not be shared between commands.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"t"},
			Usage:   fmt.Sprintf("Output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
			Sources: cli.EnvVars("INTEL_GPU_FORMAT"),
			Value:   string(serializer.FormatJSON),
		},
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout); without --format the extension picks the format",
		},
		&cli.StringFlag{
			Name:    flagSysfsRoot,
			Usage:   "Root of the sysfs filesystem (also used by --resolver pcidb)",
			Sources: cli.EnvVars("INTEL_GPU_SYSFS_ROOT"),
			Value:   defaults.SysRoot,
		},
		&cli.StringFlag{
			Name:    flagLspci,
			Usage:   "PCI listing utility used to resolve device names",
			Sources: cli.EnvVars("INTEL_GPU_LSPCI"),
			Value:   defaults.LspciCommand,
		},
		&cli.StringFlag{
			Name:    flagResolver,
			Usage:   fmt.Sprintf("Device name source (%s, %s, %s)", resolverLspci, resolverPCIDB, resolverNone),
			Sources: cli.EnvVars("INTEL_GPU_RESOLVER"),
			Value:   resolverLspci,
		},
		&cli.DurationFlag{
			Name:    flagResolverTimeout,
			Usage:   "Bound on each device name lookup (0 waits indefinitely)",
			Sources: cli.EnvVars("INTEL_GPU_RESOLVER_TIMEOUT"),
			Value:   defaults.ResolverTimeout,
		},
		&cli.StringFlag{
			Name:    flagMetricsFile,
			Usage:   "Also write Prometheus text exposition to this path",
			Sources: cli.EnvVars("INTEL_GPU_METRICS_FILE"),
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level written to stderr (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvLogLevel),
			Value:   "warn",
		},
	}
}

// parseOutputFormat validates the --format flag. When --format is not given
// but --output is, the format follows the output file extension.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	if path := strings.TrimSpace(cmd.String(flagOutput)); path != "" && !cmd.IsSet(flagFormat) {
		return serializer.FormatFromPath(path), nil
	}
	return serializer.ParseFormat(cmd.String(flagFormat))
}

// newResolver builds the device name resolver selected by --resolver.
func newResolver(cmd *cli.Command) (gpu.Resolver, error) {
	switch choice := strings.ToLower(strings.TrimSpace(cmd.String(flagResolver))); choice {
	case resolverLspci:
		return gpu.NewLspciResolver(cmd.String(flagLspci), cmd.Duration(flagResolverTimeout)), nil
	case resolverPCIDB:
		return gpu.NewPCIDBResolver(cmd.String(flagSysfsRoot)), nil
	case resolverNone:
		return gpu.NoopResolver{}, nil
	default:
		return nil, fmt.Errorf("unknown resolver %q (want %s, %s or %s)",
			choice, resolverLspci, resolverPCIDB, resolverNone)
	}
}
