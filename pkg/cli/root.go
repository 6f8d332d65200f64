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
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/event-horizon/intel-gpu-temp/pkg/logging"
)

const (
	name           = "intel-gpu-temp"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command against os.Args. This is called by
// main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Report Intel GPU names, temperatures and memory usage",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Description: `Walks the DRM class in sysfs, keeps Intel devices (vendor 0x8086) and
prints one document describing each of them:

  {"gpus":[{"index":0,"name":"Iris(R) Xe","temperature":45.2,...}]}

Names come from the PCI listing utility by default. Temperatures come from
the device's hwmon nodes, memory from the VRAM or GTT counters. Missing
data never fails the run: fields fall back to their defaults.

# Examples

Status bar widget:
  intel-gpu-temp

Human-readable output:
  intel-gpu-temp --format table

Also export metrics for the node_exporter textfile collector:
  intel-gpu-temp --metrics-file /var/lib/node_exporter/textfile/intel_gpu.prom`,
		Flags:  rootFlags(),
		Before: initLogger,
		Action: collectAction,
	}
}

// initLogger configures slog after flags are parsed so overrides like
// --log-level take effect before the action runs.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String(flagLogLevel)
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
	return ctx, nil
}
