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
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/event-horizon/intel-gpu-temp/pkg/collector"
	"github.com/event-horizon/intel-gpu-temp/pkg/collector/gpu"
	"github.com/event-horizon/intel-gpu-temp/pkg/exporter"
	"github.com/event-horizon/intel-gpu-temp/pkg/serializer"
)

// collectAction gathers the inventory once, writes it in the requested
// format and optionally exports it as metrics.
func collectAction(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	resolver, err := newResolver(cmd)
	if err != nil {
		return err
	}

	factory := collector.NewDefaultFactory(
		collector.WithSysRoot(cmd.String(flagSysfsRoot)),
		collector.WithResolver(resolver),
	)

	start := time.Now()
	inventory, err := factory.CreateGPUCollector().Collect(ctx)
	if err != nil {
		return fmt.Errorf("collection interrupted: %w", err)
	}
	elapsed := time.Since(start)

	if err := writeInventory(ctx, cmd, outFormat, inventory); err != nil {
		return err
	}

	if path := strings.TrimSpace(cmd.String(flagMetricsFile)); path != "" {
		exp := exporter.New()
		exp.Observe(inventory, elapsed)
		if err := exp.WriteTextfile(path); err != nil {
			slog.Warn("metrics export failed", "path", path, "error", err)
		}
	}

	return nil
}

func writeInventory(ctx context.Context, cmd *cli.Command, format serializer.Format, inventory *gpu.Inventory) error {
	var writer *serializer.Writer
	if path := cmd.String(flagOutput); strings.TrimSpace(path) != "" {
		w, err := serializer.NewFileWriterOrStdout(format, path)
		if err != nil {
			return err
		}
		writer = w
	} else {
		writer = serializer.NewWriter(format, cmd.Root().Writer)
	}

	if err := writer.Serialize(ctx, inventory); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}
