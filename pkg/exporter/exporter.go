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

package exporter

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/event-horizon/intel-gpu-temp/pkg/collector/gpu"
	"github.com/event-horizon/intel-gpu-temp/pkg/errors"
)

const namespace = "intel_gpu"

var deviceLabels = []string{"index", "pci_id", "name", "driver"}

// Exporter holds the gauges describing one inventory.
type Exporter struct {
	registry *prometheus.Registry

	temperature *prometheus.GaugeVec
	memoryUsed  *prometheus.GaugeVec
	memoryTotal *prometheus.GaugeVec
	devices     prometheus.Gauge
	duration    prometheus.Gauge
}

// New creates an Exporter with its own registry.
func New() *Exporter {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Exporter{
		registry: reg,
		temperature: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "temperature_celsius",
				Help:      "Highest valid hwmon temperature reading of the GPU",
			},
			deviceLabels,
		),
		memoryUsed: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "memory_used_bytes",
				Help:      "GPU memory in use, VRAM or GTT when no VRAM is reported",
			},
			deviceLabels,
		),
		memoryTotal: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "memory_total_bytes",
				Help:      "GPU memory capacity, VRAM or GTT when no VRAM is reported",
			},
			deviceLabels,
		),
		devices: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "devices",
				Help:      "Number of Intel GPUs found in the last collection",
			},
		),
		duration: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "collection_duration_seconds",
				Help:      "Time taken to collect the GPU inventory",
			},
		),
	}
}

// Registry returns the registry holding the exporter's metrics.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Observe replaces the current metric values with the given inventory.
// A nil inventory is recorded as zero devices.
func (e *Exporter) Observe(inventory *gpu.Inventory, elapsed time.Duration) {
	e.temperature.Reset()
	e.memoryUsed.Reset()
	e.memoryTotal.Reset()

	e.duration.Set(elapsed.Seconds())
	if inventory == nil {
		e.devices.Set(0)
		return
	}

	e.devices.Set(float64(len(inventory.GPUs)))
	for _, r := range inventory.GPUs {
		labels := prometheus.Labels{
			"index":  strconv.Itoa(r.Index),
			"pci_id": r.PCIID,
			"name":   r.Name,
			"driver": r.Driver,
		}
		e.temperature.With(labels).Set(r.Temperature)
		e.memoryUsed.With(labels).Set(float64(r.MemoryUsed))
		e.memoryTotal.With(labels).Set(float64(r.MemoryTotal))
	}
}

// WriteTextfile atomically writes the current metrics to path.
func (e *Exporter) WriteTextfile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "metrics file path is empty")
	}
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to write metrics textfile", err,
			map[string]any{"path": path})
	}
	return nil
}
