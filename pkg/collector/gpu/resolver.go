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

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	utilexec "k8s.io/utils/exec"

	"github.com/event-horizon/intel-gpu-temp/pkg/defaults"
	"github.com/event-horizon/intel-gpu-temp/pkg/errors"
)

// Resolver turns a PCI slot address into a human-readable device name.
type Resolver interface {
	Resolve(ctx context.Context, slot string) (string, error)
}

// NoopResolver never resolves a name, so every record gets the generic label.
type NoopResolver struct{}

// Resolve always fails with ErrCodeUnavailable.
func (NoopResolver) Resolve(_ context.Context, _ string) (string, error) {
	return "", errors.New(errors.ErrCodeUnavailable, "name resolution disabled")
}

// LspciResolver resolves names by running the PCI listing utility scoped to
// one slot and the Intel vendor.
type LspciResolver struct {
	exec    utilexec.Interface
	command string
	timeout time.Duration
}

// NewLspciResolver creates a resolver running command (lspci when empty).
// A positive timeout bounds each invocation.
func NewLspciResolver(command string, timeout time.Duration) *LspciResolver {
	return newLspciResolverWithExec(utilexec.New(), command, timeout)
}

func newLspciResolverWithExec(e utilexec.Interface, command string, timeout time.Duration) *LspciResolver {
	if command == "" {
		command = defaults.LspciCommand
	}
	return &LspciResolver{
		exec:    e,
		command: command,
		timeout: timeout,
	}
}

// Resolve runs `<command> -s <slot> -d 8086:` and parses its single line of
// output.
func (r *LspciResolver) Resolve(ctx context.Context, slot string) (string, error) {
	if slot == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "empty PCI slot")
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := []string{"-s", slot, "-d", defaults.IntelVendorIDShort + ":"}
	out, err := r.exec.CommandContext(ctx, r.command, args...).Output()
	if err != nil {
		details := map[string]any{"command": r.command, "slot": slot}
		if ctxErr := ctx.Err(); stderrors.Is(ctxErr, context.DeadlineExceeded) {
			return "", errors.WrapWithContext(errors.ErrCodeTimeout, "PCI listing timed out", err, details)
		}
		return "", errors.WrapWithContext(errors.ErrCodeUnavailable, "PCI listing failed", err, details)
	}

	return parseLspciOutput(string(out))
}

// parseLspciOutput extracts the device name from a line such as
//
//	00:02.0 VGA compatible controller: Intel Corporation Alder Lake-P GT2 [Iris Xe Graphics] (rev 0c)
//
// by taking the text after the first two colons and cutting it at the
// first bracket.
func parseLspciOutput(out string) (string, error) {
	out = strings.TrimSpace(out)
	if out == "" {
		return "", errors.New(errors.ErrCodeNotFound, "PCI listing returned no device")
	}

	parts := strings.SplitN(out, ":", 3)
	if len(parts) < 3 {
		return "", errors.NewWithContext(errors.ErrCodeInternal, "unexpected PCI listing output",
			map[string]any{"output": out})
	}

	name, _, _ := strings.Cut(parts[2], "[")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.NewWithContext(errors.ErrCodeInternal, "PCI listing has empty device name",
			map[string]any{"output": out})
	}
	return name, nil
}
