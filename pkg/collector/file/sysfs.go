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

package file

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ReadString returns the trimmed content of a sysfs attribute.
// The second result is false if the file is missing or unreadable.
func ReadString(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("sysfs attribute unavailable", "path", path, "error", err)
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// ReadUint reads an unsigned decimal integer from a sysfs attribute.
// The second result is false if the file is unavailable or its content
// is not made of digits only.
func ReadUint(path string) (uint64, bool) {
	value, ok := ReadString(path)
	if !ok || value == "" {
		return 0, false
	}
	result, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		slog.Debug("sysfs attribute is not numeric", "path", path, "value", value)
		return 0, false
	}
	return result, true
}

// Exists reports whether path exists, following symlinks.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Glob returns the names matching pattern in ascending lexicographic order.
// A malformed pattern or an unreadable directory yields no matches.
func Glob(pattern string) []string {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		slog.Debug("invalid glob pattern", "pattern", pattern, "error", err)
		return nil
	}
	sort.Strings(matches)
	return matches
}

// ListDir returns the entry names of dir in ascending lexicographic order.
// The second result is false if dir cannot be read.
func ListDir(dir string) ([]string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Debug("directory unavailable", "path", dir, "error", err)
		return nil, false
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, true
}
