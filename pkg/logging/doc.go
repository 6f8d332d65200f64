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

// Package logging configures structured logging for intel-gpu-temp.
//
// # Overview
//
// This package wraps the standard library slog package with project
// defaults: JSON records on stderr, module and version attributes on every
// record, and source locations when running at debug level. Standard output
// is reserved for the inventory document, so nothing here ever writes to it.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-attribute fallbacks and resolver failures, with source location
//   - INFO: collection summaries
//   - WARN/WARNING: conditions the widget user may want to know about (default)
//   - ERROR: output could not be written
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("intel-gpu-temp", version, "debug")
//	    slog.Debug("reading card", "card", "card0")
//	}
//
// # Environment Configuration
//
// When no explicit level is given, LOG_LEVEL selects it:
//
//	LOG_LEVEL=debug intel-gpu-temp
package logging
