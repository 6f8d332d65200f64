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

// Package serializer writes the GPU inventory in one of three formats:
//   - JSON: a single line of compact JSON, the default, consumed by widgets
//   - YAML: human-readable structured output
//   - Table: FIELD/VALUE rows with flattened keys
//
// Usage:
//
//	writer, err := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	if err != nil {
//		return err
//	}
//	defer writer.Close()
//	if err := writer.Serialize(ctx, inventory); err != nil {
//		return err
//	}
package serializer
