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

// Package errors defines the structured error type used by collectors to
// classify why a value could not be obtained.
//
// Collection never fails because of missing hardware data; these errors
// travel from the point of failure to the caller that substitutes a
// default, where they are logged at debug level:
//
//	name, err := resolver.Resolve(ctx, slot)
//	if err != nil {
//	    slog.Debug("name lookup failed", "error", err)
//	    name = defaults.GenericFullName
//	}
//
// Use errors.As to recover the code:
//
//	var se *errors.StructuredError
//	if stderrors.As(err, &se) && se.Code == errors.ErrCodeUnavailable {
//	    ...
//	}
package errors
