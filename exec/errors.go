// Copyright 2026 Kevadb, Inc.
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

package exec

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

// All bridge errors are fatal to the statement that raised them. There
// are no retries and no partial-success reporting; the caller tears the
// scan or writer down and the normal Close path runs.
var (
	ErrStorageOpen     = errors.NewKind("table %s: opening %s storage at %s")
	ErrWriteFailed     = errors.NewKind("table %s: %s failed")
	ErrMissingIdentity = errors.NewKind("table %s: %s row carries no key identity")
)
