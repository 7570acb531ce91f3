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

package val

// presenceMask is a bit-array tracking non-NULL fields.
// Present fields are encoded as 1, NULLs as 0.
type presenceMask []byte

// maskSize returns the ByteSize of a mask with |count| members.
func maskSize(count int) ByteSize {
	return ByteSize((count + 7) / 8)
}

// newPresenceMask returns a mask of |count| members, all present.
// Starting from all-present keeps the common no-NULLs case a single fill.
func newPresenceMask(count int) presenceMask {
	m := make(presenceMask, maskSize(count))
	for i := range m {
		m[i] = 0xFF
	}
	return m
}

func (pm presenceMask) size() ByteSize {
	return ByteSize(len(pm))
}

// set flips bit |i| to 1.
func (pm presenceMask) set(i int) {
	pm[i/8] |= uint8(1) << (i % 8)
}

// unset flips bit |i| to 0.
func (pm presenceMask) unset(i int) {
	pm[i/8] &= ^(uint8(1) << (i % 8))
}

// present returns true if the |i|th member is non-null.
func (pm presenceMask) present(i int) bool {
	query := uint8(1) << (i % 8)
	return query&pm[i/8] == query
}
