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
	"github.com/sirupsen/logrus"

	"github.com/kevadb/keva/store/val"
)

// extractKey inspects |filters| for an equality between the key column
// and a literal, and derives the storage key from the first one found.
// A derived key turns the scan into a single point lookup.
//
// Only the shape Comparison(=, ColumnRef(0), Literal) qualifies. The
// literal is serialized through the same codec as stored keys, so the
// derived key is byte-identical to what an insert of that value would
// have written. Anything else, including a literal the column type
// cannot represent, falls back to a full scan; the executor re-checks
// filters either way, so a missed pushdown is never a wrong answer.
func extractKey(desc val.TupleDesc, filters []Expr) ([]byte, bool) {
	for _, f := range filters {
		cmp, ok := f.(Comparison)
		if !ok || cmp.Op != EqOp {
			continue
		}
		col, ok := cmp.Left.(ColumnRef)
		if !ok || col.Idx != 0 {
			continue
		}
		lit, ok := cmp.Right.(Literal)
		if !ok || lit.Value == nil {
			// NULL compares equal to nothing
			continue
		}

		payload, err := val.EncodeValue(desc.KeyType(), lit.Value)
		if err != nil {
			logrus.Debugf("cannot push down filter %s: %s", cmp, err)
			continue
		}
		return val.EncodeKey(desc.KeyType(), payload), true
	}
	return nil, false
}
