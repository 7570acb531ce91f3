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

package main

import (
	"fmt"

	"github.com/kevadb/keva/exec"
	"github.com/kevadb/keva/store/val"
)

// nullLiteral is how command-line arguments spell SQL NULL.
const nullLiteral = "NULL"

// buildRow parses one textual value per column into a storable row.
func buildRow(desc val.TupleDesc, values []string) (val.Row, error) {
	if len(values) != desc.Count() {
		return nil, fmt.Errorf("expected %d values, got %d", desc.Count(), len(values))
	}
	row := make(val.Row, desc.Count())
	for i, s := range values {
		if s == nullLiteral {
			continue
		}
		v, err := val.ParseValue(desc.Types[i], s)
		if err != nil {
			return nil, fmt.Errorf("column %d: %s", i, err)
		}
		row[i], err = val.EncodeValue(desc.Types[i], v)
		if err != nil {
			return nil, fmt.Errorf("column %d: %s", i, err)
		}
	}
	return row, nil
}

// keyFilter builds the equality filter for a textual key value.
func keyFilter(desc val.TupleDesc, keyArg string) ([]exec.Expr, error) {
	v, err := val.ParseValue(desc.KeyType(), keyArg)
	if err != nil {
		return nil, fmt.Errorf("key value: %s", err)
	}
	cmp := exec.Comparison{
		Op:    exec.EqOp,
		Left:  exec.ColumnRef{Idx: 0},
		Right: exec.Literal{Value: v},
	}
	return []exec.Expr{cmp}, nil
}
