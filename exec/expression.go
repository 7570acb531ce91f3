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
	"fmt"
)

// Op is a comparison operator in a pushed-down filter.
type Op uint8

const (
	EqOp Op = iota
	NotEqOp
	LessOp
	LessEqOp
	GreaterOp
	GreaterEqOp
)

func (op Op) String() string {
	switch op {
	case EqOp:
		return "="
	case NotEqOp:
		return "<>"
	case LessOp:
		return "<"
	case LessEqOp:
		return "<="
	case GreaterOp:
		return ">"
	case GreaterEqOp:
		return ">="
	default:
		return "?"
	}
}

// Expr is a filter expression handed down by the query executor with a
// scan. The bridge inspects filters for key derivation only; filters it
// does not recognize are ignored, and the executor re-checks every
// filter against returned rows.
type Expr interface {
	fmt.Stringer
	expr()
}

// ColumnRef names a column of the scanned table by position.
type ColumnRef struct {
	Idx  int
	Name string
}

// Literal is a constant comparison operand. Value holds the Go value
// for the column's type; nil is the SQL NULL.
type Literal struct {
	Value interface{}
}

// Comparison applies |Op| to two operands.
type Comparison struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (c ColumnRef) expr()  {}
func (l Literal) expr()    {}
func (c Comparison) expr() {}

func (c ColumnRef) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("col(%d)", c.Idx)
}

func (l Literal) String() string {
	if l.Value == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", l.Value)
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)
}
