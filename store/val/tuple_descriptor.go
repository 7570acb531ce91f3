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

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxTupleFields is the maximum number of fields in a TupleDesc.
const MaxTupleFields = 4096

// TupleDesc describes a row shape. Field 0 is the key field: its
// serialized form is the storage key, and it may not be nullable.
// Data structures that contain Rows and algorithms that process Rows use
// a TupleDesc's types to interpret the fields.
//
// A TupleDesc is immutable for the lifetime of a table handle.
type TupleDesc struct {
	Types []Type
}

// NewTupleDescriptor makes a TupleDesc from |types|. The caller is
// responsible for handing in a well-formed shape; user-supplied shapes
// are validated before they reach this constructor.
func NewTupleDescriptor(types ...Type) TupleDesc {
	if len(types) == 0 {
		panic("empty tuple descriptor")
	}
	if len(types) > MaxTupleFields {
		panic("tuple field count exceeds maximum")
	}
	if types[0].Nullable {
		panic("key field cannot be nullable")
	}
	for _, typ := range types {
		if typ.Enc == NullEnc {
			panic("invalid field encoding")
		}
	}
	return TupleDesc{Types: types}
}

// Count returns the number of fields in the TupleDesc.
func (td TupleDesc) Count() int {
	return len(td.Types)
}

// KeyType returns the type of the key field.
func (td TupleDesc) KeyType() Type {
	return td.Types[0]
}

// IsNull returns true if the ith field of |row| is NULL.
func (td TupleDesc) IsNull(i int, row Row) bool {
	return row[i] == nil
}

// GetBool reads a bool from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetBool(i int, row Row) (v bool, ok bool) {
	td.expectEncoding(i, BoolEnc)
	if b := row[i]; b != nil {
		v, ok = readBool(b), true
	}
	return
}

// GetInt8 reads an int8 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetInt8(i int, row Row) (v int8, ok bool) {
	td.expectEncoding(i, Int8Enc)
	if b := row[i]; b != nil {
		v, ok = readInt8(b), true
	}
	return
}

// GetUint8 reads a uint8 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetUint8(i int, row Row) (v uint8, ok bool) {
	td.expectEncoding(i, Uint8Enc)
	if b := row[i]; b != nil {
		v, ok = readUint8(b), true
	}
	return
}

// GetInt16 reads an int16 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetInt16(i int, row Row) (v int16, ok bool) {
	td.expectEncoding(i, Int16Enc)
	if b := row[i]; b != nil {
		v, ok = readInt16(b), true
	}
	return
}

// GetUint16 reads a uint16 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetUint16(i int, row Row) (v uint16, ok bool) {
	td.expectEncoding(i, Uint16Enc)
	if b := row[i]; b != nil {
		v, ok = readUint16(b), true
	}
	return
}

// GetInt32 reads an int32 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetInt32(i int, row Row) (v int32, ok bool) {
	td.expectEncoding(i, Int32Enc)
	if b := row[i]; b != nil {
		v, ok = readInt32(b), true
	}
	return
}

// GetUint32 reads a uint32 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetUint32(i int, row Row) (v uint32, ok bool) {
	td.expectEncoding(i, Uint32Enc)
	if b := row[i]; b != nil {
		v, ok = readUint32(b), true
	}
	return
}

// GetInt64 reads an int64 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetInt64(i int, row Row) (v int64, ok bool) {
	td.expectEncoding(i, Int64Enc)
	if b := row[i]; b != nil {
		v, ok = readInt64(b), true
	}
	return
}

// GetUint64 reads a uint64 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetUint64(i int, row Row) (v uint64, ok bool) {
	td.expectEncoding(i, Uint64Enc)
	if b := row[i]; b != nil {
		v, ok = readUint64(b), true
	}
	return
}

// GetFloat32 reads a float32 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetFloat32(i int, row Row) (v float32, ok bool) {
	td.expectEncoding(i, Float32Enc)
	if b := row[i]; b != nil {
		v, ok = readFloat32(b), true
	}
	return
}

// GetFloat64 reads a float64 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetFloat64(i int, row Row) (v float64, ok bool) {
	td.expectEncoding(i, Float64Enc)
	if b := row[i]; b != nil {
		v, ok = readFloat64(b), true
	}
	return
}

// GetTimestamp reads a time.Time from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetTimestamp(i int, row Row) (v time.Time, ok bool) {
	td.expectEncoding(i, TimestampEnc)
	if b := row[i]; b != nil {
		v, ok = readTimestamp(b), true
	}
	return
}

// GetYear reads an int16 from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetYear(i int, row Row) (v int16, ok bool) {
	td.expectEncoding(i, YearEnc)
	if b := row[i]; b != nil {
		v, ok = readYear(b), true
	}
	return
}

// GetString reads a string from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetString(i int, row Row) (v string, ok bool) {
	td.expectEncoding(i, StringEnc)
	if b := row[i]; b != nil {
		v, ok = readString(b), true
	}
	return
}

// GetBytes reads a []byte from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetBytes(i int, row Row) (v []byte, ok bool) {
	td.expectEncoding(i, BytesEnc)
	if b := row[i]; b != nil {
		v, ok = readBytes(b), true
	}
	return
}

// GetDecimal reads a decimal from the ith field of |row|.
// If the ith field is NULL, |ok| is set to false.
func (td TupleDesc) GetDecimal(i int, row Row) (v decimal.Decimal, ok bool) {
	td.expectEncoding(i, DecimalEnc)
	if b := row[i]; b != nil {
		v, ok = readDecimal(b), true
	}
	return
}

func (td TupleDesc) expectEncoding(i int, encodings ...Encoding) {
	for _, enc := range encodings {
		if enc == td.Types[i].Enc {
			return
		}
	}
	panic("incorrect value encoding")
}

// Format prints a Row as a string.
func (td TupleDesc) Format(row Row) string {
	if row == nil {
		return "( )"
	}

	var sb strings.Builder
	sb.WriteString("( ")
	seenOne := false
	for i := range td.Types {
		if seenOne {
			sb.WriteString(", ")
		}
		seenOne = true
		sb.WriteString(FormatValue(td.Types[i], row[i]))
	}
	sb.WriteString(" )")
	return sb.String()
}

// Equals returns true if |td| and |other| have equal type slices.
func (td TupleDesc) Equals(other TupleDesc) bool {
	if len(td.Types) != len(other.Types) {
		return false
	}
	for i, typ := range td.Types {
		if typ != other.Types[i] {
			return false
		}
	}
	return true
}
