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
	"time"

	"github.com/shopspring/decimal"
)

// RowBuilder builds Rows conforming to a TupleDesc. Fields not put
// before Build() are NULL.
type RowBuilder struct {
	Desc   TupleDesc
	fields Row
}

// NewRowBuilder makes a RowBuilder for |td|.
func NewRowBuilder(td TupleDesc) *RowBuilder {
	return &RowBuilder{
		Desc:   td,
		fields: make(Row, td.Count()),
	}
}

// Build returns the accumulated Row and resets the builder.
func (b *RowBuilder) Build() Row {
	row := b.fields
	b.fields = make(Row, b.Desc.Count())
	return row
}

// PutRaw stores a pre-serialized payload in field |i|.
func (b *RowBuilder) PutRaw(i int, payload []byte) {
	b.fields[i] = payload
}

// PutValue serializes |v| into field |i| using the field's encoding.
func (b *RowBuilder) PutValue(i int, v interface{}) error {
	payload, err := EncodeValue(b.Desc.Types[i], v)
	if err != nil {
		return err
	}
	b.fields[i] = payload
	return nil
}

func (b *RowBuilder) PutBool(i int, v bool) {
	b.Desc.expectEncoding(i, BoolEnc)
	b.fields[i] = make([]byte, boolSize)
	writeBool(b.fields[i], v)
}

func (b *RowBuilder) PutInt8(i int, v int8) {
	b.Desc.expectEncoding(i, Int8Enc)
	b.fields[i] = make([]byte, int8Size)
	writeInt8(b.fields[i], v)
}

func (b *RowBuilder) PutUint8(i int, v uint8) {
	b.Desc.expectEncoding(i, Uint8Enc)
	b.fields[i] = make([]byte, uint8Size)
	writeUint8(b.fields[i], v)
}

func (b *RowBuilder) PutInt16(i int, v int16) {
	b.Desc.expectEncoding(i, Int16Enc)
	b.fields[i] = make([]byte, int16Size)
	writeInt16(b.fields[i], v)
}

func (b *RowBuilder) PutUint16(i int, v uint16) {
	b.Desc.expectEncoding(i, Uint16Enc)
	b.fields[i] = make([]byte, uint16Size)
	writeUint16(b.fields[i], v)
}

func (b *RowBuilder) PutInt32(i int, v int32) {
	b.Desc.expectEncoding(i, Int32Enc)
	b.fields[i] = make([]byte, int32Size)
	writeInt32(b.fields[i], v)
}

func (b *RowBuilder) PutUint32(i int, v uint32) {
	b.Desc.expectEncoding(i, Uint32Enc)
	b.fields[i] = make([]byte, uint32Size)
	writeUint32(b.fields[i], v)
}

func (b *RowBuilder) PutInt64(i int, v int64) {
	b.Desc.expectEncoding(i, Int64Enc)
	b.fields[i] = make([]byte, int64Size)
	writeInt64(b.fields[i], v)
}

func (b *RowBuilder) PutUint64(i int, v uint64) {
	b.Desc.expectEncoding(i, Uint64Enc)
	b.fields[i] = make([]byte, uint64Size)
	writeUint64(b.fields[i], v)
}

func (b *RowBuilder) PutFloat32(i int, v float32) {
	b.Desc.expectEncoding(i, Float32Enc)
	b.fields[i] = make([]byte, float32Size)
	writeFloat32(b.fields[i], v)
}

func (b *RowBuilder) PutFloat64(i int, v float64) {
	b.Desc.expectEncoding(i, Float64Enc)
	b.fields[i] = make([]byte, float64Size)
	writeFloat64(b.fields[i], v)
}

func (b *RowBuilder) PutTimestamp(i int, v time.Time) {
	b.Desc.expectEncoding(i, TimestampEnc)
	b.fields[i] = make([]byte, timestampSize)
	writeTimestamp(b.fields[i], v)
}

func (b *RowBuilder) PutYear(i int, v int16) {
	b.Desc.expectEncoding(i, YearEnc)
	b.fields[i] = make([]byte, yearSize)
	writeYear(b.fields[i], v)
}

func (b *RowBuilder) PutString(i int, v string) {
	b.Desc.expectEncoding(i, StringEnc)
	b.fields[i] = []byte(v)
}

func (b *RowBuilder) PutBytes(i int, v []byte) {
	b.Desc.expectEncoding(i, BytesEnc)
	b.fields[i] = v
}

func (b *RowBuilder) PutDecimal(i int, v decimal.Decimal) {
	b.Desc.expectEncoding(i, DecimalEnc)
	b.fields[i] = writeDecimal(v)
}
