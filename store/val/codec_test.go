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
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncodeFormat(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		in   string
		out  string
	}{
		{name: "bool", enc: BoolEnc, in: "true", out: "true"},
		{name: "int8", enc: Int8Enc, in: "-128", out: "-128"},
		{name: "uint8", enc: Uint8Enc, in: "255", out: "255"},
		{name: "int16", enc: Int16Enc, in: "-30000", out: "-30000"},
		{name: "uint16", enc: Uint16Enc, in: "65535", out: "65535"},
		{name: "int32", enc: Int32Enc, in: "-2000000000", out: "-2000000000"},
		{name: "uint32", enc: Uint32Enc, in: "4000000000", out: "4000000000"},
		{name: "int64", enc: Int64Enc, in: "-9000000000000000000", out: "-9000000000000000000"},
		{name: "uint64", enc: Uint64Enc, in: "18000000000000000000", out: "18000000000000000000"},
		{name: "float64", enc: Float64Enc, in: "2.5", out: "2.500000"},
		{name: "year", enc: YearEnc, in: "2026", out: "2026"},
		{name: "string", enc: StringEnc, in: "hello", out: "hello"},
		{name: "bytes", enc: BytesEnc, in: "deadbeef", out: "deadbeef"},
		{name: "decimal", enc: DecimalEnc, in: "123.4500", out: "123.45"},
		{name: "timestamp", enc: TimestampEnc, in: "2026-08-26T00:00:00Z", out: "2026-08-26T00:00:00Z"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			typ := Type{Enc: test.enc}
			v, err := ParseValue(typ, test.in)
			require.NoError(t, err)
			payload, err := EncodeValue(typ, v)
			require.NoError(t, err)
			assert.Equal(t, test.out, FormatValue(typ, payload))
		})
	}
}

func TestEncodeValueNil(t *testing.T) {
	payload, err := EncodeValue(Type{Enc: Int64Enc, Nullable: true}, nil)
	require.NoError(t, err)
	assert.Nil(t, payload)
	assert.Equal(t, "NULL", FormatValue(Type{Enc: Int64Enc}, payload))
}

func TestEncodeValueTypeMismatch(t *testing.T) {
	_, err := EncodeValue(Type{Enc: Int32Enc}, "not an int")
	assert.True(t, ErrTypeMismatch.Is(err))

	_, err = EncodeValue(Type{Enc: StringEnc}, int64(1))
	assert.True(t, ErrTypeMismatch.Is(err))
}

func TestParseValueRejectsOutOfRange(t *testing.T) {
	_, err := ParseValue(Type{Enc: Int8Enc}, "200")
	assert.Error(t, err)
	_, err = ParseValue(Type{Enc: Uint16Enc}, "-1")
	assert.Error(t, err)
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := time.Date(2026, 8, 26, 13, 37, 0, 12345, time.UTC)
	payload, err := EncodeValue(Type{Enc: TimestampEnc}, ts)
	require.NoError(t, err)
	assert.Equal(t, ts, readTimestamp(payload))
}

func TestDecimalRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("-99999999999999999999.000000001")
	payload, err := EncodeValue(Type{Enc: DecimalEnc}, d)
	require.NoError(t, err)
	assert.True(t, d.Equal(readDecimal(payload)))
}

func TestMask(t *testing.T) {
	t.Run("sizes", func(t *testing.T) {
		assert.Equal(t, ByteSize(0), maskSize(0))
		assert.Equal(t, ByteSize(1), maskSize(1))
		assert.Equal(t, ByteSize(1), maskSize(8))
		assert.Equal(t, ByteSize(2), maskSize(9))
		assert.Equal(t, ByteSize(2), maskSize(16))
		assert.Equal(t, ByteSize(3), maskSize(17))
	})

	t.Run("set and unset", func(t *testing.T) {
		m := newPresenceMask(19)
		for i := 0; i < 19; i++ {
			assert.True(t, m.present(i))
		}
		m.unset(0)
		m.unset(8)
		m.unset(18)
		for i := 0; i < 19; i++ {
			want := i != 0 && i != 8 && i != 18
			assert.Equal(t, want, m.present(i), "member %d", i)
		}
		m.set(8)
		assert.True(t, m.present(8))
	})
}
