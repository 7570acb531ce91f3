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
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	errors "gopkg.in/src-d/go-errors.v1"
)

// Type describes the serialized form of a single field.
type Type struct {
	Enc      Encoding
	Nullable bool
}

type ByteSize uint16

const (
	int8Size    ByteSize = 1
	uint8Size   ByteSize = 1
	int16Size   ByteSize = 2
	uint16Size  ByteSize = 2
	int32Size   ByteSize = 4
	uint32Size  ByteSize = 4
	int64Size   ByteSize = 8
	uint64Size  ByteSize = 8
	float32Size ByteSize = 4
	float64Size ByteSize = 8

	boolSize      ByteSize = 1
	yearSize      ByteSize = 2
	timestampSize ByteSize = 8
)

type Encoding uint8

// Constant size encodings.
const (
	NullEnc    Encoding = 0
	Int8Enc    Encoding = 1
	Uint8Enc   Encoding = 2
	Int16Enc   Encoding = 3
	Uint16Enc  Encoding = 4
	BoolEnc    Encoding = 5
	Int32Enc   Encoding = 7
	Uint32Enc  Encoding = 8
	Int64Enc   Encoding = 9
	Uint64Enc  Encoding = 10
	Float32Enc Encoding = 11
	Float64Enc Encoding = 12

	TimestampEnc Encoding = 14
	YearEnc      Encoding = 17
)

// Variable size encodings. Serialized fields of these encodings are
// self-describing: a uvarint byte length precedes the payload.
const (
	StringEnc  Encoding = 128
	BytesEnc   Encoding = 129
	DecimalEnc Encoding = 130
)

var ErrUnknownEncoding = errors.NewKind("unknown field encoding %d")
var ErrTypeMismatch = errors.NewKind("expected %s value, got %T")

// sizeFromType returns the fixed width of |t|, if it has one.
func sizeFromType(t Type) (ByteSize, bool) {
	switch t.Enc {
	case Int8Enc:
		return int8Size, true
	case Uint8Enc:
		return uint8Size, true
	case Int16Enc:
		return int16Size, true
	case Uint16Enc:
		return uint16Size, true
	case BoolEnc:
		return boolSize, true
	case Int32Enc:
		return int32Size, true
	case Uint32Enc:
		return uint32Size, true
	case Int64Enc:
		return int64Size, true
	case Uint64Enc:
		return uint64Size, true
	case Float32Enc:
		return float32Size, true
	case Float64Enc:
		return float64Size, true
	case TimestampEnc:
		return timestampSize, true
	case YearEnc:
		return yearSize, true
	default:
		return 0, false
	}
}

func readBool(val []byte) bool {
	expectSize(val, boolSize)
	return val[0] == 1
}

func writeBool(buf []byte, val bool) {
	expectSize(buf, boolSize)
	if val {
		buf[0] = byte(1)
	} else {
		buf[0] = byte(0)
	}
}

func readInt8(val []byte) int8 {
	expectSize(val, int8Size)
	return int8(val[0])
}

func writeInt8(buf []byte, val int8) {
	expectSize(buf, int8Size)
	buf[0] = byte(val)
}

func readUint8(val []byte) uint8 {
	expectSize(val, uint8Size)
	return val[0]
}

func writeUint8(buf []byte, val uint8) {
	expectSize(buf, uint8Size)
	buf[0] = val
}

func readInt16(val []byte) int16 {
	expectSize(val, int16Size)
	return int16(binary.LittleEndian.Uint16(val))
}

func writeInt16(buf []byte, val int16) {
	expectSize(buf, int16Size)
	binary.LittleEndian.PutUint16(buf, uint16(val))
}

func readUint16(val []byte) uint16 {
	expectSize(val, uint16Size)
	return binary.LittleEndian.Uint16(val)
}

func writeUint16(buf []byte, val uint16) {
	expectSize(buf, uint16Size)
	binary.LittleEndian.PutUint16(buf, val)
}

func readInt32(val []byte) int32 {
	expectSize(val, int32Size)
	return int32(binary.LittleEndian.Uint32(val))
}

func writeInt32(buf []byte, val int32) {
	expectSize(buf, int32Size)
	binary.LittleEndian.PutUint32(buf, uint32(val))
}

func readUint32(val []byte) uint32 {
	expectSize(val, uint32Size)
	return binary.LittleEndian.Uint32(val)
}

func writeUint32(buf []byte, val uint32) {
	expectSize(buf, uint32Size)
	binary.LittleEndian.PutUint32(buf, val)
}

func readInt64(val []byte) int64 {
	expectSize(val, int64Size)
	return int64(binary.LittleEndian.Uint64(val))
}

func writeInt64(buf []byte, val int64) {
	expectSize(buf, int64Size)
	binary.LittleEndian.PutUint64(buf, uint64(val))
}

func readUint64(val []byte) uint64 {
	expectSize(val, uint64Size)
	return binary.LittleEndian.Uint64(val)
}

func writeUint64(buf []byte, val uint64) {
	expectSize(buf, uint64Size)
	binary.LittleEndian.PutUint64(buf, val)
}

func readFloat32(val []byte) float32 {
	expectSize(val, float32Size)
	return math.Float32frombits(binary.LittleEndian.Uint32(val))
}

func writeFloat32(buf []byte, val float32) {
	expectSize(buf, float32Size)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(val))
}

func readFloat64(val []byte) float64 {
	expectSize(val, float64Size)
	return math.Float64frombits(binary.LittleEndian.Uint64(val))
}

func writeFloat64(buf []byte, val float64) {
	expectSize(buf, float64Size)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(val))
}

func readTimestamp(val []byte) time.Time {
	expectSize(val, timestampSize)
	return time.Unix(0, readInt64(val)).UTC()
}

func writeTimestamp(buf []byte, val time.Time) {
	expectSize(buf, timestampSize)
	writeInt64(buf, val.UnixNano())
}

func readYear(val []byte) int16 {
	return readInt16(val)
}

func writeYear(buf []byte, val int16) {
	writeInt16(buf, val)
}

func readString(val []byte) string {
	return string(val)
}

func readBytes(val []byte) []byte {
	return val
}

// Decimals are serialized in their canonical string form.
func readDecimal(val []byte) decimal.Decimal {
	d, err := decimal.NewFromString(string(val))
	if err != nil {
		panic("malformed decimal payload")
	}
	return d
}

func writeDecimal(val decimal.Decimal) []byte {
	return []byte(val.String())
}

// EncodeValue serializes a Go value into the canonical field payload for
// |typ|. It is the scalar half of the tuple codec, shared with the
// predicate extractor so that pushed-down constants and stored keys
// serialize identically. A nil value encodes to a nil (NULL) field.
func EncodeValue(typ Type, v interface{}) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	switch typ.Enc {
	case BoolEnc:
		b, ok := v.(bool)
		if !ok {
			return nil, ErrTypeMismatch.New("bool", v)
		}
		buf := make([]byte, boolSize)
		writeBool(buf, b)
		return buf, nil
	case Int8Enc:
		n, ok := v.(int8)
		if !ok {
			return nil, ErrTypeMismatch.New("int8", v)
		}
		buf := make([]byte, int8Size)
		writeInt8(buf, n)
		return buf, nil
	case Uint8Enc:
		n, ok := v.(uint8)
		if !ok {
			return nil, ErrTypeMismatch.New("uint8", v)
		}
		buf := make([]byte, uint8Size)
		writeUint8(buf, n)
		return buf, nil
	case Int16Enc:
		n, ok := v.(int16)
		if !ok {
			return nil, ErrTypeMismatch.New("int16", v)
		}
		buf := make([]byte, int16Size)
		writeInt16(buf, n)
		return buf, nil
	case Uint16Enc:
		n, ok := v.(uint16)
		if !ok {
			return nil, ErrTypeMismatch.New("uint16", v)
		}
		buf := make([]byte, uint16Size)
		writeUint16(buf, n)
		return buf, nil
	case Int32Enc:
		n, ok := v.(int32)
		if !ok {
			return nil, ErrTypeMismatch.New("int32", v)
		}
		buf := make([]byte, int32Size)
		writeInt32(buf, n)
		return buf, nil
	case Uint32Enc:
		n, ok := v.(uint32)
		if !ok {
			return nil, ErrTypeMismatch.New("uint32", v)
		}
		buf := make([]byte, uint32Size)
		writeUint32(buf, n)
		return buf, nil
	case Int64Enc:
		n, ok := v.(int64)
		if !ok {
			return nil, ErrTypeMismatch.New("int64", v)
		}
		buf := make([]byte, int64Size)
		writeInt64(buf, n)
		return buf, nil
	case Uint64Enc:
		n, ok := v.(uint64)
		if !ok {
			return nil, ErrTypeMismatch.New("uint64", v)
		}
		buf := make([]byte, uint64Size)
		writeUint64(buf, n)
		return buf, nil
	case Float32Enc:
		f, ok := v.(float32)
		if !ok {
			return nil, ErrTypeMismatch.New("float32", v)
		}
		buf := make([]byte, float32Size)
		writeFloat32(buf, f)
		return buf, nil
	case Float64Enc:
		f, ok := v.(float64)
		if !ok {
			return nil, ErrTypeMismatch.New("float64", v)
		}
		buf := make([]byte, float64Size)
		writeFloat64(buf, f)
		return buf, nil
	case TimestampEnc:
		t, ok := v.(time.Time)
		if !ok {
			return nil, ErrTypeMismatch.New("time.Time", v)
		}
		buf := make([]byte, timestampSize)
		writeTimestamp(buf, t)
		return buf, nil
	case YearEnc:
		n, ok := v.(int16)
		if !ok {
			return nil, ErrTypeMismatch.New("int16", v)
		}
		buf := make([]byte, yearSize)
		writeYear(buf, n)
		return buf, nil
	case StringEnc:
		s, ok := v.(string)
		if !ok {
			return nil, ErrTypeMismatch.New("string", v)
		}
		return []byte(s), nil
	case BytesEnc:
		b, ok := v.([]byte)
		if !ok {
			return nil, ErrTypeMismatch.New("[]byte", v)
		}
		return b, nil
	case DecimalEnc:
		d, ok := v.(decimal.Decimal)
		if !ok {
			return nil, ErrTypeMismatch.New("decimal.Decimal", v)
		}
		return writeDecimal(d), nil
	default:
		return nil, ErrUnknownEncoding.New(typ.Enc)
	}
}

// ParseValue converts a textual literal into the Go value for |typ|.
func ParseValue(typ Type, s string) (interface{}, error) {
	switch typ.Enc {
	case BoolEnc:
		return strconv.ParseBool(s)
	case Int8Enc:
		n, err := strconv.ParseInt(s, 10, 8)
		return int8(n), err
	case Uint8Enc:
		n, err := strconv.ParseUint(s, 10, 8)
		return uint8(n), err
	case Int16Enc, YearEnc:
		n, err := strconv.ParseInt(s, 10, 16)
		return int16(n), err
	case Uint16Enc:
		n, err := strconv.ParseUint(s, 10, 16)
		return uint16(n), err
	case Int32Enc:
		n, err := strconv.ParseInt(s, 10, 32)
		return int32(n), err
	case Uint32Enc:
		n, err := strconv.ParseUint(s, 10, 32)
		return uint32(n), err
	case Int64Enc:
		return strconv.ParseInt(s, 10, 64)
	case Uint64Enc:
		return strconv.ParseUint(s, 10, 64)
	case Float32Enc:
		f, err := strconv.ParseFloat(s, 32)
		return float32(f), err
	case Float64Enc:
		return strconv.ParseFloat(s, 64)
	case TimestampEnc:
		return time.Parse(time.RFC3339, s)
	case StringEnc:
		return s, nil
	case BytesEnc:
		return hex.DecodeString(s)
	case DecimalEnc:
		return decimal.NewFromString(s)
	default:
		return nil, ErrUnknownEncoding.New(typ.Enc)
	}
}

// FormatValue renders a field payload as a string. NULL fields render
// as the literal "NULL".
func FormatValue(typ Type, value []byte) string {
	if value == nil {
		return "NULL"
	}
	switch typ.Enc {
	case BoolEnc:
		return strconv.FormatBool(readBool(value))
	case Int8Enc:
		return strconv.Itoa(int(readInt8(value)))
	case Uint8Enc:
		return strconv.Itoa(int(readUint8(value)))
	case Int16Enc:
		return strconv.Itoa(int(readInt16(value)))
	case Uint16Enc:
		return strconv.Itoa(int(readUint16(value)))
	case Int32Enc:
		return strconv.Itoa(int(readInt32(value)))
	case Uint32Enc:
		return strconv.FormatUint(uint64(readUint32(value)), 10)
	case Int64Enc:
		return strconv.FormatInt(readInt64(value), 10)
	case Uint64Enc:
		return strconv.FormatUint(readUint64(value), 10)
	case Float32Enc:
		return fmt.Sprintf("%f", readFloat32(value))
	case Float64Enc:
		return fmt.Sprintf("%f", readFloat64(value))
	case TimestampEnc:
		return readTimestamp(value).Format(time.RFC3339)
	case YearEnc:
		return strconv.Itoa(int(readYear(value)))
	case StringEnc:
		return readString(value)
	case BytesEnc:
		return hex.EncodeToString(value)
	case DecimalEnc:
		return readDecimal(value).String()
	default:
		return string(value)
	}
}

func expectSize(buf []byte, sz ByteSize) {
	if ByteSize(len(buf)) != sz {
		panic("byte slice is not of expected size")
	}
}
