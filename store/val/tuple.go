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

	errors "gopkg.in/src-d/go-errors.v1"
)

// Row is an ordered sequence of field payloads aligned to a TupleDesc.
// A nil field is NULL. Field 0, the key field, may never be nil.
type Row [][]byte

var ErrNullKey = errors.NewKind("key field (column 0) cannot be NULL")
var ErrMalformedRecord = errors.NewKind("malformed record: %s")
var ErrRowShapeMismatch = errors.NewKind("row has %d fields, shape has %d")

// Encode serializes |row| into a (key, value) pair.
//
// The key is the serialized form of field 0 alone. The value is a
// presence bitmap over fields 1..N-1 followed by the serialized non-NULL
// fields in order. Fixed-width fields occupy their declared width;
// variable-width fields carry a uvarint length header. There is no
// per-field length prefix beyond that header.
//
// Storing presence rather than absence keeps the common all-fields-set
// case a single fill, and keeping field 0 out of the value lets point
// lookups skip re-reading a key they already hold.
func Encode(td TupleDesc, row Row) (key, value []byte, err error) {
	if len(row) != td.Count() {
		return nil, nil, ErrRowShapeMismatch.New(len(row), td.Count())
	}
	if row[0] == nil {
		return nil, nil, ErrNullKey.New()
	}

	key = EncodeKey(td.KeyType(), row[0])

	mask := newPresenceMask(td.Count() - 1)
	value = append(value, mask...)
	for i := 1; i < td.Count(); i++ {
		if row[i] == nil {
			mask.unset(i - 1)
			continue
		}
		value = appendField(value, td.Types[i], row[i])
	}
	copy(value[:mask.size()], mask)
	return key, value, nil
}

// EncodeKey serializes a single key-field payload into key bytes.
// It is the scalar half of Encode: the predicate extractor and the
// modify bridge's shadow-identity path both serialize through it so
// that derived keys are byte-identical to stored ones.
func EncodeKey(typ Type, field []byte) []byte {
	return appendField(nil, typ, field)
}

func appendField(buf []byte, typ Type, field []byte) []byte {
	if sz, fixed := sizeFromType(typ); fixed {
		expectSize(field, sz)
		return append(buf, field...)
	}
	var hdr [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(hdr[:], uint64(len(field)))
	buf = append(buf, hdr[:n]...)
	return append(buf, field...)
}

// Decode reverses Encode, returning the row described by |td|.
// Field 0 is decoded from |key| directly; the presence bitmap at the
// front of |value| drives NULL slots for the remaining fields. A cursor
// that would run past the end of |value|, or bytes left over once every
// present field is consumed, fail with ErrMalformedRecord: a record that
// does not fit its shape indicates a storage/codec mismatch and is never
// trusted.
func Decode(td TupleDesc, key, value []byte) (Row, error) {
	row := make(Row, td.Count())

	field, pos, err := decodeField(td.KeyType(), key, 0)
	if err != nil {
		return nil, err
	}
	if pos != len(key) {
		return nil, ErrMalformedRecord.New("trailing bytes after key field")
	}
	row[0] = field

	maskLen := int(maskSize(td.Count() - 1))
	if len(value) < maskLen {
		return nil, ErrMalformedRecord.New("value shorter than presence bitmap")
	}
	mask := presenceMask(value[:maskLen])

	pos = maskLen
	for i := 1; i < td.Count(); i++ {
		if !mask.present(i - 1) {
			continue
		}
		row[i], pos, err = decodeField(td.Types[i], value, pos)
		if err != nil {
			return nil, err
		}
	}
	if pos != len(value) {
		return nil, ErrMalformedRecord.New("trailing bytes after last field")
	}
	return row, nil
}

// decodeField reads one field payload from |data| at |pos|, returning
// the payload and the next cursor position.
func decodeField(typ Type, data []byte, pos int) ([]byte, int, error) {
	if sz, fixed := sizeFromType(typ); fixed {
		end := pos + int(sz)
		if end > len(data) {
			return nil, 0, ErrMalformedRecord.New("fixed-width field overruns buffer")
		}
		return data[pos:end], end, nil
	}

	length, n := binary.Uvarint(data[pos:])
	if n <= 0 {
		return nil, 0, ErrMalformedRecord.New("invalid variable-width length header")
	}
	start := pos + n
	// compare in uint64: a length near MaxUint64 would overflow int
	if length > uint64(len(data)-start) {
		return nil, 0, ErrMalformedRecord.New("variable-width field overruns buffer")
	}
	end := start + int(length)
	return data[start:end], end, nil
}
