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
	"io"

	"github.com/sirupsen/logrus"

	"github.com/kevadb/keva/store/kv"
	"github.com/kevadb/keva/store/val"
)

// Scan reads a Relation's rows one at a time, either by full iteration
// in key order or, when a key could be derived from the filters, by a
// single point lookup.
//
// A Scan opened with BeginScan owns its storage handle and releases it
// on Close. A Scan opened with BeginScanWith borrows a handle the
// caller owns and never closes it. Writers paired to a scan through
// BeginModifyWith share the scan's handle under the same rule: the
// scan is the sole closer.
type Scan struct {
	rel   Relation
	store kv.Store
	iter  kv.Iter

	// key is non-nil for point lookups; done latches exhaustion
	key  []byte
	done bool

	ownsStore bool
	closed    bool
}

// BeginScan opens the relation's store and starts a scan over it,
// applying key pushdown against |filters|.
func BeginScan(rel Relation, filters []Expr) (*Scan, error) {
	store, err := rel.openStore()
	if err != nil {
		return nil, err
	}
	s, err := beginScan(rel, store, true, filters)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return s, nil
}

// BeginScanWith starts a scan over a storage handle the caller owns.
func BeginScanWith(rel Relation, store kv.Store, filters []Expr) (*Scan, error) {
	return beginScan(rel, store, false, filters)
}

func beginScan(rel Relation, store kv.Store, owns bool, filters []Expr) (*Scan, error) {
	s := &Scan{rel: rel, store: store, ownsStore: owns}

	if key, ok := extractKey(rel.Desc, filters); ok {
		s.key = key
		logrus.Debugf("begin point scan of %s", rel.Name)
		return s, nil
	}

	iter, err := store.NewIter()
	if err != nil {
		return nil, ErrStorageOpen.Wrap(err, rel.Name, rel.Engine, rel.Path)
	}
	s.iter = iter
	logrus.Debugf("begin full scan of %s", rel.Name)
	return s, nil
}

// Next returns the next row, or io.EOF once the scan is exhausted.
// Exhaustion is sticky: every call after the last row reports io.EOF,
// including for a point lookup whose single Get already ran.
func (s *Scan) Next() (val.Row, error) {
	if s.done {
		return nil, io.EOF
	}

	if s.key != nil {
		s.done = true
		value, err := s.store.Get(s.key)
		if kv.ErrKeyNotFound.Is(err) {
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}
		return val.Decode(s.rel.Desc, s.key, value)
	}

	if !s.iter.Valid() {
		s.done = true
		return nil, io.EOF
	}
	row, err := val.Decode(s.rel.Desc, s.iter.Key(), s.iter.Value())
	if err != nil {
		return nil, err
	}
	if err = s.iter.Advance(); err != nil {
		return nil, err
	}
	return row, nil
}

// Close releases the scan's iterator and, if the scan owns it, the
// storage handle. Close is idempotent and safe after errors.
func (s *Scan) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	logrus.Debugf("end scan of %s", s.rel.Name)

	var err error
	if s.iter != nil {
		err = s.iter.Close()
	}
	if s.ownsStore {
		if cerr := s.store.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
