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

	"github.com/kevadb/keva/store/kv"
	"github.com/kevadb/keva/store/val"
)

// CmdKind names the mutation a Writer performs.
type CmdKind uint8

const (
	CmdInsert CmdKind = iota
	CmdUpdate
	CmdDelete
)

func (k CmdKind) String() string {
	switch k {
	case CmdInsert:
		return "insert"
	case CmdUpdate:
		return "update"
	case CmdDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Writer applies row mutations to a Relation's store.
//
// Inserts open their own handle. Updates and deletes are driven by a
// scan over the same table, so BeginModifyWith shares the scan's
// handle; the scan remains the designated closer and the writer's
// Close leaves the handle open.
type Writer struct {
	rel       Relation
	store     kv.Store
	kind      CmdKind
	keySlot   int
	ownsStore bool
	closed    bool
}

// BeginModify opens an insert writer with its own storage handle.
func BeginModify(rel Relation) (*Writer, error) {
	store, err := rel.openStore()
	if err != nil {
		return nil, err
	}
	logrus.Debugf("begin insert into %s", rel.Name)
	return newWriter(rel, store, CmdInsert, true), nil
}

// BeginModifyWith opens an update or delete writer over the handle of
// the scan feeding it rows.
func BeginModifyWith(scan *Scan, kind CmdKind) *Writer {
	logrus.Debugf("begin %s on %s", kind, scan.rel.Name)
	return newWriter(scan.rel, scan.store, kind, false)
}

func newWriter(rel Relation, store kv.Store, kind CmdKind, owns bool) *Writer {
	return &Writer{
		rel:       rel,
		store:     store,
		kind:      kind,
		keySlot:   rel.Desc.Count(),
		ownsStore: owns,
	}
}

// KeySlot returns the row index where scanned rows carry their key
// identity for this writer: one past the table's last column.
func (w *Writer) KeySlot() int {
	return w.keySlot
}

// Insert encodes |row| and writes it. A row whose key field is NULL
// fails before anything reaches storage.
func (w *Writer) Insert(row val.Row) error {
	return w.put(row)
}

// Update rewrites the stored pair for |row|. The executor keeps the
// key column unchanged across an update, so this lands on the same
// storage key the scan read.
func (w *Writer) Update(row val.Row) error {
	return w.put(row)
}

func (w *Writer) put(row val.Row) error {
	key, value, err := val.Encode(w.rel.Desc, row)
	if err != nil {
		return err
	}
	if err = w.store.Put(key, value); err != nil {
		return ErrWriteFailed.Wrap(err, w.rel.Name, w.kind)
	}
	return nil
}

// Delete removes the row identified by |planRow|'s key slot. The scan
// feeding a delete appends the key field's payload at KeySlot(); a
// plan row without it cannot name a storage key and fails with
// ErrMissingIdentity.
func (w *Writer) Delete(planRow val.Row) error {
	if len(planRow) <= w.keySlot || planRow[w.keySlot] == nil {
		return ErrMissingIdentity.New(w.rel.Name, w.kind)
	}
	key := val.EncodeKey(w.rel.Desc.KeyType(), planRow[w.keySlot])
	if err := w.store.Delete(key); err != nil {
		return ErrWriteFailed.Wrap(err, w.rel.Name, w.kind)
	}
	return nil
}

// Close releases the writer's handle if it owns one. Close is
// idempotent; for scan-paired writers it never touches the shared
// handle.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	logrus.Debugf("end %s on %s", w.kind, w.rel.Name)
	if w.ownsStore {
		return w.store.Close()
	}
	return nil
}

// DirectInsert writes a single row through a short-lived handle,
// opening and closing storage around one put. Bulk ingestion that
// feeds rows one at a time pays an open and a close per row; callers
// with many rows should hold a Writer from BeginModify instead.
func (r Relation) DirectInsert(row val.Row) error {
	w, err := BeginModify(r)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Insert(row)
}
