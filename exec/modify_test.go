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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevadb/keva/store/kv"
	"github.com/kevadb/keva/store/val"
)

func TestInsertNullKeyNeverReachesStorage(t *testing.T) {
	rel := testRelation(t)

	store, err := kv.Open(rel.Engine, rel.Path)
	require.NoError(t, err)
	defer store.Close()
	counting := &countingStore{Store: store}

	w := newWriter(rel, counting, CmdInsert, false)
	defer func() { require.NoError(t, w.Close()) }()

	row := val.Row{nil, []byte("x"), nil}
	err = w.Insert(row)
	assert.True(t, val.ErrNullKey.Is(err))
	assert.Equal(t, 0, counting.puts)
}

func TestDeleteThenScan(t *testing.T) {
	rel := testRelation(t)
	seedRows(t, rel, 4)

	s, err := BeginScan(rel, eqFilter(2))
	require.NoError(t, err)
	w := BeginModifyWith(s, CmdDelete)

	for {
		row, err := s.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		planRow := append(row, row[0])
		require.NoError(t, w.Delete(planRow))
	}
	require.NoError(t, w.Close())
	require.NoError(t, s.Close())

	// deleted row is gone, the others remain
	rescan, err := BeginScan(rel, nil)
	require.NoError(t, err)
	rows := drain(t, rescan)
	require.NoError(t, rescan.Close())

	require.Len(t, rows, 3)
	for _, row := range rows {
		id, _ := rel.Desc.GetInt32(0, row)
		assert.NotEqual(t, int32(2), id)
	}
}

// Full scans paired with a writer run both against the same storage
// handle on one goroutine; the disk engines must tolerate writes
// landing while the scan's iterator is live.
func TestPairedWriterDuringFullScanOnDisk(t *testing.T) {
	rel := NewRelation("people", peopleDesc(), kv.BoltEngine,
		filepath.Join(t.TempDir(), "people.db"))
	seedRows(t, rel, 8)

	t.Run("update every row", func(t *testing.T) {
		s, err := BeginScan(rel, nil)
		require.NoError(t, err)
		w := BeginModifyWith(s, CmdUpdate)

		for {
			row, err := s.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			row[1] = []byte("touched")
			require.NoError(t, w.Update(row))
		}
		require.NoError(t, w.Close())
		require.NoError(t, s.Close())
	})

	t.Run("delete every row", func(t *testing.T) {
		s, err := BeginScan(rel, nil)
		require.NoError(t, err)
		w := BeginModifyWith(s, CmdDelete)

		deleted := 0
		for {
			row, err := s.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			name, ok := rel.Desc.GetString(1, row)
			require.True(t, ok)
			assert.Equal(t, "touched", name)
			require.NoError(t, w.Delete(append(row, row[0])))
			deleted++
		}
		require.NoError(t, w.Close())
		require.NoError(t, s.Close())
		assert.Equal(t, 8, deleted)

		n, err := rel.EstimatedRowCount()
		require.NoError(t, err)
		assert.Equal(t, uint64(0), n)
	})
}

func TestDeleteMissingIdentity(t *testing.T) {
	rel := testRelation(t)
	seedRows(t, rel, 1)

	s, err := BeginScan(rel, nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()
	w := BeginModifyWith(s, CmdDelete)
	defer func() { require.NoError(t, w.Close()) }()

	row, err := s.Next()
	require.NoError(t, err)

	// plan row without the key slot
	err = w.Delete(row)
	assert.True(t, ErrMissingIdentity.Is(err))

	// key slot present but NULL
	planRow := append(row, nil)
	err = w.Delete(planRow)
	assert.True(t, ErrMissingIdentity.Is(err))
}

func TestUpdatePreservesKey(t *testing.T) {
	rel := testRelation(t)
	seedRows(t, rel, 3)

	s, err := BeginScan(rel, eqFilter(1))
	require.NoError(t, err)
	w := BeginModifyWith(s, CmdUpdate)

	row, err := s.Next()
	require.NoError(t, err)
	updated := make(val.Row, len(row))
	copy(updated, row)
	updated[1] = []byte("renamed")
	require.NoError(t, w.Update(updated))
	require.NoError(t, w.Close())
	require.NoError(t, s.Close())

	rescan, err := BeginScan(rel, eqFilter(1))
	require.NoError(t, err)
	rows := drain(t, rescan)
	require.NoError(t, rescan.Close())

	require.Len(t, rows, 1)
	name, ok := rel.Desc.GetString(1, rows[0])
	require.True(t, ok)
	assert.Equal(t, "renamed", name)

	// row count unchanged: the rewrite landed on the same key
	n, err := rel.EstimatedRowCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)
}

func TestBorrowedWriterLeavesStoreOpen(t *testing.T) {
	rel := testRelation(t)
	seedRows(t, rel, 1)

	store, err := kv.Open(rel.Engine, rel.Path)
	require.NoError(t, err)
	counting := &countingStore{Store: store}

	s, err := BeginScanWith(rel, counting, nil)
	require.NoError(t, err)
	w := BeginModifyWith(s, CmdDelete)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 0, counting.closes)
	require.NoError(t, store.Close())
}

func TestInsertWriterClosesOwnStore(t *testing.T) {
	rel := testRelation(t)

	w, err := BeginModify(rel)
	require.NoError(t, err)

	b := val.NewRowBuilder(rel.Desc)
	b.PutInt32(0, 100)
	require.NoError(t, w.Insert(b.Build()))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	n, err := rel.EstimatedRowCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}

func TestDirectInsert(t *testing.T) {
	rel := testRelation(t)

	b := val.NewRowBuilder(rel.Desc)
	b.PutInt32(0, 42)
	b.PutString(1, "adhoc")
	require.NoError(t, rel.DirectInsert(b.Build()))

	s, err := BeginScan(rel, eqFilter(42))
	require.NoError(t, err)
	rows := drain(t, s)
	require.NoError(t, s.Close())

	require.Len(t, rows, 1)
	name, ok := rel.Desc.GetString(1, rows[0])
	require.True(t, ok)
	assert.Equal(t, "adhoc", name)
	assert.True(t, rel.Desc.IsNull(2, rows[0]))
}

func TestKeySlotConvention(t *testing.T) {
	rel := testRelation(t)
	seedRows(t, rel, 1)

	s, err := BeginScan(rel, nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()
	w := BeginModifyWith(s, CmdDelete)
	defer func() { require.NoError(t, w.Close()) }()

	assert.Equal(t, rel.Desc.Count(), w.KeySlot())
}
