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

package kv

import (
	"bytes"
	"sync"

	"github.com/google/btree"
)

// memTables keeps in-memory tables alive across Close/Open cycles
// within a process, mirroring how the on-disk engines survive reopen.
var memTables = struct {
	sync.Mutex
	trees map[string]*btree.BTree
}{trees: map[string]*btree.BTree{}}

type memEntry struct {
	key   []byte
	value []byte
}

func (e memEntry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(memEntry).key) < 0
}

type memStore struct {
	mu   sync.RWMutex
	tree *btree.BTree
}

func openMemStore(path string) Store {
	memTables.Lock()
	defer memTables.Unlock()
	tree, ok := memTables.trees[path]
	if !ok {
		tree = btree.New(8)
		memTables.trees[path] = tree
	}
	return &memStore{tree: tree}
}

func (s *memStore) Get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item := s.tree.Get(memEntry{key: key})
	if item == nil {
		return nil, ErrKeyNotFound.New()
	}
	return append([]byte{}, item.(memEntry).value...), nil
}

func (s *memStore) Put(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.ReplaceOrInsert(memEntry{
		key:   append([]byte{}, key...),
		value: append([]byte{}, value...),
	})
	return nil
}

func (s *memStore) Delete(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Delete(memEntry{key: key})
	return nil
}

// NewIter iterates a copy-on-write clone, so later writes to the
// store do not disturb the iteration.
func (s *memStore) NewIter() (Iter, error) {
	s.mu.RLock()
	snapshot := s.tree.Clone()
	s.mu.RUnlock()

	it := &memIter{}
	snapshot.Ascend(func(item btree.Item) bool {
		it.entries = append(it.entries, item.(memEntry))
		return true
	})
	return it, nil
}

func (s *memStore) Count() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(s.tree.Len()), nil
}

func (s *memStore) Close() error {
	return nil
}

type memIter struct {
	entries []memEntry
	pos     int
}

func (it *memIter) Valid() bool {
	return it.pos < len(it.entries)
}

func (it *memIter) Key() []byte {
	return it.entries[it.pos].key
}

func (it *memIter) Value() []byte {
	return it.entries[it.pos].value
}

func (it *memIter) Advance() error {
	it.pos++
	return nil
}

func (it *memIter) Close() error {
	return nil
}
