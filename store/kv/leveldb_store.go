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
	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

type levelDBStore struct {
	db *leveldb.DB
}

func openLevelDBStore(path string) (Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		Compression:            opt.NoCompression,
		Filter:                 filter.NewBloomFilter(10),
		OpenFilesCacheCapacity: 24,
	})
	if err != nil {
		return nil, err
	}
	return &levelDBStore{db: db}, nil
}

func (s *levelDBStore) Get(key []byte) ([]byte, error) {
	value, err := s.db.Get(key, nil)
	if err == ldberrors.ErrNotFound {
		return nil, ErrKeyNotFound.New()
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *levelDBStore) Put(key, value []byte) error {
	return s.db.Put(key, value, &opt.WriteOptions{Sync: true})
}

func (s *levelDBStore) Delete(key []byte) error {
	return s.db.Delete(key, &opt.WriteOptions{Sync: true})
}

func (s *levelDBStore) NewIter() (Iter, error) {
	it := &levelDBIter{iter: s.db.NewIterator(nil, nil)}
	it.valid = it.iter.First()
	it.load()
	return it, nil
}

// Count walks the keyspace. LevelDB keeps no exact live-key count, so
// this is linear in table size.
func (s *levelDBStore) Count() (uint64, error) {
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()
	var n uint64
	for iter.Next() {
		n++
	}
	return n, iter.Error()
}

func (s *levelDBStore) Close() error {
	return s.db.Close()
}

type levelDBIter struct {
	iter  iterator.Iterator
	valid bool
	key   []byte
	value []byte
}

// load copies the current entry out of the iterator's internal
// buffers, which are reused on the next move.
func (it *levelDBIter) load() {
	if !it.valid {
		it.key, it.value = nil, nil
		return
	}
	it.key = append([]byte{}, it.iter.Key()...)
	it.value = append([]byte{}, it.iter.Value()...)
}

func (it *levelDBIter) Valid() bool {
	return it.valid
}

func (it *levelDBIter) Key() []byte {
	return it.key
}

func (it *levelDBIter) Value() []byte {
	return it.value
}

func (it *levelDBIter) Advance() error {
	it.valid = it.iter.Next()
	it.load()
	return it.iter.Error()
}

func (it *levelDBIter) Close() error {
	it.iter.Release()
	return it.iter.Error()
}
