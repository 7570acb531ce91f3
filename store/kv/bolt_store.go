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
	bolt "go.etcd.io/bbolt"
)

// rowBucket is the single bucket holding all table rows. One store
// file maps to one table, so there is no need for bucket-per-table.
var rowBucket = []byte("rows")

type boltStore struct {
	db *bolt.DB
}

func openBoltStore(path string) (Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(rowBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Get(key []byte) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(rowBucket).Get(key)
		if v == nil {
			return ErrKeyNotFound.New()
		}
		// |v| is only valid for the life of the transaction
		value = append([]byte{}, v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *boltStore) Put(key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(rowBucket).Put(key, value)
	})
}

func (s *boltStore) Delete(key []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(rowBucket).Delete(key)
	})
}

// NewIter materializes a snapshot inside one short read transaction.
// Holding the transaction across the iteration instead would leave it
// open while a paired writer runs db.Update on the same handle in the
// same goroutine, which bolt forbids.
func (s *boltStore) NewIter() (Iter, error) {
	it := &boltIter{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(rowBucket).ForEach(func(k, v []byte) error {
			it.entries = append(it.entries, boltEntry{
				key:   append([]byte{}, k...),
				value: append([]byte{}, v...),
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *boltStore) Count() (uint64, error) {
	var n uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		n = uint64(tx.Bucket(rowBucket).Stats().KeyN)
		return nil
	})
	return n, err
}

func (s *boltStore) Close() error {
	return s.db.Close()
}

type boltEntry struct {
	key   []byte
	value []byte
}

type boltIter struct {
	entries []boltEntry
	pos     int
}

func (it *boltIter) Valid() bool {
	return it.pos < len(it.entries)
}

func (it *boltIter) Key() []byte {
	return it.entries[it.pos].key
}

func (it *boltIter) Value() []byte {
	return it.entries[it.pos].value
}

func (it *boltIter) Advance() error {
	it.pos++
	return nil
}

func (it *boltIter) Close() error {
	return nil
}
