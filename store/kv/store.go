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
	errors "gopkg.in/src-d/go-errors.v1"
)

// Engine names a key-value storage implementation.
type Engine string

const (
	BoltEngine    Engine = "bolt"
	LevelDBEngine Engine = "leveldb"
	MemoryEngine  Engine = "memory"
)

var ErrKeyNotFound = errors.NewKind("key not found")
var ErrUnknownEngine = errors.NewKind("unknown storage engine %q")

// Store is an ordered key-value store. Implementations are safe for a
// single writer with concurrent readers; callers coordinate anything
// stronger. Keys and values returned by a Store are owned by the
// caller.
type Store interface {
	// Get returns the value stored at |key|, or ErrKeyNotFound.
	Get(key []byte) ([]byte, error)

	// Put stores |value| at |key|, replacing any existing value.
	Put(key, value []byte) error

	// Delete removes |key|. Deleting an absent key is not an error.
	Delete(key []byte) error

	// NewIter returns an iterator positioned at the first key. The
	// iterator observes a snapshot taken at creation and must be
	// closed independently of the Store.
	NewIter() (Iter, error)

	// Count returns the number of keys in the store.
	Count() (uint64, error)

	Close() error
}

// Iter is a forward iterator over a Store's keyspace in byte order.
type Iter interface {
	// Valid reports whether the iterator is positioned on an entry.
	Valid() bool

	// Key returns the current key. Only valid while Valid() is true.
	Key() []byte

	// Value returns the current value. Only valid while Valid() is true.
	Value() []byte

	// Advance moves to the next entry in key order.
	Advance() error

	Close() error
}

// Open opens the store for |engine| at |path|.
func Open(engine Engine, path string) (Store, error) {
	switch engine {
	case BoltEngine:
		return openBoltStore(path)
	case LevelDBEngine:
		return openLevelDBStore(path)
	case MemoryEngine:
		return openMemStore(path), nil
	default:
		return nil, ErrUnknownEngine.New(engine)
	}
}
