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
	"github.com/kevadb/keva/store/kv"
	"github.com/kevadb/keva/store/val"
)

// Relation is the plan-time description of a table: its row shape and
// where its rows live. Relations are cheap values; no storage handle is
// held until a scan or writer opens one.
type Relation struct {
	Name   string
	Desc   val.TupleDesc
	Engine kv.Engine
	Path   string
}

func NewRelation(name string, desc val.TupleDesc, engine kv.Engine, path string) Relation {
	return Relation{Name: name, Desc: desc, Engine: engine, Path: path}
}

func (r Relation) openStore() (kv.Store, error) {
	store, err := kv.Open(r.Engine, r.Path)
	if err != nil {
		return nil, ErrStorageOpen.Wrap(err, r.Name, r.Engine, r.Path)
	}
	return store, nil
}

// EstimatedRowCount reports the engine's key count for planning. It
// opens a short-lived handle of its own.
func (r Relation) EstimatedRowCount() (uint64, error) {
	store, err := r.openStore()
	if err != nil {
		return 0, err
	}
	defer store.Close()
	return store.Count()
}
