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

// Package conf loads table definitions from YAML. A definition binds a
// table name to a storage engine, a data path, and an ordered column
// list; the first column is always the key.
package conf

import (
	"os"

	errors "gopkg.in/src-d/go-errors.v1"
	yaml "gopkg.in/yaml.v2"

	"github.com/kevadb/keva/exec"
	"github.com/kevadb/keva/store/kv"
	"github.com/kevadb/keva/store/val"
)

var (
	ErrReadConfig      = errors.NewKind("reading table definitions from %s")
	ErrUnknownTable    = errors.NewKind("no table named %s is defined")
	ErrInvalidTableDef = errors.NewKind("table %s: %s")
)

type ColumnConfig struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
}

type TableConfig struct {
	Name    string         `yaml:"name"`
	Engine  string         `yaml:"engine"`
	Path    string         `yaml:"path"`
	Columns []ColumnConfig `yaml:"columns"`
}

type Config struct {
	Tables []TableConfig `yaml:"tables"`
}

// Load reads and parses the definition file at |path|. Unknown YAML
// fields are rejected so that typos surface at load time.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrReadConfig.Wrap(err, path)
	}
	return Parse(data)
}

// Parse parses YAML table definitions.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	for _, tbl := range cfg.Tables {
		if err := tbl.validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Table returns the definition for |name|.
func (c *Config) Table(name string) (TableConfig, error) {
	for _, tbl := range c.Tables {
		if tbl.Name == name {
			return tbl, nil
		}
	}
	return TableConfig{}, ErrUnknownTable.New(name)
}

// encodingsByName maps definition-file type names to field encodings.
var encodingsByName = map[string]val.Encoding{
	"bool":      val.BoolEnc,
	"int8":      val.Int8Enc,
	"uint8":     val.Uint8Enc,
	"int16":     val.Int16Enc,
	"uint16":    val.Uint16Enc,
	"int32":     val.Int32Enc,
	"uint32":    val.Uint32Enc,
	"int64":     val.Int64Enc,
	"uint64":    val.Uint64Enc,
	"float32":   val.Float32Enc,
	"float64":   val.Float64Enc,
	"timestamp": val.TimestampEnc,
	"year":      val.YearEnc,
	"string":    val.StringEnc,
	"bytes":     val.BytesEnc,
	"decimal":   val.DecimalEnc,
}

func (tc TableConfig) validate() error {
	if tc.Name == "" {
		return ErrInvalidTableDef.New("(unnamed)", "table has no name")
	}
	if len(tc.Columns) == 0 {
		return ErrInvalidTableDef.New(tc.Name, "table has no columns")
	}
	if tc.Columns[0].Nullable {
		return ErrInvalidTableDef.New(tc.Name, "key column cannot be nullable")
	}
	for _, col := range tc.Columns {
		if _, ok := encodingsByName[col.Type]; !ok {
			return ErrInvalidTableDef.New(tc.Name, "unknown column type "+col.Type)
		}
	}
	switch tc.engine() {
	case kv.BoltEngine, kv.LevelDBEngine, kv.MemoryEngine:
	default:
		return ErrInvalidTableDef.New(tc.Name, "unknown storage engine "+tc.Engine)
	}
	if tc.Path == "" {
		return ErrInvalidTableDef.New(tc.Name, "table has no storage path")
	}
	return nil
}

func (tc TableConfig) engine() kv.Engine {
	if tc.Engine == "" {
		return kv.BoltEngine
	}
	return kv.Engine(tc.Engine)
}

// Desc builds the row shape for the table.
func (tc TableConfig) Desc() val.TupleDesc {
	types := make([]val.Type, len(tc.Columns))
	for i, col := range tc.Columns {
		types[i] = val.Type{Enc: encodingsByName[col.Type], Nullable: col.Nullable}
	}
	return val.NewTupleDescriptor(types...)
}

// Relation binds the definition to a plan-time Relation.
func (tc TableConfig) Relation() exec.Relation {
	return exec.NewRelation(tc.Name, tc.Desc(), tc.engine(), tc.Path)
}

// ColumnIndex returns the position of |name| in the table, or -1.
func (tc TableConfig) ColumnIndex(name string) int {
	for i, col := range tc.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}
