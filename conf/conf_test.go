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

package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevadb/keva/store/kv"
	"github.com/kevadb/keva/store/val"
)

const testConfig = `
tables:
  - name: people
    engine: memory
    path: mem://people
    columns:
      - name: id
        type: int32
      - name: name
        type: string
        nullable: true
      - name: balance
        type: decimal
        nullable: true
  - name: events
    path: /var/lib/keva/events.db
    columns:
      - name: at
        type: timestamp
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(testConfig))
	require.NoError(t, err)
	require.Len(t, cfg.Tables, 2)

	people, err := cfg.Table("people")
	require.NoError(t, err)

	rel := people.Relation()
	assert.Equal(t, "people", rel.Name)
	assert.Equal(t, kv.MemoryEngine, rel.Engine)
	assert.Equal(t, "mem://people", rel.Path)
	assert.Equal(t, 3, rel.Desc.Count())
	assert.Equal(t, val.Type{Enc: val.Int32Enc}, rel.Desc.KeyType())
	assert.Equal(t, val.Type{Enc: val.DecimalEnc, Nullable: true}, rel.Desc.Types[2])

	assert.Equal(t, 1, people.ColumnIndex("name"))
	assert.Equal(t, -1, people.ColumnIndex("nope"))

	// engine defaults to bolt when unset
	events, err := cfg.Table("events")
	require.NoError(t, err)
	assert.Equal(t, kv.BoltEngine, events.Relation().Engine)

	_, err = cfg.Table("missing")
	assert.True(t, ErrUnknownTable.Is(err))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keva.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Tables, 2)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, ErrReadConfig.Is(err))
}

func TestParseRejectsInvalidDefs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "nullable key column",
			yaml: `
tables:
  - name: bad
    path: p
    columns:
      - name: id
        type: int32
        nullable: true
`,
		},
		{
			name: "no columns",
			yaml: `
tables:
  - name: bad
    path: p
    columns: []
`,
		},
		{
			name: "unknown type",
			yaml: `
tables:
  - name: bad
    path: p
    columns:
      - name: id
        type: varchar
`,
		},
		{
			name: "unknown engine",
			yaml: `
tables:
  - name: bad
    engine: rocksdb
    path: p
    columns:
      - name: id
        type: int32
`,
		},
		{
			name: "missing path",
			yaml: `
tables:
  - name: bad
    columns:
      - name: id
        type: int32
`,
		},
		{
			name: "unnamed table",
			yaml: `
tables:
  - path: p
    columns:
      - name: id
        type: int32
`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.yaml))
			assert.True(t, ErrInvalidTableDef.Is(err))
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`
tables:
  - name: t
    path: p
    colums:
      - name: id
        type: int32
`))
	assert.Error(t, err)
}
