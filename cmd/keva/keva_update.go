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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/kevadb/keva/exec"
	"github.com/kevadb/keva/store/val"
)

func kevaUpdate(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	update := app.Command("update", "rewrite columns of the row with the given key")
	table := update.Arg("table", "table to update").Required().String()
	key := update.Arg("key", "key value").Required().String()
	sets := update.Arg("sets", "column=value assignments; NULL for null").Required().Strings()

	return update, func(input string) int {
		tbl, rel, err := e.table(*table)
		if err != nil {
			return die(err)
		}
		filters, err := keyFilter(rel.Desc, *key)
		if err != nil {
			return die(err)
		}

		s, err := exec.BeginScan(rel, filters)
		if err != nil {
			return die(err)
		}
		defer s.Close()

		row, err := s.Next()
		if err == io.EOF {
			fmt.Fprintf(os.Stderr, "no row with key %s\n", *key)
			return 1
		}
		if err != nil {
			return die(err)
		}

		for _, set := range *sets {
			name, value, found := strings.Cut(set, "=")
			if !found {
				return die(fmt.Errorf("malformed assignment %q, want column=value", set))
			}
			i := tbl.ColumnIndex(name)
			if i < 0 {
				return die(fmt.Errorf("no column named %s", name))
			}
			if i == 0 {
				return die(fmt.Errorf("the key column cannot be updated"))
			}
			if value == nullLiteral {
				row[i] = nil
				continue
			}
			v, err := val.ParseValue(rel.Desc.Types[i], value)
			if err != nil {
				return die(fmt.Errorf("column %s: %s", name, err))
			}
			if row[i], err = val.EncodeValue(rel.Desc.Types[i], v); err != nil {
				return die(fmt.Errorf("column %s: %s", name, err))
			}
		}

		w := exec.BeginModifyWith(s, exec.CmdUpdate)
		defer w.Close()
		if err = w.Update(row); err != nil {
			return die(err)
		}
		return 0
	}
}
