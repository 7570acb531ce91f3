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

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/kevadb/keva/exec"
)

func kevaDelete(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	del := app.Command("delete", "delete the row with the given key")
	table := del.Arg("table", "table to delete from").Required().String()
	key := del.Arg("key", "key value").Required().String()

	return del, func(input string) int {
		_, rel, err := e.table(*table)
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
		w := exec.BeginModifyWith(s, exec.CmdDelete)
		defer w.Close()

		deleted := 0
		for {
			row, err := s.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return die(err)
			}
			// carry the key identity alongside the row
			planRow := append(row, row[0])
			if err = w.Delete(planRow); err != nil {
				return die(err)
			}
			deleted++
		}
		fmt.Printf("deleted %d row(s)\n", deleted)
		return 0
	}
}
