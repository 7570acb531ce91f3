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
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

func kevaPut(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	put := app.Command("put", "write a single row")
	table := put.Arg("table", "table to write to").Required().String()
	values := put.Arg("values", "one value per column, in order; NULL for null").Required().Strings()

	return put, func(input string) int {
		tbl, rel, err := e.table(*table)
		if err != nil {
			return die(err)
		}
		row, err := buildRow(tbl.Desc(), *values)
		if err != nil {
			return die(err)
		}
		if err = rel.DirectInsert(row); err != nil {
			return die(err)
		}
		return 0
	}
}
