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

	humanize "github.com/dustin/go-humanize"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

func kevaStats(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	stats := app.Command("stats", "print table statistics")
	table := stats.Arg("table", "table to inspect").Required().String()

	return stats, func(input string) int {
		_, rel, err := e.table(*table)
		if err != nil {
			return die(err)
		}
		n, err := rel.EstimatedRowCount()
		if err != nil {
			return die(err)
		}
		fmt.Printf("%s: %s rows (%s/%s)\n",
			rel.Name, humanize.Comma(int64(n)), rel.Engine, rel.Path)
		return 0
	}
}
