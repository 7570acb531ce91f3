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

func kevaScan(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	scan := app.Command("scan", "print a table's rows in key order")
	table := scan.Arg("table", "table to read").Required().String()
	eq := scan.Flag("eq", "only the row whose key equals this value").String()

	return scan, func(input string) int {
		_, rel, err := e.table(*table)
		if err != nil {
			return die(err)
		}

		var filters []exec.Expr
		if *eq != "" {
			if filters, err = keyFilter(rel.Desc, *eq); err != nil {
				return die(err)
			}
		}

		s, err := exec.BeginScan(rel, filters)
		if err != nil {
			return die(err)
		}
		defer s.Close()

		for {
			row, err := s.Next()
			if err == io.EOF {
				return 0
			}
			if err != nil {
				return die(err)
			}
			fmt.Println(rel.Desc.Format(row))
		}
	}
}
