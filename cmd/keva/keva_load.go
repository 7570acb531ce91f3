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
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/kevadb/keva/exec"
	"github.com/kevadb/keva/store/val"
)

func kevaLoad(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	load := app.Command("load", "bulk load rows from a CSV file")
	table := load.Arg("table", "table to load into").Required().String()
	file := load.Arg("file", "CSV file, one record per row, - for stdin").Required().String()

	return load, func(input string) int {
		tbl, rel, err := e.table(*table)
		if err != nil {
			return die(err)
		}

		in := os.Stdin
		if *file != "-" {
			if in, err = os.Open(*file); err != nil {
				return die(err)
			}
			defer in.Close()
		}

		start := time.Now()
		n, err := loadCSV(rel, tbl.Desc(), in)
		if err != nil {
			return die(err)
		}
		fmt.Printf("loaded %s rows in %s\n",
			humanize.Comma(int64(n)), time.Since(start).Round(time.Millisecond))
		return 0
	}
}

// loadCSV parses and writes concurrently: a parse stage turns CSV
// records into rows, and a single writer goroutine owns the insert
// writer, keeping one storage handle open for the whole load.
func loadCSV(rel exec.Relation, desc val.TupleDesc, in io.Reader) (uint64, error) {
	w, err := exec.BeginModify(rel)
	if err != nil {
		return 0, err
	}
	defer w.Close()

	rows := make(chan val.Row, 128)
	var n uint64

	eg, ctx := errgroup.WithContext(context.Background())
	eg.Go(func() error {
		defer close(rows)
		r := csv.NewReader(in)
		r.FieldsPerRecord = desc.Count()
		for line := 1; ; line++ {
			record, err := r.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			row, err := buildRow(desc, record)
			if err != nil {
				return fmt.Errorf("record %d: %s", line, err)
			}
			select {
			case rows <- row:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})
	eg.Go(func() error {
		for row := range rows {
			if err := w.Insert(row); err != nil {
				return err
			}
			n++
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return n, nil
}
