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
	"os"

	"github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/kevadb/keva/conf"
	"github.com/kevadb/keva/exec"
)

type handler func(input string) (exitCode int)
type command func(*kingpin.Application, *env) (*kingpin.CmdClause, handler)

var commands = []command{
	kevaPut,
	kevaGet,
	kevaScan,
	kevaDelete,
	kevaUpdate,
	kevaLoad,
	kevaStats,
}

// env carries the global flags into verb handlers.
type env struct {
	configPath *string
}

// table resolves |name| against the loaded definition file.
func (e *env) table(name string) (conf.TableConfig, exec.Relation, error) {
	cfg, err := conf.Load(*e.configPath)
	if err != nil {
		return conf.TableConfig{}, exec.Relation{}, err
	}
	tbl, err := cfg.Table(name)
	if err != nil {
		return conf.TableConfig{}, exec.Relation{}, err
	}
	return tbl, tbl.Relation(), nil
}

func die(err error) int {
	fmt.Fprintln(os.Stderr, "error:", err)
	return 1
}

func main() {
	app := kingpin.New("keva", "Keva keeps relational rows in ordered key-value storage engines.")
	e := &env{
		configPath: app.Flag("config", "table definition file").Default("keva.yaml").String(),
	}
	verbose := app.Flag("verbose", "print debug traces").Short('v').Bool()

	handlers := map[string]handler{}
	for _, cmd := range commands {
		clause, h := cmd(app, e)
		handlers[clause.FullCommand()] = h
	}

	input := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if h, ok := handlers[input]; ok {
		os.Exit(h(input))
	}
	app.Usage(nil)
	os.Exit(1)
}
