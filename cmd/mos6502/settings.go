// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// settings holds the REPL's adjustable defaults. Fields are matched
// by case-insensitive prefix against the argument to the "set"
// command.
type settings struct {
	DisasmLines     int    `doc:"default number of lines to disassemble"`
	MemDumpBytes    int    `doc:"default number of memory bytes to dump"`
	NextDisasmAddr  uint16 `doc:"address of next disassembly"`
	NextMemDumpAddr uint16 `doc:"address of next memory dump"`
}

func newSettings() *settings {
	return &settings{
		DisasmLines:  10,
		MemDumpBytes: 64,
	}
}

type settingsField struct {
	name string
	index int
	kind reflect.Kind
	typ  reflect.Type
	doc  string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	t := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, t.NumField())
	for i := range settingsFields {
		f := t.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

// Display writes every setting and its documentation to w.
func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		fmt.Fprintf(w, "    %-16s %-10v (%s)\n", f.name, v, f.doc)
	}
}

// Set parses value according to the field's kind and assigns it to
// the setting matching key's prefix.
func (s *settings) Set(key, value string) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return err
	}

	field := reflect.ValueOf(s).Elem().Field(f.index)
	switch f.kind {
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(n))
	case reflect.Uint16:
		n, err := strconv.ParseUint(strings.TrimPrefix(value, "$"), hexOrDec(value), 16)
		if err != nil {
			return err
		}
		field.SetUint(n)
	default:
		return fmt.Errorf("setting %q has an unsupported type", key)
	}
	return nil
}

func hexOrDec(value string) int {
	if strings.HasPrefix(value, "$") {
		return 16
	}
	return 10
}
