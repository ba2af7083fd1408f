// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/cmd"
	"github.com/halbits/mos6502"
)

// repl holds all state for one interactive session.
type repl struct {
	emu      *mos6502.Emulator
	input    *bufio.Scanner
	output   *bufio.Writer
	settings *settings
	lastCmd  *cmd.Selection
	quit     bool
}

func newREPL() *repl {
	return &repl{
		emu:      mos6502.New(),
		settings: newSettings(),
	}
}

func (r *repl) printf(format string, args ...any) {
	fmt.Fprintf(r.output, format, args...)
}

func (r *repl) println(args ...any) {
	fmt.Fprintln(r.output, args...)
}

// Run reads lines from rd and writes output to w until the "quit"
// command or end of input. interactive controls whether a prompt is
// displayed before each line.
func (r *repl) Run(rd io.Reader, w io.Writer, interactive bool) {
	r.input = bufio.NewScanner(rd)
	r.output = bufio.NewWriter(w)
	defer r.output.Flush()

	for !r.quit {
		if interactive {
			r.printf("* ")
			r.output.Flush()
		}
		if !r.input.Scan() {
			break
		}
		if err := r.process(strings.TrimSpace(r.input.Text())); err != nil {
			r.printf("ERROR: %v\n", err)
		}
		r.output.Flush()
	}
}

func (r *repl) process(line string) error {
	var c cmd.Selection
	if line != "" {
		var err error
		c, err = commands.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			r.println("Command not found.")
			return nil
		case err == cmd.ErrAmbiguous:
			r.println("Command is ambiguous.")
			return nil
		case err != nil:
			return err
		}
	} else if r.lastCmd != nil {
		c = *r.lastCmd
	}

	if c.Command == nil {
		return nil
	}
	if c.Command.Data == nil && c.Command.Subtree != nil {
		r.displayCommands(c.Command.Subtree)
		return nil
	}

	r.lastCmd = &c
	handler := c.Command.Data.(func(*repl, cmd.Selection) error)
	return handler(r, c)
}

func (r *repl) displayCommands(t *cmd.Tree) {
	r.printf("%s commands:\n", t.Title)
	for _, c := range t.Commands {
		if c.Brief != "" {
			r.printf("    %-16s %s\n", c.Name, c.Brief)
		}
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
