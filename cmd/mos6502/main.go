// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mos6502 is an interactive REPL over the mos6502 package: it
// assembles, loads, runs, and disassembles 6502 programs from a
// terminal or a script file.
package main

import "os"

func main() {
	r := newREPL()

	args := os.Args[1:]
	if len(args) > 0 {
		for _, filename := range args {
			file, err := os.Open(filename)
			if err != nil {
				exitOnError(err)
			}
			r.Run(file, os.Stdout, false)
			file.Close()
		}
	}

	r.Run(os.Stdin, os.Stdout, true)
}
