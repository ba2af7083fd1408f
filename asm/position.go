// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm implements a two-pass 6502 cross-assembler: a lexer and
// parser turn source text into a Program, and an Assembler resolves
// labels and emits a byte stream targeted at ORG.
package asm

import "fmt"

// Position identifies a 1-based line and column within source text.
// Every token, instruction, and error in this package carries one;
// label statements do not.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
