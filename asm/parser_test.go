// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"testing"

	"github.com/halbits/mos6502/cpu"
)

func parseOrFatal(t *testing.T, src string) *Program {
	t.Helper()
	p, err := NewParser(src)
	if err != nil {
		t.Fatalf("NewParser(%q): %v", src, err)
	}
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return prog
}

func TestParserAddressingModes(t *testing.T) {
	cases := []struct {
		src  string
		mode cpu.AddressingMode
	}{
		{"LDA #$01\n", cpu.IMM},
		{"LDA $01\n", cpu.RELZPG},
		{"LDA $0100\n", cpu.ABS},
		{"LDA $01,X\n", cpu.ZPX},
		{"LDA $0100,X\n", cpu.ABX},
		{"LDA $0100,Y\n", cpu.ABY},
		{"LDA ($01)\n", cpu.IND},
		{"LDA ($01,X)\n", cpu.IDX},
		{"LDA ($01),Y\n", cpu.IDY},
		{"TAX\n", cpu.IMPACC},
		{"BNE LOOP\n", cpu.RELZPG},
	}
	for _, c := range cases {
		prog := parseOrFatal(t, c.src)
		if len(prog.Statements) != 1 {
			t.Fatalf("%q: expected 1 statement, got %d", c.src, len(prog.Statements))
		}
		in := prog.Statements[0].Instruction
		if in.Operand.Mode != c.mode {
			t.Errorf("%q: got mode %v, want %v", c.src, in.Operand.Mode, c.mode)
		}
	}
}

func TestParserLabelStatement(t *testing.T) {
	prog := parseOrFatal(t, "LOOP:\nNOP\n")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
	if prog.Statements[0].Kind != StatementLabel || prog.Statements[0].Label != "LOOP" {
		t.Errorf("expected label LOOP, got %+v", prog.Statements[0])
	}
}

func TestParserUnknownMnemonic(t *testing.T) {
	p, err := NewParser("BOGUS\n")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	_, err = p.Parse()
	aerr, ok := err.(*Error)
	if !ok || aerr.Kind != ErrInvalidMnemonic {
		t.Fatalf("expected ErrInvalidMnemonic, got %v", err)
	}
}
