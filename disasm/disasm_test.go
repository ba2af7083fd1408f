// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm

import (
	"testing"

	"github.com/halbits/mos6502/asm"
)

func TestDisassembleBasic(t *testing.T) {
	b := []byte{0xa2, 0x01, 0x8e, 0x00, 0x00, 0x00}
	lines, err := Disassemble(b)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	want := []string{"LDX #$01", "STX $0000", "BRK"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %+v", len(lines), len(want), lines)
	}
	for i, w := range want {
		if lines[i].Text != w {
			t.Errorf("line %d: got %q, want %q", i, lines[i].Text, w)
		}
	}
}

func TestDisassembleStopsAfterBRK(t *testing.T) {
	b := []byte{0xea, 0x00, 0xea}
	lines, err := Disassemble(b)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (stop after BRK): %+v", len(lines), lines)
	}
	if lines[1].Text != "BRK" {
		t.Errorf("expected BRK as final line, got %q", lines[1].Text)
	}
}

func TestDisassembleRawPadding(t *testing.T) {
	b := []byte{0xea, 0x00}
	lines, err := Disassemble(b)
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if len(lines[0].Raw) != 8 {
		t.Errorf("expected raw field padded to 8 chars, got %q (%d)", lines[0].Raw, len(lines[0].Raw))
	}
}

func TestDisassembleInvalidOpcode(t *testing.T) {
	b := []byte{0x02} // unused/illegal opcode
	_, err := Disassemble(b)
	aerr, ok := err.(*asm.Error)
	if !ok || aerr.Kind != asm.ErrInvalidOpcode {
		t.Fatalf("expected ErrInvalidOpcode, got %v", err)
	}
}
