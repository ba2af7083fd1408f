// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"bytes"
	"testing"
)

func assembleOrFatal(t *testing.T, src string) []byte {
	t.Helper()
	b, err := Assemble(src)
	if err != nil {
		t.Fatalf("Assemble(%q): %v", src, err)
	}
	return b
}

func TestAssembleImmediateAndAbsolute(t *testing.T) {
	src := "LDX #$01\nSTX $0000\n"
	want := []byte{0xa2, 0x01, 0x8e, 0x00, 0x00}
	got := assembleOrFatal(t, src)
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestAssembleBranchToForwardLabel(t *testing.T) {
	src := `
LDA #$02
CMP #$01
BNE FOO
LDA #$01
STA $00
BRK
FOO:
LDA #$01
STA $01
BRK
`
	want := []byte{
		0xa9, 0x02, // LDA #$02
		0xc9, 0x01, // CMP #$01
		0xd0, 0x05, // BNE +5
		0xa9, 0x01, // LDA #$01
		0x85, 0x00, // STA $00
		0x00,       // BRK
		0xa9, 0x01, // FOO: LDA #$01
		0x85, 0x01, // STA $01
		0x00, // BRK
	}
	got := assembleOrFatal(t, src)
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestAssembleBackwardLabelLoop(t *testing.T) {
	src := `
LOOP:
INX
BNE LOOP
BRK
`
	got := assembleOrFatal(t, src)
	want := []byte{0xe8, 0xd0, 0xfd, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestAssembleDefine(t *testing.T) {
	src := "define PORT $d000\nLDA PORT\n"
	got := assembleOrFatal(t, src)
	want := []byte{0xad, 0x00, 0xd0}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestAssembleUndefinedLabel(t *testing.T) {
	_, err := Assemble("JMP NOWHERE\n")
	if err == nil {
		t.Fatal("expected error for undefined label")
	}
	aerr, ok := err.(*Error)
	if !ok || aerr.Kind != ErrInvalidLabel {
		t.Fatalf("expected ErrInvalidLabel, got %v", err)
	}
}

func TestAssembleInvalidMnemonic(t *testing.T) {
	_, err := Assemble("FOO #$01\n")
	aerr, ok := err.(*Error)
	if !ok || aerr.Kind != ErrInvalidMnemonic {
		t.Fatalf("expected ErrInvalidMnemonic, got %v", err)
	}
}

func TestAssembleInvalidAddressingMode(t *testing.T) {
	// TAX never takes an operand.
	_, err := Assemble("TAX #$01\n")
	aerr, ok := err.(*Error)
	if !ok || aerr.Kind != ErrInvalidInstruction {
		t.Fatalf("expected ErrInvalidInstruction, got %v", err)
	}
}
