// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 6502 instruction set disassembler.
package disasm

import (
	"fmt"

	"github.com/halbits/mos6502/asm"
	"github.com/halbits/mos6502/cpu"
)

// Line is one disassembled instruction: its offset into the input
// byte stream, the raw opcode bytes padded to 8 hex characters, and
// the formatted mnemonic/operand text.
type Line struct {
	Offset uint16
	Raw    string
	Text   string
}

// modeFormat gives the operand syntax for each addressing mode, keyed
// by cpu.AddressingMode.
var modeFormat = [...]string{
	cpu.IMPACC: "%s",
	cpu.IMM:    "%s #$%s",
	cpu.RELZPG: "%s $%s",
	cpu.ZPX:    "%s $%s,X",
	cpu.ZPY:    "%s $%s,Y",
	cpu.ABS:    "%s $%s",
	cpu.ABX:    "%s $%s,X",
	cpu.ABY:    "%s $%s,Y",
	cpu.IND:    "%s ($%s)",
	cpu.IDX:    "%s ($%s,X)",
	cpu.IDY:    "%s ($%s),Y",
}

const hexDigits = "0123456789ABCDEF"

func hexString(b []byte) string {
	buf := make([]byte, len(b)*2)
	j := 0
	for _, n := range b {
		buf[j] = hexDigits[n>>4]
		buf[j+1] = hexDigits[n&0xf]
		j += 2
	}
	return string(buf)
}

func padRaw(raw string) string {
	for len(raw) < 8 {
		raw += " "
	}
	return raw
}

// Disassemble performs a stateless linear scan of b from offset 0,
// decoding one instruction per step and formatting it per the mode
// table. It stops after the first BRK. An undecodable byte returns
// asm.InvalidOpcode.
func Disassemble(b []byte) ([]Line, error) {
	set := cpu.GetInstructionSet()
	var lines []Line

	offset := uint16(0)
	for int(offset) < len(b) {
		opcode := b[offset]
		in, ok := set.Decode(opcode)
		if !ok {
			return nil, asm.InvalidOpcode(offset, opcode)
		}

		length := uint16(in.Length())
		operand := b[offset+1 : min(offset+length, uint16(len(b)))]

		var text string
		if in.Mode == cpu.IMPACC {
			text = fmt.Sprintf(modeFormat[cpu.IMPACC], in.Mnemonic)
		} else {
			text = fmt.Sprintf(modeFormat[in.Mode], in.Mnemonic, hexString(reverseEndian(operand)))
		}

		lines = append(lines, Line{
			Offset: offset,
			Raw:    padRaw(hexString(b[offset:min(offset+length, uint16(len(b)))])),
			Text:   text,
		})

		if in.Mnemonic == cpu.BRK {
			break
		}
		offset += length
	}

	return lines, nil
}

// reverseEndian flips a little-endian 2-byte operand so hexString
// prints it in the conventional big-endian $hhhh reading order. A
// 1-byte (or empty) operand passes through unchanged.
func reverseEndian(b []byte) []byte {
	if len(b) != 2 {
		return b
	}
	return []byte{b[1], b[0]}
}
