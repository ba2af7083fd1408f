// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "github.com/halbits/mos6502/cpu"

// Assemble compiles source into a byte slice ready to load at
// cpu.ORG. It runs two passes over the parsed Program: the first
// walks statements in order to size each instruction and build a
// label table of addresses (emitted-offset sizing, not a fixed-width
// guess); the second emits bytes, resolving label references against
// the table built in the first pass.
func Assemble(src string) ([]byte, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	prog, err := p.Parse()
	if err != nil {
		return nil, err
	}

	labels, err := buildLabelTable(prog)
	if err != nil {
		return nil, err
	}

	return emit(prog, labels)
}

func buildLabelTable(prog *Program) (map[string]uint16, error) {
	labels := make(map[string]uint16)
	addr := cpu.ORG
	for _, stmt := range prog.Statements {
		switch stmt.Kind {
		case StatementLabel:
			labels[stmt.Label] = addr
		case StatementInstruction:
			addr += uint16(stmt.Instruction.Operand.Mode.OperandBytes()) + 1
		}
	}
	return labels, nil
}

func emit(prog *Program, labels map[string]uint16) ([]byte, error) {
	set := cpu.GetInstructionSet()
	var out []byte
	addr := cpu.ORG

	for _, stmt := range prog.Statements {
		if stmt.Kind != StatementInstruction {
			continue
		}
		in := stmt.Instruction
		opcode, ok := set.Encode(in.Mnemonic, in.Operand.Mode)
		if !ok {
			return nil, invalidInstruction(in.Pos, in.Mnemonic, in.Operand.Mode)
		}
		out = append(out, opcode)
		length := uint16(in.Operand.Mode.OperandBytes()) + 1

		value, err := resolveOperand(in, labels, addr+length)
		if err != nil {
			return nil, err
		}

		switch in.Operand.Mode.OperandBytes() {
		case 0:
		case 1:
			out = append(out, byte(value))
		case 2:
			out = append(out, byte(value), byte(value>>8))
		}

		addr += length
	}

	return out, nil
}

// resolveOperand reduces an instruction's operand to the raw value to
// emit. next is the address immediately following the instruction,
// used to compute a branch's relative displacement.
func resolveOperand(in Instruction, labels map[string]uint16, next uint16) (uint16, error) {
	data := in.Operand.Data
	if data == nil {
		return 0, nil
	}

	var target uint16
	switch data.Kind {
	case OperandNumber:
		target = data.Number.Value
	case OperandLabel:
		addr, ok := labels[data.Label]
		if !ok {
			return 0, invalidLabel(in.Pos, data.Label)
		}
		target = addr
	}

	if in.Mnemonic.IsBranch() {
		disp := int(target) - int(next)
		if disp < -128 || disp > 127 {
			return 0, invalidOperand(in.Pos, "branch target out of range")
		}
		return uint16(byte(disp)), nil
	}

	return target, nil
}
