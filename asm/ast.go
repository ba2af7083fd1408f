// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "github.com/halbits/mos6502/cpu"

// NumberValue is a numeric literal tagged by its syntactic width; the
// radix it was written in is not recorded. The lexer determines width
// from digit count (hex) or magnitude (decimal), and the parser uses it
// to choose the zero-page or absolute addressing mode, which in turn
// decides how many bytes the assembler writes.
type NumberValue struct {
	Value uint16
	Width Width
}

// OperandKind distinguishes a resolved numeric operand from a label
// reference awaiting pass-2 resolution.
type OperandKind int

const (
	OperandNumber OperandKind = iota
	OperandLabel
)

// OperandData is the tagged payload of an Operand: either a literal
// number or the name of a label to be resolved against the label
// table during assembly.
type OperandData struct {
	Kind   OperandKind
	Number NumberValue
	Label  string
}

// Operand pairs an optional OperandData with the addressing mode the
// parser inferred for it. A nil Data means AddressingMode IMPACC.
type Operand struct {
	Data *OperandData
	Mode cpu.AddressingMode
}

// Instruction is a single assembly-language instruction: a mnemonic,
// its operand, and the source position it was parsed from.
type Instruction struct {
	Mnemonic cpu.Mnemonic
	Operand  Operand
	Pos      Position
}

// StatementKind distinguishes the two kinds of top-level statement a
// Program is built from.
type StatementKind int

const (
	StatementLabel StatementKind = iota
	StatementInstruction
)

// Statement is a single line of the program: either a label
// declaration or an instruction.
type Statement struct {
	Kind        StatementKind
	Label       string
	Instruction Instruction
}

// Program is the ordered sequence of statements the parser produces.
type Program struct {
	Statements []Statement
}
