// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "fmt"

// Mnemonic identifies one of the 56 legal 6502 instructions.
type Mnemonic int

// The full set of 56 mnemonics.
const (
	ADC Mnemonic = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
	numMnemonics
)

var mnemonicNames = [numMnemonics]string{
	ADC: "ADC", AND: "AND", ASL: "ASL", BCC: "BCC", BCS: "BCS", BEQ: "BEQ",
	BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL", BRK: "BRK", BVC: "BVC",
	BVS: "BVS", CLC: "CLC", CLD: "CLD", CLI: "CLI", CLV: "CLV", CMP: "CMP",
	CPX: "CPX", CPY: "CPY", DEC: "DEC", DEX: "DEX", DEY: "DEY", EOR: "EOR",
	INC: "INC", INX: "INX", INY: "INY", JMP: "JMP", JSR: "JSR", LDA: "LDA",
	LDX: "LDX", LDY: "LDY", LSR: "LSR", NOP: "NOP", ORA: "ORA", PHA: "PHA",
	PHP: "PHP", PLA: "PLA", PLP: "PLP", ROL: "ROL", ROR: "ROR", RTI: "RTI",
	RTS: "RTS", SBC: "SBC", SEC: "SEC", SED: "SED", SEI: "SEI", STA: "STA",
	STX: "STX", STY: "STY", TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA",
	TXS: "TXS", TYA: "TYA",
}

// String returns the three-letter mnemonic name.
func (m Mnemonic) String() string {
	if m < 0 || m >= numMnemonics {
		return fmt.Sprintf("Mnemonic(%d)", int(m))
	}
	return mnemonicNames[m]
}

// MnemonicByName looks up a Mnemonic by its three-letter name. ok is
// false for unrecognized text.
func MnemonicByName(name string) (m Mnemonic, ok bool) {
	for i, n := range mnemonicNames {
		if n == name {
			return Mnemonic(i), true
		}
	}
	return 0, false
}

// IsBranch reports whether m is one of the eight conditional branch
// instructions, which take a relative-displacement operand rather than
// an absolute address when the operand is a label.
func (m Mnemonic) IsBranch() bool {
	switch m {
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS:
		return true
	}
	return false
}

// AddressingMode identifies one of the 11 addressing-mode encodings.
// Branch targets and zero-page operands share the RELZPG slot; the
// mnemonic class disambiguates semantics at emit and execute time.
type AddressingMode int

const (
	IMPACC AddressingMode = iota // implied or accumulator: no operand byte
	IMM                          // immediate: 1 byte
	RELZPG                       // relative branch or zero page: 1 byte
	ZPX                          // zero page, X: 1 byte
	ZPY                          // zero page, Y: 1 byte
	ABS                          // absolute: 2 bytes
	ABX                          // absolute, X: 2 bytes
	ABY                          // absolute, Y: 2 bytes
	IND                          // indirect: 2 bytes
	IDX                          // indexed indirect (zp,X): 1 byte
	IDY                          // indirect indexed (zp),Y: 1 byte
	numModes
)

// OperandBytes returns the number of operand bytes that follow the
// opcode byte for this addressing mode.
func (a AddressingMode) OperandBytes() int {
	switch a {
	case IMPACC:
		return 0
	case ABS, ABX, ABY, IND:
		return 2
	default:
		return 1
	}
}

var modeNames = [numModes]string{
	IMPACC: "IMPACC", IMM: "IMM", RELZPG: "RELZPG", ZPX: "ZPX", ZPY: "ZPY",
	ABS: "ABS", ABX: "ABX", ABY: "ABY", IND: "IND", IDX: "IDX", IDY: "IDY",
}

func (a AddressingMode) String() string {
	if a < 0 || a >= numModes {
		return fmt.Sprintf("AddressingMode(%d)", int(a))
	}
	return modeNames[a]
}

// Instruction describes one opcode table entry: the mnemonic it
// decodes to, its addressing mode, and the function that implements it.
type Instruction struct {
	Mnemonic Mnemonic
	Mode     AddressingMode
	Opcode   byte
	fn       func(c *CPU, mode AddressingMode, operand []byte)
}

// Length returns the total instruction length in bytes, including the
// opcode byte.
func (in *Instruction) Length() int {
	return 1 + in.Mode.OperandBytes()
}

type opcodeEntry struct {
	mnemonic Mnemonic
	mode     AddressingMode
	opcode   byte
}

// opcodeTable is the canonical 151-entry legal 6502 opcode map.
var opcodeTable = []opcodeEntry{
	{LDA, IMM, 0xa9}, {LDA, RELZPG, 0xa5}, {LDA, ZPX, 0xb5}, {LDA, ABS, 0xad},
	{LDA, ABX, 0xbd}, {LDA, ABY, 0xb9}, {LDA, IDX, 0xa1}, {LDA, IDY, 0xb1},
	{LDX, IMM, 0xa2}, {LDX, RELZPG, 0xa6}, {LDX, ZPY, 0xb6}, {LDX, ABS, 0xae},
	{LDX, ABY, 0xbe},
	{LDY, IMM, 0xa0}, {LDY, RELZPG, 0xa4}, {LDY, ZPX, 0xb4}, {LDY, ABS, 0xac},
	{LDY, ABX, 0xbc},
	{STA, RELZPG, 0x85}, {STA, ZPX, 0x95}, {STA, ABS, 0x8d}, {STA, ABX, 0x9d},
	{STA, ABY, 0x99}, {STA, IDX, 0x81}, {STA, IDY, 0x91},
	{STX, RELZPG, 0x86}, {STX, ZPY, 0x96}, {STX, ABS, 0x8e},
	{STY, RELZPG, 0x84}, {STY, ZPX, 0x94}, {STY, ABS, 0x8c},
	{ADC, IMM, 0x69}, {ADC, RELZPG, 0x65}, {ADC, ZPX, 0x75}, {ADC, ABS, 0x6d},
	{ADC, ABX, 0x7d}, {ADC, ABY, 0x79}, {ADC, IDX, 0x61}, {ADC, IDY, 0x71},
	{SBC, IMM, 0xe9}, {SBC, RELZPG, 0xe5}, {SBC, ZPX, 0xf5}, {SBC, ABS, 0xed},
	{SBC, ABX, 0xfd}, {SBC, ABY, 0xf9}, {SBC, IDX, 0xe1}, {SBC, IDY, 0xf1},
	{CMP, IMM, 0xc9}, {CMP, RELZPG, 0xc5}, {CMP, ZPX, 0xd5}, {CMP, ABS, 0xcd},
	{CMP, ABX, 0xdd}, {CMP, ABY, 0xd9}, {CMP, IDX, 0xc1}, {CMP, IDY, 0xd1},
	{CPX, IMM, 0xe0}, {CPX, RELZPG, 0xe4}, {CPX, ABS, 0xec},
	{CPY, IMM, 0xc0}, {CPY, RELZPG, 0xc4}, {CPY, ABS, 0xcc},
	{BIT, RELZPG, 0x24}, {BIT, ABS, 0x2c},
	{CLC, IMPACC, 0x18}, {SEC, IMPACC, 0x38}, {CLI, IMPACC, 0x58},
	{SEI, IMPACC, 0x78}, {CLD, IMPACC, 0xd8}, {SED, IMPACC, 0xf8},
	{CLV, IMPACC, 0xb8},
	{BCC, RELZPG, 0x90}, {BCS, RELZPG, 0xb0}, {BEQ, RELZPG, 0xf0},
	{BNE, RELZPG, 0xd0}, {BMI, RELZPG, 0x30}, {BPL, RELZPG, 0x10},
	{BVC, RELZPG, 0x50}, {BVS, RELZPG, 0x70},
	{BRK, IMPACC, 0x00},
	{AND, IMM, 0x29}, {AND, RELZPG, 0x25}, {AND, ZPX, 0x35}, {AND, ABS, 0x2d},
	{AND, ABX, 0x3d}, {AND, ABY, 0x39}, {AND, IDX, 0x21}, {AND, IDY, 0x31},
	{ORA, IMM, 0x09}, {ORA, RELZPG, 0x05}, {ORA, ZPX, 0x15}, {ORA, ABS, 0x0d},
	{ORA, ABX, 0x1d}, {ORA, ABY, 0x19}, {ORA, IDX, 0x01}, {ORA, IDY, 0x11},
	{EOR, IMM, 0x49}, {EOR, RELZPG, 0x45}, {EOR, ZPX, 0x55}, {EOR, ABS, 0x4d},
	{EOR, ABX, 0x5d}, {EOR, ABY, 0x59}, {EOR, IDX, 0x41}, {EOR, IDY, 0x51},
	{INC, RELZPG, 0xe6}, {INC, ZPX, 0xf6}, {INC, ABS, 0xee}, {INC, ABX, 0xfe},
	{DEC, RELZPG, 0xc6}, {DEC, ZPX, 0xd6}, {DEC, ABS, 0xce}, {DEC, ABX, 0xde},
	{INX, IMPACC, 0xe8}, {INY, IMPACC, 0xc8}, {DEX, IMPACC, 0xca}, {DEY, IMPACC, 0x88},
	{JMP, ABS, 0x4c}, {JMP, IND, 0x6c},
	{JSR, ABS, 0x20}, {RTS, IMPACC, 0x60}, {RTI, IMPACC, 0x40},
	{NOP, IMPACC, 0xea},
	{TAX, IMPACC, 0xaa}, {TXA, IMPACC, 0x8a}, {TAY, IMPACC, 0xa8},
	{TYA, IMPACC, 0x98}, {TXS, IMPACC, 0x9a}, {TSX, IMPACC, 0xba},
	{PHA, IMPACC, 0x48}, {PLA, IMPACC, 0x68}, {PHP, IMPACC, 0x08}, {PLP, IMPACC, 0x28},
	{ASL, IMPACC, 0x0a}, {ASL, RELZPG, 0x06}, {ASL, ZPX, 0x16}, {ASL, ABS, 0x0e}, {ASL, ABX, 0x1e},
	{LSR, IMPACC, 0x4a}, {LSR, RELZPG, 0x46}, {LSR, ZPX, 0x56}, {LSR, ABS, 0x4e}, {LSR, ABX, 0x5e},
	{ROL, IMPACC, 0x2a}, {ROL, RELZPG, 0x26}, {ROL, ZPX, 0x36}, {ROL, ABS, 0x2e}, {ROL, ABX, 0x3e},
	{ROR, IMPACC, 0x6a}, {ROR, RELZPG, 0x66}, {ROR, ZPX, 0x76}, {ROR, ABS, 0x6e}, {ROR, ABX, 0x7e},
}

// InstructionSet indexes the opcode table both by opcode byte (for
// decode/dispatch) and by (mnemonic, mode) pair (for the assembler's
// encoder).
type InstructionSet struct {
	byOpcode [256]*Instruction
	byPair   map[Mnemonic]map[AddressingMode]*Instruction
}

var instructionSet = newInstructionSet()

// GetInstructionSet returns the singleton instruction set.
func GetInstructionSet() *InstructionSet {
	return instructionSet
}

func newInstructionSet() *InstructionSet {
	is := &InstructionSet{
		byPair: make(map[Mnemonic]map[AddressingMode]*Instruction),
	}
	for _, e := range opcodeTable {
		in := &Instruction{
			Mnemonic: e.mnemonic,
			Mode:     e.mode,
			Opcode:   e.opcode,
			fn:       dispatchTable[e.mnemonic],
		}
		is.byOpcode[e.opcode] = in
		if is.byPair[e.mnemonic] == nil {
			is.byPair[e.mnemonic] = make(map[AddressingMode]*Instruction)
		}
		is.byPair[e.mnemonic][e.mode] = in
	}
	return is
}

// Decode returns the instruction encoded by opcode, or false if the
// byte is not a legal opcode.
func (is *InstructionSet) Decode(opcode byte) (*Instruction, bool) {
	in := is.byOpcode[opcode]
	return in, in != nil
}

// Encode returns the opcode byte for (mnemonic, mode), or false if no
// such pairing exists in the table.
func (is *InstructionSet) Encode(m Mnemonic, mode AddressingMode) (byte, bool) {
	byMode, ok := is.byPair[m]
	if !ok {
		return 0, false
	}
	in, ok := byMode[mode]
	if !ok {
		return 0, false
	}
	return in.Opcode, true
}
