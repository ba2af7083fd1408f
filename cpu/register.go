// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Registers holds the full architectural state of a 6502: the three
// general registers, the stack pointer, the program counter, and the
// six flag bits of the processor status byte. Bit 5 of the status byte
// is unused; SavePS leaves it clear rather than forcing it high.
type Registers struct {
	A  byte   // accumulator
	X  byte   // X index register
	Y  byte   // Y index register
	SP byte   // stack pointer; stack memory is StackBase + SP
	PC uint16 // program counter

	Carry            bool // C
	Zero             bool // Z
	InterruptDisable bool // I
	Decimal          bool // D
	Overflow         bool // V
	Sign             bool // N
}

// Bit positions within the processor status byte, MSB to LSB:
// N V - B D I Z C.
const (
	CarryBit            = 1 << 0
	ZeroBit             = 1 << 1
	InterruptDisableBit = 1 << 2
	DecimalBit          = 1 << 3
	BreakBit            = 1 << 4
	ReservedBit         = 1 << 5
	OverflowBit         = 1 << 6
	SignBit             = 1 << 7
)

// SavePS packs the flag bits into a status byte. brk controls bit 4,
// which is only meaningful when the byte is pushed by PHP or BRK. Bit 5
// is left clear; PHP/BRK do not set the reserved bit on this CPU.
func (r *Registers) SavePS(brk bool) byte {
	var ps byte
	if r.Carry {
		ps |= CarryBit
	}
	if r.Zero {
		ps |= ZeroBit
	}
	if r.InterruptDisable {
		ps |= InterruptDisableBit
	}
	if r.Decimal {
		ps |= DecimalBit
	}
	if brk {
		ps |= BreakBit
	}
	if r.Overflow {
		ps |= OverflowBit
	}
	if r.Sign {
		ps |= SignBit
	}
	return ps
}

// RestorePS unpacks a status byte into the individual flag fields.
func (r *Registers) RestorePS(ps byte) {
	r.Carry = ps&CarryBit != 0
	r.Zero = ps&ZeroBit != 0
	r.InterruptDisable = ps&InterruptDisableBit != 0
	r.Decimal = ps&DecimalBit != 0
	r.Overflow = ps&OverflowBit != 0
	r.Sign = ps&SignBit != 0
}

// SetNZ sets the Zero and Sign flags from v, as every load, transfer,
// logic, shift, and increment/decrement instruction requires.
func (r *Registers) SetNZ(v byte) {
	r.Zero = v == 0
	r.Sign = v&0x80 != 0
}

func fmtStatus(r *Registers) string {
	const hexdigits = "0123456789ABCDEF"
	h2 := func(v byte) [2]byte { return [2]byte{hexdigits[v>>4], hexdigits[v&0xf]} }
	a, x, y, sp := h2(r.A), h2(r.X), h2(r.Y), h2(r.SP)
	pc := [4]byte{
		hexdigits[byte(r.PC>>12)&0xf], hexdigits[byte(r.PC>>8)&0xf],
		hexdigits[byte(r.PC>>4)&0xf], hexdigits[byte(r.PC)&0xf],
	}
	bit := func(set bool, c byte) byte {
		if set {
			return c
		}
		return '-'
	}
	flags := []byte{
		bit(r.Sign, 'N'), ' ',
		bit(r.Overflow, 'V'), ' ',
		'-', ' ',
		'-', ' ',
		bit(r.Decimal, 'D'), ' ',
		bit(r.InterruptDisable, 'I'), ' ',
		bit(r.Zero, 'Z'), ' ',
		bit(r.Carry, 'C'),
	}
	return "A=" + string(a[:]) + " X=" + string(x[:]) + " Y=" + string(y[:]) +
		" SP=" + string(sp[:]) + " PC=" + string(pc[:]) + "\n" + string(flags)
}

// Init resets all registers to their post-reset values: A=X=Y=SP=P=0.
// PC is left at 0; the caller (CPU.Reset) sets it to ORG once memory
// is available.
func (r *Registers) Init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.SP = 0
	r.PC = 0
	r.RestorePS(0)
}

// String formats the register block the way the external interface's
// cpu_status report requires: "A=hh X=hh Y=hh SP=hh PC=hhhh" followed
// by a flag row.
func (r *Registers) String() string {
	return fmtStatus(r)
}
