// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// This file implements the per-mnemonic semantics dispatched from
// Instruction.fn. Each function receives the CPU, the addressing mode
// actually used by the instruction being executed, and its raw operand
// bytes.
//
// ADC and SBC here compute the canonical 6502 formula, A + M + C and
// A + (M XOR 0xFF) + C respectively, rather than the one's-complement-
// minus-one shortcut that miscomputes when M is zero.

func addWithCarry(c *CPU, m byte) {
	a := c.Reg.A
	var carry uint16
	if c.Reg.Carry {
		carry = 1
	}
	sum := uint16(a) + uint16(m) + carry
	r := byte(sum)
	c.Reg.Carry = sum >= 0x100
	c.Reg.Overflow = (a^r)&(m^r)&0x80 != 0
	c.Reg.A = r
	c.Reg.SetNZ(r)
}

func adc(c *CPU, mode AddressingMode, operand []byte) {
	addWithCarry(c, c.load(mode, operand))
}

func sbc(c *CPU, mode AddressingMode, operand []byte) {
	addWithCarry(c, c.load(mode, operand)^0xff)
}

func and(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.A &= c.load(mode, operand)
	c.Reg.SetNZ(c.Reg.A)
}

func asl(c *CPU, mode AddressingMode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Carry = v&0x80 != 0
	v <<= 1
	c.Reg.SetNZ(v)
	c.store(mode, operand, v)
}

func bcc(c *CPU, mode AddressingMode, operand []byte) {
	if !c.Reg.Carry {
		c.branch(operand)
	}
}

func bcs(c *CPU, mode AddressingMode, operand []byte) {
	if c.Reg.Carry {
		c.branch(operand)
	}
}

func beq(c *CPU, mode AddressingMode, operand []byte) {
	if c.Reg.Zero {
		c.branch(operand)
	}
}

func bit(c *CPU, mode AddressingMode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Zero = c.Reg.A&v == 0
	c.Reg.Sign = v&0x80 != 0
	c.Reg.Overflow = v&0x40 != 0
}

func bmi(c *CPU, mode AddressingMode, operand []byte) {
	if c.Reg.Sign {
		c.branch(operand)
	}
}

func bne(c *CPU, mode AddressingMode, operand []byte) {
	if !c.Reg.Zero {
		c.branch(operand)
	}
}

func bpl(c *CPU, mode AddressingMode, operand []byte) {
	if !c.Reg.Sign {
		c.branch(operand)
	}
}

// brk is never reached through the dispatch table: Step() recognizes
// opcode 0x00 and halts the run loop directly, per the terminal-only
// semantics of BRK in this emulator.
func brk(c *CPU, mode AddressingMode, operand []byte) {
	c.Halted = true
}

func bvc(c *CPU, mode AddressingMode, operand []byte) {
	if !c.Reg.Overflow {
		c.branch(operand)
	}
}

func bvs(c *CPU, mode AddressingMode, operand []byte) {
	if c.Reg.Overflow {
		c.branch(operand)
	}
}

func clc(c *CPU, mode AddressingMode, operand []byte) { c.Reg.Carry = false }
func cld(c *CPU, mode AddressingMode, operand []byte) { c.Reg.Decimal = false }
func cli(c *CPU, mode AddressingMode, operand []byte) { c.Reg.InterruptDisable = false }
func clv(c *CPU, mode AddressingMode, operand []byte) { c.Reg.Overflow = false }

func cmp(c *CPU, mode AddressingMode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Carry = c.Reg.A >= v
	c.Reg.SetNZ(c.Reg.A - v)
}

func cpx(c *CPU, mode AddressingMode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Carry = c.Reg.X >= v
	c.Reg.SetNZ(c.Reg.X - v)
}

func cpy(c *CPU, mode AddressingMode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Carry = c.Reg.Y >= v
	c.Reg.SetNZ(c.Reg.Y - v)
}

func dec(c *CPU, mode AddressingMode, operand []byte) {
	v := c.load(mode, operand) - 1
	c.Reg.SetNZ(v)
	c.store(mode, operand, v)
}

func dex(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.X--
	c.Reg.SetNZ(c.Reg.X)
}

func dey(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.Y--
	c.Reg.SetNZ(c.Reg.Y)
}

func eor(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.A ^= c.load(mode, operand)
	c.Reg.SetNZ(c.Reg.A)
}

func inc(c *CPU, mode AddressingMode, operand []byte) {
	v := c.load(mode, operand) + 1
	c.Reg.SetNZ(v)
	c.store(mode, operand, v)
}

func inx(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.X++
	c.Reg.SetNZ(c.Reg.X)
}

func iny(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.Y++
	c.Reg.SetNZ(c.Reg.Y)
}

func jmp(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.PC = c.loadAddress(mode, operand)
}

func jsr(c *CPU, mode AddressingMode, operand []byte) {
	addr := c.loadAddress(mode, operand)
	c.pushAddress(c.Reg.PC - 1)
	c.Reg.PC = addr
}

func lda(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.A = c.load(mode, operand)
	c.Reg.SetNZ(c.Reg.A)
}

func ldx(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.X = c.load(mode, operand)
	c.Reg.SetNZ(c.Reg.X)
}

func ldy(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.Y = c.load(mode, operand)
	c.Reg.SetNZ(c.Reg.Y)
}

func lsr(c *CPU, mode AddressingMode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Carry = v&1 != 0
	v >>= 1
	c.Reg.SetNZ(v)
	c.store(mode, operand, v)
}

func nop(c *CPU, mode AddressingMode, operand []byte) {}

func ora(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.A |= c.load(mode, operand)
	c.Reg.SetNZ(c.Reg.A)
}

func pha(c *CPU, mode AddressingMode, operand []byte) { c.push(c.Reg.A) }
func php(c *CPU, mode AddressingMode, operand []byte) { c.push(c.Reg.SavePS(true)) }

func pla(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.A = c.pop()
	c.Reg.SetNZ(c.Reg.A)
}

func plp(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.RestorePS(c.pop())
}

func rol(c *CPU, mode AddressingMode, operand []byte) {
	v := c.load(mode, operand)
	var carryIn byte
	if c.Reg.Carry {
		carryIn = 1
	}
	c.Reg.Carry = v&0x80 != 0
	v = v<<1 | carryIn
	c.Reg.SetNZ(v)
	c.store(mode, operand, v)
}

func ror(c *CPU, mode AddressingMode, operand []byte) {
	v := c.load(mode, operand)
	var carryIn byte
	if c.Reg.Carry {
		carryIn = 0x80
	}
	c.Reg.Carry = v&1 != 0
	v = v>>1 | carryIn
	c.Reg.SetNZ(v)
	c.store(mode, operand, v)
}

func rti(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.RestorePS(c.pop())
	c.Reg.PC = c.popAddress()
}

func rts(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.PC = c.popAddress() + 1
}

func sec(c *CPU, mode AddressingMode, operand []byte) { c.Reg.Carry = true }
func sed(c *CPU, mode AddressingMode, operand []byte) { c.Reg.Decimal = true }
func sei(c *CPU, mode AddressingMode, operand []byte) { c.Reg.InterruptDisable = true }

func sta(c *CPU, mode AddressingMode, operand []byte) { c.store(mode, operand, c.Reg.A) }
func stx(c *CPU, mode AddressingMode, operand []byte) { c.store(mode, operand, c.Reg.X) }
func sty(c *CPU, mode AddressingMode, operand []byte) { c.store(mode, operand, c.Reg.Y) }

func tax(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.X = c.Reg.A
	c.Reg.SetNZ(c.Reg.X)
}

func tay(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.Y = c.Reg.A
	c.Reg.SetNZ(c.Reg.Y)
}

func tsx(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.X = c.Reg.SP
	c.Reg.SetNZ(c.Reg.X)
}

func txa(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.A = c.Reg.X
	c.Reg.SetNZ(c.Reg.A)
}

func txs(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.SP = c.Reg.X
}

func tya(c *CPU, mode AddressingMode, operand []byte) {
	c.Reg.A = c.Reg.Y
	c.Reg.SetNZ(c.Reg.A)
}

var dispatchTable = map[Mnemonic]func(c *CPU, mode AddressingMode, operand []byte){
	ADC: adc, AND: and, ASL: asl, BCC: bcc, BCS: bcs, BEQ: beq, BIT: bit,
	BMI: bmi, BNE: bne, BPL: bpl, BRK: brk, BVC: bvc, BVS: bvs, CLC: clc,
	CLD: cld, CLI: cli, CLV: clv, CMP: cmp, CPX: cpx, CPY: cpy, DEC: dec,
	DEX: dex, DEY: dey, EOR: eor, INC: inc, INX: inx, INY: iny, JMP: jmp,
	JSR: jsr, LDA: lda, LDX: ldx, LDY: ldy, LSR: lsr, NOP: nop, ORA: ora,
	PHA: pha, PHP: php, PLA: pla, PLP: plp, ROL: rol, ROR: ror, RTI: rti,
	RTS: rts, SBC: sbc, SEC: sec, SED: sed, SEI: sei, STA: sta, STX: stx,
	STY: sty, TAX: tax, TAY: tay, TSX: tsx, TXA: txa, TXS: txs, TYA: tya,
}
