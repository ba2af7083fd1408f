// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements the register file, memory bus, and
// fetch-decode-execute loop of a 6502 CPU emulator.
package cpu

// CPU represents a single emulated 6502: its registers, a reference to
// the memory it is bound to, the instruction set, the address of the
// last fetched opcode, a halt flag, and the debug sink it reports
// through. It is not shared across goroutines.
type CPU struct {
	Reg     Registers
	Mem     Memory
	InstSet *InstructionSet
	LastPC  uint16
	Halted  bool
	sink    DebugSink
}

// NewCPU creates an emulated 6502 CPU bound to the specified memory.
// If sink is nil, a no-op sink is installed.
func NewCPU(m Memory, sink DebugSink) *CPU {
	if sink == nil {
		sink = NopSink()
	}
	c := &CPU{
		Mem:     m,
		InstSet: GetInstructionSet(),
		sink:    sink,
	}
	c.Reg.Init()
	return c
}

// SetPC updates the program counter to addr.
func (c *CPU) SetPC(addr uint16) {
	c.Reg.PC = addr
}

// Reset zeroes memory and registers and sets PC to ORG, matching the
// external interface's reset() operation. It does not consult a reset
// vector; this emulator has no interrupt vector table.
func (c *CPU) Reset() {
	c.Mem.Reset()
	c.Reg.Init()
	c.Reg.PC = ORG
	c.Halted = false
}

// Load copies bytes into memory starting at ORG.
func (c *CPU) Load(bytes []byte) {
	c.Mem.Load(bytes)
}

// GetInstruction returns the instruction decoded at addr, or nil if
// the byte there is not a legal opcode.
func (c *CPU) GetInstruction(addr uint16) *Instruction {
	opcode := c.Mem.LoadByte(addr)
	in, _ := c.InstSet.Decode(opcode)
	return in
}

// NextAddr returns the address immediately following the instruction
// at addr. An undecodable byte is treated as occupying a single byte.
func (c *CPU) NextAddr(addr uint16) uint16 {
	in := c.GetInstruction(addr)
	if in == nil {
		return addr + 1
	}
	return addr + uint16(in.Length())
}

// Step executes exactly one instruction and returns the opcode byte
// that was fetched. An unrecognized opcode is reported through the
// debug sink as a warning and treated as a single-byte no-op, per the
// emulator's permissive decoding policy; it does not halt the loop.
func (c *CPU) Step() byte {
	opcode := c.Mem.LoadByte(c.Reg.PC)
	c.LastPC = c.Reg.PC
	c.Reg.PC++

	in, ok := c.InstSet.Decode(opcode)
	if !ok {
		c.sink.Debug(unknownOpcodeMessage(opcode), Warn)
		return opcode
	}

	operandLen := in.Mode.OperandBytes()
	var buf [2]byte
	operand := buf[:operandLen]
	c.Mem.LoadBytes(c.Reg.PC, operand)
	c.Reg.PC += uint16(operandLen)

	if opcode == 0x00 {
		c.Halted = true
		return opcode
	}

	in.fn(c, in.Mode, operand)
	c.sink.Debug(dispatchMessage(in), Info)
	return opcode
}

// Execute runs the fetch-decode-execute loop until a BRK instruction
// is fetched.
func (c *CPU) Execute() {
	c.Halted = false
	for !c.Halted {
		c.Step()
	}
}

// load reads an operand value using the requested addressing mode.
func (c *CPU) load(mode AddressingMode, operand []byte) byte {
	switch mode {
	case IMM:
		return operand[0]
	case RELZPG:
		return c.Mem.LoadByte(operandToAddress(operand))
	case ZPX:
		addr := offsetZeroPage(operandToAddress(operand), c.Reg.X)
		return c.Mem.LoadByte(addr)
	case ZPY:
		addr := offsetZeroPage(operandToAddress(operand), c.Reg.Y)
		return c.Mem.LoadByte(addr)
	case ABS:
		return c.Mem.LoadByte(operandToAddress(operand))
	case ABX:
		return c.Mem.LoadByte(operandToAddress(operand) + uint16(c.Reg.X))
	case ABY:
		return c.Mem.LoadByte(operandToAddress(operand) + uint16(c.Reg.Y))
	case IDX:
		zp := offsetZeroPage(operandToAddress(operand), c.Reg.X)
		return c.Mem.LoadByte(c.Mem.LoadAddress(zp))
	case IDY:
		addr := c.Mem.LoadAddress(operandToAddress(operand)) + uint16(c.Reg.Y)
		return c.Mem.LoadByte(addr)
	case IMPACC:
		return c.Reg.A
	default:
		panic("invalid addressing mode for load")
	}
}

// loadAddress reads a 16-bit effective address for JMP.
func (c *CPU) loadAddress(mode AddressingMode, operand []byte) uint16 {
	switch mode {
	case ABS:
		return operandToAddress(operand)
	case IND:
		return c.Mem.LoadAddress(operandToAddress(operand))
	default:
		panic("invalid addressing mode for loadAddress")
	}
}

// store writes v to the effective address of the requested addressing
// mode.
func (c *CPU) store(mode AddressingMode, operand []byte, v byte) {
	switch mode {
	case RELZPG:
		c.Mem.StoreByte(operandToAddress(operand), v)
	case ZPX:
		c.Mem.StoreByte(offsetZeroPage(operandToAddress(operand), c.Reg.X), v)
	case ZPY:
		c.Mem.StoreByte(offsetZeroPage(operandToAddress(operand), c.Reg.Y), v)
	case ABS:
		c.Mem.StoreByte(operandToAddress(operand), v)
	case ABX:
		c.Mem.StoreByte(operandToAddress(operand)+uint16(c.Reg.X), v)
	case ABY:
		c.Mem.StoreByte(operandToAddress(operand)+uint16(c.Reg.Y), v)
	case IDX:
		zp := offsetZeroPage(operandToAddress(operand), c.Reg.X)
		c.Mem.StoreByte(c.Mem.LoadAddress(zp), v)
	case IDY:
		addr := c.Mem.LoadAddress(operandToAddress(operand)) + uint16(c.Reg.Y)
		c.Mem.StoreByte(addr, v)
	case IMPACC:
		c.Reg.A = v
	default:
		panic("invalid addressing mode for store")
	}
}

// branch adjusts PC by the signed 8-bit displacement in operand[0].
func (c *CPU) branch(operand []byte) {
	offset := operand[0]
	if offset < 0x80 {
		c.Reg.PC += uint16(offset)
	} else {
		c.Reg.PC -= uint16(0x100 - uint16(offset))
	}
}

// push writes v to the stack and decrements SP, wrapping at 0x00.
func (c *CPU) push(v byte) {
	c.Mem.StoreByte(stackAddress(c.Reg.SP), v)
	c.Reg.SP--
}

// pushAddress pushes a 16-bit address, high byte first, so that a
// sequential pop (low, then high) reassembles it correctly.
func (c *CPU) pushAddress(addr uint16) {
	c.push(byte(addr >> 8))
	c.push(byte(addr))
}

// pop increments SP, wrapping at 0xFF, and returns the byte read.
func (c *CPU) pop() byte {
	c.Reg.SP++
	return c.Mem.LoadByte(stackAddress(c.Reg.SP))
}

// popAddress pops a 16-bit address pushed by pushAddress.
func (c *CPU) popAddress() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(lo) | uint16(hi)<<8
}

func unknownOpcodeMessage(opcode byte) string {
	const hexdigits = "0123456789ABCDEF"
	return "unknown opcode $" + string([]byte{hexdigits[opcode>>4], hexdigits[opcode&0xf]})
}

func dispatchMessage(in *Instruction) string {
	return in.Mnemonic.String() + " " + in.Mode.String()
}
