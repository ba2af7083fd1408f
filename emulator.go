// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mos6502 ties together the assembler, disassembler, and CPU
// core behind a single Emulator facade: the surface a CLI or embedder
// needs to load, run, assemble, and disassemble 6502 programs.
package mos6502

import (
	"github.com/halbits/mos6502/asm"
	"github.com/halbits/mos6502/cpu"
	"github.com/halbits/mos6502/disasm"
)

// Emulator bundles a memory image and CPU core with the assembler and
// disassembler, so a caller never has to wire cpu.Memory and cpu.CPU
// together by hand.
type Emulator struct {
	Mem *cpu.FlatMemory
	CPU *cpu.CPU
}

// New constructs an Emulator with zeroed memory and a no-op debug
// sink.
func New() *Emulator {
	mem := &cpu.FlatMemory{}
	return &Emulator{
		Mem: mem,
		CPU: cpu.NewCPU(mem, cpu.NopSink()),
	}
}

// NewWithSink constructs an Emulator whose CPU reports instruction
// dispatch and unknown opcodes to sink.
func NewWithSink(sink cpu.DebugSink) *Emulator {
	mem := &cpu.FlatMemory{}
	return &Emulator{
		Mem: mem,
		CPU: cpu.NewCPU(mem, sink),
	}
}

// Load copies bytes into memory starting at cpu.ORG.
func (e *Emulator) Load(bytes []byte) {
	e.CPU.Load(bytes)
}

// Reset zeroes registers and memory and sets PC to cpu.ORG.
func (e *Emulator) Reset() {
	e.CPU.Reset()
}

// Execute runs the fetch-decode-execute loop until BRK.
func (e *Emulator) Execute() {
	e.CPU.Execute()
}

// Step executes exactly one instruction and returns the opcode
// executed.
func (e *Emulator) Step() byte {
	return e.CPU.Step()
}

// CPUStatus returns the formatted register dump: "A=hh X=hh Y=hh
// SP=hh PC=hhhh" followed by the flag row.
func (e *Emulator) CPUStatus() string {
	return e.CPU.Reg.String()
}

// MemoryHexdump returns the canonical hexdump of mem[start..=end].
func (e *Emulator) MemoryHexdump(start, end uint16) string {
	return e.Mem.Hexdump(start, end)
}

// Assemble compiles source into a raw opcode stream ready to Load at
// cpu.ORG.
func (e *Emulator) Assemble(source string) ([]byte, error) {
	return asm.Assemble(source)
}

// Disassemble decodes bytes into a sequence of (offset, raw hex,
// formatted text) lines, stopping after the first BRK.
func (e *Emulator) Disassemble(bytes []byte) ([]disasm.Line, error) {
	return disasm.Disassemble(bytes)
}
