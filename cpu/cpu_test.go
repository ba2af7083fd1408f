// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "testing"

func newTestCPU() *CPU {
	mem := NewFlatMemory()
	c := NewCPU(mem, nil)
	c.SetPC(ORG)
	return c
}

func TestADCFlagMath(t *testing.T) {
	cases := []struct {
		a, m, c byte
		wantA   byte
		wantC   bool
	}{
		{0x10, 0x20, 0, 0x30, false},
		{0xff, 0x01, 0, 0x00, true},
		{0xff, 0xff, 1, 0xff, true},
		{0x00, 0x00, 0, 0x00, false},
	}
	for _, tc := range cases {
		c := newTestCPU()
		c.Mem.StoreBytes(ORG, []byte{0x69, tc.m, 0x00}) // ADC #m, BRK
		c.Reg.A = tc.a
		c.Reg.Carry = tc.c != 0
		c.Execute()

		want := int(tc.a) + int(tc.m) + int(tc.c)
		if c.Reg.A != byte(want) {
			t.Errorf("a=%#x m=%#x c=%d: A=%#x, want %#x", tc.a, tc.m, tc.c, c.Reg.A, byte(want))
		}
		if c.Reg.Carry != (want >= 0x100) {
			t.Errorf("a=%#x m=%#x c=%d: Carry=%v, want %v", tc.a, tc.m, tc.c, c.Reg.Carry, want >= 0x100)
		}
		if c.Reg.Zero != (c.Reg.A == 0) {
			t.Errorf("a=%#x m=%#x c=%d: Zero=%v, want %v", tc.a, tc.m, tc.c, c.Reg.Zero, c.Reg.A == 0)
		}
		if c.Reg.Sign != (c.Reg.A&0x80 != 0) {
			t.Errorf("a=%#x m=%#x c=%d: Sign=%v, want %v", tc.a, tc.m, tc.c, c.Reg.Sign, c.Reg.A&0x80 != 0)
		}
	}
}

func TestBranchDisplacement(t *testing.T) {
	c := newTestCPU()
	// BEQ +0x10, with Z already set so the branch is taken.
	c.Mem.StoreBytes(ORG, []byte{0xf0, 0x10})
	c.Reg.Zero = true
	c.Step()
	want := ORG + 2 + 0x10
	if c.Reg.PC != want {
		t.Errorf("PC = %#x, want %#x", c.Reg.PC, want)
	}
}

func TestBranchDisplacementNegative(t *testing.T) {
	c := newTestCPU()
	c.SetPC(ORG + 0x10)
	// BNE -0x05 (0xfb), with Z clear so the branch is taken.
	c.Mem.StoreBytes(ORG+0x10, []byte{0xd0, 0xfb})
	c.Reg.Zero = false
	c.Step()
	want := (ORG + 0x10 + 2) - 5
	if c.Reg.PC != want {
		t.Errorf("PC = %#x, want %#x", c.Reg.PC, want)
	}
}

func TestStackRoundTrip(t *testing.T) {
	c := newTestCPU()
	for b := 0; b < 256; b++ {
		sp := c.Reg.SP
		c.push(byte(b))
		got := c.pop()
		if got != byte(b) {
			t.Errorf("push(%#x); pop() = %#x", byte(b), got)
		}
		if c.Reg.SP != sp {
			t.Errorf("SP changed across push/pop pair: got %#x, want %#x", c.Reg.SP, sp)
		}
	}
}

func TestINXWraps(t *testing.T) {
	c := newTestCPU()
	c.Reg.X = 0xff
	inx(c, IMPACC, nil)
	if c.Reg.X != 0x00 {
		t.Errorf("X = %#x, want 0x00", c.Reg.X)
	}
	if !c.Reg.Zero {
		t.Error("Zero = false, want true")
	}

	c.Reg.X = 0x00
	// from the prior call X is already 0, decrement to 0xff instead
	dex(c, IMPACC, nil)
	if c.Reg.X != 0xff {
		t.Errorf("X = %#x, want 0xff", c.Reg.X)
	}
	if !c.Reg.Sign {
		t.Error("Sign = false, want true")
	}
}

func TestUnknownOpcodeIsWarningNotHalt(t *testing.T) {
	c := newTestCPU()
	c.Mem.StoreBytes(ORG, []byte{0x02}) // illegal opcode
	opcode := c.Step()
	if opcode != 0x02 {
		t.Errorf("Step returned %#x, want 0x02", opcode)
	}
	if c.Halted {
		t.Error("Halted = true after unknown opcode, want false")
	}
}

func TestBRKHalts(t *testing.T) {
	c := newTestCPU()
	c.Mem.StoreBytes(ORG, []byte{0x00})
	c.Step()
	if !c.Halted {
		t.Error("Halted = false after BRK, want true")
	}
}

func TestResetReinstatesORGAndZeroedRegisters(t *testing.T) {
	c := newTestCPU()
	c.Reg.A = 0x42
	c.Reg.SP = 0x10
	c.Mem.StoreByte(0x0000, 0xff)
	c.Reset()

	if c.Reg.PC != ORG {
		t.Errorf("PC = %#x, want %#x", c.Reg.PC, ORG)
	}
	if c.Reg.A != 0 || c.Reg.SP != 0 {
		t.Errorf("A=%#x SP=%#x, want both 0", c.Reg.A, c.Reg.SP)
	}
	if c.Mem.LoadByte(0x0000) != 0 {
		t.Error("memory not zeroed by Reset")
	}
}
