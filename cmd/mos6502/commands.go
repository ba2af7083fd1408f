// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/term"
)

var commands *cmd.Tree

func init() {
	root := cmd.NewTree("mos6502")

	root.AddCommand(cmd.Command{
		Name:  "assemble",
		Brief: "Assemble source from a file and load it into memory",
		Description: "Read 6502 assembly source from the named file, assemble" +
			" it, and load the resulting bytes into memory starting at $8000.",
		Usage: "assemble <filename>",
		Data:  (*repl).cmdAssemble,
	})
	root.AddCommand(cmd.Command{
		Name:  "load",
		Brief: "Load a raw binary file into memory",
		Description: "Read the named file as a raw byte stream and copy it" +
			" into memory starting at $8000.",
		Usage: "load <filename>",
		Data:  (*repl).cmdLoad,
	})
	root.AddCommand(cmd.Command{
		Name:        "reset",
		Brief:       "Reset the CPU and memory",
		Description: "Zero all registers and memory, and set PC to $8000.",
		Usage:       "reset",
		Data:        (*repl).cmdReset,
	})
	root.AddCommand(cmd.Command{
		Name:  "step",
		Brief: "Step a single instruction",
		Description: "Execute exactly one instruction at the current program" +
			" counter and display the resulting register state.",
		Usage: "step",
		Data:  (*repl).cmdStep,
	})
	root.AddCommand(cmd.Command{
		Name:  "run",
		Brief: "Run until BRK",
		Description: "Execute instructions starting at the current program" +
			" counter until a BRK instruction is fetched. The run cannot be" +
			" interrupted from the keyboard.",
		Usage: "run",
		Data:  (*repl).cmdRun,
	})
	root.AddCommand(cmd.Command{
		Name:  "disassemble",
		Brief: "Disassemble memory",
		Description: "Disassemble the contents of memory starting at the" +
			" requested address. If no address is given, disassembly" +
			" continues from where the last disassembly left off.",
		Usage: "disassemble [<address>]",
		Data:  (*repl).cmdDisassemble,
	})

	mem := cmd.NewTree("Memory")
	root.AddCommand(cmd.Command{
		Name:    "memory",
		Brief:   "Memory commands",
		Subtree: mem,
	})
	mem.AddCommand(cmd.Command{
		Name:  "dump",
		Brief: "Dump memory at address",
		Description: "Dump the contents of memory starting at the requested" +
			" address. If no address is given, the dump continues from where" +
			" the last dump left off.",
		Usage: "memory dump [<address>]",
		Data:  (*repl).cmdMemoryDump,
	})

	root.AddCommand(cmd.Command{
		Name:        "registers",
		Brief:       "Display register contents",
		Description: "Display the current contents of all CPU registers.",
		Usage:       "registers",
		Data:        (*repl).cmdRegisters,
	})
	root.AddCommand(cmd.Command{
		Name:  "set",
		Brief: "Set a configuration variable",
		Description: "Set the value of a configuration variable. With no" +
			" arguments, display the current values of all variables.",
		Usage: "set [<var> <value>]",
		Data:  (*repl).cmdSet,
	})
	root.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*repl).cmdQuit,
	})

	root.AddShortcut("a", "assemble")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("r", "registers")
	root.AddShortcut("s", "step")
	root.AddShortcut("q", "quit")

	commands = root
}

func (r *repl) cmdAssemble(c cmd.Selection) error {
	if len(c.Args) < 1 {
		r.println("Usage:", c.Command.Usage)
		return nil
	}
	src, err := os.ReadFile(c.Args[0])
	if err != nil {
		return err
	}
	code, err := r.emu.Assemble(string(src))
	if err != nil {
		return err
	}
	r.emu.Load(code)
	r.printf("Assembled %d bytes.\n", len(code))
	return nil
}

func (r *repl) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 1 {
		r.println("Usage:", c.Command.Usage)
		return nil
	}
	b, err := os.ReadFile(c.Args[0])
	if err != nil {
		return err
	}
	r.emu.Load(b)
	r.printf("Loaded %d bytes.\n", len(b))
	return nil
}

func (r *repl) cmdReset(c cmd.Selection) error {
	r.emu.Reset()
	r.println("Reset.")
	return nil
}

func (r *repl) cmdStep(c cmd.Selection) error {
	opcode := r.emu.Step()
	r.printf("Executed opcode $%02X.\n", opcode)
	r.printf("%s\n", r.emu.CPUStatus())
	return nil
}

func (r *repl) cmdRun(c cmd.Selection) error {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRawInput(fd)
		if err == nil {
			defer term.Restore(fd, state)
		}
	}
	r.emu.Execute()
	r.printf("Halted at PC=$%04X.\n", r.emu.CPU.Reg.PC)
	return nil
}

func (r *repl) cmdDisassemble(c cmd.Selection) error {
	addr := r.settings.NextDisasmAddr
	if len(c.Args) > 0 {
		n, err := strconv.ParseUint(strings.TrimPrefix(c.Args[0], "$"), 16, 16)
		if err != nil {
			return err
		}
		addr = uint16(n)
	}

	window := make([]byte, 0, 256)
	for i := 0; i < 256; i++ {
		window = append(window, r.emu.Mem.LoadByte(addr+uint16(i)))
	}

	lines, err := r.emu.Disassemble(window)
	if err != nil {
		return err
	}

	max := r.settings.DisasmLines
	shown := 0
	for i, line := range lines {
		if i >= max {
			break
		}
		r.printf("%04X: %s  %s\n", addr+line.Offset, line.Raw, line.Text)
		shown++
	}
	if shown > 0 {
		last := lines[shown-1]
		lastLen := uint16(len(strings.TrimRight(last.Raw, " "))) / 2
		r.settings.NextDisasmAddr = addr + last.Offset + lastLen
	}
	return nil
}

func (r *repl) cmdMemoryDump(c cmd.Selection) error {
	addr := r.settings.NextMemDumpAddr
	if len(c.Args) > 0 {
		n, err := strconv.ParseUint(strings.TrimPrefix(c.Args[0], "$"), 16, 16)
		if err != nil {
			return err
		}
		addr = uint16(n)
	}
	bytes := uint16(r.settings.MemDumpBytes)
	r.printf("%s", r.emu.MemoryHexdump(addr, addr+bytes-1))
	r.settings.NextMemDumpAddr = addr + bytes
	return nil
}

func (r *repl) cmdRegisters(c cmd.Selection) error {
	r.printf("%s\n", r.emu.CPUStatus())
	return nil
}

func (r *repl) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		r.println("Variables:")
		r.settings.Display(r.output)
	case 1:
		r.println("Usage:", c.Command.Usage)
	default:
		key, value := c.Args[0], strings.Join(c.Args[1:], " ")
		if err := r.settings.Set(key, value); err != nil {
			r.printf("%v\n", err)
		} else {
			r.println("Setting updated.")
		}
	}
	return nil
}

func (r *repl) cmdQuit(c cmd.Selection) error {
	r.quit = true
	return nil
}
