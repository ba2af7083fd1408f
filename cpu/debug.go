// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// DebugKind classifies a message reported through a DebugSink.
type DebugKind int

// The three kinds of debug message a CPU may report.
const (
	Info DebugKind = iota
	Warn
	Error
)

func (k DebugKind) String() string {
	switch k {
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	}
	return "?"
}

// DebugSink is the capability a CPU reports diagnostics through: each
// dispatched instruction (Info) and each unknown opcode (Warn). Flag
// changes and stack operations are not reported. It is
// injected at construction time rather than attached after the fact,
// so a CPU remains a plain value with no module-level debugging state.
// A sink is not expected to be shared across goroutines.
type DebugSink interface {
	Debug(message string, kind DebugKind)
}

// nopSink discards every message. It is the default sink used when a
// caller does not supply one.
type nopSink struct{}

func (nopSink) Debug(string, DebugKind) {}

// NopSink returns a DebugSink that discards everything reported to it.
func NopSink() DebugSink { return nopSink{} }
