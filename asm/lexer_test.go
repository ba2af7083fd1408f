// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "testing"

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer(src)
	var toks []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			t.Fatalf("lex(%q): %v", src, err)
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return toks
}

func TestLexerNumberWidths(t *testing.T) {
	cases := []struct {
		src   string
		value uint16
		width Width
	}{
		{"$0", 0x00, Width8},
		{"$ff", 0xff, Width8},
		{"$100", 0x100, Width16},
		{"$d000", 0xd000, Width16},
		{"0", 0, Width8},
		{"255", 255, Width8},
		{"256", 256, Width16},
	}
	for _, c := range cases {
		toks := lexAll(t, c.src)
		if len(toks) < 1 || toks[0].Kind != TokenNumber {
			t.Fatalf("%q: expected a number token, got %v", c.src, toks)
		}
		if toks[0].Value != c.value || toks[0].Width != c.width {
			t.Errorf("%q: got value=%#x width=%v, want value=%#x width=%v",
				c.src, toks[0].Value, toks[0].Width, c.value, c.width)
		}
	}
}

func TestLexerRegisterAndDirective(t *testing.T) {
	toks := lexAll(t, "X Y define LABEL")
	kinds := []TokenKind{TokenRegister, TokenRegister, TokenDirective, TokenIdentifier, TokenEOF}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(kinds))
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexerCommentsAndPunctuation(t *testing.T) {
	toks := lexAll(t, "LDA ($00,X) ; comment\n")
	var kinds []TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{
		TokenIdentifier, TokenLParen, TokenNumber, TokenComma, TokenRegister,
		TokenRParen, TokenNewline, TokenEOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexerIllegalCharacter(t *testing.T) {
	lex := NewLexer("@")
	_, err := lex.Next()
	aerr, ok := err.(*Error)
	if !ok || aerr.Kind != ErrIllegalCharacter {
		t.Fatalf("expected ErrIllegalCharacter, got %v", err)
	}
}
