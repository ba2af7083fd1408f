// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"

	"github.com/halbits/mos6502/cpu"
)

// Parser consumes a token stream and produces a Program. It resolves
// 'define' aliases by textual substitution of the operand expression
// before parsing an operand, as described by the grammar in §4.2.
type Parser struct {
	toks    []Token
	pos     int
	defines map[string][]Token
}

// NewParser tokenizes src in full and returns a Parser ready to
// produce a Program from it.
func NewParser(src string) (*Parser, error) {
	lex := NewLexer(src)
	var toks []Token
	for {
		t, err := lex.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.Kind == TokenEOF {
			break
		}
	}
	return &Parser{toks: toks, defines: make(map[string][]Token)}, nil
}

func (p *Parser) cur() Token    { return p.toks[p.pos] }
func (p *Parser) advance() Token { t := p.toks[p.pos]; if p.pos < len(p.toks)-1 { p.pos++ }; return t }

func (p *Parser) expect(k TokenKind, name string) (Token, error) {
	if p.cur().Kind != k {
		return Token{}, unexpectedToken(p.cur().Pos, name, p.cur().Kind.String())
	}
	return p.advance(), nil
}

func (p *Parser) skipBlankLines() {
	for p.cur().Kind == TokenNewline {
		p.advance()
	}
}

// Parse runs the full grammar over the token stream and returns the
// resulting Program.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	p.skipBlankLines()
	for p.cur().Kind != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			prog.Statements = append(prog.Statements, *stmt)
		}
		p.skipBlankLines()
	}
	return prog, nil
}

func (p *Parser) parseStatement() (*Statement, error) {
	tok := p.cur()

	if tok.Kind == TokenDirective && tok.Text == "define" {
		return nil, p.parseDefine()
	}

	if tok.Kind == TokenIdentifier {
		// Label: IDENT ':' Newline
		if p.toks[p.pos+1].Kind == TokenColon {
			name := tok.Text
			p.advance() // identifier
			p.advance() // colon
			if err := p.expectStatementEnd(); err != nil {
				return nil, err
			}
			return &Statement{Kind: StatementLabel, Label: name}, nil
		}
		return p.parseInstruction()
	}

	return nil, unexpectedToken(tok.Pos, "statement", tok.Kind.String())
}

func (p *Parser) expectStatementEnd() error {
	if p.cur().Kind == TokenEOF {
		return nil
	}
	_, err := p.expect(TokenNewline, "newline")
	return err
}

func (p *Parser) parseDefine() error {
	p.advance() // 'define'
	name, err := p.expect(TokenIdentifier, "identifier")
	if err != nil {
		return err
	}
	var expr []Token
	for p.cur().Kind != TokenNewline && p.cur().Kind != TokenEOF {
		expr = append(expr, p.advance())
	}
	if len(expr) == 0 {
		return invalidOperand(name.Pos, "define "+name.Text)
	}
	p.defines[strings.ToUpper(name.Text)] = expr
	return p.expectStatementEnd()
}

func (p *Parser) parseInstruction() (*Statement, error) {
	tok := p.cur()
	mnemonic, ok := cpu.MnemonicByName(strings.ToUpper(tok.Text))
	if !ok {
		return nil, invalidMnemonic(tok.Pos, tok.Text)
	}
	p.advance()

	operand, err := p.parseOperand(mnemonic)
	if err != nil {
		return nil, err
	}
	if err := p.expectStatementEnd(); err != nil {
		return nil, err
	}

	return &Statement{
		Kind: StatementInstruction,
		Instruction: Instruction{
			Mnemonic: mnemonic,
			Operand:  operand,
			Pos:      tok.Pos,
		},
	}, nil
}

// parseOperand parses the operand grammar:
//
//	'#' Number                    -> IMM
//	Number                        -> ABS or RELZPG by width
//	Number ',' ('X'|'Y')          -> ABX/ABY or ZPX/ZPY by width
//	'(' Number ')'                -> IND
//	'(' Number ',' 'X' ')'        -> IDX
//	'(' Number ')' ',' 'Y'        -> IDY
//	Ident                         -> label reference (absolute family,
//	                                 RELZPG when the mnemonic branches)
//	<nothing>                     -> IMPACC
//
// mnemonic disambiguates a bare Number or Ident operand: branch
// mnemonics always address RELZPG (a signed displacement resolved at
// emission time), everything else follows the ABS/ZPG-by-width rule.
func (p *Parser) parseOperand(mnemonic cpu.Mnemonic) (Operand, error) {
	tok := p.cur()

	switch tok.Kind {
	case TokenNewline, TokenEOF:
		return Operand{Mode: cpu.IMPACC}, nil

	case TokenHash:
		p.advance()
		num, err := p.parseNumberExpr()
		if err != nil {
			return Operand{}, err
		}
		return Operand{Data: &OperandData{Kind: OperandNumber, Number: *num}, Mode: cpu.IMM}, nil

	case TokenLParen:
		p.advance()
		num, err := p.parseNumberExpr()
		if err != nil {
			return Operand{}, err
		}
		if p.cur().Kind == TokenComma {
			p.advance()
			if _, err := p.expectRegister("X"); err != nil {
				return Operand{}, err
			}
			if _, err := p.expect(TokenRParen, ")"); err != nil {
				return Operand{}, err
			}
			return Operand{Data: &OperandData{Kind: OperandNumber, Number: *num}, Mode: cpu.IDX}, nil
		}
		if _, err := p.expect(TokenRParen, ")"); err != nil {
			return Operand{}, err
		}
		if p.cur().Kind == TokenComma {
			p.advance()
			if _, err := p.expectRegister("Y"); err != nil {
				return Operand{}, err
			}
			return Operand{Data: &OperandData{Kind: OperandNumber, Number: *num}, Mode: cpu.IDY}, nil
		}
		return Operand{Data: &OperandData{Kind: OperandNumber, Number: *num}, Mode: cpu.IND}, nil

	case TokenNumber:
		num, err := p.parseNumberExpr()
		if err != nil {
			return Operand{}, err
		}
		if mnemonic.IsBranch() {
			return Operand{Data: &OperandData{Kind: OperandNumber, Number: *num}, Mode: cpu.RELZPG}, nil
		}
		if p.cur().Kind == TokenComma {
			p.advance()
			reg := p.cur()
			if reg.Kind != TokenRegister {
				return Operand{}, invalidOperand(reg.Pos, reg.Text)
			}
			p.advance()
			mode := cpu.ABX
			if num.Width == Width8 {
				mode = cpu.ZPX
			}
			if reg.Text == "Y" {
				mode = cpu.ABY
				if num.Width == Width8 {
					mode = cpu.ZPY
				}
			}
			return Operand{Data: &OperandData{Kind: OperandNumber, Number: *num}, Mode: mode}, nil
		}
		mode := cpu.ABS
		if num.Width == Width8 {
			mode = cpu.RELZPG
		}
		return Operand{Data: &OperandData{Kind: OperandNumber, Number: *num}, Mode: mode}, nil

	case TokenIdentifier:
		if toks, ok := p.defines[strings.ToUpper(tok.Text)]; ok {
			p.advance()
			return p.parseSubstituted(toks, mnemonic)
		}
		p.advance()
		if mnemonic.IsBranch() {
			return Operand{Data: &OperandData{Kind: OperandLabel, Label: tok.Text}, Mode: cpu.RELZPG}, nil
		}
		mode := cpu.ABS
		if p.cur().Kind == TokenComma {
			p.advance()
			reg := p.cur()
			if reg.Kind != TokenRegister {
				return Operand{}, invalidOperand(reg.Pos, reg.Text)
			}
			p.advance()
			mode = cpu.ABX
			if reg.Text == "Y" {
				mode = cpu.ABY
			}
		}
		return Operand{Data: &OperandData{Kind: OperandLabel, Label: tok.Text}, Mode: mode}, nil

	default:
		return Operand{}, invalidOperand(tok.Pos, tok.Text)
	}
}

// parseSubstituted re-parses an operand from a spliced-in token
// sequence, as 'define' requires.
func (p *Parser) parseSubstituted(toks []Token, mnemonic cpu.Mnemonic) (Operand, error) {
	sub := &Parser{toks: append(append([]Token{}, toks...), Token{Kind: TokenEOF}), defines: p.defines}
	return sub.parseOperand(mnemonic)
}

func (p *Parser) parseNumberExpr() (*NumberValue, error) {
	tok := p.cur()
	if tok.Kind != TokenNumber {
		return nil, invalidOperand(tok.Pos, tok.Text)
	}
	p.advance()
	return &NumberValue{Value: tok.Value, Width: tok.Width}, nil
}

func (p *Parser) expectRegister(name string) (Token, error) {
	tok := p.cur()
	if tok.Kind != TokenRegister || tok.Text != name {
		return Token{}, unexpectedToken(tok.Pos, name, tok.Kind.String())
	}
	return p.advance(), nil
}
