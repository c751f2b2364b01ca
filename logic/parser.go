package logic

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"
	"unicode"
)

// A ParseError describes a syntax error in a formula together with the
// position at which it occurred.
type ParseError struct {
	Pos scanner.Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %v: %s", e.Pos, e.Msg)
}

type parser struct {
	s     scanner.Scanner
	eof   bool   // Have we reached eof yet?
	token string // Last token read
}

// Parse parses a formula from the given input Reader.
// It returns the corresponding Formula.
// Formulas are written using the following operators (from lowest to highest priority):
//
// - for an implication, the "->" operator (right-associative),
// - for a disjunction ("or"), the "|" operator,
// - for a conjunction ("and"), the "&" operator,
// - for a negation, the "^" unary operator.
//
// Atoms are identifiers matching \w+. The identifiers "True" and "False"
// denote the boolean constants rather than atoms.
// Parentheses can be used to group subformulas.
func Parse(r io.Reader) (Formula, error) {
	var s scanner.Scanner
	s.Init(r)
	p := parser{s: s}
	p.scan()
	if p.eof {
		return nil, &ParseError{Pos: p.s.Pos(), Msg: "empty formula"}
	}
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if !p.eof {
		return nil, p.errorf("unexpected token %q after formula", p.token)
	}
	return f, nil
}

// ParseString parses a formula from the given string.
func ParseString(expr string) (Formula, error) {
	return Parse(strings.NewReader(expr))
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.eof = (p.s.Scan() == scanner.EOF)
	p.token = p.s.TokenText()
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{Pos: p.s.Pos(), Msg: fmt.Sprintf(format, args...)}
}

func isOperator(token string) bool {
	return token == "-" || token == ">" || token == "|" || token == "&"
}

func isIdent(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return len(token) > 0
}

func (p *parser) parseImplies() (f Formula, err error) {
	f, err = p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.eof && p.token == "-" {
		p.scan()
		if p.eof || p.token != ">" {
			return nil, p.errorf("invalid token %q, expected \"->\"", "-"+p.token)
		}
		p.scan()
		if p.eof {
			return nil, p.errorf("expected expression, found EOF")
		}
		f2, err := p.parseImplies() // Right-associative
		if err != nil {
			return nil, err
		}
		return Implies(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseOr() (f Formula, err error) {
	f, err = p.parseAnd()
	if err != nil {
		return nil, err
	}
	subs := []Formula{f}
	for !p.eof && p.token == "|" {
		p.scan()
		if p.eof {
			return nil, p.errorf("expected expression, found EOF")
		}
		sub, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if len(subs) == 1 {
		return f, nil
	}
	return Or(subs...), nil
}

func (p *parser) parseAnd() (f Formula, err error) {
	f, err = p.parseNot()
	if err != nil {
		return nil, err
	}
	subs := []Formula{f}
	for !p.eof && p.token == "&" {
		p.scan()
		if p.eof {
			return nil, p.errorf("expected expression, found EOF")
		}
		sub, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if len(subs) == 1 {
		return f, nil
	}
	return And(subs...), nil
}

func (p *parser) parseNot() (f Formula, err error) {
	if isOperator(p.token) {
		return nil, p.errorf("unexpected token %q", p.token)
	}
	if p.token == "^" {
		p.scan()
		if p.eof {
			return nil, p.errorf("expected expression, found EOF")
		}
		f, err = p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	return p.parseBasic()
}

func (p *parser) parseBasic() (f Formula, err error) {
	if isOperator(p.token) || p.token == ")" {
		return nil, p.errorf("unexpected token %q", p.token)
	}
	if p.token == "(" {
		p.scan()
		if p.eof {
			return nil, p.errorf("expected expression, found EOF")
		}
		f, err = p.parseImplies()
		if err != nil {
			return nil, err
		}
		if p.eof {
			return nil, p.errorf("expected closing parenthesis, found EOF")
		}
		if p.token != ")" {
			return nil, p.errorf("expected closing parenthesis, found %q", p.token)
		}
		p.scan()
		return f, nil
	}
	if !isIdent(p.token) {
		return nil, p.errorf("unrecognized token %q", p.token)
	}
	defer p.scan()
	switch p.token {
	case "True":
		return True, nil
	case "False":
		return False, nil
	default:
		return Atom(p.token), nil
	}
}
