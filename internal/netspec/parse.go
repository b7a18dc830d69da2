// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netspec parses compact wiring descriptions.
//
// A description is a comma separated list of chains. A chain joins two or
// more pins with '=', each pin being written as component.pin where pin is
// either a pin number or a pin name:
//
//	vcc.1=sw1.1, sw1.2=u1.1=u1.2, u1.3=r1.1, u1.VCC=vcc.1
//
// A chain of n pins stands for n-1 wires, each pin wired to the previous one.
//
package netspec

import (
	"strconv"

	"github.com/pkg/errors"
)

// Ref is a pin reference component.pin.
//
type Ref struct {
	Comp string
	Pin  string
	Pos  int
}

// Num returns the pin number if the pin was given by number.
//
func (r Ref) Num() (int, bool) {
	n, err := strconv.Atoi(r.Pin)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r Ref) String() string { return r.Comp + "." + r.Pin }

// Chain is a list of pins wired together.
//
type Chain []Ref

// Parse parses a wiring description.
//
func Parse(input string) ([]Chain, error) {
	p := parser{in: input, l: NewLexer(input)}
	return p.parse()
}

// ParseRef parses a single pin reference.
//
func ParseRef(input string) (Ref, error) {
	p := parser{in: input, l: NewLexer(input)}
	p.next()
	r, err := p.ref()
	if err != nil {
		return Ref{}, err
	}
	if p.i.Type != EOF {
		return Ref{}, parseError(p.in, p.i.Pos, "unexpected "+p.i.String())
	}
	return r, nil
}

type parser struct {
	in string
	l  *Lexer
	i  Item
}

func (p *parser) next() { p.i = p.l.Lex() }

func (p *parser) parse() ([]Chain, error) {
	var cs []Chain
	p.next()
	if p.i.Type == EOF {
		return nil, nil
	}
	for {
		c, err := p.chain()
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
		switch p.i.Type {
		case EOF:
			return cs, nil
		case Comma:
			p.next()
		default:
			return nil, parseError(p.in, p.i.Pos, "unexpected "+p.i.String())
		}
	}
}

func (p *parser) chain() (Chain, error) {
	var c Chain
	for {
		r, err := p.ref()
		if err != nil {
			return nil, err
		}
		c = append(c, r)
		if p.i.Type != Equal {
			break
		}
		p.next()
	}
	if len(c) < 2 {
		return nil, parseError(p.in, p.i.Pos, "expected '=' after "+c[0].String())
	}
	return c, nil
}

func (p *parser) ref() (Ref, error) {
	if p.i.Type != Word {
		return Ref{}, parseError(p.in, p.i.Pos, "expected component id")
	}
	r := Ref{Comp: p.i.Value, Pos: p.i.Pos}
	p.next()
	if p.i.Type != Dot {
		return Ref{}, parseError(p.in, p.i.Pos, "expected '.' after component id")
	}
	p.next()
	if p.i.Type != Word {
		return Ref{}, parseError(p.in, p.i.Pos, "expected pin number or name")
	}
	r.Pin = p.i.Value
	p.next()
	return r, nil
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
