// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netspec

import (
	"unicode"
	"unicode/utf8"
)

// Type is the type of a token.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Word
	Dot
	Equal
	Comma
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Word:
		return "name"
	case Dot:
		return "'.'"
	case Equal:
		return "'='"
	case Comma:
		return "','"
	}
	return "invalid character"
}

// Item is a lexed token.
//
type Item struct {
	Type  Type
	Pos   int // byte offset in the input
	Value string
}

func (i Item) String() string {
	if i.Type == Word || i.Type == Raw {
		return i.Type.String() + " " + i.Value
	}
	return i.Type.String()
}

// Lexer splits a wiring description into tokens.
//
type Lexer struct {
	input string
	pos   int
}

// NewLexer returns a new lexer for the given input.
//
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func isWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '<' || r == '>'
}

// Lex returns the next token. Once the end of input is reached, Lex only
// returns EOF items.
//
func (l *Lexer) Lex() Item {
	for l.pos < len(l.input) {
		r, sz := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += sz
	}
	if l.pos >= len(l.input) {
		return Item{EOF, l.pos, ""}
	}
	start := l.pos
	r, sz := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += sz
	switch {
	case r == '.':
		return Item{Dot, start, "."}
	case r == '=':
		return Item{Equal, start, "="}
	case r == ',':
		return Item{Comma, start, ","}
	case isWord(r):
		for l.pos < len(l.input) {
			r, sz = utf8.DecodeRuneInString(l.input[l.pos:])
			if !isWord(r) {
				break
			}
			l.pos += sz
		}
		return Item{Word, start, l.input[start:l.pos]}
	}
	return Item{Raw, start, string(r)}
}
