package declc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type TokenType uint64

const (
	// EOF is never a valid rune, so a NUL byte in the input still lexes as a
	// character.
	EOF rune = -1

	TokenEOF TokenType = iota
	TokenUnknown
	TokenIdentifier
	TokenNumber

	TokenComma
	TokenSemicolon
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenEqual
	TokenOpenParentheses
	TokenCloseParentheses

	TokenKeywordType
	TokenKeywordInt
)

var tokenNames = map[TokenType]string{
	TokenEOF:              "EOF",
	TokenUnknown:          "Unknown",
	TokenIdentifier:       "Identifier",
	TokenNumber:           "Number",
	TokenComma:            "Comma",
	TokenSemicolon:        "Semicolon",
	TokenPlus:             "Plus",
	TokenMinus:            "Minus",
	TokenStar:             "Star",
	TokenSlash:            "Slash",
	TokenEqual:            "Equal",
	TokenOpenParentheses:  "OpenParentheses",
	TokenCloseParentheses: "CloseParentheses",
	TokenKeywordType:      "Type",
	TokenKeywordInt:       "Int",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", uint64(t))
}

var keywordTable = map[string]TokenType{
	"type": TokenKeywordType,
	"int":  TokenKeywordInt,
}

var operatorTable = map[rune]TokenType{
	',': TokenComma,
	';': TokenSemicolon,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'=': TokenEqual,
	'(': TokenOpenParentheses,
	')': TokenCloseParentheses,
}

// Location is a 1-based position in a source file.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l *Location) String() string {
	if l == nil {
		return "-"
	}

	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}

	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

type Token struct {
	Typ   TokenType
	Value string
	Loc   *Location
}

func (t Token) is(types ...TokenType) bool {
	for _, typ := range types {
		if t.Typ == typ {
			return true
		}
	}

	return false
}

// Tokenizer is the pull interface the Parser reads from.
type Tokenizer interface {
	Next() Token
}

type Lexer struct {
	reader   *bufio.Reader
	filename string

	line, col int
}

func NewLexer(reader io.Reader) *Lexer {
	return NewNamedLexer("", reader)
}

func NewNamedLexer(filename string, reader io.Reader) *Lexer {
	return &Lexer{
		reader:   bufio.NewReader(reader),
		filename: filename,
		line:     1,
		col:      1,
	}
}

// NewLexerFromFile reads the whole file up front; the returned Lexer does not
// hold the file open.
func NewLexerFromFile(filename string) (*Lexer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open source file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filename)
	}

	return NewNamedLexer(filename, bytes.NewReader(data)), nil
}

func (l *Lexer) Next() Token {
	for {
		switch r := l.peek(); {
		case r == EOF:
			return Token{Typ: TokenEOF, Loc: l.location()}
		case unicode.IsSpace(r):
			l.next()
			continue
		case '0' <= r && r <= '9':
			return l.number()
		case unicode.IsLetter(r):
			return l.identifier()
		default:
			return l.operator()
		}
	}
}

// Tokens drains the lexer, returning every token before EOF.
func (l *Lexer) Tokens() []Token {
	var tokens []Token
	for t := l.Next(); t.Typ != TokenEOF; t = l.Next() {
		tokens = append(tokens, t)
	}

	return tokens
}

func (l *Lexer) number() Token {
	loc := l.location()

	var num []rune
	for r := l.peek(); '0' <= r && r <= '9'; r = l.peek() {
		num = append(num, l.next())
	}

	return Token{Typ: TokenNumber, Value: string(num), Loc: loc}
}

func (l *Lexer) identifier() Token {
	loc := l.location()

	var id []rune
	for r := l.peek(); unicode.IsLetter(r); r = l.peek() {
		id = append(id, l.next())
	}

	if t, ok := keywordTable[string(id)]; ok {
		return Token{Typ: t, Value: string(id), Loc: loc}
	}

	return Token{Typ: TokenIdentifier, Value: string(id), Loc: loc}
}

func (l *Lexer) operator() Token {
	loc := l.location()

	r := l.next()
	if tok, ok := operatorTable[r]; ok {
		return Token{Typ: tok, Value: string(r), Loc: loc}
	}

	// Not an error here; the parser rejects it where the grammar doesn't allow it
	return Token{Typ: TokenUnknown, Value: string(r), Loc: loc}
}

func (l *Lexer) location() *Location {
	return &Location{File: l.filename, Line: l.line, Column: l.col}
}

func (l *Lexer) peek() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		return EOF
	}

	_ = l.reader.UnreadRune()

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return r
}
