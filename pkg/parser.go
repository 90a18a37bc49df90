package declc

import "fmt"

// factorSync are the tokens the parser resynchronizes on after a malformed
// factor.
var factorSync = []TokenType{
	TokenCloseParentheses,
	TokenStar,
	TokenPlus,
	TokenMinus,
	TokenSlash,
	TokenEqual,
	TokenSemicolon,
	TokenEOF,
}

// Parser is a recursive descent parser for:
//
//	Program     := Statement*
//	Statement   := Declaration | Assignment
//	Declaration := "type" "int" Identifier ("," Identifier)* ";"
//	Assignment  := Identifier "=" Expression ";"
//	Expression  := Term (("+" | "-") Term)*
//	Term        := Factor (("*" | "/") Factor)*
//	Factor      := Identifier | Number | "(" Expression ")"
//
// The first statement level error ends parsing. Errors inside a factor are
// recovered and parsing of the statement goes on.
type Parser struct {
	tokenizer Tokenizer
	diag      *Diagnostics
	tok       Token
	failed    bool
}

// NewParser reads the first token from tokenizer. Errors are reported to diag;
// a nil diag collects them privately.
func NewParser(tokenizer Tokenizer, diag *Diagnostics) *Parser {
	if diag == nil {
		diag = NewDiagnostics(nil)
	}

	p := &Parser{
		tokenizer: tokenizer,
		diag:      diag,
	}
	p.advance()

	return p
}

// Parse always returns a Program. After a syntax error it holds the statements
// accepted before it and HasErrors reports true.
func (p *Parser) Parse() *Program {
	prog := &Program{}

	for !p.check(TokenEOF) {
		stmt, ok := p.statement()
		if !ok {
			break
		}

		prog.Statements = append(prog.Statements, stmt)
	}

	return prog
}

func (p *Parser) HasErrors() bool {
	return p.failed
}

func (p *Parser) advance() {
	p.tok = p.tokenizer.Next()
}

func (p *Parser) check(typ TokenType) bool {
	return p.tok.Typ == typ
}

// expect reports a statement level error unless the current token is typ. It
// does not advance.
func (p *Parser) expect(typ TokenType, msg string) bool {
	if !p.check(typ) {
		p.errorf(SyntaxStatement, "%s", msg)
		return false
	}

	return true
}

func (p *Parser) consume(typ TokenType, msg string) bool {
	if !p.expect(typ, msg) {
		return false
	}

	p.advance()
	return true
}

func (p *Parser) errorf(level SyntaxLevel, format string, args ...interface{}) {
	p.failed = true
	p.diag.Report(&SyntaxError{
		Loc:   p.tok.Loc,
		Level: level,
		Token: p.tok,
		Msg:   fmt.Sprintf(format, args...),
	})
}

func (p *Parser) statement() (Stmt, bool) {
	switch p.tok.Typ {
	case TokenKeywordType:
		if decl := p.declaration(); decl != nil {
			return decl, true
		}
	case TokenIdentifier:
		if assign := p.assignment(); assign != nil {
			return assign, true
		}
	default:
		p.errorf(SyntaxStatement, "expected declaration or assignment")
	}

	// Nothing after a broken statement is parsed
	for !p.check(TokenEOF) {
		p.advance()
	}

	return nil, false
}

func (p *Parser) declaration() *Declaration {
	decl := &Declaration{Loc: p.tok.Loc}
	p.advance() // Skip type

	if !p.consume(TokenKeywordInt, "expected 'int' after 'type'") {
		return nil
	}

	for {
		if !p.expect(TokenIdentifier, "expected variable name") {
			return nil
		}

		decl.Vars = append(decl.Vars, Variable{Name: p.tok.Value, Loc: p.tok.Loc})
		p.advance()

		if !p.check(TokenComma) {
			break
		}

		p.advance() // Skip the comma
	}

	if !p.consume(TokenSemicolon, "expected ';' after declaration") {
		return nil
	}

	return decl
}

func (p *Parser) assignment() *BinaryExpr {
	target := &LiteralExpr{
		Typ:   LiteralIdentifier,
		Value: p.tok.Value,
		Loc:   p.tok.Loc,
	}
	p.advance()

	if !p.expect(TokenEqual, "expected '=' after variable name") {
		return nil
	}

	loc := p.tok.Loc
	p.advance()

	value := p.expr()

	if !p.consume(TokenSemicolon, "expected ';' after assignment") {
		return nil
	}

	return &BinaryExpr{
		Operation: BinaryAssign,
		Left:      target,
		Right:     value,
		Loc:       loc,
	}
}

func (p *Parser) expr() Expr {
	lhs := p.term()

	for p.tok.is(TokenPlus, TokenMinus) {
		// Chained operands (for example 1 - 3 + 1) nest to the left
		op, loc := BinaryOp(p.tok.Value), p.tok.Loc
		p.advance()

		lhs = &BinaryExpr{
			Operation: op,
			Left:      lhs,
			Right:     p.term(),
			Loc:       loc,
		}
	}

	return lhs
}

func (p *Parser) term() Expr {
	lhs := p.factor()

	for p.tok.is(TokenStar, TokenSlash) {
		op, loc := BinaryOp(p.tok.Value), p.tok.Loc
		p.advance()

		lhs = &BinaryExpr{
			Operation: op,
			Left:      lhs,
			Right:     p.factor(),
			Loc:       loc,
		}
	}

	return lhs
}

// factor returns nil when no operand could be built.
func (p *Parser) factor() Expr {
	switch tok := p.tok; tok.Typ {
	case TokenNumber:
		p.advance()
		return &LiteralExpr{Typ: LiteralNumber, Value: tok.Value, Loc: tok.Loc}
	case TokenIdentifier:
		p.advance()
		return &LiteralExpr{Typ: LiteralIdentifier, Value: tok.Value, Loc: tok.Loc}
	case TokenOpenParentheses:
		p.advance()

		inner := p.expr()
		if p.check(TokenCloseParentheses) {
			p.advance()
			return inner
		}

		p.errorf(SyntaxFactor, "expected ')'")
		p.synchronize()

		return inner
	default:
		p.errorf(SyntaxFactor, "expected identifier, number or '('")
		p.synchronize()

		return nil
	}
}

func (p *Parser) synchronize() {
	for !p.tok.is(factorSync...) {
		p.advance()
	}
}
