package parser

import (
	"fmt"
	"strconv"

	"lacs/ast"
	"lacs/internals"
	"lacs/lexer"
)

const (
	_ int = iota
	LOWEST
	SUM     // + -
	PRODUCT // * / %
	CALL    // f(x)
)

var precedences = map[lexer.TokenKind]int{
	lexer.TokenPlus:      SUM,
	lexer.TokenMinus:     SUM,
	lexer.TokenMultiply:  PRODUCT,
	lexer.TokenSlash:     PRODUCT,
	lexer.TokenModule:    PRODUCT,
	lexer.TokenBraceOpen: CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	lexer          *lexer.Lexer
	FilePath       string
	Errors         []error
	prefixParseFns map[lexer.TokenKind]prefixParseFn
	infixParseFns  map[lexer.TokenKind]infixParseFn

	curToken  lexer.Token
	peekToken lexer.Token // one token lookahead
}

func NewParser(lex *lexer.Lexer, filePath string) *Parser {
	p := Parser{
		lexer:          lex,
		FilePath:       filePath,
		Errors:         []error{},
		prefixParseFns: make(map[lexer.TokenKind]prefixParseFn),
		infixParseFns:  make(map[lexer.TokenKind]infixParseFn),
	}

	p.registerPrefix(lexer.TokenIdentifier, p.parseIdentifier)
	p.registerPrefix(lexer.TokenNumber, p.parseIntegerLiteral)
	p.registerPrefix(lexer.TokenBraceOpen, p.parseGroupedExpression)
	p.registerPrefix(lexer.TokenIf, p.parseIfExpression)

	p.registerInfix(lexer.TokenPlus, p.parseBinaryExpression)
	p.registerInfix(lexer.TokenMinus, p.parseBinaryExpression)
	p.registerInfix(lexer.TokenMultiply, p.parseBinaryExpression)
	p.registerInfix(lexer.TokenSlash, p.parseBinaryExpression)
	p.registerInfix(lexer.TokenModule, p.parseBinaryExpression)
	p.registerInfix(lexer.TokenBraceOpen, p.parseCallExpression)

	// set the tok position
	p.nextToken()
	p.nextToken()

	return &p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

func (p *Parser) curTokenKindIs(kind lexer.TokenKind) bool {
	return p.curToken.Kind == kind
}

func (p *Parser) peekTokenKindIs(kind lexer.TokenKind) bool {
	return p.peekToken.Kind == kind
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) error(tok lexer.Token, msg ...interface{}) error {
	return internals.PosError(p.FilePath, tok.Row, tok.Col, msg...)
}

func (p *Parser) add(err error) {
	if err != nil {
		p.Errors = append(p.Errors, err)
	}
}

func (p *Parser) registerPrefix(tokenKind lexer.TokenKind, fn prefixParseFn) {
	p.prefixParseFns[tokenKind] = fn
}

func (p *Parser) registerInfix(tokenKind lexer.TokenKind, fn infixParseFn) {
	p.infixParseFns[tokenKind] = fn
}

// expect reports a syntax error and fails the current production when the
// current token doesn't match, otherwise it consumes the token.
func (p *Parser) expect(kind lexer.TokenKind) bool {
	if !p.curTokenKindIs(kind) {
		p.add(p.error(p.curToken, "unexpected token (", p.curToken.Text, "), expected (", kind, ")"))
		return false
	}
	p.nextToken()
	return true
}

// Parse consumes the whole token stream and produces the program, one
// definition per top level def. A syntax error abandons the current
// definition and resumes at the next top level def.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{
		Definitions: []*ast.Definition{},
	}

	for !p.curTokenKindIs(lexer.TokenEOF) {
		if !p.curTokenKindIs(lexer.TokenDef) {
			p.add(p.error(p.curToken, "unexpected token (", p.curToken.Text, "), a program is a sequence of def declarations"))
			p.syncToNextDefinition()
			continue
		}

		def := p.parseDefinition()
		if def == nil {
			p.syncToNextDefinition()
			continue
		}
		program.Definitions = append(program.Definitions, def)
	}

	if len(program.Definitions) == 0 && len(p.Errors) == 0 {
		p.add(p.error(p.curToken, "a program needs at least one def declaration"))
	}

	return program
}

// syncToNextDefinition skips tokens until the next top level def, so
// sibling definitions are still attempted after a syntax error.
func (p *Parser) syncToNextDefinition() {
	depth := 0
	for !p.curTokenKindIs(lexer.TokenEOF) {
		switch p.curToken.Kind {
		case lexer.TokenCurlyBraceOpen:
			depth++
		case lexer.TokenCurlyBraceClose:
			depth--
		case lexer.TokenDef:
			if depth <= 0 {
				return
			}
		}
		p.nextToken()
	}
}

func (p *Parser) parseDefinition() *ast.Definition {
	def := &ast.Definition{Token: p.curToken}
	p.nextToken() // consume def

	if !p.curTokenKindIs(lexer.TokenIdentifier) {
		p.add(p.error(p.curToken, "unexpected token (", p.curToken.Text, "), def needs a procedure name"))
		return nil
	}
	def.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Text}
	p.nextToken()

	if !p.expect(lexer.TokenBraceOpen) {
		return nil
	}

	// params
	if !p.curTokenKindIs(lexer.TokenBraceClose) {
		for {
			decl := p.parseVarDecl()
			if decl == nil {
				return nil
			}
			def.Params = append(def.Params, decl)
			if p.curTokenKindIs(lexer.TokenComma) {
				p.nextToken()
				continue
			}
			break
		}
	}

	if !p.expect(lexer.TokenBraceClose) {
		return nil
	}
	if !p.expect(lexer.TokenColon) {
		return nil
	}

	def.ReturnType = p.parseType()
	if def.ReturnType == nil {
		return nil
	}

	if !p.expect(lexer.TokenAssign) {
		return nil
	}
	if !p.expect(lexer.TokenCurlyBraceOpen) {
		return nil
	}

	// var locals come first in a body
	for p.curTokenKindIs(lexer.TokenVar) {
		p.nextToken() // consume var
		decl := p.parseVarDecl()
		if decl == nil {
			return nil
		}
		def.Locals = append(def.Locals, decl)
		if !p.expect(lexer.TokenSemiColon) {
			return nil
		}
	}

	// then nested procedure definitions
	for p.curTokenKindIs(lexer.TokenDef) {
		nested := p.parseDefinition()
		if nested == nil {
			return nil
		}
		def.Nested = append(def.Nested, nested)
	}

	def.Body = p.parseBlockStatements()
	if def.Body == nil {
		return nil
	}

	if !p.expect(lexer.TokenCurlyBraceClose) {
		return nil
	}

	return def
}

// parseVarDecl parses a name : type pair.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	if !p.curTokenKindIs(lexer.TokenIdentifier) {
		p.add(p.error(p.curToken, "unexpected token (", p.curToken.Text, "), a declaration needs a name"))
		return nil
	}

	decl := &ast.VarDecl{
		Token: p.curToken,
		Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Text},
	}
	p.nextToken()

	if !p.expect(lexer.TokenColon) {
		return nil
	}

	decl.Type = p.parseType()
	if decl.Type == nil {
		return nil
	}

	return decl
}

// parseType parses Int or a function type ( T1, ..., Tn ) => T. The
// parameter type list is kept in full, call sites check against it.
func (p *Parser) parseType() ast.TypeNode {
	switch p.curToken.Kind {
	case lexer.TokenInt:
		node := &ast.IntTypeNode{Token: p.curToken}
		p.nextToken()
		return node
	case lexer.TokenBraceOpen:
		node := &ast.FuncTypeNode{Token: p.curToken}
		p.nextToken()

		if !p.curTokenKindIs(lexer.TokenBraceClose) {
			for {
				param := p.parseType()
				if param == nil {
					return nil
				}
				node.Params = append(node.Params, param)
				if p.curTokenKindIs(lexer.TokenComma) {
					p.nextToken()
					continue
				}
				break
			}
		}

		if !p.expect(lexer.TokenBraceClose) {
			return nil
		}
		if !p.expect(lexer.TokenArrow) {
			return nil
		}

		node.Return = p.parseType()
		if node.Return == nil {
			return nil
		}
		return node
	default:
		p.add(p.error(p.curToken, "unexpected token (", p.curToken.Text, "), expected a type"))
		return nil
	}
}

// parseBlockStatements parses stmt (';' stmt)* up to the closing brace.
func (p *Parser) parseBlockStatements() *ast.BlockStatement {
	block := &ast.BlockStatement{
		Token:      p.curToken,
		Statements: []ast.Statement{},
	}

	for {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)

		if p.curTokenKindIs(lexer.TokenSemiColon) {
			p.nextToken()
			continue
		}
		break
	}

	return block
}

func (p *Parser) parseStatement() ast.Statement {
	// ID = expr, one token of lookahead splits it from a bare expression
	if p.curTokenKindIs(lexer.TokenIdentifier) && p.peekTokenKindIs(lexer.TokenAssign) {
		stmt := &ast.AssignStatement{
			Token: p.curToken,
			Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Text},
		}
		p.nextToken() // consume the name
		p.nextToken() // consume =

		stmt.Value = p.parseExpression(LOWEST)
		if stmt.Value == nil {
			return nil
		}
		return stmt
	}

	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.add(p.error(p.curToken, "unexpected token (", p.curToken.Text, ") in expression"))
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for {
		infix, ok := p.infixParseFns[p.curToken.Kind]
		if !ok || precedence >= p.curPrecedence() {
			break
		}
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Text}
	p.nextToken()
	return ident
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Text, 10, 64)
	if err != nil {
		p.add(p.error(p.curToken, fmt.Sprintf("could not parse (%v) as an integer", p.curToken.Text)))
		return nil
	}

	lit := &ast.IntegerLiteral{Token: p.curToken, Value: value}
	p.nextToken()
	return lit
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume (

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if !p.expect(lexer.TokenBraceClose) {
		return nil
	}
	return expr
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Text,
	}

	precedence := p.curPrecedence()
	p.nextToken() // consume the operator

	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	expr := &ast.CallExpression{
		Token:  p.curToken,
		Callee: callee,
		Args:   []ast.Expression{},
	}
	p.nextToken() // consume (

	if !p.curTokenKindIs(lexer.TokenBraceClose) {
		for {
			arg := p.parseExpression(LOWEST)
			if arg == nil {
				return nil
			}
			expr.Args = append(expr.Args, arg)
			if p.curTokenKindIs(lexer.TokenComma) {
				p.nextToken()
				continue
			}
			break
		}
	}

	if !p.expect(lexer.TokenBraceClose) {
		return nil
	}
	return expr
}

// parseTestExpression parses expr CMP expr, only valid as an if condition.
func (p *Parser) parseTestExpression() *ast.TestExpression {
	left := p.parseExpression(LOWEST)
	if left == nil {
		return nil
	}

	if _, ok := lexer.ComparisonOperators[p.curToken.Kind]; !ok {
		p.add(p.error(p.curToken, "unexpected token (", p.curToken.Text, "), an if condition needs a comparison operator"))
		return nil
	}

	test := &ast.TestExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Text,
	}
	p.nextToken() // consume the operator

	test.Right = p.parseExpression(LOWEST)
	if test.Right == nil {
		return nil
	}
	return test
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}
	p.nextToken() // consume if

	if !p.expect(lexer.TokenBraceOpen) {
		return nil
	}

	expr.Condition = p.parseTestExpression()
	if expr.Condition == nil {
		return nil
	}

	if !p.expect(lexer.TokenBraceClose) {
		return nil
	}
	if !p.expect(lexer.TokenCurlyBraceOpen) {
		return nil
	}

	expr.Consequence = p.parseBlockStatements()
	if expr.Consequence == nil {
		return nil
	}

	if !p.expect(lexer.TokenCurlyBraceClose) {
		return nil
	}
	if !p.expect(lexer.TokenElse) {
		return nil
	}
	if !p.expect(lexer.TokenCurlyBraceOpen) {
		return nil
	}

	expr.Alternative = p.parseBlockStatements()
	if expr.Alternative == nil {
		return nil
	}

	if !p.expect(lexer.TokenCurlyBraceClose) {
		return nil
	}

	return expr
}
