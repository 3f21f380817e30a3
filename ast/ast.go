package ast

import (
	"bytes"

	"lacs/lexer"
)

type Node interface {
	TokenLiteral() string
	String() string
	GetToken() lexer.Token
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// TypeNode is the syntax of a type annotation, either Int or a function
// type (T1, ..., Tn) => T.
type TypeNode interface {
	Node
	typeNode()
}

type Program struct {
	Definitions []*Definition
}

func (p *Program) TokenLiteral() string {
	if len(p.Definitions) > 0 {
		return p.Definitions[0].TokenLiteral()
	}
	return ""
}

func (p *Program) GetToken() lexer.Token {
	if len(p.Definitions) > 0 {
		return p.Definitions[0].GetToken()
	}
	return lexer.Token{}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, d := range p.Definitions {
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Definition is a full procedure declaration:
// def ID ( params ) : type = { locals nested stmts }
type Definition struct {
	Token      lexer.Token // the def token
	Name       *Identifier
	Params     []*VarDecl
	ReturnType TypeNode
	Locals     []*VarDecl
	Nested     []*Definition
	Body       *BlockStatement
}

func (d *Definition) statementNode()        {}
func (d *Definition) TokenLiteral() string  { return d.Token.Text }
func (d *Definition) GetToken() lexer.Token { return d.Token }
func (d *Definition) String() string {
	var out bytes.Buffer
	out.WriteString("def ")
	out.WriteString(d.Name.String())
	out.WriteString("(")
	for idx, param := range d.Params {
		out.WriteString(param.String())
		if idx+1 <= len(d.Params)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString("): ")
	out.WriteString(d.ReturnType.String())
	out.WriteString(" = { ")
	for _, local := range d.Locals {
		out.WriteString("var " + local.String() + "; ")
	}
	for _, nested := range d.Nested {
		out.WriteString(nested.String() + " ")
	}
	out.WriteString(d.Body.String())
	out.WriteString(" }")
	return out.String()
}

// VarDecl is a name : type pair, used both for parameters and var locals.
type VarDecl struct {
	Token lexer.Token // the name token
	Name  *Identifier
	Type  TypeNode
}

func (v *VarDecl) TokenLiteral() string  { return v.Token.Text }
func (v *VarDecl) GetToken() lexer.Token { return v.Token }
func (v *VarDecl) String() string {
	return v.Name.String() + ": " + v.Type.String()
}

type IntTypeNode struct {
	Token lexer.Token
}

func (t *IntTypeNode) typeNode()             {}
func (t *IntTypeNode) TokenLiteral() string  { return t.Token.Text }
func (t *IntTypeNode) GetToken() lexer.Token { return t.Token }
func (t *IntTypeNode) String() string        { return "Int" }

type FuncTypeNode struct {
	Token  lexer.Token // the ( token
	Params []TypeNode
	Return TypeNode
}

func (t *FuncTypeNode) typeNode()             {}
func (t *FuncTypeNode) TokenLiteral() string  { return t.Token.Text }
func (t *FuncTypeNode) GetToken() lexer.Token { return t.Token }
func (t *FuncTypeNode) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	for idx, param := range t.Params {
		out.WriteString(param.String())
		if idx+1 <= len(t.Params)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(") => ")
	out.WriteString(t.Return.String())
	return out.String()
}

// BlockStatement is a semicolon separated statement sequence.
type BlockStatement struct {
	Token      lexer.Token // token of the first statement
	Statements []Statement
}

func (b *BlockStatement) statementNode()        {}
func (b *BlockStatement) TokenLiteral() string  { return b.Token.Text }
func (b *BlockStatement) GetToken() lexer.Token { return b.Token }
func (b *BlockStatement) String() string {
	var out bytes.Buffer
	for idx, s := range b.Statements {
		out.WriteString(s.String())
		if idx+1 <= len(b.Statements)-1 {
			out.WriteString("; ")
		}
	}
	return out.String()
}

// AssignStatement is ID = expr.
type AssignStatement struct {
	Token lexer.Token // the ID token
	Name  *Identifier
	Value Expression
}

func (a *AssignStatement) statementNode()        {}
func (a *AssignStatement) TokenLiteral() string  { return a.Token.Text }
func (a *AssignStatement) GetToken() lexer.Token { return a.Token }
func (a *AssignStatement) String() string {
	return a.Name.String() + " = " + a.Value.String()
}

type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (e *ExpressionStatement) statementNode()        {}
func (e *ExpressionStatement) TokenLiteral() string  { return e.Token.Text }
func (e *ExpressionStatement) GetToken() lexer.Token { return e.Token }
func (e *ExpressionStatement) String() string {
	if e.Expression != nil {
		return e.Expression.String()
	}
	return ""
}

type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Text }
func (i *Identifier) GetToken() lexer.Token { return i.Token }
func (i *Identifier) String() string        { return i.Value }

type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (i *IntegerLiteral) expressionNode()       {}
func (i *IntegerLiteral) TokenLiteral() string  { return i.Token.Text }
func (i *IntegerLiteral) GetToken() lexer.Token { return i.Token }
func (i *IntegerLiteral) String() string        { return i.Token.Text }

// BinaryExpression covers + - * / %.
type BinaryExpression struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpression) expressionNode()       {}
func (b *BinaryExpression) TokenLiteral() string  { return b.Token.Text }
func (b *BinaryExpression) GetToken() lexer.Token { return b.Token }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// TestExpression is the comparison gating an if, it is not itself a value.
type TestExpression struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (t *TestExpression) expressionNode()       {}
func (t *TestExpression) TokenLiteral() string  { return t.Token.Text }
func (t *TestExpression) GetToken() lexer.Token { return t.Token }
func (t *TestExpression) String() string {
	return t.Left.String() + " " + t.Operator + " " + t.Right.String()
}

type IfExpression struct {
	Token       lexer.Token // the if token
	Condition   *TestExpression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (i *IfExpression) expressionNode()       {}
func (i *IfExpression) TokenLiteral() string  { return i.Token.Text }
func (i *IfExpression) GetToken() lexer.Token { return i.Token }
func (i *IfExpression) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(i.Condition.String())
	out.WriteString(") { ")
	out.WriteString(i.Consequence.String())
	out.WriteString(" } else { ")
	out.WriteString(i.Alternative.String())
	out.WriteString(" }")
	return out.String()
}

type CallExpression struct {
	Token  lexer.Token // the ( token
	Callee Expression
	Args   []Expression
}

func (c *CallExpression) expressionNode()       {}
func (c *CallExpression) TokenLiteral() string  { return c.Token.Text }
func (c *CallExpression) GetToken() lexer.Token { return c.Token }
func (c *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(c.Callee.String())
	out.WriteString("(")
	for idx, arg := range c.Args {
		out.WriteString(arg.String())
		if idx+1 <= len(c.Args)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(")")
	return out.String()
}
