package lexer

type TokenKind = string

const (

	// Keywords
	TokenDef  TokenKind = "def"
	TokenVar  TokenKind = "var"
	TokenInt  TokenKind = "Int"
	TokenIf   TokenKind = "if"
	TokenElse TokenKind = "else"

	// reserved, the grammar has no boolean literals
	TokenTrue  TokenKind = "true"
	TokenFalse TokenKind = "false"

	// Units
	TokenCurlyBraceOpen  TokenKind = "{"
	TokenCurlyBraceClose TokenKind = "}"
	TokenBraceOpen       TokenKind = "("
	TokenBraceClose      TokenKind = ")"
	TokenColon           TokenKind = ":"
	TokenComma           TokenKind = ","
	TokenSemiColon       TokenKind = ";"

	// Arithmetic Operators
	TokenMinus    TokenKind = "-"
	TokenPlus     TokenKind = "+"
	TokenMultiply TokenKind = "*"
	TokenSlash    TokenKind = "/"
	TokenModule   TokenKind = "%"

	// Comparison Operators
	TokenEquals         TokenKind = "=="
	TokenNotEquals      TokenKind = "!="
	TokenGreater        TokenKind = ">"
	TokenLess           TokenKind = "<"
	TokenGreaterOrEqual TokenKind = ">="
	TokenLessOrEqual    TokenKind = "<="

	// Bind Operator
	TokenAssign TokenKind = "="

	// Arrow, only valid inside function type syntax
	TokenArrow TokenKind = "=>"

	// Var Naming
	TokenIdentifier TokenKind = "identifier"

	// number literal
	TokenNumber TokenKind = "number"

	// EOF
	TokenEOF TokenKind = "end of file"
)

type LiteralToken struct {
	Text string
	Kind TokenKind
}

type Token struct {
	LiteralToken
	Row int
	Col int
}

type Lexer struct {
	Content []rune
	// help mainly in error detection when having multi file execution
	FilePath string
	Errors   []error
	Row      int
	Col      int
	Cur      int
}
