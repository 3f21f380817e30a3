package lexer

// Keywords override the identifier rule by exact match.
var Keywords = map[string]TokenKind{
	"def":  TokenDef,
	"var":  TokenVar,
	"Int":  TokenInt,
	"if":   TokenIf,
	"else": TokenElse,

	// reserved words without a production, they always trip a syntax error
	"true":  TokenTrue,
	"false": TokenFalse,
}

// ComparisonOperators gate the test production, comparison is integer-only.
var ComparisonOperators = map[TokenKind]string{
	TokenEquals:         "==",
	TokenNotEquals:      "!=",
	TokenLess:           "<",
	TokenLessOrEqual:    "<=",
	TokenGreater:        ">",
	TokenGreaterOrEqual: ">=",
}
