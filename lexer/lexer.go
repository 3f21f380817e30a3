package lexer

import (
	"strings"
	"unicode"

	"lacs/internals"
)

func NewLexer(filePath string, content string) *Lexer {
	lexer := Lexer{
		Content:  []rune(content),
		FilePath: filePath,
		Row:      1,
		Col:      1,
		Cur:      0,
	}
	return &lexer
}

func (l *Lexer) readChar() {
	if l.Cur >= len(l.Content) {
		return
	}

	char := l.Content[l.Cur]

	switch char {
	case '\n':
		l.Row++
		l.Col = 1
	default:
		l.Col++
	}

	// increment to deal with the next char
	l.Cur++
}

func (l *Lexer) NextToken() Token {
	for {
		l.skipWhiteSpace()
		l.skipComment()

		token := Token{
			Row: l.Row,
			Col: l.Col,
		}

		if l.Cur >= len(l.Content) {
			token.LiteralToken = LiteralToken{
				Kind: TokenEOF,
				Text: "",
			}
			return token
		}

		char := l.Content[l.Cur]

		switch string(char) {
		case TokenCurlyBraceOpen:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenCurlyBraceOpen,
				Text: "{",
			}
		case TokenCurlyBraceClose:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenCurlyBraceClose,
				Text: "}",
			}
		case TokenBraceOpen:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenBraceOpen,
				Text: "(",
			}
		case TokenBraceClose:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenBraceClose,
				Text: ")",
			}
		case TokenColon:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenColon,
				Text: ":",
			}
		case TokenComma:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenComma,
				Text: ",",
			}
		case TokenSemiColon:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenSemiColon,
				Text: ";",
			}
		case TokenPlus:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenPlus,
				Text: "+",
			}
		case TokenMinus:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenMinus,
				Text: "-",
			}
		case TokenMultiply:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenMultiply,
				Text: "*",
			}
		case TokenModule:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenModule,
				Text: "%",
			}
		case TokenSlash:
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenSlash,
				Text: "/",
			}
		case "!":
			l.readChar()
			if l.peekCharIs('=') {
				l.readChar()
				token.LiteralToken = LiteralToken{
					Kind: TokenNotEquals,
					Text: "!=",
				}
			} else {
				l.Errors = append(l.Errors, internals.PosError(l.FilePath, token.Row, token.Col, "invalid token: !"))
				continue
			}
		case TokenAssign:
			l.readChar()
			switch {
			case l.peekCharIs('='):
				l.readChar()
				token.LiteralToken = LiteralToken{
					Kind: TokenEquals,
					Text: "==",
				}
			case l.peekCharIs('>'):
				l.readChar()
				token.LiteralToken = LiteralToken{
					Kind: TokenArrow,
					Text: "=>",
				}
			default:
				token.LiteralToken = LiteralToken{
					Kind: TokenAssign,
					Text: "=",
				}
			}
		case TokenGreater:
			l.readChar()
			if l.peekCharIs('=') {
				l.readChar()
				token.LiteralToken = LiteralToken{
					Kind: TokenGreaterOrEqual,
					Text: ">=",
				}
			} else {
				token.LiteralToken = LiteralToken{
					Kind: TokenGreater,
					Text: ">",
				}
			}
		case TokenLess:
			l.readChar()
			if l.peekCharIs('=') {
				l.readChar()
				token.LiteralToken = LiteralToken{
					Kind: TokenLessOrEqual,
					Text: "<=",
				}
			} else {
				token.LiteralToken = LiteralToken{
					Kind: TokenLess,
					Text: "<",
				}
			}
		default:
			if isLetter(char) {
				return l.readIdentifier()
			} else if isDigit(char) {
				return l.readNumber()
			} else {
				// best effort recovery, report the char and keep scanning
				l.Errors = append(l.Errors, internals.PosError(l.FilePath, l.Row, l.Col, "invalid token: "+string(char)))
				l.readChar()
				continue
			}
		}
		return token
	}
}

func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens
}

func (l *Lexer) peekCharIs(char rune) bool {
	return l.Cur < len(l.Content) && l.Content[l.Cur] == char
}

// a letter followed by 0 or more letters or digits
func isLetter(char rune) bool {
	return unicode.IsLetter(char)
}

func isDigit(char rune) bool {
	return unicode.IsDigit(char)
}

func (l *Lexer) readIdentifier() Token {
	startPos := l.Cur

	// save them to return
	row := l.Row
	col := l.Col

	for l.Cur < len(l.Content) {
		char := l.Content[l.Cur]
		if isLetter(char) || isDigit(char) {
			l.readChar()
		} else {
			break
		}
	}

	text := strings.TrimSpace(string(l.Content[startPos:l.Cur]))

	if tokenKind, isKeyword := Keywords[text]; isKeyword {
		return Token{LiteralToken: LiteralToken{
			Kind: tokenKind,
			Text: text,
		}, Row: row, Col: col}
	}

	return Token{
		LiteralToken: LiteralToken{
			Kind: TokenIdentifier,
			Text: text,
		},
		Row: row,
		Col: col,
	}
}

func (l *Lexer) readNumber() Token {
	startPos := l.Cur
	row := l.Row
	col := l.Col

	for l.Cur < len(l.Content) && isDigit(l.Content[l.Cur]) {
		l.readChar()
	}

	text := string(l.Content[startPos:l.Cur])

	return Token{
		LiteralToken: LiteralToken{
			Kind: TokenNumber,
			Text: text,
		},
		Row: row,
		Col: col,
	}
}

func (l *Lexer) skipComment() {
	for l.Cur+1 < len(l.Content) && l.Content[l.Cur] == '/' && l.Content[l.Cur+1] == '/' {
		for l.Cur < len(l.Content) && l.Content[l.Cur] != '\n' {
			l.readChar()
		}
		l.skipWhiteSpace()
	}
}

func (l *Lexer) skipWhiteSpace() {
	for l.Cur < len(l.Content) && unicode.IsSpace(l.Content[l.Cur]) {
		l.readChar()
	}
}
