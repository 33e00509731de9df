package defparser

import "fmt"

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF       TokenKind = iota
	TokenWord                // any run of non-delimiter bytes that is not a number
	TokenString              // "..." without escape processing
	TokenInteger             // [+-]?[0-9]+
	TokenFloat               // .42 | 42.42e-4 | 42. | 42.42
	TokenLParen              // (
	TokenRParen              // )
	TokenSemicolon           // ;
	TokenPlus                // + feature marker
	TokenMinus               // - member marker
	TokenStar                // * coordinate placeholder or wildcard
)

var tokenNames = map[TokenKind]string{
	TokenEOF:       "EOF",
	TokenWord:      "word",
	TokenString:    "string",
	TokenInteger:   "integer",
	TokenFloat:     "float",
	TokenLParen:    "'('",
	TokenRParen:    "')'",
	TokenSemicolon: "';'",
	TokenPlus:      "'+'",
	TokenMinus:     "'-'",
	TokenStar:      "'*'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content, without quotes for strings
	Pos     Position
}

// describe renders the token for "got" parts of error messages.
func (t Token) describe() string {
	if t.Kind == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s (%q)", t.Kind, t.Literal)
}
