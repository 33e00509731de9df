package defparser

import "fmt"

// ParseError is the base error type for all defparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d (offset %d): %s", e.Pos.Line, e.Pos.Column, e.Pos.Offset, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (unterminated string).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error: the expected token or
// keyword was not found at Pos.
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
	if e.Message != "" {
		msg = e.Message + ": " + msg
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d (offset %d): %s", e.Pos.Line, e.Pos.Column, e.Pos.Offset, msg)
	}
	return msg
}

// UnknownKeywordError is returned when an enumeration lookup fails.
type UnknownKeywordError struct {
	ParseError
	Table   string // enumeration name, e.g. "orientation"
	Keyword string
}

// OverflowError represents an integer literal that does not fit in 32 bits.
type OverflowError struct {
	ParseError
	Literal string
}

// UnterminatedSectionError is returned when input ends before a section's
// END keyword or a statement's terminating ';'.
type UnterminatedSectionError struct {
	ParseError
	Section string
}

// CountMismatchError is returned when the count declared after a section
// keyword differs from the number of members parsed.
type CountMismatchError struct {
	ParseError
	Section  string
	Declared int
	Parsed   int
}

func unknownKeyword(table, keyword string, pos Position) *UnknownKeywordError {
	return &UnknownKeywordError{
		ParseError: ParseError{
			Message: fmt.Sprintf("unknown %s keyword %q", table, keyword),
			Pos:     pos,
		},
		Table:   table,
		Keyword: keyword,
	}
}

func unexpected(expected string, got Token) *SyntaxError {
	return &SyntaxError{
		ParseError: ParseError{Pos: got.Pos},
		Expected:   expected,
		Got:        got.describe(),
	}
}
