package defparser

// Lexer tokenizes DEF source text into a stream of tokens.
type Lexer struct {
	src    []byte
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column (1-based)
	peeked *Token
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Next returns the next token and advances the lexer.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case isSpace(ch):
			l.advance()
		case ch == '#':
			// Line comment: skip to end of line
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespaceAndComments()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}, nil
	}

	pos := l.currentPos()
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return Token{Kind: TokenLParen, Literal: "(", Pos: pos}, nil
	case ')':
		l.advance()
		return Token{Kind: TokenRParen, Literal: ")", Pos: pos}, nil
	case ';':
		l.advance()
		return Token{Kind: TokenSemicolon, Literal: ";", Pos: pos}, nil
	case '"':
		return l.scanString()
	case '+', '-':
		// A sign only belongs to a number when a digit or '.' follows it.
		next := l.peekAt(1)
		if !isDigit(next) && next != '.' {
			l.advance()
			if ch == '+' {
				return Token{Kind: TokenPlus, Literal: "+", Pos: pos}, nil
			}
			return Token{Kind: TokenMinus, Literal: "-", Pos: pos}, nil
		}
	}

	return l.scanWord(), nil
}

// scanString reads a double-quoted string. DEF strings carry no escape
// sequences, so a backslash is kept as is (DIVIDERCHAR "\" ;).
func (l *Lexer) scanString() (Token, error) {
	pos := l.currentPos()
	l.advance() // consume opening "

	start := l.pos
	for {
		if l.atEnd() {
			return Token{}, &LexError{ParseError{
				Message: "unterminated string",
				Pos:     pos,
			}}
		}
		if l.peek() == '"' {
			literal := string(l.src[start:l.pos])
			l.advance()
			return Token{Kind: TokenString, Literal: literal, Pos: pos}, nil
		}
		l.advance()
	}
}

// scanWord consumes a run of non-delimiter bytes and classifies it.
func (l *Lexer) scanWord() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && !isDelimiter(l.peek()) {
		l.advance()
	}

	literal := string(l.src[start:l.pos])

	switch {
	case literal == "*":
		return Token{Kind: TokenStar, Literal: literal, Pos: pos}
	case isIntegerLiteral(literal):
		return Token{Kind: TokenInteger, Literal: literal, Pos: pos}
	case isFloatLiteral(literal):
		return Token{Kind: TokenFloat, Literal: literal, Pos: pos}
	}
	return Token{Kind: TokenWord, Literal: literal, Pos: pos}
}

// isIntegerLiteral reports whether s is an optionally signed run of digits.
func isIntegerLiteral(s string) bool {
	s = trimSign(s)
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isFloatLiteral accepts the float shapes, tried in order:
// .42, 42e42 / 42.42e42, 42. / 42.42 (exponents take an optional sign).
func isFloatLiteral(s string) bool {
	s = trimSign(s)
	if s == "" {
		return false
	}
	if s[0] == '.' {
		n := digits(s[1:])
		if n == 0 {
			return false
		}
		return isExponent(s[1+n:])
	}
	n := digits(s)
	if n == 0 {
		return false
	}
	rest := s[n:]
	if rest == "" {
		return false
	}
	if rest[0] == '.' {
		rest = rest[1:]
		rest = rest[digits(rest):]
		return isExponent(rest)
	}
	return rest != "" && isExponent(rest)
}

// isExponent accepts an empty string or [eE][+-]?[0-9]+.
func isExponent(s string) bool {
	if s == "" {
		return true
	}
	if s[0] != 'e' && s[0] != 'E' {
		return false
	}
	s = trimSign(s[1:])
	n := digits(s)
	return n > 0 && n == len(s)
}

func digits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func trimSign(s string) string {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}
	return s
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDelimiter(ch byte) bool {
	return isSpace(ch) || ch == '(' || ch == ')' || ch == ';' || ch == '"'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// isIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func isIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}
