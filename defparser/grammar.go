package defparser

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// parser holds the token buffer shared by every section grammar. Tokens
// are pulled from the lexer on demand and kept so that ordered
// alternatives can rewind to a mark.
type parser struct {
	lex  *Lexer
	toks []Token
	i    int
	opts options
	log  *zap.Logger
}

func newParser(src []byte, opts []Option) *parser {
	o := buildOptions(opts)
	return &parser{lex: NewLexer(src), opts: o, log: o.logger}
}

// run applies fn to the whole of src and rejects trailing input.
func run[T any](src []byte, opts []Option, fn func(*parser) (T, error)) (T, error) {
	var zero T
	p := newParser(src, opts)
	v, err := fn(p)
	if err != nil {
		return zero, err
	}
	if err := p.expectEOF(); err != nil {
		return zero, err
	}
	return v, nil
}

func (p *parser) lookahead(n int) error {
	for len(p.toks) <= p.i+n {
		if k := len(p.toks); k > 0 && p.toks[k-1].Kind == TokenEOF {
			p.toks = append(p.toks, p.toks[k-1])
			continue
		}
		tok, err := p.lex.Next()
		if err != nil {
			return err
		}
		p.toks = append(p.toks, tok)
	}
	return nil
}

func (p *parser) peekAt(n int) (Token, error) {
	if err := p.lookahead(n); err != nil {
		return Token{}, err
	}
	return p.toks[p.i+n], nil
}

func (p *parser) peek() (Token, error) {
	return p.peekAt(0)
}

func (p *parser) next() (Token, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != TokenEOF {
		p.i++
	}
	return tok, nil
}

func (p *parser) mark() int   { return p.i }
func (p *parser) reset(m int) { p.i = m }

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, unexpected(kind.String(), tok)
	}
	return tok, nil
}

func (p *parser) expectEOF() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.Kind != TokenEOF {
		return unexpected("EOF", tok)
	}
	return nil
}

// is reports whether the next token has the given kind.
func (p *parser) is(kind TokenKind) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	return tok.Kind == kind, nil
}

// isWord reports whether the next token is the keyword kw.
func (p *parser) isWord(kw string) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	return tok.Kind == TokenWord && tok.Literal == kw, nil
}

func (p *parser) acceptWord(kw string) (bool, error) {
	ok, err := p.isWord(kw)
	if err != nil || !ok {
		return false, err
	}
	p.i++
	return true, nil
}

func (p *parser) expectWord(kw string) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != TokenWord || tok.Literal != kw {
		return unexpected("'"+kw+"'", tok)
	}
	return nil
}

// isFeature reports whether the next tokens are "+ kw".
func (p *parser) isFeature(kw string) (bool, error) {
	plus, err := p.peek()
	if err != nil || plus.Kind != TokenPlus {
		return false, err
	}
	tok, err := p.peekAt(1)
	if err != nil {
		return false, err
	}
	return tok.Kind == TokenWord && tok.Literal == kw, nil
}

func (p *parser) acceptFeature(kw string) (bool, error) {
	ok, err := p.isFeature(kw)
	if err != nil || !ok {
		return false, err
	}
	p.i += 2
	return true, nil
}

func (p *parser) expectFeature(kw string) error {
	ok, err := p.acceptFeature(kw)
	if err != nil {
		return err
	}
	if !ok {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		return unexpected("'+ "+kw+"'", tok)
	}
	return nil
}

// endStatement consumes the ';' that closes a member or statement.
func (p *parser) endStatement(section string) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	switch tok.Kind {
	case TokenSemicolon:
		return nil
	case TokenEOF:
		return unterminated(section, tok.Pos)
	}
	return unexpected("';'", tok)
}

func unterminated(section string, pos Position) *UnterminatedSectionError {
	return &UnterminatedSectionError{
		ParseError: ParseError{
			Message: fmt.Sprintf("unterminated %s", section),
			Pos:     pos,
		},
		Section: section,
	}
}

func (p *parser) integer() (int32, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != TokenInteger {
		return 0, unexpected("integer", tok)
	}
	return parseInt32(tok)
}

// optInteger parses an integer and returns a pointer to it.
func (p *parser) optInteger() (*int32, error) {
	n, err := p.integer()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// number parses an integer or real literal as a float.
func (p *parser) number() (float64, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != TokenInteger && tok.Kind != TokenFloat {
		return 0, unexpected("number", tok)
	}
	return parseFloat(tok)
}

func (p *parser) word(what string) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != TokenWord {
		return Token{}, unexpected(what, tok)
	}
	return tok, nil
}

// name parses a hierarchical, optionally bus-indexed name.
func (p *parser) name(what string) (string, error) {
	tok, err := p.word(what)
	if err != nil {
		return "", err
	}
	if !p.validName(tok.Literal) {
		return "", unexpected(what, tok)
	}
	return tok.Literal, nil
}

// pattern parses a name that may end in the "*" wildcard.
func (p *parser) pattern(what string) (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	switch {
	case tok.Kind == TokenStar:
		return tok.Literal, nil
	case tok.Kind == TokenWord:
		base := strings.TrimSuffix(tok.Literal, "*")
		if base != tok.Literal {
			base = strings.TrimSuffix(base, string(p.opts.divider))
		}
		if base == "" || p.validName(base) {
			return tok.Literal, nil
		}
	}
	return "", unexpected(what, tok)
}

// text parses a quoted string or a single bare word.
func (p *parser) text(what string) (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	if tok.Kind != TokenString && tok.Kind != TokenWord {
		return "", unexpected(what, tok)
	}
	return tok.Literal, nil
}

func (p *parser) validName(s string) bool {
	for _, seg := range strings.Split(s, string(p.opts.divider)) {
		base, rest := seg, ""
		if i := strings.IndexByte(seg, p.opts.busOpen); i >= 0 {
			base, rest = seg[:i], seg[i:]
		}
		if !isIdentifier(base) {
			return false
		}
		for rest != "" {
			if rest[0] != p.opts.busOpen {
				return false
			}
			j := strings.IndexByte(rest, p.opts.busClose)
			if j < 2 {
				return false
			}
			rest = rest[j+1:]
		}
	}
	return true
}

// keyword parses a word and encodes it through table t.
func keyword[T ~int32](p *parser, t enumTable[T]) (T, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != TokenWord {
		return 0, unexpected(t.name, tok)
	}
	if !t.has(tok.Literal) {
		return 0, unknownKeyword(t.name, tok.Literal, tok.Pos)
	}
	return t.codes[tok.Literal], nil
}

// optKeyword is keyword returning a pointer, for optional record fields.
func optKeyword[T ~int32](p *parser, t enumTable[T]) (*T, error) {
	v, err := keyword(p, t)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (p *parser) orient() (Orientation, error) {
	return keyword(p, orientations)
}

// isOrient reports whether the next token is an orientation keyword.
func (p *parser) isOrient() (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	return tok.Kind == TokenWord && orientations.has(tok.Literal), nil
}

// clause is one order-independent optional clause of a member.
type clause struct {
	name   string
	repeat bool
	match  func() (bool, error)
	parse  func() error
}

// feature builds a clause introduced by "+ kw".
func (p *parser) feature(kw string, parse func() error) clause {
	return clause{
		name:  "+ " + kw,
		match: func() (bool, error) { return p.isFeature(kw) },
		parse: func() error {
			if err := p.expectFeature(kw); err != nil {
				return err
			}
			return parse()
		},
	}
}

// bare builds a clause introduced by the keyword kw alone.
func (p *parser) bare(kw string, parse func() error) clause {
	return clause{
		name:  kw,
		match: func() (bool, error) { return p.isWord(kw) },
		parse: func() error {
			if err := p.expectWord(kw); err != nil {
				return err
			}
			return parse()
		},
	}
}

// many marks a clause as repeatable.
func (c clause) many() clause {
	c.repeat = true
	return c
}

// permute matches clauses in any order until none of them applies. Each
// clause matches at most once unless marked repeatable, and every round
// must consume input.
func (p *parser) permute(clauses ...clause) error {
	seen := make([]bool, len(clauses))
	for {
		start := p.mark()
		matched := false
		for i := range clauses {
			c := clauses[i]
			ok, err := c.match()
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if seen[i] && !c.repeat {
				tok, _ := p.peek()
				return &SyntaxError{
					ParseError: ParseError{
						Message: fmt.Sprintf("duplicate %s clause", c.name),
						Pos:     tok.Pos,
					},
					Expected: "at most one " + c.name,
					Got:      "another",
				}
			}
			if err := c.parse(); err != nil {
				return err
			}
			seen[i] = true
			matched = true
			break
		}
		if !matched || p.mark() == start {
			return nil
		}
	}
}

// parseSection parses "keyword count ; (- member ;)* END keyword".
func parseSection[T any](p *parser, keyword string, member func() (T, error)) (*Section[T], error) {
	start, err := p.peek()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord(keyword); err != nil {
		return nil, err
	}
	declared, err := p.integer()
	if err != nil {
		return nil, err
	}
	if err := p.endStatement(keyword); err != nil {
		return nil, err
	}

	var items []T
loop:
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == TokenMinus:
			p.i++
			item, err := member()
			if err != nil {
				return nil, err
			}
			if err := p.endStatement(keyword); err != nil {
				return nil, err
			}
			items = append(items, item)
		case tok.Kind == TokenWord && tok.Literal == "END":
			p.i++
			if err := p.expectWord(keyword); err != nil {
				return nil, err
			}
			break loop
		case tok.Kind == TokenEOF:
			return nil, unterminated(keyword, tok.Pos)
		default:
			return nil, unexpected("'-' or 'END "+keyword+"'", tok)
		}
	}

	p.log.Debug("parsed section",
		zap.String("section", keyword),
		zap.Int("declared", int(declared)),
		zap.Int("parsed", len(items)),
		zap.Int("offset", start.Pos.Offset),
	)

	if int(declared) != len(items) && !p.opts.lenientCounts {
		return nil, &CountMismatchError{
			ParseError: ParseError{
				Message: fmt.Sprintf("%s declares %d members, found %d", keyword, declared, len(items)),
				Pos:     start.Pos,
			},
			Section:  keyword,
			Declared: int(declared),
			Parsed:   len(items),
		}
	}
	return &Section[T]{Declared: int(declared), Items: items, Pos: start.Pos}, nil
}

// featureIn reports which of kws follows a '+', or "" when none does.
func (p *parser) featureIn(kws ...string) (string, error) {
	plus, err := p.peek()
	if err != nil || plus.Kind != TokenPlus {
		return "", err
	}
	tok, err := p.peekAt(1)
	if err != nil || tok.Kind != TokenWord {
		return "", err
	}
	for _, kw := range kws {
		if tok.Literal == kw {
			return kw, nil
		}
	}
	return "", nil
}

// oneOf builds a clause introduced by "+ kw" for any kw in kws. The plus is
// consumed before parse runs; the keyword is left in place.
func (p *parser) oneOf(name string, kws []string, parse func() error) clause {
	return clause{
		name: name,
		match: func() (bool, error) {
			kw, err := p.featureIn(kws...)
			return kw != "", err
		},
		parse: func() error {
			p.i++
			return parse()
		},
	}
}
