package defparser

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	dividerChars = "/\\%$"
	busBitPairs  = []string{"[]", "{}", "<>"}
)

// header parses header statements in any order until none applies.
func (p *parser) header() (Header, error) {
	var h Header
	for {
		ok, err := p.headerStatement(&h)
		if err != nil {
			return Header{}, err
		}
		if !ok {
			return h, nil
		}
	}
}

// headerStatement parses one VERSION, NAMESCASESENSITIVE, DIVIDERCHAR or
// BUSBITCHARS statement and reports whether one was found. DIVIDERCHAR and
// BUSBITCHARS switch the characters used to read names from then on.
func (p *parser) headerStatement(h *Header) (bool, error) {
	tok, err := p.peek()
	if err != nil || tok.Kind != TokenWord {
		return false, err
	}

	switch tok.Literal {
	case "VERSION":
		p.i++
		v, err := p.number()
		if err != nil {
			return false, err
		}
		h.Version = &v

	case "NAMESCASESENSITIVE":
		p.i++
		val, err := p.word("'ON' or 'OFF'")
		if err != nil {
			return false, err
		}
		var on bool
		switch val.Literal {
		case "ON":
			on = true
		case "OFF":
		default:
			return false, unexpected("'ON' or 'OFF'", val)
		}
		h.NamesCaseSensitive = &on

	case "DIVIDERCHAR":
		p.i++
		val, err := p.next()
		if err != nil {
			return false, err
		}
		if (val.Kind != TokenString && val.Kind != TokenWord) || len(val.Literal) != 1 || strings.IndexByte(dividerChars, val.Literal[0]) < 0 {
			return false, unexpected(fmt.Sprintf("one of %q", dividerChars), val)
		}
		h.DividerChar = val.Literal
		p.opts.divider = val.Literal[0]

	case "BUSBITCHARS":
		p.i++
		val, err := p.next()
		if err != nil {
			return false, err
		}
		if (val.Kind != TokenString && val.Kind != TokenWord) || !lo.Contains(busBitPairs, val.Literal) {
			return false, unexpected(fmt.Sprintf("one of %q", busBitPairs), val)
		}
		h.BusBitChars = val.Literal
		p.opts.busOpen, p.opts.busClose = val.Literal[0], val.Literal[1]

	default:
		return false, nil
	}

	if err := p.endStatement(tok.Literal); err != nil {
		return false, err
	}
	return true, nil
}
