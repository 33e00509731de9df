package defparser

import (
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

// ValueKind discriminates the PropertyValue tagged union.
type ValueKind string

const (
	ValueString ValueKind = "STRING"
	ValueInt    ValueKind = "INTEGER"
	ValueReal   ValueKind = "REAL"
)

// PropertyValue is a parsed property value. Kind determines which typed
// field is populated.
type PropertyValue struct {
	Kind ValueKind
	Str  string  // populated when Kind == ValueString
	Int  int32   // populated when Kind == ValueInt
	Real float64 // populated when Kind == ValueReal
	Raw  string  // original literal text
}

// String returns the raw literal.
func (v PropertyValue) String() string { return v.Raw }

// Native returns the populated field as a plain Go value.
func (v PropertyValue) Native() any {
	switch v.Kind {
	case ValueInt:
		return v.Int
	case ValueReal:
		return v.Real
	default:
		return v.Str
	}
}

// Property is one name/value pair of a "+ PROPERTY" clause.
type Property struct {
	Name  string
	Value PropertyValue
}

// Properties is an ordered property list. Duplicate names are kept in
// insertion order.
type Properties []Property

// Get returns the last value recorded for name.
func (ps Properties) Get(name string) (PropertyValue, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Name == name {
			return ps[i].Value, true
		}
	}
	return PropertyValue{}, false
}

// Int returns the named property coerced to an integer.
func (ps Properties) Int(name string) (int32, error) {
	v, ok := ps.Get(name)
	if !ok {
		return 0, fmt.Errorf("property %q not set", name)
	}
	return cast.ToInt32E(v.Native())
}

// Float returns the named property coerced to a float.
func (ps Properties) Float(name string) (float64, error) {
	v, ok := ps.Get(name)
	if !ok {
		return 0, fmt.Errorf("property %q not set", name)
	}
	return cast.ToFloat64E(v.Native())
}

// Text returns the named property formatted as a string.
func (ps Properties) Text(name string) (string, error) {
	v, ok := ps.Get(name)
	if !ok {
		return "", fmt.Errorf("property %q not set", name)
	}
	return cast.ToStringE(v.Native())
}

// ParseValue converts a token into a typed PropertyValue. Quoted strings
// win over numbers, reals over integers, and any other word is taken as an
// unquoted string.
func ParseValue(tok Token) (PropertyValue, error) {
	switch tok.Kind {
	case TokenString:
		return PropertyValue{Kind: ValueString, Str: tok.Literal, Raw: tok.Literal}, nil

	case TokenFloat:
		f, err := parseFloat(tok)
		if err != nil {
			return PropertyValue{}, err
		}
		return PropertyValue{Kind: ValueReal, Real: f, Raw: tok.Literal}, nil

	case TokenInteger:
		n, err := parseInt32(tok)
		if err != nil {
			return PropertyValue{}, err
		}
		return PropertyValue{Kind: ValueInt, Int: n, Raw: tok.Literal}, nil

	case TokenWord:
		return PropertyValue{Kind: ValueString, Str: tok.Literal, Raw: tok.Literal}, nil

	default:
		return PropertyValue{}, unexpected("property value", tok)
	}
}

// parseInt32 converts an integer token, reporting literals outside the
// int32 range as *OverflowError.
func parseInt32(tok Token) (int32, error) {
	n, err := strconv.ParseInt(tok.Literal, 10, 32)
	if err != nil {
		return 0, &OverflowError{
			ParseError: ParseError{
				Message: fmt.Sprintf("integer %q does not fit in 32 bits", tok.Literal),
				Pos:     tok.Pos,
				Cause:   err,
			},
			Literal: tok.Literal,
		}
	}
	return int32(n), nil
}

func parseFloat(tok Token) (float64, error) {
	f, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return 0, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("invalid number %q", tok.Literal),
				Pos:     tok.Pos,
				Cause:   err,
			},
			Expected: "number",
			Got:      tok.describe(),
		}
	}
	return f, nil
}

// propertyPairs parses the "name value" pairs that follow "+ PROPERTY".
func (p *parser) propertyPairs(props *Properties) error {
	for first := true; ; first = false {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Kind != TokenWord {
			if first {
				return unexpected("property name", tok)
			}
			return nil
		}
		name, err := p.name("property name")
		if err != nil {
			return err
		}
		valTok, err := p.next()
		if err != nil {
			return err
		}
		v, err := ParseValue(valTok)
		if err != nil {
			return err
		}
		*props = append(*props, Property{Name: name, Value: v})
	}
}

// propertyClause is the repeatable "+ PROPERTY" clause for permute.
func (p *parser) propertyClause(props *Properties) clause {
	return p.feature("PROPERTY", func() error { return p.propertyPairs(props) }).many()
}

// properties parses zero or more "+ PROPERTY" clauses.
func (p *parser) properties() (Properties, error) {
	var props Properties
	for {
		ok, err := p.acceptFeature("PROPERTY")
		if err != nil {
			return nil, err
		}
		if !ok {
			return props, nil
		}
		if err := p.propertyPairs(&props); err != nil {
			return nil, err
		}
	}
}
