package defparser

import (
	"fmt"

	"github.com/samber/lo"
)

var netWireKeywords = []string{"COVER", "FIXED", "ROUTED", "NOSHIELD"}

func (p *parser) nets() (*Section[Net], error) {
	return parseSection(p, "NETS", p.net)
}

func (p *parser) net() (Net, error) {
	tok, err := p.peek()
	if err != nil {
		return Net{}, err
	}
	n := Net{Pos: tok.Pos}
	if n.Name, err = p.name("net name"); err != nil {
		return Net{}, err
	}
	n.MustJoin = n.Name == "MUSTJOIN"
	if n.Connectors, err = p.connectors(false); err != nil {
		return Net{}, err
	}

	a := &n.Attributes
	err = p.permute(
		p.feature("SHIELDNET", func() error {
			name, err := p.name("shield net name")
			n.ShieldNets = append(n.ShieldNets, name)
			return err
		}).many(),
		p.feature("VPIN", func() error {
			v, err := p.vpin()
			n.VPins = append(n.VPins, v)
			return err
		}).many(),
		p.feature("SUBNET", func() error {
			s, err := p.subnet()
			n.Subnets = append(n.Subnets, s)
			return err
		}).many(),
		p.feature("XTALK", func() (err error) {
			n.XTalk, err = p.optInteger()
			return
		}),
		p.feature("NONDEFAULTRULE", func() (err error) {
			n.NonDefaultRule, err = p.name("rule name")
			return
		}),
		p.oneOf("wiring", netWireKeywords, func() error {
			w, err := p.netWiring()
			n.Wiring = append(n.Wiring, w)
			return err
		}).many(),
		p.feature("SOURCE", func() (err error) {
			a.Source, err = optKeyword(p, sourceTypes)
			return
		}),
		p.feature("FIXEDBUMP", func() error {
			a.FixedBump = true
			return nil
		}),
		p.feature("FREQUENCY", func() error {
			f, err := p.number()
			a.Frequency = &f
			return err
		}),
		p.feature("ORIGINAL", func() (err error) {
			a.Original, err = p.name("net name")
			return
		}),
		p.feature("USE", func() (err error) {
			a.Use, err = optKeyword(p, useModes)
			return
		}),
		p.feature("PATTERN", func() (err error) {
			a.Pattern, err = optKeyword(p, patterns)
			return
		}),
		p.feature("ESTCAP", func() (err error) {
			a.EstCap, err = p.optInteger()
			return
		}),
		p.feature("WEIGHT", func() (err error) {
			a.Weight, err = p.optInteger()
			return
		}),
		p.propertyClause(&a.Props),
	)
	if err != nil {
		return Net{}, err
	}
	return n, nil
}

// connectors parses zero or more "( component pin [+ SYNTHESIZED] )".
// "PIN" in component position names a top-level pin. Special nets may use
// "*" for every component.
func (p *parser) connectors(allowStar bool) ([]Connector, error) {
	var out []Connector
	for {
		ok, err := p.is(TokenLParen)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		p.i++

		var c Connector
		isPin, err := p.acceptWord("PIN")
		if err != nil {
			return nil, err
		}
		if !isPin {
			if allowStar {
				c.Component, err = p.pattern("component name")
			} else {
				c.Component, err = p.name("component name")
			}
			if err != nil {
				return nil, err
			}
		}
		if c.Pin, err = p.name("pin name"); err != nil {
			return nil, err
		}
		if c.Synthesized, err = p.acceptFeature("SYNTHESIZED"); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
}

// vpin parses the body of "+ VPIN name [LAYER layer] pt pt [status pt orient]".
// COVER is read as COVERED, as it is for pin ports.
func (p *parser) vpin() (VPin, error) {
	var (
		v   VPin
		err error
	)
	if v.Name, err = p.name("virtual pin name"); err != nil {
		return VPin{}, err
	}
	layer, err := p.acceptFeature("LAYER")
	if err != nil {
		return VPin{}, err
	}
	if !layer {
		if layer, err = p.acceptWord("LAYER"); err != nil {
			return VPin{}, err
		}
	}
	if layer {
		if v.Layer, err = p.name("layer name"); err != nil {
			return VPin{}, err
		}
	}
	if v.Rect, err = p.rect(); err != nil {
		return VPin{}, err
	}

	tok, err := p.peek()
	if err != nil {
		return VPin{}, err
	}
	if tok.Kind != TokenWord || (tok.Literal != "COVER" && !pinLocations.has(tok.Literal)) {
		return v, nil
	}
	covered, err := p.acceptWord("COVER")
	if err != nil {
		return VPin{}, err
	}
	if covered {
		v.Status = lo.ToPtr(PinCovered)
	} else if v.Status, err = optKeyword(p, pinLocations); err != nil {
		return VPin{}, err
	}
	pt, err := p.point()
	if err != nil {
		return VPin{}, err
	}
	v.Location = &pt
	o, err := p.orient()
	if err != nil {
		return VPin{}, err
	}
	v.Orient = &o
	return v, nil
}

// subnet parses the body of "+ SUBNET name ref* [NONDEFAULTRULE rule] wiring*".
// Subnet wiring and rule clauses are not prefixed by '+'.
func (p *parser) subnet() (Subnet, error) {
	var (
		s   Subnet
		err error
	)
	if s.Name, err = p.name("subnet name"); err != nil {
		return Subnet{}, err
	}
	for {
		ok, err := p.is(TokenLParen)
		if err != nil {
			return Subnet{}, err
		}
		if !ok {
			break
		}
		ref, err := p.subnetPin()
		if err != nil {
			return Subnet{}, err
		}
		s.Pins = append(s.Pins, ref)
	}

	ndr, err := p.acceptWord("NONDEFAULTRULE")
	if err != nil {
		return Subnet{}, err
	}
	if ndr {
		if s.NonDefaultRule, err = p.name("rule name"); err != nil {
			return Subnet{}, err
		}
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return Subnet{}, err
		}
		if tok.Kind != TokenWord || !netWireAttrs.has(tok.Literal) {
			return s, nil
		}
		w, err := p.netWiring()
		if err != nil {
			return Subnet{}, err
		}
		s.Wiring = append(s.Wiring, w)
	}
}

func (p *parser) subnetPin() (SubnetPin, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return SubnetPin{}, err
	}
	var (
		ref SubnetPin
		err error
	)
	first, err := p.word("component name, 'PIN' or 'VPIN'")
	if err != nil {
		return SubnetPin{}, err
	}
	switch first.Literal {
	case "PIN":
		ref.Pin, err = p.name("pin name")
	case "VPIN":
		ref.VPin, err = p.name("virtual pin name")
	default:
		if !p.validName(first.Literal) {
			return SubnetPin{}, unexpected("component name", first)
		}
		ref.Component = first.Literal
		ref.Pin, err = p.name("pin name")
	}
	if err != nil {
		return SubnetPin{}, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return SubnetPin{}, err
	}
	return ref, nil
}

// netWiring parses "attr segment (NEW segment)*".
func (p *parser) netWiring() (Wiring, error) {
	attr, err := keyword(p, netWireAttrs)
	if err != nil {
		return Wiring{}, err
	}
	w := Wiring{Attr: attr}
	for {
		seg, err := p.wireSegment()
		if err != nil {
			return Wiring{}, err
		}
		w.Segments = append(w.Segments, seg)
		more, err := p.acceptWord("NEW")
		if err != nil {
			return Wiring{}, err
		}
		if !more {
			return w, nil
		}
	}
}

// wireSegment parses "layer [TAPER | TAPERRULE rule] [STYLE n] route".
func (p *parser) wireSegment() (WireSegment, error) {
	var (
		seg WireSegment
		err error
	)
	if seg.Layer, err = p.name("layer name"); err != nil {
		return WireSegment{}, err
	}
	if seg.Taper, err = p.acceptWord("TAPER"); err != nil {
		return WireSegment{}, err
	}
	if !seg.Taper {
		rule, err := p.acceptWord("TAPERRULE")
		if err != nil {
			return WireSegment{}, err
		}
		if rule {
			if seg.TaperRule, err = p.name("taper rule name"); err != nil {
				return WireSegment{}, err
			}
		}
	}
	if seg.Style, err = p.styleRef(); err != nil {
		return WireSegment{}, err
	}
	if seg.Route, err = p.routeBody(); err != nil {
		return WireSegment{}, err
	}
	return seg, nil
}

// styleRef parses an optional "[+] STYLE n".
func (p *parser) styleRef() (*int32, error) {
	ok, err := p.acceptFeature("STYLE")
	if err != nil {
		return nil, err
	}
	if !ok {
		if ok, err = p.acceptWord("STYLE"); err != nil || !ok {
			return nil, err
		}
	}
	return p.optInteger()
}

func missingClause(section, kw string, got Token) *SyntaxError {
	err := unexpected("'+ "+kw+"'", got)
	err.Message = fmt.Sprintf("%s requires + %s", section, kw)
	return err
}
