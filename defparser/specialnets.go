package defparser

var snetWireKeywords = []string{"COVER", "FIXED", "ROUTED", "SHIELD"}

func (p *parser) specialNets() (*Section[SpecialNet], error) {
	return parseSection(p, "SPECIALNETS", p.specialNet)
}

func (p *parser) specialNet() (SpecialNet, error) {
	tok, err := p.peek()
	if err != nil {
		return SpecialNet{}, err
	}
	n := SpecialNet{Pos: tok.Pos}
	if n.Name, err = p.name("net name"); err != nil {
		return SpecialNet{}, err
	}
	if n.Connectors, err = p.connectors(true); err != nil {
		return SpecialNet{}, err
	}

	var hasSource, hasUse, hasPattern bool
	a := &n.Attributes
	err = p.permute(
		p.feature("VOLTAGE", func() error {
			v, err := p.number()
			n.Voltage = &v
			return err
		}),
		p.oneOf("shape", []string{"RECT", "POLYGON"}, func() error {
			w, err := p.specialShape()
			n.Wiring = append(n.Wiring, w)
			return err
		}).many(),
		p.oneOf("wiring", snetWireKeywords, func() error {
			w, err := p.specialWiring()
			n.Wiring = append(n.Wiring, w)
			return err
		}).many(),
		p.feature("SOURCE", func() (err error) {
			hasSource = true
			a.Source, err = keyword(p, sourceTypes)
			return
		}),
		p.feature("FIXEDBUMP", func() error {
			a.FixedBump = true
			return nil
		}),
		p.feature("ORIGINAL", func() (err error) {
			a.Original, err = p.name("net name")
			return
		}),
		p.feature("USE", func() (err error) {
			hasUse = true
			a.Use, err = keyword(p, useModes)
			return
		}),
		p.feature("PATTERN", func() (err error) {
			hasPattern = true
			a.Pattern, err = keyword(p, patterns)
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
		return SpecialNet{}, err
	}

	for _, req := range []struct {
		kw   string
		seen bool
	}{{"SOURCE", hasSource}, {"USE", hasUse}, {"PATTERN", hasPattern}} {
		if !req.seen {
			tok, err := p.peek()
			if err != nil {
				return SpecialNet{}, err
			}
			return SpecialNet{}, missingClause("special net "+n.Name, req.kw, tok)
		}
	}
	return n, nil
}

// specialShape parses "RECT layer [+ MASK n] pt pt" or
// "POLYGON layer [+ MASK n] pt pt pt ..." after the leading '+'.
func (p *parser) specialShape() (SpecialWiring, error) {
	layer, mask, shape, err := p.layerShape()
	if err != nil {
		return SpecialWiring{}, err
	}
	return SpecialWiring{Kind: SpecialWiringShape, Layer: layer, Mask: mask, Shape: shape}, nil
}

// layerShape parses "(RECT|POLYGON) layer [+ MASK n] shape".
func (p *parser) layerShape() (string, *int32, Geometry, error) {
	tok, err := p.word("'RECT' or 'POLYGON'")
	if err != nil {
		return "", nil, Geometry{}, err
	}
	kind := GeometryKind(tok.Literal)
	if kind != GeometryRect && kind != GeometryPolygon {
		return "", nil, Geometry{}, unexpected("'RECT' or 'POLYGON'", tok)
	}
	layer, err := p.name("layer name")
	if err != nil {
		return "", nil, Geometry{}, err
	}
	mask, err := p.mask()
	if err != nil {
		return "", nil, Geometry{}, err
	}
	shape, err := p.shape(kind)
	if err != nil {
		return "", nil, Geometry{}, err
	}
	return layer, mask, shape, nil
}

// mask parses an optional "+ MASK n".
func (p *parser) mask() (*int32, error) {
	ok, err := p.acceptFeature("MASK")
	if err != nil || !ok {
		return nil, err
	}
	return p.optInteger()
}

// specialWiring parses "attr [shieldNet] segment (NEW segment)*" after the
// leading '+'.
func (p *parser) specialWiring() (SpecialWiring, error) {
	attr, err := keyword(p, snetWireAttrs)
	if err != nil {
		return SpecialWiring{}, err
	}
	w := SpecialWiring{Kind: SpecialWiringRouted, Attr: attr}
	if attr == SnetShield {
		if w.ShieldNet, err = p.name("shield net name"); err != nil {
			return SpecialWiring{}, err
		}
	}
	for {
		seg, err := p.specialSegment()
		if err != nil {
			return SpecialWiring{}, err
		}
		w.Segments = append(w.Segments, seg)
		more, err := p.acceptWord("NEW")
		if err != nil {
			return SpecialWiring{}, err
		}
		if !more {
			return w, nil
		}
	}
}

// specialSegment parses "layer width [+ SHAPE s] [+ STYLE n] [+ MASK n] route".
func (p *parser) specialSegment() (SpecialWireSegment, error) {
	var (
		seg SpecialWireSegment
		err error
	)
	if seg.Layer, err = p.name("layer name"); err != nil {
		return SpecialWireSegment{}, err
	}
	if seg.Width, err = p.integer(); err != nil {
		return SpecialWireSegment{}, err
	}
	err = p.permute(
		p.feature("SHAPE", func() (err error) {
			seg.Shape, err = optKeyword(p, wireShapes)
			return
		}),
		p.feature("STYLE", func() (err error) {
			seg.Style, err = p.optInteger()
			return
		}),
		p.feature("MASK", func() (err error) {
			seg.Mask, err = p.optInteger()
			return
		}),
	)
	if err != nil {
		return SpecialWireSegment{}, err
	}
	if seg.Route, err = p.routeBody(); err != nil {
		return SpecialWireSegment{}, err
	}
	return seg, nil
}
