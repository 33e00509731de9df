package defparser

func (p *parser) fills() (*Section[Fill], error) {
	return parseSection(p, "FILLS", p.fill)
}

func (p *parser) fill() (Fill, error) {
	tok, err := p.word("'LAYER' or 'VIA'")
	if err != nil {
		return Fill{}, err
	}
	f := Fill{Pos: tok.Pos}
	switch tok.Literal {
	case "LAYER":
		f.Kind = FillLayer
		f.Layer, err = p.name("layer name")
	case "VIA":
		f.Kind = FillVia
		f.Via, err = p.name("via name")
	default:
		return Fill{}, unexpected("'LAYER' or 'VIA'", tok)
	}
	if err != nil {
		return Fill{}, err
	}

	err = p.permute(
		p.feature("MASK", func() (err error) {
			f.Mask, err = p.optInteger()
			return
		}),
		p.feature("OPC", func() error {
			f.OPC = true
			return nil
		}),
	)
	if err != nil {
		return Fill{}, err
	}

	if f.Kind == FillLayer {
		f.Shapes, err = p.geometries(1)
	} else {
		f.Points, err = p.pointList(1)
	}
	if err != nil {
		return Fill{}, err
	}
	return f, nil
}
