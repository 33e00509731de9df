package defparser

func (p *parser) vias() (*Section[Via], error) {
	return parseSection(p, "VIAS", p.via)
}

// via parses a generated via when "+ VIARULE" follows the name and a fixed
// via otherwise.
func (p *parser) via() (Via, error) {
	tok, err := p.peek()
	if err != nil {
		return Via{}, err
	}
	v := Via{Pos: tok.Pos}
	if v.Name, err = p.name("via name"); err != nil {
		return Via{}, err
	}

	generated, err := p.isFeature("VIARULE")
	if err != nil {
		return Via{}, err
	}
	if generated {
		v.Kind = ViaGenerated
		v.Generated, err = p.generatedVia()
		if err != nil {
			return Via{}, err
		}
		return v, nil
	}

	v.Kind = ViaFixed
	for {
		kw, err := p.featureIn("RECT", "POLYGON")
		if err != nil {
			return Via{}, err
		}
		if kw == "" {
			return v, nil
		}
		p.i++
		layer, mask, shape, err := p.layerShape()
		if err != nil {
			return Via{}, err
		}
		v.Shapes = append(v.Shapes, ViaShape{Layer: layer, Mask: mask, Shape: shape})
	}
}

func (p *parser) generatedVia() (*GeneratedVia, error) {
	g := &GeneratedVia{}
	var err error

	if err = p.expectFeature("VIARULE"); err != nil {
		return nil, err
	}
	if g.ViaRule, err = p.name("via rule name"); err != nil {
		return nil, err
	}
	if err = p.expectFeature("CUTSIZE"); err != nil {
		return nil, err
	}
	if g.CutSize, err = p.pair(); err != nil {
		return nil, err
	}
	if err = p.expectFeature("LAYERS"); err != nil {
		return nil, err
	}
	for _, dst := range []*string{&g.Layers.Bottom, &g.Layers.Cut, &g.Layers.Top} {
		if *dst, err = p.name("layer name"); err != nil {
			return nil, err
		}
	}
	if err = p.expectFeature("CUTSPACING"); err != nil {
		return nil, err
	}
	if g.CutSpacing, err = p.pair(); err != nil {
		return nil, err
	}
	if err = p.expectFeature("ENCLOSURE"); err != nil {
		return nil, err
	}
	if g.Enclosure, err = p.enclosure(); err != nil {
		return nil, err
	}

	err = p.permute(
		p.feature("ROWCOL", func() error {
			var rc RowCol
			var err error
			if rc.Rows, err = p.integer(); err != nil {
				return err
			}
			if rc.Cols, err = p.integer(); err != nil {
				return err
			}
			g.RowCol = &rc
			return nil
		}),
		p.feature("ORIGIN", func() error {
			pt, err := p.pair()
			g.Origin = &pt
			return err
		}),
		p.feature("OFFSET", func() error {
			off, err := p.enclosure()
			g.Offset = &off
			return err
		}),
		p.feature("PATTERN", func() (err error) {
			g.Pattern, err = p.text("cut pattern")
			return
		}),
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// pair parses two bare integers.
func (p *parser) pair() (Point, error) {
	x, err := p.integer()
	if err != nil {
		return Point{}, err
	}
	y, err := p.integer()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func (p *parser) enclosure() (ViaEnclosure, error) {
	var (
		e   ViaEnclosure
		err error
	)
	for _, dst := range []*int32{&e.BottomX, &e.BottomY, &e.TopX, &e.TopY} {
		if *dst, err = p.integer(); err != nil {
			return ViaEnclosure{}, err
		}
	}
	return e, nil
}
