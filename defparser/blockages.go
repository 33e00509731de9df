package defparser

func (p *parser) blockages() (*Section[Blockage], error) {
	return parseSection(p, "BLOCKAGES", p.blockage)
}

func (p *parser) blockage() (Blockage, error) {
	tok, err := p.word("'LAYER' or 'PLACEMENT'")
	if err != nil {
		return Blockage{}, err
	}
	b := Blockage{Pos: tok.Pos}

	component := p.feature("COMPONENT", func() (err error) {
		b.Component, err = p.name("component name")
		return
	})
	pushdown := p.feature("PUSHDOWN", func() error {
		b.Pushdown = true
		return nil
	})

	switch tok.Literal {
	case "LAYER":
		b.Kind = BlockageLayer
		if b.Layer, err = p.name("layer name"); err != nil {
			return Blockage{}, err
		}
		err = p.permute(
			component,
			pushdown,
			p.feature("SLOTS", func() error {
				b.Slots = true
				return nil
			}),
			p.feature("FILLS", func() error {
				b.Fills = true
				return nil
			}),
			p.feature("EXCEPTPGNET", func() error {
				b.ExceptPGNet = true
				return nil
			}),
			p.oneOf("SPACING or DESIGNRULEWIDTH", []string{"SPACING", "DESIGNRULEWIDTH"}, func() error {
				kw, err := p.word("'SPACING' or 'DESIGNRULEWIDTH'")
				if err != nil {
					return err
				}
				n, err := p.optInteger()
				if kw.Literal == "SPACING" {
					b.Spacing = n
				} else {
					b.DesignRuleWidth = n
				}
				return err
			}),
			p.feature("MASK", func() (err error) {
				b.Mask, err = p.optInteger()
				return
			}),
		)
	case "PLACEMENT":
		b.Kind = BlockagePlacement
		err = p.permute(
			component,
			pushdown,
			p.feature("SOFT", func() error {
				b.Soft = true
				return nil
			}),
			p.feature("PARTIAL", func() error {
				f, err := p.number()
				b.Partial = &f
				return err
			}),
		)
	default:
		return Blockage{}, unexpected("'LAYER' or 'PLACEMENT'", tok)
	}
	if err != nil {
		return Blockage{}, err
	}

	if b.Shapes, err = p.geometries(1); err != nil {
		return Blockage{}, err
	}
	return b, nil
}
