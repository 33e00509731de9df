package defparser

func (p *parser) nonDefaultRules() (*Section[NonDefaultRule], error) {
	return parseSection(p, "NONDEFAULTRULES", p.nonDefaultRule)
}

func (p *parser) nonDefaultRule() (NonDefaultRule, error) {
	tok, err := p.peek()
	if err != nil {
		return NonDefaultRule{}, err
	}
	r := NonDefaultRule{Pos: tok.Pos}
	if r.Name, err = p.name("rule name"); err != nil {
		return NonDefaultRule{}, err
	}

	err = p.permute(
		p.feature("HARDSPACING", func() error {
			r.HardSpacing = true
			return nil
		}),
		p.feature("LAYER", func() error {
			l, err := p.ndrLayer()
			r.Layers = append(r.Layers, l)
			return err
		}).many(),
		p.feature("VIA", func() error {
			name, err := p.name("via name")
			r.Vias = append(r.Vias, name)
			return err
		}).many(),
		p.feature("VIARULE", func() error {
			name, err := p.name("via rule name")
			r.ViaRules = append(r.ViaRules, name)
			return err
		}).many(),
		p.feature("MINCUTS", func() error {
			var (
				mc  MinCut
				err error
			)
			if mc.Layer, err = p.name("cut layer name"); err != nil {
				return err
			}
			if mc.Cuts, err = p.integer(); err != nil {
				return err
			}
			r.MinCuts = append(r.MinCuts, mc)
			return nil
		}).many(),
		p.propertyClause(&r.Props),
	)
	if err != nil {
		return NonDefaultRule{}, err
	}
	return r, nil
}

// ndrLayer parses "name WIDTH n [DIAGWIDTH n] [SPACING n] [WIREEXT n]".
func (p *parser) ndrLayer() (NDRLayer, error) {
	var (
		l   NDRLayer
		err error
	)
	if l.Name, err = p.name("layer name"); err != nil {
		return NDRLayer{}, err
	}
	if err := p.expectWord("WIDTH"); err != nil {
		return NDRLayer{}, err
	}
	if l.Width, err = p.integer(); err != nil {
		return NDRLayer{}, err
	}
	err = p.permute(
		p.bare("DIAGWIDTH", func() (err error) {
			l.DiagWidth, err = p.optInteger()
			return
		}),
		p.bare("SPACING", func() (err error) {
			l.Spacing, err = p.optInteger()
			return
		}),
		p.bare("WIREEXT", func() (err error) {
			l.WireExt, err = p.optInteger()
			return
		}),
	)
	if err != nil {
		return NDRLayer{}, err
	}
	return l, nil
}
