package defparser

var placementStatuses = []string{"FIXED", "COVER", "PLACED", "UNPLACED"}

func (p *parser) components() (*Section[Component], error) {
	return parseSection(p, "COMPONENTS", p.component)
}

func (p *parser) component() (Component, error) {
	tok, err := p.peek()
	if err != nil {
		return Component{}, err
	}
	c := Component{Pos: tok.Pos}
	if c.Name, err = p.name("component name"); err != nil {
		return Component{}, err
	}
	if c.Model, err = p.name("model name"); err != nil {
		return Component{}, err
	}

	err = p.permute(
		p.feature("EEQMASTER", func() (err error) {
			c.EEQMaster, err = p.name("EEQMASTER name")
			return
		}),
		p.feature("GENERATE", func() (err error) {
			c.Generate, err = p.name("GENERATE name")
			return
		}),
		p.feature("SOURCE", func() (err error) {
			c.Source, err = optKeyword(p, sourceTypes)
			return
		}),
		p.feature("WEIGHT", func() (err error) {
			c.Weight, err = p.optInteger()
			return
		}),
		p.feature("REGION", func() (err error) {
			c.Region, err = p.name("region name")
			return
		}),
		p.oneOf("placement status", placementStatuses, func() (err error) {
			c.Placement, err = p.placement()
			return
		}),
		p.feature("HALO", func() (err error) {
			c.Halo, err = p.halo()
			return
		}),
		p.feature("ROUTEHALO", func() (err error) {
			c.RouteHalo, err = p.routeHalo()
			return
		}),
		p.propertyClause(&c.Props),
	)
	if err != nil {
		return Component{}, err
	}
	return c, nil
}

// placement parses "status [pt orient]". Only UNPLACED may omit the
// location.
func (p *parser) placement() (*Placement, error) {
	status, err := keyword(p, componentStatuses)
	if err != nil {
		return nil, err
	}
	pl := &Placement{Status: status}
	if status == StatusUnplaced {
		ok, err := p.is(TokenLParen)
		if err != nil || !ok {
			return pl, err
		}
	}
	if pl.Location, err = p.point(); err != nil {
		return nil, err
	}
	if pl.Orient, err = p.orient(); err != nil {
		return nil, err
	}
	pl.HasLocation = true
	return pl, nil
}

func (p *parser) halo() (*Halo, error) {
	soft, err := p.acceptWord("SOFT")
	if err != nil {
		return nil, err
	}
	h := &Halo{Soft: soft}
	for _, dst := range []*int32{&h.Left, &h.Bottom, &h.Right, &h.Top} {
		if *dst, err = p.integer(); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (p *parser) routeHalo() (*RouteHalo, error) {
	var (
		rh  RouteHalo
		err error
	)
	if rh.Distance, err = p.integer(); err != nil {
		return nil, err
	}
	if rh.MinLayer, err = p.name("layer name"); err != nil {
		return nil, err
	}
	if rh.MaxLayer, err = p.name("layer name"); err != nil {
		return nil, err
	}
	return &rh, nil
}
