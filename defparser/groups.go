package defparser

func (p *parser) groups() (*Section[Group], error) {
	return parseSection(p, "GROUPS", p.group)
}

func (p *parser) group() (Group, error) {
	tok, err := p.peek()
	if err != nil {
		return Group{}, err
	}
	g := Group{Pos: tok.Pos}
	if g.Name, err = p.name("group name"); err != nil {
		return Group{}, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return Group{}, err
		}
		if tok.Kind != TokenWord && tok.Kind != TokenStar {
			break
		}
		member, err := p.pattern("component name pattern")
		if err != nil {
			return Group{}, err
		}
		g.Members = append(g.Members, member)
	}
	if len(g.Members) == 0 {
		tok, err := p.peek()
		if err != nil {
			return Group{}, err
		}
		return Group{}, unexpected("component name pattern", tok)
	}

	hasRegion := false
	err = p.permute(
		p.feature("SOFT", func() (err error) {
			g.Soft, err = p.groupSoft()
			return
		}),
		p.feature("REGION", func() error {
			hasRegion = true
			return p.groupRegion(&g)
		}),
		p.propertyClause(&g.Props),
	)
	if err != nil {
		return Group{}, err
	}
	if !hasRegion {
		tok, err := p.peek()
		if err != nil {
			return Group{}, err
		}
		return Group{}, missingClause("group "+g.Name, "REGION", tok)
	}
	return g, nil
}

func (p *parser) groupSoft() (*GroupSoft, error) {
	s := &GroupSoft{}
	err := p.permute(
		p.bare("MAXHALFPERIMETER", func() (err error) {
			s.MaxHalfPerimeter, err = p.optInteger()
			return
		}),
		p.bare("MAXX", func() (err error) {
			s.MaxX, err = p.optInteger()
			return
		}),
		p.bare("MAXY", func() (err error) {
			s.MaxY, err = p.optInteger()
			return
		}),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// groupRegion parses a region name or an inline rectangle.
func (p *parser) groupRegion(g *Group) error {
	inline, err := p.is(TokenLParen)
	if err != nil {
		return err
	}
	if inline {
		r, err := p.rect()
		if err != nil {
			return err
		}
		g.RegionRect = &r
		return nil
	}
	g.RegionName, err = p.name("region name")
	return err
}
