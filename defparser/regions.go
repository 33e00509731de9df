package defparser

func (p *parser) regions() (*Section[Region], error) {
	return parseSection(p, "REGIONS", p.region)
}

func (p *parser) region() (Region, error) {
	tok, err := p.peek()
	if err != nil {
		return Region{}, err
	}
	r := Region{Pos: tok.Pos}
	if r.Name, err = p.name("region name"); err != nil {
		return Region{}, err
	}
	if r.Rects, err = p.rects(1); err != nil {
		return Region{}, err
	}
	err = p.permute(
		p.feature("TYPE", func() (err error) {
			r.Type, err = optKeyword(p, regionTypes)
			return
		}),
		p.propertyClause(&r.Props),
	)
	if err != nil {
		return Region{}, err
	}
	return r, nil
}

// rects parses at least min consecutive "pt pt" rectangles.
func (p *parser) rects(min int) ([]Rect, error) {
	var out []Rect
	for {
		ok, err := p.is(TokenLParen)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		r, err := p.rect()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if len(out) < min {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		return nil, unexpected("'(' starting rectangle", tok)
	}
	return out, nil
}
