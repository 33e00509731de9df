package defparser

func (p *parser) styles() (*Section[Style], error) {
	return parseSection(p, "STYLES", p.style)
}

// style parses "STYLE n pt pt pt ...". The outline is a closed polygon.
func (p *parser) style() (Style, error) {
	tok, err := p.peek()
	if err != nil {
		return Style{}, err
	}
	s := Style{Pos: tok.Pos}
	if err := p.expectWord("STYLE"); err != nil {
		return Style{}, err
	}
	if s.Number, err = p.integer(); err != nil {
		return Style{}, err
	}
	if s.Points, err = p.pointList(3); err != nil {
		return Style{}, err
	}
	return s, nil
}
