package defparser

func (p *parser) slots() (*Section[Slot], error) {
	return parseSection(p, "SLOTS", p.slot)
}

func (p *parser) slot() (Slot, error) {
	tok, err := p.peek()
	if err != nil {
		return Slot{}, err
	}
	s := Slot{Pos: tok.Pos}
	if err := p.expectWord("LAYER"); err != nil {
		return Slot{}, err
	}
	if s.Layer, err = p.name("layer name"); err != nil {
		return Slot{}, err
	}
	if s.Shapes, err = p.geometries(1); err != nil {
		return Slot{}, err
	}
	return s, nil
}
