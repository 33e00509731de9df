package defparser

func (p *parser) pinProperties() (*Section[PinProperty], error) {
	return parseSection(p, "PINPROPERTIES", p.pinProperty)
}

func (p *parser) pinProperty() (PinProperty, error) {
	tok, err := p.peek()
	if err != nil {
		return PinProperty{}, err
	}
	pp := PinProperty{Pos: tok.Pos}
	isPin, err := p.acceptWord("PIN")
	if err != nil {
		return PinProperty{}, err
	}
	if !isPin {
		if pp.Component, err = p.name("component name"); err != nil {
			return PinProperty{}, err
		}
	}
	if pp.Pin, err = p.name("pin name"); err != nil {
		return PinProperty{}, err
	}
	if pp.Props, err = p.properties(); err != nil {
		return PinProperty{}, err
	}
	return pp, nil
}
