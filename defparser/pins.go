package defparser

var (
	portShapeKeywords = []string{"LAYER", "POLYGON", "VIA"}
	portStatuses      = []string{"PLACED", "FIXED", "COVER", "COVERED"}
)

func (p *parser) pins() (*Section[Pin], error) {
	return parseSection(p, "PINS", p.pin)
}

func (p *parser) pin() (Pin, error) {
	tok, err := p.peek()
	if err != nil {
		return Pin{}, err
	}
	pin := Pin{Pos: tok.Pos}
	if pin.Name, err = p.name("pin name"); err != nil {
		return Pin{}, err
	}
	if err := p.expectFeature("NET"); err != nil {
		return Pin{}, err
	}
	if pin.Net, err = p.name("net name"); err != nil {
		return Pin{}, err
	}

	clauses := []clause{
		p.feature("SPECIAL", func() error {
			pin.Special = true
			return nil
		}),
		p.feature("DIRECTION", func() (err error) {
			pin.Direction, err = optKeyword(p, pinDirections)
			return
		}),
		p.feature("NETEXPR", func() (err error) {
			pin.NetExpr, err = p.text("net expression")
			return
		}),
		p.feature("SUPPLYSENSITIVITY", func() (err error) {
			pin.SupplySensitivity, err = p.name("pin name")
			return
		}),
		p.feature("GROUNDSENSITIVITY", func() (err error) {
			pin.GroundSensitivity, err = p.name("pin name")
			return
		}),
		p.feature("USE", func() (err error) {
			pin.Use, err = optKeyword(p, useModes)
			return
		}),
		p.feature(string(AntennaModelKind), func() error {
			m, err := keyword(p, antennaModels)
			pin.Antennas = append(pin.Antennas, Antenna{Kind: AntennaModelKind, Model: m})
			return err
		}).many(),
	}
	for _, kind := range []AntennaKind{
		AntennaPartialMetalArea, AntennaPartialMetalSideArea, AntennaPartialCutArea,
		AntennaDiffArea, AntennaGateArea,
	} {
		clauses = append(clauses, p.antennaClause(&pin, kind, false))
	}
	for _, kind := range []AntennaKind{AntennaMaxAreaCar, AntennaMaxSideAreaCar, AntennaMaxCutCar} {
		clauses = append(clauses, p.antennaClause(&pin, kind, true))
	}
	if err := p.permute(clauses...); err != nil {
		return Pin{}, err
	}

	if pin.Ports, err = p.ports(); err != nil {
		return Pin{}, err
	}
	return pin, nil
}

// antennaClause builds the repeatable "+ kind value [LAYER layer]" clause.
func (p *parser) antennaClause(pin *Pin, kind AntennaKind, layerRequired bool) clause {
	return p.feature(string(kind), func() error {
		a := Antenna{Kind: kind}
		var err error
		if a.Value, err = p.integer(); err != nil {
			return err
		}
		hasLayer := true
		if layerRequired {
			err = p.expectWord("LAYER")
		} else {
			hasLayer, err = p.acceptWord("LAYER")
		}
		if err != nil {
			return err
		}
		if hasLayer {
			if a.Layer, err = p.name("layer name"); err != nil {
				return err
			}
		}
		pin.Antennas = append(pin.Antennas, a)
		return nil
	}).many()
}

// ports parses one or more "+ PORT" blocks, or a single port without the
// PORT keyword.
func (p *parser) ports() ([]Port, error) {
	explicit, err := p.isFeature("PORT")
	if err != nil {
		return nil, err
	}
	if !explicit {
		port, err := p.port()
		if err != nil {
			return nil, err
		}
		return []Port{port}, nil
	}

	var out []Port
	for {
		ok, err := p.acceptFeature("PORT")
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		port, err := p.port()
		if err != nil {
			return nil, err
		}
		out = append(out, port)
	}
}

func (p *parser) port() (Port, error) {
	var port Port
	placed := false
	err := p.permute(
		p.oneOf("port shape", portShapeKeywords, func() error {
			s, err := p.portShape()
			port.Shapes = append(port.Shapes, s)
			return err
		}).many(),
		p.oneOf("port placement", portStatuses, func() (err error) {
			placed = true
			port.Placement, err = p.portPlacement()
			return
		}),
	)
	if err != nil {
		return Port{}, err
	}

	tok, err := p.peek()
	if err != nil {
		return Port{}, err
	}
	if len(port.Shapes) == 0 {
		return Port{}, unexpected("'+ LAYER', '+ POLYGON' or '+ VIA'", tok)
	}
	if !placed {
		return Port{}, unexpected("'+ PLACED', '+ FIXED' or '+ COVER'", tok)
	}
	return port, nil
}

// portShape parses one LAYER, POLYGON or VIA port element after its '+'.
func (p *parser) portShape() (PortShape, error) {
	tok, err := p.word("port shape")
	if err != nil {
		return PortShape{}, err
	}
	s := PortShape{Kind: PortShapeKind(tok.Literal)}
	if s.Layer, err = p.name("layer or via name"); err != nil {
		return PortShape{}, err
	}

	rules := []clause{
		p.feature("MASK", func() (err error) {
			s.Mask, err = p.optInteger()
			return
		}),
	}
	if s.Kind != PortVia {
		rules = append(rules, p.oneOf("SPACING or DESIGNRULEWIDTH", []string{"SPACING", "DESIGNRULEWIDTH"}, func() error {
			kw, err := p.word("'SPACING' or 'DESIGNRULEWIDTH'")
			if err != nil {
				return err
			}
			n, err := p.optInteger()
			if kw.Literal == "SPACING" {
				s.Spacing = n
			} else {
				s.DesignRuleWidth = n
			}
			return err
		}))
	}
	if err := p.permute(rules...); err != nil {
		return PortShape{}, err
	}

	switch s.Kind {
	case PortLayer:
		s.Shape, err = p.shape(GeometryRect)
	case PortPolygon:
		s.Shape, err = p.shape(GeometryPolygon)
	case PortVia:
		s.At, err = p.point()
	default:
		return PortShape{}, unexpected("'LAYER', 'POLYGON' or 'VIA'", tok)
	}
	if err != nil {
		return PortShape{}, err
	}
	return s, nil
}

// portPlacement parses "status pt orient" after its '+'. COVER is accepted
// as the DEF spelling of COVERED.
func (p *parser) portPlacement() (PortPlacement, error) {
	var (
		pl  PortPlacement
		err error
	)
	covered, err := p.acceptWord("COVER")
	if err != nil {
		return PortPlacement{}, err
	}
	if covered {
		pl.Status = PinCovered
	} else if pl.Status, err = keyword(p, pinLocations); err != nil {
		return PortPlacement{}, err
	}
	if pl.Location, err = p.point(); err != nil {
		return PortPlacement{}, err
	}
	if pl.Orient, err = p.orient(); err != nil {
		return PortPlacement{}, err
	}
	return pl, nil
}
