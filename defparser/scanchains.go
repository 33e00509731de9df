package defparser

func (p *parser) scanChains() (*Section[ScanChain], error) {
	return parseSection(p, "SCANCHAINS", p.scanChain)
}

func (p *parser) scanChain() (ScanChain, error) {
	tok, err := p.peek()
	if err != nil {
		return ScanChain{}, err
	}
	sc := ScanChain{Pos: tok.Pos}
	if sc.Name, err = p.name("scan chain name"); err != nil {
		return ScanChain{}, err
	}

	err = p.permute(
		p.feature("PARTITION", func() error {
			var (
				part ScanPartition
				err  error
			)
			if part.Name, err = p.name("partition name"); err != nil {
				return err
			}
			ok, err := p.acceptWord("MAXBITS")
			if err != nil {
				return err
			}
			if ok {
				if part.MaxBits, err = p.optInteger(); err != nil {
					return err
				}
			}
			sc.Partition = &part
			return nil
		}),
		p.feature("COMMONSCANPINS", func() error {
			var pins ScanPins
			if err := p.permute(p.scanPins(&pins)...); err != nil {
				return err
			}
			sc.CommonScanPins = &pins
			return nil
		}),
		p.feature("START", func() (err error) {
			sc.Start, err = p.scanPoint()
			return
		}),
		p.feature("FLOATING", func() error {
			cells, err := p.scanCells()
			sc.Floating = append(sc.Floating, cells...)
			return err
		}).many(),
		p.feature("ORDERED", func() error {
			cells, err := p.scanCells()
			sc.Ordered = append(sc.Ordered, cells)
			return err
		}).many(),
		p.feature("STOP", func() (err error) {
			sc.Stop, err = p.scanPoint()
			return
		}),
	)
	if err != nil {
		return ScanChain{}, err
	}
	return sc, nil
}

// scanPoint parses "PIN name" or "component [pin]".
func (p *parser) scanPoint() (*ScanPoint, error) {
	var (
		sp  ScanPoint
		err error
	)
	isPin, err := p.acceptWord("PIN")
	if err != nil {
		return nil, err
	}
	if isPin {
		if sp.Pin, err = p.name("pin name"); err != nil {
			return nil, err
		}
		return &sp, nil
	}
	if sp.Component, err = p.name("component name"); err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenWord {
		if sp.Pin, err = p.name("pin name"); err != nil {
			return nil, err
		}
	}
	return &sp, nil
}

// scanCells parses one or more "component [( IN pin )] [( OUT pin )] [( BITS n )]".
func (p *parser) scanCells() ([]ScanCell, error) {
	var cells []ScanCell
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenWord {
			break
		}
		var cell ScanCell
		if cell.Name, err = p.name("component name"); err != nil {
			return nil, err
		}
		pins := ScanPins{}
		clauses := append(p.scanPins(&pins), p.paren("BITS", func() (err error) {
			cell.Bits, err = p.optInteger()
			return
		}))
		if err := p.permute(clauses...); err != nil {
			return nil, err
		}
		cell.In, cell.Out = pins.In, pins.Out
		cells = append(cells, cell)
	}
	if len(cells) == 0 {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		return nil, unexpected("component name", tok)
	}
	return cells, nil
}

func (p *parser) scanPins(pins *ScanPins) []clause {
	return []clause{
		p.paren("IN", func() (err error) {
			pins.In, err = p.name("pin name")
			return
		}),
		p.paren("OUT", func() (err error) {
			pins.Out, err = p.name("pin name")
			return
		}),
	}
}

// paren builds a clause written as "( kw ... )".
func (p *parser) paren(kw string, parse func() error) clause {
	return clause{
		name: "( " + kw + " )",
		match: func() (bool, error) {
			open, err := p.peek()
			if err != nil || open.Kind != TokenLParen {
				return false, err
			}
			tok, err := p.peekAt(1)
			if err != nil {
				return false, err
			}
			return tok.Kind == TokenWord && tok.Literal == kw, nil
		},
		parse: func() error {
			p.i += 2
			if err := parse(); err != nil {
				return err
			}
			_, err := p.expect(TokenRParen)
			return err
		},
	}
}
