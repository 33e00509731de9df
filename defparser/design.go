package defparser

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var propertyObjects = []string{
	"DESIGN", "REGION", "GROUP", "COMPONENT", "COMPONENTPIN",
	"NET", "SPECIALNET", "ROW", "NONDEFAULTRULE",
}

// designConfig parses design-level clauses in any order until none applies.
func (p *parser) designConfig() (DesignConfig, error) {
	var cfg DesignConfig
	for {
		ok, err := p.configStatement(&cfg)
		if err != nil {
			return DesignConfig{}, err
		}
		if !ok {
			return cfg, nil
		}
	}
}

// configStatement parses one DESIGN, TECHNOLOGY, UNITS, PROPERTYDEFINITIONS,
// DIEAREA, ROW, TRACKS or GCELLGRID statement and reports whether one was
// found.
func (p *parser) configStatement(cfg *DesignConfig) (bool, error) {
	tok, err := p.peek()
	if err != nil || tok.Kind != TokenWord {
		return false, err
	}

	switch tok.Literal {
	case "DESIGN":
		p.i++
		cfg.Name, err = p.name("design name")
	case "TECHNOLOGY":
		p.i++
		cfg.Technology, err = p.name("technology name")
	case "UNITS":
		p.i++
		cfg.Units, err = p.units()
	case "PROPERTYDEFINITIONS":
		p.i++
		cfg.PropertyDefinitions, err = p.propertyDefinitions()
		return err == nil, err
	case "DIEAREA":
		p.i++
		cfg.DieArea, err = p.pointList(2)
	case "ROW":
		p.i++
		var row Row
		row, err = p.row()
		cfg.Rows = append(cfg.Rows, row)
	case "TRACKS":
		p.i++
		var t Track
		t, err = p.track()
		cfg.Tracks = append(cfg.Tracks, t)
	case "GCELLGRID":
		p.i++
		var g GCellGrid
		g, err = p.gcellGrid()
		cfg.GCellGrids = append(cfg.GCellGrids, g)
	default:
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := p.endStatement(tok.Literal); err != nil {
		return false, err
	}
	return true, nil
}

func (p *parser) units() (*int32, error) {
	if err := p.expectWord("DISTANCE"); err != nil {
		return nil, err
	}
	if err := p.expectWord("MICRONS"); err != nil {
		return nil, err
	}
	return p.optInteger()
}

// propertyDefinitions parses the entries up to END PROPERTYDEFINITIONS.
func (p *parser) propertyDefinitions() ([]PropertyDefinition, error) {
	var defs []PropertyDefinition
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == TokenEOF:
			return nil, unterminated("PROPERTYDEFINITIONS", tok.Pos)
		case tok.Kind == TokenWord && tok.Literal == "END":
			p.i++
			if err := p.expectWord("PROPERTYDEFINITIONS"); err != nil {
				return nil, err
			}
			return defs, nil
		}
		def, err := p.propertyDefinition()
		if err != nil {
			return nil, err
		}
		if err := p.endStatement("PROPERTYDEFINITIONS"); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
}

// propertyDefinition parses "object name type [RANGE min max] [default]".
func (p *parser) propertyDefinition() (PropertyDefinition, error) {
	obj, err := p.word("property object type")
	if err != nil {
		return PropertyDefinition{}, err
	}
	if !lo.Contains(propertyObjects, obj.Literal) {
		return PropertyDefinition{}, unknownKeyword("property object type", obj.Literal, obj.Pos)
	}
	def := PropertyDefinition{Object: obj.Literal}
	if def.Name, err = p.name("property name"); err != nil {
		return PropertyDefinition{}, err
	}

	typ, err := p.word("'INTEGER', 'REAL' or 'STRING'")
	if err != nil {
		return PropertyDefinition{}, err
	}
	def.Type = ValueKind(typ.Literal)
	switch def.Type {
	case ValueInt, ValueReal:
		ok, err := p.acceptWord("RANGE")
		if err != nil {
			return PropertyDefinition{}, err
		}
		if ok {
			var r PropertyRange
			if r.Min, err = p.number(); err != nil {
				return PropertyDefinition{}, err
			}
			if r.Max, err = p.number(); err != nil {
				return PropertyDefinition{}, err
			}
			def.Range = &r
		}
	case ValueString:
	default:
		return PropertyDefinition{}, unknownKeyword("property type", typ.Literal, typ.Pos)
	}

	tok, err := p.peek()
	if err != nil {
		return PropertyDefinition{}, err
	}
	if tok.Kind == TokenSemicolon {
		return def, nil
	}
	p.i++
	v, err := ParseValue(tok)
	if err != nil {
		return PropertyDefinition{}, err
	}
	if def.Type == ValueReal && v.Kind == ValueInt {
		v = PropertyValue{Kind: ValueReal, Real: float64(v.Int), Raw: v.Raw}
	}
	if v.Kind != def.Type {
		return PropertyDefinition{}, unexpected(strings.ToLower(string(def.Type))+" default value", tok)
	}
	def.Default = &v
	return def, nil
}

// row parses "name site x y orient [DO n BY n [STEP x y]] (+ PROPERTY)*".
func (p *parser) row() (Row, error) {
	var (
		r   Row
		err error
	)
	if r.Name, err = p.name("row name"); err != nil {
		return Row{}, err
	}
	if r.Site, err = p.name("site name"); err != nil {
		return Row{}, err
	}
	if r.Origin, err = p.pair(); err != nil {
		return Row{}, err
	}
	if r.Orient, err = p.orient(); err != nil {
		return Row{}, err
	}
	do, err := p.acceptWord("DO")
	if err != nil {
		return Row{}, err
	}
	if do {
		if r.NumX, err = p.integer(); err != nil {
			return Row{}, err
		}
		if err := p.expectWord("BY"); err != nil {
			return Row{}, err
		}
		if r.NumY, err = p.integer(); err != nil {
			return Row{}, err
		}
		step, err := p.acceptWord("STEP")
		if err != nil {
			return Row{}, err
		}
		if step {
			if r.StepX, err = p.integer(); err != nil {
				return Row{}, err
			}
			if r.StepY, err = p.integer(); err != nil {
				return Row{}, err
			}
		}
	}
	if r.Props, err = p.properties(); err != nil {
		return Row{}, err
	}
	return r, nil
}

// track parses "axis start DO n STEP s [MASK n [SAMEMASK]] [LAYER name+]".
func (p *parser) track() (Track, error) {
	var (
		t   Track
		err error
	)
	if t.Axis, t.Start, t.Num, t.Step, err = p.grid(); err != nil {
		return Track{}, err
	}
	ok, err := p.acceptWord("MASK")
	if err != nil {
		return Track{}, err
	}
	if ok {
		if t.Mask, err = p.optInteger(); err != nil {
			return Track{}, err
		}
		if t.SameMask, err = p.acceptWord("SAMEMASK"); err != nil {
			return Track{}, err
		}
	}
	ok, err = p.acceptWord("LAYER")
	if err != nil || !ok {
		return t, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return Track{}, err
		}
		if tok.Kind != TokenWord {
			break
		}
		layer, err := p.name("layer name")
		if err != nil {
			return Track{}, err
		}
		t.Layers = append(t.Layers, layer)
	}
	if len(t.Layers) == 0 {
		tok, err := p.peek()
		if err != nil {
			return Track{}, err
		}
		return Track{}, unexpected("layer name", tok)
	}
	return t, nil
}

func (p *parser) gcellGrid() (GCellGrid, error) {
	var (
		g   GCellGrid
		err error
	)
	if g.Axis, g.Start, g.Num, g.Step, err = p.grid(); err != nil {
		return GCellGrid{}, err
	}
	return g, nil
}

// grid parses the "axis start DO n STEP s" prefix shared by TRACKS and
// GCELLGRID.
func (p *parser) grid() (Axis, int32, int32, int32, error) {
	tok, err := p.word("'X' or 'Y'")
	if err != nil {
		return "", 0, 0, 0, err
	}
	axis, err := ParseAxis(tok.Literal)
	if err != nil {
		return "", 0, 0, 0, unknownKeyword("axis", tok.Literal, tok.Pos)
	}
	start, err := p.integer()
	if err != nil {
		return "", 0, 0, 0, err
	}
	if err := p.expectWord("DO"); err != nil {
		return "", 0, 0, 0, err
	}
	num, err := p.integer()
	if err != nil {
		return "", 0, 0, 0, err
	}
	if err := p.expectWord("STEP"); err != nil {
		return "", 0, 0, 0, err
	}
	step, err := p.integer()
	if err != nil {
		return "", 0, 0, 0, err
	}
	return axis, start, num, step, nil
}

// design parses a whole DEF file up to END DESIGN. Header, config and
// section statements may appear in any order; each section at most once.
func (p *parser) design() (*Design, error) {
	d := &Design{}
	sawDesign := false
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == TokenEOF:
			return nil, unterminated("DESIGN", tok.Pos)
		case tok.Kind != TokenWord:
			return nil, unexpected("statement", tok)
		case tok.Literal == "END":
			p.i++
			if err := p.expectWord("DESIGN"); err != nil {
				return nil, err
			}
			if !sawDesign {
				return nil, &SyntaxError{
					ParseError: ParseError{Message: "missing DESIGN statement", Pos: tok.Pos},
					Expected:   "'DESIGN'",
					Got:        "'END DESIGN'",
				}
			}
			p.log.Debug("parsed design", zap.String("design", d.Config.Name))
			return d, nil
		case tok.Literal == "DESIGN":
			sawDesign = true
		}

		ok, err := p.headerStatement(&d.Header)
		if err != nil {
			return nil, err
		}
		if ok {
			continue
		}
		if ok, err = p.configStatement(&d.Config); err != nil {
			return nil, err
		}
		if ok {
			continue
		}
		if ok, err = p.designStatement(d); err != nil {
			return nil, err
		}
		if ok {
			continue
		}
		if ok, err = p.sectionStatement(d); err != nil {
			return nil, err
		}
		if !ok {
			return nil, unexpected("statement", tok)
		}
	}
}

// designStatement parses HISTORY and COMPONENTMASKSHIFT.
func (p *parser) designStatement(d *Design) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	switch tok.Literal {
	case "HISTORY":
		p.i++
		var words []string
		for {
			t, err := p.peek()
			if err != nil {
				return false, err
			}
			if t.Kind == TokenSemicolon || t.Kind == TokenEOF {
				break
			}
			p.i++
			words = append(words, t.Literal)
		}
		d.History = append(d.History, strings.Join(words, " "))
	case "COMPONENTMASKSHIFT":
		p.i++
		for {
			t, err := p.peek()
			if err != nil {
				return false, err
			}
			if t.Kind != TokenWord {
				break
			}
			layer, err := p.name("layer name")
			if err != nil {
				return false, err
			}
			d.ComponentMaskShift = append(d.ComponentMaskShift, layer)
		}
		if len(d.ComponentMaskShift) == 0 {
			t, err := p.peek()
			if err != nil {
				return false, err
			}
			return false, unexpected("layer name", t)
		}
	default:
		return false, nil
	}
	if err := p.endStatement(tok.Literal); err != nil {
		return false, err
	}
	return true, nil
}

// sectionStatement dispatches to the grammar of a framed section.
func (p *parser) sectionStatement(d *Design) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	switch tok.Literal {
	case "VIAS":
		return true, setSection(tok, &d.Vias, p.vias)
	case "STYLES":
		return true, setSection(tok, &d.Styles, p.styles)
	case "NONDEFAULTRULES":
		return true, setSection(tok, &d.NonDefaultRules, p.nonDefaultRules)
	case "REGIONS":
		return true, setSection(tok, &d.Regions, p.regions)
	case "COMPONENTS":
		return true, setSection(tok, &d.Components, p.components)
	case "PINS":
		return true, setSection(tok, &d.Pins, p.pins)
	case "PINPROPERTIES":
		return true, setSection(tok, &d.PinProperties, p.pinProperties)
	case "BLOCKAGES":
		return true, setSection(tok, &d.Blockages, p.blockages)
	case "SLOTS":
		return true, setSection(tok, &d.Slots, p.slots)
	case "FILLS":
		return true, setSection(tok, &d.Fills, p.fills)
	case "SPECIALNETS":
		return true, setSection(tok, &d.SpecialNets, p.specialNets)
	case "NETS":
		return true, setSection(tok, &d.Nets, p.nets)
	case "SCANCHAINS":
		return true, setSection(tok, &d.ScanChains, p.scanChains)
	case "GROUPS":
		return true, setSection(tok, &d.Groups, p.groups)
	}
	return false, nil
}

func setSection[T any](tok Token, dst **Section[T], parse func() (*Section[T], error)) error {
	if *dst != nil {
		return &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("duplicate %s section", tok.Literal),
				Pos:     tok.Pos,
			},
			Expected: "one " + tok.Literal + " section",
			Got:      tok.describe(),
		}
	}
	s, err := parse()
	if err != nil {
		return err
	}
	*dst = s
	return nil
}
