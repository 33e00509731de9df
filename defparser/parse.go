package defparser

// Parse parses a complete DEF file, from the header statements through
// END DESIGN. Returns a *SyntaxError, *LexError, *UnknownKeywordError,
// *OverflowError, *UnterminatedSectionError or *CountMismatchError on
// failure.
func Parse(src []byte, opts ...Option) (*Design, error) {
	return run(src, opts, (*parser).design)
}

// ParseHeader parses VERSION, NAMESCASESENSITIVE, DIVIDERCHAR and
// BUSBITCHARS statements.
func ParseHeader(src []byte, opts ...Option) (Header, error) {
	return run(src, opts, (*parser).header)
}

// ParseDesignConfig parses DESIGN, TECHNOLOGY, UNITS, PROPERTYDEFINITIONS,
// DIEAREA, ROW, TRACKS and GCELLGRID statements.
func ParseDesignConfig(src []byte, opts ...Option) (DesignConfig, error) {
	return run(src, opts, (*parser).designConfig)
}

// ParseComponents parses a COMPONENTS section.
func ParseComponents(src []byte, opts ...Option) (*Section[Component], error) {
	return run(src, opts, (*parser).components)
}

// ParseNets parses a NETS section.
func ParseNets(src []byte, opts ...Option) (*Section[Net], error) {
	return run(src, opts, (*parser).nets)
}

// ParseSpecialNets parses a SPECIALNETS section.
func ParseSpecialNets(src []byte, opts ...Option) (*Section[SpecialNet], error) {
	return run(src, opts, (*parser).specialNets)
}

// ParseVias parses a VIAS section.
func ParseVias(src []byte, opts ...Option) (*Section[Via], error) {
	return run(src, opts, (*parser).vias)
}

// ParseRegions parses a REGIONS section.
func ParseRegions(src []byte, opts ...Option) (*Section[Region], error) {
	return run(src, opts, (*parser).regions)
}

// ParseGroups parses a GROUPS section.
func ParseGroups(src []byte, opts ...Option) (*Section[Group], error) {
	return run(src, opts, (*parser).groups)
}

// ParseBlockages parses a BLOCKAGES section.
func ParseBlockages(src []byte, opts ...Option) (*Section[Blockage], error) {
	return run(src, opts, (*parser).blockages)
}

// ParseFills parses a FILLS section.
func ParseFills(src []byte, opts ...Option) (*Section[Fill], error) {
	return run(src, opts, (*parser).fills)
}

// ParseSlots parses a SLOTS section.
func ParseSlots(src []byte, opts ...Option) (*Section[Slot], error) {
	return run(src, opts, (*parser).slots)
}

// ParseStyles parses a STYLES section.
func ParseStyles(src []byte, opts ...Option) (*Section[Style], error) {
	return run(src, opts, (*parser).styles)
}

// ParsePins parses a PINS section.
func ParsePins(src []byte, opts ...Option) (*Section[Pin], error) {
	return run(src, opts, (*parser).pins)
}

// ParsePinProperties parses a PINPROPERTIES section.
func ParsePinProperties(src []byte, opts ...Option) (*Section[PinProperty], error) {
	return run(src, opts, (*parser).pinProperties)
}

// ParseNonDefaultRules parses a NONDEFAULTRULES section.
func ParseNonDefaultRules(src []byte, opts ...Option) (*Section[NonDefaultRule], error) {
	return run(src, opts, (*parser).nonDefaultRules)
}

// ParseScanChains parses a SCANCHAINS section.
func ParseScanChains(src []byte, opts ...Option) (*Section[ScanChain], error) {
	return run(src, opts, (*parser).scanChains)
}

// ParsePointList parses a bare sequence of "( x y )" points, resolving "*"
// coordinates against the previous point.
func ParsePointList(src []byte, opts ...Option) ([]Point, error) {
	return run(src, opts, func(p *parser) ([]Point, error) { return p.pointList(1) })
}

// ParseRouteBody parses the points and vias of one wire segment.
func ParseRouteBody(src []byte, opts ...Option) (RouteBody, error) {
	return run(src, opts, (*parser).routeBody)
}

// ParseProperties parses a sequence of "+ PROPERTY name value" clauses.
func ParseProperties(src []byte, opts ...Option) (Properties, error) {
	return run(src, opts, (*parser).properties)
}
