package defparser

import "fmt"

// enumTable maps a fixed, ordered keyword list onto the codes 0..n-1.
type enumTable[T ~int32] struct {
	name  string
	names []string
	codes map[string]T
}

func newEnumTable[T ~int32](name string, keywords ...string) enumTable[T] {
	codes := make(map[string]T, len(keywords))
	for i, kw := range keywords {
		codes[kw] = T(i)
	}
	return enumTable[T]{name: name, names: keywords, codes: codes}
}

func (t enumTable[T]) parse(s string) (T, error) {
	if code, ok := t.codes[s]; ok {
		return code, nil
	}
	return 0, unknownKeyword(t.name, s, Position{})
}

func (t enumTable[T]) has(s string) bool {
	_, ok := t.codes[s]
	return ok
}

func (t enumTable[T]) keyword(code T) string {
	if code < 0 || int(code) >= len(t.names) {
		return fmt.Sprintf("%s(%d)", t.name, int32(code))
	}
	return t.names[code]
}

// Orientation is a placement orientation code (N=0 .. FE=7).
type Orientation int32

// SourceType is a SOURCE code.
type SourceType int32

// UseMode is a USE code.
type UseMode int32

// Pattern is a net routing PATTERN code.
type Pattern int32

// NetWireAttr is the attribute that leads a regular wiring group.
type NetWireAttr int32

// SnetWireAttr is the attribute that leads a special wiring group.
type SnetWireAttr int32

// WireShape is a special wire SHAPE code.
type WireShape int32

// PinLocation is a pin or virtual pin placement status code.
type PinLocation int32

// PinDirection is a pin DIRECTION code.
type PinDirection int32

// AntennaModel is an ANTENNAMODEL oxide code.
type AntennaModel int32

// RegionType is a region TYPE code.
type RegionType int32

// ComponentStatus is a component placement status code.
type ComponentStatus int32

const (
	OrientN Orientation = iota
	OrientW
	OrientS
	OrientE
	OrientFN
	OrientFW
	OrientFS
	OrientFE
)

const (
	SourceDist SourceType = iota
	SourceNetlist
	SourceTiming
	SourceUser
	SourceTest
)

const (
	UseAnalog UseMode = iota
	UseClock
	UseGround
	UsePower
	UseReset
	UseScan
	UseSignal
	UseTieoff
)

const (
	PatternBalanced Pattern = iota
	PatternSteiner
	PatternTrunk
	PatternWiredLogic
)

const (
	NetCover NetWireAttr = iota
	NetFixed
	NetRouted
	NetNoShield
)

const (
	SnetCover SnetWireAttr = iota
	SnetFixed
	SnetRouted
	SnetShield
)

const (
	ShapeRing WireShape = iota
	ShapePadRing
	ShapeBlockRing
	ShapeStripe
	ShapeFollowPin
	ShapeIOWire
	ShapeCoreWire
	ShapeBlockWire
	ShapeBlockageWire
	ShapeFillWire
	ShapeFillWireOPC
	ShapeDRCFill
)

const (
	PinPlaced PinLocation = iota
	PinFixed
	PinCovered
)

const (
	DirectionInput PinDirection = iota
	DirectionOutput
	DirectionInout
	DirectionFeedthru
)

const (
	Oxide1 AntennaModel = iota
	Oxide2
	Oxide3
	Oxide4
)

const (
	RegionFence RegionType = iota
	RegionGuide
)

const (
	StatusFixed ComponentStatus = iota
	StatusCover
	StatusPlaced
	StatusUnplaced
)

var (
	orientations      = newEnumTable[Orientation]("orientation", "N", "W", "S", "E", "FN", "FW", "FS", "FE")
	sourceTypes       = newEnumTable[SourceType]("source type", "DIST", "NETLIST", "TIMING", "USER", "TEST")
	useModes          = newEnumTable[UseMode]("use", "ANALOG", "CLOCK", "GROUND", "POWER", "RESET", "SCAN", "SIGNAL", "TIEOFF")
	patterns          = newEnumTable[Pattern]("pattern", "BALANCED", "STEINER", "TRUNK", "WIREDLOGIC")
	netWireAttrs      = newEnumTable[NetWireAttr]("net wiring attribute", "COVER", "FIXED", "ROUTED", "NOSHIELD")
	snetWireAttrs     = newEnumTable[SnetWireAttr]("special net wiring attribute", "COVER", "FIXED", "ROUTED", "SHIELD")
	wireShapes        = newEnumTable[WireShape]("shape", "RING", "PADRING", "BLOCKRING", "STRIPE", "FOLLOWPIN", "IOWIRE", "COREWIRE", "BLOCKWIRE", "BLOCKAGEWIRE", "FILLWIRE", "FILLWIREOPC", "DRCFILL")
	pinLocations      = newEnumTable[PinLocation]("pin location", "PLACED", "FIXED", "COVERED")
	pinDirections     = newEnumTable[PinDirection]("pin direction", "INPUT", "OUTPUT", "INOUT", "FEEDTHRU")
	antennaModels     = newEnumTable[AntennaModel]("antenna model", "OXIDE1", "OXIDE2", "OXIDE3", "OXIDE4")
	regionTypes       = newEnumTable[RegionType]("region type", "FENCE", "GUIDE")
	componentStatuses = newEnumTable[ComponentStatus]("component status", "FIXED", "COVER", "PLACED", "UNPLACED")
)

// ParseOrientation returns the code for N, W, S, E, FN, FW, FS or FE.
func ParseOrientation(s string) (Orientation, error) { return orientations.parse(s) }

// ParseSourceType returns the code for DIST, NETLIST, TIMING, USER or TEST.
func ParseSourceType(s string) (SourceType, error) { return sourceTypes.parse(s) }

// ParseUseMode returns the code for a USE keyword.
func ParseUseMode(s string) (UseMode, error) { return useModes.parse(s) }

// ParsePattern returns the code for a PATTERN keyword.
func ParsePattern(s string) (Pattern, error) { return patterns.parse(s) }

// ParseNetWireAttr returns the code for COVER, FIXED, ROUTED or NOSHIELD.
func ParseNetWireAttr(s string) (NetWireAttr, error) { return netWireAttrs.parse(s) }

// ParseSnetWireAttr returns the code for COVER, FIXED, ROUTED or SHIELD.
func ParseSnetWireAttr(s string) (SnetWireAttr, error) { return snetWireAttrs.parse(s) }

// ParseWireShape returns the code for a SHAPE keyword.
func ParseWireShape(s string) (WireShape, error) { return wireShapes.parse(s) }

// ParsePinLocation returns the code for PLACED, FIXED or COVERED.
func ParsePinLocation(s string) (PinLocation, error) { return pinLocations.parse(s) }

// ParsePinDirection returns the code for INPUT, OUTPUT, INOUT or FEEDTHRU.
func ParsePinDirection(s string) (PinDirection, error) { return pinDirections.parse(s) }

// ParseAntennaModel returns the code for OXIDE1 .. OXIDE4.
func ParseAntennaModel(s string) (AntennaModel, error) { return antennaModels.parse(s) }

// ParseRegionType returns the code for FENCE or GUIDE.
func ParseRegionType(s string) (RegionType, error) { return regionTypes.parse(s) }

// ParseComponentStatus returns the code for FIXED, COVER, PLACED or UNPLACED.
func ParseComponentStatus(s string) (ComponentStatus, error) { return componentStatuses.parse(s) }

func (v Orientation) String() string     { return orientations.keyword(v) }
func (v SourceType) String() string      { return sourceTypes.keyword(v) }
func (v UseMode) String() string         { return useModes.keyword(v) }
func (v Pattern) String() string         { return patterns.keyword(v) }
func (v NetWireAttr) String() string     { return netWireAttrs.keyword(v) }
func (v SnetWireAttr) String() string    { return snetWireAttrs.keyword(v) }
func (v WireShape) String() string       { return wireShapes.keyword(v) }
func (v PinLocation) String() string     { return pinLocations.keyword(v) }
func (v PinDirection) String() string    { return pinDirections.keyword(v) }
func (v AntennaModel) String() string    { return antennaModels.keyword(v) }
func (v RegionType) String() string      { return regionTypes.keyword(v) }
func (v ComponentStatus) String() string { return componentStatuses.keyword(v) }

// Axis is the X or Y direction of a TRACKS or GCELLGRID statement.
type Axis string

const (
	AxisX Axis = "X"
	AxisY Axis = "Y"
)

// ParseAxis returns AxisX or AxisY.
func ParseAxis(s string) (Axis, error) {
	switch Axis(s) {
	case AxisX, AxisY:
		return Axis(s), nil
	}
	return "", unknownKeyword("axis", s, Position{})
}
