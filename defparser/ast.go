package defparser

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// Point is a DEF coordinate pair in database units.
type Point struct {
	X int32
	Y int32
}

// Rect is an axis-aligned rectangle given by two corner points.
type Rect struct {
	Low  Point
	High Point
}

// GeometryKind discriminates the Geometry tagged union.
type GeometryKind string

const (
	GeometryRect    GeometryKind = "RECT"
	GeometryPolygon GeometryKind = "POLYGON"
)

// Geometry is either a rectangle or a polygon. Kind determines which field
// is populated.
type Geometry struct {
	Kind   GeometryKind
	Rect   Rect    // populated when Kind == GeometryRect
	Points []Point // populated when Kind == GeometryPolygon
}

// RectGeometry wraps r as a Geometry.
func RectGeometry(r Rect) Geometry { return Geometry{Kind: GeometryRect, Rect: r} }

// PolygonGeometry wraps pts as a Geometry.
func PolygonGeometry(pts []Point) Geometry { return Geometry{Kind: GeometryPolygon, Points: pts} }

// OptInt is an integer that may be absent, such as a "*" coordinate.
type OptInt struct {
	Value int32
	Valid bool
}

// Some returns a present OptInt.
func Some(v int32) OptInt { return OptInt{Value: v, Valid: true} }

// RoutePoint is one "( x y [ext] )" routing point. X and Y are invalid when
// written as "*"; At holds the coordinates with "*" resolved against the
// previous point of the same route body.
type RoutePoint struct {
	X   OptInt
	Y   OptInt
	Ext OptInt
	At  Point
}

// RouteElem is a routing point, optionally carrying a via placed at it.
type RouteElem struct {
	Point     RoutePoint
	Via       string       // empty for a bare point
	ViaOrient *Orientation // optional orientation of the via
}

// IsVia reports whether the element places a via.
func (e RouteElem) IsVia() bool { return e.Via != "" }

// RouteBody is the ordered sequence of points and vias of one wire segment.
type RouteBody []RouteElem

// Section is a framed DEF section: "KEYWORD count ; member* END KEYWORD".
type Section[T any] struct {
	Declared int // count written after the section keyword
	Items    []T
	Pos      Position
}

// Len returns the number of parsed members.
func (s *Section[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// Placement is a component placement status with its optional location.
type Placement struct {
	Status      ComponentStatus
	HasLocation bool // UNPLACED may omit the location
	Location    Point
	Orient      Orientation
}

// Halo is a component placement halo.
type Halo struct {
	Soft   bool
	Left   int32
	Bottom int32
	Right  int32
	Top    int32
}

// RouteHalo is a component routing halo.
type RouteHalo struct {
	Distance int32
	MinLayer string
	MaxLayer string
}

// Component is one member of the COMPONENTS section.
type Component struct {
	Name      string
	Model     string
	EEQMaster string
	Generate  string
	Source    *SourceType
	Weight    *int32
	Region    string
	Placement *Placement
	Halo      *Halo
	RouteHalo *RouteHalo
	Props     Properties
	Pos       Position
}

// Connector is a "( component pin [+ SYNTHESIZED] )" net connection.
// Component is empty for a top-level "( PIN name )" connection and "*" for
// a special-net connection to every component.
type Connector struct {
	Component   string
	Pin         string
	Synthesized bool
}

// IsPin reports whether the connector references a top-level pin.
func (c Connector) IsPin() bool { return c.Component == "" }

// VPin is a virtual pin declared inside a net.
type VPin struct {
	Name     string
	Layer    string
	Rect     Rect
	Status   *PinLocation
	Location *Point
	Orient   *Orientation
}

// SubnetPin is one reference of a subnet: a component pin, a top-level pin
// (Component empty) or a virtual pin (VPin set).
type SubnetPin struct {
	Component string
	Pin       string
	VPin      string
}

// Subnet is a named partition of a net with its own wiring.
type Subnet struct {
	Name           string
	Pins           []SubnetPin
	NonDefaultRule string
	Wiring         []Wiring
}

// WireSegment is one layer run of regular wiring.
type WireSegment struct {
	Layer     string
	Taper     bool
	TaperRule string
	Style     *int32
	Route     RouteBody
}

// Wiring is an attribute-led group of regular wire segments.
type Wiring struct {
	Attr     NetWireAttr
	Segments []WireSegment
}

// NetAttributes is the property suffix of a regular net.
type NetAttributes struct {
	Source    *SourceType
	FixedBump bool
	Frequency *float64
	Original  string
	Use       *UseMode
	Pattern   *Pattern
	EstCap    *int32
	Weight    *int32
	Props     Properties
}

// Net is one member of the NETS section.
type Net struct {
	Name           string
	MustJoin       bool
	Connectors     []Connector
	ShieldNets     []string
	VPins          []VPin
	Subnets        []Subnet
	XTalk          *int32
	NonDefaultRule string
	Wiring         []Wiring
	Attributes     NetAttributes
	Pos            Position
}

// SpecialWiringKind discriminates the SpecialWiring tagged union.
type SpecialWiringKind string

const (
	SpecialWiringRouted SpecialWiringKind = "ROUTED"
	SpecialWiringShape  SpecialWiringKind = "SHAPE"
)

// SpecialWireSegment is one layer run of special wiring.
type SpecialWireSegment struct {
	Layer string
	Width int32
	Shape *WireShape
	Style *int32
	Mask  *int32
	Route RouteBody
}

// SpecialWiring is either a direct RECT/POLYGON shape on a layer or an
// attribute-led group of special wire segments.
type SpecialWiring struct {
	Kind SpecialWiringKind

	// SpecialWiringShape
	Layer string
	Mask  *int32
	Shape Geometry

	// SpecialWiringRouted
	Attr      SnetWireAttr
	ShieldNet string // set when Attr == SnetShield
	Segments  []SpecialWireSegment
}

// SpecialNetAttributes is the property suffix of a special net. SOURCE, USE
// and PATTERN are mandatory there.
type SpecialNetAttributes struct {
	Source    SourceType
	FixedBump bool
	Original  string
	Use       UseMode
	Pattern   Pattern
	EstCap    *int32
	Weight    *int32
	Props     Properties
}

// SpecialNet is one member of the SPECIALNETS section.
type SpecialNet struct {
	Name       string
	Connectors []Connector
	Voltage    *float64
	Wiring     []SpecialWiring
	Attributes SpecialNetAttributes
	Pos        Position
}

// ViaKind discriminates generated and fixed vias.
type ViaKind string

const (
	ViaGenerated ViaKind = "GENERATED"
	ViaFixed     ViaKind = "FIXED"
)

// ViaLayers names the bottom metal, cut and top metal layers of a generated via.
type ViaLayers struct {
	Bottom string
	Cut    string
	Top    string
}

// ViaEnclosure is the bottom and top metal enclosure of the cuts.
type ViaEnclosure struct {
	BottomX int32
	BottomY int32
	TopX    int32
	TopY    int32
}

// RowCol is the cut array size of a generated via.
type RowCol struct {
	Rows int32
	Cols int32
}

// GeneratedVia holds the parameters of a VIARULE-generated via.
type GeneratedVia struct {
	ViaRule    string
	CutSize    Point
	Layers     ViaLayers
	CutSpacing Point
	Enclosure  ViaEnclosure
	RowCol     *RowCol
	Origin     *Point
	Offset     *ViaEnclosure
	Pattern    string
}

// ViaShape is one fixed via shape on a layer.
type ViaShape struct {
	Layer string
	Mask  *int32
	Shape Geometry
}

// Via is one member of the VIAS section. Generated is set for ViaGenerated,
// Shapes for ViaFixed.
type Via struct {
	Name      string
	Kind      ViaKind
	Generated *GeneratedVia
	Shapes    []ViaShape
	Pos       Position
}

// Region is one member of the REGIONS section.
type Region struct {
	Name  string
	Rects []Rect
	Type  *RegionType
	Props Properties
	Pos   Position
}

// GroupSoft holds the soft group limits.
type GroupSoft struct {
	MaxHalfPerimeter *int32
	MaxX             *int32
	MaxY             *int32
}

// Group is one member of the GROUPS section. The group region is either a
// region name or an inline rectangle.
type Group struct {
	Name       string
	Members    []string // component names or patterns ending in "*"
	Soft       *GroupSoft
	RegionName string
	RegionRect *Rect
	Props      Properties
	Pos        Position
}

// BlockageKind discriminates layer and placement blockages.
type BlockageKind string

const (
	BlockageLayer     BlockageKind = "LAYER"
	BlockagePlacement BlockageKind = "PLACEMENT"
)

// Blockage is one member of the BLOCKAGES section.
type Blockage struct {
	Kind      BlockageKind
	Layer     string // BlockageLayer only
	Component string
	Pushdown  bool

	// BlockageLayer
	Slots           bool
	Fills           bool
	ExceptPGNet     bool
	Spacing         *int32
	DesignRuleWidth *int32
	Mask            *int32

	// BlockagePlacement
	Soft    bool
	Partial *float64

	Shapes []Geometry
	Pos    Position
}

// FillKind discriminates layer and via fills.
type FillKind string

const (
	FillLayer FillKind = "LAYER"
	FillVia   FillKind = "VIA"
)

// Fill is one member of the FILLS section.
type Fill struct {
	Kind   FillKind
	Layer  string // FillLayer
	Via    string // FillVia
	Mask   *int32
	OPC    bool
	Shapes []Geometry // FillLayer
	Points []Point    // FillVia placements
	Pos    Position
}

// Slot is one member of the SLOTS section.
type Slot struct {
	Layer  string
	Shapes []Geometry
	Pos    Position
}

// Style is one member of the STYLES section.
type Style struct {
	Number int32
	Points []Point
	Pos    Position
}

// AntennaKind identifies one of the pin antenna clauses.
type AntennaKind string

const (
	AntennaPartialMetalArea     AntennaKind = "ANTENNAPINPARTIALMETALAREA"
	AntennaPartialMetalSideArea AntennaKind = "ANTENNAPINPARTIALMETALSIDEAREA"
	AntennaPartialCutArea       AntennaKind = "ANTENNAPINPARTIALCUTAREA"
	AntennaDiffArea             AntennaKind = "ANTENNAPINDIFFAREA"
	AntennaGateArea             AntennaKind = "ANTENNAPINGATEAREA"
	AntennaModelKind            AntennaKind = "ANTENNAMODEL"
	AntennaMaxAreaCar           AntennaKind = "ANTENNAPINMAXAREACAR"
	AntennaMaxSideAreaCar       AntennaKind = "ANTENNAPINMAXSIDEAREACAR"
	AntennaMaxCutCar            AntennaKind = "ANTENNAPINMAXCUTCAR"
)

// Antenna is one pin antenna clause. Model is only meaningful for
// AntennaModelKind; Value and Layer for the others.
type Antenna struct {
	Kind  AntennaKind
	Value int32
	Layer string
	Model AntennaModel
}

// PortShapeKind discriminates pin port geometry.
type PortShapeKind string

const (
	PortLayer   PortShapeKind = "LAYER"
	PortPolygon PortShapeKind = "POLYGON"
	PortVia     PortShapeKind = "VIA"
)

// PortShape is one geometry element of a pin port.
type PortShape struct {
	Kind            PortShapeKind
	Layer           string // layer name, or via name for PortVia
	Mask            *int32
	Spacing         *int32
	DesignRuleWidth *int32
	Shape           Geometry // PortLayer and PortPolygon
	At              Point    // PortVia
}

// PortPlacement is the placement that closes a pin port.
type PortPlacement struct {
	Status   PinLocation
	Location Point
	Orient   Orientation
}

// Port is one physical port of a pin.
type Port struct {
	Shapes    []PortShape
	Placement PortPlacement
}

// Pin is one member of the PINS section.
type Pin struct {
	Name              string
	Net               string
	Special           bool
	Direction         *PinDirection
	NetExpr           string
	SupplySensitivity string
	GroundSensitivity string
	Use               *UseMode
	Antennas          []Antenna
	Ports             []Port
	Pos               Position
}

// PinProperty is one member of the PINPROPERTIES section. Component is
// empty for a top-level PIN.
type PinProperty struct {
	Component string
	Pin       string
	Props     Properties
	Pos       Position
}

// NDRLayer is a per-layer width and spacing override of a non-default rule.
type NDRLayer struct {
	Name      string
	Width     int32
	DiagWidth *int32
	Spacing   *int32
	WireExt   *int32
}

// MinCut is the minimum cut count for a cut layer.
type MinCut struct {
	Layer string
	Cuts  int32
}

// NonDefaultRule is one member of the NONDEFAULTRULES section.
type NonDefaultRule struct {
	Name        string
	HardSpacing bool
	Layers      []NDRLayer
	Vias        []string
	ViaRules    []string
	MinCuts     []MinCut
	Props       Properties
	Pos         Position
}

// ScanPartition names the partition a scan chain belongs to.
type ScanPartition struct {
	Name    string
	MaxBits *int32
}

// ScanPins is an IN/OUT pin pair.
type ScanPins struct {
	In  string
	Out string
}

// ScanPoint is a chain start or stop: a component pin, or a top-level pin
// when Component is empty.
type ScanPoint struct {
	Component string
	Pin       string
}

// ScanCell is one FLOATING or ORDERED scan cell.
type ScanCell struct {
	Name string
	In   string
	Out  string
	Bits *int32
}

// ScanChain is one member of the SCANCHAINS section.
type ScanChain struct {
	Name           string
	Partition      *ScanPartition
	CommonScanPins *ScanPins
	Start          *ScanPoint
	Floating       []ScanCell
	Ordered        [][]ScanCell
	Stop           *ScanPoint
	Pos            Position
}

// Header holds the statements that precede the DESIGN statement.
type Header struct {
	Version            *float64
	NamesCaseSensitive *bool
	DividerChar        string
	BusBitChars        string
}

// PropertyRange bounds an INTEGER or REAL property definition.
type PropertyRange struct {
	Min float64
	Max float64
}

// PropertyDefinition is one entry of PROPERTYDEFINITIONS.
type PropertyDefinition struct {
	Object  string // DESIGN, REGION, GROUP, COMPONENT, COMPONENTPIN, NET, SPECIALNET, ROW, NONDEFAULTRULE
	Name    string
	Type    ValueKind
	Range   *PropertyRange
	Default *PropertyValue
}

// Row is a placement row.
type Row struct {
	Name   string
	Site   string
	Origin Point
	Orient Orientation
	NumX   int32
	NumY   int32
	StepX  int32
	StepY  int32
	Props  Properties
}

// Track is a routing track pattern.
type Track struct {
	Axis     Axis
	Start    int32
	Num      int32
	Step     int32
	Mask     *int32
	SameMask bool
	Layers   []string
}

// GCellGrid is a global routing cell grid line set.
type GCellGrid struct {
	Axis  Axis
	Start int32
	Num   int32
	Step  int32
}

// DesignConfig holds the design-level clauses of a DEF file.
type DesignConfig struct {
	Name                string
	Technology          string
	Units               *int32 // database units per micron
	PropertyDefinitions []PropertyDefinition
	DieArea             []Point
	Rows                []Row
	Tracks              []Track
	GCellGrids          []GCellGrid
}

// Design is the complete parsed representation of a DEF file. Sections
// absent from the file are nil.
type Design struct {
	Header             Header
	Config             DesignConfig
	History            []string
	ComponentMaskShift []string

	Vias            *Section[Via]
	Styles          *Section[Style]
	NonDefaultRules *Section[NonDefaultRule]
	Regions         *Section[Region]
	Components      *Section[Component]
	Pins            *Section[Pin]
	PinProperties   *Section[PinProperty]
	Blockages       *Section[Blockage]
	Slots           *Section[Slot]
	Fills           *Section[Fill]
	SpecialNets     *Section[SpecialNet]
	Nets            *Section[Net]
	ScanChains      *Section[ScanChain]
	Groups          *Section[Group]
}
