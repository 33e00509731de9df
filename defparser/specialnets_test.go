package defparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecialNetsRoutedWiring(t *testing.T) {
	src := `SPECIALNETS 1 ;
- VDD ( * VDD ) ( PIN VDD )
  + ROUTED M1 200 + SHAPE STRIPE ( 0 0 ) ( 1000 * ) VIA12
    NEW M2 400 + MASK 2 + SHAPE FOLLOWPIN + STYLE 1 ( 0 100 ) ( * 900 )
  + VOLTAGE 1.8
  + SOURCE NETLIST + USE POWER + PATTERN BALANCED
  + WEIGHT 4 + ESTCAP 7 + ORIGINAL VDD0 + FIXEDBUMP ;
END SPECIALNETS`

	s, err := ParseSpecialNets([]byte(src))
	require.NoError(t, err)
	n := s.Items[0]

	assert.Equal(t, "VDD", n.Name)
	assert.Equal(t, []Connector{{Component: "*", Pin: "VDD"}, {Pin: "VDD"}}, n.Connectors)
	require.NotNil(t, n.Voltage)
	assert.InDelta(t, 1.8, *n.Voltage, 1e-9)

	require.Len(t, n.Wiring, 1)
	w := n.Wiring[0]
	assert.Equal(t, SpecialWiringRouted, w.Kind)
	assert.Equal(t, SnetRouted, w.Attr)
	require.Len(t, w.Segments, 2)

	first := w.Segments[0]
	assert.Equal(t, "M1", first.Layer)
	assert.Equal(t, int32(200), first.Width)
	require.NotNil(t, first.Shape)
	assert.Equal(t, ShapeStripe, *first.Shape)
	assert.Equal(t, Point{X: 1000, Y: 0}, first.Route[1].Point.At)
	assert.Equal(t, "VIA12", first.Route[1].Via)

	second := w.Segments[1]
	assert.Equal(t, int32(2), *second.Mask)
	assert.Equal(t, ShapeFollowPin, *second.Shape)
	assert.Equal(t, int32(1), *second.Style)
	assert.Equal(t, Point{X: 0, Y: 900}, second.Route[1].Point.At)

	a := n.Attributes
	assert.Equal(t, SourceNetlist, a.Source)
	assert.Equal(t, UsePower, a.Use)
	assert.Equal(t, PatternBalanced, a.Pattern)
	assert.Equal(t, int32(4), *a.Weight)
	assert.Equal(t, int32(7), *a.EstCap)
	assert.Equal(t, "VDD0", a.Original)
	assert.True(t, a.FixedBump)
}

func TestParseSpecialNetsShapesAndShield(t *testing.T) {
	src := `SPECIALNETS 1 ;
- VSS ( u* VSS )
  + RECT M3 ( 0 0 ) ( 50 50 )
  + POLYGON M4 + MASK 1 ( 0 0 ) ( 10 0 ) ( * 10 )
  + SHIELD clk M2 100 ( 0 0 ) ( 0 500 )
  + USE GROUND + SOURCE USER + PATTERN TRUNK + PROPERTY tag "ring" ;
END SPECIALNETS`

	s, err := ParseSpecialNets([]byte(src))
	require.NoError(t, err)
	n := s.Items[0]

	assert.Equal(t, "u*", n.Connectors[0].Component)
	require.Len(t, n.Wiring, 3)

	rect := n.Wiring[0]
	assert.Equal(t, SpecialWiringShape, rect.Kind)
	assert.Equal(t, "M3", rect.Layer)
	assert.Equal(t, RectGeometry(Rect{High: Point{X: 50, Y: 50}}), rect.Shape)

	poly := n.Wiring[1]
	assert.Equal(t, GeometryPolygon, poly.Shape.Kind)
	require.NotNil(t, poly.Mask)
	assert.Equal(t, int32(1), *poly.Mask)
	assert.Equal(t, []Point{{0, 0}, {10, 0}, {10, 10}}, poly.Shape.Points)

	shield := n.Wiring[2]
	assert.Equal(t, SnetShield, shield.Attr)
	assert.Equal(t, "clk", shield.ShieldNet)
	assert.Equal(t, "M2", shield.Segments[0].Layer)

	tag, err := n.Attributes.Props.Text("tag")
	require.NoError(t, err)
	assert.Equal(t, "ring", tag)
}

func TestParseSpecialNetsRequiresUse(t *testing.T) {
	src := `SPECIALNETS 1 ;
- VDD + SOURCE NETLIST + PATTERN STEINER ;
END SPECIALNETS`

	_, err := ParseSpecialNets([]byte(src))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "'+ USE'", syntaxErr.Expected)
	assert.Contains(t, syntaxErr.Error(), "special net VDD requires + USE")
}

func TestParseSpecialNetsPolygonNeedsThreePoints(t *testing.T) {
	src := `SPECIALNETS 1 ;
- VDD + POLYGON M1 ( 0 0 ) ( 1 1 ) + SOURCE DIST + USE POWER + PATTERN STEINER ;
END SPECIALNETS`

	_, err := ParseSpecialNets([]byte(src))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "'(' starting point 3", syntaxErr.Expected)
}
