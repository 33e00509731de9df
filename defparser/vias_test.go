package defparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViasFixed(t *testing.T) {
	s, err := ParseVias([]byte("VIAS 1 ; - V1 + RECT M1 ( 0 0 ) ( 10 10 ) ; END VIAS"))
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	v := s.Items[0]
	assert.Equal(t, "V1", v.Name)
	assert.Equal(t, ViaFixed, v.Kind)
	assert.Nil(t, v.Generated)
	assert.Equal(t, []ViaShape{{
		Layer: "M1",
		Shape: RectGeometry(Rect{Low: Point{0, 0}, High: Point{10, 10}}),
	}}, v.Shapes)
}

func TestParseViasFixedSeveralShapes(t *testing.T) {
	src := `VIAS 1 ;
- V2 + RECT M1 + MASK 1 ( -5 -5 ) ( 5 5 )
     + POLYGON V1 ( 0 0 ) ( 2 0 ) ( 2 2 ) ( 0 * )
     + RECT M2 ( -6 -6 ) ( 6 6 ) ;
END VIAS`

	s, err := ParseVias([]byte(src))
	require.NoError(t, err)
	v := s.Items[0]
	require.Len(t, v.Shapes, 3)
	assert.Equal(t, int32(1), *v.Shapes[0].Mask)
	assert.Equal(t, "V1", v.Shapes[1].Layer)
	assert.Equal(t, []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, v.Shapes[1].Shape.Points)
	assert.Nil(t, v.Shapes[2].Mask)
}

func TestParseViasGenerated(t *testing.T) {
	src := `VIAS 1 ;
- via12_gen + VIARULE VIAGEN12 + CUTSIZE 20 20 + LAYERS M1 V1 M2
  + CUTSPACING 30 30 + ENCLOSURE 5 6 7 8
  + PATTERN 2_F0_2_8 + ROWCOL 2 3 + OFFSET 1 2 3 4 + ORIGIN 10 -10 ;
END VIAS`

	s, err := ParseVias([]byte(src))
	require.NoError(t, err)
	v := s.Items[0]
	assert.Equal(t, ViaGenerated, v.Kind)
	assert.Empty(t, v.Shapes)

	g := v.Generated
	require.NotNil(t, g)
	assert.Equal(t, "VIAGEN12", g.ViaRule)
	assert.Equal(t, Point{X: 20, Y: 20}, g.CutSize)
	assert.Equal(t, ViaLayers{Bottom: "M1", Cut: "V1", Top: "M2"}, g.Layers)
	assert.Equal(t, Point{X: 30, Y: 30}, g.CutSpacing)
	assert.Equal(t, ViaEnclosure{BottomX: 5, BottomY: 6, TopX: 7, TopY: 8}, g.Enclosure)
	assert.Equal(t, &RowCol{Rows: 2, Cols: 3}, g.RowCol)
	assert.Equal(t, &ViaEnclosure{BottomX: 1, BottomY: 2, TopX: 3, TopY: 4}, g.Offset)
	assert.Equal(t, &Point{X: 10, Y: -10}, g.Origin)
	assert.Equal(t, "2_F0_2_8", g.Pattern)
}

func TestParseViasGeneratedRequiresOrder(t *testing.T) {
	src := `VIAS 1 ;
- v + VIARULE R + LAYERS M1 V1 M2 + CUTSIZE 1 1 ;
END VIAS`

	_, err := ParseVias([]byte(src))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "'+ CUTSIZE'", syntaxErr.Expected)
}

func TestParseViasWithoutShapes(t *testing.T) {
	s, err := ParseVias([]byte("VIAS 1 ;\n- empty ;\nEND VIAS"))
	require.NoError(t, err)
	assert.Equal(t, ViaFixed, s.Items[0].Kind)
	assert.Empty(t, s.Items[0].Shapes)
}
