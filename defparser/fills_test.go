package defparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFills(t *testing.T) {
	src := `FILLS 3 ;
- LAYER M1 + MASK 1 + OPC RECT ( 0 0 ) ( 10 10 ) POLYGON ( 0 0 ) ( 5 0 ) ( * 5 ) ;
- LAYER M2 RECT ( 1 1 ) ( 2 2 ) ;
- VIA VIA12 + OPC ( 100 100 ) ( 200 * ) ;
END FILLS`

	s, err := ParseFills([]byte(src))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	f := s.Items[0]
	assert.Equal(t, FillLayer, f.Kind)
	assert.Equal(t, "M1", f.Layer)
	assert.Equal(t, int32(1), *f.Mask)
	assert.True(t, f.OPC)
	require.Len(t, f.Shapes, 2)
	assert.Equal(t, []Point{{0, 0}, {5, 0}, {5, 5}}, f.Shapes[1].Points)

	f = s.Items[1]
	assert.Nil(t, f.Mask)
	assert.False(t, f.OPC)

	f = s.Items[2]
	assert.Equal(t, FillVia, f.Kind)
	assert.Equal(t, "VIA12", f.Via)
	assert.Empty(t, f.Shapes)
	assert.Equal(t, []Point{{100, 100}, {200, 100}}, f.Points)
}

func TestParseFillsViaNeedsPoints(t *testing.T) {
	_, err := ParseFills([]byte("FILLS 1 ;\n- VIA VIA12 ;\nEND FILLS"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'(' starting point 1")
}
