package defparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponentsPlacement(t *testing.T) {
	src := `COMPONENTS 3 ;
- I1 INV + PLACED ( 100 200 ) FN ;
- I2 NAND2 + FIXED ( 0 0 ) N + SOURCE NETLIST + WEIGHT 5 ;
- I3 BUF + UNPLACED ;
END COMPONENTS`

	s, err := ParseComponents([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Declared)
	require.Equal(t, 3, s.Len())

	i1 := s.Items[0]
	assert.Equal(t, "I1", i1.Name)
	assert.Equal(t, "INV", i1.Model)
	require.NotNil(t, i1.Placement)
	assert.Equal(t, StatusPlaced, i1.Placement.Status)
	assert.True(t, i1.Placement.HasLocation)
	assert.Equal(t, Point{X: 100, Y: 200}, i1.Placement.Location)
	assert.Equal(t, OrientFN, i1.Placement.Orient)
	assert.Equal(t, 2, i1.Pos.Line)

	i2 := s.Items[1]
	assert.Equal(t, StatusFixed, i2.Placement.Status)
	require.NotNil(t, i2.Source)
	assert.Equal(t, SourceNetlist, *i2.Source)
	require.NotNil(t, i2.Weight)
	assert.Equal(t, int32(5), *i2.Weight)

	i3 := s.Items[2]
	assert.Equal(t, StatusUnplaced, i3.Placement.Status)
	assert.False(t, i3.Placement.HasLocation)
}

func TestParseComponentsFeaturesInAnyOrder(t *testing.T) {
	src := `COMPONENTS 1 ;
- u0/core CPU + PROPERTY owner "team" + HALO SOFT 1 2 3 4 + REGION r0
  + ROUTEHALO 100 M1 M4 + EEQMASTER CPU2 + GENERATE gen0 + COVER ( 10 20 ) S ;
END COMPONENTS`

	s, err := ParseComponents([]byte(src))
	require.NoError(t, err)
	c := s.Items[0]
	assert.Equal(t, "u0/core", c.Name)
	assert.Equal(t, "CPU2", c.EEQMaster)
	assert.Equal(t, "gen0", c.Generate)
	assert.Equal(t, "r0", c.Region)
	assert.Equal(t, &Halo{Soft: true, Left: 1, Bottom: 2, Right: 3, Top: 4}, c.Halo)
	assert.Equal(t, &RouteHalo{Distance: 100, MinLayer: "M1", MaxLayer: "M4"}, c.RouteHalo)
	assert.Equal(t, StatusCover, c.Placement.Status)
	assert.Equal(t, OrientS, c.Placement.Orient)

	owner, ok := c.Props.Get("owner")
	require.True(t, ok)
	assert.Equal(t, "team", owner.Str)
}

func TestParseComponentsRejectsDuplicateClause(t *testing.T) {
	src := `COMPONENTS 1 ;
- I1 INV + WEIGHT 1 + WEIGHT 2 ;
END COMPONENTS`

	_, err := ParseComponents([]byte(src))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Contains(t, syntaxErr.Error(), "+ WEIGHT")
}

func TestParseComponentsPlacedNeedsLocation(t *testing.T) {
	src := `COMPONENTS 1 ;
- I1 INV + PLACED ;
END COMPONENTS`

	_, err := ParseComponents([]byte(src))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "'('", syntaxErr.Expected)
}

func TestParseComponentsMissingSemicolon(t *testing.T) {
	src := `COMPONENTS 2 ;
- I1 INV + PLACED ( 0 0 ) N
- I2 INV ;
END COMPONENTS`

	s, err := ParseComponents([]byte(src))
	assert.Nil(t, s)
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "';'", syntaxErr.Expected)
	assert.Equal(t, 3, syntaxErr.Pos.Line)
}

func TestParseComponentsUnterminated(t *testing.T) {
	src := `COMPONENTS 1 ;
- I1 INV ;
`
	s, err := ParseComponents([]byte(src))
	assert.Nil(t, s)
	var unterminatedErr *UnterminatedSectionError
	require.True(t, errors.As(err, &unterminatedErr))
	assert.Equal(t, "COMPONENTS", unterminatedErr.Section)
}

func TestParseComponentsUnterminatedMember(t *testing.T) {
	_, err := ParseComponents([]byte("COMPONENTS 1 ;\n- I1 INV"))
	var unterminatedErr *UnterminatedSectionError
	require.True(t, errors.As(err, &unterminatedErr))
	assert.Equal(t, "COMPONENTS", unterminatedErr.Section)
}

func TestParseComponentsCountMismatch(t *testing.T) {
	src := `COMPONENTS 3 ;
- I1 INV ;
- I2 INV ;
END COMPONENTS`

	s, err := ParseComponents([]byte(src))
	assert.Nil(t, s)
	var mismatch *CountMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "COMPONENTS", mismatch.Section)
	assert.Equal(t, 3, mismatch.Declared)
	assert.Equal(t, 2, mismatch.Parsed)

	s, err = ParseComponents([]byte(src), WithLenientCounts())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Declared)
	assert.Equal(t, 2, s.Len())
}

func TestParseComponentsRejectsTrailingInput(t *testing.T) {
	_, err := ParseComponents([]byte("COMPONENTS 0 ;\nEND COMPONENTS\nEND COMPONENTS"))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "EOF", syntaxErr.Expected)
}

func TestParseComponentsWrongEndKeyword(t *testing.T) {
	_, err := ParseComponents([]byte("COMPONENTS 0 ;\nEND NETS"))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "'COMPONENTS'", syntaxErr.Expected)
}

func TestParseComponentsRejectsInvalidName(t *testing.T) {
	_, err := ParseComponents([]byte("COMPONENTS 1 ;\n- a[ INV ;\nEND COMPONENTS"))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "component name", syntaxErr.Expected)
}

func TestParseComponentsBusIndexedName(t *testing.T) {
	s, err := ParseComponents([]byte("COMPONENTS 1 ;\n- top/reg[3][0] DFF ;\nEND COMPONENTS"))
	require.NoError(t, err)
	assert.Equal(t, "top/reg[3][0]", s.Items[0].Name)
}
