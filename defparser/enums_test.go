package defparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTable asserts that parse maps keywords onto 0..n-1 in order and
// rejects anything else.
func checkTable[T ~int32](t *testing.T, table string, parse func(string) (T, error), keywords []string) {
	t.Helper()
	seen := make(map[T]string)
	for i, kw := range keywords {
		code, err := parse(kw)
		require.NoError(t, err, "%s %s", table, kw)
		assert.Equal(t, T(i), code, "%s %s", table, kw)
		if prev, dup := seen[code]; dup {
			t.Errorf("%s: %s and %s share code %d", table, prev, kw, code)
		}
		seen[code] = kw
	}

	for _, bad := range []string{"", "BOGUS", "n", keywords[0] + "X"} {
		_, err := parse(bad)
		var unknown *UnknownKeywordError
		require.True(t, errors.As(err, &unknown), "%s %q", table, bad)
		assert.Equal(t, bad, unknown.Keyword)
		assert.Equal(t, table, unknown.Table)
	}
}

func TestEnumerationTables(t *testing.T) {
	checkTable(t, "orientation", ParseOrientation, []string{"N", "W", "S", "E", "FN", "FW", "FS", "FE"})
	checkTable(t, "source type", ParseSourceType, []string{"DIST", "NETLIST", "TIMING", "USER", "TEST"})
	checkTable(t, "use", ParseUseMode, []string{"ANALOG", "CLOCK", "GROUND", "POWER", "RESET", "SCAN", "SIGNAL", "TIEOFF"})
	checkTable(t, "pattern", ParsePattern, []string{"BALANCED", "STEINER", "TRUNK", "WIREDLOGIC"})
	checkTable(t, "net wiring attribute", ParseNetWireAttr, []string{"COVER", "FIXED", "ROUTED", "NOSHIELD"})
	checkTable(t, "special net wiring attribute", ParseSnetWireAttr, []string{"COVER", "FIXED", "ROUTED", "SHIELD"})
	checkTable(t, "shape", ParseWireShape, []string{
		"RING", "PADRING", "BLOCKRING", "STRIPE", "FOLLOWPIN", "IOWIRE",
		"COREWIRE", "BLOCKWIRE", "BLOCKAGEWIRE", "FILLWIRE", "FILLWIREOPC", "DRCFILL",
	})
	checkTable(t, "pin location", ParsePinLocation, []string{"PLACED", "FIXED", "COVERED"})
	checkTable(t, "pin direction", ParsePinDirection, []string{"INPUT", "OUTPUT", "INOUT", "FEEDTHRU"})
	checkTable(t, "antenna model", ParseAntennaModel, []string{"OXIDE1", "OXIDE2", "OXIDE3", "OXIDE4"})
	checkTable(t, "region type", ParseRegionType, []string{"FENCE", "GUIDE"})
	checkTable(t, "component status", ParseComponentStatus, []string{"FIXED", "COVER", "PLACED", "UNPLACED"})
}

func TestEnumerationCodesAreContractual(t *testing.T) {
	assert.Equal(t, UseMode(6), UseSignal)
	assert.Equal(t, Pattern(1), PatternSteiner)
	assert.Equal(t, Orientation(4), OrientFN)
	assert.Equal(t, WireShape(11), ShapeDRCFill)
	assert.Equal(t, SourceType(4), SourceTest)
}

func TestEnumerationKeywordsAreCaseSensitive(t *testing.T) {
	_, err := ParseUseMode("signal")
	var unknown *UnknownKeywordError
	assert.True(t, errors.As(err, &unknown))
}

func TestEnumerationStrings(t *testing.T) {
	assert.Equal(t, "FN", OrientFN.String())
	assert.Equal(t, "STEINER", PatternSteiner.String())
	assert.Equal(t, "BLOCKWIRE", ShapeBlockWire.String())
	assert.Equal(t, "UNPLACED", StatusUnplaced.String())
	assert.Equal(t, "orientation(9)", Orientation(9).String())
}

func TestUnknownKeywordInGrammarCarriesPosition(t *testing.T) {
	src := "COMPONENTS 1 ;\n- I1 INV + PLACED ( 0 0 ) Q ;\nEND COMPONENTS"
	_, err := ParseComponents([]byte(src))
	var unknown *UnknownKeywordError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "orientation", unknown.Table)
	assert.Equal(t, "Q", unknown.Keyword)
	assert.Equal(t, 2, unknown.Pos.Line)
	assert.Equal(t, 27, unknown.Pos.Column)
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("Y")
	require.NoError(t, err)
	assert.Equal(t, AxisY, a)
	_, err = ParseAxis("Z")
	assert.Error(t, err)
}
