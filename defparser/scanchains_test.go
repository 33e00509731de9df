package defparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScanChains(t *testing.T) {
	src := `SCANCHAINS 1 ;
- chain1 + PARTITION p1 MAXBITS 64
  + COMMONSCANPINS ( IN SI ) ( OUT SO )
  + START PIN scan_in
  + FLOATING A ( IN SI ) ( OUT SO ) B ( BITS 4 )
  + FLOATING C
  + ORDERED D ( OUT Q ) E ( IN D )
  + ORDERED F G
  + STOP H SI ;
END SCANCHAINS`

	s, err := ParseScanChains([]byte(src))
	require.NoError(t, err)
	sc := s.Items[0]

	assert.Equal(t, "chain1", sc.Name)
	require.NotNil(t, sc.Partition)
	assert.Equal(t, "p1", sc.Partition.Name)
	assert.Equal(t, int32(64), *sc.Partition.MaxBits)
	assert.Equal(t, &ScanPins{In: "SI", Out: "SO"}, sc.CommonScanPins)
	assert.Equal(t, &ScanPoint{Pin: "scan_in"}, sc.Start)
	assert.Equal(t, &ScanPoint{Component: "H", Pin: "SI"}, sc.Stop)

	require.Len(t, sc.Floating, 3)
	assert.Equal(t, ScanCell{Name: "A", In: "SI", Out: "SO"}, sc.Floating[0])
	require.NotNil(t, sc.Floating[1].Bits)
	assert.Equal(t, int32(4), *sc.Floating[1].Bits)
	assert.Equal(t, "C", sc.Floating[2].Name)

	require.Len(t, sc.Ordered, 2)
	assert.Equal(t, []ScanCell{{Name: "D", Out: "Q"}, {Name: "E", In: "D"}}, sc.Ordered[0])
	assert.Equal(t, []ScanCell{{Name: "F"}, {Name: "G"}}, sc.Ordered[1])
}

func TestParseScanChainsStartWithoutPin(t *testing.T) {
	s, err := ParseScanChains([]byte("SCANCHAINS 1 ;\n- c + START u1 + STOP u2 ;\nEND SCANCHAINS"))
	require.NoError(t, err)
	assert.Equal(t, &ScanPoint{Component: "u1"}, s.Items[0].Start)
	assert.Equal(t, &ScanPoint{Component: "u2"}, s.Items[0].Stop)
}

func TestParseScanChainsOrderedNeedsCell(t *testing.T) {
	_, err := ParseScanChains([]byte("SCANCHAINS 1 ;\n- c + ORDERED ;\nEND SCANCHAINS"))
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "component name", syntaxErr.Expected)
}
