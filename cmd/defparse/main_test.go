package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/martinemde/defparse/defparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const smallDesign = `VERSION 5.8 ;
DESIGN top ;
UNITS DISTANCE MICRONS 1000 ;
DIEAREA ( 0 0 ) ( 1000 1000 ) ;
COMPONENTS 2 ;
- I1 INV + PLACED ( 0 0 ) N ;
- I2 INV + PLACED ( 100 0 ) FS ;
END COMPONENTS
NETS 1 ;
- N1 ( I1 Z ) ( I2 A ) + USE SIGNAL ;
END NETS
END DESIGN
`

func writeDesignFile(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func testOptions() []defparser.Option {
	return []defparser.Option{defparser.WithLogger(zap.NewNop())}
}

func TestSummarizeKeepsInputOrder(t *testing.T) {
	var paths []string
	for _, name := range []string{"a.def", "b.def", "c.def", "d.def", "e.def"} {
		paths = append(paths, writeDesignFile(t, name, smallDesign))
	}

	summaries, err := summarize(context.Background(), paths, 2, testOptions())
	require.NoError(t, err)
	require.Len(t, summaries, len(paths))
	for i, s := range summaries {
		assert.Equal(t, paths[i], s.Path)
		assert.Equal(t, "top", s.Design)
		require.Len(t, s.Sections, 2)
		assert.Equal(t, "COMPONENTS", s.Sections[0].Name)
		assert.Equal(t, 2, s.Sections[0].Parsed)
	}
}

func TestSummarizeReportsFirstFailure(t *testing.T) {
	good := writeDesignFile(t, "good.def", smallDesign)
	bad := writeDesignFile(t, "bad.def", "DESIGN top ;\nCOMPONENTS 1 ;\n")

	_, err := summarize(context.Background(), []string{good, bad}, 4, testOptions())
	require.Error(t, err)
	var unterminated *defparser.UnterminatedSectionError
	assert.ErrorAs(t, err, &unterminated)
	assert.Contains(t, err.Error(), "bad.def")
}

func TestSummarizeMissingFile(t *testing.T) {
	_, err := summarize(context.Background(), []string{filepath.Join(t.TempDir(), "nope.def")}, 1, testOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, []fileSummary{
		{Path: "top.def", Design: "top", Sections: []defparser.SectionInfo{
			{Name: "COMPONENTS", Declared: 2, Parsed: 2},
			{Name: "NETS", Declared: 3, Parsed: 1},
		}},
		{Path: "empty.def", Design: "empty"},
	})

	out := buf.String()
	assert.Contains(t, out, "COMPONENTS")
	assert.Contains(t, out, "NETS")
	assert.Contains(t, out, "empty.def")
	assert.Contains(t, out, "top.def")
}

func TestWriteDesignJSON(t *testing.T) {
	d, err := defparser.Parse([]byte(smallDesign))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeDesign(&buf, d, "json"))
	assert.Contains(t, buf.String(), `"Name": "top"`)
	assert.Contains(t, buf.String(), `"Model": "INV"`)
}

func TestWriteDesignYAML(t *testing.T) {
	d, err := defparser.Parse([]byte(smallDesign))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeDesign(&buf, d, "yaml"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	config, ok := decoded["config"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "top", config["name"])
}

func TestWriteDesignUnknownFormat(t *testing.T) {
	err := writeDesign(&bytes.Buffer{}, &defparser.Design{}, "xml")
	assert.EqualError(t, err, `unknown format "xml" (want json or yaml)`)
}

func TestCheckDesign(t *testing.T) {
	d, err := defparser.Parse([]byte(smallDesign))
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.True(t, checkDesign(&buf, "top.def", d, true))
	assert.Equal(t, "top.def: ok\n", buf.String())
}

func TestCheckDesignWarningsAsErrors(t *testing.T) {
	d, err := defparser.Parse([]byte("DESIGN top ;\nDIEAREA ( 0 0 ) ( 10 10 ) ;\nEND DESIGN"))
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.True(t, checkDesign(&buf, "top.def", d, false))
	assert.Contains(t, buf.String(), "WARNING units")

	buf.Reset()
	assert.False(t, checkDesign(&buf, "top.def", d, true))
}

func TestRootCommandSummary(t *testing.T) {
	path := writeDesignFile(t, "top.def", smallDesign)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"summary", "--jobs", "1", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "COMPONENTS")
}
