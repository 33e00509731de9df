package defparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueDispatch(t *testing.T) {
	tests := []struct {
		input string
		want  PropertyValue
	}{
		{`"aString"`, PropertyValue{Kind: ValueString, Str: "aString", Raw: "aString"}},
		{"1", PropertyValue{Kind: ValueInt, Int: 1, Raw: "1"}},
		{"1.1", PropertyValue{Kind: ValueReal, Real: 1.1, Raw: "1.1"}},
		{"bareword", PropertyValue{Kind: ValueString, Str: "bareword", Raw: "bareword"}},
		{"-25", PropertyValue{Kind: ValueInt, Int: -25, Raw: "-25"}},
		{"25.25", PropertyValue{Kind: ValueReal, Real: 25.25, Raw: "25.25"}},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		v, err := ParseValue(tokens[0])
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, v, "input: %s", tt.input)
	}
}

func TestParseValueRejectsPunctuation(t *testing.T) {
	tokens := collectTokens(t, ";")
	_, err := ParseValue(tokens[0])
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "property value", syntaxErr.Expected)
}

func TestParseValueOverflow(t *testing.T) {
	tokens := collectTokens(t, "99999999999")
	_, err := ParseValue(tokens[0])
	var overflow *OverflowError
	require.True(t, errors.As(err, &overflow))
}

func TestParseProperties(t *testing.T) {
	props, err := ParseProperties([]byte(`+ PROPERTY strprop "aString" + PROPERTY intprop 1 + PROPERTY realprop 1.1`))
	require.NoError(t, err)
	assert.Equal(t, Properties{
		{Name: "strprop", Value: PropertyValue{Kind: ValueString, Str: "aString", Raw: "aString"}},
		{Name: "intprop", Value: PropertyValue{Kind: ValueInt, Int: 1, Raw: "1"}},
		{Name: "realprop", Value: PropertyValue{Kind: ValueReal, Real: 1.1, Raw: "1.1"}},
	}, props)
}

func TestParsePropertiesSeveralPairsPerClause(t *testing.T) {
	props, err := ParseProperties([]byte(`+ PROPERTY a 1 b "two" + PROPERTY c 3.5`))
	require.NoError(t, err)
	require.Len(t, props, 3)
	assert.Equal(t, "a", props[0].Name)
	assert.Equal(t, "b", props[1].Name)
	assert.Equal(t, "two", props[1].Value.Str)
	assert.Equal(t, "c", props[2].Name)
}

func TestParsePropertiesDuplicatesAppend(t *testing.T) {
	props, err := ParseProperties([]byte(`+ PROPERTY weight 1 + PROPERTY weight 2`))
	require.NoError(t, err)
	require.Len(t, props, 2)

	v, ok := props.Get("weight")
	require.True(t, ok)
	assert.Equal(t, int32(2), v.Int)
}

func TestParsePropertiesRequiresPair(t *testing.T) {
	_, err := ParseProperties([]byte(`+ PROPERTY`))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "property name", syntaxErr.Expected)
}

func TestPropertiesTypedGetters(t *testing.T) {
	props, err := ParseProperties([]byte(`+ PROPERTY n 25 r 25.25 s "42" w word`))
	require.NoError(t, err)

	n, err := props.Int("n")
	require.NoError(t, err)
	assert.Equal(t, int32(25), n)

	r, err := props.Float("r")
	require.NoError(t, err)
	assert.InDelta(t, 25.25, r, 1e-9)

	fromString, err := props.Int("s")
	require.NoError(t, err)
	assert.Equal(t, int32(42), fromString)

	asFloat, err := props.Float("n")
	require.NoError(t, err)
	assert.InDelta(t, 25.0, asFloat, 1e-9)

	s, err := props.Text("r")
	require.NoError(t, err)
	assert.Equal(t, "25.25", s)

	_, err = props.Int("w")
	assert.Error(t, err)

	_, err = props.Int("missing")
	assert.Error(t, err)
}
