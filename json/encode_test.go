package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value Value
		want  string
	}{
		{Null(), "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Int(42), "42"},
		{Int(-3), "-3"},
		{Float(2.5), "2.5"},
		{String("hello"), `"hello"`},
	}

	for _, tt := range tests {
		got, err := Format(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatContainersCompact(t *testing.T) {
	t.Parallel()

	got, err := Format(Array(Int(1), Int(2), Int(3)))
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", got)

	got, err = Format(Object(map[string]Value{
		"b": Int(1),
		"a": Array(Bool(true)),
	}))
	require.NoError(t, err)
	assert.Equal(t, `{"a":[true],"b":1}`, got)
}

func TestFormatObjectKeysSorted(t *testing.T) {
	t.Parallel()

	v := Object(map[string]Value{"z": Int(1), "m": Int(2), "a": Int(3)})

	got, err := Format(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"m":2,"z":1}`, got)
}

func TestFormatStringsNotEscaped(t *testing.T) {
	t.Parallel()

	got, err := Format(String(`say "hi"`))
	require.NoError(t, err)
	assert.Equal(t, `"say "hi""`, got)
}

func TestFormatUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := Format(Value{Kind: Kind(99)})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = Format(Array(Int(1), Value{Kind: Kind(200)}))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	// Canonical trees only: no embedded quotes, no null (the decoder never
	// produces the Null variant).
	trees := []Value{
		Object(map[string]Value{
			"name":   String("grit"),
			"count":  Int(12),
			"ratio":  Float(0.75),
			"active": Bool(true),
			"tags":   Array(String("a"), String("b")),
			"nested": Object(map[string]Value{"deep": Array(Int(1), Float(1.5))}),
		}),
		Array(Int(1), String("two"), Bool(false), Object(map[string]Value{"k": Int(9)})),
	}

	for _, tree := range trees {
		text, err := Format(tree)
		require.NoError(t, err)

		back, err := Parse(text)
		require.NoError(t, err)
		assert.Equal(t, tree, back)
	}
}
