package graphtext_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/msttrace/core"
	"github.com/katalvlaran/msttrace/graphtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareInput is the reference description: four vertices, five edges.
const squareInput = `4 5
A B C D
e1 A B 2
e2 B C 6
e3 C D 1
e4 A D 5
e5 B D 3
`

// TestParse_Square parses the reference input and checks the resulting model.
func TestParse_Square(t *testing.T) {
	g, err := graphtext.ParseString(squareInput)
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 2, g.IndexOf("C"))

	edges := g.Edges()
	assert.Equal(t, core.Edge{ID: "e1", Weight: 2, Src: "A", Dst: "B"}, edges[0])
	assert.Equal(t, core.Edge{ID: "e5", Weight: 3, Src: "B", Dst: "D"}, edges[4])
}

// TestParse_WhitespaceAgnostic verifies that line structure is cosmetic: the
// same tokens on a single line parse identically.
func TestParse_WhitespaceAgnostic(t *testing.T) {
	oneLine := strings.Join(strings.Fields(squareInput), " ")

	a, err := graphtext.ParseString(squareInput)
	require.NoError(t, err)
	b, err := graphtext.ParseString(oneLine)
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, a.Vertices(), b.Vertices())
}

// TestParse_ZeroCounts covers the degenerate headers.
func TestParse_ZeroCounts(t *testing.T) {
	g, err := graphtext.ParseString("0 0")
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	g, err = graphtext.ParseString("1 0\nX")
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

// TestParse_NegativeWeight verifies that negative weights pass the boundary.
func TestParse_NegativeWeight(t *testing.T) {
	g, err := graphtext.ParseString("2 1\nA B\nneg A B -7")
	require.NoError(t, err)
	assert.Equal(t, int64(-7), g.Edges()[0].Weight)
}

// TestParse_Errors walks the failure taxonomy: every malformed input is a
// hard failure with its dedicated sentinel, before any Graph escapes.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", graphtext.ErrBadHeader},
		{"non-integer V", "x 3", graphtext.ErrBadHeader},
		{"non-integer E", "3 y", graphtext.ErrBadHeader},
		{"missing E", "3", graphtext.ErrBadHeader},
		{"negative V", "-1 0", graphtext.ErrBadHeader},
		{"negative E", "2 -2\nA B", graphtext.ErrBadHeader},
		{"missing vertex names", "3 0\nA B", graphtext.ErrTruncated},
		{"missing edge record", "2 2\nA B\ne1 A B 1", graphtext.ErrTruncated},
		{"partial edge record", "2 1\nA B\ne1 A B", graphtext.ErrTruncated},
		{"fractional weight", "2 1\nA B\ne1 A B 1.5", graphtext.ErrBadWeight},
		{"textual weight", "2 1\nA B\ne1 A B heavy", graphtext.ErrBadWeight},
		{"duplicate vertex name", "2 0\nA A", core.ErrDuplicateVertex},
		{"duplicate edge id", "2 2\nA B\ne1 A B 1\ne1 B A 2", core.ErrDuplicateEdge},
		{"unknown src", "2 1\nA B\ne1 Z B 1", graphtext.ErrUnknownEndpoint},
		{"unknown dst", "2 1\nA B\ne1 A Z 1", graphtext.ErrUnknownEndpoint},
		{"trailing tokens", "2 1\nA B\ne1 A B 1\nextra", graphtext.ErrTrailingInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graphtext.ParseString(tc.input)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
