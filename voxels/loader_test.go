package voxels

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGridShape(t *testing.T) {
	g, err := ReadGrid(strings.NewReader("1,1\n1,1\n\n0,0\n0,0"), DefaultLoadOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, g.NX)
	assert.Equal(t, 2, g.NY)
	assert.Equal(t, 2, g.NZ)

	expected := [][][]Weight{
		{{1, 1}, {1, 1}},
		{{0, 0}, {0, 0}},
	}
	for z := range expected {
		for y := range expected[z] {
			for x, w := range expected[z][y] {
				assert.Equal(t, w, g.At(z, y, x), "cell (%d,%d,%d)", z, y, x)
			}
		}
	}
}

func TestReadGridThreshold(t *testing.T) {
	g, err := ReadGrid(strings.NewReader("0.05,0.1,0.7\n"), DefaultLoadOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, g.NX)
	assert.Equal(t, 1, g.NY)
	assert.Equal(t, 1, g.NZ)

	assert.Equal(t, Empty, g.At(0, 0, 0))
	assert.Equal(t, Full, g.At(0, 0, 1))
	assert.Equal(t, Full, g.At(0, 0, 2))

	assert.Equal(t, 0.05, g.Raw(0, 0, 0))
	assert.Equal(t, 0.7, g.Raw(0, 0, 2))
}

func TestReadGridOptions(t *testing.T) {
	opts := DefaultLoadOptions()
	opts.Dim = 2.5
	opts.Threshold = 0.5
	g, err := ReadGrid(strings.NewReader("0.4,0.6\r\n0.5,0.1\r\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, 2.5, g.Dim)
	assert.Equal(t, Empty, g.At(0, 0, 0))
	assert.Equal(t, Full, g.At(0, 0, 1))
	assert.Equal(t, Full, g.At(0, 1, 0))
	assert.Equal(t, Empty, g.At(0, 1, 1))
}

func TestReadGridMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
		slice int
		row   int
	}{
		{"RaggedRow", "1,1\n1\n\n0,0\n0,0", 0, 1},
		{"RaggedSlice", "1,1\n1,1\n\n0,0", 1, -1},
		{"RaggedLaterRow", "1,1\n1,1\n\n0,0\n0,0,0", 1, 1},
		{"BadNumber", "1,x", 0, 0},
		{"Empty", "", 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadGrid(strings.NewReader(tc.input), DefaultLoadOptions())
			require.Error(t, err)
			var malformed *MalformedInputError
			require.True(t, errors.As(err, &malformed), "unexpected error: %v", err)
			assert.Equal(t, tc.slice, malformed.Slice)
			assert.Equal(t, tc.row, malformed.Row)
		})
	}
}

func TestWriteGridRoundTrip(t *testing.T) {
	input := "0.2,0\n0,0.9\n\n0,0.05\n1,0\n"
	g, err := ReadGrid(strings.NewReader(input), DefaultLoadOptions())
	require.NoError(t, err)

	var raw bytes.Buffer
	require.NoError(t, WriteGrid(&raw, g, true))
	assert.Equal(t, input, raw.String())

	var weights bytes.Buffer
	require.NoError(t, WriteGrid(&weights, g, false))
	assert.Equal(t, "1,0\n0,1\n\n0,0\n1,0\n", weights.String())

	g1, err := ReadGrid(&weights, DefaultLoadOptions())
	require.NoError(t, err)
	assertSameWeights(t, g, g1)
}

func TestReadGridInvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opts LoadOptions
	}{
		{"Zero", LoadOptions{}},
		{"NegativeDim", LoadOptions{Dim: -1, Threshold: DefaultThreshold}},
		{"NaNDim", LoadOptions{Dim: math.NaN(), Threshold: DefaultThreshold}},
		{"InfDim", LoadOptions{Dim: math.Inf(1), Threshold: DefaultThreshold}},
		{"NaNThreshold", LoadOptions{Dim: 1, Threshold: math.NaN()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ReadGrid(strings.NewReader("0,0\n0,0"), tc.opts)
			assert.Error(t, err)
			assert.Nil(t, g)
		})
	}
}
