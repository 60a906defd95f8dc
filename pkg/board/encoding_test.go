package board

import (
	"strings"
	"testing"

	"github.com/cbodonnell/civboard/pkg/board/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decoratedBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewWithSize(3)
	require.NoError(t, err)
	require.NoError(t, b.SetTileHills(0, 0, true))
	require.NoError(t, b.SetTileFeature(0, 0, types.FeatureForest))
	require.NoError(t, b.SetTileTerrain(3, 3, types.TerrainDesert))
	require.NoError(t, b.SetTileFeature(3, 3, types.FeatureOasis))
	require.NoError(t, b.SetTileTerrain(6, 3, types.TerrainCoast))
	require.NoError(t, b.SetTileFeature(6, 3, types.FeatureReef))
	require.NoError(t, b.FlipRiver(2, 2, types.EdgeEast))
	require.NoError(t, b.FlipRiver(2, 2, types.EdgeSouthEast))
	require.NoError(t, b.PlaceImprovement(1, 4, types.ColorPurple, types.ImprovementFishingBoats))
	return b
}

func TestBoard_String(t *testing.T) {
	b := decoratedBoard(t)
	text := b.String()

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 2+37)
	assert.Equal(t, "civboard 1", lines[0])
	assert.Equal(t, "size 3", lines[1])
	assert.Equal(t, "0 0 grassland 1 forest 000000 -", lines[2])
	assert.Contains(t, lines, "3 3 desert 0 oasis 000000 -")
	assert.Contains(t, lines, "6 3 coast 0 reef 000000 -")
	assert.Contains(t, lines, "2 2 grassland 0 - 100001 -")
	assert.Contains(t, lines, "1 4 grassland 0 - 000000 purple:fishing_boats")

	assert.Equal(t, text, b.String(), "encoding must be deterministic")
}

func TestParseBoard_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		board func(t *testing.T) *Board
	}{
		{name: "default", board: func(t *testing.T) *Board { return New() }},
		{name: "decorated", board: decoratedBoard},
		{
			name: "resized",
			board: func(t *testing.T) *Board {
				b := decoratedBoard(t)
				require.NoError(t, b.SetSize(7))
				require.NoError(t, b.SetTileTerrain(0, 14, types.TerrainSnow))
				return b
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.board(t)
			got, err := ParseBoard(b.String())
			require.NoError(t, err)
			assert.True(t, b.Equal(got))
			assert.Equal(t, b.String(), got.String())
		})
	}
}

func TestParseBoard_Errors(t *testing.T) {
	valid := decoratedBoard(t).String()
	lines := strings.Split(strings.TrimSuffix(valid, "\n"), "\n")
	replaceLine := func(i int, line string) string {
		out := append([]string{}, lines...)
		out[i] = line
		return strings.Join(out, "\n")
	}

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "bad header", input: replaceLine(0, "hexboard 1")},
		{name: "bad version", input: replaceLine(0, "civboard 2")},
		{name: "bad size line", input: replaceLine(1, "radius 3")},
		{name: "size too small", input: replaceLine(1, "size 2")},
		{name: "missing tile", input: strings.Join(lines[:len(lines)-1], "\n")},
		{name: "duplicate tile", input: replaceLine(3, lines[2])},
		{name: "off board tile", input: replaceLine(2, "9 0 grassland 0 - 000000 -")},
		{name: "unknown terrain", input: replaceLine(2, "0 0 swamp 0 - 000000 -")},
		{name: "bad hills", input: replaceLine(2, "0 0 grassland yes - 000000 -")},
		{name: "hills on ocean", input: replaceLine(2, "0 0 ocean 1 - 000000 -")},
		{name: "reef on grassland", input: replaceLine(2, "0 0 grassland 0 reef 000000 -")},
		{name: "none feature", input: replaceLine(2, "0 0 grassland 0 none 000000 -")},
		{name: "short rivers", input: replaceLine(2, "0 0 grassland 0 - 0000 -")},
		{name: "bad rivers", input: replaceLine(2, "0 0 grassland 0 - 00x000 -")},
		{name: "improvement without color", input: replaceLine(2, "0 0 grassland 0 - 000000 farm")},
		{name: "none improvement", input: replaceLine(2, "0 0 grassland 0 - 000000 red:none")},
		{name: "extra field", input: replaceLine(2, "0 0 grassland 0 - 000000 - x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBoard(tt.input)
			assert.Nil(t, got)
			assert.True(t, IsInvalidArgument(err), "got %v", err)
		})
	}
}
