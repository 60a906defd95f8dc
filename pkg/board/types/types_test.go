package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNames(t *testing.T) {
	for _, terrain := range Terrains() {
		got, err := ParseTerrain(terrain.String())
		require.NoError(t, err)
		assert.Equal(t, terrain, got)
	}
	for _, feature := range Features() {
		got, err := ParseFeature(feature.String())
		require.NoError(t, err)
		assert.Equal(t, feature, got)
	}
	for _, edge := range Edges() {
		got, err := ParseTileEdge(edge.String())
		require.NoError(t, err)
		assert.Equal(t, edge, got)
	}

	_, err := ParseTerrain("")
	assert.Error(t, err)
	_, err = ParseCityColor("mauve")
	assert.Error(t, err)
	_, err = ParseTileImprovement("castle")
	assert.Error(t, err)
}

func TestTerrain_IsWater(t *testing.T) {
	water := map[Terrain]bool{TerrainCoast: true, TerrainOcean: true, TerrainLake: true}
	for _, terrain := range Terrains() {
		assert.Equal(t, water[terrain], terrain.IsWater(), terrain.String())
	}
}

func TestTileEdge_Opposite(t *testing.T) {
	assert.Equal(t, EdgeWest, EdgeEast.Opposite())
	assert.Equal(t, EdgeSouthWest, EdgeNorthEast.Opposite())
	assert.Equal(t, EdgeSouthEast, EdgeNorthWest.Opposite())
	for _, edge := range Edges() {
		assert.Equal(t, edge, edge.Opposite().Opposite())
	}
}

func TestInvalidValuesString(t *testing.T) {
	assert.Equal(t, "terrain(42)", Terrain(42).String())
	assert.Equal(t, "edge(6)", TileEdge(6).String())
	_, err := Terrain(42).MarshalText()
	assert.Error(t, err)
}

func TestJSONNames(t *testing.T) {
	type payload struct {
		Terrain     Terrain         `json:"terrain"`
		Feature     Feature         `json:"feature"`
		Edge        TileEdge        `json:"edge"`
		Color       CityColor       `json:"color"`
		Improvement TileImprovement `json:"improvement"`
	}
	in := payload{
		Terrain:     TerrainTundra,
		Feature:     FeatureForest,
		Edge:        EdgeSouthWest,
		Color:       ColorOrange,
		Improvement: ImprovementLumberMill,
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"terrain":"tundra","feature":"forest","edge":"south_west","color":"orange","improvement":"lumber_mill"}`, string(b))

	var out payload
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	assert.Error(t, json.Unmarshal([]byte(`{"terrain":"lava"}`), &out))
}
