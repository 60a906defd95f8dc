package types

import "fmt"

// Terrain is the base ground type of a tile.
type Terrain uint8

const (
	TerrainGrassland Terrain = iota
	TerrainPlains
	TerrainDesert
	TerrainTundra
	TerrainSnow
	TerrainCoast
	TerrainOcean
	TerrainLake
	TerrainMountain
)

var terrainNames = [...]string{
	TerrainGrassland: "grassland",
	TerrainPlains:    "plains",
	TerrainDesert:    "desert",
	TerrainTundra:    "tundra",
	TerrainSnow:      "snow",
	TerrainCoast:     "coast",
	TerrainOcean:     "ocean",
	TerrainLake:      "lake",
	TerrainMountain:  "mountain",
}

// Terrains lists every terrain in declaration order.
func Terrains() []Terrain {
	out := make([]Terrain, len(terrainNames))
	for i := range terrainNames {
		out[i] = Terrain(i)
	}
	return out
}

func (t Terrain) Valid() bool {
	return int(t) < len(terrainNames)
}

// IsWater reports whether the terrain is a body of water.
func (t Terrain) IsWater() bool {
	return t == TerrainCoast || t == TerrainOcean || t == TerrainLake
}

func (t Terrain) String() string {
	if !t.Valid() {
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
	return terrainNames[t]
}

// ParseTerrain parses a terrain name as produced by String.
func ParseTerrain(s string) (Terrain, error) {
	i, err := parseName(terrainNames[:], s)
	if err != nil {
		return 0, fmt.Errorf("unknown terrain: %q", s)
	}
	return Terrain(i), nil
}

func (t Terrain) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid terrain %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *Terrain) UnmarshalText(b []byte) error {
	parsed, err := ParseTerrain(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
