package types

import "fmt"

// TileEdge names one of the six sides of a pointy-top hex. The values follow
// hex.Directions, so edge i borders the neighbor in direction i.
type TileEdge uint8

const (
	EdgeEast TileEdge = iota
	EdgeNorthEast
	EdgeNorthWest
	EdgeWest
	EdgeSouthWest
	EdgeSouthEast
)

// EdgeCount is the number of sides of a hex.
const EdgeCount = 6

var edgeNames = [EdgeCount]string{
	EdgeEast:      "east",
	EdgeNorthEast: "north_east",
	EdgeNorthWest: "north_west",
	EdgeWest:      "west",
	EdgeSouthWest: "south_west",
	EdgeSouthEast: "south_east",
}

func Edges() []TileEdge {
	return []TileEdge{EdgeEast, EdgeNorthEast, EdgeNorthWest, EdgeWest, EdgeSouthWest, EdgeSouthEast}
}

func (e TileEdge) Valid() bool {
	return e < EdgeCount
}

// Opposite returns the edge on the far side of the hex.
func (e TileEdge) Opposite() TileEdge {
	return (e + 3) % EdgeCount
}

func (e TileEdge) String() string {
	if !e.Valid() {
		return fmt.Sprintf("edge(%d)", uint8(e))
	}
	return edgeNames[e]
}

func ParseTileEdge(s string) (TileEdge, error) {
	i, err := parseName(edgeNames[:], s)
	if err != nil {
		return 0, fmt.Errorf("unknown tile edge: %q", s)
	}
	return TileEdge(i), nil
}

func (e TileEdge) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("invalid tile edge %d", uint8(e))
	}
	return []byte(e.String()), nil
}

func (e *TileEdge) UnmarshalText(b []byte) error {
	parsed, err := ParseTileEdge(string(b))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
