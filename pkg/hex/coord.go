package hex

// Axial represents axial coordinates (q, r) for a pointy-top hex grid.
// The implicit third cube coordinate is s = -q - r.
type Axial struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Directions are the six neighbor offsets, starting east and going
// counter-clockwise: E, NE, NW, W, SW, SE.
var Directions = [6]Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// S returns the implicit cube coordinate.
func (a Axial) S() int { return -a.Q - a.R }

// Neighbor returns the adjacent coordinate in direction dir (0..5).
func (a Axial) Neighbor(dir int) Axial {
	return a.Add(Directions[dir])
}

// Length returns the hex distance from the origin.
func (a Axial) Length() int {
	return max(abs(a.Q), abs(a.R), abs(a.S()))
}

// Distance returns the hex distance between two axial coordinates.
func Distance(a, b Axial) int {
	return Axial{a.Q - b.Q, a.R - b.R}.Length()
}

// Disk returns all coordinates at distance <= radius from the origin,
// ordered by row (r) and then by q within the row.
func Disk(radius int) []Axial {
	if radius < 0 {
		return nil
	}
	res := make([]Axial, 0, Count(radius))
	for r := -radius; r <= radius; r++ {
		for q := max(-radius, -r-radius); q <= min(radius, -r+radius); q++ {
			res = append(res, Axial{q, r})
		}
	}
	return res
}

// Count returns the number of hexes within radius of the origin.
func Count(radius int) int {
	return 1 + 3*radius*(radius+1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
