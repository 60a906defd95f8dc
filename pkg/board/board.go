package board

import (
	"github.com/cbodonnell/civboard/pkg/board/constants"
	"github.com/cbodonnell/civboard/pkg/board/types"
	"github.com/cbodonnell/civboard/pkg/hex"
)

// Tile is the full attribute set of a single hex.
type Tile struct {
	Terrain     types.Terrain         `json:"terrain"`
	Hills       bool                  `json:"hills"`
	Feature     types.Feature         `json:"feature"`
	Rivers      [types.EdgeCount]bool `json:"rivers"`
	Color       types.CityColor       `json:"color"`
	Improvement types.TileImprovement `json:"improvement"`
}

// HasFeature reports whether a feature is present on the tile.
func (t Tile) HasFeature() bool {
	return t.Feature != types.FeatureNone
}

// HasImprovement reports whether an improvement is placed on the tile.
func (t Tile) HasImprovement() bool {
	return t.Improvement != types.ImprovementNone
}

// Coord addresses a tile on a board. R is the row counted from the top of
// the board and Q is the position within that row, so both are >= 0.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Board is a hexagonal grid of tiles with a given size, the distance from
// the center hex to the edge. A board with size n has 2n+1 rows; the middle
// row holds 2n+1 tiles and each row further out holds one fewer.
//
// Tiles are stored by their axial position relative to the center, so a
// resize keeps every tile that still fits and only external coordinates move.
//
// A Board is not safe for concurrent use.
type Board struct {
	size  int
	tiles map[hex.Axial]*Tile
}

// New creates a board of the default size with default tiles.
func New() *Board {
	b := &Board{}
	b.ResetSize()
	return b
}

// NewWithSize creates a board of the given size with default tiles.
func NewWithSize(size int) (*Board, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	b := &Board{size: size, tiles: make(map[hex.Axial]*Tile, hex.Count(size))}
	b.fill()
	return b, nil
}

func checkSize(size int) error {
	if size < constants.MinBoardSize {
		return invalidArgument("invalid size %d, must be >= %d", size, constants.MinBoardSize)
	}
	if size > constants.MaxBoardSize {
		return invalidArgument("invalid size %d, must be <= %d", size, constants.MaxBoardSize)
	}
	return nil
}

// fill adds default tiles for every position missing within the radius.
func (b *Board) fill() {
	for _, a := range hex.Disk(b.size) {
		if _, ok := b.tiles[a]; !ok {
			b.tiles[a] = &Tile{}
		}
	}
}

// SetSize changes the board size. Tiles still within the new radius keep
// their attributes, tiles outside it are dropped and new positions get
// default tiles.
func (b *Board) SetSize(size int) error {
	if err := checkSize(size); err != nil {
		return err
	}
	if size < b.size {
		for a := range b.tiles {
			if a.Length() > size {
				delete(b.tiles, a)
			}
		}
	}
	b.size = size
	b.fill()
	return nil
}

func (b *Board) Size() int {
	return b.size
}

// ResetTiles sets every tile back to plain grassland.
func (b *Board) ResetTiles() {
	for _, t := range b.tiles {
		*t = Tile{}
	}
}

// ResetSize sets the board back to the default size with default tiles.
func (b *Board) ResetSize() {
	b.size = constants.DefaultBoardSize
	b.tiles = make(map[hex.Axial]*Tile, hex.Count(b.size))
	b.fill()
}

// Contains reports whether (q, r) addresses a tile.
func (b *Board) Contains(q, r int) bool {
	_, ok := b.toAxial(q, r)
	return ok
}

// Coords returns every tile coordinate, row by row from the top.
func (b *Board) Coords() []Coord {
	disk := hex.Disk(b.size)
	out := make([]Coord, len(disk))
	for i, a := range disk {
		out[i] = b.fromAxial(a)
	}
	return out
}

func (b *Board) toAxial(q, r int) (hex.Axial, bool) {
	if q < 0 || r < 0 || r > 2*b.size {
		return hex.Axial{}, false
	}
	dr := r - b.size
	if q >= 2*b.size+1-abs(dr) {
		return hex.Axial{}, false
	}
	return hex.Axial{Q: rowStart(b.size, dr) + q, R: dr}, true
}

func (b *Board) fromAxial(a hex.Axial) Coord {
	return Coord{Q: a.Q - rowStart(b.size, a.R), R: a.R + b.size}
}

// rowStart is the axial q of the first tile in row dr.
func rowStart(size, dr int) int {
	return max(-size, -size-dr)
}

func (b *Board) tile(q, r int) (*Tile, error) {
	a, ok := b.toAxial(q, r)
	if !ok {
		return nil, invalidCoordinate(q, r)
	}
	return b.tiles[a], nil
}

// Tile returns a copy of the tile at (q, r).
func (b *Board) Tile(q, r int) (Tile, error) {
	t, err := b.tile(q, r)
	if err != nil {
		return Tile{}, err
	}
	return *t, nil
}

// SetTile replaces every attribute of the tile at (q, r) at once.
func (b *Board) SetTile(q, r int, tile Tile) error {
	t, err := b.tile(q, r)
	if err != nil {
		return err
	}
	if err := checkTile(tile); err != nil {
		return err
	}
	*t = tile
	return nil
}

// SetTileTerrain changes the terrain of a tile. The change is rejected if the
// tile's hills or feature would not be legal on the new terrain.
func (b *Board) SetTileTerrain(q, r int, terrain types.Terrain) error {
	t, err := b.tile(q, r)
	if err != nil {
		return err
	}
	next := *t
	next.Terrain = terrain
	if err := checkTile(next); err != nil {
		return err
	}
	t.Terrain = terrain
	return nil
}

func (b *Board) TileTerrain(q, r int) (types.Terrain, error) {
	t, err := b.tile(q, r)
	if err != nil {
		return 0, err
	}
	return t.Terrain, nil
}

func (b *Board) SetTileHills(q, r int, hills bool) error {
	t, err := b.tile(q, r)
	if err != nil {
		return err
	}
	next := *t
	next.Hills = hills
	if err := checkTile(next); err != nil {
		return err
	}
	t.Hills = hills
	return nil
}

func (b *Board) HasHills(q, r int) (bool, error) {
	t, err := b.tile(q, r)
	if err != nil {
		return false, err
	}
	return t.Hills, nil
}

// SetTileFeature places a feature on a tile, replacing any existing one.
func (b *Board) SetTileFeature(q, r int, feature types.Feature) error {
	t, err := b.tile(q, r)
	if err != nil {
		return err
	}
	if feature == types.FeatureNone {
		return invalidArgument("feature must not be none, use RemoveTileFeature")
	}
	next := *t
	next.Feature = feature
	if err := checkTile(next); err != nil {
		return err
	}
	t.Feature = feature
	return nil
}

// TileFeature returns the feature on a tile and whether one is present.
func (b *Board) TileFeature(q, r int) (types.Feature, bool, error) {
	t, err := b.tile(q, r)
	if err != nil {
		return types.FeatureNone, false, err
	}
	return t.Feature, t.HasFeature(), nil
}

func (b *Board) RemoveTileFeature(q, r int) error {
	t, err := b.tile(q, r)
	if err != nil {
		return err
	}
	if !t.HasFeature() {
		return invalidState("no feature at (%d, %d)", q, r)
	}
	t.Feature = types.FeatureNone
	return nil
}

// Rivers returns the river flag of each edge, indexed by types.TileEdge.
func (b *Board) Rivers(q, r int) ([types.EdgeCount]bool, error) {
	t, err := b.tile(q, r)
	if err != nil {
		return [types.EdgeCount]bool{}, err
	}
	return t.Rivers, nil
}

// FlipRiver toggles the river flag on one edge of a tile. Only the given
// tile changes; use Neighbor to reach the tile sharing the edge.
func (b *Board) FlipRiver(q, r int, edge types.TileEdge) error {
	t, err := b.tile(q, r)
	if err != nil {
		return err
	}
	if !edge.Valid() {
		return invalidArgument("unknown tile edge %d", uint8(edge))
	}
	t.Rivers[edge] = !t.Rivers[edge]
	return nil
}

// Neighbor returns the coordinate of the tile across the given edge. The
// boolean is false when that position lies off the board.
func (b *Board) Neighbor(q, r int, edge types.TileEdge) (Coord, bool, error) {
	a, ok := b.toAxial(q, r)
	if !ok {
		return Coord{}, false, invalidCoordinate(q, r)
	}
	if !edge.Valid() {
		return Coord{}, false, invalidArgument("unknown tile edge %d", uint8(edge))
	}
	n := a.Neighbor(int(edge))
	if n.Length() > b.size {
		return Coord{}, false, nil
	}
	return b.fromAxial(n), true, nil
}

// PlaceImprovement puts an improvement owned by color on a tile, replacing
// whatever was there.
func (b *Board) PlaceImprovement(q, r int, color types.CityColor, improvement types.TileImprovement) error {
	t, err := b.tile(q, r)
	if err != nil {
		return err
	}
	if color == types.ColorNone || !color.Valid() {
		return invalidArgument("invalid owner color %s", color)
	}
	if improvement == types.ImprovementNone || !improvement.Valid() {
		return invalidArgument("invalid improvement %s", improvement)
	}
	t.Color = color
	t.Improvement = improvement
	return nil
}

func (b *Board) RemoveImprovement(q, r int) error {
	t, err := b.tile(q, r)
	if err != nil {
		return err
	}
	if !t.HasImprovement() {
		return invalidState("no improvement at (%d, %d)", q, r)
	}
	t.Color = types.ColorNone
	t.Improvement = types.ImprovementNone
	return nil
}

// Color returns the owner of the improvement on a tile, or types.ColorNone.
func (b *Board) Color(q, r int) (types.CityColor, error) {
	t, err := b.tile(q, r)
	if err != nil {
		return types.ColorNone, err
	}
	return t.Color, nil
}

// Improvement returns the improvement on a tile, or types.ImprovementNone.
func (b *Board) Improvement(q, r int) (types.TileImprovement, error) {
	t, err := b.tile(q, r)
	if err != nil {
		return types.ImprovementNone, err
	}
	return t.Improvement, nil
}

func (b *Board) HasImprovement(q, r int) (bool, error) {
	t, err := b.tile(q, r)
	if err != nil {
		return false, err
	}
	return t.HasImprovement(), nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{size: b.size, tiles: make(map[hex.Axial]*Tile, len(b.tiles))}
	for a, t := range b.tiles {
		tile := *t
		c.tiles[a] = &tile
	}
	return c
}

// Equal reports whether two boards have the same size and identical tiles.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.size != other.size || len(b.tiles) != len(other.tiles) {
		return false
	}
	for a, t := range b.tiles {
		o, ok := other.tiles[a]
		if !ok || *o != *t {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
