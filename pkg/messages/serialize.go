package messages

import (
	"fmt"

	boardfb "github.com/cbodonnell/civboard/flatbuffers/board"
	"github.com/cbodonnell/civboard/pkg/board"
	"github.com/cbodonnell/civboard/pkg/board/constants"
	"github.com/cbodonnell/civboard/pkg/board/types"
	"github.com/cbodonnell/civboard/pkg/hex"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

// Encoder and decoder are safe for concurrent EncodeAll/DecodeAll calls.
var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	decoder, _ = zstd.NewReader(nil)
)

// SerializeBoard encodes a board as a zstd compressed flatbuffer.
func SerializeBoard(b *board.Board) ([]byte, error) {
	buf, err := SerializeBoardFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize board: %v", err)
	}
	return encoder.EncodeAll(buf, make([]byte, 0, len(buf)/2)), nil
}

// DeserializeBoard decodes a snapshot produced by SerializeBoard.
func DeserializeBoard(data []byte) (*board.Board, error) {
	buf, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress board: %v", err)
	}

	b, err := DeserializeBoardFlatbuffer(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize board: %v", err)
	}

	return b, nil
}

func SerializeBoardFlatbuffer(b *board.Board) ([]byte, error) {
	builder := flatbuffers.NewBuilder(1024)

	coords := b.Coords()
	tiles := make([]flatbuffers.UOffsetT, 0, len(coords))
	for _, c := range coords {
		tile, err := b.Tile(c.Q, c.R)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, serializeTileFlatbuffer(builder, c, tile))
	}
	boardfb.BoardStartTilesVector(builder, len(tiles))
	for i := len(tiles) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(tiles[i])
	}
	tileVector := builder.EndVector(len(tiles))

	boardfb.BoardStart(builder)
	boardfb.BoardAddVersion(builder, uint16(constants.FormatVersion))
	boardfb.BoardAddSize(builder, int32(b.Size()))
	boardfb.BoardAddTiles(builder, tileVector)
	boardOffset := boardfb.BoardEnd(builder)
	builder.Finish(boardOffset)

	return builder.FinishedBytes(), nil
}

func serializeTileFlatbuffer(builder *flatbuffers.Builder, c board.Coord, t board.Tile) flatbuffers.UOffsetT {
	var rivers byte
	for i, river := range t.Rivers {
		if river {
			rivers |= 1 << i
		}
	}

	boardfb.TileStart(builder)
	boardfb.TileAddQ(builder, int32(c.Q))
	boardfb.TileAddR(builder, int32(c.R))
	boardfb.TileAddTerrain(builder, byte(t.Terrain))
	boardfb.TileAddHills(builder, t.Hills)
	boardfb.TileAddFeature(builder, byte(t.Feature))
	boardfb.TileAddRivers(builder, rivers)
	boardfb.TileAddColor(builder, byte(t.Color))
	boardfb.TileAddImprovement(builder, byte(t.Improvement))
	return boardfb.TileEnd(builder)
}

// DeserializeBoardFlatbuffer rebuilds a board from an uncompressed
// flatbuffer. Every tile goes through board.SetTile, so a buffer describing
// an illegal tile is rejected.
func DeserializeBoardFlatbuffer(buf []byte) (b *board.Board, err error) {
	// flatbuffers accessors panic on out of range offsets
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("malformed board buffer: %v", r)
		}
	}()

	if len(buf) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("board buffer too short")
	}
	boardFlatbuffer := boardfb.GetRootAsBoard(buf, 0)
	if v := int(boardFlatbuffer.Version()); v != constants.FormatVersion {
		return nil, fmt.Errorf("unsupported board version %d", v)
	}

	size := int(boardFlatbuffer.Size())
	b, err = board.NewWithSize(size)
	if err != nil {
		return nil, err
	}
	if n := boardFlatbuffer.TilesLength(); n != hex.Count(size) {
		return nil, fmt.Errorf("expected %d tiles, got %d", hex.Count(size), n)
	}

	seen := make(map[board.Coord]bool, boardFlatbuffer.TilesLength())
	tileFlatbuffer := &boardfb.Tile{}
	for i := 0; i < boardFlatbuffer.TilesLength(); i++ {
		if !boardFlatbuffer.Tiles(tileFlatbuffer, i) {
			return nil, fmt.Errorf("failed to get tile %d", i)
		}
		c := board.Coord{Q: int(tileFlatbuffer.Q()), R: int(tileFlatbuffer.R())}
		if seen[c] {
			return nil, fmt.Errorf("duplicate tile (%d, %d)", c.Q, c.R)
		}
		seen[c] = true

		tile := board.Tile{
			Terrain:     types.Terrain(tileFlatbuffer.Terrain()),
			Hills:       tileFlatbuffer.Hills(),
			Feature:     types.Feature(tileFlatbuffer.Feature()),
			Color:       types.CityColor(tileFlatbuffer.Color()),
			Improvement: types.TileImprovement(tileFlatbuffer.Improvement()),
		}
		rivers := tileFlatbuffer.Rivers()
		for e := range tile.Rivers {
			tile.Rivers[e] = rivers&(1<<e) != 0
		}
		if err := b.SetTile(c.Q, c.R, tile); err != nil {
			return nil, fmt.Errorf("tile (%d, %d): %w", c.Q, c.R, err)
		}
	}

	return b, nil
}
