package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cbodonnell/civboard/pkg/board/constants"
	"github.com/cbodonnell/civboard/pkg/board/types"
	"github.com/cbodonnell/civboard/pkg/hex"
)

// String encodes the board as text. The output is deterministic and
// ParseBoard restores an equal board from it:
//
//	civboard 1
//	size <n>
//	<q> <r> <terrain> <hills> <feature> <rivers> <improvement>
//
// with one tile line per coordinate, row by row from the top. hills is 0 or 1,
// feature is a feature name or "-", rivers holds one 0/1 digit per edge in
// types.TileEdge order and improvement is "<color>:<improvement>" or "-".
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d\n", constants.FormatHeader, constants.FormatVersion)
	fmt.Fprintf(&sb, "size %d\n", b.size)
	for _, a := range hex.Disk(b.size) {
		c := b.fromAxial(a)
		writeTile(&sb, c, b.tiles[a])
	}
	return sb.String()
}

func writeTile(sb *strings.Builder, c Coord, t *Tile) {
	sb.WriteString(strconv.Itoa(c.Q))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(c.R))
	sb.WriteByte(' ')
	sb.WriteString(t.Terrain.String())
	if t.Hills {
		sb.WriteString(" 1 ")
	} else {
		sb.WriteString(" 0 ")
	}
	if t.HasFeature() {
		sb.WriteString(t.Feature.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	for _, river := range t.Rivers {
		if river {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(' ')
	if t.HasImprovement() {
		sb.WriteString(t.Color.String())
		sb.WriteByte(':')
		sb.WriteString(t.Improvement.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte('\n')
}

// ParseBoard decodes a board produced by Board.String. Every tile must be
// present exactly once and satisfy the terrain rules.
func ParseBoard(s string) (*Board, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) < 2 {
		return nil, invalidArgument("board text is truncated")
	}

	header := strings.Fields(lines[0])
	if len(header) != 2 || header[0] != constants.FormatHeader {
		return nil, invalidArgument("line 1: missing %q header", constants.FormatHeader)
	}
	if version, err := strconv.Atoi(header[1]); err != nil || version != constants.FormatVersion {
		return nil, invalidArgument("line 1: unsupported version %q", header[1])
	}

	sizeLine := strings.Fields(lines[1])
	if len(sizeLine) != 2 || sizeLine[0] != "size" {
		return nil, invalidArgument("line 2: expected size")
	}
	size, err := strconv.Atoi(sizeLine[1])
	if err != nil {
		return nil, invalidArgument("line 2: invalid size %q", sizeLine[1])
	}
	b, err := NewWithSize(size)
	if err != nil {
		return nil, err
	}

	tileLines := lines[2:]
	if len(tileLines) != hex.Count(size) {
		return nil, invalidArgument("expected %d tiles, got %d", hex.Count(size), len(tileLines))
	}
	seen := make(map[Coord]bool, len(tileLines))
	for i, line := range tileLines {
		lineNo := i + 3
		c, t, err := parseTile(line)
		if err != nil {
			return nil, invalidArgument("line %d: %v", lineNo, err)
		}
		if seen[c] {
			return nil, invalidArgument("line %d: duplicate tile (%d, %d)", lineNo, c.Q, c.R)
		}
		seen[c] = true
		if err := b.SetTile(c.Q, c.R, t); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return b, nil
}

func parseTile(line string) (Coord, Tile, error) {
	fields := strings.Fields(line)
	if len(fields) != 7 {
		return Coord{}, Tile{}, fmt.Errorf("expected 7 fields, got %d", len(fields))
	}

	var c Coord
	var t Tile
	var err error
	if c.Q, err = strconv.Atoi(fields[0]); err != nil {
		return Coord{}, Tile{}, fmt.Errorf("invalid q %q", fields[0])
	}
	if c.R, err = strconv.Atoi(fields[1]); err != nil {
		return Coord{}, Tile{}, fmt.Errorf("invalid r %q", fields[1])
	}
	if t.Terrain, err = types.ParseTerrain(fields[2]); err != nil {
		return Coord{}, Tile{}, err
	}

	switch fields[3] {
	case "0":
	case "1":
		t.Hills = true
	default:
		return Coord{}, Tile{}, fmt.Errorf("invalid hills %q", fields[3])
	}

	if fields[4] != "-" {
		if t.Feature, err = types.ParseFeature(fields[4]); err != nil {
			return Coord{}, Tile{}, err
		}
		if t.Feature == types.FeatureNone {
			return Coord{}, Tile{}, fmt.Errorf("absent feature must be written as -")
		}
	}

	rivers := fields[5]
	if len(rivers) != types.EdgeCount {
		return Coord{}, Tile{}, fmt.Errorf("invalid rivers %q", rivers)
	}
	for i := 0; i < types.EdgeCount; i++ {
		switch rivers[i] {
		case '0':
		case '1':
			t.Rivers[i] = true
		default:
			return Coord{}, Tile{}, fmt.Errorf("invalid rivers %q", rivers)
		}
	}

	if fields[6] != "-" {
		color, improvement, ok := strings.Cut(fields[6], ":")
		if !ok {
			return Coord{}, Tile{}, fmt.Errorf("invalid improvement %q", fields[6])
		}
		if t.Color, err = types.ParseCityColor(color); err != nil {
			return Coord{}, Tile{}, err
		}
		if t.Improvement, err = types.ParseTileImprovement(improvement); err != nil {
			return Coord{}, Tile{}, err
		}
		if t.Color == types.ColorNone || t.Improvement == types.ImprovementNone {
			return Coord{}, Tile{}, fmt.Errorf("absent improvement must be written as -")
		}
	}
	return c, t, nil
}
