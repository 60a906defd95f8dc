package types

import "fmt"

// CityColor identifies the player owning an improvement.
type CityColor uint8

const (
	ColorNone CityColor = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorOrange
	ColorWhite
	ColorBlack
)

var colorNames = [...]string{
	ColorNone:   "none",
	ColorRed:    "red",
	ColorBlue:   "blue",
	ColorGreen:  "green",
	ColorYellow: "yellow",
	ColorPurple: "purple",
	ColorOrange: "orange",
	ColorWhite:  "white",
	ColorBlack:  "black",
}

func (c CityColor) Valid() bool {
	return int(c) < len(colorNames)
}

func (c CityColor) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

func ParseCityColor(s string) (CityColor, error) {
	i, err := parseName(colorNames[:], s)
	if err != nil {
		return ColorNone, fmt.Errorf("unknown city color: %q", s)
	}
	return CityColor(i), nil
}

func (c CityColor) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid city color %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *CityColor) UnmarshalText(b []byte) error {
	parsed, err := ParseCityColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TileImprovement is a structure a player builds on a tile.
type TileImprovement uint8

const (
	ImprovementNone TileImprovement = iota
	ImprovementFarm
	ImprovementMine
	ImprovementQuarry
	ImprovementPlantation
	ImprovementCamp
	ImprovementPasture
	ImprovementFishingBoats
	ImprovementLumberMill
	ImprovementFort
	ImprovementOilWell
)

var improvementNames = [...]string{
	ImprovementNone:         "none",
	ImprovementFarm:         "farm",
	ImprovementMine:         "mine",
	ImprovementQuarry:       "quarry",
	ImprovementPlantation:   "plantation",
	ImprovementCamp:         "camp",
	ImprovementPasture:      "pasture",
	ImprovementFishingBoats: "fishing_boats",
	ImprovementLumberMill:   "lumber_mill",
	ImprovementFort:         "fort",
	ImprovementOilWell:      "oil_well",
}

func (i TileImprovement) Valid() bool {
	return int(i) < len(improvementNames)
}

func (i TileImprovement) String() string {
	if !i.Valid() {
		return fmt.Sprintf("improvement(%d)", uint8(i))
	}
	return improvementNames[i]
}

func ParseTileImprovement(s string) (TileImprovement, error) {
	idx, err := parseName(improvementNames[:], s)
	if err != nil {
		return ImprovementNone, fmt.Errorf("unknown tile improvement: %q", s)
	}
	return TileImprovement(idx), nil
}

func (i TileImprovement) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("invalid tile improvement %d", uint8(i))
	}
	return []byte(i.String()), nil
}

func (i *TileImprovement) UnmarshalText(b []byte) error {
	parsed, err := ParseTileImprovement(string(b))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
