package types

import "fmt"

// Feature is a secondary overlay on a tile. FeatureNone marks an empty slot.
type Feature uint8

const (
	FeatureNone Feature = iota
	FeatureForest
	FeatureRainforest
	FeatureMarsh
	FeatureFloodplains
	FeatureOasis
	FeatureReef
	FeatureIce
)

var featureNames = [...]string{
	FeatureNone:        "none",
	FeatureForest:      "forest",
	FeatureRainforest:  "rainforest",
	FeatureMarsh:       "marsh",
	FeatureFloodplains: "floodplains",
	FeatureOasis:       "oasis",
	FeatureReef:        "reef",
	FeatureIce:         "ice",
}

// Features lists every placeable feature, FeatureNone excluded.
func Features() []Feature {
	out := make([]Feature, 0, len(featureNames)-1)
	for i := 1; i < len(featureNames); i++ {
		out = append(out, Feature(i))
	}
	return out
}

func (f Feature) Valid() bool {
	return int(f) < len(featureNames)
}

func (f Feature) String() string {
	if !f.Valid() {
		return fmt.Sprintf("feature(%d)", uint8(f))
	}
	return featureNames[f]
}

func ParseFeature(s string) (Feature, error) {
	i, err := parseName(featureNames[:], s)
	if err != nil {
		return FeatureNone, fmt.Errorf("unknown feature: %q", s)
	}
	return Feature(i), nil
}

func (f Feature) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid feature %d", uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *Feature) UnmarshalText(b []byte) error {
	parsed, err := ParseFeature(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
