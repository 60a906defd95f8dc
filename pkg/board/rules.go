package board

import "github.com/cbodonnell/civboard/pkg/board/types"

// hillsAllowed lists the terrains that may carry hills.
var hillsAllowed = map[types.Terrain]bool{
	types.TerrainGrassland: true,
	types.TerrainPlains:    true,
	types.TerrainDesert:    true,
	types.TerrainTundra:    true,
	types.TerrainSnow:      true,
}

// featureTerrains maps each feature to the terrains it can appear on.
var featureTerrains = map[types.Feature]map[types.Terrain]bool{
	types.FeatureForest: {
		types.TerrainGrassland: true,
		types.TerrainPlains:    true,
		types.TerrainTundra:    true,
	},
	types.FeatureRainforest: {
		types.TerrainGrassland: true,
		types.TerrainPlains:    true,
	},
	types.FeatureMarsh: {
		types.TerrainGrassland: true,
	},
	types.FeatureFloodplains: {
		types.TerrainGrassland: true,
		types.TerrainPlains:    true,
		types.TerrainDesert:    true,
	},
	types.FeatureOasis: {
		types.TerrainDesert: true,
	},
	types.FeatureReef: {
		types.TerrainCoast: true,
	},
	types.FeatureIce: {
		types.TerrainCoast: true,
		types.TerrainOcean: true,
	},
}

// flatOnly lists the features that never sit on hills.
var flatOnly = map[types.Feature]bool{
	types.FeatureMarsh:       true,
	types.FeatureFloodplains: true,
	types.FeatureOasis:       true,
}

// SupportsHills reports whether terrain t may carry hills.
func SupportsHills(t types.Terrain) bool {
	return hillsAllowed[t]
}

// SupportsFeature reports whether feature f may be placed on terrain t.
func SupportsFeature(t types.Terrain, f types.Feature) bool {
	return featureTerrains[f][t]
}

// FeatureAllowsHills reports whether feature f may coexist with hills.
func FeatureAllowsHills(f types.Feature) bool {
	return !flatOnly[f]
}

// checkTile validates a full attribute combination.
func checkTile(t Tile) error {
	if !t.Terrain.Valid() {
		return invalidArgument("unknown terrain %d", uint8(t.Terrain))
	}
	if t.Hills && !SupportsHills(t.Terrain) {
		return invalidArgument("%s does not support hills", t.Terrain)
	}
	if t.Feature != types.FeatureNone {
		if !t.Feature.Valid() {
			return invalidArgument("unknown feature %d", uint8(t.Feature))
		}
		if !SupportsFeature(t.Terrain, t.Feature) {
			return invalidArgument("%s cannot be placed on %s", t.Feature, t.Terrain)
		}
		if t.Hills && !FeatureAllowsHills(t.Feature) {
			return invalidArgument("%s cannot be placed on hills", t.Feature)
		}
	}
	if !t.Color.Valid() || !t.Improvement.Valid() {
		return invalidArgument("unknown improvement %d/%d", uint8(t.Color), uint8(t.Improvement))
	}
	if (t.Color == types.ColorNone) != (t.Improvement == types.ImprovementNone) {
		return invalidArgument("improvement and owner color must be set together")
	}
	return nil
}
