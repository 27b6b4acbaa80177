package world

import "tilesmith/internal/items"

// TileKind enumerates every tile the map grid can hold. The integer values
// are the map-file wire format and must stay stable.
type TileKind int

const (
	TileFloor TileKind = iota
	TileWall
	TileRock
	TileDepletedRock
	TileFurnace
	TileBed
	TileAnvil

	tileKindCount
)

// TileKinds returns every kind in declaration order, for editor palettes.
func TileKinds() []TileKind {
	kinds := make([]TileKind, 0, int(tileKindCount))
	for k := TileKind(0); k < tileKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether the value names a known tile kind.
func (k TileKind) Valid() bool {
	return k >= 0 && k < tileKindCount
}

// TileProperties describes how a tile behaves. The boolean flags are static
// per kind; the rock fields are populated only when a RockRecord overlays a
// Rock tile.
type TileProperties struct {
	Name         string
	Color        items.RGB
	Walkable     bool
	Mineable     bool
	Smeltable    bool
	Interactable bool
	Resettable   bool

	// Rock overlay fields. Zero for every non-Rock kind and for Rock tiles
	// with no record (a "blank" rock).
	MiningLevel int
	MiningXP    int
	OreType     string
}

var tileTable = map[TileKind]TileProperties{
	TileFloor: {
		Name:     "Floor",
		Color:    items.RGB{100, 100, 100},
		Walkable: true,
	},
	TileWall: {
		Name:     "Wall",
		Color:    items.RGB{50, 50, 50},
		Mineable: true,
	},
	TileRock: {
		Name:       "Rock",
		Color:      items.RGB{128, 128, 128},
		Mineable:   true,
		Resettable: true,
	},
	TileDepletedRock: {
		Name:       "Depleted Rock",
		Color:      items.RGB{70, 70, 70},
		Resettable: true,
	},
	TileFurnace: {
		Name:      "Furnace",
		Color:     items.RGB{200, 60, 20},
		Smeltable: true,
	},
	TileBed: {
		Name:         "Bed",
		Color:        items.RGB{150, 50, 150},
		Interactable: true,
	},
	TileAnvil: {
		Name:         "Anvil",
		Color:        items.RGB{90, 90, 110},
		Interactable: true,
	},
}

// Properties returns the static record for a kind. Unknown kinds fall back to
// Floor, matching the forgiving lookup the map editor relies on.
func Properties(kind TileKind) TileProperties {
	props, ok := tileTable[kind]
	if !ok {
		return tileTable[TileFloor]
	}
	return props
}

// PropertiesAt returns the properties for the tile at pos, overlaying the
// rock record when the kind is Rock and the table has an entry there. A Rock
// tile with no record keeps the generic gray defaults.
func PropertiesAt(kind TileKind, pos Position, rocks *RockTable) TileProperties {
	props := Properties(kind)
	if kind != TileRock || rocks == nil {
		return props
	}
	record, ok := rocks.Get(pos)
	if !ok {
		return props
	}
	props.Name = record.Name
	props.Color = record.Color
	props.MiningLevel = record.MiningLevel
	props.MiningXP = record.MiningXP
	props.OreType = record.OreType
	return props
}

// IsWalkable is a pure projection of the static table.
func IsWalkable(kind TileKind) bool {
	return Properties(kind).Walkable
}
