package world

import "tilesmith/internal/items"

// RockRecord holds the ore-specific data for one Rock tile. A record exists
// for a position exactly while the tile there is Rock.
type RockRecord struct {
	Name        string    `json:"name"`
	Color       items.RGB `json:"color"`
	MiningLevel int       `json:"mining_level"`
	MiningXP    int       `json:"mining_xp"`
	OreType     string    `json:"ore_type"`
}

// RockTable is the per-position rock side-table. It is owned by a Map and
// passed explicitly to property lookups; there is no shared global table.
type RockTable struct {
	records map[Position]RockRecord
}

func NewRockTable() *RockTable {
	return &RockTable{records: make(map[Position]RockRecord)}
}

func (t *RockTable) Get(pos Position) (RockRecord, bool) {
	if t == nil {
		return RockRecord{}, false
	}
	record, ok := t.records[pos]
	return record, ok
}

// Set inserts or replaces the record at pos.
func (t *RockTable) Set(pos Position, record RockRecord) {
	if t.records == nil {
		t.records = make(map[Position]RockRecord)
	}
	t.records[pos] = record
}

// Clear removes the record at pos, if any. Called when a rock is depleted or
// the tile changes kind.
func (t *RockTable) Clear(pos Position) {
	delete(t.records, pos)
}

func (t *RockTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns a copy of the table contents.
func (t *RockTable) Records() map[Position]RockRecord {
	out := make(map[Position]RockRecord, len(t.records))
	for pos, record := range t.records {
		out[pos] = record
	}
	return out
}

// Replace swaps the table contents for the given records.
func (t *RockTable) Replace(records map[Position]RockRecord) {
	t.records = make(map[Position]RockRecord, len(records))
	for pos, record := range records {
		t.records[pos] = record
	}
}

// RockTypes lists the designer-facing rock variants for the editor palette.
func RockTypes() []RockRecord {
	return []RockRecord{
		{Name: "Copper Rock", Color: items.RGB{184, 115, 51}, MiningLevel: 1, MiningXP: 10, OreType: "copper"},
		{Name: "Tin Rock", Color: items.RGB{211, 212, 213}, MiningLevel: 1, MiningXP: 10, OreType: "tin"},
		{Name: "Iron Rock", Color: items.RGB{136, 84, 44}, MiningLevel: 15, MiningXP: 35, OreType: "iron"},
	}
}
