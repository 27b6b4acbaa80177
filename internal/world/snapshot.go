package world

import (
	"fmt"

	"tilesmith/internal/items"
)

// Snapshot is the immutable baseline of the resettable world state: a deep
// copy of the tile grid and rock records, plus each ground stack reduced to
// an ordered list of item kinds. It is captured once, right after a map
// finishes loading, and is never mutated afterwards.
type Snapshot struct {
	tiles     [][]TileKind
	rocks     map[Position]RockRecord
	itemKinds map[Position][]string
}

// CaptureSnapshot copies the resettable subset of the map. The copies are
// independent: later mutation of live state never corrupts the baseline.
func CaptureSnapshot(m *Map) *Snapshot {
	tiles := make([][]TileKind, m.height)
	for y := range tiles {
		tiles[y] = make([]TileKind, m.width)
		copy(tiles[y], m.tiles[y])
	}

	itemKinds := make(map[Position][]string, len(m.ground))
	for pos, stack := range m.ground {
		kinds := make([]string, len(stack))
		for i, it := range stack {
			kinds[i] = it.Kind
		}
		itemKinds[pos] = kinds
	}

	return &Snapshot{
		tiles:     tiles,
		rocks:     m.rocks.Records(),
		itemKinds: itemKinds,
	}
}

// ResetStats reports what a restore touched: how many tile kinds were
// reverted and how many ground items were minted back into the world.
type ResetStats struct {
	TilesRestored  int
	ItemsRespawned int
}

// Restore reverts the resettable portion of the map to the snapshot.
//
// Resettability is evaluated against the live tile kind, not the snapshot's:
// a Rock that was mined to DepletedRock reverts, but a Wall that was mined to
// Floor stays Floor. Tile writes go through SetTile so the record-iff-Rock
// invariant holds even when a live Rock reverts to a non-Rock kind; when a
// Rock tile is restored its rock record is reinstalled in the same step, so a
// restored rock is never silently blank unless it was blank in the snapshot
// too.
//
// Ground stacks are cleared entirely and rebuilt from the recorded kinds as
// freshly minted catalog instances in original stack order, which makes the
// operation idempotent. An unknown kind aborts the rebuild with an error;
// that means the catalog has drifted from the map data and is fatal, not
// retryable.
func (s *Snapshot) Restore(m *Map, catalog *items.Catalog) (ResetStats, error) {
	var stats ResetStats
	if s == nil {
		return stats, fmt.Errorf("world: restore without a captured snapshot")
	}

	for y := 0; y < m.height && y < len(s.tiles); y++ {
		for x := 0; x < m.width && x < len(s.tiles[y]); x++ {
			pos := Position{X: x, Y: y}
			if !Properties(m.tiles[y][x]).Resettable {
				continue
			}
			restored := s.tiles[y][x]
			if m.tiles[y][x] != restored {
				m.SetTile(pos, restored)
				stats.TilesRestored++
			}
			if record, ok := s.rocks[pos]; ok && restored == TileRock {
				m.rocks.Set(pos, record)
			}
		}
	}

	m.clearGround()
	for pos, kinds := range s.itemKinds {
		for _, kind := range kinds {
			it, err := catalog.Create(kind)
			if err != nil {
				return stats, fmt.Errorf("world: restore ground item at %s: %w", pos, err)
			}
			m.PlaceItem(pos, it)
			stats.ItemsRespawned++
		}
	}
	return stats, nil
}

// CaptureInitialState records the baseline used by Reset. Load calls this
// exactly once after a successful parse.
func (m *Map) CaptureInitialState() {
	m.initial = CaptureSnapshot(m)
}

// Reset restores the map to its initial snapshot. Safe to call repeatedly;
// each call rebuilds from the same immutable baseline.
func (m *Map) Reset(catalog *items.Catalog) (ResetStats, error) {
	return m.initial.Restore(m, catalog)
}
