package world

import (
	"errors"
	"testing"

	"tilesmith/internal/items"
)

func copperRecord() RockRecord {
	return RockRecord{
		Name:        "Copper Rock",
		Color:       items.RGB{184, 115, 51},
		MiningLevel: 1,
		MiningXP:    10,
		OreType:     "copper",
	}
}

func TestNewMapStartsSolidWall(t *testing.T) {
	m := NewMap(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if m.TileAt(Position{X: x, Y: y}) != TileWall {
				t.Fatalf("expected wall at (%d,%d)", x, y)
			}
		}
	}
	if m.Spawn() != (Position{X: 1, Y: 1}) {
		t.Fatalf("expected default spawn (1,1), got %s", m.Spawn())
	}
}

func TestSetTileAwayFromRockClearsRecord(t *testing.T) {
	m := NewMap(5, 5)
	pos := Position{X: 2, Y: 2}
	m.SetTile(pos, TileRock)
	m.Rocks().Set(pos, copperRecord())

	m.SetTile(pos, TileFloor)

	if _, ok := m.Rocks().Get(pos); ok {
		t.Fatalf("expected rock record cleared when the tile stops being rock")
	}
}

func TestTileAtOutOfBoundsIsWall(t *testing.T) {
	m := NewMap(3, 3)
	if m.TileAt(Position{X: -1, Y: 0}) != TileWall {
		t.Fatalf("expected out-of-bounds reads to behave as wall")
	}
	if m.TileAt(Position{X: 3, Y: 3}) != TileWall {
		t.Fatalf("expected out-of-bounds reads to behave as wall")
	}
}

func TestGroundStackOrder(t *testing.T) {
	m := NewMap(5, 5)
	catalog := items.DefaultCatalog()
	pos := Position{X: 1, Y: 1}
	for _, kind := range []string{"copper_ore", "tin_ore", "bronze_bar"} {
		it, err := catalog.Create(kind)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m.PlaceItem(pos, it)
	}

	top, err := m.RemoveItem(pos)
	if err != nil {
		t.Fatalf("unexpected error removing: %v", err)
	}
	if top.Kind != "bronze_bar" {
		t.Fatalf("expected last placed item removed first, got %s", top.Kind)
	}
	if got := len(m.ItemsAt(pos)); got != 2 {
		t.Fatalf("expected 2 items left, got %d", got)
	}
}

func TestRemoveItemFromEmptyTile(t *testing.T) {
	m := NewMap(5, 5)
	if _, err := m.RemoveItem(Position{X: 1, Y: 1}); !errors.Is(err, ErrNoItemAtPosition) {
		t.Fatalf("expected ErrNoItemAtPosition, got %v", err)
	}
}

func TestItemsAtReturnsCopy(t *testing.T) {
	m := NewMap(5, 5)
	catalog := items.DefaultCatalog()
	pos := Position{X: 1, Y: 1}
	it, err := catalog.Create("copper_ore")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.PlaceItem(pos, it)

	stack := m.ItemsAt(pos)
	stack[0] = nil
	if got := m.ItemsAt(pos); got[0] == nil {
		t.Fatalf("expected the map's stack unaffected by caller mutation")
	}
}

func TestGroundPositionsSortedRowMajor(t *testing.T) {
	m := NewMap(5, 5)
	catalog := items.DefaultCatalog()
	for _, pos := range []Position{{X: 3, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 2}} {
		it, err := catalog.Create("tin_ore")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m.PlaceItem(pos, it)
	}

	got := m.GroundPositions()
	want := []Position{{X: 1, Y: 1}, {X: 0, Y: 2}, {X: 3, Y: 2}}
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResizeKeepsOverlapAndDropsRest(t *testing.T) {
	m := NewMap(5, 5)
	catalog := items.DefaultCatalog()
	m.SetTile(Position{X: 1, Y: 1}, TileFloor)
	m.SetTile(Position{X: 4, Y: 4}, TileRock)
	m.Rocks().Set(Position{X: 4, Y: 4}, copperRecord())
	keep, err := catalog.Create("copper_ore")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.PlaceItem(Position{X: 2, Y: 2}, keep)
	drop, err := catalog.Create("tin_ore")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.PlaceItem(Position{X: 4, Y: 1}, drop)
	m.SetSpawn(Position{X: 4, Y: 4})

	m.Resize(3, 3)

	if m.Width() != 3 || m.Height() != 3 {
		t.Fatalf("expected 3x3, got %dx%d", m.Width(), m.Height())
	}
	if m.TileAt(Position{X: 1, Y: 1}) != TileFloor {
		t.Fatalf("expected kept tile to survive resize")
	}
	if m.Rocks().Len() != 0 {
		t.Fatalf("expected out-of-bounds rock record dropped")
	}
	if len(m.ItemsAt(Position{X: 2, Y: 2})) != 1 {
		t.Fatalf("expected in-bounds item kept")
	}
	if len(m.GroundPositions()) != 1 {
		t.Fatalf("expected out-of-bounds item dropped")
	}
	if !m.InBounds(m.Spawn()) {
		t.Fatalf("expected spawn clamped into bounds, got %s", m.Spawn())
	}
}

func TestResizeGrowWithWall(t *testing.T) {
	m := NewMap(3, 3)
	m.SetTile(Position{X: 1, Y: 1}, TileFloor)

	m.Resize(5, 5)

	if m.TileAt(Position{X: 1, Y: 1}) != TileFloor {
		t.Fatalf("expected existing tiles kept on grow")
	}
	if m.TileAt(Position{X: 4, Y: 4}) != TileWall {
		t.Fatalf("expected new area filled with wall")
	}
}
