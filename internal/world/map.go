package world

import (
	"errors"
	"sort"

	"tilesmith/internal/items"
)

// ErrNoItemAtPosition is returned when removing from an empty tile.
var ErrNoItemAtPosition = errors.New("world: no item at position")

// Map owns the tile grid, the ground-item stacks, the rock side-table and the
// player spawn point. All mutation goes through its methods so the
// rock-record invariant (record exists iff the tile is Rock) holds.
type Map struct {
	width  int
	height int
	tiles  [][]TileKind
	ground map[Position][]*items.Item
	spawn  Position
	rocks  *RockTable

	initial *Snapshot
}

// NewMap allocates a solid-wall map, the same blank slate the editor starts
// from.
func NewMap(width, height int) *Map {
	tiles := make([][]TileKind, height)
	for y := range tiles {
		tiles[y] = make([]TileKind, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}
	return &Map{
		width:  width,
		height: height,
		tiles:  tiles,
		ground: make(map[Position][]*items.Item),
		spawn:  Position{X: 1, Y: 1},
		rocks:  NewRockTable(),
	}
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

func (m *Map) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < m.width && pos.Y >= 0 && pos.Y < m.height
}

func (m *Map) TileAt(pos Position) TileKind {
	if !m.InBounds(pos) {
		return TileWall
	}
	return m.tiles[pos.Y][pos.X]
}

// SetTile writes a tile kind and keeps the rock table consistent: moving a
// tile away from Rock drops its record.
func (m *Map) SetTile(pos Position, kind TileKind) {
	if !m.InBounds(pos) {
		return
	}
	if m.tiles[pos.Y][pos.X] == TileRock && kind != TileRock {
		m.rocks.Clear(pos)
	}
	m.tiles[pos.Y][pos.X] = kind
}

// Rocks exposes the owned rock side-table for property lookups and editing.
func (m *Map) Rocks() *RockTable { return m.rocks }

func (m *Map) Spawn() Position { return m.spawn }

func (m *Map) SetSpawn(pos Position) {
	if m.InBounds(pos) {
		m.spawn = pos
	}
}

// PropertiesAt looks up tile properties with this map's rock table applied.
func (m *Map) PropertiesAt(pos Position) TileProperties {
	return PropertiesAt(m.TileAt(pos), pos, m.rocks)
}

// PlaceItem appends the item to the stack at pos. Later placements stack on
// top rather than overwriting.
func (m *Map) PlaceItem(pos Position, it *items.Item) {
	if it == nil || !m.InBounds(pos) {
		return
	}
	m.ground[pos] = append(m.ground[pos], it)
}

// RemoveItem pops the most recently placed item from the stack at pos. An
// emptied stack is removed from the mapping.
func (m *Map) RemoveItem(pos Position) (*items.Item, error) {
	stack := m.ground[pos]
	if len(stack) == 0 {
		return nil, ErrNoItemAtPosition
	}
	it := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		delete(m.ground, pos)
	} else {
		m.ground[pos] = stack
	}
	return it, nil
}

// ItemsAt returns a copy of the stack at pos, bottom first.
func (m *Map) ItemsAt(pos Position) []*items.Item {
	stack := m.ground[pos]
	if len(stack) == 0 {
		return nil
	}
	out := make([]*items.Item, len(stack))
	copy(out, stack)
	return out
}

// GroundPositions returns every tile with at least one ground item, sorted
// row-major for deterministic iteration.
func (m *Map) GroundPositions() []Position {
	positions := make([]Position, 0, len(m.ground))
	for pos := range m.ground {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
	return positions
}

func (m *Map) clearGround() {
	m.ground = make(map[Position][]*items.Item)
}

// Resize reallocates the grid at the new dimensions, copying the overlapping
// region. New cells default to Wall. Ground items and rock records outside
// the new bounds are dropped; the spawn point is clamped inside.
func (m *Map) Resize(newWidth, newHeight int) {
	if newWidth < 1 || newHeight < 1 {
		return
	}
	tiles := make([][]TileKind, newHeight)
	for y := range tiles {
		tiles[y] = make([]TileKind, newWidth)
		for x := range tiles[y] {
			if y < m.height && x < m.width {
				tiles[y][x] = m.tiles[y][x]
			} else {
				tiles[y][x] = TileWall
			}
		}
	}
	m.tiles = tiles
	m.width = newWidth
	m.height = newHeight

	for pos := range m.ground {
		if !m.InBounds(pos) {
			delete(m.ground, pos)
		}
	}
	for pos := range m.rocks.Records() {
		if !m.InBounds(pos) {
			m.rocks.Clear(pos)
		}
	}

	m.spawn = Position{
		X: clamp(m.spawn.X, 0, newWidth-1),
		Y: clamp(m.spawn.Y, 0, newHeight-1),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
