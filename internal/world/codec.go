package world

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tilesmith/internal/items"
)

// ErrCorruptMap marks a map file that failed structural validation. Loading
// aborts; the caller must refuse to enter gameplay with a partial map.
var ErrCorruptMap = fmt.Errorf("world: corrupt map data")

// ItemNames is the ground-stack wire value: an ordered list of item kinds,
// bottom of the stack first. Legacy files wrote a bare string for their
// single-item-per-tile model; both forms decode, lists are always written.
type ItemNames []string

func (n *ItemNames) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*n = ItemNames{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*n = many
	return nil
}

// MapFile is the on-disk map format. Position keys are "x,y"; tiles are
// TileKind integers in row-major order.
type MapFile struct {
	Width       int                   `json:"width"`
	Height      int                   `json:"height"`
	Tiles       [][]int               `json:"tiles"`
	Items       map[string]ItemNames  `json:"items"`
	PlayerSpawn [2]int                `json:"player_spawn"`
	RockData    map[string]RockRecord `json:"rock_data"`
}

// Load deserializes a map and mints its ground items through the catalog.
// Structural problems return ErrCorruptMap; an unregistered item kind
// surfaces the catalog error. On success the initial-state snapshot is
// captured before returning.
func Load(r io.Reader, catalog *items.Catalog) (*Map, error) {
	var file MapFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptMap, err)
	}

	if file.Width < 1 || file.Height < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrCorruptMap, file.Width, file.Height)
	}
	if len(file.Tiles) != file.Height {
		return nil, fmt.Errorf("%w: tile grid has %d rows, want %d", ErrCorruptMap, len(file.Tiles), file.Height)
	}

	m := NewMap(file.Width, file.Height)
	for y, row := range file.Tiles {
		if len(row) != file.Width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrCorruptMap, y, len(row), file.Width)
		}
		for x, raw := range row {
			kind := TileKind(raw)
			if !kind.Valid() {
				return nil, fmt.Errorf("%w: unknown tile kind %d at %d,%d", ErrCorruptMap, raw, x, y)
			}
			m.tiles[y][x] = kind
		}
	}

	spawn := Position{X: file.PlayerSpawn[0], Y: file.PlayerSpawn[1]}
	if !m.InBounds(spawn) {
		return nil, fmt.Errorf("%w: spawn %s out of bounds", ErrCorruptMap, spawn)
	}
	m.spawn = spawn

	for key, record := range file.RockData {
		pos, err := ParsePositionKey(key)
		if err != nil {
			return nil, fmt.Errorf("%w: rock_data: %v", ErrCorruptMap, err)
		}
		if !m.InBounds(pos) {
			return nil, fmt.Errorf("%w: rock_data position %s out of bounds", ErrCorruptMap, pos)
		}
		// Records on tiles that are not Rock are inert leftovers some older
		// files carry; dropping them keeps the record-iff-Rock invariant.
		if m.TileAt(pos) != TileRock {
			continue
		}
		m.rocks.Set(pos, record)
	}

	for key, kinds := range file.Items {
		pos, err := ParsePositionKey(key)
		if err != nil {
			return nil, fmt.Errorf("%w: items: %v", ErrCorruptMap, err)
		}
		if !m.InBounds(pos) {
			return nil, fmt.Errorf("%w: item position %s out of bounds", ErrCorruptMap, pos)
		}
		for _, kind := range kinds {
			it, err := catalog.Create(kind)
			if err != nil {
				return nil, fmt.Errorf("load map: %w", err)
			}
			m.PlaceItem(pos, it)
		}
	}

	m.CaptureInitialState()
	return m, nil
}

// LoadFile loads a map from disk.
func LoadFile(path string, catalog *items.Catalog) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}
	defer f.Close()
	return Load(f, catalog)
}

// Save serializes the current map state. Ground items are reduced to their
// kinds; per-instance state such as the equipped flag is deliberately
// discarded.
func (m *Map) Save(w io.Writer) error {
	file := MapFile{
		Width:       m.width,
		Height:      m.height,
		Tiles:       make([][]int, m.height),
		Items:       make(map[string]ItemNames, len(m.ground)),
		PlayerSpawn: [2]int{m.spawn.X, m.spawn.Y},
		RockData:    make(map[string]RockRecord, m.rocks.Len()),
	}
	for y := range m.tiles {
		row := make([]int, m.width)
		for x, kind := range m.tiles[y] {
			row[x] = int(kind)
		}
		file.Tiles[y] = row
	}
	for pos, stack := range m.ground {
		kinds := make(ItemNames, len(stack))
		for i, it := range stack {
			kinds[i] = it.Kind
		}
		file.Items[pos.Key()] = kinds
	}
	for pos, record := range m.rocks.Records() {
		file.RockData[pos.Key()] = record
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	return nil
}

// SaveFile writes the map to disk, creating parent directories as needed.
func (m *Map) SaveFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save map: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save map: %w", err)
	}
	defer f.Close()
	return m.Save(f)
}
