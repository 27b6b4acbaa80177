package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a tile coordinate on the map grid.
type Position struct {
	X int
	Y int
}

// Key renders the position as the map-file key format, "x,y".
func (p Position) Key() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

func (p Position) String() string {
	return p.Key()
}

// ParsePositionKey parses a map-file position key. The canonical format is
// "x,y"; the legacy "(x, y)" tuple rendering written by earlier map files is
// also accepted. Parsing is strict numeric parsing, never expression
// evaluation.
func ParsePositionKey(key string) (Position, error) {
	trimmed := strings.TrimSpace(key)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("invalid position key %q", key)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid position key %q: %v", key, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid position key %q: %v", key, err)
	}
	return Position{X: x, Y: y}, nil
}
