package items

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownItem is returned when a kind has no registered factory. A map or
// snapshot referencing an unknown kind indicates catalog/data drift and is
// not retryable.
var ErrUnknownItem = errors.New("items: unknown item kind")

// Factory builds a fresh, independent item instance.
type Factory func() *Item

// Catalog maps item kinds to factories. It is constructed once at startup and
// handed to whoever needs to mint items; there is no package-level registry.
type Catalog struct {
	factories map[string]Factory
}

func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]Factory)}
}

// Register binds a factory to a kind. Re-registering a kind overwrites the
// previous factory; last registration wins.
func (c *Catalog) Register(kind string, fn Factory) {
	if kind == "" || fn == nil {
		return
	}
	c.factories[kind] = fn
}

// Create mints a new instance of the given kind. Every call returns a freshly
// allocated item with Kind stamped to the registry key.
func (c *Catalog) Create(kind string) (*Item, error) {
	fn, ok := c.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, kind)
	}
	it := fn()
	if it == nil {
		return nil, fmt.Errorf("%w: factory for %q returned nil", ErrUnknownItem, kind)
	}
	it.Kind = kind
	return it, nil
}

// Kinds returns every registered kind sorted by name, for editor palettes.
func (c *Catalog) Kinds() []string {
	kinds := make([]string, 0, len(c.factories))
	for kind := range c.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
