package state

import "tilesmith/internal/items"

// InventorySize is the fixed slot count of every actor inventory.
const InventorySize = 16

// Inventory is a fixed array of slots, each empty or holding one item
// instance. Slot indices are stable; removing an item leaves a gap rather
// than compacting.
type Inventory struct {
	slots [InventorySize]*items.Item
}

// Add places the item in the first free slot and returns its index, or
// (-1, false) when the inventory is full.
func (inv *Inventory) Add(it *items.Item) (int, bool) {
	if it == nil {
		return -1, false
	}
	for i := range inv.slots {
		if inv.slots[i] == nil {
			inv.slots[i] = it
			return i, true
		}
	}
	return -1, false
}

// At returns the item in the given slot, or nil.
func (inv *Inventory) At(i int) *items.Item {
	if i < 0 || i >= InventorySize {
		return nil
	}
	return inv.slots[i]
}

// RemoveAt empties the slot and returns what it held.
func (inv *Inventory) RemoveAt(i int) *items.Item {
	if i < 0 || i >= InventorySize {
		return nil
	}
	it := inv.slots[i]
	inv.slots[i] = nil
	return it
}

// PutAt forces an item into a specific slot, replacing any occupant. Used by
// rollback paths that must return consumed materials to their original
// slots.
func (inv *Inventory) PutAt(i int, it *items.Item) {
	if i < 0 || i >= InventorySize {
		return
	}
	inv.slots[i] = it
}

// FindKind returns the first slot holding an item of the given kind, or -1.
func (inv *Inventory) FindKind(kind string) int {
	for i, it := range inv.slots {
		if it != nil && it.Kind == kind {
			return i
		}
	}
	return -1
}

// FindKinds returns up to n slots holding the given kind, in slot order.
func (inv *Inventory) FindKinds(kind string, n int) []int {
	found := make([]int, 0, n)
	for i, it := range inv.slots {
		if len(found) == n {
			break
		}
		if it != nil && it.Kind == kind {
			found = append(found, i)
		}
	}
	return found
}

// CountKind reports how many slots hold the given kind.
func (inv *Inventory) CountKind(kind string) int {
	count := 0
	for _, it := range inv.slots {
		if it != nil && it.Kind == kind {
			count++
		}
	}
	return count
}

// Full reports whether no free slot remains.
func (inv *Inventory) Full() bool {
	for _, it := range inv.slots {
		if it == nil {
			return false
		}
	}
	return true
}
