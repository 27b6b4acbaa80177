package state

import "tilesmith/internal/items"

// Equipment binds equip slots to items that remain in the inventory. At most
// one item occupies a slot at a time; equipping into an occupied slot
// displaces the current occupant.
type Equipment struct {
	slots map[items.EquipSlot]*items.Item
}

func NewEquipment() Equipment {
	return Equipment{slots: make(map[items.EquipSlot]*items.Item)}
}

// Get returns the item occupying the slot, or nil.
func (e *Equipment) Get(slot items.EquipSlot) *items.Item {
	if e == nil {
		return nil
	}
	return e.slots[slot]
}

// Equip marks the item equipped and binds it to its slot, returning the
// displaced occupant (already unequipped) if there was one.
func (e *Equipment) Equip(it *items.Item) *items.Item {
	if it == nil || !it.Equippable {
		return nil
	}
	if e.slots == nil {
		e.slots = make(map[items.EquipSlot]*items.Item)
	}
	displaced := e.slots[it.Slot]
	if displaced == it {
		return nil
	}
	if displaced != nil {
		displaced.Equipped = false
	}
	it.Equipped = true
	e.slots[it.Slot] = it
	return displaced
}

// Unequip clears the slot and the occupant's equipped flag.
func (e *Equipment) Unequip(slot items.EquipSlot) *items.Item {
	it := e.slots[slot]
	if it == nil {
		return nil
	}
	it.Equipped = false
	delete(e.slots, slot)
	return it
}

// Toggle equips the item if it is unequipped and unequips it otherwise.
func (e *Equipment) Toggle(it *items.Item) {
	if it == nil {
		return
	}
	if it.Equipped {
		e.Unequip(it.Slot)
		return
	}
	e.Equip(it)
}
