package items

// RGB is the 8-bit color triple used for icon and tile tinting. Map files
// serialize it as a three-element array.
type RGB [3]uint8

// Class groups items for menu filtering and serialization.
type Class string

const (
	ClassOre       Class = "ore"
	ClassBar       Class = "bar"
	ClassTool      Class = "tool"
	ClassEquipment Class = "equipment"
)

// EquipSlot identifies where an equippable item is worn.
type EquipSlot string

const (
	SlotMainHand EquipSlot = "main_hand"
	SlotOffHand  EquipSlot = "off_hand"
	SlotHead     EquipSlot = "head"
	SlotBody     EquipSlot = "body"
	SlotLegs     EquipSlot = "legs"
	SlotFeet     EquipSlot = "feet"
)

// Action describes what an item can do when used.
type Action string

const (
	ActionMine Action = "mine"
)

// Item is a single game object instance. Identity fields are set by the
// factory that built it; Equipped is the only state that mutates afterwards.
// Two inventory slots never share one instance.
type Item struct {
	Kind        string
	Name        string
	Description string
	Color       RGB
	Class       Class
	Equippable  bool
	Slot        EquipSlot
	Actions     []Action
	Equipped    bool
}

// Can reports whether the item supports the given action.
func (it *Item) Can(action Action) bool {
	if it == nil {
		return false
	}
	for _, a := range it.Actions {
		if a == action {
			return true
		}
	}
	return false
}
