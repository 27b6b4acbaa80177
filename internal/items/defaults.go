package items

import (
	"fmt"
	"strings"
)

// NewOre builds a raw ore item for the given material, e.g. NewOre("Copper",
// copperColor) yields "Copper Ore".
func NewOre(material string, color RGB) *Item {
	return &Item{
		Name:        material + " Ore",
		Description: fmt.Sprintf("Raw %s ore from mining", strings.ToLower(material)),
		Color:       color,
		Class:       ClassOre,
	}
}

// NewBar builds a smelted metal bar for the given material.
func NewBar(material string, color RGB) *Item {
	return &Item{
		Name:        material + " Bar",
		Description: fmt.Sprintf("A %s bar", strings.ToLower(material)),
		Color:       color,
		Class:       ClassBar,
	}
}

// NewEquipment builds a wearable or wieldable piece occupying the given slot.
func NewEquipment(name, description string, color RGB, slot EquipSlot) *Item {
	return &Item{
		Name:        name,
		Description: description,
		Color:       color,
		Class:       ClassEquipment,
		Equippable:  true,
		Slot:        slot,
	}
}

// KindForName derives the catalog kind from a display name, matching how
// crafting recipes address their outputs ("Bronze Dagger" -> "bronze_dagger").
func KindForName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

var (
	copperColor = RGB{184, 115, 51}
	tinColor    = RGB{211, 212, 213}
	ironColor   = RGB{136, 84, 44}
	bronzeColor = RGB{205, 127, 50}
	woodColor   = RGB{139, 69, 19}
)

// equipmentKinds lists every craftable equipment piece and the slot it
// occupies. Kinds are derived from the display names via KindForName.
var equipmentKinds = []struct {
	Name string
	Slot EquipSlot
}{
	{"Bronze Dagger", SlotMainHand},
	{"Bronze Med Helm", SlotHead},
	{"Bronze Sword", SlotMainHand},
	{"Bronze Shield", SlotOffHand},
	{"Bronze Full Helm", SlotHead},
	{"Bronze Plate Legs", SlotLegs},
	{"Bronze Long Sword", SlotMainHand},
	{"Bronze Scimitar", SlotMainHand},
	{"Bronze Plate Body", SlotBody},
	{"Iron Dagger", SlotMainHand},
}

// DefaultCatalog registers every item kind the prototype knows about: the
// pickaxe, the ore and bar families, and all crafting outputs.
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	c.Register("pickaxe", func() *Item {
		return &Item{
			Name:        "Pickaxe",
			Description: "A sturdy pickaxe for mining",
			Color:       woodColor,
			Class:       ClassTool,
			Equippable:  true,
			Slot:        SlotMainHand,
			Actions:     []Action{ActionMine},
		}
	})

	c.Register("copper_ore", func() *Item { return NewOre("Copper", copperColor) })
	c.Register("tin_ore", func() *Item { return NewOre("Tin", tinColor) })
	c.Register("iron_ore", func() *Item { return NewOre("Iron", ironColor) })

	c.Register("bronze_bar", func() *Item { return NewBar("Bronze", bronzeColor) })
	c.Register("iron_bar", func() *Item { return NewBar("Iron", ironColor) })

	for _, kind := range equipmentKinds {
		name := kind.Name
		slot := kind.Slot
		c.Register(KindForName(name), func() *Item {
			return NewEquipment(name, "Smithed at an anvil", bronzeColor, slot)
		})
	}

	return c
}
