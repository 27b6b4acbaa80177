package state

import (
	"testing"

	"tilesmith/internal/items"
)

func testItem(kind string) *items.Item {
	return &items.Item{Kind: kind, Name: kind}
}

func TestInventoryAddUsesFirstFreeSlot(t *testing.T) {
	inv := Inventory{}

	slot, ok := inv.Add(testItem("copper_ore"))
	if !ok || slot != 0 {
		t.Fatalf("expected first item in slot 0, got slot %d ok %v", slot, ok)
	}
	slot, ok = inv.Add(testItem("tin_ore"))
	if !ok || slot != 1 {
		t.Fatalf("expected second item in slot 1, got slot %d ok %v", slot, ok)
	}

	inv.RemoveAt(0)
	slot, ok = inv.Add(testItem("bronze_bar"))
	if !ok || slot != 0 {
		t.Fatalf("expected freed slot 0 to be reused, got slot %d ok %v", slot, ok)
	}
}

func TestInventoryRemoveLeavesGap(t *testing.T) {
	inv := Inventory{}
	inv.Add(testItem("a"))
	inv.Add(testItem("b"))
	inv.Add(testItem("c"))

	removed := inv.RemoveAt(1)
	if removed == nil || removed.Kind != "b" {
		t.Fatalf("expected to remove b, got %+v", removed)
	}
	if inv.At(1) != nil {
		t.Fatalf("expected slot 1 to stay empty")
	}
	if inv.At(2) == nil || inv.At(2).Kind != "c" {
		t.Fatalf("expected slot 2 untouched, got %+v", inv.At(2))
	}
}

func TestInventoryFull(t *testing.T) {
	inv := Inventory{}
	for i := 0; i < InventorySize; i++ {
		if _, ok := inv.Add(testItem("filler")); !ok {
			t.Fatalf("unexpected full inventory at %d", i)
		}
	}
	if !inv.Full() {
		t.Fatalf("expected inventory to be full")
	}
	if slot, ok := inv.Add(testItem("overflow")); ok {
		t.Fatalf("expected add to fail when full, got slot %d", slot)
	}
}

func TestInventoryFindKinds(t *testing.T) {
	inv := Inventory{}
	inv.Add(testItem("bronze_bar"))
	inv.Add(testItem("copper_ore"))
	inv.Add(testItem("bronze_bar"))
	inv.Add(testItem("bronze_bar"))

	slots := inv.FindKinds("bronze_bar", 2)
	if len(slots) != 2 || slots[0] != 0 || slots[1] != 2 {
		t.Fatalf("expected slots [0 2], got %v", slots)
	}
	if got := inv.CountKind("bronze_bar"); got != 3 {
		t.Fatalf("expected 3 bronze bars, got %d", got)
	}
	if got := inv.FindKind("iron_bar"); got != -1 {
		t.Fatalf("expected -1 for missing kind, got %d", got)
	}
}

func TestInventoryPutAtOverwrites(t *testing.T) {
	inv := Inventory{}
	inv.Add(testItem("a"))

	inv.PutAt(0, testItem("b"))
	if inv.At(0) == nil || inv.At(0).Kind != "b" {
		t.Fatalf("expected forced overwrite with b, got %+v", inv.At(0))
	}
}

func TestEquipmentDisplacesOccupant(t *testing.T) {
	eq := NewEquipment()
	sword := &items.Item{Kind: "bronze_sword", Equippable: true, Slot: items.SlotMainHand}
	dagger := &items.Item{Kind: "bronze_dagger", Equippable: true, Slot: items.SlotMainHand}

	if displaced := eq.Equip(sword); displaced != nil {
		t.Fatalf("expected empty slot, displaced %+v", displaced)
	}
	if !sword.Equipped {
		t.Fatalf("expected sword to be flagged equipped")
	}

	displaced := eq.Equip(dagger)
	if displaced != sword {
		t.Fatalf("expected sword to be displaced, got %+v", displaced)
	}
	if sword.Equipped {
		t.Fatalf("expected displaced sword to be unequipped")
	}
	if got := eq.Get(items.SlotMainHand); got != dagger {
		t.Fatalf("expected dagger in main hand, got %+v", got)
	}
}

func TestEquipmentToggle(t *testing.T) {
	eq := NewEquipment()
	helm := &items.Item{Kind: "bronze_med_helm", Equippable: true, Slot: items.SlotHead}

	eq.Toggle(helm)
	if !helm.Equipped {
		t.Fatalf("expected toggle to equip")
	}
	eq.Toggle(helm)
	if helm.Equipped {
		t.Fatalf("expected toggle to unequip")
	}
	if eq.Get(items.SlotHead) != nil {
		t.Fatalf("expected head slot to be empty after toggle off")
	}
}
