package state

import (
	"context"
	"fmt"

	"tilesmith/internal/items"
	"tilesmith/internal/world"
	"tilesmith/logging"
	"tilesmith/logging/gameplay"
)

// Facing is the direction the actor is looking.
type Facing string

const (
	FacingUp    Facing = "up"
	FacingDown  Facing = "down"
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"

	DefaultFacing Facing = FacingRight
)

// Vector returns the grid delta for one step in this direction.
func (f Facing) Vector() (int, int) {
	switch f {
	case FacingUp:
		return 0, -1
	case FacingDown:
		return 0, 1
	case FacingLeft:
		return -1, 0
	case FacingRight:
		return 1, 0
	default:
		return 1, 0
	}
}

// Notifier receives transient player-facing messages. Gameplay failures
// (level too low, inventory full, nothing to mine) are notifications, never
// errors.
type Notifier func(message string)

const (
	defaultHealth  = 100
	smeltOutput    = "bronze_bar"
	smeltCopper    = "copper_ore"
	smeltTin       = "tin_ore"
	defaultSmeltXP = 20
	craftXPPerBar  = 10
)

// smeltJob tracks the single furnace operation an actor may have in flight.
// The consumed ore slots are remembered so a failed completion can return
// the ores where they came from.
type smeltJob struct {
	completeTick uint64
	copperSlot   int
	tinSlot      int
}

// Recipe is one anvil crafting entry. Output kind is derived from the name.
type Recipe struct {
	Name     string
	Level    int
	Material string
	Bars     int
}

// OutputKind returns the catalog kind the recipe produces.
func (r Recipe) OutputKind() string {
	return items.KindForName(r.Name)
}

// BarKind returns the catalog kind of the bars the recipe consumes.
func (r Recipe) BarKind() string {
	return r.Material + "_bar"
}

// ActorConfig wires an actor to its collaborators.
type ActorConfig struct {
	World        *world.Map
	Catalog      *items.Catalog
	XPThresholds []int
	Notifier     Notifier
	Publisher    logging.Publisher
	SmeltXP      int
	ID           string
}

// Actor is the player: grid position, inventory, equipment and skills. It
// survives world resets entirely unchanged.
type Actor struct {
	Pos       world.Position
	Health    int
	Facing    Facing
	Inventory Inventory
	Equipment Equipment
	Skills    Skills

	worldMap *world.Map
	catalog  *items.Catalog
	notify   Notifier
	pub      logging.Publisher
	ref      logging.EntityRef
	smeltXP  int

	smelt *smeltJob
}

// NewActor spawns the actor at the map's spawn point.
func NewActor(cfg ActorConfig) *Actor {
	notify := cfg.Notifier
	if notify == nil {
		notify = func(string) {}
	}
	pub := cfg.Publisher
	if pub == nil {
		pub = logging.NopPublisher()
	}
	smeltXP := cfg.SmeltXP
	if smeltXP <= 0 {
		smeltXP = defaultSmeltXP
	}
	id := cfg.ID
	if id == "" {
		id = "player"
	}
	return &Actor{
		Pos:       cfg.World.Spawn(),
		Health:    defaultHealth,
		Facing:    DefaultFacing,
		Inventory: Inventory{},
		Equipment: NewEquipment(),
		Skills:    NewSkills(cfg.XPThresholds),
		worldMap:  cfg.World,
		catalog:   cfg.Catalog,
		notify:    notify,
		pub:       pub,
		ref:       logging.EntityRef{ID: id, Kind: logging.EntityKindPlayer},
		smeltXP:   smeltXP,
	}
}

// CanMoveTo reports whether the position is in bounds and walkable.
func (a *Actor) CanMoveTo(pos world.Position) bool {
	if !a.worldMap.InBounds(pos) {
		return false
	}
	return world.IsWalkable(a.worldMap.TileAt(pos))
}

// Move turns the actor to face the direction unconditionally, then advances
// one tile when the destination is walkable. A successful step checks the
// destination tile for ground items.
func (a *Actor) Move(tick uint64, dir Facing) {
	a.Facing = dir
	dx, dy := dir.Vector()
	target := world.Position{X: a.Pos.X + dx, Y: a.Pos.Y + dy}
	if !a.CanMoveTo(target) {
		return
	}
	a.Pos = target
	a.Pickup(tick)
}

// FacingTile returns the grid position directly in front of the actor.
func (a *Actor) FacingTile() world.Position {
	dx, dy := a.Facing.Vector()
	return world.Position{X: a.Pos.X + dx, Y: a.Pos.Y + dy}
}

// Pickup tries to move the top item of the stack under the actor into the
// inventory. One item per step; the rest of the stack stays put. A full
// inventory leaves the item on the ground.
func (a *Actor) Pickup(tick uint64) {
	stack := a.worldMap.ItemsAt(a.Pos)
	if len(stack) == 0 {
		return
	}
	top := stack[len(stack)-1]
	if _, ok := a.Inventory.Add(top); !ok {
		a.notify("Inventory full!")
		gameplay.InventoryFull(context.Background(), a.pub, tick, a.ref, gameplay.ItemPayload{Kind: top.Kind})
		return
	}
	if _, err := a.worldMap.RemoveItem(a.Pos); err != nil {
		return
	}
	a.notify(fmt.Sprintf("Picked up %s", top.Name))
	gameplay.ItemPickedUp(context.Background(), a.pub, tick, a.ref, gameplay.ItemPayload{Kind: top.Kind})
}

// Mine works the tile the actor faces. It needs an equipped mining tool and
// a sufficient mining level. Rocks yield ore, lose their record and become
// depleted; other mineable tiles (walls) are cleared to floor with no yield.
func (a *Actor) Mine(tick uint64) {
	target := a.FacingTile()
	kind := a.worldMap.TileAt(target)
	props := world.PropertiesAt(kind, target, a.worldMap.Rocks())

	if !props.Mineable {
		a.notify("There is nothing to mine here.")
		return
	}
	tool := a.Equipment.Get(items.SlotMainHand)
	if !tool.Can(items.ActionMine) {
		a.notify("You need a pickaxe to mine.")
		return
	}
	if a.Skills.Mining.Level < props.MiningLevel {
		a.notify(fmt.Sprintf("Your mining level is too low (requires %d)", props.MiningLevel))
		return
	}

	if kind != world.TileRock {
		a.worldMap.SetTile(target, world.TileFloor)
		return
	}

	lost := false
	if props.OreType != "" {
		ore, err := a.catalog.Create(props.OreType + "_ore")
		if err != nil {
			// A rock referencing an unregistered ore means the catalog has
			// drifted from the map data.
			a.notify("The rock crumbles to nothing.")
			gameplay.CatalogDrift(context.Background(), a.pub, tick, a.ref, err)
		} else if _, ok := a.Inventory.Add(ore); ok {
			a.notify(fmt.Sprintf("Added %s to inventory", ore.Name))
		} else {
			lost = true
			a.notify("Inventory full!")
			gameplay.InventoryFull(context.Background(), a.pub, tick, a.ref, gameplay.ItemPayload{Kind: ore.Kind})
		}
	}

	a.worldMap.Rocks().Clear(target)
	a.worldMap.SetTile(target, world.TileDepletedRock)
	gameplay.RockDepleted(context.Background(), a.pub, tick, a.ref, target.Key())

	if props.MiningXP > 0 {
		a.notify(fmt.Sprintf("%dxp gained", props.MiningXP))
		gained := a.Skills.AddMiningXP(props.MiningXP)
		if gained > 0 {
			a.notify(fmt.Sprintf("Mining level up! Now level %d", a.Skills.Mining.Level))
			gameplay.LevelUp(context.Background(), a.pub, tick, a.ref, gameplay.LevelUpPayload{
				Skill:  "mining",
				Level:  a.Skills.Mining.Level,
				Gained: gained,
			})
		}
		gameplay.OreMined(context.Background(), a.pub, tick, a.ref, gameplay.OreMinedPayload{
			OreType: props.OreType,
			XP:      props.MiningXP,
			Lost:    lost,
		})
	}
}

// SmeltInProgress reports whether a furnace job is pending.
func (a *Actor) SmeltInProgress() bool {
	return a.smelt != nil
}

// StartSmelt begins a timed bronze smelt at the furnace the actor faces. It
// consumes one copper and one tin ore immediately; the bar appears when the
// deadline passes. Only one job may be in flight: a second attempt is
// rejected, not queued.
func (a *Actor) StartSmelt(tick, durationTicks uint64) {
	target := a.FacingTile()
	props := a.worldMap.PropertiesAt(target)
	if !props.Smeltable {
		a.notify("There is nothing to smelt at.")
		return
	}
	if a.smelt != nil {
		a.notify("You are already smelting.")
		return
	}

	copperSlot := a.Inventory.FindKind(smeltCopper)
	tinSlot := a.Inventory.FindKind(smeltTin)
	if copperSlot < 0 || tinSlot < 0 {
		a.notify("Need 1 Copper Ore and 1 Tin Ore to smelt Bronze Bar")
		return
	}

	a.Inventory.RemoveAt(copperSlot)
	a.Inventory.RemoveAt(tinSlot)
	a.smelt = &smeltJob{
		completeTick: tick + durationTicks,
		copperSlot:   copperSlot,
		tinSlot:      tinSlot,
	}
	a.notify("Smelting Bronze Bar...")
	gameplay.SmeltStarted(context.Background(), a.pub, tick, a.ref, gameplay.SmeltPayload{Output: smeltOutput})
}

// Advance polls time-based state once per frame. Currently that is only the
// smelting deadline.
func (a *Actor) Advance(tick uint64) {
	if a.smelt == nil || tick < a.smelt.completeTick {
		return
	}
	job := a.smelt
	a.smelt = nil

	bar, err := a.catalog.Create(smeltOutput)
	if err != nil {
		gameplay.CatalogDrift(context.Background(), a.pub, tick, a.ref, err)
		return
	}
	if _, ok := a.Inventory.Add(bar); !ok {
		a.notify("Inventory full! Cannot smelt Bronze Bar.")
		gameplay.InventoryFull(context.Background(), a.pub, tick, a.ref, gameplay.ItemPayload{Kind: smeltOutput})
		a.returnConsumed(smeltCopper, job.copperSlot)
		a.returnConsumed(smeltTin, job.tinSlot)
		return
	}
	a.notify("Successfully smelted a Bronze Bar!")
	a.notify(fmt.Sprintf("%dxp gained", a.smeltXP))
	gained := a.Skills.AddSmithingXP(a.smeltXP)
	if gained > 0 {
		a.notify(fmt.Sprintf("Smithing level up! Now level %d", a.Skills.Smithing.Level))
		gameplay.LevelUp(context.Background(), a.pub, tick, a.ref, gameplay.LevelUpPayload{
			Skill:  "smithing",
			Level:  a.Skills.Smithing.Level,
			Gained: gained,
		})
	}
	gameplay.SmeltCompleted(context.Background(), a.pub, tick, a.ref, gameplay.SmeltPayload{Output: smeltOutput, XP: a.smeltXP})
}

// returnConsumed rolls a consumed material back into the inventory: its
// original slot if still free, else any free slot, else its original slot by
// force. The forced case only arises when the player filled the freed slots
// during the job and the inventory is otherwise full.
func (a *Actor) returnConsumed(kind string, slot int) {
	it, err := a.catalog.Create(kind)
	if err != nil {
		return
	}
	if a.Inventory.At(slot) == nil {
		a.Inventory.PutAt(slot, it)
		return
	}
	if _, ok := a.Inventory.Add(it); ok {
		return
	}
	a.Inventory.PutAt(slot, it)
}

// Craft smiths a recipe at the anvil: checks the smithing level, consumes
// the required bars from the first slots found, and adds the output. A full
// inventory rolls the bars back. XP scales with bars consumed.
func (a *Actor) Craft(tick uint64, recipe Recipe) {
	if a.Skills.Smithing.Level < recipe.Level {
		a.notify(fmt.Sprintf("Your smithing level is too low (requires %d)", recipe.Level))
		return
	}
	barKind := recipe.BarKind()
	slots := a.Inventory.FindKinds(barKind, recipe.Bars)
	if len(slots) < recipe.Bars {
		a.notify(fmt.Sprintf("Need %d bars to craft %s", recipe.Bars, recipe.Name))
		return
	}
	for _, slot := range slots {
		a.Inventory.RemoveAt(slot)
	}

	output, err := a.catalog.Create(recipe.OutputKind())
	if err != nil {
		// Unknown output names mean the recipe table drifted from the
		// catalog; roll the bars back and surface the drift.
		for _, slot := range slots {
			a.returnConsumed(barKind, slot)
		}
		gameplay.CatalogDrift(context.Background(), a.pub, tick, a.ref, err)
		return
	}
	if _, ok := a.Inventory.Add(output); !ok {
		a.notify("Inventory full! Cannot craft item.")
		gameplay.InventoryFull(context.Background(), a.pub, tick, a.ref, gameplay.ItemPayload{Kind: output.Kind})
		for _, slot := range slots {
			a.returnConsumed(barKind, slot)
		}
		return
	}

	xp := craftXPPerBar * recipe.Bars
	a.notify(fmt.Sprintf("Successfully crafted %s!", recipe.Name))
	a.notify(fmt.Sprintf("%dxp gained", xp))
	gained := a.Skills.AddSmithingXP(xp)
	if gained > 0 {
		a.notify(fmt.Sprintf("Smithing level up! Now level %d", a.Skills.Smithing.Level))
		gameplay.LevelUp(context.Background(), a.pub, tick, a.ref, gameplay.LevelUpPayload{
			Skill:  "smithing",
			Level:  a.Skills.Smithing.Level,
			Gained: gained,
		})
	}
	gameplay.ItemCrafted(context.Background(), a.pub, tick, a.ref, gameplay.CraftPayload{
		Recipe: recipe.Name,
		Bars:   recipe.Bars,
		XP:     xp,
	})
}

// ToggleEquip equips or unequips the item in the given inventory slot.
func (a *Actor) ToggleEquip(slot int) {
	it := a.Inventory.At(slot)
	if it == nil {
		return
	}
	if !it.Equippable {
		a.notify(fmt.Sprintf("%s cannot be equipped", it.Name))
		return
	}
	if it.Equipped {
		a.Equipment.Unequip(it.Slot)
		a.notify(fmt.Sprintf("%s unequipped", it.Name))
		return
	}
	a.Equipment.Equip(it)
	a.notify(fmt.Sprintf("%s equipped", it.Name))
}

// Drop moves the item in the given inventory slot onto the actor's tile,
// unequipping it first if needed.
func (a *Actor) Drop(tick uint64, slot int) {
	it := a.Inventory.RemoveAt(slot)
	if it == nil {
		return
	}
	if it.Equipped {
		a.Equipment.Unequip(it.Slot)
	}
	a.worldMap.PlaceItem(a.Pos, it)
	a.notify(fmt.Sprintf("Dropped %s", it.Name))
	gameplay.ItemDropped(context.Background(), a.pub, tick, a.ref, gameplay.ItemPayload{Kind: it.Kind})
}
