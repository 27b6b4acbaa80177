// Package gameplay publishes the structured events the simulation emits for
// mining, smithing, inventory traffic and world resets.
package gameplay

import (
	"context"

	"tilesmith/logging"
)

const (
	// EventOreMined is emitted when a rock yields ore.
	EventOreMined logging.EventType = "mining.ore_mined"
	// EventRockDepleted is emitted when a rock transitions to depleted.
	EventRockDepleted logging.EventType = "mining.rock_depleted"
	// EventSmeltStarted is emitted when a furnace job begins.
	EventSmeltStarted logging.EventType = "smithing.smelt_started"
	// EventSmeltCompleted is emitted when a furnace job finishes.
	EventSmeltCompleted logging.EventType = "smithing.smelt_completed"
	// EventItemCrafted is emitted on a successful anvil craft.
	EventItemCrafted logging.EventType = "smithing.item_crafted"
	// EventItemPickedUp is emitted when a ground item enters an inventory.
	EventItemPickedUp logging.EventType = "inventory.item_picked_up"
	// EventItemDropped is emitted when an inventory item hits the ground.
	EventItemDropped logging.EventType = "inventory.item_dropped"
	// EventInventoryFull is emitted when an add attempt bounces.
	EventInventoryFull logging.EventType = "inventory.full"
	// EventLevelUp is emitted on every skill level gained.
	EventLevelUp logging.EventType = "skills.level_up"
	// EventWorldReset is emitted when the world restores its snapshot.
	EventWorldReset logging.EventType = "world.reset"
	// EventWorldResetFailed is emitted when a restore cannot rebuild its
	// ground items; this indicates catalog/data drift and is fatal.
	EventWorldResetFailed logging.EventType = "world.reset_failed"
	// EventCatalogDrift is emitted when live data references an item kind
	// the catalog does not know.
	EventCatalogDrift logging.EventType = "system.catalog_drift"
)

// OreMinedPayload describes a successful ore extraction.
type OreMinedPayload struct {
	OreType string `json:"oreType"`
	XP      int    `json:"xp"`
	Lost    bool   `json:"lost,omitempty"`
}

// SmeltPayload describes a furnace job.
type SmeltPayload struct {
	Output string `json:"output"`
	XP     int    `json:"xp,omitempty"`
}

// CraftPayload describes an anvil craft.
type CraftPayload struct {
	Recipe string `json:"recipe"`
	Bars   int    `json:"bars"`
	XP     int    `json:"xp"`
}

// ItemPayload names the item an inventory event concerns.
type ItemPayload struct {
	Kind string `json:"kind"`
}

// LevelUpPayload describes a skill gaining levels.
type LevelUpPayload struct {
	Skill  string `json:"skill"`
	Level  int    `json:"level"`
	Gained int    `json:"gained"`
}

// ResetPayload summarizes a world reset.
type ResetPayload struct {
	TilesRestored  int `json:"tilesRestored"`
	ItemsRespawned int `json:"itemsRespawned"`
}

func publish(ctx context.Context, pub logging.Publisher, event logging.Event) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, event)
}

// OreMined publishes a successful mining extraction.
func OreMined(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload OreMinedPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventOreMined,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  payload,
	})
}

// RockDepleted publishes a rock transitioning to depleted.
func RockDepleted(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, position string) {
	publish(ctx, pub, logging.Event{
		Type:     EventRockDepleted,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Extra:    map[string]any{"position": position},
	})
}

// SmeltStarted publishes a furnace job beginning.
func SmeltStarted(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload SmeltPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventSmeltStarted,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  payload,
	})
}

// SmeltCompleted publishes a furnace job finishing.
func SmeltCompleted(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload SmeltPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventSmeltCompleted,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  payload,
	})
}

// ItemCrafted publishes a successful craft.
func ItemCrafted(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload CraftPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventItemCrafted,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  payload,
	})
}

// ItemPickedUp publishes a ground pickup.
func ItemPickedUp(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload ItemPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventItemPickedUp,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  payload,
	})
}

// ItemDropped publishes an inventory drop.
func ItemDropped(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload ItemPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventItemDropped,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  payload,
	})
}

// InventoryFull publishes a bounced add attempt.
func InventoryFull(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload ItemPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventInventoryFull,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityWarn,
		Category: logging.CategoryGameplay,
		Payload:  payload,
	})
}

// LevelUp publishes skill level gains.
func LevelUp(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload LevelUpPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventLevelUp,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGameplay,
		Payload:  payload,
	})
}

// WorldReset publishes a completed snapshot restore.
func WorldReset(ctx context.Context, pub logging.Publisher, tick uint64, payload ResetPayload) {
	publish(ctx, pub, logging.Event{
		Type:     EventWorldReset,
		Tick:     tick,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryWorld,
		Payload:  payload,
	})
}

// CatalogDrift publishes a data reference to an unregistered item kind.
func CatalogDrift(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, err error) {
	publish(ctx, pub, logging.Event{
		Type:     EventCatalogDrift,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityError,
		Category: logging.CategorySystem,
		Extra:    map[string]any{"error": err.Error()},
	})
}

// WorldResetFailed publishes a restore that could not rebuild its items.
func WorldResetFailed(ctx context.Context, pub logging.Publisher, tick uint64, err error) {
	publish(ctx, pub, logging.Event{
		Type:     EventWorldResetFailed,
		Tick:     tick,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityError,
		Category: logging.CategoryWorld,
		Extra:    map[string]any{"error": err.Error()},
	})
}
