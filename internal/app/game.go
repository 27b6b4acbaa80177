// Package app is the playable front-end: an ebiten loop that renders the
// world, polls input, and drives the actor and the sleep/reset flow. All
// game rules live in internal/state and internal/world; this package is
// presentation glue.
package app

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"tilesmith/internal/config"
	"tilesmith/internal/items"
	"tilesmith/internal/state"
	"tilesmith/internal/world"
	"tilesmith/logging"
	"tilesmith/logging/gameplay"
)

const (
	TileSize       = 50
	ViewportWidth  = 16
	ViewportHeight = 12
	GUIHeight      = 60

	ScreenWidth  = ViewportWidth * TileSize
	ScreenHeight = ViewportHeight*TileSize + GUIHeight

	messageDuration = 3 * 60 // ticks
	maxMessages     = 3
	sleepDuration   = 60 // ticks until fully faded
)

type message struct {
	text    string
	expires uint64
}

// Game is the ebiten run loop state.
type Game struct {
	cfg        config.Config
	configPath string
	catalog    *items.Catalog
	worldMap   *world.Map
	actor      *state.Actor
	pub        logging.Publisher
	watcher    *config.Watcher

	tick     uint64
	cameraX  int
	cameraY  int
	messages []message

	inventoryOpen bool
	skillsOpen    bool
	craftingOpen  bool

	sleeping   bool
	sleepStart uint64

	face text.Face
}

// Params wires a Game together.
type Params struct {
	Config     config.Config
	ConfigPath string
	Catalog    *items.Catalog
	World      *world.Map
	Publisher  logging.Publisher
}

// NewGame spawns the actor at the map spawn and prepares the loop.
func NewGame(p Params) *Game {
	g := &Game{
		cfg:        p.Config,
		configPath: p.ConfigPath,
		catalog:    p.Catalog,
		worldMap:   p.World,
		pub:        p.Publisher,
		face:       text.NewGoXFace(basicfont.Face7x13),
	}
	g.actor = state.NewActor(state.ActorConfig{
		World:        p.World,
		Catalog:      p.Catalog,
		XPThresholds: p.Config.Thresholds(),
		Notifier:     g.addMessage,
		Publisher:    p.Publisher,
		SmeltXP:      p.Config.SmeltXP,
	})
	if p.ConfigPath != "" {
		if watcher, err := config.NewWatcher(p.ConfigPath); err == nil {
			g.watcher = watcher
		}
	}
	return g
}

// Close releases the config watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) addMessage(text string) {
	g.messages = append(g.messages, message{text: text, expires: g.tick + messageDuration})
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

func (g *Game) expireMessages() {
	kept := g.messages[:0]
	for _, m := range g.messages {
		if m.expires > g.tick {
			kept = append(kept, m)
		}
	}
	g.messages = kept
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		cfg, err := config.Load(g.configPath)
		if err != nil {
			g.addMessage("Config reload failed")
			return
		}
		// Recipes and smelt tuning apply immediately; XP thresholds are
		// baked into the actor's skills at spawn and stay fixed.
		g.cfg = cfg
		g.addMessage("Config reloaded")
	default:
	}
}

// Update advances one simulation tick.
func (g *Game) Update() error {
	g.tick++
	g.pollConfig()
	g.expireMessages()

	if g.sleeping {
		g.updateSleep()
		return nil
	}

	g.handleInput()
	g.actor.Advance(g.tick)
	return nil
}

func (g *Game) updateSleep() {
	if g.tick < g.sleepStart+sleepDuration {
		return
	}
	// Fully faded; any key or click wakes the actor and resets the world.
	if len(inpututil.AppendJustPressedKeys(nil)) == 0 &&
		!inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	g.sleeping = false
	stats, err := g.worldMap.Reset(g.catalog)
	if err != nil {
		gameplay.WorldResetFailed(context.Background(), g.pub, g.tick, err)
		g.addMessage("Something went wrong while you slept...")
		return
	}
	gameplay.WorldReset(context.Background(), g.pub, g.tick, gameplay.ResetPayload{
		TilesRestored:  stats.TilesRestored,
		ItemsRespawned: stats.ItemsRespawned,
	})
	g.addMessage("You wake up feeling refreshed!")
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.inventoryOpen = !g.inventoryOpen
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.skillsOpen = !g.skillsOpen
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.craftingOpen = !g.craftingOpen
		return
	}

	if g.inventoryOpen && g.handleInventoryClick() {
		return
	}
	if g.craftingOpen && g.handleCraftingClick() {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.closeMenus()
		g.interact()
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.closeMenus()
		g.actor.Move(g.tick, state.FacingLeft)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.closeMenus()
		g.actor.Move(g.tick, state.FacingRight)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.closeMenus()
		g.actor.Move(g.tick, state.FacingUp)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.closeMenus()
		g.actor.Move(g.tick, state.FacingDown)
	}
}

func (g *Game) closeMenus() {
	g.inventoryOpen = false
	g.skillsOpen = false
	g.craftingOpen = false
}

// interact dispatches E on the faced tile: bed sleeps, furnace smelts,
// anvil opens crafting, otherwise a mining attempt.
func (g *Game) interact() {
	target := g.actor.FacingTile()
	kind := g.worldMap.TileAt(target)
	props := g.worldMap.PropertiesAt(target)

	switch {
	case kind == world.TileBed && props.Interactable:
		g.addMessage("Getting sleepy...")
		g.sleeping = true
		g.sleepStart = g.tick
	case props.Smeltable:
		g.actor.StartSmelt(g.tick, g.cfg.SmeltTicks())
	case kind == world.TileAnvil && props.Interactable:
		g.craftingOpen = true
	default:
		g.actor.Mine(g.tick)
	}
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) hudStatus() string {
	status := fmt.Sprintf("HP %d  Mining %d  Smithing %d",
		g.actor.Health, g.actor.Skills.Mining.Level, g.actor.Skills.Smithing.Level)
	if g.actor.SmeltInProgress() {
		status += "  [smelting]"
	}
	return status
}
