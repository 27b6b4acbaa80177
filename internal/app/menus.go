package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilesmith/internal/state"
)

const (
	invCols     = 4
	invRows     = 4
	invSlotSize = 56
	invPad      = 8

	craftRowHeight = 24
)

var (
	panelColor    = color.NRGBA{30, 30, 30, 230}
	slotColor     = color.NRGBA{70, 70, 70, 255}
	equippedColor = color.NRGBA{120, 160, 90, 255}
	lockedColor   = color.NRGBA{120, 120, 120, 255}
)

func inventoryOrigin() (int, int) {
	w := invCols*(invSlotSize+invPad) + invPad
	h := invRows*(invSlotSize+invPad) + invPad + 28
	return (ScreenWidth - w) / 2, (ViewportHeight*TileSize - h) / 2
}

func inventorySlotAt(mx, my int) (int, bool) {
	ox, oy := inventoryOrigin()
	gx := mx - ox - invPad
	gy := my - oy - invPad - 28
	if gx < 0 || gy < 0 {
		return 0, false
	}
	col := gx / (invSlotSize + invPad)
	row := gy / (invSlotSize + invPad)
	if col >= invCols || row >= invRows {
		return 0, false
	}
	if gx%(invSlotSize+invPad) >= invSlotSize || gy%(invSlotSize+invPad) >= invSlotSize {
		return 0, false
	}
	return row*invCols + col, true
}

// handleInventoryClick consumes mouse input while the inventory is open.
// Left click equips or unequips, right click drops at the actor's feet.
func (g *Game) handleInventoryClick() bool {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return false
	}
	mx, my := ebiten.CursorPosition()
	slot, ok := inventorySlotAt(mx, my)
	if !ok {
		return true
	}
	if left {
		g.actor.ToggleEquip(slot)
	} else {
		g.actor.Drop(g.tick, slot)
	}
	return true
}

func (g *Game) drawInventory(screen *ebiten.Image) {
	ox, oy := inventoryOrigin()
	w := invCols*(invSlotSize+invPad) + invPad
	h := invRows*(invSlotSize+invPad) + invPad + 28
	g.fillRect(screen, float32(ox), float32(oy), float32(w), float32(h), panelColor)
	g.drawText(screen, "Inventory", float64(ox+invPad), float64(oy+6), textColor)

	for i := 0; i < state.InventorySize; i++ {
		col := i % invCols
		row := i / invCols
		sx := ox + invPad + col*(invSlotSize+invPad)
		sy := oy + invPad + 28 + row*(invSlotSize+invPad)

		it := g.actor.Inventory.At(i)
		bg := slotColor
		if it != nil && it.Equipped {
			bg = equippedColor
		}
		g.fillRect(screen, float32(sx), float32(sy), invSlotSize, invSlotSize, bg)
		if it == nil {
			continue
		}
		g.fillRect(screen, float32(sx+14), float32(sy+10), invSlotSize-28, invSlotSize-28, rgba(it.Color))
		g.drawText(screen, shorten(it.Name, 9), float64(sx+2), float64(sy+invSlotSize-14), textColor)
	}
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

func (g *Game) drawSkills(screen *ebiten.Image) {
	const w, h = 280, 120
	ox := (ScreenWidth - w) / 2
	oy := (ViewportHeight*TileSize - h) / 2
	g.fillRect(screen, float32(ox), float32(oy), w, h, panelColor)
	g.drawText(screen, "Skills", float64(ox+10), float64(oy+8), textColor)

	g.drawText(screen, g.skillLine("Mining", g.actor.Skills.Mining), float64(ox+10), float64(oy+40), textColor)
	g.drawText(screen, g.skillLine("Smithing", g.actor.Skills.Smithing), float64(ox+10), float64(oy+68), textColor)
}

func (g *Game) skillLine(name string, s state.Skill) string {
	next, ok := g.actor.Skills.NextThreshold(s)
	if !ok {
		return fmt.Sprintf("%s: lvl %d (%d xp)", name, s.Level, s.XP)
	}
	return fmt.Sprintf("%s: lvl %d (%d / %d xp)", name, s.Level, s.XP, next)
}

func craftingOrigin(rows int) (int, int, int, int) {
	w := 360
	h := rows*craftRowHeight + 40
	return (ScreenWidth - w) / 2, (ViewportHeight*TileSize - h) / 2, w, h
}

// handleCraftingClick consumes mouse input while the crafting menu is open.
// Clicking a recipe row attempts the craft; the actor reports failures.
func (g *Game) handleCraftingClick() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	recipes := g.cfg.StateRecipes()
	ox, oy, w, h := craftingOrigin(len(recipes))
	mx, my := ebiten.CursorPosition()
	if mx < ox || my < oy || mx >= ox+w || my >= oy+h {
		return true
	}
	row := (my - oy - 32) / craftRowHeight
	if row < 0 || row >= len(recipes) {
		return true
	}
	g.actor.Craft(g.tick, recipes[row])
	return true
}

func (g *Game) drawCrafting(screen *ebiten.Image) {
	recipes := g.cfg.StateRecipes()
	ox, oy, w, h := craftingOrigin(len(recipes))
	g.fillRect(screen, float32(ox), float32(oy), float32(w), float32(h), panelColor)
	g.drawText(screen, "Crafting", float64(ox+10), float64(oy+6), textColor)

	for i, r := range recipes {
		y := oy + 32 + i*craftRowHeight
		clr := textColor
		if g.actor.Skills.Smithing.Level < r.Level {
			clr = lockedColor
		} else if len(g.actor.Inventory.FindKinds(r.BarKind(), r.Bars)) < r.Bars {
			clr = color.NRGBA{200, 170, 120, 255}
		}
		line := fmt.Sprintf("%-18s lvl %-2d  %d %s", r.Name, r.Level, r.Bars, barLabel(r))
		g.drawText(screen, line, float64(ox+10), float64(y), clr)
	}
}

func barLabel(r state.Recipe) string {
	if r.Bars == 1 {
		return r.Material + " bar"
	}
	return r.Material + " bars"
}
