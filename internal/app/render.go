package app

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tilesmith/internal/items"
	"tilesmith/internal/state"
	"tilesmith/internal/world"
)

func rgba(c items.RGB) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

var (
	guiColor       = color.NRGBA{50, 50, 50, 255}
	playerColor    = color.NRGBA{255, 0, 0, 255}
	indicatorColor = color.NRGBA{255, 255, 0, 255}
	textColor      = color.NRGBA{255, 255, 255, 255}
)

func (g *Game) fillRect(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, clr, false)
}

func (g *Game) drawText(dst *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, g.face, op)
}

// updateCamera centers the viewport on the actor, clamped to map bounds.
func (g *Game) updateCamera() {
	g.cameraX = clampInt(g.actor.Pos.X-ViewportWidth/2, 0, max(0, g.worldMap.Width()-ViewportWidth))
	g.cameraY = clampInt(g.actor.Pos.Y-ViewportHeight/2, 0, max(0, g.worldMap.Height()-ViewportHeight))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Draw renders the frame: tiles, ground stacks, the actor, the HUD and any
// open menu, then the sleep overlay on top.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(world.Properties(world.TileFloor).Color))
	g.updateCamera()

	for vy := 0; vy < ViewportHeight; vy++ {
		for vx := 0; vx < ViewportWidth; vx++ {
			pos := world.Position{X: vx + g.cameraX, Y: vy + g.cameraY}
			if !g.worldMap.InBounds(pos) {
				continue
			}
			props := g.worldMap.PropertiesAt(pos)
			g.fillRect(screen, float32(vx*TileSize), float32(vy*TileSize), TileSize, TileSize, rgba(props.Color))
		}
	}

	g.drawGroundItems(screen)
	g.drawActor(screen)
	g.drawGUI(screen)

	if g.inventoryOpen {
		g.drawInventory(screen)
	}
	if g.skillsOpen {
		g.drawSkills(screen)
	}
	if g.craftingOpen {
		g.drawCrafting(screen)
	}
	if g.sleeping {
		g.drawSleepOverlay(screen)
	}
}

func (g *Game) drawGroundItems(screen *ebiten.Image) {
	for _, pos := range g.worldMap.GroundPositions() {
		sx := (pos.X - g.cameraX) * TileSize
		sy := (pos.Y - g.cameraY) * TileSize
		if sx < 0 || sy < 0 || sx >= ScreenWidth || sy >= ViewportHeight*TileSize {
			continue
		}
		stack := g.worldMap.ItemsAt(pos)
		top := stack[len(stack)-1]
		g.fillRect(screen, float32(sx+5), float32(sy+5), TileSize-12, TileSize-12, rgba(top.Color))
		if len(stack) > 1 {
			g.drawText(screen, "x"+strconv.Itoa(len(stack)), float64(sx+TileSize-18), float64(sy+TileSize-18), textColor)
		}
	}
}

func (g *Game) drawActor(screen *ebiten.Image) {
	sx := (g.actor.Pos.X - g.cameraX) * TileSize
	sy := (g.actor.Pos.Y - g.cameraY) * TileSize
	g.fillRect(screen, float32(sx+5), float32(sy+5), TileSize-10, TileSize-10, playerColor)

	cx := sx + TileSize/2
	cy := sy + TileSize/2
	const indicator = 8
	var ix, iy int
	switch g.actor.Facing {
	case state.FacingRight:
		ix, iy = cx+5, cy-4
	case state.FacingLeft:
		ix, iy = cx-13, cy-4
	case state.FacingUp:
		ix, iy = cx-4, cy-13
	default:
		ix, iy = cx-4, cy+5
	}
	g.fillRect(screen, float32(ix), float32(iy), indicator, indicator, indicatorColor)
}

func (g *Game) drawGUI(screen *ebiten.Image) {
	guiY := ViewportHeight * TileSize
	g.fillRect(screen, 0, float32(guiY), ScreenWidth, GUIHeight, guiColor)
	g.drawText(screen, g.hudStatus(), 10, float64(guiY+8), textColor)
	g.drawText(screen, "arrows: move  E: interact  I: inventory  K: skills  C: craft", 10, float64(guiY+30), color.NRGBA{180, 180, 180, 255})

	y := 8.0
	for _, m := range g.messages {
		g.drawText(screen, m.text, 8, y, textColor)
		y += 16
	}
}

func (g *Game) drawSleepOverlay(screen *ebiten.Image) {
	elapsed := g.tick - g.sleepStart
	alpha := uint8(255)
	if elapsed < sleepDuration {
		alpha = uint8(255 * elapsed / sleepDuration)
	}
	g.fillRect(screen, 0, 0, ScreenWidth, ScreenHeight, color.NRGBA{0, 0, 0, alpha})
	if alpha > 128 {
		g.drawText(screen, "Zzzzz...", ScreenWidth/2-30, ScreenHeight/2-20, textColor)
	}
	if elapsed >= sleepDuration {
		g.drawText(screen, "Click or press any key to wake up", ScreenWidth/2-110, ScreenHeight/2+20, color.NRGBA{200, 200, 200, 255})
	}
}
