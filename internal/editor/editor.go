// Package editor is the map builder: an ebiten loop with an ebitenui
// sidebar of tile, rock and item palettes. It paints onto a world.Map and
// saves it in the same JSON format the game loads.
package editor

import (
	"context"
	"fmt"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tilesmith/internal/items"
	"tilesmith/internal/world"
	"tilesmith/logging"
)

const (
	ScreenWidth  = 1100
	ScreenHeight = 700

	SidebarWidth = 220
	TileSize     = 40
)

// Tool selects what a left click paints.
type Tool int

const (
	ToolTile Tool = iota
	ToolRock
	ToolItem
	ToolSpawn
	ToolErase
)

// Editor is the ebiten run loop state for the map builder.
type Editor struct {
	worldMap *world.Map
	catalog  *items.Catalog
	pub      logging.Publisher
	savePath string

	ui         *ebitenui.UI
	statusFace text.Face

	tool         Tool
	paintTile    world.TileKind
	paintRock    world.RockRecord
	paintItem    string
	painting     bool
	panX, panY   int
	lastPanX     int
	lastPanY     int
	panning      bool

	status      string
	statusUntil uint64
	tick        uint64
}

// Params wires an Editor together.
type Params struct {
	World     *world.Map
	Catalog   *items.Catalog
	SavePath  string
	Publisher logging.Publisher
}

// New builds the editor around an existing map, or a fresh 25x25 one.
func New(p Params) *Editor {
	m := p.World
	if m == nil {
		m = world.NewMap(25, 25)
	}
	pub := p.Publisher
	if pub == nil {
		pub = logging.NopPublisher()
	}
	e := &Editor{
		worldMap:  m,
		catalog:   p.Catalog,
		pub:       pub,
		savePath:  p.SavePath,
		paintTile: world.TileFloor,
	}
	rocks := world.RockTypes()
	if len(rocks) > 0 {
		e.paintRock = rocks[0]
	}
	if kinds := p.Catalog.Kinds(); len(kinds) > 0 {
		e.paintItem = kinds[0]
	}
	e.ui = e.buildUI()
	return e
}

func (e *Editor) setStatus(text string) {
	e.status = text
	e.statusUntil = e.tick + 180
}

func (e *Editor) save() {
	if err := e.worldMap.SaveFile(e.savePath); err != nil {
		e.setStatus(fmt.Sprintf("Save failed: %v", err))
		e.pub.Publish(context.Background(), logging.Event{
			Type:     "editor.save_failed",
			Severity: logging.SeverityError,
			Category: logging.CategorySystem,
			Payload:  map[string]string{"path": e.savePath, "error": err.Error()},
		})
		return
	}
	e.setStatus("Saved " + e.savePath)
	e.pub.Publish(context.Background(), logging.Event{
		Type:     "editor.saved",
		Severity: logging.SeverityInfo,
		Category: logging.CategorySystem,
		Payload:  map[string]string{"path": e.savePath},
	})
}

func (e *Editor) resize(dw, dh int) {
	w := e.worldMap.Width() + dw
	h := e.worldMap.Height() + dh
	if w < 3 || h < 3 {
		return
	}
	e.worldMap.Resize(w, h)
	e.setStatus(fmt.Sprintf("Map %dx%d", w, h))
}

func (e *Editor) cellAt(sx, sy int) (world.Position, bool) {
	if sx < SidebarWidth {
		return world.Position{}, false
	}
	x := (sx - SidebarWidth - e.panX) / TileSize
	y := (sy - e.panY) / TileSize
	if sx-SidebarWidth-e.panX < 0 || sy-e.panY < 0 {
		return world.Position{}, false
	}
	pos := world.Position{X: x, Y: y}
	if !e.worldMap.InBounds(pos) {
		return world.Position{}, false
	}
	return pos, true
}

func (e *Editor) applyTool(pos world.Position) {
	switch e.tool {
	case ToolTile:
		e.worldMap.SetTile(pos, e.paintTile)
	case ToolRock:
		e.worldMap.SetTile(pos, world.TileRock)
		e.worldMap.Rocks().Set(pos, e.paintRock)
	case ToolItem:
		it, err := e.catalog.Create(e.paintItem)
		if err != nil {
			e.setStatus("Unknown item: " + e.paintItem)
			return
		}
		e.worldMap.PlaceItem(pos, it)
	case ToolSpawn:
		e.worldMap.SetSpawn(pos)
		e.setStatus(fmt.Sprintf("Spawn set to %s", pos.Key()))
	case ToolErase:
		for {
			if _, err := e.worldMap.RemoveItem(pos); err != nil {
				break
			}
		}
		e.worldMap.SetTile(pos, world.TileFloor)
	}
}

// Update polls the sidebar UI, pan and paint input.
func (e *Editor) Update() error {
	e.tick++
	e.ui.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyS) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		e.save()
	}

	// Middle mouse pans the canvas.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		e.panning = true
		e.lastPanX, e.lastPanY = ebiten.CursorPosition()
	}
	if e.panning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		cx, cy := ebiten.CursorPosition()
		e.panX += cx - e.lastPanX
		e.panY += cy - e.lastPanY
		e.lastPanX, e.lastPanY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		e.panning = false
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		e.painting = false
	}

	// Sidebar clicks must not paint the cell underneath.
	if ebuiinput.UIHovered {
		return nil
	}

	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if !justPressed && !(e.painting && held) {
		return nil
	}
	pos, ok := e.cellAt(ebiten.CursorPosition())
	if !ok {
		return nil
	}
	// Item and spawn tools are click-only; drag-painting them would stack
	// dozens of items per frame.
	if e.tool == ToolItem || e.tool == ToolSpawn {
		if justPressed {
			e.applyTool(pos)
		}
		return nil
	}
	e.painting = true
	e.applyTool(pos)
	return nil
}

// Draw renders the canvas grid and hands the sidebar to ebitenui.
func (e *Editor) Draw(screen *ebiten.Image) {
	e.drawCanvas(screen)
	e.ui.Draw(screen)
	if e.status != "" && e.tick < e.statusUntil {
		e.drawStatus(screen)
	}
}

func (e *Editor) drawCanvas(screen *ebiten.Image) {
	for y := 0; y < e.worldMap.Height(); y++ {
		for x := 0; x < e.worldMap.Width(); x++ {
			pos := world.Position{X: x, Y: y}
			sx := SidebarWidth + e.panX + x*TileSize
			sy := e.panY + y*TileSize
			if sx+TileSize < SidebarWidth || sy+TileSize < 0 || sx >= ScreenWidth || sy >= ScreenHeight {
				continue
			}
			props := e.worldMap.PropertiesAt(pos)
			vector.DrawFilledRect(screen, float32(sx), float32(sy), TileSize-1, TileSize-1, nrgba(props.Color), false)

			if len(e.worldMap.ItemsAt(pos)) > 0 {
				top := e.worldMap.ItemsAt(pos)[len(e.worldMap.ItemsAt(pos))-1]
				vector.DrawFilledRect(screen, float32(sx+10), float32(sy+10), TileSize-21, TileSize-21, nrgba(top.Color), false)
			}
			if pos == e.worldMap.Spawn() {
				vector.StrokeRect(screen, float32(sx+2), float32(sy+2), TileSize-5, TileSize-5, 2, spawnColor, false)
			}
		}
	}
}

// Layout reports the fixed logical screen size.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
