package editor

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"tilesmith/internal/items"
	"tilesmith/internal/world"
)

var spawnColor = color.NRGBA{255, 255, 0, 255}

func nrgba(c items.RGB) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

func solidNineSlice(c color.Color) *euiimage.NineSlice {
	return euiimage.NewNineSliceColor(c)
}

func editorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.Black,
				Selected:            color.RGBA{0, 0, 128, 255},
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{200, 220, 255, 255},
				SelectedBackground:  color.RGBA{180, 200, 255, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(color.RGBA{220, 220, 220, 255}),
				Mask: solidNineSlice(color.RGBA{220, 220, 220, 255}),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(color.RGBA{40, 40, 40, 255}),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:   solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed: solidNineSlice(color.RGBA{160, 160, 160, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}

type tileEntry struct {
	Kind world.TileKind
	Name string
}

type rockEntry struct {
	Record world.RockRecord
}

func (e *Editor) buildUI() *ebitenui.UI {
	ui := &ebitenui.UI{}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: src, Size: 13}
	e.statusFace = fontFace
	ui.PrimaryTheme = editorTheme(&fontFace)

	sidebar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(SidebarWidth, ScreenHeight),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)

	e.addToolRow(sidebar, ui.PrimaryTheme, &fontFace)
	e.addTileList(sidebar, &fontFace)
	e.addRockList(sidebar, &fontFace)
	e.addItemList(sidebar, &fontFace)
	e.addMapControls(sidebar, ui.PrimaryTheme, &fontFace)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	sidebar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(sidebar)
	ui.Container = root
	return ui
}

func (e *Editor) addToolRow(parent *widget.Container, theme *widget.Theme, fontFace *text.Face) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	tools := []struct {
		name string
		tool Tool
	}{
		{"Tile", ToolTile},
		{"Rock", ToolRock},
		{"Item", ToolItem},
		{"Spawn", ToolSpawn},
		{"Erase", ToolErase},
	}
	var buttons []*widget.Button
	for _, t := range tools {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(t.name, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(36, 28)),
		)
		buttons = append(buttons, btn)
		row.AddChild(btn)
	}
	elements := make([]widget.RadioGroupElement, 0, len(buttons))
	for _, b := range buttons {
		elements = append(elements, b)
	}
	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for i, b := range buttons {
				if args.Active == b {
					e.tool = tools[i].tool
					return
				}
			}
		}),
	)
	group.SetActive(buttons[0])
	parent.AddChild(row)
}

func (e *Editor) addTileList(parent *widget.Container, fontFace *text.Face) {
	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Tiles", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))
	entries := make([]any, 0, len(world.TileKinds()))
	for _, kind := range world.TileKinds() {
		entries = append(entries, tileEntry{Kind: kind, Name: world.Properties(kind).Name})
	}
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(v any) string {
			if entry, ok := v.(tileEntry); ok {
				return entry.Name
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if entry, ok := args.Entry.(tileEntry); ok {
				e.paintTile = entry.Kind
				e.tool = ToolTile
			}
		}),
	)
	parent.AddChild(list)
}

func (e *Editor) addRockList(parent *widget.Container, fontFace *text.Face) {
	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Rocks", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))
	types := world.RockTypes()
	entries := make([]any, 0, len(types))
	for _, r := range types {
		entries = append(entries, rockEntry{Record: r})
	}
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(v any) string {
			if entry, ok := v.(rockEntry); ok {
				return fmt.Sprintf("%s (lvl %d)", entry.Record.Name, entry.Record.MiningLevel)
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if entry, ok := args.Entry.(rockEntry); ok {
				e.paintRock = entry.Record
				e.tool = ToolRock
			}
		}),
	)
	parent.AddChild(list)
}

func (e *Editor) addItemList(parent *widget.Container, fontFace *text.Face) {
	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Items", fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))
	kinds := e.catalog.Kinds()
	entries := make([]any, 0, len(kinds))
	for _, k := range kinds {
		entries = append(entries, k)
	}
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(v any) string {
			if kind, ok := v.(string); ok {
				return kind
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if kind, ok := args.Entry.(string); ok {
				e.paintItem = kind
				e.tool = ToolItem
			}
		}),
	)
	parent.AddChild(list)
}

func (e *Editor) addMapControls(parent *widget.Container, theme *widget.Theme, fontFace *text.Face) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	controls := []struct {
		name string
		fn   func()
	}{
		{"W+", func() { e.resize(1, 0) }},
		{"W-", func() { e.resize(-1, 0) }},
		{"H+", func() { e.resize(0, 1) }},
		{"H-", func() { e.resize(0, -1) }},
	}
	for _, c := range controls {
		fn := c.fn
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(c.name, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) { fn() }),
		))
	}
	parent.AddChild(row)

	parent.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Save (Ctrl+S)", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) { e.save() }),
	))
}

func (e *Editor) drawStatus(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, SidebarWidth, 0, ScreenWidth-SidebarWidth, 22, color.NRGBA{0, 0, 0, 200}, false)
	op := &text.DrawOptions{}
	op.GeoM.Translate(SidebarWidth+8, 4)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, e.status, e.statusFace, op)
}
