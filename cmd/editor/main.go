package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tilesmith/internal/editor"
	"tilesmith/internal/items"
	"tilesmith/internal/world"
	"tilesmith/logging"
	loggingsinks "tilesmith/logging/sinks"
)

func main() {
	var mapPath string
	var width, height int
	flag.StringVar(&mapPath, "map", "maps/test_map.json", "map file to edit (created on save if missing)")
	flag.IntVar(&width, "width", 25, "width of a new map")
	flag.IntVar(&height, "height", 25, "height of a new map")
	flag.Parse()

	catalog := items.DefaultCatalog()

	worldMap, err := world.LoadFile(mapPath, catalog)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("could not load %s, starting fresh: %v", mapPath, err)
		}
		worldMap = world.NewMap(width, height)
	}

	router := logging.NewRouter(nil, logging.DefaultConfig(), []logging.NamedSink{
		{Name: "console", Sink: loggingsinks.NewConsole(os.Stdout)},
	})

	e := editor.New(editor.Params{
		World:     worldMap,
		Catalog:   catalog,
		SavePath:  mapPath,
		Publisher: router,
	})

	ebiten.SetWindowSize(editor.ScreenWidth, editor.ScreenHeight)
	ebiten.SetWindowTitle("Tilesmith Editor")
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("%v", err)
	}
}
