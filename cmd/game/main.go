package main

import (
	"context"
	"flag"
	"log"

	"tilesmith/internal/app"
)

func main() {
	var opts app.Options
	flag.StringVar(&opts.ConfigPath, "config", "config/game.yaml", "path to the gameplay config")
	flag.StringVar(&opts.MapPath, "map", "maps/test_map.json", "path to the map to play")
	flag.Parse()

	if err := app.Run(context.Background(), opts); err != nil {
		log.Fatalf("%v", err)
	}
}
