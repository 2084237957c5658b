package main

import (
	"errors"
	"flag"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/iburimskiy/warp-search/internal/animation"
	"github.com/iburimskiy/warp-search/internal/config"
	"github.com/iburimskiy/warp-search/internal/game"
	"github.com/iburimskiy/warp-search/internal/history"
	"github.com/iburimskiy/warp-search/internal/search"
)

var (
	configPath = flag.String("config", "overlay.yaml", "path to the YAML config file")
	kindFlag   = flag.String("animation", "", "animation kind, overrides the config file")
	verbose    = flag.Bool("verbose", true, "log to stderr")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg := config.LoadOrDefault(*configPath)
	if *kindFlag != "" {
		cfg.Animation = *kindFlag
	}

	store, err := gdata.Open(gdata.Config{AppName: "warp_search"})
	if err != nil {
		log.Printf("[App] Warning: persistent storage unavailable: %v", err)
		store = nil
	}
	recent := history.NewStore(store, cfg.History.Limit)

	stage := game.NewStage(cfg.Window.Width, cfg.Window.Height, func() game.Renderer {
		return game.NewStarField()
	})
	stage.Start(animation.Kind(cfg.Animation))

	opts := game.OverlayOptions{
		Search: search.NewAsync(&search.ProcessClient{
			Command: cfg.Search.Command,
			TopK:    cfg.Search.TopK,
			Timeout: cfg.Search.Timeout,
		}),
		History:  recent,
		OnSubmit: stage.Search,
	}
	if cfg.Sound.Warp != "" {
		cue, err := game.LoadWarpCue(cfg.Sound.Warp)
		if err != nil {
			log.Printf("[App] Warning: warp sound disabled: %v", err)
		} else {
			opts.Cue = cue
		}
	}
	overlay := game.NewOverlay(opts)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := game.NewGame(stage, overlay)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
