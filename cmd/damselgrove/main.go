package main

import (
	"log"
	"path/filepath"

	"chosenoffset.com/damselgrove/internal/config"
	"chosenoffset.com/damselgrove/internal/game"
	"chosenoffset.com/damselgrove/internal/mapscanner"
	ebitenrender "chosenoffset.com/damselgrove/internal/render/ebiten"
)

func main() {
	cfg := config.Load()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	log.Println("Scanning data directory for available maps...")
	maps, err := mapscanner.ScanDataDirectory(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to scan data directory: %v (run gensheets to create placeholder data)", err)
	}
	log.Printf("Found %d maps in %s", len(maps), filepath.Join(cfg.DataDir, "maps"))

	gameManager := game.NewManager(renderer, inputMgr, cfg, maps)

	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("Damselgrove")
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
