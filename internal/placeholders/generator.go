// Package placeholders generates placeholder sprite sheets, their JSON
// configs and a sample map, so the game runs before any real art exists.
package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"chosenoffset.com/damselgrove/internal/sheet"
	"chosenoffset.com/damselgrove/internal/world"
)

// TileSize is the standard size for placeholder terrain tiles.
const TileSize = 32

// Walking frame dimensions match the entity sheets.
const (
	FrameWidth  = 16
	FrameHeight = 20
	FrameCount  = 3
)

// Palette defines colors for the placeholder art.
var Palette = struct {
	Grass   color.RGBA
	Dirt    color.RGBA
	Flowers color.RGBA
	Tree    color.RGBA
	Rock    color.RGBA
	Water   color.RGBA

	PlayerBody color.RGBA
	DamselBody color.RGBA
	Skin       color.RGBA
	KeyWhite   color.RGBA
}{
	Grass:   color.RGBA{76, 130, 62, 255},
	Dirt:    color.RGBA{122, 96, 60, 255},
	Flowers: color.RGBA{92, 142, 78, 255},
	Tree:    color.RGBA{38, 74, 40, 255},
	Rock:    color.RGBA{118, 120, 126, 255},
	Water:   color.RGBA{52, 86, 140, 255},

	PlayerBody: color.RGBA{46, 92, 160, 255},
	DamselBody: color.RGBA{160, 62, 92, 255},
	Skin:       color.RGBA{224, 186, 150, 255},
	KeyWhite:   color.RGBA{255, 255, 255, 255},
}

// terrainFrames lists the placeholder terrain, left to right on one row.
var terrainFrames = []struct {
	name     string
	fill     color.RGBA
	walkable bool
}{
	{"grass", Palette.Grass, true},
	{"dirt", Palette.Dirt, true},
	{"flowers", Palette.Flowers, true},
	{"tree", Palette.Tree, false},
	{"rock", Palette.Rock, false},
	{"water", Palette.Water, false},
}

// GenerateAndSave writes the placeholder sheets, configs and sample map
// under dataDir.
func GenerateAndSave(dataDir string) error {
	sheetsDir := filepath.Join(dataDir, "sheets")
	mapsDir := filepath.Join(dataDir, "maps")
	for _, dir := range []string{sheetsDir, mapsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := generateTerrain(sheetsDir); err != nil {
		return err
	}
	if err := generateWalking(sheetsDir, "player", Palette.PlayerBody); err != nil {
		return err
	}
	if err := generateWalking(sheetsDir, "damsel", Palette.DamselBody); err != nil {
		return err
	}
	return generateMap(mapsDir)
}

func generateTerrain(sheetsDir string) error {
	img := image.NewRGBA(image.Rect(0, 0, len(terrainFrames)*TileSize, TileSize))
	config := sheet.Config{
		Name:        "terrain",
		ImagePath:   "terrain.png",
		FrameWidth:  TileSize,
		FrameHeight: TileSize,
	}

	for i, tf := range terrainFrames {
		tile := solidTile(tf.fill)
		draw.Draw(img, image.Rect(i*TileSize, 0, (i+1)*TileSize, TileSize), tile, image.Point{}, draw.Src)
		config.Frames = append(config.Frames, sheet.FrameDef{
			Name:   tf.name,
			SheetX: i,
			SheetY: 0,
			Properties: map[string]interface{}{
				"walkable": tf.walkable,
			},
		})
	}

	if err := writePNG(filepath.Join(sheetsDir, "terrain.png"), img); err != nil {
		return err
	}
	return writeJSON(filepath.Join(sheetsDir, "terrain.json"), &config)
}

// generateWalking draws a 3x4 walking sheet: one row per facing in the
// order down, left, right, up, on a white color-key background.
func generateWalking(sheetsDir, name string, body color.RGBA) error {
	img := image.NewRGBA(image.Rect(0, 0, FrameCount*FrameWidth, 4*FrameHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{Palette.KeyWhite}, image.Point{}, draw.Src)

	rows := []string{"down", "left", "right", "up"}
	for row := range rows {
		for frame := 0; frame < FrameCount; frame++ {
			drawWalkFrame(img, frame*FrameWidth, row*FrameHeight, frame, body)
		}
	}

	config := sheet.Config{
		Name:        name,
		ImagePath:   name + ".png",
		FrameWidth:  FrameWidth,
		FrameHeight: FrameHeight,
		ColorKey:    "white",
	}
	for row, strip := range rows {
		config.Strips = append(config.Strips, sheet.StripDef{
			Name:   strip,
			Row:    row,
			Frames: FrameCount,
		})
	}

	if err := writePNG(filepath.Join(sheetsDir, name+".png"), img); err != nil {
		return err
	}
	return writeJSON(filepath.Join(sheetsDir, name+".json"), &config)
}

// drawWalkFrame draws one figure at (ox, oy): head, body, and legs whose
// stance alternates with the frame index.
func drawWalkFrame(img *image.RGBA, ox, oy, frame int, body color.RGBA) {
	// Head
	fillRect(img, ox+5, oy+1, 6, 5, Palette.Skin)
	// Body
	fillRect(img, ox+4, oy+6, 8, 9, body)

	// Legs: neutral, left forward, right forward.
	switch frame {
	case 1:
		fillRect(img, ox+4, oy+15, 3, 4, body)
		fillRect(img, ox+9, oy+16, 3, 3, body)
	case 2:
		fillRect(img, ox+4, oy+16, 3, 3, body)
		fillRect(img, ox+9, oy+15, 3, 4, body)
	default:
		fillRect(img, ox+4, oy+15, 3, 3, body)
		fillRect(img, ox+9, oy+15, 3, 3, body)
	}
}

// generateMap writes a bordered meadow: trees around the edge, grass
// inside with deterministic patches of dirt, flowers and rocks.
func generateMap(mapsDir string) error {
	const width, height = 25, 19

	tiles := make([][]string, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]string, width)
		for x := 0; x < width; x++ {
			tiles[y][x] = terrainAt(x, y, width, height)
		}
	}

	data := world.MapData{
		Name:      "meadow",
		Width:     width,
		Height:    height,
		TileSize:  TileSize,
		SheetPath: "../sheets/terrain.json",
		PlayerSpawn: world.SpawnPoint{
			X: (width / 2) * TileSize,
			Y: (height / 2) * TileSize,
		},
		DamselSpawns: []world.SpawnPoint{
			{X: 4 * TileSize, Y: 3 * TileSize},
			{X: 20 * TileSize, Y: 5 * TileSize},
			{X: 7 * TileSize, Y: 14 * TileSize},
		},
		Tiles: tiles,
	}

	return writeJSON(filepath.Join(mapsDir, "meadow.json"), &data)
}

func terrainAt(x, y, width, height int) string {
	if x == 0 || y == 0 || x == width-1 || y == height-1 {
		return "tree"
	}
	// Keep the spawn area clear.
	if x >= width/2-2 && x <= width/2+2 && y >= height/2-2 && y <= height/2+2 {
		return "grass"
	}
	switch (x*7 + y*13) % 29 {
	case 0:
		return "rock"
	case 5:
		return "dirt"
	case 11, 17:
		return "flowers"
	default:
		return "grass"
	}
}

func solidTile(fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{fill}, image.Point{}, draw.Src)
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, fill color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), &image.Uniform{fill}, image.Point{}, draw.Src)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
