// Package world loads JSON tile maps and turns them into terrain actors
// registered with the sprite registry.
package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/damselgrove/internal/render"
	"chosenoffset.com/damselgrove/internal/sheet"
	"chosenoffset.com/damselgrove/internal/sprite"
)

// SpawnPoint defines a player or damsel spawn location in pixels.
type SpawnPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MapData represents the loaded map configuration.
type MapData struct {
	Name         string       `json:"name"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	TileSize     int          `json:"tile_size"`
	SheetPath    string       `json:"sheet"`
	PlayerSpawn  SpawnPoint   `json:"player_spawn"`
	DamselSpawns []SpawnPoint `json:"damsel_spawns"`
	Tiles        [][]string   `json:"tiles"` // 2D array of frame names [y][x], "" for empty
}

// Map represents a loaded map with its terrain sheet.
type Map struct {
	Data  *MapData
	Sheet *sheet.Sheet
}

// LoadMap loads a map from a JSON file along with its terrain sheet. The
// sheet path is resolved relative to the map file.
func LoadMap(mapPath string, r render.Renderer) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", mapPath, err)
	}

	sheetPath := mapData.SheetPath
	if !filepath.IsAbs(sheetPath) {
		sheetPath = filepath.Join(filepath.Dir(mapPath), sheetPath)
	}
	terrainSheet, err := sheet.Load(sheetPath, r)
	if err != nil {
		return nil, fmt.Errorf("failed to load terrain sheet %s: %w", sheetPath, err)
	}

	return &Map{
		Data:  &mapData,
		Sheet: terrainSheet,
	}, nil
}

// validateMapData checks if the map data is valid.
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if data.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", data.TileSize)
	}

	if data.SheetPath == "" {
		return fmt.Errorf("sheet path is required")
	}

	if len(data.Tiles) != data.Height {
		return fmt.Errorf("tiles array height mismatch: expected %d, got %d", data.Height, len(data.Tiles))
	}

	for y, row := range data.Tiles {
		if len(row) != data.Width {
			return fmt.Errorf("tiles array width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
	}

	return nil
}

// GetTileAt returns the frame name at the given grid coordinates.
func (m *Map) GetTileAt(x, y int) (string, error) {
	if x < 0 || x >= m.Data.Width || y < 0 || y >= m.Data.Height {
		return "", fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}
	return m.Data.Tiles[y][x], nil
}

// IsWalkable returns whether the tile at the given grid coordinates can be
// walked through. Empty and unknown cells are not walkable.
func (m *Map) IsWalkable(x, y int) bool {
	name, err := m.GetTileAt(x, y)
	if err != nil || name == "" {
		return false
	}
	frame, ok := m.Sheet.GetFrame(name)
	if !ok {
		return false
	}
	return frame.GetPropertyBool("walkable", true)
}

// Tile is a static terrain actor: a mover placed once with SetTile and
// scrolled by the camera afterwards.
type Tile struct {
	mover  sprite.Mover
	handle sprite.Handle
	frame  render.Image
}

// State returns the tile's movement state.
func (t *Tile) State() *sprite.Mover {
	return &t.mover
}

// Frame returns the tile's visual frame.
func (t *Tile) Frame() render.Image {
	return t.frame
}

// Handle returns the tile's registry handle.
func (t *Tile) Handle() sprite.Handle {
	return t.handle
}

// BuildTiles registers one terrain actor per named cell. Every tile joins
// visibleGroup; tiles that are not walkable also join obstacleGroup.
func (m *Map) BuildTiles(reg *sprite.Registry, visibleGroup, obstacleGroup string) ([]*Tile, error) {
	var tiles []*Tile
	size := m.Data.TileSize

	for y, row := range m.Data.Tiles {
		for x, name := range row {
			if name == "" {
				continue
			}

			frame, err := m.Sheet.Frame(name)
			if err != nil {
				return nil, fmt.Errorf("tile (%d, %d): %w", x, y, err)
			}

			t := &Tile{frame: frame}
			t.mover.SetTile(x*size, y*size, frame.Bounds())

			groups := []string{visibleGroup}
			if !m.IsWalkable(x, y) {
				groups = append(groups, obstacleGroup)
			}
			t.handle = reg.Add(t, groups...)
			tiles = append(tiles, t)
		}
	}

	return tiles, nil
}
