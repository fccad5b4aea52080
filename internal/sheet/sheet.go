// Package sheet loads JSON-configured sprite sheets: named single frames
// for terrain and fixed-size per-direction animation strips for walking
// actors. Sheets may declare a color key (white or black) that is turned
// transparent when the image is loaded.
package sheet

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	_ "image/png"

	"chosenoffset.com/damselgrove/internal/render"
)

// FrameDef defines a single named frame within a sheet.
type FrameDef struct {
	Name       string                 `json:"name"`       // Semantic name (e.g., "grass", "tree")
	SheetX     int                    `json:"sheet_x"`    // X position in the sheet (in frames)
	SheetY     int                    `json:"sheet_y"`    // Y position in the sheet (in frames)
	Properties map[string]interface{} `json:"properties"` // Custom properties (walkable, type, etc.)
}

// StripDef defines a horizontal run of animation frames on one row.
type StripDef struct {
	Name   string `json:"name"`   // Animation name (e.g., "up", "down")
	Row    int    `json:"row"`    // Row in the sheet (in frames)
	Frames int    `json:"frames"` // Number of frames in the strip
}

// Config defines the JSON configuration for a sprite sheet.
type Config struct {
	Name        string     `json:"name"`
	ImagePath   string     `json:"image_path"`
	FrameWidth  int        `json:"frame_width"`
	FrameHeight int        `json:"frame_height"`
	ColorKey    string     `json:"color_key"` // "", "white" or "black"
	Frames      []FrameDef `json:"frames"`
	Strips      []StripDef `json:"strips"`
}

// Sheet represents a loaded sprite sheet.
type Sheet struct {
	Config       *Config
	Image        render.Image
	framesByName map[string]*FrameDef
	stripsByName map[string]*StripDef
}

var colorKeys = map[string]color.RGBA{
	"white": {255, 255, 255, 255},
	"black": {0, 0, 0, 255},
}

// Load reads a sheet configuration, loads its image through the renderer
// and applies the configured color key. The image path is resolved
// relative to the config file.
func Load(configPath string, r render.Renderer) (*Sheet, error) {
	s, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	imagePath := s.Config.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(configPath), imagePath)
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet image %s: %w", imagePath, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sheet image %s: %w", imagePath, err)
	}

	if key, ok := colorKeys[s.Config.ColorKey]; ok {
		src = keyToTransparent(src, key)
	}
	s.Image = r.NewImageFromImage(src)

	return s, nil
}

// loadConfig parses and validates a sheet configuration without touching
// the image file.
func loadConfig(configPath string) (*Sheet, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet config %s: %w", configPath, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse sheet config %s: %w", configPath, err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid sheet config %s: %w", configPath, err)
	}

	return New(&config), nil
}

// New builds a sheet around an already-parsed config. The Image field must
// be set before frames or strips are extracted; Load does this for callers
// with a real image file.
func New(config *Config) *Sheet {
	framesByName := make(map[string]*FrameDef)
	for i := range config.Frames {
		frame := &config.Frames[i]
		if frame.Name != "" {
			framesByName[frame.Name] = frame
		}
	}

	stripsByName := make(map[string]*StripDef)
	for i := range config.Strips {
		strip := &config.Strips[i]
		if strip.Name != "" {
			stripsByName[strip.Name] = strip
		}
	}

	return &Sheet{
		Config:       config,
		framesByName: framesByName,
		stripsByName: stripsByName,
	}
}

func validateConfig(config *Config) error {
	if config.FrameWidth <= 0 || config.FrameHeight <= 0 {
		return fmt.Errorf("invalid frame dimensions: %dx%d", config.FrameWidth, config.FrameHeight)
	}

	if config.ImagePath == "" {
		return fmt.Errorf("image_path is required")
	}

	if config.ColorKey != "" {
		if _, ok := colorKeys[config.ColorKey]; !ok {
			return fmt.Errorf("unknown color key %q", config.ColorKey)
		}
	}

	for _, strip := range config.Strips {
		if strip.Frames <= 0 {
			return fmt.Errorf("strip %q has no frames", strip.Name)
		}
	}

	return nil
}

// GetFrame returns a frame definition by name.
func (s *Sheet) GetFrame(name string) (*FrameDef, bool) {
	frame, ok := s.framesByName[name]
	return frame, ok
}

// Frame returns the sub-image for a named frame.
func (s *Sheet) Frame(name string) (render.Image, error) {
	frame, ok := s.GetFrame(name)
	if !ok {
		return nil, fmt.Errorf("frame not found: %s", name)
	}
	return s.frameSub(frame.SheetX, frame.SheetY), nil
}

// Strip returns the frames of a named animation strip, left to right.
func (s *Sheet) Strip(name string) ([]render.Image, error) {
	strip, ok := s.stripsByName[name]
	if !ok {
		return nil, fmt.Errorf("strip not found: %s", name)
	}

	frames := make([]render.Image, 0, strip.Frames)
	for i := 0; i < strip.Frames; i++ {
		frames = append(frames, s.frameSub(i, strip.Row))
	}
	return frames, nil
}

// frameSub extracts the frame at grid position (fx, fy).
func (s *Sheet) frameSub(fx, fy int) render.Image {
	x := fx * s.Config.FrameWidth
	y := fy * s.Config.FrameHeight
	rect := image.Rect(x, y, x+s.Config.FrameWidth, y+s.Config.FrameHeight)
	return s.Image.SubImage(rect)
}

// keyToTransparent copies src, replacing every pixel matching the key
// color with full transparency.
func keyToTransparent(src image.Image, key color.RGBA) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(b)
	kr, kg, kb, _ := key.RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			if r == kr && g == kg && bl == kb {
				out.Set(x, y, color.RGBA{})
			} else {
				out.Set(x, y, src.At(x, y))
			}
		}
	}
	return out
}

// GetProperty retrieves a property from a frame definition.
func (fd *FrameDef) GetProperty(key string) (interface{}, bool) {
	if fd.Properties == nil {
		return nil, false
	}
	val, ok := fd.Properties[key]
	return val, ok
}

// GetPropertyBool retrieves a boolean property.
func (fd *FrameDef) GetPropertyBool(key string, defaultVal bool) bool {
	val, ok := fd.GetProperty(key)
	if !ok {
		return defaultVal
	}
	if boolVal, ok := val.(bool); ok {
		return boolVal
	}
	return defaultVal
}

// GetPropertyString retrieves a string property.
func (fd *FrameDef) GetPropertyString(key string, defaultVal string) string {
	val, ok := fd.GetProperty(key)
	if !ok {
		return defaultVal
	}
	if strVal, ok := val.(string); ok {
		return strVal
	}
	return defaultVal
}
