package sheet

import (
	"encoding/json"
	"image"
	"image/color"
	"os"
	"testing"
)

func TestConfigParsing(t *testing.T) {
	jsonData := `{
		"name": "test_sheet",
		"image_path": "test.png",
		"frame_width": 16,
		"frame_height": 20,
		"color_key": "white",
		"frames": [
			{
				"name": "grass",
				"sheet_x": 0,
				"sheet_y": 0,
				"properties": {
					"walkable": true,
					"type": "floor"
				}
			},
			{
				"name": "tree",
				"sheet_x": 1,
				"sheet_y": 0,
				"properties": {
					"walkable": false,
					"type": "obstacle"
				}
			}
		],
		"strips": [
			{"name": "down", "row": 0, "frames": 3},
			{"name": "up", "row": 3, "frames": 3}
		]
	}`

	var config Config
	err := json.Unmarshal([]byte(jsonData), &config)
	if err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if config.Name != "test_sheet" {
		t.Errorf("Expected name 'test_sheet', got '%s'", config.Name)
	}
	if config.FrameWidth != 16 {
		t.Errorf("Expected frame_width 16, got %d", config.FrameWidth)
	}
	if config.FrameHeight != 20 {
		t.Errorf("Expected frame_height 20, got %d", config.FrameHeight)
	}
	if config.ColorKey != "white" {
		t.Errorf("Expected color_key 'white', got '%s'", config.ColorKey)
	}

	if len(config.Frames) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(config.Frames))
	}

	grass := config.Frames[0]
	if grass.Name != "grass" {
		t.Errorf("Expected frame name 'grass', got '%s'", grass.Name)
	}
	if !grass.GetPropertyBool("walkable", false) {
		t.Error("Expected grass to be walkable")
	}
	if grass.GetPropertyString("type", "") != "floor" {
		t.Errorf("Expected type 'floor', got '%s'", grass.GetPropertyString("type", ""))
	}

	if len(config.Strips) != 2 {
		t.Fatalf("Expected 2 strips, got %d", len(config.Strips))
	}
	if config.Strips[1].Row != 3 {
		t.Errorf("Expected 'up' strip on row 3, got %d", config.Strips[1].Row)
	}
}

func TestFrameDefProperties(t *testing.T) {
	frame := FrameDef{
		Name:   "test_frame",
		SheetX: 0,
		SheetY: 0,
		Properties: map[string]interface{}{
			"bool_prop":   true,
			"string_prop": "test_value",
		},
	}

	boolVal := frame.GetPropertyBool("bool_prop", false)
	if !boolVal {
		t.Error("Expected bool_prop to be true")
	}

	strVal := frame.GetPropertyString("string_prop", "")
	if strVal != "test_value" {
		t.Errorf("Expected 'test_value', got '%s'", strVal)
	}

	missingBool := frame.GetPropertyBool("missing", true)
	if !missingBool {
		t.Error("Expected default value true for missing property")
	}

	missingStr := frame.GetPropertyString("missing", "default")
	if missingStr != "default" {
		t.Errorf("Expected 'default', got '%s'", missingStr)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "zero frame dimensions",
			body: `{"name": "bad", "image_path": "x.png", "frame_width": 0, "frame_height": 0}`,
		},
		{
			name: "missing image path",
			body: `{"name": "bad", "frame_width": 16, "frame_height": 16}`,
		},
		{
			name: "unknown color key",
			body: `{"name": "bad", "image_path": "x.png", "frame_width": 16, "frame_height": 16, "color_key": "magenta"}`,
		},
		{
			name: "empty strip",
			body: `{"name": "bad", "image_path": "x.png", "frame_width": 16, "frame_height": 16, "strips": [{"name": "up", "row": 0, "frames": 0}]}`,
		},
	}

	for _, tc := range cases {
		tempFile, err := os.CreateTemp("", "sheet_test_*.json")
		if err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}
		defer os.Remove(tempFile.Name())

		if _, err := tempFile.Write([]byte(tc.body)); err != nil {
			t.Fatalf("Failed to write temp file: %v", err)
		}
		tempFile.Close()

		_, err = loadConfig(tempFile.Name())
		if err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
		}
	}
}

func TestSheetLookups(t *testing.T) {
	s := New(&Config{
		Name:        "lookups",
		ImagePath:   "x.png",
		FrameWidth:  16,
		FrameHeight: 16,
		Frames: []FrameDef{
			{Name: "grass", SheetX: 0, SheetY: 0},
		},
		Strips: []StripDef{
			{Name: "down", Row: 0, Frames: 3},
		},
	})

	if _, ok := s.GetFrame("grass"); !ok {
		t.Error("Expected to find frame 'grass'")
	}
	if _, ok := s.GetFrame("water"); ok {
		t.Error("Did not expect to find frame 'water'")
	}

	if _, err := s.Frame("water"); err == nil {
		t.Error("Expected error for unknown frame")
	}
	if _, err := s.Strip("left"); err == nil {
		t.Error("Expected error for unknown strip")
	}
}

func TestKeyToTransparent(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{255, 255, 255, 255})
	src.Set(1, 0, color.RGBA{10, 20, 30, 255})

	out := keyToTransparent(src, color.RGBA{255, 255, 255, 255})

	if _, _, _, a := out.At(0, 0).RGBA(); a != 0 {
		t.Error("Expected keyed pixel to become transparent")
	}
	if r, g, b, a := out.At(1, 0).RGBA(); a == 0 || r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("Expected non-keyed pixel preserved, got (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
}
