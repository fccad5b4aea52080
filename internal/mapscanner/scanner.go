// Package mapscanner discovers playable maps in the data directory.
package mapscanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MapEntry represents a discoverable map file.
type MapEntry struct {
	Name string // Display name (file name without extension)
	Path string // Full path to the map JSON file
}

// ScanDataDirectory scans data/maps for map JSON files.
// Returns one MapEntry per .json file, sorted by file name.
func ScanDataDirectory(dataPath string) ([]MapEntry, error) {
	mapsDir := filepath.Join(dataPath, "maps")
	entries, err := os.ReadDir(mapsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory %s: %w", mapsDir, err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}

		maps = append(maps, MapEntry{
			Name: strings.TrimSuffix(name, ".json"),
			Path: filepath.Join(mapsDir, name),
		})
	}

	if len(maps) == 0 {
		return nil, fmt.Errorf("no map files found in %s", mapsDir)
	}

	return maps, nil
}
