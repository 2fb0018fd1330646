package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// sidecarPath swaps the audio file's extension for the given suffix, so
// results land next to their input.
func sidecarPath(audioPath, suffix string) string {
	ext := filepath.Ext(audioPath)
	return strings.TrimSuffix(audioPath, ext) + suffix
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
