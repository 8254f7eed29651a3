package batch

import (
	"encoding/json"
	"os"
)

// WriteManifest writes manifest.json describing the run to path.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
