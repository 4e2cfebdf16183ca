package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadManifest reads and validates a persisted manifest document.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest JSON %s: %w", path, err)
	}
	if m.TotalSoundkits != len(m.Soundkits) {
		return nil, fmt.Errorf("inconsistent manifest %s: totalSoundkits=%d but %d soundkits present",
			path, m.TotalSoundkits, len(m.Soundkits))
	}
	if len(m.Instruments) == 0 {
		return nil, fmt.Errorf("manifest %s has no instrument vocabulary", path)
	}
	return &m, nil
}
