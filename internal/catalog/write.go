package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteManifest persists the manifest as pretty-printed JSON at path,
// replacing any previous document wholesale. The bytes go to a temp file
// in the same directory followed by a rename, so readers never observe a
// partially written manifest.
func WriteManifest(path string, m *Manifest) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create manifest dir %s: %w", dir, err)
	}

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal manifest: %w", err)
	}
	b = append(b, '\n')

	tmp, err := os.CreateTemp(dir, ".manifest-*.json")
	if err != nil {
		return fmt.Errorf("cannot create temp manifest: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("cannot write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("cannot write manifest: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("cannot chmod manifest: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("cannot replace manifest %s: %w", path, err)
	}
	return nil
}
