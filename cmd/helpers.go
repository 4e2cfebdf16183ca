package cmd

import (
	"fmt"

	"cratedig/internal/catalog"
	"cratedig/internal/catalog/index"
	"cratedig/internal/config"
)

// loadIndex loads the configured manifest and builds a fresh catalog
// index over it. Every read command goes through here so a stale or
// missing manifest fails the same way everywhere.
func loadIndex() (*config.Config, *index.Index, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load config: %w\nRun 'cratedig init' first.", err)
	}
	m, err := catalog.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w\nRun 'cratedig generate' first.", err)
	}
	return cfg, index.New(m), nil
}

// findKit resolves a command argument to a kit, trying the slug id first
// and falling back to a case-insensitive name match.
func findKit(idx *index.Index, arg string) (catalog.Kit, error) {
	if k, ok := idx.ByID(arg); ok {
		return k, nil
	}
	if k, ok := idx.ByName(arg); ok {
		return k, nil
	}
	return catalog.Kit{}, fmt.Errorf("no soundkit with id or name %q", arg)
}

// formatCompleteness renders a completeness percentage without trailing
// noise, e.g. "25%" or "87.5%".
func formatCompleteness(pct float64) string {
	if pct == float64(int(pct)) {
		return fmt.Sprintf("%d%%", int(pct))
	}
	return fmt.Sprintf("%.1f%%", pct)
}
