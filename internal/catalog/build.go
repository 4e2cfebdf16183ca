package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BuildOptions carries the collection-level inputs to Build.
type BuildOptions struct {
	Vocabulary []string
	BaseURL    string
	Version    string
}

// Build assembles the aggregated kit set into a manifest document.
//
// Kits are sorted by name ascending with locale-aware collation, so
// accented names land where a human expects rather than after 'z'. Ids
// are assigned from the slug of each name; when two distinct names
// collapse to the same slug the later kit (in sorted order) gets a
// numeric suffix, which keeps ids deterministic. Names that differ only
// by case stay distinct kits but are reported, since they usually mean
// inconsistent file naming rather than intent.
func Build(kits map[string]*Kit, opts BuildOptions, logger *log.Logger) (*Manifest, error) {
	if len(opts.Vocabulary) == 0 {
		return nil, fmt.Errorf("instrument vocabulary is empty")
	}

	list := make([]Kit, 0, len(kits))
	for _, k := range kits {
		list = append(list, *k)
	}

	c := collate.New(language.Und)
	sort.SliceStable(list, func(i, j int) bool {
		return c.CompareString(list[i].Name, list[j].Name) < 0
	})

	assigned := make(map[string]string, len(list)) // id -> name
	for i := range list {
		base := Slugify(list[i].Name)
		id := base
		for n := 2; ; n++ {
			first, taken := assigned[id]
			if !taken {
				break
			}
			if id == base {
				logger.Warn("kit id collision, appending suffix",
					"id", base, "kept", first, "renamed", list[i].Name)
			}
			id = fmt.Sprintf("%s-%d", base, n)
		}
		assigned[id] = list[i].Name
		list[i].ID = id
	}
	warnCaseCollisions(list, logger)

	m := &Manifest{
		Version:        opts.Version,
		Generated:      time.Now().UTC().Format(time.RFC3339),
		TotalSoundkits: len(list),
		Instruments:    append([]string(nil), opts.Vocabulary...),
		BaseURL:        opts.BaseURL,
		Soundkits:      list,
		Statistics:     Summarize(list, opts.Vocabulary),
	}
	return m, nil
}

// warnCaseCollisions reports groups of kit names identical except for
// case. They are never merged; grouping is byte-exact by contract.
func warnCaseCollisions(list []Kit, logger *log.Logger) {
	byLower := make(map[string][]string)
	for _, k := range list {
		lower := strings.ToLower(k.Name)
		byLower[lower] = append(byLower[lower], k.Name)
	}
	for _, names := range byLower {
		if len(names) > 1 {
			logger.Warn("kit names differ only by case", "names", strings.Join(names, ", "))
		}
	}
}
