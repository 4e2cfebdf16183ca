// Package index provides read-only lookup structures over one loaded
// manifest. An Index is built once per manifest, never mutated afterward,
// and safe for concurrent readers; refreshing the manifest means building
// a new Index.
package index

import (
	"sort"
	"strings"

	"cratedig/internal/catalog"
)

// SamplesPathSegment is the fixed path component between the base URL and
// a kit's relative file path when resolving sample URLs.
const SamplesPathSegment = "samples"

// Index wraps a manifest with prebuilt id and instrument maps.
type Index struct {
	manifest     *catalog.Manifest
	byID         map[string]*catalog.Kit
	byInstrument map[string][]string // tag -> kit ids, manifest order
}

// New builds the lookup maps in a single pass over the manifest's kits.
func New(m *catalog.Manifest) *Index {
	idx := &Index{
		manifest:     m,
		byID:         make(map[string]*catalog.Kit, len(m.Soundkits)),
		byInstrument: make(map[string][]string, len(m.Instruments)),
	}
	for i := range m.Soundkits {
		k := &m.Soundkits[i]
		idx.byID[k.ID] = k
		for _, tag := range k.AvailableInstruments {
			idx.byInstrument[tag] = append(idx.byInstrument[tag], k.ID)
		}
	}
	return idx
}

// Manifest returns the wrapped manifest document.
func (x *Index) Manifest() *catalog.Manifest { return x.manifest }

// All returns every kit in manifest order (name ascending). The slice is
// a copy; callers may reorder it freely.
func (x *Index) All() []catalog.Kit {
	return append([]catalog.Kit(nil), x.manifest.Soundkits...)
}

// ByID looks a kit up by its slug id.
func (x *Index) ByID(id string) (catalog.Kit, bool) {
	k, ok := x.byID[id]
	if !ok {
		return catalog.Kit{}, false
	}
	return *k, true
}

// ByName returns the first kit (in manifest order) whose name matches,
// ignoring case. Names are not required unique, so later duplicates are
// shadowed.
func (x *Index) ByName(name string) (catalog.Kit, bool) {
	for i := range x.manifest.Soundkits {
		if strings.EqualFold(x.manifest.Soundkits[i].Name, name) {
			return x.manifest.Soundkits[i], true
		}
	}
	return catalog.Kit{}, false
}

// ByInstrument returns the kits carrying the given tag, preserving
// manifest order.
func (x *Index) ByInstrument(tag string) []catalog.Kit {
	ids := x.byInstrument[tag]
	out := make([]catalog.Kit, 0, len(ids))
	for _, id := range ids {
		out = append(out, *x.byID[id])
	}
	return out
}

// Complete returns the kits covering the full vocabulary.
func (x *Index) Complete() []catalog.Kit {
	var out []catalog.Kit
	for _, k := range x.manifest.Soundkits {
		if k.Completeness == 100 {
			out = append(out, k)
		}
	}
	return out
}

// Search returns the kits whose name contains the query substring,
// case-insensitively, in manifest order.
func (x *Index) Search(query string) []catalog.Kit {
	q := strings.ToLower(query)
	var out []catalog.Kit
	for _, k := range x.manifest.Soundkits {
		if strings.Contains(strings.ToLower(k.Name), q) {
			out = append(out, k)
		}
	}
	return out
}

// SortByCompleteness returns the kits ordered by completeness. The sort
// is stable, so equally complete kits keep their name ordering, and it
// operates on a copy: the manifest's stored order is never disturbed.
func (x *Index) SortByCompleteness(ascending bool) []catalog.Kit {
	out := x.All()
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Completeness < out[j].Completeness
		}
		return out[i].Completeness > out[j].Completeness
	})
	return out
}

// ResolveSampleURL constructs the serving URL for one instrument of a
// kit: "<baseUrl>/samples/<relative path>", or "samples/<relative path>"
// when the manifest has no base URL. It is pure string assembly; nothing
// checks that the file actually exists. The second return is false when
// the kit or the instrument entry is missing.
func (x *Index) ResolveSampleURL(kitID, tag string) (string, bool) {
	k, ok := x.byID[kitID]
	if !ok {
		return "", false
	}
	rel, ok := k.Instruments[tag]
	if !ok {
		return "", false
	}
	base := strings.TrimRight(x.manifest.BaseURL, "/")
	if base == "" {
		return SamplesPathSegment + "/" + rel, true
	}
	return base + "/" + SamplesPathSegment + "/" + rel, true
}
