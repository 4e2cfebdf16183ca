package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// scanConcurrency bounds the per-instrument directory reads during a scan.
const scanConcurrency = 4

// Listing is the raw file listing of one instrument's subdirectory.
type Listing struct {
	Instrument string
	Files      []string
}

// ScanRoot lists each vocabulary instrument's subdirectory under root.
// A missing subdirectory is not an error: the instrument simply
// contributes no files. Any other read failure is logged as a warning and
// likewise contributes nothing, so a partial scan still yields a usable
// result.
//
// Subdirectories are read concurrently, one task per instrument, each
// writing into its own slot; the returned listings are therefore
// independent of scheduling order.
func ScanRoot(root string, vocabulary []string, logger *log.Logger) []Listing {
	listings := make([]Listing, len(vocabulary))

	var g errgroup.Group
	g.SetLimit(scanConcurrency)
	for i, tag := range vocabulary {
		i, tag := i, tag
		g.Go(func() error {
			listings[i] = Listing{Instrument: tag}
			entries, err := os.ReadDir(filepath.Join(root, tag))
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					logger.Warn("cannot read instrument directory", "instrument", tag, "err", err)
				}
				return nil
			}
			files := make([]string, 0, len(entries))
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				files = append(files, e.Name())
			}
			listings[i].Files = files
			return nil
		})
	}
	_ = g.Wait()

	return listings
}

// Aggregate folds per-instrument listings into kit records keyed by the
// raw kit name (case- and space-sensitive: "Batman" and "batman" are two
// kits). Unparseable filenames are logged and skipped; hidden files are
// skipped before parsing even happens.
//
// The fold is commutative: permuting listings, or files within a listing,
// never changes the result. When two files claim the same kit/instrument
// slot the lexicographically smaller relative path wins, so the tie-break
// itself is order-independent.
func Aggregate(listings []Listing, vocabulary []string, requiredExt string, logger *log.Logger) map[string]*Kit {
	kits := make(map[string]*Kit)

	for _, l := range listings {
		for _, f := range l.Files {
			if strings.HasPrefix(f, ".") {
				continue
			}
			p, err := ParseFilename(f, vocabulary, requiredExt)
			if err != nil {
				logger.Warn("skipping file", "instrument", l.Instrument, "err", err)
				continue
			}
			// A misfiled sample ("kick/X - snare.wav") is skipped: the
			// recorded path must point to the directory the file actually
			// lives in, and that directory is the instrument's own.
			if p.Instrument != l.Instrument {
				logger.Warn("skipping misfiled sample", "instrument", l.Instrument, "file", f, "parsed", p.Instrument)
				continue
			}

			// Relative path keeps the original filename verbatim; case and
			// spacing matter for URL construction downstream.
			rel := l.Instrument + "/" + f

			k := kits[p.KitName]
			if k == nil {
				k = &Kit{Name: p.KitName, Instruments: make(map[string]string)}
				kits[p.KitName] = k
			}
			if prev, ok := k.Instruments[p.Instrument]; !ok || rel < prev {
				k.Instruments[p.Instrument] = rel
			}
		}
	}

	for _, k := range kits {
		tags := make([]string, 0, len(k.Instruments))
		for t := range k.Instruments {
			tags = append(tags, t)
		}
		sort.Strings(tags)
		k.AvailableInstruments = tags
		k.Completeness = Completeness(len(tags), len(vocabulary))
	}

	return kits
}

// Completeness returns the percentage of a total-sized vocabulary covered
// by have tags, in [0, 100].
func Completeness(have, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(have) / float64(total) * 100
}
