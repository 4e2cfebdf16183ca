package samples

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cratedig/internal/catalog"
	"cratedig/internal/catalog/index"
)

var vocab = []string{"kick", "snare", "hihat", "clap", "crash", "open", "rim", "bell"}

func manifestWithBase(baseURL string) (*index.Index, catalog.Kit) {
	kit := catalog.Kit{
		ID:   "batman-begins",
		Name: "Batman Begins",
		Instruments: map[string]string{
			"kick":  "kick/Batman Begins - kick.wav",
			"snare": "snare/Batman Begins - snare.wav",
			"hihat": "hihat/Batman Begins - hihat.wav",
		},
		AvailableInstruments: []string{"hihat", "kick", "snare"},
		Completeness:         37.5,
	}
	m := &catalog.Manifest{
		Version:        catalog.ManifestVersion,
		Generated:      "2026-08-01T00:00:00Z",
		TotalSoundkits: 1,
		Instruments:    vocab,
		BaseURL:        baseURL,
		Soundkits:      []catalog.Kit{kit},
		Statistics:     catalog.Summarize([]catalog.Kit{kit}, vocab),
	}
	idx := index.New(m)
	return idx, kit
}

func TestFetchKit_DownloadsAllInstruments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("RIFF" + r.URL.Path))
	}))
	defer srv.Close()

	idx, kit := manifestWithBase(srv.URL)
	dest := t.TempDir()

	results, err := FetchKit(context.Background(), idx, kit, FetchOptions{DestDir: dest})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		require.NoError(t, r.Err, "instrument %s", r.Instrument)
		assert.Greater(t, r.Bytes, int64(0))
		if _, err := os.Stat(r.Path); err != nil {
			t.Fatalf("downloaded file missing: %v", err)
		}
	}
	// Files land under the manifest's relative paths.
	if _, err := os.Stat(filepath.Join(dest, "kick", "Batman Begins - kick.wav")); err != nil {
		t.Fatal(err)
	}
}

func TestFetchKit_FailureIsIsolated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if filepath.Base(r.URL.Path) == "Batman Begins - snare.wav" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("RIFF"))
	}))
	defer srv.Close()

	idx, kit := manifestWithBase(srv.URL)
	results, err := FetchKit(context.Background(), idx, kit, FetchOptions{DestDir: t.TempDir()})
	require.NoError(t, err)
	require.Len(t, results, 3)

	byTag := make(map[string]Result)
	for _, r := range results {
		byTag[r.Instrument] = r
	}
	assert.Error(t, byTag["snare"].Err)
	assert.NoError(t, byTag["kick"].Err)
	assert.NoError(t, byTag["hihat"].Err)
}

func TestFetchKit_NoBaseURL(t *testing.T) {
	idx, kit := manifestWithBase("")
	results, err := FetchKit(context.Background(), idx, kit, FetchOptions{DestDir: t.TempDir()})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Error(t, r.Err, "instrument %s", r.Instrument)
	}
}

func TestFetchKit_RequiresDestDir(t *testing.T) {
	idx, kit := manifestWithBase("")
	_, err := FetchKit(context.Background(), idx, kit, FetchOptions{})
	require.Error(t, err)
}
