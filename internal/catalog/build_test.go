package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kitMap(names ...string) map[string]*Kit {
	kits := make(map[string]*Kit, len(names))
	for _, n := range names {
		kits[n] = &Kit{
			Name:                 n,
			Instruments:          map[string]string{"kick": "kick/" + n + " - kick.wav"},
			AvailableInstruments: []string{"kick"},
			Completeness:         12.5,
		}
	}
	return kits
}

func TestBuild_SortsAndAssignsIDs(t *testing.T) {
	m, err := Build(kitMap("Zulu", "alpha", "Mango"), BuildOptions{
		Vocabulary: testVocabulary,
		Version:    ManifestVersion,
	}, discardLogger())
	require.NoError(t, err)

	require.Len(t, m.Soundkits, 3)
	// Collated sort is case-insensitive, unlike byte order.
	assert.Equal(t, "alpha", m.Soundkits[0].Name)
	assert.Equal(t, "Mango", m.Soundkits[1].Name)
	assert.Equal(t, "Zulu", m.Soundkits[2].Name)

	assert.Equal(t, "alpha", m.Soundkits[0].ID)
	assert.Equal(t, "mango", m.Soundkits[1].ID)
	assert.Equal(t, "zulu", m.Soundkits[2].ID)

	assert.Equal(t, 3, m.TotalSoundkits)
	assert.Equal(t, ManifestVersion, m.Version)
	assert.Equal(t, testVocabulary, m.Instruments)

	_, err = time.Parse(time.RFC3339, m.Generated)
	assert.NoError(t, err)
}

func TestBuild_AccentedNamesSortNaturally(t *testing.T) {
	m, err := Build(kitMap("Zebra", "Árbol", "Apple"), BuildOptions{
		Vocabulary: testVocabulary,
		Version:    ManifestVersion,
	}, discardLogger())
	require.NoError(t, err)

	// Byte order would push "Árbol" past "Zebra"; collation must not.
	names := []string{m.Soundkits[0].Name, m.Soundkits[1].Name, m.Soundkits[2].Name}
	assert.Equal(t, []string{"Apple", "Árbol", "Zebra"}, names)
	assert.Equal(t, "rbol", m.Soundkits[1].ID) // slug strips non-ASCII
}

func TestBuild_SlugCollisionGetsSuffix(t *testing.T) {
	m, err := Build(kitMap("Batman", "batman", "Batman!"), BuildOptions{
		Vocabulary: testVocabulary,
		Version:    ManifestVersion,
	}, discardLogger())
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, k := range m.Soundkits {
		assert.False(t, ids[k.ID], "duplicate id %q", k.ID)
		ids[k.ID] = true
	}
	// All three collapse to "batman"; suffix order follows name order.
	assert.True(t, ids["batman"])
	assert.True(t, ids["batman-2"])
	assert.True(t, ids["batman-3"])
}

func TestBuild_IDsDeterministic(t *testing.T) {
	opts := BuildOptions{Vocabulary: testVocabulary, Version: ManifestVersion}
	a, err := Build(kitMap("Batman", "batman"), opts, discardLogger())
	require.NoError(t, err)
	b, err := Build(kitMap("batman", "Batman"), opts, discardLogger())
	require.NoError(t, err)

	require.Len(t, a.Soundkits, 2)
	for i := range a.Soundkits {
		assert.Equal(t, a.Soundkits[i].Name, b.Soundkits[i].Name)
		assert.Equal(t, a.Soundkits[i].ID, b.Soundkits[i].ID)
	}
}

func TestBuild_EmptyKitSet(t *testing.T) {
	m, err := Build(nil, BuildOptions{
		Vocabulary: testVocabulary,
		Version:    ManifestVersion,
	}, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 0, m.TotalSoundkits)
	assert.Empty(t, m.Soundkits)
	assert.Equal(t, 0.0, m.Statistics.AverageCompleteness)
	assert.Len(t, m.Statistics.InstrumentCoverage, len(testVocabulary))
}

func TestBuild_EmptyVocabularyFails(t *testing.T) {
	_, err := Build(nil, BuildOptions{Version: ManifestVersion}, discardLogger())
	require.Error(t, err)
}
