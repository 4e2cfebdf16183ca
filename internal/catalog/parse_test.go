package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVocabulary = []string{"kick", "snare", "hihat", "clap", "crash", "open", "rim", "bell"}

func TestParseFilename_Valid(t *testing.T) {
	tests := []struct {
		filename   string
		kitName    string
		instrument string
	}{
		{"Batman Begins - kick.wav", "Batman Begins", "kick"},
		{"Batman Begins - snare.wav", "Batman Begins", "snare"},
		// The split happens at the LAST " - ", so kit names may contain it.
		{"Weird - Kit - hihat.wav", "Weird - Kit", "hihat"},
		{"A - B - C - rim.wav", "A - B - C", "rim"},
		// Instrument tags are lowercased; surrounding whitespace is trimmed.
		{"Loud Kit -  KICK .wav", "Loud Kit", "kick"},
		{"808-flavored - clap.wav", "808-flavored", "clap"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			p, err := ParseFilename(tt.filename, testVocabulary, ".wav")
			require.NoError(t, err)
			assert.Equal(t, tt.kitName, p.KitName)
			assert.Equal(t, tt.instrument, p.Instrument)
		})
	}
}

func TestParseFilename_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"no separator", "Odd File.wav"},
		{"hyphen without spaces", "Kit-kick.wav"},
		{"wrong extension", "Batman Begins - kick.mp3"},
		{"uppercase extension", "Batman Begins - kick.WAV"},
		{"unknown instrument", "Batman Begins - cowbell.wav"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilename(tt.filename, testVocabulary, ".wav")
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.filename, perr.Filename)
		})
	}
}

func TestParseFilename_Deterministic(t *testing.T) {
	a, err := ParseFilename("Batman Begins - kick.wav", testVocabulary, ".wav")
	require.NoError(t, err)
	b, err := ParseFilename("Batman Begins - kick.wav", testVocabulary, ".wav")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
