package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Batman Begins", "batman-begins"},
		{"Weird - Kit", "weird-kit"},
		{"  spaced  out  ", "spaced-out"},
		{"808 Flavored!", "808-flavored"},
		{"ALL CAPS", "all-caps"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.name), "Slugify(%q)", tt.name)
	}
}
