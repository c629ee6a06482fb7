package cli

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcd…", padRight("abcdef", 5))

	// Multibyte names pad to rune width and never get cut mid-rune.
	assert.Equal(t, "héllo ", padRight("héllo", 6))
	got := padRight("ééééééé", 5)
	assert.Equal(t, "éééé…", got)
	assert.True(t, utf8.ValidString(got))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ééééé…", truncate("ééééééééé", 6))
}
