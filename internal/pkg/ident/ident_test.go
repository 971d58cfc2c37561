package ident

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	id := New()
	require.Regexp(t, regexp.MustCompile(`^[0-9a-z]+$`), id)
	require.GreaterOrEqual(t, len(id), 12)
}

func TestNewUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
