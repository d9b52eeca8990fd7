package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanUsername(t *testing.T) {
	assert.Equal(t, "karen_lean_kay", CleanUsername("Karen Lean Kay"))
	assert.Equal(t, "jose", CleanUsername("José"))
	assert.Equal(t, "maryjane", CleanUsername("Mary-Jane")) // hyphen dropped, spaces become underscores
	assert.Equal(t, "anna99", CleanUsername("Anna99!"))
}

func TestExtractNames(t *testing.T) {
	// More than two parts: everything before the last word counts as first names.
	assert.Equal(t, "Karen Lean Kay", ExtractFirstNames("Karen Lean Kay Cabarrubias"))
	assert.Equal(t, "Cabarrubias", ExtractLastName("Karen Lean Kay Cabarrubias"))

	// Two parts: only the first word.
	assert.Equal(t, "John", ExtractFirstNames("John Smith"))
	assert.Equal(t, "Smith", ExtractLastName("John Smith"))

	assert.Equal(t, "", ExtractFirstNames("   "))
}

func TestGenerateUniqueUsername(t *testing.T) {
	taken := map[string]bool{}
	exists := func(u string) bool { return taken[u] }

	got := GenerateUniqueUsername(ExtractFirstNames("Karen Lean Kay Cabarrubias"), exists)
	assert.Equal(t, "karen_lean_kay", got)

	// Collisions append 1, 2, ... until unique.
	taken["karen_lean_kay"] = true
	assert.Equal(t, "karen_lean_kay1", GenerateUniqueUsername("Karen Lean Kay", exists))

	taken["karen_lean_kay1"] = true
	assert.Equal(t, "karen_lean_kay2", GenerateUniqueUsername("Karen Lean Kay", exists))
}
