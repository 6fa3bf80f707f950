package darijaset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDuplicates(t *testing.T) {
	entries := []DictionaryEntry{
		{ID: "1", Darija: "khdem", Class: ClassVerb, En: []string{"work"}, De: []string{"arbeiten"}},
		{ID: "2", Darija: "khdm", Class: ClassVerb, En: []string{"work", "labor"}, De: []string{"arbeiten"}},
		{ID: "3", Darija: "khedma", Class: ClassNoun, DarijaArabicScript: "خدمة", En: []string{"work"}, De: []string{"Arbeit"}},
		{ID: "4", Darija: "lkhedma", Class: ClassNoun, DarijaArabicScript: "خدمة", En: []string{"job"}, De: []string{"Job"}},
		{ID: "5", Darija: "Khedma", Class: ClassVerb, En: []string{"toil"}, De: []string{"Mühe"}},
	}

	matches := FindDuplicates(entries)
	require.Len(t, matches, 3)

	byPair := make(map[string]DuplicateMatch, len(matches))
	for _, match := range matches {
		byPair[match.ID1+"+"+match.ID2] = match
	}

	// shared en+de translations, same class
	match, ok := byPair["1+2"]
	require.True(t, ok)
	assert.True(t, match.SharedTranslations)
	assert.False(t, match.SameLatin)
	assert.False(t, match.SameArabicScript)

	// same arabic script, same class
	match, ok = byPair["3+4"]
	require.True(t, ok)
	assert.True(t, match.SameArabicScript)
	assert.False(t, match.SharedTranslations)

	// same latin form, class differs: still flagged
	match, ok = byPair["3+5"]
	require.True(t, ok)
	assert.True(t, match.SameLatin)
	assert.False(t, match.SameArabicScript)
}

func TestFindDuplicatesCleanDataset(t *testing.T) {
	entries := []DictionaryEntry{
		{ID: "1", Darija: "salam", Class: ClassExpression, En: []string{"hello"}, De: []string{"hallo"}},
		{ID: "2", Darija: "bslama", Class: ClassExpression, En: []string{"goodbye"}, De: []string{"tschüss"}},
	}

	assert.Empty(t, FindDuplicates(entries))
}
