package darijaset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDAllocatorFresh(t *testing.T) {
	allocator, err := NewIDAllocator(nil)
	require.NoError(t, err)

	entries := []DictionaryEntry{
		{Darija: "salam", Class: ClassExpression},
		{Darija: "atay", Class: ClassNoun},
		{Darija: "kla", Class: ClassVerb},
	}
	require.NoError(t, allocator.Assign(entries))

	assert.Equal(t, "1", entries[0].ID)
	assert.Equal(t, "2", entries[1].ID)
	assert.Equal(t, "3", entries[2].ID)
}

func TestIDAllocatorKeepsPriorIDs(t *testing.T) {
	prior := []DictionaryEntry{
		{ID: "17", Darija: "salam", Class: ClassExpression},
		{ID: "42", Darija: "atay", Class: ClassNoun},
	}

	allocator, err := NewIDAllocator(prior)
	require.NoError(t, err)

	entries := []DictionaryEntry{
		{Darija: "kla", Class: ClassVerb},
		{Darija: "Salam", Class: ClassExpression},
		{Darija: "atay", Class: ClassNoun},
	}
	require.NoError(t, allocator.Assign(entries))

	assert.Equal(t, "43", entries[0].ID)
	assert.Equal(t, "17", entries[1].ID)
	assert.Equal(t, "42", entries[2].ID)
}

func TestIDAllocatorSkipsUsedNumbers(t *testing.T) {
	prior := []DictionaryEntry{
		{ID: "1", Darija: "wa7ed", Class: ClassNumeral},
		{ID: "3", Darija: "tlata", Class: ClassNumeral},
	}

	allocator, err := NewIDAllocator(prior)
	require.NoError(t, err)

	entries := []DictionaryEntry{
		{Darija: "jouj", Class: ClassNumeral},
		{Darija: "rb3a", Class: ClassNumeral},
	}
	require.NoError(t, allocator.Assign(entries))

	// numbering continues past the highest prior id, it never reuses gaps
	assert.Equal(t, "4", entries[0].ID)
	assert.Equal(t, "5", entries[1].ID)
}

func TestIDAllocatorDuplicatePriorIsFatal(t *testing.T) {
	prior := []DictionaryEntry{
		{ID: "5", Darija: "a", Class: ClassNoun},
		{ID: "5", Darija: "b", Class: ClassNoun},
	}

	_, err := NewIDAllocator(prior)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestIDAllocatorDuplicateCarriedIDIsFatal(t *testing.T) {
	allocator, err := NewIDAllocator(nil)
	require.NoError(t, err)

	entries := []DictionaryEntry{
		{ID: "9", Darija: "a", Class: ClassNoun},
		{ID: "9", Darija: "b", Class: ClassNoun},
	}
	assert.ErrorIs(t, allocator.Assign(entries), ErrDuplicateID)
}

func TestIDAllocatorIdempotent(t *testing.T) {
	input := []DictionaryEntry{
		{Darija: "salam", Class: ClassExpression},
		{Darija: "atay", Class: ClassNoun},
	}

	first := make([]DictionaryEntry, len(input))
	copy(first, input)
	allocator, err := NewIDAllocator(nil)
	require.NoError(t, err)
	require.NoError(t, allocator.Assign(first))

	second := make([]DictionaryEntry, len(input))
	copy(second, input)
	allocator, err = NewIDAllocator(first)
	require.NoError(t, err)
	require.NoError(t, allocator.Assign(second))

	assert.Equal(t, first, second)
}
