package darijaset

import (
	"fmt"
	"strconv"
)

// IDAllocator hands out entry ids. Ids are decimal strings; an entry that
// matches a prior dataset entry by darija+class keeps the id it already had,
// anything new gets the next unused number. Seeding the allocator with the
// previous output before re-running a conversion is what makes the pipeline
// idempotent.
type IDAllocator struct {
	next    int
	used    map[string]bool
	priorID map[string]string
}

// NewIDAllocator seeds an allocator from a prior dataset. A nil or empty
// prior starts numbering at 1.
func NewIDAllocator(prior []DictionaryEntry) (*IDAllocator, error) {
	a := &IDAllocator{
		next:    1,
		used:    make(map[string]bool, len(prior)),
		priorID: make(map[string]string, len(prior)),
	}

	for _, entry := range prior {
		if entry.ID == "" {
			continue
		}
		if a.used[entry.ID] {
			return nil, fmt.Errorf("prior dataset: %w: %s", ErrDuplicateID, entry.ID)
		}
		a.used[entry.ID] = true
		if _, ok := a.priorID[entry.Key()]; !ok {
			a.priorID[entry.Key()] = entry.ID
		}

		if n, err := strconv.Atoi(entry.ID); err == nil && n >= a.next {
			a.next = n + 1
		}
	}

	return a, nil
}

// Assign gives every entry an id, in order. Entries that already carry an id
// keep it; a collision between carried ids is fatal.
func (a *IDAllocator) Assign(entries []DictionaryEntry) error {
	claimed := make(map[string]bool, len(entries))

	for i := range entries {
		id := entries[i].ID
		if id == "" {
			if prior, ok := a.priorID[entries[i].Key()]; ok {
				id = prior
			} else {
				for a.used[strconv.Itoa(a.next)] {
					a.next++
				}
				id = strconv.Itoa(a.next)
				a.next++
			}
		}

		if claimed[id] {
			return fmt.Errorf("%w: %s (%s)", ErrDuplicateID, id, entries[i].Darija)
		}
		claimed[id] = true
		a.used[id] = true
		entries[i].ID = id
	}

	return nil
}
