// Package datasetstorage reads and writes the versioned dataset files under
// data/, e.g. data/dataset-v02.json: one JSON array of dictionary entries.
// The file layout is deterministic (numeric id order, two-space indent, no
// HTML escaping) so re-running a conversion on unchanged input produces a
// byte-identical file.
package datasetstorage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/sgharbi/darijaset"
)

func New(path string) *Storage {
	return &Storage{
		path:    path,
		entries: make([]darijaset.DictionaryEntry, 0, 1024),
		index:   make(map[string]int, 1024),
	}
}

// Open loads an existing dataset file. A missing file is not an error: it
// returns an empty storage, which is what a first conversion run starts from.
func Open(path string, readOnly bool) (*Storage, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		s := New(path)
		s.readOnly = readOnly
		return s, nil
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []darijaset.DictionaryEntry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	s := &Storage{
		path:     path,
		readOnly: readOnly,
		entries:  entries,
		index:    make(map[string]int, len(entries)),
	}
	for i, entry := range entries {
		if _, ok := s.index[entry.ID]; ok {
			return nil, fmt.Errorf("%s: %w: %s", path, darijaset.ErrDuplicateID, entry.ID)
		}
		s.index[entry.ID] = i
	}

	return s, nil
}

type Storage struct {
	mu       sync.Mutex
	path     string
	readOnly bool
	entries  []darijaset.DictionaryEntry
	index    map[string]int
}

func (s *Storage) FindEntry(ctx context.Context, id string) (*darijaset.DictionaryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, darijaset.ErrEntryNotFound
	}

	entry := s.entries[i].Copy()
	return &entry, nil
}

func (s *Storage) ListEntries(ctx context.Context) ([]darijaset.DictionaryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]darijaset.DictionaryEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		res = append(res, entry.Copy())
	}

	return res, nil
}

// SaveEntry inserts or replaces one entry by id.
func (s *Storage) SaveEntry(ctx context.Context, entry darijaset.DictionaryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.readOnly {
		return darijaset.ErrReadOnly
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[entry.ID]; ok {
		s.entries[i] = entry.Copy()
		return nil
	}

	s.index[entry.ID] = len(s.entries)
	s.entries = append(s.entries, entry.Copy())
	return nil
}

func (s *Storage) DeleteEntry(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.readOnly {
		return darijaset.ErrReadOnly
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return darijaset.ErrEntryNotFound
	}

	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].ID] = j
	}

	return nil
}

// ReplaceAll swaps in a full entry set, e.g. the output of a conversion run.
// Duplicate ids are rejected here rather than at write time so a broken run
// never clobbers the in-memory set.
func (s *Storage) ReplaceAll(ctx context.Context, entries []darijaset.DictionaryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.readOnly {
		return darijaset.ErrReadOnly
	}

	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		if _, ok := index[entry.ID]; ok {
			return fmt.Errorf("%w: %s", darijaset.ErrDuplicateID, entry.ID)
		}
		index[entry.ID] = i
	}

	s.mu.Lock()
	s.entries = s.entries[:0]
	for _, entry := range entries {
		s.entries = append(s.entries, entry.Copy())
	}
	s.index = index
	s.mu.Unlock()

	return nil
}

func (s *Storage) EntryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// WriteToFile emits the dataset. Entries are sorted by id (numerically where
// the ids are numbers) and every entry gets a non-nil topics array, so the
// output is stable across runs.
func (s *Storage) WriteToFile() error {
	if s.readOnly {
		return darijaset.ErrReadOnly
	}

	s.mu.Lock()
	out := make([]darijaset.DictionaryEntry, 0, len(s.entries))
	seen := make(map[string]bool, len(s.entries))
	for _, entry := range s.entries {
		if seen[entry.ID] {
			s.mu.Unlock()
			return fmt.Errorf("%w: %s", darijaset.ErrDuplicateID, entry.ID)
		}
		seen[entry.ID] = true

		entry = entry.Copy()
		if entry.Topics == nil {
			entry.Topics = []darijaset.Topic{}
		}
		out = append(out, entry)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return idBefore(out[i].ID, out[j].ID)
	})

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// idBefore orders numeric ids numerically and everything else after them,
// lexicographically.
func idBefore(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
