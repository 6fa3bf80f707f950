package service

import (
	"context"
	"fmt"

	"github.com/sgharbi/darijaset"
)

// Service wires a category source to a dataset storage and runs the
// conversion over them.
type Service struct {
	Source   EntrySource
	Storage  EntryStorage
	ReadOnly bool
}

// Report sums up one conversion run. Warnings are rows that were skipped,
// Rejected are records that failed a controlled vocabulary; both are for the
// operator to read, neither failed the run.
type Report struct {
	Loaded   int
	Merged   int
	Emitted  int
	Warnings []string
	Rejected []darijaset.EntryError
}

// Convert runs the whole pipeline: load the category files, merge duplicate
// rows, attach inflection tables, carry over ids from the previous dataset
// and number the rest, then replace the stored entry set. An id collision
// aborts before anything is replaced.
func (s *Service) Convert(ctx context.Context) (*Report, error) {
	if s.ReadOnly {
		return nil, darijaset.ErrReadOnly
	}

	batch, err := s.Source.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Loaded:   len(batch.Entries),
		Warnings: batch.Warnings,
		Rejected: batch.Rejected,
	}

	merger := darijaset.NewMerger()
	for _, entry := range batch.Entries {
		merger.Add(entry)
	}
	report.Merged = report.Loaded - merger.Len()

	for _, attachment := range batch.Forms {
		if !attachForms(merger, attachment) {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"%s row %d: no %s entry for %q", attachment.File, attachment.Row, attachment.Class, attachment.Forms[0].Word,
			))
		}
	}

	for _, attachment := range batch.Conjugations {
		if !attachConjugations(merger, attachment) {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"%s row %d: no %s entry for %q", attachment.File, attachment.Row, attachment.Class, attachment.Words[0],
			))
		}
	}

	entries := merger.Entries()

	prior, err := s.Storage.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	allocator, err := darijaset.NewIDAllocator(prior)
	if err != nil {
		return nil, err
	}
	if err := allocator.Assign(entries); err != nil {
		return nil, err
	}

	if err := s.Storage.ReplaceAll(ctx, entries); err != nil {
		return nil, err
	}
	report.Emitted = len(entries)

	return report, nil
}

// attachForms tries each inflected form as the lookup key; the lemma column
// usually hits, but some tables only share a plural with the entry.
func attachForms(merger *darijaset.Merger, attachment darijaset.FormAttachment) bool {
	for _, form := range attachment.Forms {
		if merger.AddForms(form.Word, attachment.Class, attachment.Forms...) {
			return true
		}
	}

	return false
}

// attachConjugations tries the root form first, then the howa form; past
// tables have no root column and match on howa alone.
func attachConjugations(merger *darijaset.Merger, attachment darijaset.ConjugationAttachment) bool {
	for _, word := range attachment.Words {
		if merger.AddConjugations(word, attachment.Class, attachment.Forms) {
			return true
		}
	}

	return false
}

// Duplicates reports candidate duplicate pairs in the stored dataset.
func (s *Service) Duplicates(ctx context.Context) ([]darijaset.DuplicateMatch, error) {
	entries, err := s.Storage.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	return darijaset.FindDuplicates(entries), nil
}

// FindEntry is a passthrough for tooling.
func (s *Service) FindEntry(ctx context.Context, id string) (*darijaset.DictionaryEntry, error) {
	return s.Storage.FindEntry(ctx, id)
}
