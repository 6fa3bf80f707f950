package csvsource

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sgharbi/darijaset"
)

// Source is a manifest plus the directory its category files live in.
type Source struct {
	dir      string
	manifest *Manifest
}

// Open loads the manifest at path; the category files are resolved relative
// to it.
func Open(path string) (*Source, error) {
	manifest, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}

	return &Source{dir: filepath.Dir(path), manifest: manifest}, nil
}

func (s *Source) CategoryCount() int {
	return len(s.manifest.Categories)
}

// Load reads every category file in manifest order. Rows without a darija
// form become warnings, rows failing a controlled vocabulary become
// rejections; neither stops the load. Only an unreadable file does.
func (s *Source) Load(ctx context.Context) (*darijaset.SourceBatch, error) {
	batch := new(darijaset.SourceBatch)

	for i := range s.manifest.Categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		category := &s.manifest.Categories[i]
		rows, err := ReadRows(s.dir, category)
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			switch category.Kind {
			case KindForms:
				formRow, err := category.Forms(row)
				if errors.Is(err, darijaset.ErrMissingDarija) {
					batch.Warnings = append(batch.Warnings, fmt.Sprintf("%s row %d: skipped: no forms", row.File, row.Line))
					continue
				} else if err != nil {
					return nil, err
				}

				batch.Forms = append(batch.Forms, darijaset.FormAttachment{
					File:  formRow.File,
					Row:   formRow.Line,
					Class: category.Class,
					Forms: formRow.Forms,
				})

			case KindConjugations:
				conjRow, err := category.Conjugation(row)
				if errors.Is(err, darijaset.ErrMissingDarija) {
					batch.Warnings = append(batch.Warnings, fmt.Sprintf("%s row %d: skipped: no howa form", row.File, row.Line))
					continue
				} else if err != nil {
					return nil, err
				}

				batch.Conjugations = append(batch.Conjugations, darijaset.ConjugationAttachment{
					File:  conjRow.File,
					Row:   conjRow.Line,
					Class: category.Class,
					Words: conjRow.Words,
					Forms: conjRow.Forms,
				})

			default:
				entry, err := category.Entry(row)
				if errors.Is(err, darijaset.ErrMissingDarija) {
					batch.Warnings = append(batch.Warnings, fmt.Sprintf("%s row %d: skipped: missing darija", row.File, row.Line))
					continue
				} else if err != nil {
					var entryErr darijaset.EntryError
					if errors.As(err, &entryErr) {
						batch.Rejected = append(batch.Rejected, entryErr)
						continue
					}
					return nil, err
				}

				batch.Entries = append(batch.Entries, *entry)
			}
		}
	}

	return batch, nil
}
