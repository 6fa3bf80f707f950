package service

import (
	"context"

	"github.com/sgharbi/darijaset"
)

type EntrySource interface {
	Load(ctx context.Context) (*darijaset.SourceBatch, error)
}

type EntryStorage interface {
	FindEntry(ctx context.Context, id string) (*darijaset.DictionaryEntry, error)
	ListEntries(ctx context.Context) ([]darijaset.DictionaryEntry, error)
	SaveEntry(ctx context.Context, entry darijaset.DictionaryEntry) error
	DeleteEntry(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, entries []darijaset.DictionaryEntry) error
}
