package darijaset

import (
	"errors"
	"fmt"
)

var ErrEntryNotFound = errors.New("dictionary entry not found")
var ErrMissingDarija = errors.New("row has no darija form")
var ErrDuplicateID = errors.New("duplicate entry id")
var ErrReadOnly = errors.New("modifications are not allowed")

// EntryError rejects a single record: it names the field that failed and the
// value it failed with, so a run over thousands of rows stays debuggable.
type EntryError struct {
	File    string `json:"file,omitempty"`
	Row     int    `json:"row,omitempty"`
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

func (e EntryError) Error() string {
	loc := ""
	if e.File != "" {
		loc = fmt.Sprintf("%s row %d: ", e.File, e.Row)
	}
	if e.Value != "" {
		return fmt.Sprintf("%sfield %s: value %q: %s", loc, e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("%sfield %s: %s", loc, e.Field, e.Message)
}
