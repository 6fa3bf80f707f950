package llmreview

import (
	"fmt"

	"github.com/sgharbi/darijaset"
)

// Apply merges a review log into a set of entries. Review values only ever
// fill blanks: a frequency, formality or topic list that is already present
// in the dataset is never overwritten, and every skipped overwrite is
// reported. When the log holds several records for the same id the last one
// wins. Returns the number of entries changed.
func Apply(entries []darijaset.DictionaryEntry, records []Record) (int, []string) {
	byID := make(map[string]*Record, len(records))
	for i := range records {
		byID[records[i].EntryID] = &records[i]
	}

	var skipped []string
	changed := 0

	for i := range entries {
		entry := &entries[i]
		record, ok := byID[entry.ID]
		if !ok {
			continue
		}

		touched := false

		if record.Result.FrequencyLevel != "" {
			if entry.FrequencyLevel == "" {
				entry.FrequencyLevel = record.Result.FrequencyLevel
				touched = true
			} else if entry.FrequencyLevel != record.Result.FrequencyLevel {
				skipped = append(skipped, fmt.Sprintf("entry %s: frequency_level kept %q, review said %q", entry.ID, entry.FrequencyLevel, record.Result.FrequencyLevel))
			}
		}

		if record.Result.FormalityLevel != "" {
			if entry.FormalityLevel == "" {
				entry.FormalityLevel = record.Result.FormalityLevel
				touched = true
			} else if entry.FormalityLevel != record.Result.FormalityLevel {
				skipped = append(skipped, fmt.Sprintf("entry %s: formality_level kept %q, review said %q", entry.ID, entry.FormalityLevel, record.Result.FormalityLevel))
			}
		}

		if len(record.Result.Topics) > 0 {
			if len(entry.Topics) == 0 {
				entry.Topics = append(entry.Topics[:0], record.Result.Topics...)
				touched = true
			} else {
				skipped = append(skipped, fmt.Sprintf("entry %s: topics kept, review said %v", entry.ID, record.Result.Topics))
			}
		}

		if record.Result.Include != nil {
			if entry.Include == nil {
				include := *record.Result.Include
				entry.Include = &include
				touched = true
			} else if *entry.Include != *record.Result.Include {
				skipped = append(skipped, fmt.Sprintf("entry %s: include kept %v, review said %v", entry.ID, *entry.Include, *record.Result.Include))
			}
		}

		if touched || !entry.Reviewed {
			entry.Reviewed = true
			changed++
		}
	}

	return changed, skipped
}
