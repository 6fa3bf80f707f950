package darijaset

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Merger folds rows from any number of category files into one entry per
// darija+class pair. The first row seen for a pair wins every scalar field;
// later rows can only fill blanks and extend the list fields. Translation
// lists keep first-seen order, topics come out sorted, so the merged result
// does not depend on how often the same row appears.
type Merger struct {
	entries []DictionaryEntry
	index   map[string]int
	topics  map[string]*treeset.Set
}

func NewMerger() *Merger {
	return &Merger{
		index:  make(map[string]int, 1024),
		topics: make(map[string]*treeset.Set, 1024),
	}
}

// Add merges one entry into the set. The entry must already have passed
// Validate; Add does not re-check controlled vocabularies.
func (m *Merger) Add(entry DictionaryEntry) {
	key := entry.Key()

	i, ok := m.index[key]
	if !ok {
		m.index[key] = len(m.entries)
		m.topics[key] = treeset.NewWithStringComparator()
		for _, t := range entry.Topics {
			m.topics[key].Add(string(t))
		}

		entry = entry.Copy()
		entry.Topics = nil
		m.entries = append(m.entries, entry)
		return
	}

	existing := &m.entries[i]

	if existing.DarijaArabicScript == "" {
		existing.DarijaArabicScript = entry.DarijaArabicScript
	}
	if existing.Gender == "" {
		existing.Gender = entry.Gender
	}
	if existing.Number == "" {
		existing.Number = entry.Number
	}
	if existing.FrequencyLevel == "" {
		existing.FrequencyLevel = entry.FrequencyLevel
	}
	if existing.FormalityLevel == "" {
		existing.FormalityLevel = entry.FormalityLevel
	}
	if existing.UserSummaryEn == "" {
		existing.UserSummaryEn = entry.UserSummaryEn
	}
	if existing.UserSummaryDe == "" {
		existing.UserSummaryDe = entry.UserSummaryDe
	}

	for _, alt := range entry.DarijaAlt {
		if NormalizeLatin(alt) == NormalizeLatin(existing.Darija) {
			continue
		}
		existing.DarijaAlt = appendMissing(existing.DarijaAlt, alt)
	}
	existing.En = appendMissing(existing.En, entry.En...)
	existing.De = appendMissing(existing.De, entry.De...)

	for _, t := range entry.Topics {
		m.topics[key].Add(string(t))
	}

	for _, form := range entry.WordForms {
		existing.WordForms = appendMissingForm(existing.WordForms, form)
	}
	for person, form := range entry.Conjugations {
		if existing.Conjugations == nil {
			existing.Conjugations = make(map[string]string)
		}
		if _, ok := existing.Conjugations[person]; !ok {
			existing.Conjugations[person] = form
		}
	}
}

// AddForms attaches inflected forms to an already merged entry, looked up by
// any of its latin forms. It reports whether a matching entry was found.
func (m *Merger) AddForms(latin string, class WordClass, forms ...WordForm) bool {
	key := NormalizeLatin(latin) + "\x00" + string(class)
	i, ok := m.index[key]
	if !ok {
		return false
	}

	for _, form := range forms {
		m.entries[i].WordForms = appendMissingForm(m.entries[i].WordForms, form)
	}

	return true
}

// AddConjugations attaches a conjugation table to an already merged entry,
// looked up by latin form. Cells that are already set are kept.
func (m *Merger) AddConjugations(latin string, class WordClass, forms map[string]string) bool {
	key := NormalizeLatin(latin) + "\x00" + string(class)
	i, ok := m.index[key]
	if !ok {
		return false
	}

	entry := &m.entries[i]
	for person, form := range forms {
		if entry.Conjugations == nil {
			entry.Conjugations = make(map[string]string, len(forms))
		}
		if _, ok := entry.Conjugations[person]; !ok {
			entry.Conjugations[person] = form
		}
	}

	return true
}

// Entries returns the merged set in first-seen order, each entry with its
// sorted topic union. Entries without topics get an empty, non-nil slice so
// the dataset always carries a "topics" array.
func (m *Merger) Entries() []DictionaryEntry {
	res := make([]DictionaryEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		entry = entry.Copy()
		set := m.topics[entry.Key()]
		entry.Topics = make([]Topic, 0, set.Size())
		for _, v := range set.Values() {
			entry.Topics = append(entry.Topics, Topic(v.(string)))
		}
		res = append(res, entry)
	}

	return res
}

func (m *Merger) Len() int {
	return len(m.entries)
}

func appendMissing(dst []string, values ...string) []string {
ValueLoop:
	for _, v := range values {
		for _, existing := range dst {
			if NormalizeLatin(existing) == NormalizeLatin(v) {
				continue ValueLoop
			}
		}
		dst = append(dst, v)
	}

	return dst
}

func appendMissingForm(dst []WordForm, form WordForm) []WordForm {
	for _, existing := range dst {
		if NormalizeLatin(existing.Word) == NormalizeLatin(form.Word) &&
			existing.Gender == form.Gender && existing.Number == form.Number {
			return dst
		}
	}

	return append(dst, form)
}
