package darijaset

import (
	"fmt"
	"strings"
)

// DictionaryEntry is one word or expression in the dataset. The zero values of
// FrequencyLevel and FormalityLevel mean the entry has not been through the
// review pass yet; they are omitted from the emitted JSON in that case.
type DictionaryEntry struct {
	ID                 string            `json:"id"`
	Darija             string            `json:"darija"`
	DarijaAlt          []string          `json:"darija_alt,omitempty"`
	DarijaArabicScript string            `json:"darija_arabic_script,omitempty"`
	En                 []string          `json:"en,omitempty"`
	De                 []string          `json:"de,omitempty"`
	Class              WordClass         `json:"class"`
	Gender             Gender            `json:"gender,omitempty"`
	Number             Number            `json:"number,omitempty"`
	WordForms          []WordForm        `json:"wordForms,omitempty"`
	Conjugations       map[string]string `json:"conjugations,omitempty"`
	FrequencyLevel     FrequencyLevel    `json:"frequency_level,omitempty"`
	FormalityLevel     FormalityLevel    `json:"formality_level,omitempty"`
	Topics             []Topic           `json:"topics"`
	UserSummaryEn      string            `json:"user_summary_en,omitempty"`
	UserSummaryDe      string            `json:"user_summary_de,omitempty"`
	Reviewed           bool              `json:"reviewed,omitempty"`

	// Include is the review verdict on whether the entry belongs in the
	// dataset at all. Nil until a review pass has decided.
	Include *bool `json:"include,omitempty"`
}

// WordForm is an inflected form of a noun or adjective, e.g. the feminine
// plural of a base masculine singular.
type WordForm struct {
	Word    string `json:"word"`
	Gender  Gender `json:"gender,omitempty"`
	Number  Number `json:"number,omitempty"`
	IsLemma bool   `json:"isLemma,omitempty"`
}

// Key identifies an entry for merging: two rows with the same normalized
// arabizi form and the same word class are the same entry.
func (e *DictionaryEntry) Key() string {
	return NormalizeLatin(e.Darija) + "\x00" + string(e.Class)
}

// NormalizeLatin is how arabizi forms are compared throughout: trimmed and
// lowercased, accents left alone.
func NormalizeLatin(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (e *DictionaryEntry) Copy() DictionaryEntry {
	e2 := *e

	e2.DarijaAlt = append(e.DarijaAlt[:0:0], e.DarijaAlt...)
	e2.En = append(e.En[:0:0], e.En...)
	e2.De = append(e.De[:0:0], e.De...)
	e2.WordForms = append(e.WordForms[:0:0], e.WordForms...)
	e2.Topics = append(e.Topics[:0:0], e.Topics...)
	if e.Conjugations != nil {
		e2.Conjugations = make(map[string]string, len(e.Conjugations))
		for k, v := range e.Conjugations {
			e2.Conjugations[k] = v
		}
	}
	if e.Include != nil {
		include := *e.Include
		e2.Include = &include
	}

	return e2
}

// Validate checks the controlled vocabularies and the grammar-field rules.
// Empty frequency and formality levels pass: they are filled by the review
// pass, not the converter.
func (e *DictionaryEntry) Validate() error {
	if strings.TrimSpace(e.Darija) == "" {
		return ErrMissingDarija
	}
	if !e.Class.Valid() {
		return EntryError{Field: "class", Value: string(e.Class), Message: "unknown word class"}
	}
	if e.En != nil && len(e.En) == 0 {
		return EntryError{Field: "en", Message: "translation list present but empty"}
	}
	if e.De != nil && len(e.De) == 0 {
		return EntryError{Field: "de", Message: "translation list present but empty"}
	}
	if e.FrequencyLevel != "" && !e.FrequencyLevel.Valid() {
		return EntryError{Field: "frequency_level", Value: string(e.FrequencyLevel), Message: "not one of basic, common, rare"}
	}
	if e.FormalityLevel != "" && !e.FormalityLevel.Valid() {
		return EntryError{Field: "formality_level", Value: string(e.FormalityLevel), Message: "not one of informal, neutral, formal"}
	}
	for _, topic := range e.Topics {
		if !topic.Valid() {
			return EntryError{Field: "topics", Value: string(topic), Message: "not in the topic taxonomy"}
		}
	}
	if e.Gender != "" && !e.Gender.Valid() {
		return EntryError{Field: "gender", Value: string(e.Gender), Message: "unknown gender"}
	}
	if e.Number != "" && !e.Number.Valid() {
		return EntryError{Field: "number", Value: string(e.Number), Message: "unknown number"}
	}

	if !e.Class.HasGender() {
		if e.Gender != "" {
			return EntryError{Field: "gender", Value: string(e.Gender), Message: fmt.Sprintf("not applicable to class %q", e.Class)}
		}
		if e.Number != "" {
			return EntryError{Field: "number", Value: string(e.Number), Message: fmt.Sprintf("not applicable to class %q", e.Class)}
		}
		if len(e.WordForms) > 0 {
			return EntryError{Field: "wordForms", Value: e.WordForms[0].Word, Message: fmt.Sprintf("not applicable to class %q", e.Class)}
		}
	}
	if e.Class != ClassVerb && len(e.Conjugations) > 0 {
		return EntryError{Field: "conjugations", Message: fmt.Sprintf("not applicable to class %q", e.Class)}
	}

	return nil
}

type WordClass string

func (c WordClass) Valid() bool {
	switch c {
	case ClassNoun, ClassVerb, ClassAdjective, ClassAdverb, ClassPronoun,
		ClassPreposition, ClassConjunction, ClassInterjection, ClassNumeral, ClassExpression:
		return true
	default:
		return false
	}
}

// HasGender reports whether gender, number and word forms make sense for the
// class. Darija adjectives inflect for gender and number like nouns do.
func (c WordClass) HasGender() bool {
	return c == ClassNoun || c == ClassAdjective
}

const (
	ClassNoun         WordClass = "noun"
	ClassVerb         WordClass = "verb"
	ClassAdjective    WordClass = "adjective"
	ClassAdverb       WordClass = "adverb"
	ClassPronoun      WordClass = "pronoun"
	ClassPreposition  WordClass = "preposition"
	ClassConjunction  WordClass = "conjunction"
	ClassInterjection WordClass = "interjection"
	ClassNumeral      WordClass = "numeral"
	// ClassExpression covers multi-word phrases and fixed expressions,
	// greetings included.
	ClassExpression WordClass = "expression"
)

type FrequencyLevel string

func (f FrequencyLevel) Valid() bool {
	switch f {
	case FrequencyBasic, FrequencyCommon, FrequencyRare:
		return true
	default:
		return false
	}
}

const (
	// FrequencyBasic marks essential beginner words used daily.
	FrequencyBasic FrequencyLevel = "basic"
	// FrequencyCommon marks words that are often used and useful, but not core survival.
	FrequencyCommon FrequencyLevel = "common"
	// FrequencyRare marks less common or specialized words.
	FrequencyRare FrequencyLevel = "rare"
)

type FormalityLevel string

func (f FormalityLevel) Valid() bool {
	switch f {
	case FormalityInformal, FormalityNeutral, FormalityFormal:
		return true
	default:
		return false
	}
}

const (
	FormalityInformal FormalityLevel = "informal"
	FormalityNeutral  FormalityLevel = "neutral"
	FormalityFormal   FormalityLevel = "formal"
)

type Gender string

func (g Gender) Valid() bool {
	return g == GenderMasculine || g == GenderFeminine
}

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
)

type Number string

func (n Number) Valid() bool {
	return n == NumberSingular || n == NumberPlural
}

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
)
