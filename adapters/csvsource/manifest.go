// Package csvsource reads the category source files (CSV or XLSX) that the
// dataset is converted from. Which files exist, what word class they hold and
// how their columns map onto entry fields is described by a YAML manifest
// kept next to the files.
package csvsource

import (
	"fmt"
	"os"

	"github.com/sgharbi/darijaset"
	"gopkg.in/yaml.v3"
)

// CategoryKind separates plain vocabulary files from inflection-table files.
type CategoryKind string

const (
	// KindVocabulary rows each become (or merge into) one dictionary entry.
	KindVocabulary CategoryKind = "vocabulary"
	// KindForms rows carry inflected forms (masculine/feminine, singular/plural)
	// that attach to entries already produced by the vocabulary files.
	KindForms CategoryKind = "forms"
	// KindConjugations rows carry one verb's conjugation table across the
	// eight pronouns, attached to verb entries by root or howa form.
	KindConjugations CategoryKind = "conjugations"
)

// Tense qualifies a conjugations file; the cell for pronoun ana in a past
// file ends up under the key "past.ana".
type Tense string

const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
	TenseFuture  Tense = "future"
)

func (t Tense) Valid() bool {
	switch t {
	case TensePresent, TensePast, TenseFuture:
		return true
	default:
		return false
	}
}

type Manifest struct {
	Categories []Category `yaml:"categories"`
}

// Category describes one source file.
type Category struct {
	File  string              `yaml:"file"`
	Kind  CategoryKind        `yaml:"kind,omitempty"`
	Class darijaset.WordClass `yaml:"class"`
	Tense Tense               `yaml:"tense,omitempty"`

	// Defaults stamped onto every entry from this file. A greetings file, for
	// instance, carries topics [basic_needs.greetings] and frequency basic.
	Topics         []darijaset.Topic        `yaml:"topics,omitempty"`
	FrequencyLevel darijaset.FrequencyLevel `yaml:"frequency_level,omitempty"`
	FormalityLevel darijaset.FormalityLevel `yaml:"formality_level,omitempty"`

	Columns ColumnMap `yaml:"columns,omitempty"`
}

// ColumnMap names the source columns for each entry field. The zero value
// maps the layout the original category files use: latin forms in n1..n4,
// arabic script in darija_ar, translations in en and de.
type ColumnMap struct {
	Darija       string   `yaml:"darija,omitempty"`
	Alt          []string `yaml:"alt,omitempty"`
	ArabicScript string   `yaml:"arabic_script,omitempty"`
	En           string   `yaml:"en,omitempty"`
	De           string   `yaml:"de,omitempty"`
	Topics       string   `yaml:"topics,omitempty"`
	Gender       string   `yaml:"gender,omitempty"`
	Number       string   `yaml:"number,omitempty"`
}

func (c ColumnMap) withDefaults() ColumnMap {
	if c.Darija == "" {
		c.Darija = "n1"
	}
	if c.Alt == nil {
		c.Alt = []string{"n2", "n3", "n4"}
	}
	if c.ArabicScript == "" {
		c.ArabicScript = "darija_ar"
	}
	if c.En == "" {
		c.En = "en"
	}
	if c.De == "" {
		c.De = "de"
	}
	if c.Topics == "" {
		c.Topics = "topics"
	}

	return c
}

// LoadManifest reads and checks a category manifest. Manifest mistakes are
// hard errors: a typo in a default topic would otherwise poison every row of
// the file it belongs to.
func LoadManifest(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	manifest := new(Manifest)
	if err := yaml.NewDecoder(file).Decode(manifest); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	for i := range manifest.Categories {
		category := &manifest.Categories[i]
		if category.File == "" {
			return nil, fmt.Errorf("%s: category %d has no file", path, i)
		}
		if category.Kind == "" {
			category.Kind = KindVocabulary
		}
		switch category.Kind {
		case KindVocabulary, KindForms:
			if category.Tense != "" {
				return nil, fmt.Errorf("%s: category %s: tense only applies to conjugations files", path, category.File)
			}
		case KindConjugations:
			if !category.Tense.Valid() {
				return nil, fmt.Errorf("%s: category %s: unknown tense %q", path, category.File, category.Tense)
			}
		default:
			return nil, fmt.Errorf("%s: category %s: unknown kind %q", path, category.File, category.Kind)
		}
		if !category.Class.Valid() {
			return nil, fmt.Errorf("%s: category %s: unknown class %q", path, category.File, category.Class)
		}
		for _, topic := range category.Topics {
			if !topic.Valid() {
				return nil, fmt.Errorf("%s: category %s: unknown topic %q", path, category.File, topic)
			}
		}
		if category.FrequencyLevel != "" && !category.FrequencyLevel.Valid() {
			return nil, fmt.Errorf("%s: category %s: unknown frequency_level %q", path, category.File, category.FrequencyLevel)
		}
		if category.FormalityLevel != "" && !category.FormalityLevel.Valid() {
			return nil, fmt.Errorf("%s: category %s: unknown formality_level %q", path, category.File, category.FormalityLevel)
		}
		category.Columns = category.Columns.withDefaults()
	}

	return manifest, nil
}
