package csvsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgharbi/darijaset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	manifest, err := LoadManifest(filepath.Join("testdata", "categories.yaml"))
	require.NoError(t, err)
	require.Len(t, manifest.Categories, 4)

	greetings := manifest.Categories[0]
	assert.Equal(t, KindVocabulary, greetings.Kind)
	assert.Equal(t, darijaset.ClassExpression, greetings.Class)
	assert.Equal(t, darijaset.FrequencyBasic, greetings.FrequencyLevel)
	assert.Equal(t, "n1", greetings.Columns.Darija)
	assert.Equal(t, []string{"n2", "n3", "n4"}, greetings.Columns.Alt)
	assert.Equal(t, "darija_ar", greetings.Columns.ArabicScript)

	food := manifest.Categories[1]
	assert.Equal(t, "gender", food.Columns.Gender)
	assert.Equal(t, "en", food.Columns.En)

	forms := manifest.Categories[2]
	assert.Equal(t, KindForms, forms.Kind)

	conjugations := manifest.Categories[3]
	assert.Equal(t, KindConjugations, conjugations.Kind)
	assert.Equal(t, TensePresent, conjugations.Tense)
	assert.Equal(t, darijaset.ClassVerb, conjugations.Class)
}

func TestLoadManifestRejectsBadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	manifest := "categories:\n  - file: sports.csv\n    class: noun\n    topics: [sports.football]\n"
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sports.football")

	_, err = LoadManifest(filepath.Join("testdata", "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadManifestRejectsBadTense(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")

	manifest := "categories:\n  - file: conjug.csv\n    kind: conjugations\n    class: verb\n    tense: pluperfect\n"
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))
	_, err := LoadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pluperfect")

	manifest = "categories:\n  - file: nouns.csv\n    class: noun\n    tense: past\n"
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))
	_, err = LoadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tense")
}

func TestReadRows(t *testing.T) {
	manifest, err := LoadManifest(filepath.Join("testdata", "categories.yaml"))
	require.NoError(t, err)

	rows, err := ReadRows("testdata", &manifest.Categories[0])
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "greetings.csv", rows[0].File)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "salam", rows[0].get("n1"))
	assert.Equal(t, "سلام", rows[0].get("darija_ar"))
	assert.Equal(t, 5, rows[3].Line)
}

func TestReadRowsUnsupportedType(t *testing.T) {
	_, err := ReadRows("testdata", &Category{File: "greetings.pdf"})
	assert.Error(t, err)
}

func TestCategoryEntry(t *testing.T) {
	manifest, err := LoadManifest(filepath.Join("testdata", "categories.yaml"))
	require.NoError(t, err)
	greetings := &manifest.Categories[0]

	rows, err := ReadRows("testdata", greetings)
	require.NoError(t, err)

	t.Run("maps_all_fields", func(t *testing.T) {
		entry, err := greetings.Entry(rows[0])
		require.NoError(t, err)

		assert.Equal(t, &darijaset.DictionaryEntry{
			Darija:             "salam",
			DarijaArabicScript: "سلام",
			En:                 []string{"hello"},
			De:                 []string{"hallo"},
			Class:              darijaset.ClassExpression,
			FrequencyLevel:     darijaset.FrequencyBasic,
			FormalityLevel:     darijaset.FormalityNeutral,
			Topics:             []darijaset.Topic{darijaset.TopicGreetings},
		}, entry)
	})

	t.Run("splits_translations_and_alt_forms", func(t *testing.T) {
		entry, err := greetings.Entry(rows[1])
		require.NoError(t, err)

		assert.Equal(t, []string{"goodbye", "bye"}, entry.En)
		assert.Equal(t, []string{"beslama"}, entry.DarijaAlt)
	})

	t.Run("missing_darija", func(t *testing.T) {
		_, err := greetings.Entry(rows[2])
		assert.ErrorIs(t, err, darijaset.ErrMissingDarija)
	})

	t.Run("unknown_topic_carries_location", func(t *testing.T) {
		_, err := greetings.Entry(rows[3])
		require.Error(t, err)

		entryErr, ok := err.(darijaset.EntryError)
		require.True(t, ok)
		assert.Equal(t, "topics", entryErr.Field)
		assert.Equal(t, "sports.football", entryErr.Value)
		assert.Equal(t, "greetings.csv", entryErr.File)
		assert.Equal(t, 5, entryErr.Row)
	})
}

func TestCategoryForms(t *testing.T) {
	manifest, err := LoadManifest(filepath.Join("testdata", "categories.yaml"))
	require.NoError(t, err)
	forms := &manifest.Categories[2]

	rows, err := ReadRows("testdata", forms)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	formRow, err := forms.Forms(rows[0])
	require.NoError(t, err)
	assert.Equal(t, []darijaset.WordForm{
		{Word: "kbir", Gender: darijaset.GenderMasculine, Number: darijaset.NumberSingular, IsLemma: true},
		{Word: "kbira", Gender: darijaset.GenderFeminine, Number: darijaset.NumberSingular, IsLemma: true},
		{Word: "kbar", Gender: darijaset.GenderMasculine, Number: darijaset.NumberPlural},
		{Word: "kbirat", Gender: darijaset.GenderFeminine, Number: darijaset.NumberPlural},
	}, formRow.Forms)

	_, err = forms.Forms(rows[1])
	assert.ErrorIs(t, err, darijaset.ErrMissingDarija)
}

func TestCategoryConjugation(t *testing.T) {
	manifest, err := LoadManifest(filepath.Join("testdata", "categories.yaml"))
	require.NoError(t, err)
	conjugations := &manifest.Categories[3]

	rows, err := ReadRows("testdata", conjugations)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	conjRow, err := conjugations.Conjugation(rows[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"kla", "kayakol"}, conjRow.Words)
	assert.Equal(t, map[string]string{
		"present.ana":   "kanakol",
		"present.nta":   "katakol",
		"present.nti":   "katakli",
		"present.howa":  "kayakol",
		"present.hia":   "katakol",
		"present.7na":   "kanaklo",
		"present.ntoma": "kataklo",
		"present.homa":  "kayaklo",
	}, conjRow.Forms)

	_, err = conjugations.Conjugation(rows[1])
	assert.ErrorIs(t, err, darijaset.ErrMissingDarija)
}

func TestSourceLoad(t *testing.T) {
	source, err := Open(filepath.Join("testdata", "categories.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 4, source.CategoryCount())

	batch, err := source.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, batch.Entries, 4)
	assert.Equal(t, "salam", batch.Entries[0].Darija)
	assert.Equal(t, "bslama", batch.Entries[1].Darija)
	assert.Equal(t, "atay", batch.Entries[2].Darija)
	assert.Equal(t, "khobz", batch.Entries[3].Darija)
	assert.Equal(t, []darijaset.Topic{darijaset.TopicFoodDrink, darijaset.TopicShoppingMoney}, batch.Entries[3].Topics)

	require.Len(t, batch.Forms, 1)
	assert.Equal(t, darijaset.ClassAdjective, batch.Forms[0].Class)

	require.Len(t, batch.Conjugations, 1)
	assert.Equal(t, darijaset.ClassVerb, batch.Conjugations[0].Class)
	assert.Equal(t, []string{"kla", "kayakol"}, batch.Conjugations[0].Words)
	assert.Equal(t, "kanakol", batch.Conjugations[0].Forms["present.ana"])

	assert.Len(t, batch.Warnings, 3)
	require.Len(t, batch.Rejected, 1)
	assert.Equal(t, "topics", batch.Rejected[0].Field)
}
