package csvsource

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgharbi/darijaset"
	"github.com/xuri/excelize/v2"
)

// Row is one data row of a category file, keyed by normalized header name.
// Line is the 1-based line in the source file, header included, so warnings
// point at the row a human would find in their editor.
type Row struct {
	File   string
	Line   int
	Values map[string]string
}

func (r Row) get(column string) string {
	return strings.TrimSpace(r.Values[normalizeColumn(column)])
}

// FormRow is one row of a forms file: the inflections of a single lemma.
type FormRow struct {
	File  string
	Line  int
	Forms []darijaset.WordForm
}

// ConjugationRow is one row of a conjugations file: the forms of a single
// verb across the eight pronouns, plus the words the verb can be looked up by.
type ConjugationRow struct {
	File  string
	Line  int
	Words []string
	Forms map[string]string
}

// ReadRows loads all data rows of a category file, dispatching on the file
// extension. CSV, TSV and XLSX are supported; the first row must be a header.
func ReadRows(dir string, category *Category) ([]Row, error) {
	path := filepath.Join(dir, category.File)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readDelimited(path, ',')
	case ".tsv":
		return readDelimited(path, '\t')
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("%s: unsupported file type", path)
	}
}

func readDelimited(path string, comma rune) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = comma
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	return tableRows(filepath.Base(path), records), nil
}

func readXLSX(path string) ([]Row, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: no sheets", path)
	}

	records, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty sheet %s", path, sheets[0])
	}

	return tableRows(filepath.Base(path), records), nil
}

func tableRows(name string, records [][]string) []Row {
	headers := make([]string, len(records[0]))
	for i, header := range records[0] {
		headers[i] = normalizeColumn(header)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		values := make(map[string]string, len(headers))
		for j, header := range headers {
			if j < len(record) {
				values[header] = record[j]
			} else {
				values[header] = ""
			}
		}
		rows = append(rows, Row{File: name, Line: i + 2, Values: values})
	}

	return rows
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Entry maps one vocabulary row onto a dictionary entry, stamping in the
// category defaults. It returns darijaset.ErrMissingDarija for rows without
// a main form (skipped with a warning upstream) and an EntryError carrying
// file and row for anything that fails the controlled vocabularies.
func (c *Category) Entry(row Row) (*darijaset.DictionaryEntry, error) {
	darija := row.get(c.Columns.Darija)
	if darija == "" {
		return nil, darijaset.ErrMissingDarija
	}

	entry := darijaset.DictionaryEntry{
		Darija:             darija,
		DarijaArabicScript: row.get(c.Columns.ArabicScript),
		Class:              c.Class,
		FrequencyLevel:     c.FrequencyLevel,
		FormalityLevel:     c.FormalityLevel,
		Topics:             append(c.Topics[:0:0], c.Topics...),
	}

	for _, column := range c.Columns.Alt {
		if alt := row.get(column); alt != "" && darijaset.NormalizeLatin(alt) != darijaset.NormalizeLatin(darija) {
			entry.DarijaAlt = append(entry.DarijaAlt, alt)
		}
	}

	entry.En = splitList(row.get(c.Columns.En))
	entry.De = splitList(row.get(c.Columns.De))

	for _, topic := range splitList(row.get(c.Columns.Topics)) {
		entry.Topics = append(entry.Topics, darijaset.Topic(topic))
	}
	if c.Columns.Gender != "" {
		entry.Gender = darijaset.Gender(row.get(c.Columns.Gender))
	}
	if c.Columns.Number != "" {
		entry.Number = darijaset.Number(row.get(c.Columns.Number))
	}

	if err := entry.Validate(); err != nil {
		if entryErr, ok := err.(darijaset.EntryError); ok {
			entryErr.File = row.File
			entryErr.Row = row.Line
			return nil, entryErr
		}
		return nil, err
	}

	return &entry, nil
}

// Forms maps one forms-file row. Column names are fixed: masculine and
// feminine hold the singular lemma forms, masc_plural and fem_plural the
// plurals. Empty cells are simply absent forms.
func (c *Category) Forms(row Row) (*FormRow, error) {
	res := &FormRow{File: row.File, Line: row.Line}

	for _, col := range [...]struct {
		name    string
		gender  darijaset.Gender
		number  darijaset.Number
		isLemma bool
	}{
		{"masculine", darijaset.GenderMasculine, darijaset.NumberSingular, true},
		{"feminine", darijaset.GenderFeminine, darijaset.NumberSingular, true},
		{"masc_plural", darijaset.GenderMasculine, darijaset.NumberPlural, false},
		{"fem_plural", darijaset.GenderFeminine, darijaset.NumberPlural, false},
	} {
		word := row.get(col.name)
		if word == "" {
			continue
		}
		res.Forms = append(res.Forms, darijaset.WordForm{
			Word:    word,
			Gender:  col.gender,
			Number:  col.number,
			IsLemma: col.isLemma,
		})
	}

	if len(res.Forms) == 0 {
		return nil, darijaset.ErrMissingDarija
	}

	return res, nil
}

var pronounColumns = [...]string{"ana", "nta", "nti", "howa", "hia", "7na", "ntoma", "homa"}

// Conjugation maps one conjugations-file row. Pronoun column names are fixed;
// present-tense files also carry a root column, which takes precedence over
// the howa form when looking up the verb. Rows without a howa form return
// darijaset.ErrMissingDarija and are skipped upstream.
func (c *Category) Conjugation(row Row) (*ConjugationRow, error) {
	howa := row.get("howa")
	if howa == "" {
		return nil, darijaset.ErrMissingDarija
	}

	res := &ConjugationRow{File: row.File, Line: row.Line, Forms: make(map[string]string, len(pronounColumns))}
	if root := row.get("root"); root != "" {
		res.Words = append(res.Words, root)
	}
	res.Words = append(res.Words, howa)

	for _, pronoun := range pronounColumns {
		if form := row.get(pronoun); form != "" {
			res.Forms[string(c.Tense)+"."+pronoun] = form
		}
	}

	return res, nil
}

// splitList splits a multi-value cell. The source files use semicolons
// between translations; stray empty segments are dropped.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ";")
	res := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}

	return res
}
