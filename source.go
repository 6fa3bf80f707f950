package darijaset

// SourceBatch is everything a source loader got out of the category files:
// the rows that mapped cleanly, the inflection tables to attach, and the
// rows that did not make it. Warnings and rejections ride along instead of
// aborting the load; one bad row should never cost a whole conversion run.
type SourceBatch struct {
	Entries      []DictionaryEntry
	Forms        []FormAttachment
	Conjugations []ConjugationAttachment
	Warnings     []string
	Rejected     []EntryError
}

// FormAttachment carries the inflected forms of one lemma, to be attached to
// a merged entry. The target entry is found by trying each form's word in
// order; forms files do not carry ids.
type FormAttachment struct {
	File  string
	Row   int
	Class WordClass
	Forms []WordForm
}

// ConjugationAttachment carries one verb's conjugation table. Words are the
// lookup candidates in order of preference: the root column when the file has
// one, then the howa form. Forms is keyed tense.pronoun, e.g. "past.ana".
type ConjugationAttachment struct {
	File  string
	Row   int
	Class WordClass
	Words []string
	Forms map[string]string
}
