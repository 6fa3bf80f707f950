package darijaset

// DuplicateMatch is a pair of entries that look like they describe the same
// word. The criteria flags record why the pair was flagged; a pair can match
// on more than one.
type DuplicateMatch struct {
	ID1     string `json:"id1"`
	ID2     string `json:"id2"`
	Darija1 string `json:"darija1"`
	Darija2 string `json:"darija2"`

	SameArabicScript   bool `json:"same_arabic_script"`
	SameLatin          bool `json:"same_latin"`
	SharedTranslations bool `json:"shared_translations"`
}

// FindDuplicates flags candidate duplicate pairs across the dataset. A pair
// is suspect when, for the same word class, the arabic script forms match,
// the primary latin forms match, or the pair shares at least one english and
// one german translation. The result is a report for a human pass, not an
// automatic merge.
func FindDuplicates(entries []DictionaryEntry) []DuplicateMatch {
	var res []DuplicateMatch

	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			e1, e2 := &entries[i], &entries[j]
			samePoS := e1.Class == e2.Class

			sameArabic := samePoS && e1.DarijaArabicScript != "" &&
				e1.DarijaArabicScript == e2.DarijaArabicScript
			sameLatin := NormalizeLatin(e1.Darija) == NormalizeLatin(e2.Darija)
			sharedTranslations := samePoS &&
				overlaps(e1.En, e2.En) && overlaps(e1.De, e2.De)

			if sameArabic || sameLatin || sharedTranslations {
				res = append(res, DuplicateMatch{
					ID1:                e1.ID,
					ID2:                e2.ID,
					Darija1:            e1.Darija,
					Darija2:            e2.Darija,
					SameArabicScript:   sameArabic,
					SameLatin:          sameLatin,
					SharedTranslations: sharedTranslations,
				})
			}
		}
	}

	return res
}

func overlaps(a, b []string) bool {
	for _, va := range a {
		for _, vb := range b {
			if NormalizeLatin(va) == NormalizeLatin(vb) {
				return true
			}
		}
	}

	return false
}
