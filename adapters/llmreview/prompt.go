package llmreview

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sgharbi/darijaset"
)

// entryPayload is the subset of an entry the model gets to see. No ids, no
// bookkeeping fields: just the word itself.
type entryPayload struct {
	Darija             string   `json:"darija"`
	DarijaArabicScript string   `json:"darija_arabic_script,omitempty"`
	DarijaAlt          []string `json:"darija_alt,omitempty"`
	En                 []string `json:"en"`
	De                 []string `json:"de"`
	Class              string   `json:"class"`
}

func systemPrompt() string {
	topics := make([]string, 0, len(darijaset.Topics()))
	for _, topic := range darijaset.Topics() {
		topics = append(topics, string(topic))
	}

	return fmt.Sprintf(`You are enriching entries for a beginner-friendly Darija (Moroccan Arabic) learner's dictionary.
Audience: beginners. Focus: everyday spoken Darija (not MSA), practical communication.

TASK:
Given ONE entry (Darija in Arabizi + optional Arabic script + translations + word class), decide:
- frequency_level: one of basic, common, rare
  basic = essential beginner words used daily
  common = often used and useful, but not core survival
  rare = less common or specialized
- formality_level: one of informal, neutral, formal
- topics: 0-3 items chosen from the list below (strings as-is).
- include (true/false): does this belong in a serious learner's dictionary?
  false for misspellings, duplicates of standard Arabic, or offensive filler.

RULES:
- Topics are THEMATIC; any part of speech can carry them.
- Assign topics ONLY if there is a good fit; if uncertain, return an EMPTY ARRAY [].
- Use ONLY items from the provided list; do not invent categories.
- Decide topics first, then independently set frequency and formality.
- Return ONLY compact JSON. No extra text.

TOPICS LIST:
%s

FORMAT:
{"frequency_level":"...", "formality_level":"...", "topics":["...", "..."], "include":true}`, strings.Join(topics, "\n"))
}

func userPrompt(entry *darijaset.DictionaryEntry) (string, error) {
	payload := entryPayload{
		Darija:             entry.Darija,
		DarijaArabicScript: entry.DarijaArabicScript,
		DarijaAlt:          entry.DarijaAlt,
		En:                 entry.En,
		De:                 entry.De,
		Class:              string(entry.Class),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	return string(data), nil
}

// extractJSON pulls the JSON object out of a model response, tolerating
// prose around it.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON object in response")
	}

	return s[start : end+1], nil
}
