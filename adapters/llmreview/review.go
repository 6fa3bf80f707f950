// Package llmreview runs the LLM-assisted categorization pass: for entries
// missing frequency, formality or topics, it asks the model for values from
// the closed vocabularies and writes its answers to a JSONL review log. The
// log is applied to the dataset in a separate step, so a human can inspect
// or edit it in between.
package llmreview

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sgharbi/darijaset"
)

// Result is what the model decides for one entry. Invalid values have
// already been filtered out by the time a Result is logged; the filtering is
// recorded in the Record warnings.
type Result struct {
	FrequencyLevel darijaset.FrequencyLevel `json:"frequency_level,omitempty"`
	FormalityLevel darijaset.FormalityLevel `json:"formality_level,omitempty"`
	Topics         []darijaset.Topic        `json:"topics"`
	Include        *bool                    `json:"include,omitempty"`
}

// Record is one line of the review log.
type Record struct {
	RunID    string   `json:"run_id"`
	EntryID  string   `json:"id"`
	Darija   string   `json:"darija"`
	Result   Result   `json:"result"`
	Warnings []string `json:"warnings,omitempty"`
}

type Reviewer struct {
	cfg    *Config
	client anthropic.Client
	log    *slog.Logger
	runID  string
	system string
}

func NewReviewer(cfg *Config, log *slog.Logger) *Reviewer {
	return &Reviewer{
		cfg:    cfg,
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		log:    log,
		runID:  uuid.NewString(),
		system: systemPrompt(),
	}
}

// NeedsReview reports whether an entry is missing any of the fields the
// review pass fills in.
func NeedsReview(entry *darijaset.DictionaryEntry) bool {
	return entry.FrequencyLevel == "" || entry.FormalityLevel == "" || len(entry.Topics) == 0
}

// Run reviews every entry that needs it and appends one Record per entry to
// the JSONL log at logPath. Entries already present in the log are skipped,
// so an interrupted run can simply be restarted. Errors on single entries
// are logged and skipped; the run only aborts on context cancellation or an
// unwritable log.
func (r *Reviewer) Run(ctx context.Context, entries []darijaset.DictionaryEntry, logPath string) (int, error) {
	done, err := loggedIDs(logPath)
	if err != nil {
		return 0, err
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	enc := json.NewEncoder(writer)
	enc.SetEscapeHTML(false)

	reviewed := 0
	for i := range entries {
		entry := &entries[i]
		if !NeedsReview(entry) || done[entry.ID] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return reviewed, err
		}

		result, warnings, err := r.ReviewEntry(ctx, entry)
		if err != nil {
			r.log.Error("review failed", slog.String("id", entry.ID), slog.String("darija", entry.Darija), slog.String("error", err.Error()))
			continue
		}

		record := Record{
			RunID:    r.runID,
			EntryID:  entry.ID,
			Darija:   entry.Darija,
			Result:   *result,
			Warnings: warnings,
		}
		if err := enc.Encode(record); err != nil {
			return reviewed, fmt.Errorf("write review log: %w", err)
		}
		if err := writer.Flush(); err != nil {
			return reviewed, fmt.Errorf("write review log: %w", err)
		}

		reviewed++
		r.log.Info("entry reviewed",
			slog.String("id", entry.ID),
			slog.String("darija", entry.Darija),
			slog.Int("warnings", len(warnings)),
		)

		if r.cfg.PauseMillis > 0 {
			select {
			case <-time.After(time.Duration(r.cfg.PauseMillis) * time.Millisecond):
			case <-ctx.Done():
				return reviewed, ctx.Err()
			}
		}
	}

	return reviewed, nil
}

// ReviewEntry asks the model about a single entry and normalizes the answer
// against the closed vocabularies.
func (r *Reviewer) ReviewEntry(ctx context.Context, entry *darijaset.DictionaryEntry) (*Result, []string, error) {
	prompt, err := userPrompt(entry)
	if err != nil {
		return nil, nil, err
	}

	msg, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(r.cfg.Model),
		MaxTokens: r.cfg.MaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: r.system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("llm call for %q: %w", entry.Darija, err)
	}
	if len(msg.Content) == 0 {
		return nil, nil, fmt.Errorf("empty response for %q", entry.Darija)
	}

	raw, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return nil, nil, fmt.Errorf("response for %q: %w", entry.Darija, err)
	}
	if !json.Valid([]byte(raw)) {
		return nil, nil, fmt.Errorf("response for %q is not valid JSON", entry.Darija)
	}

	var parsed struct {
		FrequencyLevel string   `json:"frequency_level"`
		FormalityLevel string   `json:"formality_level"`
		Topics         []string `json:"topics"`
		Include        *bool    `json:"include"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, nil, fmt.Errorf("decode response for %q: %w", entry.Darija, err)
	}

	result, warnings := normalize(parsed.FrequencyLevel, parsed.FormalityLevel, parsed.Topics, parsed.Include)
	return result, warnings, nil
}

// normalize filters a raw model answer down to valid vocabulary values.
// Unknown values are dropped with a warning rather than failing the entry:
// a partially useful answer still saves review time.
func normalize(frequency, formality string, topics []string, include *bool) (*Result, []string) {
	var warnings []string
	res := &Result{Topics: []darijaset.Topic{}, Include: include}

	if f := darijaset.FrequencyLevel(frequency); f.Valid() {
		res.FrequencyLevel = f
	} else if frequency != "" {
		warnings = append(warnings, fmt.Sprintf("unknown frequency_level %q dropped", frequency))
	}

	if f := darijaset.FormalityLevel(formality); f.Valid() {
		res.FormalityLevel = f
	} else if formality != "" {
		warnings = append(warnings, fmt.Sprintf("unknown formality_level %q dropped", formality))
	}

	for _, raw := range topics {
		topic := darijaset.Topic(raw)
		if !topic.Valid() {
			warnings = append(warnings, fmt.Sprintf("unknown topic %q dropped", raw))
			continue
		}
		if len(res.Topics) == 3 {
			warnings = append(warnings, fmt.Sprintf("more than 3 topics; %q truncated", raw))
			continue
		}
		res.Topics = append(res.Topics, topic)
	}

	return res, warnings
}

// loggedIDs reads the entry ids already present in a review log. A missing
// log is an empty set.
func loggedIDs(path string) (map[string]bool, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[string]bool{}, nil
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	res := make(map[string]bool, 1024)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var record Record
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		res[record.EntryID] = true
	}

	return res, scanner.Err()
}

// ReadLog loads a full review log.
func ReadLog(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var res []Record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var record Record
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		res = append(res, record)
	}

	return res, scanner.Err()
}
