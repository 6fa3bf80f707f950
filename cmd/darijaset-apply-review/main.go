// Command darijaset-apply-review merges a JSONL review log into a dataset.
// Review values only fill blanks; every skipped overwrite is reported.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/sgharbi/darijaset/adapters/datasetstorage"
	"github.com/sgharbi/darijaset/adapters/llmreview"
)

var flagDataset = flag.String("dataset", "./data/dataset-v02.json", "Dataset file to amend")
var flagLog = flag.String("log", "./data/review-log.jsonl", "Review log to apply")

func main() {
	flag.Parse()

	storage, err := datasetstorage.Open(*flagDataset, false)
	if err != nil {
		log.Fatal("Failed to open dataset:", err)
	}

	records, err := llmreview.ReadLog(*flagLog)
	if err != nil {
		log.Fatal("Failed to read review log:", err)
	}

	entries, err := storage.ListEntries(context.Background())
	if err != nil {
		log.Fatal("Failed to list entries:", err)
	}

	changed, skipped := llmreview.Apply(entries, records)
	for _, line := range skipped {
		log.Println("Skipped:", line)
	}

	if err := storage.ReplaceAll(context.Background(), entries); err != nil {
		log.Fatal("Failed to store amended entries:", err)
	}
	if err := storage.WriteToFile(); err != nil {
		log.Fatal("Failed to write dataset:", err)
	}

	log.Printf("Done: %d review records, %d entries updated, %d overwrites skipped",
		len(records), changed, len(skipped))
}
