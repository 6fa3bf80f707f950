// Command darijaset-review runs the LLM categorization pass over a dataset
// and appends its answers to a JSONL review log. The dataset itself is not
// touched; apply the log with darijaset-apply-review once it has been looked
// over.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/sgharbi/darijaset/adapters/datasetstorage"
	"github.com/sgharbi/darijaset/adapters/llmreview"
)

var flagDataset = flag.String("dataset", "./data/dataset-v02.json", "Dataset file to review")
var flagLog = flag.String("log", "./data/review-log.jsonl", "Review log to append to")
var flagConfig = flag.String("config", "", "Review config YAML (environment is used when empty)")

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := llmreview.LoadConfig(*flagConfig)
	if err != nil {
		logger.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	storage, err := datasetstorage.Open(*flagDataset, true)
	if err != nil {
		logger.Error("open dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	entries, err := storage.ListEntries(context.Background())
	if err != nil {
		logger.Error("list entries", slog.String("error", err.Error()))
		os.Exit(1)
	}

	reviewer := llmreview.NewReviewer(cfg, logger)
	reviewed, err := reviewer.Run(context.Background(), entries, *flagLog)
	if err != nil {
		logger.Error("review run failed", slog.Int("reviewed", reviewed), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("review finished", slog.Int("entries", len(entries)), slog.Int("reviewed", reviewed))
}
