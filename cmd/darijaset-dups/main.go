// Command darijaset-dups writes a report of candidate duplicate entry pairs
// for a human review pass.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/sgharbi/darijaset/adapters/datasetstorage"
	"github.com/sgharbi/darijaset/service"
)

var flagDataset = flag.String("dataset", "./data/dataset-v02.json", "Dataset file to scan")
var flagOutput = flag.String("output", "./data/duplicate-log.json", "Report file to write")

func main() {
	flag.Parse()

	storage, err := datasetstorage.Open(*flagDataset, true)
	if err != nil {
		log.Fatal("Failed to open dataset:", err)
	}

	svc := &service.Service{Storage: storage, ReadOnly: true}

	matches, err := svc.Duplicates(context.Background())
	if err != nil {
		log.Fatal("Failed to scan for duplicates:", err)
	}

	file, err := os.OpenFile(*flagOutput, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		log.Fatal("Failed to open report file:", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(matches); err != nil {
		log.Fatal("Failed to write report:", err)
	}

	log.Printf("Done: %d candidate pairs written to %s", len(matches), *flagOutput)
}
