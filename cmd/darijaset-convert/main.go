package main

import (
	"context"
	"flag"
	"log"

	"github.com/sgharbi/darijaset/adapters/csvsource"
	"github.com/sgharbi/darijaset/adapters/datasetstorage"
	"github.com/sgharbi/darijaset/service"
)

var flagManifest = flag.String("manifest", "./sources/categories.yaml", "Category manifest")
var flagOutput = flag.String("output", "./data/dataset-v02.json", "Dataset file to write")

func main() {
	flag.Parse()

	source, err := csvsource.Open(*flagManifest)
	if err != nil {
		log.Fatal("Failed to open source:", err)
	}

	storage, err := datasetstorage.Open(*flagOutput, false)
	if err != nil {
		log.Fatal("Failed to open dataset:", err)
	}
	log.Println("Categories:", source.CategoryCount(), "Prior entries:", storage.EntryCount())

	svc := &service.Service{Source: source, Storage: storage}

	report, err := svc.Convert(context.Background())
	if err != nil {
		log.Fatal("Conversion failed:", err)
	}

	for _, warning := range report.Warnings {
		log.Println("Warning:", warning)
	}
	for _, rejected := range report.Rejected {
		log.Println("Rejected:", rejected.Error())
	}

	if err := storage.WriteToFile(); err != nil {
		log.Fatal("Failed to write dataset:", err)
	}

	log.Printf("Done: %d rows loaded, %d merged away, %d entries written (%d warnings, %d rejected)",
		report.Loaded, report.Merged, report.Emitted, len(report.Warnings), len(report.Rejected))
}
