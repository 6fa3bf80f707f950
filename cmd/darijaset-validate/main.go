// Command darijaset-validate checks an emitted dataset file against the
// published JSON Schema. Exit codes: 0 = conformant, 1 = violations or error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sgharbi/darijaset/adapters/schemacheck"
)

var flagSchema = flag.String("schema", "./schema.json", "Schema document")
var flagDataset = flag.String("dataset", "./data/dataset-v02.json", "Dataset file to validate")

func main() {
	flag.Parse()

	problems, err := schemacheck.File(*flagSchema, *flagDataset)
	if err != nil {
		log.Fatal("Validation could not run:", err)
	}

	if len(problems) == 0 {
		fmt.Println("Dataset is schema-conformant.")
		return
	}

	fmt.Printf("%d errors found:\n", len(problems))
	for _, problem := range problems {
		fmt.Println("-", problem.String())
	}

	os.Exit(1)
}
