// Package schemacheck validates an emitted dataset file against the published
// JSON Schema document. It is the last gate of the pipeline: a dataset that
// does not pass here is not released.
package schemacheck

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Problem is one schema violation, located by a JSON pointer into the
// dataset document.
type Problem struct {
	InstancePath string `json:"instancePath"`
	Message      string `json:"message"`
}

func (p Problem) String() string {
	path := p.InstancePath
	if path == "" {
		path = "(root)"
	}
	return fmt.Sprintf("%s: %s", path, p.Message)
}

// File validates the dataset at dataPath against the schema at schemaPath.
// Schema violations come back as Problems, not as an error: a broken dataset
// is an expected outcome here, a broken schema or unreadable file is not.
func File(schemaPath, dataPath string) ([]Problem, error) {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", schemaPath, err)
	}

	file, err := os.Open(dataPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	instance, err := jsonschema.UnmarshalJSON(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dataPath, err)
	}

	err = schema.Validate(instance)
	if err == nil {
		return nil, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, err
	}

	var problems []Problem
	collect(validationErr, &problems)
	return problems, nil
}

var printer = message.NewPrinter(language.English)

// collect walks the cause tree and keeps the leaves; the inner nodes only
// repeat that some child failed.
func collect(err *jsonschema.ValidationError, out *[]Problem) {
	if len(err.Causes) == 0 {
		path := ""
		if len(err.InstanceLocation) > 0 {
			path = "/" + strings.Join(err.InstanceLocation, "/")
		}
		*out = append(*out, Problem{
			InstancePath: path,
			Message:      err.ErrorKind.LocalizedString(printer),
		})
		return
	}

	for _, cause := range err.Causes {
		collect(cause, out)
	}
}
