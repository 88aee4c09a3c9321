package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"reactlint/internal/rules"
)

//go:embed schema.json
var schemaJSON []byte

// Report is the machine-readable summary of one lint run.
type Report struct {
	Root             string            `json:"root"`
	Files            int               `json:"files"`
	Components       int               `json:"components"`
	Violations       []rules.Violation `json:"violations"`
	GeneratedAtMilli int64             `json:"generated_at"`
}

// WriteText prints the human-readable report.
func (r *Report) WriteText(w io.Writer) {
	for _, v := range r.Violations {
		fmt.Fprintf(w, "%s:%d: %s (%s)\n", v.File, v.Line, v.Message, v.RuleID)
	}
	fmt.Fprintf(w, "\n%d files, %d components, %d violations\n", r.Files, r.Components, len(r.Violations))
}

// SaveJSON validates the report against the embedded schema and writes
// it to path. Validation failing means the report builder has a bug;
// nothing is written in that case.
func (r *Report) SaveJSON(path string) error {
	if r.Violations == nil {
		r.Violations = []rules.Violation{}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	if err := Validate(data); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks raw JSON against the report schema.
func Validate(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("report.schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("failed to load report schema: %w", err)
	}
	schema, err := compiler.Compile("report.schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile report schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("report does not match schema: %w", err)
	}
	return nil
}
