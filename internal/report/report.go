// Package report renders a checker.Report as a JSON document.
package report

import (
	"errors"
	"io"

	"github.com/goccy/go-json"

	"github.com/vvka-141/xsdver/internal/checker"
	"github.com/vvka-141/xsdver/pkg/xsdver"
)

// Document is the JSON shape written by Write.
type Document struct {
	SchemaPath      string      `json:"schema_path"`
	SchemaSHA256    string      `json:"schema_sha256,omitempty"`
	SuppliedVersion string      `json:"supplied_version,omitempty"`
	Versions        *Versions   `json:"versions,omitempty"`
	Checks          []CheckItem `json:"checks"`
	Passed          bool        `json:"passed"`
	Error           string      `json:"error,omitempty"`
	ExitCode        int         `json:"exit_code"`
}

// Versions mirrors schema.Versions with JSON names.
type Versions struct {
	Namespace       string `json:"namespace"`
	TargetNamespace string `json:"target_namespace"`
	Version         string `json:"version"`
	ID              string `json:"id"`
}

// CheckItem is one check result.
type CheckItem struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Build converts a run's report and error into a Document.
// r may be nil when the run failed before the schema was read.
func Build(schemaPath string, r *checker.Report, runErr error) Document {
	doc := Document{
		SchemaPath: schemaPath,
		Checks:     []CheckItem{},
		ExitCode:   xsdver.ExitCodeForError(runErr),
	}
	if runErr != nil {
		doc.Error = runErr.Error()
	}
	if r == nil {
		return doc
	}

	doc.SchemaSHA256 = r.SchemaSHA256
	doc.SuppliedVersion = r.SuppliedVersion
	if r.Versions != nil {
		doc.Versions = &Versions{
			Namespace:       r.Versions.Namespace,
			TargetNamespace: r.Versions.TargetNamespace,
			Version:         r.Versions.Version,
			ID:              r.Versions.ID,
		}
	}
	for _, res := range r.Results {
		doc.Checks = append(doc.Checks, CheckItem{
			Name:    res.Name,
			Kind:    res.Kind.String(),
			Status:  status(res),
			Message: res.Message,
		})
	}
	doc.Passed = runErr == nil && r.Passed()
	return doc
}

// Write encodes doc as indented JSON followed by a newline.
func Write(w io.Writer, doc Document) error {
	if w == nil {
		return errors.New("report: nil writer")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func status(r checker.Result) string {
	switch {
	case r.Skipped:
		return "skipped"
	case r.Passed:
		return "passed"
	case r.Kind == checker.Advisory:
		return "warning"
	default:
		return "failed"
	}
}
