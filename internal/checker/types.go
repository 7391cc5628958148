package checker

import (
	"fmt"

	"github.com/vvka-141/xsdver/internal/schema"
	"github.com/vvka-141/xsdver/pkg/xsdver"
)

// Kind tags a check as fatal or advisory.
type Kind int

const (
	// Fatal checks abort the run when they fail.
	Fatal Kind = iota
	// Advisory checks only produce a warning when they fail.
	Advisory
)

func (k Kind) String() string {
	switch k {
	case Fatal:
		return "fatal"
	case Advisory:
		return "advisory"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of one check.
type Result struct {
	Name    string
	Kind    Kind
	Passed  bool
	Skipped bool
	Message string
}

// Failed reports whether the check ran and did not pass.
func (r Result) Failed() bool {
	return !r.Skipped && !r.Passed
}

// Input is everything the checks look at.
type Input struct {
	Versions schema.Versions
	// SuppliedVersion is the normalized build version; empty means absent.
	SuppliedVersion string
	// SnapshotMarker defaults to xsdver.DefaultSnapshotMarker when empty.
	SnapshotMarker string
}

// Report collects the inputs and results of one run.
type Report struct {
	SchemaPath      string
	SchemaSHA256    string
	SuppliedVersion string
	Versions        *schema.Versions
	Results         []Result
}

// FirstFatal returns the first failed fatal result, or nil.
func (r *Report) FirstFatal() *Result {
	for i := range r.Results {
		if r.Results[i].Kind == Fatal && r.Results[i].Failed() {
			return &r.Results[i]
		}
	}
	return nil
}

// Warnings returns every failed advisory result in check order.
func (r *Report) Warnings() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Kind == Advisory && res.Failed() {
			out = append(out, res)
		}
	}
	return out
}

// Passed reports whether the versions were extracted and no fatal check failed.
func (r *Report) Passed() bool {
	return r.Versions != nil && r.FirstFatal() == nil
}

// MismatchError is returned for a failed fatal check.
// It wraps xsdver.ErrVersionMismatch.
type MismatchError struct {
	Check   string
	Message string
}

func (e *MismatchError) Error() string {
	return e.Message
}

func (e *MismatchError) Unwrap() error {
	return xsdver.ErrVersionMismatch
}
