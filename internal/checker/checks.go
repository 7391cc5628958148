package checker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vvka-141/xsdver/pkg/xsdver"
)

// ReleaseVersionPattern is the shape a released version attribute must start
// with: MAJOR.MINOR.PATCH, MAJOR.MINOR-alpha.N or MAJOR.MINOR-beta.N.
const ReleaseVersionPattern = `[0-9]+\.[0-9]+(\.[0-9]+|-(alpha|beta)\.[0-9]+)`

// Anchored at the start only; anything may follow the release shape.
var releaseVersionRegex = regexp.MustCompile(`^` + ReleaseVersionPattern)

// Check is one named assertion over an Input.
type Check struct {
	Name string
	Kind Kind
	// When reports whether the check applies; nil means always.
	When func(in Input) bool
	// Eval returns an empty string on success or the failure message.
	Eval func(in Input) string
}

// NormalizeSuppliedVersion strips a single leading 'v'.
func NormalizeSuppliedVersion(v string) string {
	return strings.TrimPrefix(v, "v")
}

// IsSnapshot reports whether v ends with the snapshot marker.
func IsSnapshot(v, marker string) bool {
	if marker == "" {
		marker = xsdver.DefaultSnapshotMarker
	}
	return strings.HasSuffix(v, marker)
}

// MatchesReleaseShape reports whether v begins with a release version.
func MatchesReleaseShape(v string) bool {
	return releaseVersionRegex.MatchString(v)
}

// releasing reports whether a non-snapshot build version was supplied.
func releasing(in Input) bool {
	return in.SuppliedVersion != "" && !IsSnapshot(in.SuppliedVersion, in.SnapshotMarker)
}

// Checks returns the ordered check list.
func Checks() []Check {
	return []Check{
		{
			Name: "planned-version",
			Kind: Fatal,
			When: releasing,
			Eval: func(in Input) string {
				if in.Versions.Version != in.SuppliedVersion {
					return fmt.Sprintf("version attribute and planned version do not match (%q, %q)",
						in.Versions.Version, in.SuppliedVersion)
				}
				return ""
			},
		},
		{
			Name: "release-shape",
			Kind: Fatal,
			When: releasing,
			Eval: func(in Input) string {
				if !MatchesReleaseShape(in.Versions.Version) {
					return fmt.Sprintf("version attribute does not match the valid regex (%q, %q)",
						in.Versions.Version, ReleaseVersionPattern)
				}
				return ""
			},
		},
		{
			// The namespace is only bumped on breaking changes; a mismatch warns.
			Name: "namespace-prefix",
			Kind: Advisory,
			When: releasing,
			Eval: func(in Input) string {
				if !strings.HasPrefix(in.Versions.Version, in.Versions.TargetNamespace) {
					return fmt.Sprintf("major version of the version attribute %s does not match the targetNamespace version %s",
						in.Versions.Version, in.Versions.TargetNamespace)
				}
				return ""
			},
		},
		{
			Name: "namespace",
			Kind: Fatal,
			Eval: func(in Input) string {
				if in.Versions.Namespace != in.Versions.TargetNamespace {
					return fmt.Sprintf("namespace version and targetNamespace version do not match (%q, %q)",
						in.Versions.Namespace, in.Versions.TargetNamespace)
				}
				return ""
			},
		},
		{
			Name: "id",
			Kind: Fatal,
			Eval: func(in Input) string {
				if in.Versions.Version != in.Versions.ID {
					return fmt.Sprintf("version attribute and id attribute do not match (%q, %q)",
						in.Versions.Version, in.Versions.ID)
				}
				return ""
			},
		},
	}
}

// Evaluate runs every check against in without short-circuiting.
func Evaluate(in Input) []Result {
	checks := Checks()
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		res := Result{Name: c.Name, Kind: c.Kind}
		if c.When != nil && !c.When(in) {
			res.Skipped = true
			results = append(results, res)
			continue
		}
		res.Message = c.Eval(in)
		res.Passed = res.Message == ""
		results = append(results, res)
	}
	return results
}
