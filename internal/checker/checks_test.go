package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xsdver/internal/schema"
)

func consistentVersions() schema.Versions {
	return schema.Versions{Namespace: "7", TargetNamespace: "7", Version: "7.2.0", ID: "7.2.0"}
}

func TestNormalizeSuppliedVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v7.2.0", "7.2.0"},
		{"7.2.0", "7.2.0"},
		{"vv7.2.0", "v7.2.0"},
		{"7.2.0-SNAPSHOT", "7.2.0-SNAPSHOT"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSuppliedVersion(tt.in))
		})
	}
}

func TestIsSnapshot(t *testing.T) {
	assert.True(t, IsSnapshot("7.2.0-SNAPSHOT", ""))
	assert.True(t, IsSnapshot("SNAPSHOT", ""))
	assert.False(t, IsSnapshot("7.2.0-SNAPSHOT.1", ""))
	assert.False(t, IsSnapshot("7.2.0-snapshot", ""))
	assert.True(t, IsSnapshot("7.2.0-dev", "-dev"))
}

func TestMatchesReleaseShape(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"7.2.0", true},
		{"0.0.0", true},
		{"10.20.30", true},
		{"7.2-alpha.1", true},
		{"7.2-beta.12", true},
		{"7.2", false},
		{"7", false},
		{"7.2.0-beta.1", true},
		{"7.2.0-rc.1", true},
		{"7.2.0.1", true},
		{"7.2.0-SNAPSHOT", true},
		{"7.2-rc.1", false},
		{"7.2-alpha", false},
		{"7.2.x", false},
		{"v7.2.0", false},
		{" 7.2.0", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesReleaseShape(tt.version))
		})
	}
}

func TestChecks_Order(t *testing.T) {
	var names []string
	var kinds []Kind
	for _, c := range Checks() {
		names = append(names, c.Name)
		kinds = append(kinds, c.Kind)
	}

	assert.Equal(t, []string{"planned-version", "release-shape", "namespace-prefix", "namespace", "id"}, names)
	assert.Equal(t, []Kind{Fatal, Fatal, Advisory, Fatal, Fatal}, kinds)
}

func TestEvaluate_NoSuppliedVersionSkipsPlannedChecks(t *testing.T) {
	results := Evaluate(Input{Versions: consistentVersions()})
	require.Len(t, results, 5)

	for _, r := range results[:3] {
		assert.True(t, r.Skipped, r.Name)
		assert.False(t, r.Failed(), r.Name)
	}
	for _, r := range results[3:] {
		assert.False(t, r.Skipped, r.Name)
		assert.True(t, r.Passed, r.Name)
	}
}

func TestEvaluate_SnapshotSkipsPlannedChecks(t *testing.T) {
	v := consistentVersions()
	v.Version, v.ID = "not a version", "not a version"

	results := Evaluate(Input{Versions: v, SuppliedVersion: "9.9.9-SNAPSHOT"})
	for _, r := range results[:3] {
		assert.True(t, r.Skipped, r.Name)
	}
}

func TestEvaluate_EvaluatesEveryCheck(t *testing.T) {
	v := schema.Versions{Namespace: "6", TargetNamespace: "7", Version: "8.0", ID: "8.1"}

	results := Evaluate(Input{Versions: v, SuppliedVersion: "9.0.0"})
	require.Len(t, results, 5)
	for _, r := range results {
		assert.True(t, r.Failed(), r.Name)
		assert.NotEmpty(t, r.Message, r.Name)
	}
}

func TestEvaluate_Messages(t *testing.T) {
	v := schema.Versions{Namespace: "6", TargetNamespace: "7", Version: "7.2.0", ID: "7.1.0"}

	results := Evaluate(Input{Versions: v, SuppliedVersion: "7.3.0"})
	byName := map[string]Result{}
	for _, r := range results {
		byName[r.Name] = r
	}

	assert.Equal(t, `version attribute and planned version do not match ("7.2.0", "7.3.0")`, byName["planned-version"].Message)
	assert.True(t, byName["release-shape"].Passed)
	assert.True(t, byName["namespace-prefix"].Passed)
	assert.Equal(t, `namespace version and targetNamespace version do not match ("6", "7")`, byName["namespace"].Message)
	assert.Equal(t, `version attribute and id attribute do not match ("7.2.0", "7.1.0")`, byName["id"].Message)
}

func TestReport_FirstFatalAndWarnings(t *testing.T) {
	report := &Report{
		Versions: &schema.Versions{},
		Results: []Result{
			{Name: "a", Kind: Advisory, Message: "first warning"},
			{Name: "b", Kind: Fatal, Passed: true},
			{Name: "c", Kind: Fatal, Message: "first fatal"},
			{Name: "d", Kind: Advisory, Message: "second warning"},
			{Name: "e", Kind: Fatal, Message: "second fatal"},
			{Name: "f", Kind: Fatal, Skipped: true},
		},
	}

	fatal := report.FirstFatal()
	require.NotNil(t, fatal)
	assert.Equal(t, "c", fatal.Name)

	warnings := report.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "first warning", warnings[0].Message)
	assert.Equal(t, "second warning", warnings[1].Message)
	assert.False(t, report.Passed())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "fatal", Fatal.String())
	assert.Equal(t, "advisory", Advisory.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}
