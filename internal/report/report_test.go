package report

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xsdver/internal/checker"
	"github.com/vvka-141/xsdver/internal/schema"
	"github.com/vvka-141/xsdver/pkg/xsdver"
)

func TestBuild_Success(t *testing.T) {
	r := &checker.Report{
		SchemaPath:      "detection.xsd",
		SuppliedVersion: "8.0.0",
		Versions:        &schema.Versions{Namespace: "7", TargetNamespace: "7", Version: "8.0.0", ID: "8.0.0"},
		Results: []checker.Result{
			{Name: "planned-version", Kind: checker.Fatal, Passed: true},
			{Name: "namespace-prefix", Kind: checker.Advisory, Message: "major version differs"},
			{Name: "id", Kind: checker.Fatal, Skipped: true},
		},
	}

	doc := Build("detection.xsd", r, nil)

	assert.True(t, doc.Passed)
	assert.Equal(t, xsdver.ExitSuccess, doc.ExitCode)
	assert.Empty(t, doc.Error)
	require.NotNil(t, doc.Versions)
	assert.Equal(t, "8.0.0", doc.Versions.Version)
	assert.Equal(t, []CheckItem{
		{Name: "planned-version", Kind: "fatal", Status: "passed"},
		{Name: "namespace-prefix", Kind: "advisory", Status: "warning", Message: "major version differs"},
		{Name: "id", Kind: "fatal", Status: "skipped"},
	}, doc.Checks)
}

func TestBuild_NilReport(t *testing.T) {
	err := fmt.Errorf("%w: missing.xsd", xsdver.ErrSchemaNotFound)

	doc := Build("missing.xsd", nil, err)

	assert.False(t, doc.Passed)
	assert.Equal(t, xsdver.ExitSchemaNotFound, doc.ExitCode)
	assert.Equal(t, "schema file not found: missing.xsd", doc.Error)
	assert.NotNil(t, doc.Checks)
	assert.Nil(t, doc.Versions)
}

func TestWrite_JSONShape(t *testing.T) {
	doc := Build("detection.xsd", &checker.Report{
		Versions: &schema.Versions{Namespace: "7", TargetNamespace: "7", Version: "7.2.0", ID: "7.1.0"},
		Results: []checker.Result{
			{Name: "id", Kind: checker.Fatal, Message: "version attribute and id attribute do not match"},
		},
	}, &checker.MismatchError{Check: "id", Message: "version attribute and id attribute do not match"})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "detection.xsd", decoded["schema_path"])
	assert.Equal(t, false, decoded["passed"])
	assert.Equal(t, float64(xsdver.ExitVersionMismatch), decoded["exit_code"])
	assert.NotContains(t, decoded, "supplied_version")

	versions := decoded["versions"].(map[string]interface{})
	assert.Equal(t, "7", versions["target_namespace"])

	checks := decoded["checks"].([]interface{})
	require.Len(t, checks, 1)
	assert.Equal(t, "failed", checks[0].(map[string]interface{})["status"])
}

func TestWrite_NilWriter(t *testing.T) {
	assert.Error(t, Write(nil, Document{}))
}
