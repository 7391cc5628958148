package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xsdver/internal/config"
)

func resetCheckFlags() {
	checkFlags = checkFlagValues{}
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
}

// executeRoot runs the root command in an isolated working directory with
// the XSDVER_* environment cleared.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetCheckFlags()
	t.Cleanup(resetCheckFlags)

	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// isolate moves the test into an empty working directory and clears the
// XSDVER_* environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvVersion, "")
	t.Setenv(config.EnvSchema, "")
	return dir
}

func schemaText(namespace, targetNamespace, version, id string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns:det="detection:` + namespace + `"
    targetNamespace="detection:` + targetNamespace + `"
    version="` + version + `"
    id="` + id + `">
  <xs:element name="detections" type="xs:string"/>
</xs:schema>
`
}

func writeSchema(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func writeScenarioSchema(t *testing.T, dir string) string {
	return writeSchema(t, dir, "detection.xsd", schemaText("7", "7", "7.2.0", "detection-v7.2.0"))
}
