package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/schemas/detection.xsd", []byte("<xs:schema/>")))

	content, err := mfs.ReadFile("/schemas/detection.xsd")
	require.NoError(t, err)
	assert.Equal(t, "<xs:schema/>", string(content))
}

func TestMemoryFileSystem_ReadFile_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem()

	_, err := mfs.ReadFile("/missing.xsd")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestIsRegularFile(t *testing.T) {
	mfs := NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/schemas/detection.xsd", []byte("x")))
	require.NoError(t, mfs.Mkdir("/schemas/sub"))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", "/schemas/detection.xsd", true},
		{"directory", "/schemas/sub", false},
		{"missing", "/schemas/nope.xsd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsRegularFile(mfs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "detection.xsd")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	osfs := NewOSFileSystem()
	ok, err := IsRegularFile(osfs, path)
	require.NoError(t, err)
	assert.True(t, ok)

	content, err := osfs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))

	ok, err = IsRegularFile(osfs, dir)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAferoFileSystem_WrapsExistingFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/schemas/detection.xsd", []byte("<xs:schema/>"), 0o644))

	ro := NewAferoFileSystem(afero.NewReadOnlyFs(base))

	content, err := ro.ReadFile("/schemas/detection.xsd")
	require.NoError(t, err)
	assert.Equal(t, "<xs:schema/>", string(content))

	ok, err := IsRegularFile(ro, "/schemas/detection.xsd")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Error(t, ro.WriteFile("/schemas/other.xsd", []byte("x")))
}
