package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkTestPrimaryXML = `<?xml version="1.0" encoding="UTF-8"?>
<metadata xmlns="http://linux.duke.edu/metadata/common" xmlns:rpm="http://linux.duke.edu/metadata/rpm" packages="2">
  <package type="rpm">
    <name>app</name>
    <version epoch="0" ver="1.0" rel="1"/>
    <format>
      <rpm:requires>
        <rpm:entry name="lib"/>
      </rpm:requires>
    </format>
  </package>
  <package type="rpm">
    <name>lib</name>
    <version epoch="0" ver="1.0" rel="1"/>
  </package>
</metadata>
`

func writeTestPrimaryXML(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "primary.xml")
	require.NoError(t, os.WriteFile(path, []byte(checkTestPrimaryXML), 0644))
	return path
}

func TestCheckSatisfiablePackage(t *testing.T) {
	service := NewService()
	result, err := service.Check(t.Context(), CheckRequest{
		PackageName: "app",
		XMLPath:     writeTestPrimaryXML(t),
	})
	require.NoError(t, err)
	assert.True(t, result.Satisfiable)
	assert.Equal(t, "app", result.PackageName)
}

func TestCheckTraceReportsRootPackageName(t *testing.T) {
	service := NewService()
	result, err := service.Check(t.Context(), CheckRequest{
		PackageName: "app",
		XMLPath:     writeTestPrimaryXML(t),
		Trace:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "app", result.TracedPackage)
}

func TestCheckPackageNotFound(t *testing.T) {
	service := NewService()
	_, err := service.Check(t.Context(), CheckRequest{
		PackageName: "missing",
		XMLPath:     writeTestPrimaryXML(t),
	})
	require.Error(t, err)
}

func TestCheckNoSourceGivenIsAnError(t *testing.T) {
	service := NewService()
	_, err := service.Check(t.Context(), CheckRequest{PackageName: "app"})
	require.Error(t, err)
}
