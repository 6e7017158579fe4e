package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRepoFile = `[base]
name=CentOS Stream 9 - Base
baseurl=https://mirror.example/centos/9/BaseOS/$basearch/os
enabled=1

[updates]
name=CentOS Stream 9 - Updates
baseurl=https://mirror.example/centos/9/AppStream/$basearch/os
enabled=1

[disabled-no-url]
name=Section without a baseurl
enabled=0
`

func writeTestRepoFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "centos.repo")
	require.NoError(t, os.WriteFile(path, []byte(testRepoFile), 0644))
	return path
}

func TestViperRepoConfigAdapterReadsSections(t *testing.T) {
	adapter := NewViperRepoConfigAdapter()
	entries, err := adapter.Read(writeTestRepoFile(t))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "base", entries[0].Name)
	assert.Equal(t, "updates", entries[1].Name)
}

func TestViperRepoConfigAdapterSkipsSectionsWithoutBaseURL(t *testing.T) {
	adapter := NewViperRepoConfigAdapter()
	entries, err := adapter.Read(writeTestRepoFile(t))
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEqual(t, "disabled-no-url", entry.Name)
	}
}

func TestViperRepoConfigAdapterMissingFile(t *testing.T) {
	adapter := NewViperRepoConfigAdapter()
	_, err := adapter.Read(filepath.Join(t.TempDir(), "missing.repo"))
	require.Error(t, err)
}
