package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepoIndexImplicitSelfProvide(t *testing.T) {
	packages := []Package{
		{Name: "bash"},
		{Name: "coreutils"},
	}
	repo := NewRepoIndex(packages)

	assert.Equal(t, []PackageID{0}, repo.providers["bash"])
	assert.Equal(t, []PackageID{1}, repo.providers["coreutils"])
}

func TestNewRepoIndexExplicitProvidesThenSelf(t *testing.T) {
	packages := []Package{
		{
			Name: "glibc",
			Format: Format{
				Provides: []Entry{{Name: "libc.so.6"}},
			},
		},
	}
	repo := NewRepoIndex(packages)

	assert.Equal(t, []PackageID{0}, repo.providers["libc.so.6"])
	assert.Equal(t, []PackageID{0}, repo.providers["glibc"])
}

func TestNewRepoIndexSkipsRedundantSelfProvide(t *testing.T) {
	packages := []Package{
		{
			Name: "glibc",
			Format: Format{
				Provides: []Entry{{Name: "glibc"}},
			},
		},
	}
	repo := NewRepoIndex(packages)

	// Declared self-provide and implicit self-provide must not double up.
	assert.Equal(t, []PackageID{0}, repo.providers["glibc"])
}

func TestNewRepoIndexOrderedMultiProviders(t *testing.T) {
	packages := []Package{
		{Name: "postfix", Format: Format{Provides: []Entry{{Name: "smtpd"}}}},
		{Name: "sendmail", Format: Format{Provides: []Entry{{Name: "smtpd"}}}},
	}
	repo := NewRepoIndex(packages)

	assert.Equal(t, []PackageID{0, 1}, repo.providers["smtpd"])
}

func TestRepoIndexFindByName(t *testing.T) {
	repo := NewRepoIndex([]Package{{Name: "a"}, {Name: "b"}, {Name: "a"}})

	id, ok := repo.FindByName("b")
	require.True(t, ok)
	assert.Equal(t, PackageID(1), id)

	// Lowest id on ties.
	id, ok = repo.FindByName("a")
	require.True(t, ok)
	assert.Equal(t, PackageID(0), id)

	_, ok = repo.FindByName("missing")
	assert.False(t, ok)
}

func TestRepoIndexProvidersOfUnknownCapability(t *testing.T) {
	repo := NewRepoIndex([]Package{{Name: "a"}})
	assert.Nil(t, repo.ProvidersOf(Entry{Name: "nothing-provides-this"}))
}

func TestRepoIndexQueryAccessorsOnEmptyFormat(t *testing.T) {
	repo := NewRepoIndex([]Package{{Name: "leaf"}})
	assert.Empty(t, repo.RequiresOf(0))
	assert.Empty(t, repo.ConflictsOf(0))
	assert.Empty(t, repo.ObsoletesOf(0))
}
