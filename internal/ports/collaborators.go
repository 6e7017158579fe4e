// Package ports declares the interfaces the core and app layers depend on
// for collaborators that are out of the core's scope (spec.md §1): network
// transport, variable expansion, and .repo config parsing. The core itself
// (internal/core) needs no ports — RepoIndex, Encoder, and SolverDriver are
// pure functions/types over internal/types plus the gophersat SAT library,
// exactly as the teacher's resolver core wires gophersat directly rather
// than behind an interface.
package ports

import "context"

// MetadataFetcherPort resolves a repository base URL to the decompressed
// primary.xml text: locate repodata/repomd.xml, find the entry whose
// type=="primary", fetch location/@href joined to baseurl, and gunzip it.
type MetadataFetcherPort interface {
	Fetch(ctx context.Context, baseURL string) (string, error)
}

// VariableExpanderPort substitutes $arch, $basearch, and $releasever in a
// baseurl template before MetadataFetcherPort is invoked.
type VariableExpanderPort interface {
	Expand(template string) (string, error)
}

// RepoConfigEntry is one [section] of a .repo ini file.
type RepoConfigEntry struct {
	Name    string
	BaseURL string
}

// RepoConfigReaderPort parses INI-style .repo files into name/baseurl
// tuples.
type RepoConfigReaderPort interface {
	Read(path string) ([]RepoConfigEntry, error)
}
