package types

// RepoIndex owns the package vector and the providers index built from
// it (spec.md §3). It is immutable once constructed — adapters build it,
// core borrows it read-only for the BFS encoding pass and the solver
// driver's root lookup.
type RepoIndex struct {
	packages  []Package
	providers map[string][]PackageID
}

// NewRepoIndex builds a RepoIndex from an already-parsed package vector.
// It owns the construction algorithm from spec.md §4.2: for every
// package, append its index to providers[name] for each declared
// provides entry, then append the implicit self-provide (the package's
// own name) if it is not already the last entry recorded for that name.
// Insertion order follows package id order, then provides-entry order,
// so the resulting providers lists — and therefore all downstream CNF
// clause literal orders — are deterministic.
func NewRepoIndex(packages []Package) *RepoIndex {
	providers := make(map[string][]PackageID, len(packages))
	for i, pkg := range packages {
		id := PackageID(i)
		for _, entry := range pkg.Format.Provides {
			providers[entry.Name] = append(providers[entry.Name], id)
		}
		list := providers[pkg.Name]
		if len(list) == 0 || list[len(list)-1] != id {
			providers[pkg.Name] = append(list, id)
		}
	}
	return &RepoIndex{packages: packages, providers: providers}
}

// Packages returns the package vector by reference (callers must not
// mutate it).
func (r *RepoIndex) Packages() []Package {
	return r.packages
}

// Len returns the number of packages in the index, i.e. the dense range
// of valid PackageIDs is [0, Len()).
func (r *RepoIndex) Len() int {
	return len(r.packages)
}

// Package returns the package at id. The caller must ensure id is valid;
// all core callers obtain ids exclusively from FindByName or from
// providers lists this RepoIndex itself produced.
func (r *RepoIndex) Package(id PackageID) Package {
	return r.packages[id]
}

// FindByName returns the lowest PackageID whose package name matches
// exactly, or NotFound. A linear scan is acceptable per spec.md §4.2;
// determinism requires the lowest id on ties (there are no ties under
// normal primary.xml input, since package names are unique, but the
// contract holds regardless).
func (r *RepoIndex) FindByName(name string) (PackageID, bool) {
	for i, pkg := range r.packages {
		if pkg.Name == name {
			return PackageID(i), true
		}
	}
	return 0, false
}

// RequiresOf returns the requires entries of the package at id, or an
// empty slice if its format has no requires section.
func (r *RepoIndex) RequiresOf(id PackageID) []Entry {
	return r.packages[id].Format.Requires
}

// ConflictsOf returns the conflicts entries of the package at id, or an
// empty slice if its format has no conflicts section.
func (r *RepoIndex) ConflictsOf(id PackageID) []Entry {
	return r.packages[id].Format.Conflicts
}

// ObsoletesOf returns the obsoletes entries of the package at id, or an
// empty slice if its format has no obsoletes section.
func (r *RepoIndex) ObsoletesOf(id PackageID) []Entry {
	return r.packages[id].Format.Obsoletes
}

// ProvidersOf looks up the providers of a capability by entry.Name only;
// version/flag fields on the entry are ignored per spec.md §4.2. Returns
// nil if there is no provider.
func (r *RepoIndex) ProvidersOf(entry Entry) []PackageID {
	return r.providers[entry.Name]
}
