package app

// CheckRequest names the package to check and where its repository
// metadata comes from. Exactly one of XMLPath or BaseURL should be set;
// RepoFile names a .repo file to resolve BaseURL from when both are
// empty.
type CheckRequest struct {
	PackageName string
	XMLPath     string
	BaseURL     string
	RepoFile    string
	RepoName    string
	Trace       bool
}

// CheckResult reports the satisfiability verdict plus, when Trace was
// requested, the name of the root package resolved along the way, so the
// CLI can render a trace line without re-deriving it.
type CheckResult struct {
	PackageName   string
	Satisfiable   bool
	ResolvedRepo  string
	TracedPackage string
}

// InspectRequest names the repository source to summarize.
type InspectRequest struct {
	XMLPath  string
	BaseURL  string
	RepoFile string
	RepoName string
}

// InspectResult is a diagnostic summary of a RepoIndex: total package
// count, and capabilities with no provider (a common cause of an
// otherwise-surprising unsat result).
type InspectResult struct {
	PackageCount           int
	PackageNames           []string
	UnprovidedCapabilities []string
}
