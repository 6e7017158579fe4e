// Package types holds the plain data model for rpm-solv: the shape of a
// parsed primary.xml package record and the dense integer identity
// (PackageID) that doubles as a SAT variable index.
package types

// Version is an RPM epoch/version/release triple. It is stored on every
// Package but never consulted by the encoder (spec non-goal: no
// version-aware resolution).
type Version struct {
	Epoch int
	Ver   string
	Rel   string
}

// ConstraintFlag is the RPM version-comparison operator recorded on an
// Entry. It is carried as data only; matching is by capability name alone.
type ConstraintFlag string

const (
	FlagNone ConstraintFlag = ""
	FlagEQ   ConstraintFlag = "EQ"
	FlagLT   ConstraintFlag = "LT"
	FlagLE   ConstraintFlag = "LE"
	FlagGT   ConstraintFlag = "GT"
	FlagGE   ConstraintFlag = "GE"
)

// Entry is a single capability reference inside a provides/requires/
// conflicts/obsoletes list. Name is the sole field used for matching.
type Entry struct {
	Name  string
	Flags ConstraintFlag
	Epoch int
	Ver   string
	Rel   string
}

// Format holds the four optional ordered capability sequences of a
// package. A nil slice and an empty slice are equivalent: "absent".
type Format struct {
	Provides  []Entry
	Requires  []Entry
	Conflicts []Entry
	Obsoletes []Entry
}

// Package is one <package type="rpm"> record from primary.xml.
type Package struct {
	Name    string
	Version Version
	Format  Format
}

// PackageID is a dense non-negative integer equal to a package's index in
// the RepoIndex's package vector, and equal to its SAT variable index
// (offset by one when bridging to a 1-indexed DIMACS solver — see
// core.SolverDriver).
type PackageID int
