package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/crillab/gophersat/solver"

	"rpm-solv/internal/types"
)

// SolverDriver locates the root package by name, encodes its reachable
// dependency closure, asserts the root as installed, and asks gophersat
// whether the resulting CNF formula is satisfiable (spec.md §6). This
// wires the SAT backend directly rather than behind a port, the same
// way the teacher's resolveAptWithSolver calls into
// github.com/crillab/gophersat/solver without an intervening interface.
type SolverDriver struct {
	encoder Encoder
}

// NewSolverDriver constructs a SolverDriver with a fresh Encoder.
func NewSolverDriver() SolverDriver {
	return SolverDriver{encoder: NewEncoder()}
}

// Trace, when non-nil, receives the PackageID of the root package once it
// has been resolved, before encoding starts. It exists to support the
// --trace diagnostic surfaced by the CLI; nil is the common case.
type Trace func(root types.PackageID)

// IsSatisfiable resolves packageName against repo and reports whether
// that package can be installed without violating any requires,
// conflicts, or obsoletes constraint in its reachable closure. A name
// absent from repo yields a types.ErrPrefixNotFound error.
func (s SolverDriver) IsSatisfiable(ctx context.Context, repo *types.RepoIndex, packageName string, trace Trace) (bool, error) {
	assert.NotEmpty(ctx, packageName, "package name must not be empty")

	root, ok := repo.FindByName(packageName)
	if !ok {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(types.ErrPrefixNotFound + ": " + packageName)
	}
	if trace != nil {
		trace(root)
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	formula := s.encoder.Encode(repo, root)
	return solveCNF(formula, root)
}

// solveCNF hands a CNF formula to gophersat, with the root package
// asserted as a unit clause, and reports Sat/Unsat. NumVars from the
// formula already upper-bounds every PackageID in the repository, so
// gophersat's internal variable table is sized once per call.
func solveCNF(formula types.CNFFormula, root types.PackageID) (bool, error) {
	clauses := make([][]int, 0, len(formula.Clauses)+1)
	clauses = append(clauses, []int{int(types.PackageLiteral(root))})
	for _, clause := range formula.Clauses {
		raw := make([]int, len(clause))
		for i, lit := range clause {
			raw[i] = int(lit)
		}
		clauses = append(clauses, raw)
	}

	problem := solver.ParseSliceNb(clauses, formula.NumVars)
	sat := solver.New(problem)
	status := sat.Solve()

	switch status {
	case solver.Sat:
		return true, nil
	case solver.Unsat:
		return false, nil
	default:
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(types.ErrPrefixSolverError + ": indeterminate result")
	}
}
