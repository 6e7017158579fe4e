// Package core holds the dependency-closure-to-CNF encoding and the
// solver driver that sits on top of it. Neither type needs a port: both
// are pure over internal/types plus the gophersat library, mirroring how
// the teacher's resolver wires its SAT backend directly rather than
// behind an interface.
package core

import "rpm-solv/internal/types"

// Encoder walks the reachable closure of a RepoIndex from a root package
// and emits a CNF formula encoding RPM's requires/conflicts/obsoletes
// semantics over that closure (spec.md §5). It holds no state of its
// own; every call to Encode starts a fresh BFS.
type Encoder struct{}

// NewEncoder constructs an Encoder.
func NewEncoder() Encoder {
	return Encoder{}
}

// Encode performs a breadth-first traversal starting at root, visiting
// every package transitively reachable through requires/conflicts/
// obsoletes provider lists, and returns the CNF formula covering exactly
// that reachable set. Restricting the formula to the reachable closure
// keeps its size proportional to what the root actually depends on,
// rather than the whole repository (spec.md §5.1).
//
// Clause shapes, one package p at a time:
//   - requires entry with providers q1..qn: (¬p ∨ q1 ∨ ... ∨ qn).
//     No providers: unit clause (¬p) — p cannot be installed.
//   - conflicts entry with providers q1..qn: (¬p ∨ q1 ∨ ... ∨ qn), the
//     same shape as requires. This mirrors the source's own conflicts
//     encoding; see DESIGN.md for why it is kept rather than corrected.
//     No providers: no clause is emitted, same as obsoletes — there is
//     nothing to rule out.
//   - obsoletes entry with providers q1..qn: (¬p ∨ ¬q1 ∨ ... ∨ ¬qn). No
//     providers: no clause is emitted at all.
func (Encoder) Encode(repo *types.RepoIndex, root types.PackageID) types.CNFFormula {
	visited := map[types.PackageID]bool{root: true}
	queue := []types.PackageID{root}
	var clauses []types.Clause

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		p := types.NegatedPackageLiteral(id)

		for _, entry := range repo.RequiresOf(id) {
			providers := repo.ProvidersOf(entry)
			clause := make(types.Clause, 0, len(providers)+1)
			clause = append(clause, p)
			for _, q := range providers {
				clause = append(clause, types.PackageLiteral(q))
				enqueue(&queue, visited, q)
			}
			clauses = append(clauses, clause)
		}

		for _, entry := range repo.ConflictsOf(id) {
			providers := repo.ProvidersOf(entry)
			if len(providers) == 0 {
				continue
			}
			clause := make(types.Clause, 0, len(providers)+1)
			clause = append(clause, p)
			for _, q := range providers {
				clause = append(clause, types.PackageLiteral(q))
				enqueue(&queue, visited, q)
			}
			clauses = append(clauses, clause)
		}

		for _, entry := range repo.ObsoletesOf(id) {
			providers := repo.ProvidersOf(entry)
			if len(providers) == 0 {
				continue
			}
			clause := make(types.Clause, 0, len(providers)+1)
			clause = append(clause, p)
			for _, q := range providers {
				clause = append(clause, types.NegatedPackageLiteral(q))
				enqueue(&queue, visited, q)
			}
			clauses = append(clauses, clause)
		}
	}

	return types.CNFFormula{Clauses: clauses, NumVars: repo.Len()}
}

func enqueue(queue *[]types.PackageID, visited map[types.PackageID]bool, id types.PackageID) {
	if visited[id] {
		return
	}
	visited[id] = true
	*queue = append(*queue, id)
}
