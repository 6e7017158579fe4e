package app

import (
	"context"

	"rpm-solv/internal/types"
)

// Check resolves the repository named by req, encodes the reachable
// closure of req.PackageName, and reports whether it is satisfiable.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	repo, resolvedRepo, err := s.loadRepoIndex(ctx, repoSourceRequest{
		XMLPath:  req.XMLPath,
		BaseURL:  req.BaseURL,
		RepoFile: req.RepoFile,
		RepoName: req.RepoName,
	})
	if err != nil {
		return CheckResult{}, err
	}

	var traced string
	var trace func(types.PackageID)
	if req.Trace {
		trace = func(id types.PackageID) {
			traced = repo.Package(id).Name
		}
	}

	ok, err := s.Solver.IsSatisfiable(ctx, repo, req.PackageName, trace)
	if err != nil {
		return CheckResult{}, err
	}

	return CheckResult{
		PackageName:   req.PackageName,
		Satisfiable:   ok,
		ResolvedRepo:  resolvedRepo,
		TracedPackage: traced,
	}, nil
}
