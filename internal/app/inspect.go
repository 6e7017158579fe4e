package app

import (
	"context"
	"sort"

	"rpm-solv/internal/types"
)

// Inspect summarizes a repository: how many packages it has and which
// capabilities referenced by some requires/conflicts/obsoletes entry
// have no provider anywhere in the repo. The latter is the most common
// reason a seemingly-reasonable package turns out unsatisfiable, so
// surfacing it directly saves a trip through --trace.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	repo, _, err := s.loadRepoIndex(ctx, repoSourceRequest{
		XMLPath:  req.XMLPath,
		BaseURL:  req.BaseURL,
		RepoFile: req.RepoFile,
		RepoName: req.RepoName,
	})
	if err != nil {
		return InspectResult{}, err
	}

	names := make([]string, 0, repo.Len())
	for _, pkg := range repo.Packages() {
		names = append(names, pkg.Name)
	}
	sort.Strings(names)

	unprovided := map[string]struct{}{}
	for id := 0; id < repo.Len(); id++ {
		pid := types.PackageID(id)
		for _, entry := range repo.RequiresOf(pid) {
			if len(repo.ProvidersOf(entry)) == 0 {
				unprovided[entry.Name] = struct{}{}
			}
		}
		for _, entry := range repo.ConflictsOf(pid) {
			if len(repo.ProvidersOf(entry)) == 0 {
				unprovided[entry.Name] = struct{}{}
			}
		}
		for _, entry := range repo.ObsoletesOf(pid) {
			if len(repo.ProvidersOf(entry)) == 0 {
				unprovided[entry.Name] = struct{}{}
			}
		}
	}
	unprovidedList := make([]string, 0, len(unprovided))
	for name := range unprovided {
		unprovidedList = append(unprovidedList, name)
	}
	sort.Strings(unprovidedList)

	return InspectResult{
		PackageCount:           repo.Len(),
		PackageNames:           names,
		UnprovidedCapabilities: unprovidedList,
	}, nil
}
