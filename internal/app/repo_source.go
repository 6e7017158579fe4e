package app

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rpm-solv/internal/types"
)

// repoSourceRequest is the subset of fields every operation needs to
// locate one repository's primary.xml, regardless of whether it came
// from a literal file, a base URL, or a .repo file entry.
type repoSourceRequest struct {
	XMLPath  string
	BaseURL  string
	RepoFile string
	RepoName string
}

// loadRepoIndex resolves req to a primary.xml document and parses it
// into a *types.RepoIndex, trying XMLPath, then BaseURL, then RepoFile
// (optionally narrowed to RepoName) in that order. It returns the base
// URL actually used, if any, for diagnostic display.
func (s Service) loadRepoIndex(ctx context.Context, req repoSourceRequest) (*types.RepoIndex, string, error) {
	if strings.TrimSpace(req.XMLPath) != "" {
		raw, err := os.ReadFile(req.XMLPath)
		if err != nil {
			return nil, "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(types.ErrPrefixIoError + ": failed to read primary.xml file").
				WithCause(err)
		}
		repo, err := s.PrimaryParser.Parse(string(raw))
		if err != nil {
			return nil, "", err
		}
		return repo, "", nil
	}

	baseURL := strings.TrimSpace(req.BaseURL)
	if baseURL == "" && strings.TrimSpace(req.RepoFile) != "" {
		resolved, err := s.resolveBaseURLFromRepoFile(req.RepoFile, req.RepoName)
		if err != nil {
			return nil, "", err
		}
		baseURL = resolved
	}
	if baseURL == "" {
		return nil, "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(types.ErrPrefixInvalidConfig + ": no primary.xml source given (xml path, base url, or .repo file)")
	}

	expanded, err := s.VarExpander.Expand(baseURL)
	if err != nil {
		return nil, "", err
	}
	xmlText, err := s.MetadataFetcher.Fetch(ctx, expanded)
	if err != nil {
		return nil, "", err
	}
	repo, err := s.PrimaryParser.Parse(xmlText)
	if err != nil {
		return nil, "", err
	}
	return repo, expanded, nil
}

func (s Service) resolveBaseURLFromRepoFile(path string, repoName string) (string, error) {
	entries, err := s.RepoConfig.Read(path)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(types.ErrPrefixNotFound + ": .repo file declares no usable sections")
	}
	if repoName == "" {
		return entries[0].BaseURL, nil
	}
	for _, entry := range entries {
		if entry.Name == repoName {
			return entry.BaseURL, nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(types.ErrPrefixNotFound + ": repo section " + repoName + " not found")
}
