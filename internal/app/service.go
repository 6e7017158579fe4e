package app

import (
	"rpm-solv/internal/adapters"
	"rpm-solv/internal/core"
	"rpm-solv/internal/ports"
)

// Service wires the ports and core types needed to answer a
// satisfiability query end to end, the same shape as the teacher's
// Service struct wiring ports.*Port fields to concrete adapters in
// NewService.
type Service struct {
	MetadataFetcher ports.MetadataFetcherPort
	VarExpander     ports.VariableExpanderPort
	RepoConfig      ports.RepoConfigReaderPort
	PrimaryParser   adapters.PrimaryXMLAdapter
	Solver          core.SolverDriver
}

// NewService constructs a Service with production adapters.
func NewService() Service {
	return Service{
		MetadataFetcher: adapters.NewHTTPMetadataFetcherAdapter(),
		VarExpander:     adapters.NewYumVariableExpanderAdapter(),
		RepoConfig:      adapters.NewViperRepoConfigAdapter(),
		PrimaryParser:   adapters.NewPrimaryXMLAdapter(),
		Solver:          core.NewSolverDriver(),
	}
}
