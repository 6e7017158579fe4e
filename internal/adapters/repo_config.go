package adapters

import (
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"

	"rpm-solv/internal/ports"
	"rpm-solv/internal/types"
)

// ViperRepoConfigAdapter implements ports.RepoConfigReaderPort by reading a
// .repo INI file with viper, the same config library the CLI layer uses
// for the app's own YAML config (internal/cli/root.go's initConfig).
// Viper's ini codec exposes each [section] as a nested key, so one
// section == one repo entry == one RepoConfigEntry.
type ViperRepoConfigAdapter struct{}

// NewViperRepoConfigAdapter constructs a ViperRepoConfigAdapter.
func NewViperRepoConfigAdapter() ViperRepoConfigAdapter {
	return ViperRepoConfigAdapter{}
}

// Read parses the .repo file at path and returns one entry per [section],
// sorted by name for determinism. Sections missing a baseurl key are
// skipped: spec.md's repo discovery only cares about sections it can
// resolve to a metadata location.
func (ViperRepoConfigAdapter) Read(path string) ([]ports.RepoConfigEntry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(types.ErrPrefixInvalidConfig + ": failed to read .repo file").
			WithCause(err)
	}

	names := make([]string, 0)
	for _, key := range v.AllKeys() {
		section := strings.SplitN(key, ".", 2)[0]
		if !containsString(names, section) {
			names = append(names, section)
		}
	}
	sort.Strings(names)

	entries := make([]ports.RepoConfigEntry, 0, len(names))
	for _, name := range names {
		baseurl := v.GetString(name + ".baseurl")
		if strings.TrimSpace(baseurl) == "" {
			continue
		}
		entries = append(entries, ports.RepoConfigEntry{Name: name, BaseURL: baseurl})
	}
	return entries, nil
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
