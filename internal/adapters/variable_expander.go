package adapters

import (
	"runtime"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rpm-solv/internal/types"
)

// YumVariableExpanderAdapter implements ports.VariableExpanderPort,
// substituting the handful of variables YUM/DNF baseurl templates use:
// $arch, $basearch, and $releasever. A template that uses $releasever
// while ReleaseVersion is empty is treated as a config error, the same
// class of failure the teacher's initConfig raises for an unreadable
// config file; empty Arch or BaseArch values are substituted as-is.
type YumVariableExpanderAdapter struct {
	Arch           string
	BaseArch       string
	ReleaseVersion string
}

// NewYumVariableExpanderAdapter builds an adapter defaulting Arch and
// BaseArch from the running GOARCH and ReleaseVersion to empty (callers
// needing exact RPM arch names, e.g. "x86_64", or a specific
// releasever should override the returned value's fields directly).
func NewYumVariableExpanderAdapter() YumVariableExpanderAdapter {
	return YumVariableExpanderAdapter{
		Arch:     runtime.GOARCH,
		BaseArch: runtime.GOARCH,
	}
}

// Expand replaces $arch, $basearch, and $releasever in template. Any
// other "$name" token is left untouched — spec.md scopes variable
// expansion to exactly these three.
func (a YumVariableExpanderAdapter) Expand(template string) (string, error) {
	if strings.Contains(template, "$releasever") && a.ReleaseVersion == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(types.ErrPrefixInvalidConfig + ": $releasever used but not configured")
	}
	result := template
	result = strings.ReplaceAll(result, "$releasever", a.ReleaseVersion)
	result = strings.ReplaceAll(result, "$basearch", a.BaseArch)
	result = strings.ReplaceAll(result, "$arch", a.Arch)
	return result, nil
}
