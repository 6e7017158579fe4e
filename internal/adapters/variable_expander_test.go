package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYumVariableExpanderSubstitutesKnownVariables(t *testing.T) {
	expander := YumVariableExpanderAdapter{Arch: "x86_64", BaseArch: "x86_64", ReleaseVersion: "9"}
	result, err := expander.Expand("https://mirror.example/$releasever/$basearch/os/$arch")
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example/9/x86_64/os/x86_64", result)
}

func TestYumVariableExpanderLeavesUnknownTokensAlone(t *testing.T) {
	expander := YumVariableExpanderAdapter{Arch: "x86_64", BaseArch: "x86_64"}
	result, err := expander.Expand("https://mirror.example/$contentdir/os")
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example/$contentdir/os", result)
}

func TestYumVariableExpanderErrorsOnUnconfiguredReleasever(t *testing.T) {
	expander := YumVariableExpanderAdapter{Arch: "x86_64", BaseArch: "x86_64"}
	_, err := expander.Expand("https://mirror.example/$releasever/os")
	require.Error(t, err)
}

func TestYumVariableExpanderNoVariablesNoError(t *testing.T) {
	expander := NewYumVariableExpanderAdapter()
	result, err := expander.Expand("https://mirror.example/static/os")
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example/static/os", result)
}
