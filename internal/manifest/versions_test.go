package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVersionSpec(t *testing.T) {
	valid := []string{
		"latest", "next", "beta", "*", "",
		"1.2.3", "^1.2.3", "~0.4", ">=24", ">=1.0.0 <2.0.0", "1.x", "^1 || ^2",
		"file:../lib", "workspace:*", "github:user/repo", "npm:other@1",
	}
	for _, spec := range valid {
		assert.NoError(t, CheckVersionSpec(spec), "spec %q", spec)
	}

	invalid := []string{"!!broken", "latest please", "^^^"}
	for _, spec := range invalid {
		assert.Error(t, CheckVersionSpec(spec), "spec %q", spec)
	}
}

func TestCheckVersions(t *testing.T) {
	m, err := Parse([]byte(`{"devDependencies": {"zod": "!!broken", "jest": "latest", "alpha": "latest please"}}`))
	require.NoError(t, err)

	issues := CheckVersions(m)
	require.Len(t, issues, 2)
	assert.Equal(t, "alpha", issues[0].Package)
	assert.Equal(t, "zod", issues[1].Package)
	assert.Contains(t, issues[1].String(), `devDependencies/zod: invalid version "!!broken"`)
}

func TestCheckVersions_NoDependencies(t *testing.T) {
	m, err := Parse([]byte(`{"devDependencies": ["not", "an", "object"]}`))
	require.NoError(t, err)
	assert.Empty(t, CheckVersions(m))
	assert.Empty(t, CheckVersions(New()))
}
