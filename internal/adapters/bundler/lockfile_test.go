package bundler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/bundler"
	"go.trai.ch/relock/internal/core/domain"
)

func readLockfile(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "Gemfile.lock"))
	require.NoError(t, err)
	return string(data)
}

func TestLockfileParser_Specs(t *testing.T) {
	specs, err := bundler.NewLockfileParser().Specs(readLockfile(t))
	require.NoError(t, err)

	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name.String()+"@"+s.Version)
	}
	assert.Equal(t, []string{
		"widget@0.3.0",
		"actionpack@7.0.4",
		"nokogiri@1.15.0",
		"racc@1.7.1",
		"rack@2.2.8",
		"rack-test@2.1.0",
	}, names)

	assert.Equal(t, []domain.GemRequirement{
		{Name: domain.NewName("rack"), Requirement: "~> 2.0, >= 2.2.0"},
		{Name: domain.NewName("rack-test"), Requirement: ">= 0.6.3"},
	}, specs[1].Dependencies)
	assert.Empty(t, specs[3].Dependencies)
}

func TestLockfileParser_Dependencies(t *testing.T) {
	deps, err := bundler.NewLockfileParser().Dependencies(readLockfile(t))
	require.NoError(t, err)

	assert.Equal(t, []domain.GemRequirement{
		{Name: domain.NewName("actionpack"), Requirement: "~> 7.0"},
		{Name: domain.NewName("nokogiri")},
		{Name: domain.NewName("widget")},
	}, deps)
}

func TestLockfileParser_Empty(t *testing.T) {
	p := bundler.NewLockfileParser()

	specs, err := p.Specs("")
	require.NoError(t, err)
	assert.Empty(t, specs)

	deps, err := p.Dependencies("")
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestLockfileParser_Malformed(t *testing.T) {
	content := "GEM\n  remote: https://rubygems.org/\n  specs:\n    rack\n"

	_, err := bundler.NewLockfileParser().Specs(content)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLockfileParseFailed.Error())
}

func TestLockfileParser_DependencyBeforeSpec(t *testing.T) {
	content := "GEM\n  specs:\n      rack (>= 1)\n"

	_, err := bundler.NewLockfileParser().Specs(content)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLockfileParseFailed.Error())
}
