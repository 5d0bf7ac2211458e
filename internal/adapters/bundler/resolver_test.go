package bundler_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/bundler"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newResolver(t *testing.T) (*bundler.Resolver, *mocks.MockProcessRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	cfg := domain.ResolverConfig{BundlerHelper: []string{"ruby", "helper.rb"}}
	return bundler.NewResolver(runner, cfg), runner
}

func testDefinition() domain.Definition {
	lock := domain.ManifestFile{Name: "Gemfile.lock", Content: "GEM\n"}
	def := domain.NewDefinition(
		domain.ManifestFile{Name: "Gemfile", Content: "gem 'rails'\n"},
		&lock,
		[]domain.Name{domain.NewName("rails")},
	)
	return def.WithRequirement(domain.NewName("rails"), "= 7.1.0")
}

func TestResolver_Resolve(t *testing.T) {
	r, runner := newResolver(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) (domain.ProcessResult, error) {
			assert.Equal(t, "ruby", cmd.Name)
			assert.Equal(t, []string{"helper.rb"}, cmd.Args)

			var req map[string]any
			require.NoError(t, json.Unmarshal(cmd.Stdin, &req))
			assert.Equal(t, "resolve", req["function"])
			args := req["args"].(map[string]any)
			assert.Equal(t, "Gemfile", args["gemfile_name"])
			assert.Equal(t, "Gemfile.lock", args["lockfile_name"])
			assert.Equal(t, []any{"rails"}, args["unlock_gems"])
			assert.Equal(t, map[string]any{"rails": "= 7.1.0"}, args["requirements"])

			return domain.ProcessResult{
				Output: "warning: something\n" + `{"result":[{"name":"rails","version":"7.1.0"},{"name":"Rack","version":"3.0.0"}]}`,
			}, nil
		})

	specs, err := r.Resolve(context.Background(), testDefinition())
	require.NoError(t, err)
	assert.Equal(t, []domain.ResolvedSpec{
		{Name: domain.NewName("rails"), Version: "7.1.0"},
		{Name: domain.NewName("rack"), Version: "3.0.0"},
	}, specs)
}

func TestResolver_TopLevel(t *testing.T) {
	r, runner := newResolver(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{
		Output: `{"result":[{"name":"rails","requirement":"~> 7.0"},{"name":"puma","requirement":">= 0"}]}`,
	}, nil)

	reqs, err := r.TopLevel(context.Background(), testDefinition())
	require.NoError(t, err)
	assert.Equal(t, []domain.GemRequirement{
		{Name: domain.NewName("rails"), Requirement: "~> 7.0"},
		{Name: domain.NewName("puma"), Requirement: ">= 0"},
	}, reqs)
}

func TestResolver_VersionConflict(t *testing.T) {
	r, runner := newResolver(t)

	out := `{"error":"Bundler could not find compatible versions","error_class":"Bundler::VersionConflict",` +
		`"conflicts":{"rack":{"trees":[[{"name":"rails","requirement":"= 7.1.0"},{"name":"rack","requirement":">= 3"}]]}}}`
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(
		domain.ProcessResult{Output: out, ExitCode: 1},
		&domain.SubprocessError{Output: out, Command: "ruby helper.rb", Exit: "exit status 1"},
	)

	_, err := r.Resolve(context.Background(), testDefinition())
	var conflict *domain.VersionConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Bundler could not find compatible versions", conflict.Message)
	require.Contains(t, conflict.Conflicts, domain.NewName("rack"))
	tree := conflict.Conflicts[domain.NewName("rack")].Trees[0]
	assert.Equal(t, domain.NewName("rails"), tree.First().Name)
	assert.Equal(t, ">= 3", tree.Last().Requirement)
}

func TestResolver_HelperError(t *testing.T) {
	r, runner := newResolver(t)

	out := `{"error":"Could not find gem 'nope' in rubygems repository","error_class":"Bundler::GemNotFound"}`
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(
		domain.ProcessResult{Output: out, ExitCode: 1},
		&domain.SubprocessError{Output: out, Command: "ruby helper.rb", Exit: "exit status 1"},
	)

	_, err := r.Resolve(context.Background(), testDefinition())
	var subErr *domain.SubprocessError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "Could not find gem 'nope' in rubygems repository", subErr.Error())
	assert.Equal(t, "ruby helper.rb", subErr.Command)
}

func TestResolver_CrashWithoutJSON(t *testing.T) {
	r, runner := newResolver(t)

	crash := &domain.SubprocessError{Output: "ruby: No such file or directory -- helper.rb", Exit: "exit status 1"}
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{Output: crash.Output}, crash)

	_, err := r.Resolve(context.Background(), testDefinition())
	assert.Same(t, crash, err)
}

func TestResolver_MalformedOutput(t *testing.T) {
	r, runner := newResolver(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{Output: "{not json"}, nil)

	_, err := r.Resolve(context.Background(), testDefinition())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrHelperProtocol.Error())
}

func TestResolver_NoResult(t *testing.T) {
	r, runner := newResolver(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{Output: "{}"}, nil)

	_, err := r.Resolve(context.Background(), testDefinition())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrHelperProtocol.Error())
}

func TestResolver_MissingHelper(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := bundler.NewResolver(mocks.NewMockProcessRunner(ctrl), domain.ResolverConfig{})

	_, err := r.Resolve(context.Background(), testDefinition())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidConfig.Error())
}

func TestResolver_WithEnv(t *testing.T) {
	r, runner := newResolver(t)
	env := map[string]string{"GIT_CONFIG_GLOBAL": "/tmp/gitconfig"}

	runner.EXPECT().Run(gomock.Any(), gomock.Cond(func(cmd domain.Command) bool {
		return cmd.Env["GIT_CONFIG_GLOBAL"] == "/tmp/gitconfig"
	})).Return(domain.ProcessResult{Output: `{"result":[]}`}, nil)

	specs, err := r.WithEnv(env).Resolve(context.Background(), testDefinition())
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestResolver_SendsLockfileSpelling(t *testing.T) {
	r, runner := newResolver(t)

	lockfile := "GEM\n  remote: https://rubygems.org/\n  specs:\n    RedCloth (4.3.2)\n    ruby_parser (3.20.0)\n\n" +
		"DEPENDENCIES\n  RedCloth\n  ruby_parser\n"
	_, err := bundler.NewLockfileParser().Specs(lockfile)
	require.NoError(t, err)

	lock := domain.ManifestFile{Name: "Gemfile.lock", Content: lockfile}
	def := domain.NewDefinition(
		domain.ManifestFile{Name: "Gemfile", Content: "gem 'RedCloth'\ngem 'ruby_parser'\n"},
		&lock,
		[]domain.Name{domain.NewName("ruby-parser"), domain.NewName("redcloth")},
	).WithRequirement(domain.NewName("RUBY-PARSER"), "= 3.20.0")

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) (domain.ProcessResult, error) {
			var req map[string]any
			require.NoError(t, json.Unmarshal(cmd.Stdin, &req))
			args := req["args"].(map[string]any)
			assert.Equal(t, []any{"ruby_parser", "RedCloth"}, args["unlock_gems"])
			assert.Equal(t, map[string]any{"ruby_parser": "= 3.20.0"}, args["requirements"])

			return domain.ProcessResult{
				Output: `{"result":[{"name":"ruby_parser","version":"3.20.0"},{"name":"RedCloth","version":"4.3.2"}]}`,
			}, nil
		})

	specs, err := r.Resolve(context.Background(), def)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, domain.NewName("ruby-parser"), specs[0].Name)
	assert.Equal(t, "RedCloth", specs[1].Name.Spelling())
}
