// Package bundler resolves gem definitions through an external helper process.
package bundler

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DefinitionResolver = (*Resolver)(nil)

// Resolver implements ports.DefinitionResolver by speaking JSON to a helper command.
type Resolver struct {
	runner ports.ProcessRunner
	argv   []string
	env    map[string]string
}

// NewResolver creates a Resolver running the bundler helper argv from cfg.
func NewResolver(runner ports.ProcessRunner, cfg domain.ResolverConfig) *Resolver {
	return &Resolver{
		runner: runner,
		argv:   slices.Clone(cfg.BundlerHelper),
	}
}

// WithEnv returns a copy of r that overlays env on every helper invocation.
func (r *Resolver) WithEnv(env map[string]string) *Resolver {
	next := *r
	next.env = env
	return &next
}

// TopLevel returns the requirements the Gemfile declares directly.
func (r *Resolver) TopLevel(ctx context.Context, def domain.Definition) ([]domain.GemRequirement, error) {
	entries, err := r.call(ctx, "top_level", def)
	if err != nil {
		return nil, err
	}
	out := make([]domain.GemRequirement, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.GemRequirement{Name: domain.NewSpelledName(e.Name), Requirement: e.Requirement})
	}
	return out, nil
}

// Resolve resolves def. A version conflict is returned as *domain.VersionConflictError.
func (r *Resolver) Resolve(ctx context.Context, def domain.Definition) ([]domain.ResolvedSpec, error) {
	entries, err := r.call(ctx, "resolve", def)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ResolvedSpec, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.ResolvedSpec{Name: domain.NewSpelledName(e.Name), Version: e.Version})
	}
	return out, nil
}

func (r *Resolver) call(ctx context.Context, function string, def domain.Definition) ([]resultEntry, error) {
	if len(r.argv) == 0 {
		return nil, zerr.With(domain.ErrInvalidConfig, "field", "resolver.bundler_helper")
	}

	payload, err := json.Marshal(newRequest(function, def))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode helper request")
	}

	cmd := domain.NewCommand(r.argv...)
	cmd.Env = r.env
	cmd.Stdin = payload

	res, runErr := r.runner.Run(ctx, cmd)
	output := res.Output
	var subErr *domain.SubprocessError
	if runErr != nil {
		if !errors.As(runErr, &subErr) {
			return nil, runErr
		}
		output = subErr.Output
	}

	resp, decodeErr := decodeResponse(output)
	if decodeErr != nil {
		if subErr != nil {
			// The helper died before it could answer; its output is all there is.
			return nil, subErr
		}
		return nil, zerr.With(decodeErr, "function", function)
	}

	if resp.Error != "" || resp.ErrorClass != "" {
		return nil, helperError(resp, subErr)
	}
	if resp.Result == nil {
		return nil, zerr.With(zerr.With(domain.ErrHelperProtocol, "function", function), "reason", "no result")
	}
	return *resp.Result, nil
}

func newRequest(function string, def domain.Definition) request {
	args := requestArgs{
		GemfileName:    def.Gemfile.Name,
		GemfileContent: def.Gemfile.Content,
		Unlock:         make([]string, 0, len(def.Unlock)),
	}
	if def.Lockfile != nil {
		args.LockfileName = def.Lockfile.Name
		args.LockfileContent = def.Lockfile.Content
	}
	for _, n := range def.Unlock {
		args.Unlock = append(args.Unlock, n.Spelling())
	}
	if len(def.Requirements) > 0 {
		args.Requirements = make(map[string]string, len(def.Requirements))
		for n, req := range def.Requirements {
			args.Requirements[n.Spelling()] = req
		}
	}
	return request{Function: function, Args: args}
}

// decodeResponse finds the last JSON object line in output. Helpers may print warnings first.
func decodeResponse(output string) (response, error) {
	var last string
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "{") {
			last = line
		}
	}
	if err := scanner.Err(); err != nil {
		return response{}, zerr.Wrap(err, domain.ErrHelperProtocol.Error())
	}
	if last == "" {
		return response{}, zerr.With(domain.ErrHelperProtocol, "reason", "no JSON object in output")
	}

	var resp response
	if err := json.Unmarshal([]byte(last), &resp); err != nil {
		return response{}, zerr.Wrap(err, domain.ErrHelperProtocol.Error())
	}
	return resp, nil
}

func helperError(resp response, cause *domain.SubprocessError) error {
	if resp.ErrorClass == versionConflictClass {
		return newConflictError(resp)
	}
	if cause != nil {
		// Keep the helper's message as the classifiable text.
		failed := *cause
		failed.Output = resp.Error
		return &failed
	}
	return zerr.With(zerr.New(resp.Error), "error_class", resp.ErrorClass)
}

func newConflictError(resp response) *domain.VersionConflictError {
	conflicts := make(map[domain.Name]domain.Conflict, len(resp.Conflicts))
	for name, entry := range resp.Conflicts {
		n := domain.NewSpelledName(name)
		c := domain.Conflict{Name: n, Trees: make([]domain.RequirementTree, 0, len(entry.Trees))}
		for _, nodes := range entry.Trees {
			tree := make(domain.RequirementTree, 0, len(nodes))
			for _, node := range nodes {
				tree = append(tree, domain.RequirementNode{
					Name:        domain.NewSpelledName(node.Name),
					Requirement: node.Requirement,
				})
			}
			c.Trees = append(c.Trees, tree)
		}
		conflicts[n] = c
	}
	return &domain.VersionConflictError{Message: resp.Error, Conflicts: conflicts}
}
