// Package unlock widens a gem update until the resolver accepts it, by unlocking the
// dependencies that version conflicts trace back to.
package unlock

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Result is a successful expansion.
type Result struct {
	// Unlocked are the dependencies unlocked besides the target, in discovery order.
	Unlocked []domain.Name

	// Updated are the dependencies whose locked version changes, target first.
	Updated []domain.UpdatedDependency
}

// Expander runs the build, resolve, expand loop for one gem project.
type Expander struct {
	resolver  ports.DefinitionResolver
	lockfiles ports.LockfileParser
	logger    ports.Logger
	tracer    ports.Tracer

	gemfile  domain.ManifestFile
	lockfile *domain.ManifestFile
}

// NewExpander creates an Expander for the given Gemfile and optional lockfile.
func NewExpander(
	resolver ports.DefinitionResolver,
	lockfiles ports.LockfileParser,
	logger ports.Logger,
	tracer ports.Tracer,
	gemfile domain.ManifestFile,
	lockfile *domain.ManifestFile,
) *Expander {
	return &Expander{
		resolver:  resolver,
		lockfiles: lockfiles,
		logger:    logger,
		tracer:    tracer,
		gemfile:   gemfile,
		lockfile:  lockfile,
	}
}

// project is what the expander knows about the project before the first iteration.
type project struct {
	topLevel map[domain.Name]string
	locked   map[domain.Name]domain.LockedSpec
}

// Expand updates target to version, unlocking further dependencies while the resolver reports
// conflicts that trace back to the target or to something already unlocked. When a conflict
// yields no new candidate, that conflict is returned.
func (e *Expander) Expand(ctx context.Context, target domain.Name, version string) (Result, error) {
	ctx, span := e.tracer.Start(ctx, "unlock "+target.String(),
		ports.WithAttribute("dependency", target.String()),
		ports.WithAttribute("version", version),
	)
	defer span.End()

	proj, err := e.load(ctx)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	unlocked := domain.NewUnlockSet(target)
	for iteration := 1; ; iteration++ {
		specs, err := e.iterate(ctx, iteration, proj, unlocked, version)
		if err == nil {
			return e.result(proj, unlocked, specs), nil
		}

		var conflict *domain.VersionConflictError
		if !errors.As(err, &conflict) {
			span.RecordError(err)
			return Result{}, err
		}

		added := unlocked.Add(candidates(conflict, unlocked, version)...)
		if len(added) == 0 {
			e.logger.Warn(fmt.Sprintf("%s: %s", domain.ErrUnlockExhausted.Error(), conflict.Error()))
			span.RecordError(err)
			return Result{}, err
		}
		e.logger.Info(fmt.Sprintf("conflict on %s, also unlocking %s", target, joinNames(added)))
	}
}

func (e *Expander) iterate(
	ctx context.Context,
	iteration int,
	proj project,
	unlocked *domain.UnlockSet,
	version string,
) ([]domain.ResolvedSpec, error) {
	ctx, span := e.tracer.Start(ctx, fmt.Sprintf("unlock iteration %d", iteration),
		ports.WithAttribute("unlocked", unlocked.Names()),
	)
	defer span.End()

	e.logger.Info(fmt.Sprintf("resolving %s %s with %d unlocked (iteration %d)",
		unlocked.Target(), version, unlocked.Len(), iteration))

	specs, err := e.resolver.Resolve(ctx, e.definition(proj, unlocked, version))
	if err != nil {
		span.RecordError(err)
	}
	return specs, err
}

// load fetches the top-level requirements and reads the lockfile concurrently.
func (e *Expander) load(ctx context.Context) (project, error) {
	proj := project{
		topLevel: make(map[domain.Name]string),
		locked:   make(map[domain.Name]domain.LockedSpec),
	}

	var (
		topLevel []domain.GemRequirement
		recorded []domain.GemRequirement
		locked   []domain.LockedSpec
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		topLevel, err = e.resolver.TopLevel(gctx, domain.NewDefinition(e.gemfile, e.lockfile, nil))
		return err
	})
	if e.lockfile != nil {
		g.Go(func() error {
			var err error
			locked, err = e.lockfiles.Specs(e.lockfile.Content)
			if err != nil {
				return err
			}
			recorded, err = e.lockfiles.Dependencies(e.lockfile.Content)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return project{}, err
	}

	for _, r := range topLevel {
		proj.topLevel[r.Name] = r.Requirement
	}
	// The lockfile also records declarations the Gemfile pulls in indirectly (gemspec).
	for _, r := range recorded {
		if _, ok := proj.topLevel[r.Name]; !ok {
			proj.topLevel[r.Name] = r.Requirement
		}
	}
	for _, s := range locked {
		proj.locked[s.Name] = s
	}
	return proj, nil
}

// definition builds a fresh definition unlocking the target, the unlock set and their locked
// sub-dependencies. Unlocked top-level requirements are loosened to ">= locked version" and the
// target is forced to version.
func (e *Expander) definition(proj project, unlocked *domain.UnlockSet, version string) domain.Definition {
	names := append([]domain.Name{unlocked.Target()}, unlocked.Names()...)

	unlock := slices.Clone(names)
	for _, n := range names {
		for _, sub := range proj.locked[n].Dependencies {
			if !slices.Contains(unlock, sub.Name) && sub.Name != domain.RuntimeDependencyName {
				unlock = append(unlock, sub.Name)
			}
		}
	}

	def := domain.NewDefinition(e.gemfile, e.lockfile, unlock)
	for _, n := range unlocked.Names() {
		if _, ok := proj.topLevel[n]; !ok {
			continue
		}
		floor := "0"
		if spec, ok := proj.locked[n]; ok && spec.Version != "" {
			floor = spec.Version
		}
		def = def.WithRequirement(n, ">= "+floor)
	}
	return def.WithRequirement(unlocked.Target(), "= "+version)
}

func (e *Expander) result(proj project, unlocked *domain.UnlockSet, specs []domain.ResolvedSpec) Result {
	resolved := make(map[domain.Name]string, len(specs))
	for _, s := range specs {
		resolved[s.Name] = s.Version
	}

	res := Result{Unlocked: unlocked.Names()}
	for _, n := range append([]domain.Name{unlocked.Target()}, unlocked.Names()...) {
		v, ok := resolved[n]
		if !ok {
			continue
		}
		previous := proj.locked[n].Version
		if v == previous {
			continue
		}
		res.Updated = append(res.Updated, domain.UpdatedDependency{Name: n, Version: v, PreviousVersion: previous})
	}
	return res
}

// candidates returns the first node of every blocking tree of every conflict touching the
// target or an unlocked name.
func candidates(conflict *domain.VersionConflictError, unlocked *domain.UnlockSet, version string) []domain.Name {
	touched := map[domain.Name]struct{}{unlocked.Target(): {}}
	for _, n := range unlocked.Names() {
		touched[n] = struct{}{}
	}

	var out []domain.Name
	for _, c := range conflict.SortedConflicts() {
		if !c.Touches(touched) {
			continue
		}
		for _, tree := range c.Trees {
			if blocking(tree, unlocked.Target(), version) {
				out = append(out, tree.First().Name)
			}
		}
	}
	return out
}

// blocking reports whether tree can stand in the way of the update. Trees ending in an
// unconstrained requirement, or in a requirement on the target that version already
// satisfies, cannot.
func blocking(tree domain.RequirementTree, target domain.Name, version string) bool {
	last := tree.Last()
	if isUnconstrained(last.Requirement) {
		return false
	}
	if last.Name == target && satisfies(version, last.Requirement) {
		return false
	}
	return true
}

func joinNames(names []domain.Name) string {
	s := make([]string, len(names))
	for i, n := range names {
		s[i] = n.String()
	}
	return strings.Join(s, ", ")
}
