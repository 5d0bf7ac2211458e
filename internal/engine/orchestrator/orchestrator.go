// Package orchestrator drives pip-compile through runtime selection, ordered two-pass
// compilation, failure classification and a single runtime fallback.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/classifier"
	"go.trai.ch/relock/internal/engine/runtime"
	"go.trai.ch/zerr"
)

// sanitizedCacheSize bounds the per-orchestrator cache of sanitized build-config files.
const sanitizedCacheSize = 64

// Outcome is the result of a resolution. NoUpdate means the requested requirement cannot be
// satisfied while the project's original manifests still resolve.
type Outcome struct {
	Version  string
	NoUpdate bool
}

// Tools are the collaborators an Orchestrator drives.
type Tools struct {
	Workspace  ports.Workspace
	Runner     ports.ProcessRunner
	Runtime    ports.RuntimeManager
	Git        ports.GitConfigurer
	Auth       ports.AuthURLBuilder
	Parser     ports.ManifestParser
	Replacer   ports.RequirementReplacer
	References ports.ReferenceParser
	Sanitizer  ports.BuildConfigSanitizer
	Runtimes   ports.RuntimeRequirementParser
	Logger     ports.Logger
	Tracer     ports.Tracer
}

// Job is one dependency of one project.
type Job struct {
	Dependency domain.Dependency
	Files      []domain.ManifestFile
	Config     *domain.Config
}

type memo struct {
	outcome Outcome
	err     error
}

// Orchestrator resolves requirements for a single dependency. It is not safe for concurrent
// use; concurrent resolutions need independent instances.
type Orchestrator struct {
	tools    Tools
	job      Job
	selector *runtime.Selector

	resolved  map[string]memo
	confirmed *memo
	sanitized *lru.Cache[uint64, string]
}

// New creates an Orchestrator for job.
func New(tools Tools, job Job) (*Orchestrator, error) {
	if job.Config == nil {
		job.Config = domain.DefaultConfig()
	}
	cache, err := lru.New[uint64, string](sanitizedCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create sanitized file cache")
	}
	return &Orchestrator{
		tools:     tools,
		job:       job,
		selector:  runtime.NewSelector(tools.Runtimes, job.Config.Runtime),
		resolved:  make(map[string]memo),
		sanitized: cache,
	}, nil
}

// Resolve returns the version the resolver locks the dependency at when its requirement is
// changed to requirement. Each requirement string is resolved at most once.
func (o *Orchestrator) Resolve(ctx context.Context, requirement string) (Outcome, error) {
	if m, ok := o.resolved[requirement]; ok {
		return m.outcome, m.err
	}

	outcome, err := o.resolve(ctx, requirement)
	o.resolved[requirement] = memo{outcome: outcome, err: err}
	return outcome, err
}

func (o *Orchestrator) resolve(ctx context.Context, requirement string) (Outcome, error) {
	name := o.job.Dependency.Name
	ctx, span := o.tools.Tracer.Start(ctx, "resolve "+name.String(),
		ports.WithAttribute("dependency", name.String()),
		ports.WithAttribute("requirement", requirement),
	)
	defer span.End()

	a := o.newAttempt()
	version, err := a.run(ctx, func(ctx context.Context, runtimeVersion string) (string, error) {
		return o.steps(ctx, runtimeVersion, &requirement)
	})
	if err == nil {
		if version == "" {
			o.tools.Logger.Info(fmt.Sprintf("%s is no longer locked after the update", name))
			return Outcome{NoUpdate: true}, nil
		}
		span.SetAttribute("resolved.version", version)
		return Outcome{Version: version}, nil
	}

	outcome, err := o.handleError(ctx, err)
	if err != nil {
		span.RecordError(err)
	}
	return outcome, err
}

// ConfirmResolvable checks that the original manifests resolve. A failure caused by a conflict
// or an unsupported constraint is reported as a ResolutionError of kind KindManifestNotResolvable;
// any other failure is returned as is. The result is computed once.
func (o *Orchestrator) ConfirmResolvable(ctx context.Context) error {
	if o.confirmed != nil {
		return o.confirmed.err
	}

	ctx, span := o.tools.Tracer.Start(ctx, "confirm resolvable")
	defer span.End()

	a := o.newAttempt()
	_, err := a.run(ctx, func(ctx context.Context, runtimeVersion string) (string, error) {
		return o.steps(ctx, runtimeVersion, nil)
	})
	if err != nil {
		matched := err
		if !notResolvable(err) && notResolvable(a.original) {
			matched = a.original
		}
		if notResolvable(matched) {
			err = &domain.ResolutionError{
				Kind:    domain.KindManifestNotResolvable,
				Message: classifier.CleanMessage(matched.Error()),
				Cause:   matched,
			}
		}
		span.RecordError(err)
	}
	o.confirmed = &memo{err: err}
	return err
}

func notResolvable(err error) bool {
	if err == nil {
		return false
	}
	switch classifier.Classify(err.Error()).Kind {
	case classifier.KindUnresolvableConstraint, classifier.KindUnsupportedConstraint:
		return true
	default:
		return false
	}
}

// handleError turns a failed resolution into an outcome or a typed error. Failures that are
// not subprocess failures propagate unchanged.
func (o *Orchestrator) handleError(ctx context.Context, err error) (Outcome, error) {
	var subErr *domain.SubprocessError
	if !errors.As(err, &subErr) {
		return Outcome{}, err
	}

	msg := err.Error()
	c := classifier.Classify(msg)
	switch c.Kind {
	case classifier.KindUnresolvableConstraint:
		if confirmErr := o.ConfirmResolvable(ctx); confirmErr != nil {
			return Outcome{}, confirmErr
		}
		o.tools.Logger.Info(fmt.Sprintf("no resolvable update for %s", o.job.Dependency.Name))
		return Outcome{NoUpdate: true}, nil

	case classifier.KindUnsupportedConstraint:
		if confirmErr := o.ConfirmResolvable(ctx); confirmErr != nil {
			return Outcome{}, confirmErr
		}
		return Outcome{}, &domain.ResolutionError{
			Kind:    domain.KindUnsupportedConstraint,
			Message: classifier.CleanMessage(msg),
			Cause:   err,
		}

	case classifier.KindGitSourceUnreachable:
		return Outcome{}, &domain.ResolutionError{Kind: domain.KindGitSourceUnreachable, URL: c.URL, Cause: err}

	case classifier.KindGitReferenceNotFound:
		return Outcome{}, &domain.ResolutionError{Kind: domain.KindGitReferenceNotFound, Ref: c.Ref, Cause: err}

	case classifier.KindBuildStepFailure:
		if !strings.Contains(domain.NormalizeName(msg), o.job.Dependency.Name.String()) {
			return Outcome{}, err
		}
		if confirmErr := o.ConfirmResolvable(ctx); confirmErr != nil {
			return Outcome{}, confirmErr
		}
		return Outcome{NoUpdate: true}, nil
	}

	return Outcome{}, err
}
