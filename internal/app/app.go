// Package app implements the application layer for relock.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/relock/internal/adapters/bundler"
	"go.trai.ch/relock/internal/adapters/fs"
	"go.trai.ch/relock/internal/adapters/pyenv"
	"go.trai.ch/relock/internal/adapters/telemetry"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/orchestrator"
	"go.trai.ch/relock/internal/engine/unlock"
	"go.trai.ch/relock/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Sources are the collaborators that read a project from disk.
type Sources struct {
	Manifests  ports.ManifestSource
	Gems       ports.GemSource
	Parser     ports.ManifestParser
	References ports.ReferenceParser
}

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	sources       Sources
	runner        ports.ProcessRunner
	git           ports.GitConfigurer
	orchestrators *orchestrator.Factory
	expanders     *unlock.Factory
	logger        ports.Logger
	tracer        ports.Tracer
	out           io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sources Sources,
	runner ports.ProcessRunner,
	git ports.GitConfigurer,
	orchestrators *orchestrator.Factory,
	expanders *unlock.Factory,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader:  loader,
		sources:       sources,
		runner:        runner,
		git:           git,
		orchestrators: orchestrators,
		expanders:     expanders,
		logger:        log,
		tracer:        tracer,
		out:           os.Stdout,
	}
}

// WithOutput sets where command results are written.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Options are the settings shared by every command.
type Options struct {
	// Dir is the project directory.
	Dir string
	// ConfigPath overrides the config file location.
	ConfigPath string
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
	// Quiet hides informational log messages.
	Quiet bool
	// Trace reports every finished span through the logger.
	Trace bool
}

// configurableLogger is implemented by the logger adapter.
type configurableLogger interface {
	SetJSON(enable bool)
	SetQuiet(quiet bool)
}

// project is a python project loaded from disk.
type project struct {
	config *domain.Config
	files  []domain.ManifestFile
}

// Resolve reports the version dependency would be locked at if its requirement became requirement.
func (a *App) Resolve(ctx context.Context, opts Options, dependency, requirement string) error {
	return a.run(ctx, opts, "resolve", func(ctx context.Context) error {
		orch, err := a.orchestrator(ctx, opts, dependency)
		if err != nil {
			return err
		}

		outcome, err := orch.Resolve(ctx, requirement)
		if err != nil {
			return err
		}

		name := domain.NormalizeName(dependency)
		if outcome.NoUpdate {
			a.print(style.Status(style.Tilde, style.Yellow, fmt.Sprintf("%s: no update possible", name)))
			return nil
		}
		a.print(style.Status(style.Check, style.Green, fmt.Sprintf("%s %s", name, outcome.Version)))
		return nil
	})
}

// Check verifies that the project's manifests resolve as they are.
func (a *App) Check(ctx context.Context, opts Options, dependency string) error {
	return a.run(ctx, opts, "check", func(ctx context.Context) error {
		orch, err := a.orchestrator(ctx, opts, dependency)
		if err != nil {
			return err
		}
		if err := orch.ConfirmResolvable(ctx); err != nil {
			return err
		}
		a.print(style.Status(style.Check, style.Green, "manifests resolve"))
		return nil
	})
}

// Unlock updates a gem to version, unlocking whatever else the update requires.
func (a *App) Unlock(ctx context.Context, opts Options, dependency, version string) error {
	return a.run(ctx, opts, "unlock", func(ctx context.Context) error {
		var (
			cfg      *domain.Config
			gemfile  domain.ManifestFile
			lockfile *domain.ManifestFile
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			cfg, err = a.configLoader.Load(opts.Dir, opts.ConfigPath)
			return err
		})
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var err error
			gemfile, lockfile, err = a.sources.Gems.LoadGems(opts.Dir)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		return a.git.WithGitConfigured(ctx, cfg.Credentials, func(ctx context.Context, env map[string]string) error {
			resolver := bundler.NewResolver(a.runner, cfg.Resolver).WithEnv(env)
			result, err := a.expanders.NewExpander(resolver, gemfile, lockfile).
				Expand(ctx, domain.NewName(dependency), version)
			if err != nil {
				return err
			}

			for _, dep := range result.Updated {
				msg := fmt.Sprintf("%s %s", dep.Name.Spelling(), dep.Version)
				if dep.PreviousVersion != "" {
					msg += fmt.Sprintf(" (was %s)", dep.PreviousVersion)
				}
				a.print(style.Status(style.Check, style.Green, msg))
			}
			if len(result.Unlocked) > 0 {
				names := make([]string, len(result.Unlocked))
				for i, n := range result.Unlocked {
					names[i] = n.Spelling()
				}
				a.print(style.Status(style.Arrow, style.Slate, "unlocked "+strings.Join(names, ", ")))
			}
			return nil
		})
	})
}

// Order prints the input manifests of the project in the order they must be compiled.
func (a *App) Order(ctx context.Context, opts Options) error {
	return a.run(ctx, opts, "order", func(_ context.Context) error {
		files, err := a.sources.Manifests.Load(opts.Dir)
		if err != nil {
			return err
		}

		var names []string
		for _, f := range domain.FilesWithRole(files, domain.RoleInput) {
			names = append(names, f.Name)
		}
		ordered, err := domain.OrderManifests(names, a.sources.References.References(files))
		if err != nil {
			return err
		}
		for _, name := range ordered {
			a.print(name)
		}
		return nil
	})
}

// run applies opts to the logger, enables tracing when asked and runs fn inside a command span.
func (a *App) run(ctx context.Context, opts Options, command string, fn func(context.Context) error) (err error) {
	if l, ok := a.logger.(configurableLogger); ok {
		l.SetJSON(opts.JSONLogs)
		l.SetQuiet(opts.Quiet)
	}

	if opts.Trace {
		shutdown := telemetry.Setup(a.logger)
		defer func() {
			if serr := shutdown(context.WithoutCancel(ctx)); serr != nil && err == nil {
				err = serr
			}
		}()
	}

	ctx, span := a.tracer.Start(ctx, "relock "+command, ports.WithAttribute("dir", opts.Dir))
	defer span.End()

	if err = fn(ctx); err != nil {
		span.RecordError(err)
	}
	return err
}

// orchestrator loads the project in opts.Dir and creates an orchestrator for dependency.
func (a *App) orchestrator(ctx context.Context, opts Options, dependency string) (*orchestrator.Orchestrator, error) {
	proj, err := a.load(ctx, opts)
	if err != nil {
		return nil, err
	}

	deps, err := a.sources.Parser.Parse(proj.files)
	if err != nil {
		return nil, err
	}
	name := domain.NewName(dependency)
	idx := -1
	for i := range deps {
		if deps[i].Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, zerr.With(domain.ErrDependencyNotFound, "dependency", name.String())
	}

	manager := pyenv.NewManager(a.runner, a.logger, proj.config.Resolver)
	return a.orchestrators.NewOrchestrator(orchestrator.Job{
		Dependency: deps[idx],
		Files:      proj.files,
		Config:     proj.config,
	}, manager)
}

// load reads the config and the manifests of a python project concurrently.
func (a *App) load(ctx context.Context, opts Options) (project, error) {
	ctx, span := a.tracer.Start(ctx, "load project", ports.WithAttribute("dir", opts.Dir))
	defer span.End()

	var proj project
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cfg, err := a.configLoader.Load(opts.Dir, opts.ConfigPath)
		if err != nil {
			return err
		}
		proj.config = cfg
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		files, err := a.sources.Manifests.Load(opts.Dir)
		if err != nil {
			return err
		}
		proj.files = files
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return project{}, err
	}

	span.SetAttribute("manifests", len(proj.files))
	span.SetAttribute("manifests.fingerprint", fs.Fingerprint(proj.files))
	return proj, nil
}

func (a *App) print(line string) {
	_, _ = fmt.Fprintln(a.out, line)
}
