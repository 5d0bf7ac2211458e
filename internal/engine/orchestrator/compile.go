package orchestrator

import (
	"context"
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/classifier"
	"go.trai.ch/zerr"
)

const (
	buildIsolation   = "--build-isolation"
	noBuildIsolation = "--no-build-isolation"
)

// steps materializes the manifests in a fresh workspace with git credentials configured,
// installs the runtime, compiles every relevant input and returns the target's locked version.
// A nil requirement compiles the original manifests once, without unlocking anything.
func (o *Orchestrator) steps(ctx context.Context, runtimeVersion string, requirement *string) (string, error) {
	var version string
	err := o.tools.Workspace.Scoped(ctx, func(ctx context.Context, dir string) error {
		return o.tools.Git.WithGitConfigured(ctx, o.job.Config.Credentials, func(ctx context.Context, gitEnv map[string]string) error {
			var err error
			version, err = o.compileAll(ctx, dir, runtimeVersion, requirement, o.environment(gitEnv))
			return err
		})
	})
	return version, err
}

func (o *Orchestrator) compileAll(
	ctx context.Context,
	dir, runtimeVersion string,
	requirement *string,
	env map[string]string,
) (version string, err error) {
	targets, err := o.filesToCompile()
	if err != nil {
		return "", err
	}

	if err := o.materialize(dir, targets, requirement); err != nil {
		return "", err
	}
	if err := o.tools.Workspace.Write(dir, domain.RuntimePinFileName, runtimeVersion+"\n"); err != nil {
		return "", err
	}
	pinRemoved := false
	defer func() {
		if pinRemoved {
			return
		}
		if rmErr := o.tools.Workspace.Remove(dir, domain.RuntimePinFileName); rmErr != nil && err == nil {
			err = rmErr
		}
	}()

	if err := o.tools.Runtime.EnsureInstalled(ctx, runtimeVersion, env); err != nil {
		return "", err
	}

	options, err := o.indexOptions()
	if err != nil {
		return "", err
	}

	for i, file := range targets {
		if requirement == nil {
			if err := o.compile(ctx, dir, file, options, env, false); err != nil {
				return "", err
			}
			continue
		}

		if i > 0 && !o.job.Dependency.TopLevel {
			if err := o.writeInputs(dir, targets, requirement); err != nil {
				return "", err
			}
		}
		if err := o.compile(ctx, dir, file, options, env, true); err != nil {
			return "", err
		}
		if o.job.Dependency.TopLevel {
			continue
		}
		// pip-compile -P keeps requirements the update made superfluous; a clean pass over the
		// original inputs drops them again and re-evaluates markers.
		if err := o.writeInputs(dir, targets, nil); err != nil {
			return "", err
		}
		if err := o.compile(ctx, dir, file, options, env, false); err != nil {
			return "", err
		}
	}

	if err := o.tools.Workspace.Remove(dir, domain.RuntimePinFileName); err != nil {
		return "", err
	}
	pinRemoved = true

	return o.lockedVersion(dir, targets)
}

// filesToCompile returns the inputs declaring the target plus every input whose compiled
// output locks it, in compilation order.
func (o *Orchestrator) filesToCompile() ([]string, error) {
	dep := o.job.Dependency
	var names []string
	for _, r := range dep.Requirements {
		if strings.HasSuffix(r.File, domain.InputExt) {
			names = append(names, r.File)
		}
	}

	for _, input := range domain.FilesWithRole(o.job.Files, domain.RoleInput) {
		compiled, ok := o.tools.References.CompiledFileFor(o.job.Files, input.Name)
		if !ok {
			continue
		}
		locked, err := o.tools.Parser.Parse([]domain.ManifestFile{compiled})
		if err != nil {
			return nil, err
		}
		if slices.ContainsFunc(locked, func(d domain.Dependency) bool { return d.Name == dep.Name }) {
			names = append(names, input.Name)
		}
	}

	return domain.OrderManifests(names, o.tools.References.References(o.job.Files))
}

// materialize writes every manifest into dir. Build-config files are replaced by sanitized stubs.
func (o *Orchestrator) materialize(dir string, targets []string, requirement *string) error {
	for _, f := range o.job.Files {
		content := f.Content
		switch f.Role {
		case domain.RoleInput:
			continue
		case domain.RoleBuildConfig:
			content = o.sanitize(f)
		}
		if err := o.tools.Workspace.Write(dir, f.Name, content); err != nil {
			return err
		}
	}
	return o.writeInputs(dir, targets, requirement)
}

// writeInputs writes the editable inputs. With a requirement, inputs declaring the target get
// the new requirement, and a transitive target nobody declares is appended to the compiled inputs.
func (o *Orchestrator) writeInputs(dir string, targets []string, requirement *string) error {
	dep := o.job.Dependency
	inputs := domain.FilesWithRole(o.job.Files, domain.RoleInput)
	declared := slices.ContainsFunc(inputs, func(f domain.ManifestFile) bool {
		_, ok := dep.RequirementIn(f.Name)
		return ok
	})

	for _, f := range inputs {
		content := f.Content
		if requirement != nil {
			updated, err := o.updatedInput(f, *requirement, declared, slices.Contains(targets, f.Name))
			if err != nil {
				return err
			}
			content = updated
		}
		if err := o.tools.Workspace.Write(dir, f.Name, content); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) updatedInput(f domain.ManifestFile, requirement string, declared, compiled bool) (string, error) {
	dep := o.job.Dependency
	if current, ok := dep.RequirementIn(f.Name); ok {
		content, err := o.tools.Replacer.Replace(f.Content, dep.Name, current.Requirement, requirement)
		if err != nil {
			return "", zerr.With(err, "manifest", f.Name)
		}
		return content, nil
	}
	if dep.TopLevel || declared || !compiled {
		return f.Content, nil
	}
	content := f.Content
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + dep.Name.String() + requirement + "\n", nil
}

// sanitize returns the sanitized stub of f. Stubs are cached by name and content, so an edited
// file is sanitized again.
func (o *Orchestrator) sanitize(f domain.ManifestFile) string {
	key := contentKey(f)
	if content, ok := o.sanitized.Get(key); ok {
		return content
	}
	content := o.tools.Sanitizer.Sanitize(f)
	o.sanitized.Add(key, content)
	return content
}

func contentKey(f domain.ManifestFile) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(f.Name)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(f.Content)
	return d.Sum64()
}

// compile runs pip-compile on file. A native compilation failure is retried once without
// build isolation.
func (o *Orchestrator) compile(
	ctx context.Context,
	dir, file string,
	options []string,
	env map[string]string,
	upgrade bool,
) error {
	argv := slices.Clone(o.job.Config.Resolver.Command)
	argv = append(argv, "--allow-unsafe", buildIsolation)
	argv = append(argv, options...)
	if compiled, ok := o.tools.References.CompiledFileFor(o.job.Files, file); ok {
		argv = append(argv, "--output-file="+compiled.Name)
	}
	if upgrade {
		argv = append(argv, "-P", o.job.Dependency.Name.String())
	}
	argv = append(argv, file)

	ctx, span := o.tools.Tracer.Start(ctx, "compile "+file,
		ports.WithAttribute("manifest", file),
		ports.WithAttribute("upgrade", upgrade),
	)
	defer span.End()

	o.tools.Logger.Info(fmt.Sprintf("compiling %s", file))
	err := o.run(ctx, dir, argv, env)
	if err != nil && classifier.Classify(err.Error()).Kind == classifier.KindNativeCompilation {
		o.tools.Logger.Warn(fmt.Sprintf("native build of %s failed, retrying without build isolation", file))
		argv[slices.Index(argv, buildIsolation)] = noBuildIsolation
		err = o.run(ctx, dir, argv, env)
	}
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (o *Orchestrator) run(ctx context.Context, dir string, argv []string, env map[string]string) error {
	if len(argv) == 0 {
		return zerr.With(domain.ErrInvalidConfig, "field", "resolver.command")
	}
	cmd := domain.NewCommand(argv...)
	cmd.Dir = dir
	cmd.Env = env
	_, err := o.tools.Runner.Run(ctx, cmd)
	return err
}

// indexOptions builds --index-url and --extra-index-url flags from python_index credentials.
func (o *Orchestrator) indexOptions() ([]string, error) {
	var options []string
	for _, cred := range o.job.Config.Credentials {
		if cred.Type != domain.CredentialPythonIndex {
			continue
		}
		authed, err := o.tools.Auth.Build(cred)
		if err != nil {
			return nil, err
		}
		if cred.ReplacesBase {
			options = append(options, "--index-url="+authed)
		} else {
			options = append(options, "--extra-index-url="+authed)
		}
	}
	return options, nil
}

// environment overlays git credentials and the flags Apache Airflow 1.10 needs to install.
func (o *Orchestrator) environment(gitEnv map[string]string) map[string]string {
	env := maps.Clone(gitEnv)
	if env == nil {
		env = make(map[string]string)
	}

	var airflow, unidecode bool
	for _, f := range o.job.Files {
		airflow = airflow || strings.Contains(f.Content, "apache-airflow")
		unidecode = unidecode || strings.Contains(f.Content, "unidecode")
	}
	switch {
	case airflow && unidecode:
		env["AIRFLOW_GPL_UNIDECODE"] = "yes"
	case airflow:
		env["SLUGIFY_USES_TEXT_UNIDECODE"] = "yes"
	}
	return env
}

// lockedVersion reads the compiled outputs of targets back and returns the target's version.
// An empty version means the target is no longer locked.
func (o *Orchestrator) lockedVersion(dir string, targets []string) (string, error) {
	compiled := make([]domain.ManifestFile, 0, len(targets))
	for _, input := range targets {
		name := domain.CompiledName(input)
		if f, ok := o.tools.References.CompiledFileFor(o.job.Files, input); ok {
			name = f.Name
		}
		content, err := o.tools.Workspace.Read(dir, name)
		if err != nil {
			return "", err
		}
		compiled = append(compiled, domain.ManifestFile{Name: path.Clean(name), Content: content, Role: domain.RoleCompiled})
	}

	deps, err := o.tools.Parser.Parse(compiled)
	if err != nil {
		return "", err
	}
	for _, d := range deps {
		if d.Name == o.job.Dependency.Name && d.Version != "" {
			return d.Version, nil
		}
	}
	return "", nil
}
