// Package pyenv installs python runtimes through pyenv.
package pyenv

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RuntimeManager = (*Manager)(nil)

// Manager implements ports.RuntimeManager with the pyenv CLI.
type Manager struct {
	runner ports.ProcessRunner
	logger ports.Logger
	bin    string
	helper string
}

// NewManager creates a Manager using the runtime manager and helper requirements from cfg.
func NewManager(runner ports.ProcessRunner, logger ports.Logger, cfg domain.ResolverConfig) *Manager {
	bin := cfg.RuntimeManager
	if bin == "" {
		bin = "pyenv"
	}
	return &Manager{
		runner: runner,
		logger: logger,
		bin:    bin,
		helper: cfg.HelperRequirements,
	}
}

// EnsureInstalled installs version unless pyenv already lists it, then installs the helper
// requirements into the new runtime.
func (m *Manager) EnsureInstalled(ctx context.Context, version string, env map[string]string) error {
	installed, err := m.installed(ctx, version, env)
	if err != nil {
		return err
	}
	if installed {
		return nil
	}

	m.logger.Info(fmt.Sprintf("installing python %s", version))
	if _, err := m.run(ctx, env, m.bin, "install", "-s", version); err != nil {
		return wrapInstall(err, version)
	}

	if m.helper == "" {
		return nil
	}

	pinned := make(map[string]string, len(env)+1)
	for k, v := range env {
		pinned[k] = v
	}
	pinned["PYENV_VERSION"] = version
	if _, err := m.run(ctx, pinned, m.bin, "exec", "pip", "install", "-r", m.helper); err != nil {
		return wrapInstall(err, version)
	}
	return nil
}

func (m *Manager) installed(ctx context.Context, version string, env map[string]string) (bool, error) {
	res, err := m.run(ctx, env, m.bin, "versions", "--bare")
	if err != nil {
		return false, wrapInstall(err, version)
	}
	for _, line := range strings.Split(res.Output, "\n") {
		if strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*")) == version {
			return true, nil
		}
	}
	return false, nil
}

func (m *Manager) run(ctx context.Context, env map[string]string, argv ...string) (domain.ProcessResult, error) {
	cmd := domain.NewCommand(argv...)
	cmd.Env = env
	return m.runner.Run(ctx, cmd)
}

func wrapInstall(err error, version string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrRuntimeInstallFailed.Error()), "version", version)
}
