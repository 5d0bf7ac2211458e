// Package shell runs external resolver processes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	tracer  ports.Tracer
	environ func() []string
}

// NewRunner creates a new Runner. Process output is mirrored into a span per invocation.
func NewRunner(tracer ports.Tracer) *Runner {
	return &Runner{
		tracer:  tracer,
		environ: os.Environ,
	}
}

// Run executes cmd, capturing stdout and stderr into a single buffer.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error) {
	if cmd.Name == "" {
		return domain.ProcessResult{}, zerr.With(domain.ErrCommandStartFailed, "reason", "empty command")
	}

	ctx, span := r.tracer.Start(ctx, "exec "+filepath.Base(cmd.Name),
		ports.WithAttribute("command", cmd.String()),
		ports.WithAttribute("dir", cmd.Dir),
	)
	defer span.End()

	env := resolveEnvironment(r.environ(), cmd.Env)

	executable := cmd.Name
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // resolver commands come from config
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Env = env
	c.Dir = cmd.Dir
	if len(cmd.Stdin) > 0 {
		c.Stdin = bytes.NewReader(cmd.Stdin)
	}

	var output bytes.Buffer
	w := io.MultiWriter(&output, span)
	c.Stdout = w
	c.Stderr = w

	start := time.Now()
	err := c.Run()
	elapsed := time.Since(start)
	span.SetAttribute("duration", elapsed)

	result := domain.ProcessResult{
		Output:   output.String(),
		ExitCode: 0,
		Duration: elapsed,
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		span.RecordError(err)
		result.ExitCode = -1
		return result, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()),
			"command", cmd.String()), "duration", elapsed.String())
	}

	result.ExitCode = exitErr.ExitCode()
	span.SetAttribute("exit_code", result.ExitCode)
	subErr := &domain.SubprocessError{
		Output:   result.Output,
		Command:  cmd.String(),
		Duration: elapsed,
		Exit:     exitErr.String(),
	}
	span.RecordError(subErr)
	return result, subErr
}

// resolveEnvironment overlays the command environment on the inherited one.
// PATH from the overlay is prepended to the inherited PATH.
func resolveEnvironment(sysEnv []string, overlay map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overlay))
	order := make([]string, 0, len(sysEnv)+len(overlay))
	set := func(k, v string) {
		if _, exists := envMap[k]; !exists {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for k, v := range overlay {
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
