package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GitConfigurer = (*Configurer)(nil)

// Configurer writes a private global git config with url.<authed>.insteadOf rules for the
// duration of a callback. The user's own git configuration is never touched.
type Configurer struct {
	auth ports.AuthURLBuilder
}

// NewConfigurer creates a new Configurer.
func NewConfigurer(auth ports.AuthURLBuilder) *Configurer {
	return &Configurer{auth: auth}
}

// WithGitConfigured runs fn with GIT_CONFIG_GLOBAL pointing at a temporary config.
func (c *Configurer) WithGitConfigured(
	ctx context.Context,
	creds []domain.Credential,
	fn func(ctx context.Context, env map[string]string) error,
) (err error) {
	dir, err := os.MkdirTemp("", "relock-git-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrGitConfigFailed.Error())
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil && err == nil {
			err = zerr.Wrap(rmErr, domain.ErrGitConfigFailed.Error())
		}
	}()

	content, err := c.render(creds)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "gitconfig")
	if err := os.WriteFile(path, []byte(content), domain.PrivateFilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrGitConfigFailed.Error())
	}

	return fn(ctx, map[string]string{
		"GIT_CONFIG_GLOBAL":   path,
		"GIT_CONFIG_NOSYSTEM": "1",
		"GIT_TERMINAL_PROMPT": "0",
	})
}

// render produces the config body. Each git_source credential rewrites https, ssh and scp-style
// URLs of its host to the authenticated https URL.
func (c *Configurer) render(creds []domain.Credential) (string, error) {
	var b strings.Builder
	b.WriteString("[advice]\n\tdetachedHead = false\n")

	for _, cred := range creds {
		if cred.Type != domain.CredentialGitSource {
			continue
		}
		authed, err := c.auth.Build(cred)
		if err != nil {
			return "", zerr.With(err, "host", cred.Host)
		}
		host := strings.TrimSuffix(cred.Host, "/")

		b.WriteString("[url \"" + escape(authed) + "\"]\n")
		for _, from := range []string{"https://" + host + "/", "ssh://git@" + host + "/", "git@" + host + ":"} {
			b.WriteString("\tinsteadOf = " + escape(from) + "\n")
		}
	}
	return b.String(), nil
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
