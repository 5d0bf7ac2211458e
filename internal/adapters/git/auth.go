// Package git builds authenticated source URLs and scopes git credential configuration
// to a resolution attempt.
package git

import (
	"encoding/base64"
	"net/url"
	"strings"
	"unicode"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AuthURLBuilder = (*AuthURLBuilder)(nil)

// AuthURLBuilder embeds credentials into index and git URLs.
type AuthURLBuilder struct{}

// NewAuthURLBuilder creates a new AuthURLBuilder.
func NewAuthURLBuilder() *AuthURLBuilder {
	return &AuthURLBuilder{}
}

// Build returns the credential's URL with userinfo set.
// python_index credentials use IndexURL; git_source credentials use https://<host>/.
func (b *AuthURLBuilder) Build(cred domain.Credential) (string, error) {
	raw := cred.IndexURL
	if cred.Type == domain.CredentialGitSource {
		raw = "https://" + strings.TrimSuffix(cred.Host, "/") + "/"
	}
	if raw == "" {
		return "", zerr.With(domain.ErrInvalidConfig, "credential", string(cred.Type))
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "url", domain.StripUserinfo(raw))
	}
	if user := userinfo(cred); user != nil {
		u.User = user
	}
	return u.String(), nil
}

// userinfo derives basic auth details. A token may carry "user:pass" directly or base64 encoded.
func userinfo(cred domain.Credential) *url.Userinfo {
	if cred.Username != "" || cred.Password != "" {
		if cred.Password == "" {
			return url.User(cred.Username)
		}
		return url.UserPassword(cred.Username, cred.Password)
	}
	if cred.Token == "" {
		return nil
	}

	token := cred.Token
	if !strings.Contains(token, ":") {
		if decoded, err := base64.StdEncoding.DecodeString(token); err == nil && isPrintableASCII(decoded) &&
			strings.Contains(string(decoded), ":") {
			token = string(decoded)
		}
	}
	if user, pass, ok := strings.Cut(token, ":"); ok {
		return url.UserPassword(user, pass)
	}
	return url.User(token)
}

func isPrintableASCII(b []byte) bool {
	for _, c := range b {
		if c > unicode.MaxASCII || !unicode.IsPrint(rune(c)) {
			return false
		}
	}
	return len(b) > 0
}
