// Package config loads relock.yaml.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file and an optional .env file next to it.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load reads the configuration for the project in dir, or from path when it is set.
// A missing default file yields the defaults; present sections override them.
func (l *Loader) Load(dir, path string) (*domain.Config, error) {
	explicit := path != ""
	switch {
	case !explicit:
		path = domain.DefaultConfigPath(dir)
	case !filepath.IsAbs(path):
		path = filepath.Join(dir, path)
	}

	lookup, err := envLookup(filepath.Join(filepath.Dir(path), domain.EnvFileName))
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			if l.logger != nil {
				l.logger.Info("no " + domain.ConfigFileName + " found, using defaults")
			}
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	return Parse(data, lookup)
}

// Parse decodes a config document. ${VAR} references are expanded with lookup.
func Parse(data []byte, lookup func(string) (string, bool)) (*domain.Config, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	cfg := domain.DefaultConfig()
	expand := func(s string) string {
		return os.Expand(s, func(key string) string {
			v, _ := lookup(key)
			return v
		})
	}

	if len(file.Runtime.Supported) > 0 {
		cfg.Runtime.Supported = file.Runtime.Supported
	}
	if file.Runtime.Default != "" {
		cfg.Runtime.Default = file.Runtime.Default
	}
	if file.Runtime.Fallback != "" {
		cfg.Runtime.Fallback = file.Runtime.Fallback
	}
	if len(file.Resolver.Command) > 0 {
		cfg.Resolver.Command = file.Resolver.Command
	}
	if file.Resolver.RuntimeManager != "" {
		cfg.Resolver.RuntimeManager = file.Resolver.RuntimeManager
	}
	if file.Resolver.HelperRequirements != "" {
		cfg.Resolver.HelperRequirements = expand(file.Resolver.HelperRequirements)
	}
	if len(file.Resolver.BundlerHelper) > 0 {
		cfg.Resolver.BundlerHelper = file.Resolver.BundlerHelper
	}

	for i, dto := range file.Credentials {
		cred := domain.Credential{
			Type:         domain.CredentialType(dto.Type),
			Host:         expand(dto.Host),
			IndexURL:     expand(dto.IndexURL),
			Username:     expand(dto.Username),
			Password:     expand(dto.Password),
			Token:        expand(dto.Token),
			ReplacesBase: dto.ReplacesBase,
		}
		if err := validateCredential(cred); err != nil {
			return nil, zerr.With(err, "credential", i)
		}
		cfg.Credentials = append(cfg.Credentials, cred)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *domain.Config) error {
	switch {
	case len(cfg.Runtime.Supported) == 0:
		return zerr.With(domain.ErrInvalidConfig, "field", "runtime.supported")
	case cfg.Runtime.Default == "":
		return zerr.With(domain.ErrInvalidConfig, "field", "runtime.default")
	case len(cfg.Resolver.Command) == 0:
		return zerr.With(domain.ErrInvalidConfig, "field", "resolver.command")
	}
	return nil
}

func validateCredential(cred domain.Credential) error {
	switch cred.Type {
	case domain.CredentialGitSource:
		if cred.Host == "" {
			return zerr.With(domain.ErrInvalidConfig, "field", "host")
		}
	case domain.CredentialPythonIndex:
		if cred.IndexURL == "" {
			return zerr.With(domain.ErrInvalidConfig, "field", "index_url")
		}
	default:
		return zerr.With(domain.ErrInvalidConfig, "type", string(cred.Type))
	}
	return nil
}

// envLookup resolves variables from the process environment first and the dotenv file second.
func envLookup(envFile string) (func(string) (string, bool), error) {
	values, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", envFile)
		}
		values = nil
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}
