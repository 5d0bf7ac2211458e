package domain

// RuntimeConfig controls runtime version selection.
type RuntimeConfig struct {
	// Supported lists the selectable runtime versions in descending preference.
	Supported []string

	// Default is used when no constraint narrows the choice (the oldest pre-installed version).
	Default string

	// Fallback is the version retried once when a failure looks runtime related.
	Fallback string
}

// ResolverConfig describes the external tools.
type ResolverConfig struct {
	// Command is the argv prefix of the compiler (e.g. ["pyenv", "exec", "pip-compile"]).
	Command []string

	// RuntimeManager is the runtime manager executable (e.g. "pyenv").
	RuntimeManager string

	// HelperRequirements is a requirements file installed into every freshly installed runtime.
	HelperRequirements string

	// BundlerHelper is the argv of the gem resolver helper.
	BundlerHelper []string
}

// Config is the complete relock configuration.
type Config struct {
	Runtime     RuntimeConfig
	Resolver    ResolverConfig
	Credentials []Credential
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Runtime: RuntimeConfig{
			Supported: []string{"3.12.4", "3.11.9", "3.10.14", "3.9.19", "3.8.19"},
			Default:   "3.8.19",
			Fallback:  "2.7.18",
		},
		Resolver: ResolverConfig{
			Command:            []string{"pyenv", "exec", "pip-compile"},
			RuntimeManager:     "pyenv",
			HelperRequirements: "helpers/python/requirements.txt",
			BundlerHelper:      []string{"ruby", "helpers/bundler/run.rb"},
		},
	}
}
