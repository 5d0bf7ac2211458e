package config

// File represents the structure of relock.yaml.
type File struct {
	Runtime     RuntimeDTO      `yaml:"runtime"`
	Resolver    ResolverDTO     `yaml:"resolver"`
	Credentials []CredentialDTO `yaml:"credentials"`
}

// RuntimeDTO is the runtime section.
type RuntimeDTO struct {
	Supported []string `yaml:"supported"`
	Default   string   `yaml:"default"`
	Fallback  string   `yaml:"fallback"`
}

// ResolverDTO is the resolver section.
type ResolverDTO struct {
	Command            []string `yaml:"command"`
	RuntimeManager     string   `yaml:"runtime_manager"`
	HelperRequirements string   `yaml:"helper_requirements"`
	BundlerHelper      []string `yaml:"bundler_helper"`
}

// CredentialDTO is a single credentials entry.
type CredentialDTO struct {
	Type         string `yaml:"type"`
	Host         string `yaml:"host"`
	IndexURL     string `yaml:"index_url"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Token        string `yaml:"token"`
	ReplacesBase bool   `yaml:"replaces_base"`
}
