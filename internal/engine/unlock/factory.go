package unlock

import (
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
)

// Factory creates Expanders sharing the project independent collaborators.
type Factory struct {
	lockfiles ports.LockfileParser
	logger    ports.Logger
	tracer    ports.Tracer
}

// NewFactory creates a Factory.
func NewFactory(lockfiles ports.LockfileParser, logger ports.Logger, tracer ports.Tracer) *Factory {
	return &Factory{lockfiles: lockfiles, logger: logger, tracer: tracer}
}

// NewExpander creates an Expander resolving through resolver.
func (f *Factory) NewExpander(
	resolver ports.DefinitionResolver,
	gemfile domain.ManifestFile,
	lockfile *domain.ManifestFile,
) *Expander {
	return NewExpander(resolver, f.lockfiles, f.logger, f.tracer, gemfile, lockfile)
}
