package orchestrator

import (
	"go.trai.ch/relock/internal/core/ports"
)

// Factory holds the configuration independent tools and creates one Orchestrator per job.
type Factory struct {
	tools Tools
}

// NewFactory creates a Factory. Tools.Runtime is supplied per job by NewOrchestrator.
func NewFactory(tools Tools) *Factory {
	return &Factory{tools: tools}
}

// NewOrchestrator creates an Orchestrator for job installing runtimes with manager.
func (f *Factory) NewOrchestrator(job Job, manager ports.RuntimeManager) (*Orchestrator, error) {
	tools := f.tools
	tools.Runtime = manager
	return New(tools, job)
}
