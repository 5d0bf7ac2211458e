package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/fs"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/git"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/pipcompile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/shell"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/telemetry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator factory Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WorkspaceNodeID,
			shell.NodeID,
			git.ConfigurerNodeID,
			git.AuthNodeID,
			pipcompile.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runFactoryNode,
	})
}

func runFactoryNode(ctx context.Context) (*Factory, error) {
	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.ProcessRunner](ctx)
	if err != nil {
		return nil, err
	}

	configurer, err := graft.Dep[ports.GitConfigurer](ctx)
	if err != nil {
		return nil, err
	}

	auth, err := graft.Dep[ports.AuthURLBuilder](ctx)
	if err != nil {
		return nil, err
	}

	toolkit, err := graft.Dep[*pipcompile.Toolkit](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return NewFactory(Tools{
		Workspace:  workspace,
		Runner:     runner,
		Git:        configurer,
		Auth:       auth,
		Parser:     toolkit.Parser,
		Replacer:   toolkit.Replacer,
		References: toolkit.References,
		Sanitizer:  toolkit.Sanitizer,
		Runtimes:   toolkit.Runtime,
		Logger:     log,
		Tracer:     tracer,
	}), nil
}
