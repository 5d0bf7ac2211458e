package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/git"        //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/pipcompile" //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/shell"      //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/orchestrator"
	"go.trai.ch/relock/internal/engine/unlock"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.SourceNodeID,
			fs.GemSourceNodeID,
			pipcompile.NodeID,
			shell.NodeID,
			git.ConfigurerNodeID,
			orchestrator.NodeID,
			unlock.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestSource](ctx)
	if err != nil {
		return nil, err
	}

	gems, err := graft.Dep[ports.GemSource](ctx)
	if err != nil {
		return nil, err
	}

	toolkit, err := graft.Dep[*pipcompile.Toolkit](ctx)
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

	orchestrators, err := graft.Dep[*orchestrator.Factory](ctx)
	if err != nil {
		return nil, err
	}

	expanders, err := graft.Dep[*unlock.Factory](ctx)
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

	sources := Sources{
		Manifests:  manifests,
		Gems:       gems,
		Parser:     toolkit.Parser,
		References: toolkit.References,
	}
	return New(loader, sources, runner, configurer, orchestrators, expanders, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
