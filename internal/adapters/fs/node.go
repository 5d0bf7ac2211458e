package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

const (
	// WorkspaceNodeID is the unique identifier for the workspace Graft node.
	WorkspaceNodeID graft.ID = "adapter.fs.workspace"
	// SourceNodeID is the unique identifier for the manifest source Graft node.
	SourceNodeID graft.ID = "adapter.fs.source"
	// GemSourceNodeID is the unique identifier for the gem manifest source Graft node.
	GemSourceNodeID graft.ID = "adapter.fs.gems"
)

func init() {
	graft.Register(graft.Node[ports.Workspace]{
		ID:        WorkspaceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Workspace, error) {
			return NewWorkspace(""), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestSource]{
		ID:        SourceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestSource, error) {
			return NewSource(), nil
		},
	})

	graft.Register(graft.Node[ports.GemSource]{
		ID:        GemSourceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GemSource, error) {
			return NewSource(), nil
		},
	})
}
