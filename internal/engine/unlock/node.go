package unlock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/adapters/bundler"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/relock/internal/core/ports"
)

// NodeID is the unique identifier for the expander factory Graft node.
const NodeID graft.ID = "engine.unlock"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			bundler.LockfileParserNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			lockfiles, err := graft.Dep[ports.LockfileParser](ctx)
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

			return NewFactory(lockfiles, log, tracer), nil
		},
	})
}
