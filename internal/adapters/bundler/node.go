package bundler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

// LockfileParserNodeID is the unique identifier for the Gemfile.lock parser Graft node.
const LockfileParserNodeID graft.ID = "adapter.bundler.lockfile"

func init() {
	graft.Register(graft.Node[ports.LockfileParser]{
		ID:        LockfileParserNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileParser, error) {
			return NewLockfileParser(), nil
		},
	})
}
