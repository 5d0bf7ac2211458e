package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

const (
	// AuthNodeID is the unique identifier for the auth URL builder Graft node.
	AuthNodeID graft.ID = "adapter.git.auth"
	// ConfigurerNodeID is the unique identifier for the git configurer Graft node.
	ConfigurerNodeID graft.ID = "adapter.git.configurer"
)

func init() {
	graft.Register(graft.Node[ports.AuthURLBuilder]{
		ID:        AuthNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AuthURLBuilder, error) {
			return NewAuthURLBuilder(), nil
		},
	})

	graft.Register(graft.Node[ports.GitConfigurer]{
		ID:        ConfigurerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AuthNodeID},
		Run: func(ctx context.Context) (ports.GitConfigurer, error) {
			auth, err := graft.Dep[ports.AuthURLBuilder](ctx)
			if err != nil {
				return nil, err
			}
			return NewConfigurer(auth), nil
		},
	})
}
