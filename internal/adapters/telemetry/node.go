package telemetry

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/relock/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewTracer(os.Getenv("OTEL_SDK_DISABLED")), nil
		},
	})
}

// NewTracer returns the OTel tracer, or a no-op tracer when disabled is "true".
func NewTracer(disabled string) ports.Tracer {
	if strings.EqualFold(strings.TrimSpace(disabled), "true") {
		return NewNoOpTracer()
	}
	return NewOTelTracer("relock")
}
