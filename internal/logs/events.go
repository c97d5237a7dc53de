package logs

import (
	"context"
	"log/slog"

	"econflow/internal/sim"
)

// AttachBus logs simulation events: transitions and latches at info,
// individual attacks and replication steps at debug.
func AttachBus(ctx context.Context, bus *sim.EventBus, logger *slog.Logger) {
	bus.SubscribeAll(func(e sim.Event) {
		switch e.Type {
		case sim.EventRichAttack, sim.EventMachineAttack:
			logger.DebugContext(ctx, e.Type.String(), "frame", e.Frame, "count", e.Data)
		case sim.EventReplication:
			logger.DebugContext(ctx, e.Type.String(), "frame", e.Frame, "machines", e.Data)
		case sim.EventStageAdvanced, sim.EventPhaseComplete, sim.EventReset:
			logger.InfoContext(ctx, e.Type.String(), "frame", e.Frame, "from", e.From, "to", e.Stage)
		default:
			logger.InfoContext(ctx, e.Type.String(), "frame", e.Frame, "stage", e.Stage, "count", e.Data)
		}
	})
}
