package logs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type runKey struct{}

// RunID identifies one session from launch to exit.
type RunID string

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

// WithRun tags every record logged with ctx by the run id.
func WithRun(ctx context.Context, id RunID) context.Context {
	return context.WithValue(ctx, runKey{}, id)
}

// RunFrom returns the run id carried by ctx, if any.
func RunFrom(ctx context.Context) (RunID, bool) {
	id, ok := ctx.Value(runKey{}).(RunID)
	return id, ok
}

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if id, ok := RunFrom(ctx); ok {
		record.Add("run", string(id))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}
