package animation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/randomtoy/pairs-go/internal/ports"
)

// LogDriver writes every event to a structured logger.
type LogDriver struct {
	logger *slog.Logger
}

func NewLogDriver(logger *slog.Logger) *LogDriver {
	return &LogDriver{logger: logger}
}

func (d *LogDriver) Animate(ctx context.Context, ev ports.AnimationEvent) error {
	d.logger.DebugContext(ctx, "animate",
		"game_id", ev.GameID,
		"kind", ev.Kind,
		"slots", ev.Slots,
		"flip_count", ev.FlipCount,
	)
	return nil
}

// Fanout sends each event to all drivers and joins their errors.
type Fanout []ports.AnimationDriver

func (f Fanout) Animate(ctx context.Context, ev ports.AnimationEvent) error {
	var errs []error
	for _, d := range f {
		if err := d.Animate(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
