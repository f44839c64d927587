package terminal

import (
	"context"
	"fmt"
	"io"

	"github.com/wsxiaoys/terminal/color"

	"github.com/randomtoy/pairs-go/internal/ports"
)

// Driver prints a one-line caption for each outcome.
type Driver struct {
	w io.Writer
}

func NewDriver(w io.Writer) *Driver {
	return &Driver{w: w}
}

func (d *Driver) Animate(_ context.Context, ev ports.AnimationEvent) error {
	var line string
	switch ev.Kind {
	case ports.AnimateMatch:
		line = fmt.Sprintf("@gmatch!@| slots %v cleared", ev.Slots)
	case ports.AnimateMismatch:
		line = fmt.Sprintf("@yno match@| slots %v turned back", ev.Slots)
	case ports.AnimateGameOver:
		line = fmt.Sprintf("@{g!}Game over.@| Total flips: %d", ev.FlipCount)
	default:
		return nil
	}
	_, err := fmt.Fprintln(d.w, color.Sprint(line))
	return err
}
