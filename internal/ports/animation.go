package ports

import "context"

// AnimationKind names the animation a renderer should play.
type AnimationKind string

const (
	AnimateFlip     AnimationKind = "flip"
	AnimateMatch    AnimationKind = "match"
	AnimateMismatch AnimationKind = "mismatch"
	AnimateResolved AnimationKind = "resolved"
	AnimateGameOver AnimationKind = "game_over"
)

// AnimationEvent describes one state change of a game.
type AnimationEvent struct {
	GameID    string        `json:"game_id"`
	Kind      AnimationKind `json:"kind"`
	Slots     []int         `json:"slots,omitempty"`
	FlipCount int           `json:"flip_count"`
}

// AnimationDriver renders game events. Implementations must not block for
// long; the game service calls them inline after each tap.
type AnimationDriver interface {
	Animate(ctx context.Context, ev AnimationEvent) error
}
