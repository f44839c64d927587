package domain

import (
	"context"
	"fmt"
	"slices"

	"github.com/looplab/fsm"
)

const (
	eventFlip    = "flip"
	eventConceal = "conceal"
	eventRemove  = "remove"
)

var slotEvents = fsm.Events{
	{Name: eventFlip, Src: []string{string(FaceDown)}, Dst: string(FaceUp)},
	{Name: eventConceal, Src: []string{string(FaceUp)}, Dst: string(FaceDown)},
	{Name: eventRemove, Src: []string{string(FaceUp)}, Dst: string(Removed)},
}

type slot struct {
	card  Card
	state *fsm.FSM
}

func newSlot(c Card) *slot {
	return &slot{card: c, state: fsm.NewFSM(string(FaceDown), slotEvents, fsm.Callbacks{})}
}

func (s *slot) visibility() Visibility {
	return Visibility(s.state.Current())
}

func (s *slot) fire(event string) error {
	if err := s.state.Event(context.Background(), event); err != nil {
		return fmt.Errorf("slot %s: %s: %w", s.card, event, err)
	}
	return nil
}

// Option configures a Session.
type Option func(*Session)

// WithDeferredResolution keeps a completed pair face-up until Resolve is
// called, so a renderer can finish its flip animation first. Taps are
// ignored while a pair is pending.
func WithDeferredResolution() Option {
	return func(s *Session) { s.deferred = true }
}

type pendingPair struct {
	a, b    int
	outcome Outcome
}

// Session is one game of concentration over a fixed set of slots.
// It is not safe for concurrent use.
type Session struct {
	slots    []*slot
	flips    int
	deferred bool
	pending  *pendingPair
}

// NewSession deals slotCount cards, each card appearing on exactly two slots,
// and places them face-down in random order.
func NewSession(slotCount int, rng RNG, opts ...Option) (*Session, error) {
	if slotCount <= 0 || slotCount%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotCount, slotCount)
	}

	deck := NewDeck(rng)
	pool := make([]Card, 0, slotCount)
	for range slotCount / 2 {
		c, err := deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("deal %d slots: %w", slotCount, err)
		}
		pool = append(pool, c, c)
	}

	s := &Session{slots: make([]*slot, slotCount)}
	for i := range s.slots {
		j := rng.Intn(len(pool))
		s.slots[i] = newSlot(pool[j])
		pool = slices.Delete(pool, j, j+1)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Tap flips the slot at index i face-up and settles the pair once two
// slots are showing. Taps on a slot that is not face-down, or while two
// slots are already face-up, are ignored and do not count as flips.
func (s *Session) Tap(i int) (Outcome, error) {
	if i < 0 || i >= len(s.slots) {
		return OutcomeIgnored, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidSlotIndex, i, len(s.slots))
	}

	up := s.FaceUp()
	if len(up) >= 2 || s.slots[i].visibility() != FaceDown {
		return OutcomeIgnored, nil
	}

	s.flips++
	if err := s.slots[i].fire(eventFlip); err != nil {
		return OutcomeIgnored, err
	}
	if len(up) == 0 {
		return OutcomeFlipped, nil
	}

	p := pendingPair{a: up[0], b: i, outcome: OutcomeMismatched}
	if s.slots[p.a].card == s.slots[p.b].card {
		p.outcome = OutcomeMatched
	}
	if s.deferred {
		s.pending = &p
		return p.outcome, nil
	}
	return p.outcome, s.settle(p)
}

// Resolve settles a pair held face-up by WithDeferredResolution.
func (s *Session) Resolve() (Outcome, error) {
	if s.pending == nil {
		return OutcomeIgnored, ErrNothingPending
	}
	p := *s.pending
	s.pending = nil
	return p.outcome, s.settle(p)
}

func (s *Session) settle(p pendingPair) error {
	event := eventConceal
	if p.outcome == OutcomeMatched {
		event = eventRemove
	}
	for _, i := range []int{p.a, p.b} {
		if err := s.slots[i].fire(event); err != nil {
			return err
		}
	}
	return nil
}

// IsGameOver reports whether every slot has been removed.
func (s *Session) IsGameOver() bool {
	for _, sl := range s.slots {
		if sl.visibility() != Removed {
			return false
		}
	}
	return true
}

// FlipCount returns the number of taps that flipped a card.
func (s *Session) FlipCount() int { return s.flips }

func (s *Session) SlotCount() int { return len(s.slots) }

// Deferred reports whether the session was built WithDeferredResolution.
func (s *Session) Deferred() bool { return s.deferred }

// Pending reports whether a face-up pair is waiting for Resolve.
func (s *Session) Pending() bool { return s.pending != nil }

// FaceUp returns the indices of face-up slots in ascending order.
func (s *Session) FaceUp() []int {
	var out []int
	for i, sl := range s.slots {
		if sl.visibility() == FaceUp {
			out = append(out, i)
		}
	}
	return out
}

// Slots returns a snapshot of every slot.
func (s *Session) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	for i, sl := range s.slots {
		out[i] = Slot{Card: sl.card, Visibility: sl.visibility()}
	}
	return out
}
