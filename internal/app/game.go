package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/randomtoy/pairs-go/internal/domain"
	"github.com/randomtoy/pairs-go/internal/ports"
)

// NewGameRequest is the application-level input (no HTTP types).
// Zero values fall back to the service defaults.
type NewGameRequest struct {
	SlotCount int
	Deferred  *bool
}

// Defaults apply to games created without explicit settings.
type Defaults struct {
	SlotCount int
	Deferred  bool
}

type TapRequest struct {
	GameID string
	Slot   int
}

// SlotView hides the card of a face-down slot.
type SlotView struct {
	Index      int
	Visibility domain.Visibility
	Card       *domain.Card
}

// GameSnapshot is the application-level view of a game.
type GameSnapshot struct {
	ID        string
	Slots     []SlotView
	FlipCount int
	GameOver  bool
	Pending   bool
	Deferred  bool
	Summary   string
}

type TapResponse struct {
	Outcome domain.Outcome
	Game    GameSnapshot
}

// GameService orchestrates match sessions and forwards their outcomes to
// the animation driver.
type GameService struct {
	store    ports.SessionStore
	driver   ports.AnimationDriver
	rng      domain.RNG
	defaults Defaults
	logger   *slog.Logger

	// One lock per live game; a missing entry means the game does not exist.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGameService(store ports.SessionStore, driver ports.AnimationDriver, rng domain.RNG, defaults Defaults, logger *slog.Logger) *GameService {
	return &GameService{
		store:    store,
		driver:   driver,
		rng:      rng,
		defaults: defaults,
		logger:   logger,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *GameService) NewGame(ctx context.Context, req NewGameRequest) (GameSnapshot, error) {
	size := req.SlotCount
	if size == 0 {
		size = s.defaults.SlotCount
	}
	deferred := s.defaults.Deferred
	if req.Deferred != nil {
		deferred = *req.Deferred
	}

	sess, err := s.newSession(size, deferred)
	if err != nil {
		return GameSnapshot{}, err
	}

	id := uuid.NewString()
	if err := s.store.Save(ctx, id, sess); err != nil {
		return GameSnapshot{}, fmt.Errorf("save game: %w", err)
	}
	s.mu.Lock()
	s.locks[id] = &sync.Mutex{}
	s.mu.Unlock()
	s.logger.InfoContext(ctx, "game started", "game_id", id, "slots", size, "deferred", deferred)
	return snapshot(id, sess), nil
}

func (s *GameService) Game(ctx context.Context, gameID string) (GameSnapshot, error) {
	unlock, err := s.lock(gameID)
	if err != nil {
		return GameSnapshot{}, err
	}
	defer unlock()

	sess, err := s.store.Get(ctx, gameID)
	if err != nil {
		return GameSnapshot{}, fmt.Errorf("get game: %w", err)
	}
	return snapshot(gameID, sess), nil
}

func (s *GameService) Tap(ctx context.Context, req TapRequest) (TapResponse, error) {
	unlock, err := s.lock(req.GameID)
	if err != nil {
		return TapResponse{}, err
	}
	defer unlock()

	sess, err := s.store.Get(ctx, req.GameID)
	if err != nil {
		return TapResponse{}, fmt.Errorf("get game: %w", err)
	}

	before := sess.FaceUp()
	outcome, err := sess.Tap(req.Slot)
	if err != nil {
		return TapResponse{}, fmt.Errorf("tap: %w", err)
	}

	switch outcome {
	case domain.OutcomeFlipped:
		s.animate(ctx, req.GameID, ports.AnimateFlip, sess, req.Slot)
	case domain.OutcomeMatched, domain.OutcomeMismatched:
		kind := ports.AnimateMismatch
		if outcome == domain.OutcomeMatched {
			kind = ports.AnimateMatch
		}
		s.animate(ctx, req.GameID, kind, sess, append(before, req.Slot)...)
		s.announceEnd(ctx, req.GameID, sess)
	}

	return TapResponse{Outcome: outcome, Game: snapshot(req.GameID, sess)}, nil
}

// Resolve settles the face-up pair of a deferred game.
func (s *GameService) Resolve(ctx context.Context, gameID string) (TapResponse, error) {
	unlock, err := s.lock(gameID)
	if err != nil {
		return TapResponse{}, err
	}
	defer unlock()

	sess, err := s.store.Get(ctx, gameID)
	if err != nil {
		return TapResponse{}, fmt.Errorf("get game: %w", err)
	}

	pair := sess.FaceUp()
	outcome, err := sess.Resolve()
	if err != nil {
		return TapResponse{}, fmt.Errorf("resolve: %w", err)
	}
	s.animate(ctx, gameID, ports.AnimateResolved, sess, pair...)
	s.announceEnd(ctx, gameID, sess)

	return TapResponse{Outcome: outcome, Game: snapshot(gameID, sess)}, nil
}

// Restart deals a fresh board under the same game ID.
func (s *GameService) Restart(ctx context.Context, gameID string) (GameSnapshot, error) {
	unlock, err := s.lock(gameID)
	if err != nil {
		return GameSnapshot{}, err
	}
	defer unlock()

	old, err := s.store.Get(ctx, gameID)
	if err != nil {
		return GameSnapshot{}, fmt.Errorf("get game: %w", err)
	}
	sess, err := s.newSession(old.SlotCount(), old.Deferred())
	if err != nil {
		return GameSnapshot{}, err
	}
	if err := s.store.Save(ctx, gameID, sess); err != nil {
		return GameSnapshot{}, fmt.Errorf("save game: %w", err)
	}
	s.logger.InfoContext(ctx, "game restarted", "game_id", gameID, "previous_flips", old.FlipCount())
	return snapshot(gameID, sess), nil
}

func (s *GameService) EndGame(ctx context.Context, gameID string) error {
	unlock, err := s.lock(gameID)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := s.store.Get(ctx, gameID); err != nil {
		return fmt.Errorf("get game: %w", err)
	}
	if err := s.store.Delete(ctx, gameID); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}

	s.mu.Lock()
	delete(s.locks, gameID)
	s.mu.Unlock()
	return nil
}

func (s *GameService) newSession(size int, deferred bool) (*domain.Session, error) {
	var opts []domain.Option
	if deferred {
		opts = append(opts, domain.WithDeferredResolution())
	}
	sess, err := domain.NewSession(size, s.rng, opts...)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return sess, nil
}

func (s *GameService) lock(gameID string) (func(), error) {
	s.mu.Lock()
	l, ok := s.locks[gameID]
	s.mu.Unlock()
	if !ok {
		return nil, ports.ErrGameNotFound
	}

	l.Lock()
	return l.Unlock, nil
}

func (s *GameService) announceEnd(ctx context.Context, gameID string, sess *domain.Session) {
	if !sess.IsGameOver() {
		return
	}
	s.logger.InfoContext(ctx, "game over", "game_id", gameID, "flips", sess.FlipCount())
	s.animate(ctx, gameID, ports.AnimateGameOver, sess)
}

func (s *GameService) animate(ctx context.Context, gameID string, kind ports.AnimationKind, sess *domain.Session, slots ...int) {
	ev := ports.AnimationEvent{
		GameID:    gameID,
		Kind:      kind,
		Slots:     slots,
		FlipCount: sess.FlipCount(),
	}
	if err := s.driver.Animate(ctx, ev); err != nil {
		s.logger.WarnContext(ctx, "animation failed", "game_id", gameID, "kind", kind, "error", err)
	}
}

func snapshot(id string, sess *domain.Session) GameSnapshot {
	slots := sess.Slots()
	views := make([]SlotView, len(slots))
	for i, sl := range slots {
		views[i] = SlotView{Index: i, Visibility: sl.Visibility}
		if sl.Visibility != domain.FaceDown {
			c := sl.Card
			views[i].Card = &c
		}
	}

	gs := GameSnapshot{
		ID:        id,
		Slots:     views,
		FlipCount: sess.FlipCount(),
		GameOver:  sess.IsGameOver(),
		Pending:   sess.Pending(),
		Deferred:  sess.Deferred(),
	}
	if gs.GameOver {
		gs.Summary = fmt.Sprintf("Total flips: %d", gs.FlipCount)
	}
	return gs
}
