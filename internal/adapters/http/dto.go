package http

import (
	"github.com/randomtoy/pairs-go/internal/app"
	"github.com/randomtoy/pairs-go/internal/domain"
)

type NewGameRequest struct {
	Slots    int   `json:"slots"`
	Deferred *bool `json:"deferred"`
}

type TapRequest struct {
	Slot *int `json:"slot"`
}

// GameResponse is the JSON shape of a game snapshot.
type GameResponse struct {
	ID        string         `json:"id"`
	Slots     []SlotResponse `json:"slots"`
	FlipCount int            `json:"flip_count"`
	GameOver  bool           `json:"game_over"`
	Pending   bool           `json:"pending"`
	Deferred  bool           `json:"deferred"`
	Summary   string         `json:"summary,omitempty"`
}

type SlotResponse struct {
	Index      int               `json:"index"`
	Visibility domain.Visibility `json:"visibility"`
	Card       *CardResponse     `json:"card,omitempty"`
}

type CardResponse struct {
	Rank  string `json:"rank"`
	Suit  string `json:"suit"`
	Label string `json:"label"`
}

type TapResponse struct {
	Outcome domain.Outcome `json:"outcome"`
	Game    GameResponse   `json:"game"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toGameResponse(g app.GameSnapshot) GameResponse {
	slots := make([]SlotResponse, len(g.Slots))
	for i, sl := range g.Slots {
		slots[i] = SlotResponse{Index: sl.Index, Visibility: sl.Visibility}
		if sl.Card != nil {
			slots[i].Card = &CardResponse{
				Rank:  sl.Card.Rank.String(),
				Suit:  sl.Card.Suit.String(),
				Label: sl.Card.String(),
			}
		}
	}
	return GameResponse{
		ID:        g.ID,
		Slots:     slots,
		FlipCount: g.FlipCount,
		GameOver:  g.GameOver,
		Pending:   g.Pending,
		Deferred:  g.Deferred,
		Summary:   g.Summary,
	}
}

func toTapResponse(r app.TapResponse) TapResponse {
	return TapResponse{Outcome: r.Outcome, Game: toGameResponse(r.Game)}
}
