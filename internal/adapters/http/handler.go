package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/pairs-go/internal/app"
	"github.com/randomtoy/pairs-go/internal/domain"
	"github.com/randomtoy/pairs-go/internal/ports"
)

// EventStream attaches a client to the animation events of one game.
type EventStream interface {
	Subscribe(w http.ResponseWriter, r *http.Request, gameID string) error
}

type Handler struct {
	svc    *app.GameService
	events EventStream
	logger *slog.Logger
}

func NewHandler(svc *app.GameService, events EventStream, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, events: events, logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	g := e.Group("/v1/games")
	g.POST("", h.CreateGame)
	g.GET("/:id", h.GetGame)
	g.DELETE("/:id", h.DeleteGame)
	g.POST("/:id/taps", h.Tap)
	g.POST("/:id/resolve", h.Resolve)
	g.POST("/:id/restart", h.Restart)
	g.GET("/:id/events", h.Events)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateGame(c echo.Context) error {
	var req NewGameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}

	g, err := h.svc.NewGame(c.Request().Context(), app.NewGameRequest{
		SlotCount: req.Slots,
		Deferred:  req.Deferred,
	})
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toGameResponse(g))
}

func (h *Handler) GetGame(c echo.Context) error {
	g, err := h.svc.Game(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toGameResponse(g))
}

func (h *Handler) DeleteGame(c echo.Context) error {
	if err := h.svc.EndGame(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Tap(c echo.Context) error {
	var req TapRequest
	if err := c.Bind(&req); err != nil || req.Slot == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "slot is required"})
	}

	resp, err := h.svc.Tap(c.Request().Context(), app.TapRequest{
		GameID: c.Param("id"),
		Slot:   *req.Slot,
	})
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toTapResponse(resp))
}

func (h *Handler) Resolve(c echo.Context) error {
	resp, err := h.svc.Resolve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toTapResponse(resp))
}

func (h *Handler) Restart(c echo.Context) error {
	g, err := h.svc.Restart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toGameResponse(g))
}

func (h *Handler) Events(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.svc.Game(c.Request().Context(), id); err != nil {
		return h.mapError(c, err)
	}
	if err := h.events.Subscribe(c.Response(), c.Request(), id); err != nil {
		// The upgrader has already written the HTTP error.
		h.logger.Warn("websocket upgrade failed", "game_id", id, "error", err)
	}
	return nil
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, ports.ErrGameNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidSlotIndex), errors.Is(err, domain.ErrInvalidSlotCount):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmptyDeck):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "at most 52 slots (26 pairs) can be dealt"})
	case errors.Is(err, domain.ErrNothingPending):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
