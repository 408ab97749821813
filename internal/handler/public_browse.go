package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinetix/session-booking/internal/model"
	"github.com/cinetix/session-booking/internal/repository"
)

// PublicHandler serves unauthenticated browse endpoints.  Responses are
// sanitized: owner IDs and internal timestamps stay out of the payload.
type PublicHandler struct {
	RoomRepo    *repository.RoomRepo
	FilmRepo    *repository.FilmRepo
	SessionRepo *repository.SessionRepo
}

func NewPublicHandler(roomRepo *repository.RoomRepo, filmRepo *repository.FilmRepo, sessionRepo *repository.SessionRepo) *PublicHandler {
	if roomRepo == nil || filmRepo == nil || sessionRepo == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{RoomRepo: roomRepo, FilmRepo: filmRepo, SessionRepo: sessionRepo}
}

type publicRoom struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type publicSession struct {
	ID         uint64    `json:"id"`
	RoomID     uint64    `json:"room_id"`
	FilmTitle  string    `json:"film_title,omitempty"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	PriceCents uint32    `json:"price_cents"`
	Status     string    `json:"status"`
}

// ListRooms handles GET /v1/rooms and returns all active rooms.
func (h *PublicHandler) ListRooms(c echo.Context) error {
	rooms, err := h.RoomRepo.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load rooms"})
	}
	out := make([]publicRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, publicRoom{ID: r.ID, Name: r.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// ListRoomSessions handles GET /v1/rooms/:id/sessions and returns the
// scheduled sessions of a room, ordered by start time.
func (h *PublicHandler) ListRoomSessions(c echo.Context) error {
	roomID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	ctx := c.Request().Context()
	if _, err := h.RoomRepo.GetByID(ctx, roomID); err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	sessions, err := h.SessionRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load sessions"})
	}
	out := make([]publicSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Status != model.SessionScheduled {
			continue
		}
		out = append(out, h.toPublicSession(c, s))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetSession handles GET /v1/sessions/:id and returns one session's
// public details.
func (h *PublicHandler) GetSession(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
	}
	s, err := h.SessionRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrSessionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load session"})
	}
	return c.JSON(http.StatusOK, h.toPublicSession(c, *s))
}

func (h *PublicHandler) toPublicSession(c echo.Context, s model.Session) publicSession {
	out := publicSession{
		ID:         s.ID,
		RoomID:     s.RoomID,
		StartsAt:   s.StartsAt,
		EndsAt:     s.EndsAt,
		PriceCents: s.PriceCents,
		Status:     s.Status,
	}
	// Title is decoration for the listing; a lookup failure just leaves
	// it empty.
	if film, err := h.FilmRepo.GetByID(c.Request().Context(), s.FilmID); err == nil {
		out.FilmTitle = film.Title
	}
	return out
}
