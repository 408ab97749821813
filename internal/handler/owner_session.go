package handler // owner-specific session scheduling handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinetix/session-booking/internal/model"
	"github.com/cinetix/session-booking/internal/repository"
	"github.com/cinetix/session-booking/internal/schedule"
)

// CreateSession handles POST /v1/sessions and schedules a screening.
// The admission decision is made by schedule.Scheduler over the room's
// currently booked sessions; check and insert run in one transaction with
// the room's session rows locked, so two concurrent requests for the same
// room cannot both pass the check.
func (h *OwnerHandler) CreateSession(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		RoomID   uint64 `json:"room_id"`
		FilmID   uint64 `json:"film_id"`
		StartsAt string `json:"starts_at"` // RFC3339
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}
	if body.FilmID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "film_id is required"})
	}
	startsAt := strings.TrimSpace(body.StartsAt)
	if startsAt == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "starts_at is required"})
	}
	startTime, err := time.Parse(time.RFC3339, startsAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid starts_at format"})
	}

	ctx := c.Request().Context()
	room, err := h.RoomRepo.GetByIDAndOwner(ctx, body.RoomID, ownerID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify room"})
	}
	if !room.IsActive {
		return c.JSON(http.StatusConflict, echo.Map{"error": "room is not active"})
	}
	film, err := h.FilmRepo.GetByIDAndOwner(ctx, body.FilmID, ownerID)
	if err != nil {
		if err == repository.ErrFilmNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "film not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load film"})
	}

	candidate, err := model.NewSession(*room, *film, startTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session"})
	}

	tx, err := h.SessionRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to begin transaction"})
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	// Lock the room's booked sessions for the duration of the check.
	existing, err := h.SessionRepo.ListScheduledByRoomTx(ctx, tx, room.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load sessions"})
	}
	sched := schedule.NewScheduler(existing)
	if !sched.Fits(candidate) {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":     "session time overlaps with an existing session",
			"conflicts": sched.Conflicts(candidate, 0),
		})
	}
	if err := h.SessionRepo.CreateTx(ctx, tx, &candidate); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create session"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create session"})
	}
	return c.JSON(http.StatusCreated, candidate)
}

// ListSessionsInRoom handles GET /v1/my-rooms/:room_id/sessions and
// returns the full schedule of one of the owner's rooms.
func (h *OwnerHandler) ListSessionsInRoom(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	roomID, err := pathID(c, "room_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room_id"})
	}
	ctx := c.Request().Context()
	if _, err := h.RoomRepo.GetByIDAndOwner(ctx, roomID, ownerID); err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	sessions, err := h.SessionRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load sessions"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": sessions})
}

// RescheduleSession handles PATCH /v1/sessions/:id.  It allows moving a
// session to a new start time, swapping the film or changing the status.
// Any time or film change re-runs the fit check against the room's other
// sessions, excluding the session being moved.
func (h *OwnerHandler) RescheduleSession(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	cur, err := h.SessionRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrSessionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load session"})
	}
	room, err := h.RoomRepo.GetByIDAndOwner(ctx, cur.RoomID, ownerID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			// Not the caller's room; answer as if the session did not exist.
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify ownership"})
	}

	var body struct {
		FilmID   *uint64 `json:"film_id"`
		StartsAt *string `json:"starts_at"` // RFC3339
		Status   *string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	filmID := cur.FilmID
	if body.FilmID != nil && *body.FilmID != 0 {
		filmID = *body.FilmID
	}
	film, err := h.FilmRepo.GetByIDAndOwner(ctx, filmID, ownerID)
	if err != nil {
		if err == repository.ErrFilmNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "film not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load film"})
	}

	startTime := cur.StartsAt
	if body.StartsAt != nil && strings.TrimSpace(*body.StartsAt) != "" {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(*body.StartsAt))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid starts_at format"})
		}
		startTime = t
	}

	status := cur.Status
	if body.Status != nil {
		s := strings.ToUpper(strings.TrimSpace(*body.Status))
		switch s {
		case model.SessionScheduled, model.SessionCancelled, model.SessionFinished:
			status = s
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
		}
	}

	next, err := model.NewSession(*room, *film, startTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session"})
	}
	next.ID = cur.ID
	next.Status = status

	tx, err := h.SessionRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to begin transaction"})
	}
	defer func() { _ = tx.Rollback() }()

	// A session keeps occupying the room only while SCHEDULED, so the fit
	// check matters just for that target state.
	if next.Status == model.SessionScheduled {
		existing, err := h.SessionRepo.ListScheduledByRoomTx(ctx, tx, room.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load sessions"})
		}
		sched := schedule.NewScheduler(existing)
		if !sched.FitsExcluding(next, cur.ID) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":     "session time overlaps with an existing session",
				"conflicts": sched.Conflicts(next, cur.ID),
			})
		}
	}
	if err := h.SessionRepo.UpdateScheduleTx(ctx, tx, &next); err != nil {
		if err == repository.ErrNoChange {
			return c.JSON(http.StatusConflict, echo.Map{"error": "session already has these parameters"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, next)
}

// DeleteSession handles DELETE /v1/sessions/:id.  Sessions with sold
// tickets cannot be removed.
func (h *OwnerHandler) DeleteSession(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	switch err := h.SessionRepo.DeleteByIDAndOwner(c.Request().Context(), id, ownerID); err {
	case nil:
		return c.NoContent(http.StatusNoContent)
	case repository.ErrSessionNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	case repository.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case repository.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": "session has sold tickets"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
}
