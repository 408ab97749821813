package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cinetix/session-booking/internal/repository"
)

// OwnerHandler bundles the repositories owners need to manage their
// catalogue and schedule.
type OwnerHandler struct {
	FilmRepo    *repository.FilmRepo
	RoomRepo    *repository.RoomRepo
	SessionRepo *repository.SessionRepo
}

// NewOwnerHandler constructs an OwnerHandler and panics on a nil
// dependency: a handler with a missing repository is a wiring bug, not a
// runtime condition.
func NewOwnerHandler(filmRepo *repository.FilmRepo, roomRepo *repository.RoomRepo, sessionRepo *repository.SessionRepo) *OwnerHandler {
	if filmRepo == nil || roomRepo == nil || sessionRepo == nil {
		panic("nil repository passed to NewOwnerHandler")
	}
	return &OwnerHandler{
		FilmRepo:    filmRepo,
		RoomRepo:    roomRepo,
		SessionRepo: sessionRepo,
	}
}

// getUserID extracts the user_id JWTAuth stored in the context.  JWT
// numeric claims decode as float64, so several shapes are accepted.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
