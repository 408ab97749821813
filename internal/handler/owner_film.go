package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinetix/session-booking/internal/model"
)

// CreateFilm handles POST /v1/films and adds a film to the owner's
// catalogue.  Duration must be positive: a film without a running time
// cannot produce a session end time.
func (h *OwnerHandler) CreateFilm(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Title       string `json:"title"`
		Genre       string `json:"genre"`
		DurationMin uint32 `json:"duration_min"`
		PriceCents  uint32 `json:"price_cents"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	title := strings.TrimSpace(body.Title)
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if body.DurationMin == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration_min must be positive"})
	}
	film := &model.Film{
		OwnerID:     ownerID,
		Title:       title,
		Genre:       strings.ToUpper(strings.TrimSpace(body.Genre)),
		DurationMin: body.DurationMin,
		PriceCents:  body.PriceCents,
	}
	if err := h.FilmRepo.Create(c.Request().Context(), film); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create film"})
	}
	return c.JSON(http.StatusCreated, film)
}

// ListFilms handles GET /v1/my-films and returns the owner's catalogue.
func (h *OwnerHandler) ListFilms(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	films, err := h.FilmRepo.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load films"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": films})
}
