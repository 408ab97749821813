package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cinetix/session-booking/internal/handler"
	"github.com/cinetix/session-booking/internal/middleware"
)

// RegisterOwner registers OWNER-scoped endpoints under /v1.
// All routes require a valid JWT and the OWNER role.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OWNER"),
	)

	// ---- Films ----
	g.POST("/films", o.CreateFilm)
	g.GET("/my-films", o.ListFilms)

	// ---- Rooms ----
	// NOTE: listing rooms for guests is handled by the public browse API
	// (GET /v1/rooms); owners list their own rooms under /my-rooms.
	g.POST("/rooms", o.CreateRoom)
	g.GET("/my-rooms", o.ListRooms)
	g.GET("/my-rooms/:room_id/sessions", o.ListSessionsInRoom)

	// ---- Sessions ----
	g.POST("/sessions", o.CreateSession)
	g.PATCH("/sessions/:id", o.RescheduleSession)
	g.DELETE("/sessions/:id", o.DeleteSession)
}
