package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/cinetix/session-booking/internal/handler"
	"github.com/cinetix/session-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.  Unauthenticated
// operations live under /v1/auth; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the token pair: the presented refresh token is
	// revoked and a new pair is issued.
	g.POST("/refresh", a.Refresh)
	// Logout takes the refresh token in the body, so no JWT is needed.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers unauthenticated browse endpoints.  Responses
// are sanitized in the handler so guests never see owner data.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	// Active rooms only.
	e.GET("/v1/rooms", p.ListRooms)
	// Scheduled sessions of a room, ordered by start time.
	e.GET("/v1/rooms/:id/sessions", p.ListRoomSessions)
	// Session details by id.
	e.GET("/v1/sessions/:id", p.GetSession)
}
