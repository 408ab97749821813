package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cinetix/session-booking/internal/handler"
	"github.com/cinetix/session-booking/internal/middleware"
)

// RegisterCustomer registers customer-scoped endpoints under /v1.  All
// routes require a valid JWT and the CUSTOMER role.  Customers buy
// tickets for scheduled sessions and review their own purchases.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER"),
	)
	// Note: GET /v1/sessions/:id is registered on the public router so
	// that guests can inspect a session before buying.
	g.POST("/sessions/:id/tickets", h.BuyTicket)
	g.GET("/my-tickets", h.ListMyTickets)
}
