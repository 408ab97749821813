package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinetix/session-booking/internal/model"
	"github.com/cinetix/session-booking/internal/queue"
	"github.com/cinetix/session-booking/internal/repository"
	queue_publisher "github.com/cinetix/session-booking/internal/service"
)

// CustomerHandler bundles the repositories customers need to buy and
// review tickets.
type CustomerHandler struct {
	SessionRepo *repository.SessionRepo
	RoomRepo    *repository.RoomRepo
	FilmRepo    *repository.FilmRepo
	TicketRepo  *repository.TicketRepo
}

func NewCustomerHandler(sessionRepo *repository.SessionRepo, roomRepo *repository.RoomRepo, filmRepo *repository.FilmRepo, ticketRepo *repository.TicketRepo) *CustomerHandler {
	if sessionRepo == nil || roomRepo == nil || filmRepo == nil || ticketRepo == nil {
		panic("nil repository passed to NewCustomerHandler")
	}
	return &CustomerHandler{
		SessionRepo: sessionRepo,
		RoomRepo:    roomRepo,
		FilmRepo:    filmRepo,
		TicketRepo:  ticketRepo,
	}
}

// BuyTicket handles POST /v1/sessions/:id/tickets.  The ticket price is
// fixed here by applying the ticket type's discount to the session price
// (film price + room price).  On success a ticket.issued event is
// published; publish failures are ignored because the purchase has
// already been persisted.
func (h *CustomerHandler) BuyTicket(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	sessionID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
	}
	var body struct {
		SeatLabel string `json:"seat_label"`
		Type      string `json:"type"` // FULL | HALF | STUDENT | BANK
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seat := strings.ToUpper(strings.TrimSpace(body.SeatLabel))
	if seat == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_label is required"})
	}
	typ := model.TicketType(strings.ToUpper(strings.TrimSpace(body.Type)))
	if typ == "" {
		typ = model.TicketFull
	}
	if !typ.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket type"})
	}

	ctx := c.Request().Context()
	session, err := h.SessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if err == repository.ErrSessionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load session"})
	}
	if session.Status != model.SessionScheduled {
		return c.JSON(http.StatusConflict, echo.Map{"error": "session is not open for sale"})
	}

	ticket := model.NewTicket(*session, userID, seat, typ)
	if err := h.TicketRepo.Create(ctx, &ticket); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat already taken"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create ticket"})
	}

	event := queue.TicketIssuedEvent{
		TicketCode: ticket.Code,
		SessionID:  session.ID,
		UserID:     userID,
		RoomID:     session.RoomID,
		SeatLabel:  ticket.SeatLabel,
		TicketType: string(ticket.Type),
		PriceCents: ticket.PriceCents,
		StartsAt:   session.StartsAt.Format(time.RFC3339),
		EndsAt:     session.EndsAt.Format(time.RFC3339),
		IssuedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if room, err := h.RoomRepo.GetByID(ctx, session.RoomID); err == nil {
		event.RoomName = room.Name
	}
	if film, err := h.FilmRepo.GetByID(ctx, session.FilmID); err == nil {
		event.FilmTitle = film.Title
	}
	_ = queue_publisher.PublishTicketIssued(ctx, event)

	return c.JSON(http.StatusCreated, ticket)
}

// ListMyTickets handles GET /v1/my-tickets and returns the caller's
// tickets, newest first.
func (h *CustomerHandler) ListMyTickets(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	tickets, err := h.TicketRepo.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tickets"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": tickets})
}
