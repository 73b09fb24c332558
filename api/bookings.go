package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookFlightRequest struct {
	PassengerID   string `json:"passenger_id"`
	FlightNumber  string `json:"flight_number"`
	Seat          string `json:"seat"`
	PaymentMethod string `json:"payment_method"`
}

type ticketResponse struct {
	Number        string `json:"number"`
	FlightNumber  string `json:"flight_number"`
	PassengerID   string `json:"passenger_id"`
	Seat          string `json:"seat"`
	Status        string `json:"status"`
	AmountCents   int64  `json:"amount_cents"`
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
	IssuedAt      string `json:"issued_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
}

func (h *BookingHandler) RegisterTickets(router *gin.RouterGroup) {
	router.GET("/:number", h.getTicket)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req bookFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.BookFlight(c.Request.Context(), booking.BookFlightInput{
		PassengerID:   req.PassengerID,
		FlightNumber:  req.FlightNumber,
		Seat:          req.Seat,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toTicketResponse(ticket))
}

func (h *BookingHandler) getTicket(c *gin.Context) {
	ticket, err := h.service.GetTicket(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func toTicketResponse(t *domain.Ticket) ticketResponse {
	return ticketResponse{
		Number:        t.Number,
		FlightNumber:  t.FlightNumber,
		PassengerID:   t.PassengerID,
		Seat:          string(t.Seat),
		Status:        string(t.Status),
		AmountCents:   t.Payment.AmountCents,
		PaymentMethod: string(t.Payment.Method),
		PaymentStatus: string(t.Payment.Status),
		IssuedAt:      t.IssuedAt.Format(time.RFC3339),
	}
}
