package api

import (
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service booking.BookingUseCase
}

type registerPassengerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type passengerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func NewPassengerHandler(service booking.BookingUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.GET("/:id/tickets", h.tickets)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req registerPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}

	passenger, err := h.service.RegisterPassenger(c.Request.Context(), booking.RegisterPassengerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toPassengerResponse(passenger))
}

func (h *PassengerHandler) get(c *gin.Context) {
	passenger, err := h.service.GetPassenger(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(passenger))
}

func (h *PassengerHandler) tickets(c *gin.Context) {
	tickets, err := h.service.PassengerTickets(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

func toPassengerResponse(p *domain.Passenger) passengerResponse {
	return passengerResponse{ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone}
}
