package api

import (
	"net/http"
	"time"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/duchauuuuu/flight-backend/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.GET("/user/:userId", h.listByUser)
	router.GET("/flight/:flightId", h.listByFlight)
	router.GET("/status/:status", h.listByStatus)
	router.PATCH("/:id/status", h.updateStatus)
	router.POST("/:id/cancel", h.cancel)
}

type paymentPayload struct {
	Method string    `json:"method"`
	Amount int64     `json:"amount"`
	PaidAt time.Time `json:"paidAt"`
}

type createBookingRequest struct {
	UserID          string                 `json:"userId" binding:"required"`
	FlightIDs       []string               `json:"flightIds" binding:"required,min=1"`
	TripType        string                 `json:"tripType"`
	TravellerCounts domain.TravellerCounts `json:"travellerCounts"`
	Travellers      []domain.Traveller     `json:"travellers"`
	ContactDetails  *domain.ContactDetails `json:"contactDetails"`
	CabinClass      string                 `json:"cabinClass"`
	Status          string                 `json:"status"`
	Payment         *paymentPayload        `json:"payment"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type bookingResponse struct {
	ID              string                 `json:"id"`
	BookingCode     string                 `json:"bookingCode"`
	UserID          string                 `json:"userId"`
	FlightIDs       []string               `json:"flightIds"`
	TripType        string                 `json:"tripType"`
	TravellerCounts domain.TravellerCounts `json:"travellerCounts"`
	Travellers      []domain.Traveller     `json:"travellers,omitempty"`
	ContactDetails  *domain.ContactDetails `json:"contactDetails,omitempty"`
	CabinClass      string                 `json:"cabinClass"`
	Status          string                 `json:"status"`
	Payment         *paymentPayload        `json:"payment,omitempty"`
	CreatedAt       string                 `json:"createdAt"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:              b.ID,
		BookingCode:     b.BookingCode,
		UserID:          b.UserID,
		FlightIDs:       b.FlightIDs,
		TripType:        string(b.TripType),
		TravellerCounts: b.TravellerCounts,
		Travellers:      b.Travellers,
		ContactDetails:  b.ContactDetails,
		CabinClass:      string(b.CabinClass),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
	if b.Payment != nil {
		resp.Payment = &paymentPayload{Method: b.Payment.Method, Amount: b.Payment.Amount, PaidAt: b.Payment.PaidAt}
	}
	return resp
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := booking.CreateInput{
		UserID:          req.UserID,
		FlightIDs:       req.FlightIDs,
		TripType:        domain.TripType(req.TripType),
		TravellerCounts: req.TravellerCounts,
		Travellers:      req.Travellers,
		ContactDetails:  req.ContactDetails,
		CabinClass:      domain.CabinClass(req.CabinClass),
		Status:          domain.BookingStatus(req.Status),
	}
	if req.Payment != nil {
		input.Payment = &domain.Payment{Method: req.Payment.Method, Amount: req.Payment.Amount, PaidAt: req.Payment.PaidAt}
	}

	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) listByUser(c *gin.Context) {
	h.respondList(c)(h.service.ListByUser(c.Request.Context(), c.Param("userId")))
}

func (h *BookingHandler) listByFlight(c *gin.Context) {
	h.respondList(c)(h.service.ListByFlight(c.Request.Context(), c.Param("flightId")))
}

func (h *BookingHandler) listByStatus(c *gin.Context) {
	h.respondList(c)(h.service.ListByStatus(c.Request.Context(), domain.BookingStatus(c.Param("status"))))
}

func (h *BookingHandler) respondList(c *gin.Context) func([]domain.Booking, error) {
	return func(bookings []domain.Booking, err error) {
		if err != nil {
			c.JSON(statusFromError(err), gin.H{"error": err.Error()})
			return
		}
		out := make([]bookingResponse, 0, len(bookings))
		for i := range bookings {
			out = append(out, toBookingResponse(&bookings[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

func (h *BookingHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	cancelled, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(cancelled))
}
