package api

import (
	"net/http"
	"strconv"

	"github.com/duchauuuuu/flight-backend/internal/service/search"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service search.SearchUseCase
}

func NewFlightHandler(service search.SearchUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/search", h.search)
	router.POST("/search/multicity", h.searchMultiCity)
	router.GET("/:id", h.get)
}

type multiCitySearchRequest struct {
	Segments   []search.Segment `json:"segments" binding:"required,min=1"`
	CabinClass string           `json:"cabinClass"`
	Passengers int              `json:"passengers"`
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) search(c *gin.Context) {
	passengers, _ := strconv.Atoi(c.Query("passengers"))
	flights, err := h.service.Search(c.Request.Context(), search.Criteria{
		From:       c.Query("from"),
		To:         c.Query("to"),
		Airline:    c.Query("airline"),
		Date:       c.Query("date"),
		CabinClass: c.Query("cabinClass"),
		Passengers: passengers,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) searchMultiCity(c *gin.Context) {
	var req multiCitySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.service.SearchMultiCity(c.Request.Context(), req.Segments, req.CabinClass, req.Passengers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}
