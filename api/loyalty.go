package api

import (
	"net/http"

	"github.com/duchauuuuu/flight-backend/internal/service/loyalty"
	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	service loyalty.LoyaltyUseCase
}

func NewLoyaltyHandler(service loyalty.LoyaltyUseCase) *LoyaltyHandler {
	return &LoyaltyHandler{service: service}
}

func (h *LoyaltyHandler) Register(router *gin.RouterGroup) {
	router.GET("/:id/loyalty", h.profile)
}

type loyaltyResponse struct {
	UserID         string `json:"userId"`
	Points         int    `json:"points"`
	MembershipTier string `json:"membershipTier"`
}

func (h *LoyaltyHandler) profile(c *gin.Context) {
	user, tier, err := h.service.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loyaltyResponse{
		UserID:         user.ID,
		Points:         user.Points,
		MembershipTier: string(tier),
	})
}
