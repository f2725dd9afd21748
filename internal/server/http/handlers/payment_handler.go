package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gymkeeper/internal/server/http/dto"
)

// PaymentHandler exposes the monthly payment cycle.
type PaymentHandler struct {
	facade PaymentFacade
}

func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Cycle handles GET /api/payments/cycle.
func (h *PaymentHandler) Cycle(c *gin.Context) {
	period, err := h.facade.LastReset(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CycleResponse{
		Year:   period.Year,
		Month:  int(period.Month),
		Period: period.String(),
	})
}

// Check handles POST /api/payments/cycle/check.
func (h *PaymentHandler) Check(c *gin.Context) {
	result, err := h.facade.CheckCycle(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CycleCheckResponse{
		Reset:        result.Reset,
		Previous:     result.Previous.String(),
		Current:      result.Current.String(),
		MembersReset: result.MembersReset,
	})
}
