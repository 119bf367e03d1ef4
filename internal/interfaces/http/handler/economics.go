package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appeconomics "github.com/petroenergy/petrodash/internal/application/economics"
)

// EconomicsHandler serves the economic value dashboard.
type EconomicsHandler struct {
	BaseHandler
	econService *appeconomics.Service
}

// NewEconomicsHandler creates a new economics handler
func NewEconomicsHandler(econService *appeconomics.Service) *EconomicsHandler {
	return &EconomicsHandler{econService: econService}
}

// RegisterRoutes registers the economics routes.
func (h *EconomicsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	econ := rg.Group("/economics")
	{
		econ.GET("/summary", h.Summary)
		econ.GET("/retention", h.Retention)
	}
}

// EconomicValueResponse is one yearly economic value row.
type EconomicValueResponse struct {
	Year        int             `json:"year"`
	Generated   decimal.Decimal `json:"generated"`
	Distributed decimal.Decimal `json:"distributed"`
}

// RetentionResponse is one yearly retention rate row.
type RetentionResponse struct {
	Year int             `json:"year"`
	Rate decimal.Decimal `json:"rate"`
}

// Summary godoc
// @Summary      Yearly economic value summary
// @Tags         economics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]EconomicValueResponse}
// @Router       /economics/summary [get]
func (h *EconomicsHandler) Summary(c *gin.Context) {
	years, err := h.econService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]EconomicValueResponse, 0, len(years))
	for _, y := range years {
		out = append(out, EconomicValueResponse{
			Year:        y.Year,
			Generated:   y.Generated,
			Distributed: y.Distributed,
		})
	}
	h.Success(c, out)
}

// Retention godoc
// @Summary      Yearly economic value retention rates
// @Tags         economics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]RetentionResponse}
// @Router       /economics/retention [get]
func (h *EconomicsHandler) Retention(c *gin.Context) {
	rates, err := h.econService.Retention(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]RetentionResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, RetentionResponse{Year: r.Year, Rate: r.Rate})
	}
	h.Success(c, out)
}
