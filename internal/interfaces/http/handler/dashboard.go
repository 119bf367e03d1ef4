package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appdashboard "github.com/petroenergy/petrodash/internal/application/dashboard"
	"github.com/petroenergy/petrodash/internal/domain/environment"
)

// DashboardHandler serves the gold environment dashboard aggregates.
type DashboardHandler struct {
	BaseHandler
	dashService *appdashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashService *appdashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashService: dashService}
}

// RegisterRoutes registers the dashboard routes.
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dash := rg.Group("/dashboard")
	{
		dash.GET("/environment/water", h.Water)
	}
}

// WaterYearResponse is the summed volume for one year.
type WaterYearResponse struct {
	Year   int             `json:"year"`
	Volume decimal.Decimal `json:"volume"`
}

// WaterSummaryResponse is the water dashboard aggregate.
type WaterSummaryResponse struct {
	Metric string              `json:"metric"`
	Unit   string              `json:"unit"`
	Total  decimal.Decimal     `json:"total"`
	Years  []WaterYearResponse `json:"years"`
}

// Water godoc
// @Summary      Water dashboard aggregate
// @Description  Total and per-year volumes for one water metric
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        metric query string true "abstraction, discharge or consumption"
// @Param        company_id query string false "Company filter"
// @Param        quarter query string false "Quarter filter"
// @Success      200 {object} dto.Response{data=WaterSummaryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /dashboard/environment/water [get]
func (h *DashboardHandler) Water(c *gin.Context) {
	metric := environment.WaterMetric(c.Query("metric"))

	summary, err := h.dashService.Water(c.Request.Context(), metric, environment.WaterFilter{
		CompanyID: c.Query("company_id"),
		Quarter:   c.Query("quarter"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	years := make([]WaterYearResponse, 0, len(summary.Years))
	for _, y := range summary.Years {
		years = append(years, WaterYearResponse{Year: y.Year, Volume: y.Volume})
	}
	h.Success(c, WaterSummaryResponse{
		Metric: string(summary.Metric),
		Unit:   summary.Unit,
		Total:  summary.Total,
		Years:  years,
	})
}
