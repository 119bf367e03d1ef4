package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appenergy "github.com/petroenergy/petrodash/internal/application/energy"
	"github.com/petroenergy/petrodash/internal/domain/energy"
	"github.com/petroenergy/petrodash/internal/interfaces/http/dto"
)

// EnergyHandler serves the bronze energy records.
type EnergyHandler struct {
	BaseHandler
	energyService *appenergy.Service
}

// NewEnergyHandler creates a new energy handler
func NewEnergyHandler(energyService *appenergy.Service) *EnergyHandler {
	return &EnergyHandler{energyService: energyService}
}

// RegisterRoutes registers the energy routes.
func (h *EnergyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	records := rg.Group("/energy/records")
	{
		records.GET("", h.List)
		records.GET("/:id", h.Get)
	}
}

// EnergyRecordResponse is one bronze energy reading.
type EnergyRecordResponse struct {
	EnergyID          string          `json:"energy_id"`
	PowerPlantID      string          `json:"power_plant_id"`
	Datetime          string          `json:"datetime"`
	EnergyGenerated   decimal.Decimal `json:"energy_generated"`
	UnitOfMeasurement string          `json:"unit_of_measurement"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// List godoc
// @Summary      List energy records
// @Tags         energy
// @Produce      json
// @Security     BearerAuth
// @Param        power_plant_id query string false "Power plant filter"
// @Param        offset query int false "Paging offset"
// @Param        limit query int false "Page size"
// @Success      200 {object} dto.Response{data=[]EnergyRecordResponse}
// @Router       /energy/records [get]
func (h *EnergyHandler) List(c *gin.Context) {
	var page dto.ListRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "Invalid paging parameters")
		return
	}

	records, err := h.energyService.List(c.Request.Context(), energy.Filter{
		PowerPlantID: c.Query("power_plant_id"),
		Offset:       page.Offset,
		Limit:        page.Limit,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]EnergyRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, energyRecordResponse(r))
	}
	h.Success(c, out)
}

// Get godoc
// @Summary      Get one energy record
// @Tags         energy
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Energy record ID"
// @Success      200 {object} dto.Response{data=EnergyRecordResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /energy/records/{id} [get]
func (h *EnergyHandler) Get(c *gin.Context) {
	record, err := h.energyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, energyRecordResponse(*record))
}

func energyRecordResponse(r energy.Record) EnergyRecordResponse {
	return EnergyRecordResponse{
		EnergyID:          r.EnergyID,
		PowerPlantID:      r.PowerPlantID,
		Datetime:          r.Datetime,
		EnergyGenerated:   r.EnergyGenerated,
		UnitOfMeasurement: r.UnitOfMeasurement,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
