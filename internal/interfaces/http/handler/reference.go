package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appreference "github.com/petroenergy/petrodash/internal/application/reference"
	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/interfaces/http/middleware"
)

// ReferenceHandler serves the ref schema lookups plus the admin KPI
// counters and audit trail.
type ReferenceHandler struct {
	BaseHandler
	refService *appreference.Service
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(refService *appreference.Service) *ReferenceHandler {
	return &ReferenceHandler{refService: refService}
}

// RegisterRoutes registers the reference routes. KPI and audit trail
// are admin only.
func (h *ReferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ref := rg.Group("/reference")
	{
		ref.GET("/companies", h.Companies)
		ref.GET("/power-plants", h.PowerPlants)
		ref.GET("/provinces", h.Provinces)
		ref.GET("/generation-sources", h.GenerationSources)
		ref.GET("/co2-equivalence", h.CO2Equivalences)
		ref.GET("/expenditure-types", h.ExpenditureTypes)
		ref.GET("/plant-info", h.PlantInfo)
		ref.GET("/kpi", middleware.RequireRoles(identity.RoleSystemAdmin), h.KPI)
		ref.GET("/audit-trail", middleware.RequireRoles(identity.RoleSystemAdmin), h.AuditTrail)
	}
}

// CompanyResponse is one ref.company_main row.
type CompanyResponse struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	ParentID    string `json:"parent_id,omitempty"`
	BrandColor  string `json:"brand_color,omitempty"`
}

// PowerPlantResponse is one ref.ref_power_plants row.
type PowerPlantResponse struct {
	PowerPlantID     string `json:"power_plant_id"`
	CompanyID        string `json:"company_id"`
	SiteName         string `json:"site_name"`
	Province         string `json:"province"`
	GenerationSource string `json:"generation_source"`
}

// CO2EquivalenceResponse is one CO2 equivalence conversion row.
type CO2EquivalenceResponse struct {
	EquivalenceID string          `json:"equivalence_id"`
	Name          string          `json:"name"`
	Factor        decimal.Decimal `json:"factor"`
	Unit          string          `json:"unit"`
	Description   string          `json:"description,omitempty"`
}

// ExpenditureTypeResponse is one expenditure category.
type ExpenditureTypeResponse struct {
	TypeID      string `json:"type_id"`
	TypeName    string `json:"type_name"`
	Description string `json:"description,omitempty"`
}

// PlantInfoResponse is a plant joined to its company and source.
type PlantInfoResponse struct {
	PowerPlantID     string          `json:"power_plant_id"`
	SiteName         string          `json:"site_name"`
	Province         string          `json:"province"`
	CompanyID        string          `json:"company_id"`
	CompanyName      string          `json:"company_name"`
	GenerationSource string          `json:"generation_source"`
	KgCO2PerKWh      decimal.Decimal `json:"kg_co2_per_kwh"`
}

// KPIResponse is the admin dashboard account counters.
type KPIResponse struct {
	ActiveAccounts      int64 `json:"active_accounts"`
	DeactivatedAccounts int64 `json:"deactivated_accounts"`
	Admins              int64 `json:"admins"`
	Executives          int64 `json:"executives"`
	OfficeCheckers      int64 `json:"office_checkers"`
	SiteCheckers        int64 `json:"site_checkers"`
	Encoders            int64 `json:"encoders"`
}

// AuditEntryResponse is one audit trail row joined to the actor email.
type AuditEntryResponse struct {
	AuditID     string `json:"audit_id"`
	AccountID   string `json:"account_id"`
	Email       string `json:"email,omitempty"`
	TargetTable string `json:"target_table"`
	RecordID    string `json:"record_id,omitempty"`
	ActionType  string `json:"action_type"`
	OldValue    string `json:"old_value,omitempty"`
	NewValue    string `json:"new_value,omitempty"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description,omitempty"`
}

// Companies godoc
// @Summary      List companies
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]CompanyResponse}
// @Router       /reference/companies [get]
func (h *ReferenceHandler) Companies(c *gin.Context) {
	companies, err := h.refService.Companies(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]CompanyResponse, 0, len(companies))
	for _, co := range companies {
		out = append(out, CompanyResponse{
			CompanyID:   co.CompanyID,
			CompanyName: co.CompanyName,
			ParentID:    co.ParentID,
			BrandColor:  co.BrandColor,
		})
	}
	h.Success(c, out)
}

// PowerPlants godoc
// @Summary      List power plants
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Param        company_id query string false "Company filter"
// @Success      200 {object} dto.Response{data=[]PowerPlantResponse}
// @Router       /reference/power-plants [get]
func (h *ReferenceHandler) PowerPlants(c *gin.Context) {
	plants, err := h.refService.PowerPlants(c.Request.Context(), c.Query("company_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]PowerPlantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, PowerPlantResponse{
			PowerPlantID:     p.PowerPlantID,
			CompanyID:        p.CompanyID,
			SiteName:         p.SiteName,
			Province:         p.Province,
			GenerationSource: p.GenerationSource,
		})
	}
	h.Success(c, out)
}

// Provinces godoc
// @Summary      List provinces with power plants
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]string}
// @Router       /reference/provinces [get]
func (h *ReferenceHandler) Provinces(c *gin.Context) {
	provinces, err := h.refService.Provinces(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, provinces)
}

// GenerationSources godoc
// @Summary      List generation sources
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]string}
// @Router       /reference/generation-sources [get]
func (h *ReferenceHandler) GenerationSources(c *gin.Context) {
	sources, err := h.refService.GenerationSources(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sources)
}

// CO2Equivalences godoc
// @Summary      List CO2 equivalence conversions
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]CO2EquivalenceResponse}
// @Router       /reference/co2-equivalence [get]
func (h *ReferenceHandler) CO2Equivalences(c *gin.Context) {
	rows, err := h.refService.CO2Equivalences(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]CO2EquivalenceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CO2EquivalenceResponse{
			EquivalenceID: r.EquivalenceID,
			Name:          r.Name,
			Factor:        r.Factor,
			Unit:          r.Unit,
			Description:   r.Description,
		})
	}
	h.Success(c, out)
}

// ExpenditureTypes godoc
// @Summary      List expenditure types
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]ExpenditureTypeResponse}
// @Router       /reference/expenditure-types [get]
func (h *ReferenceHandler) ExpenditureTypes(c *gin.Context) {
	rows, err := h.refService.ExpenditureTypes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]ExpenditureTypeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ExpenditureTypeResponse{
			TypeID:      r.TypeID,
			TypeName:    r.TypeName,
			Description: r.Description,
		})
	}
	h.Success(c, out)
}

// PlantInfo godoc
// @Summary      List plants joined to company and source details
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]PlantInfoResponse}
// @Router       /reference/plant-info [get]
func (h *ReferenceHandler) PlantInfo(c *gin.Context) {
	rows, err := h.refService.PlantInfo(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]PlantInfoResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, PlantInfoResponse{
			PowerPlantID:     r.PowerPlantID,
			SiteName:         r.SiteName,
			Province:         r.Province,
			CompanyID:        r.CompanyID,
			CompanyName:      r.CompanyName,
			GenerationSource: r.GenerationSource,
			KgCO2PerKWh:      r.KgCO2PerKWh,
		})
	}
	h.Success(c, out)
}

// KPI godoc
// @Summary      Admin dashboard account counters
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=KPIResponse}
// @Router       /reference/kpi [get]
func (h *ReferenceHandler) KPI(c *gin.Context) {
	stats, err := h.refService.KPI(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, KPIResponse{
		ActiveAccounts:      stats.ActiveAccounts,
		DeactivatedAccounts: stats.DeactivatedAccounts,
		Admins:              stats.Admins,
		Executives:          stats.Executives,
		OfficeCheckers:      stats.OfficeCheckers,
		SiteCheckers:        stats.SiteCheckers,
		Encoders:            stats.Encoders,
	})
}

// AuditTrail godoc
// @Summary      Full audit trail
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]AuditEntryResponse}
// @Router       /reference/audit-trail [get]
func (h *ReferenceHandler) AuditTrail(c *gin.Context) {
	entries, err := h.refService.AuditTrail(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			AuditID:     e.AuditID,
			AccountID:   e.AccountID,
			Email:       e.Email,
			TargetTable: e.TargetTable,
			RecordID:    e.RecordID,
			ActionType:  e.ActionType,
			OldValue:    e.OldValue,
			NewValue:    e.NewValue,
			Timestamp:   e.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"),
			Description: e.Description,
		})
	}
	h.Success(c, out)
}
