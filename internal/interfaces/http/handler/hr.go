package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apphr "github.com/petroenergy/petrodash/internal/application/hr"
	"github.com/petroenergy/petrodash/internal/domain/hr"
	"github.com/petroenergy/petrodash/internal/interfaces/http/dto"
)

// HRHandler serves the bronze HR tables and workforce analytics.
type HRHandler struct {
	BaseHandler
	hrService *apphr.Service
}

// NewHRHandler creates a new HR handler
func NewHRHandler(hrService *apphr.Service) *HRHandler {
	return &HRHandler{hrService: hrService}
}

// RegisterRoutes registers the HR routes.
func (h *HRHandler) RegisterRoutes(rg *gin.RouterGroup) {
	hrGroup := rg.Group("/hr")
	{
		hrGroup.GET("/demographics", h.ListDemographics)
		hrGroup.GET("/demographics/:id", h.GetDemographic)
		hrGroup.GET("/tenure/:id", h.GetTenure)
		hrGroup.GET("/headcount", h.Headcount)
		hrGroup.GET("/attrition", h.Attrition)
	}
}

// DemographicResponse is one employee demographic row.
type DemographicResponse struct {
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	Gender     string    `json:"gender"`
	Birthdate  time.Time `json:"birthdate"`
	Position   string    `json:"position"`
}

// TenureResponse is one employee tenure row.
type TenureResponse struct {
	EmployeeID string     `json:"employee_id"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Active     bool       `json:"active"`
}

// HeadcountResponse is the active employee count for one company.
type HeadcountResponse struct {
	CompanyID string `json:"company_id"`
	Total     int64  `json:"total"`
}

// AttritionYearResponse is one row of the yearly attrition report.
type AttritionYearResponse struct {
	Year     int             `json:"year"`
	Total    int64           `json:"total"`
	Resigned int64           `json:"resigned"`
	Rate     decimal.Decimal `json:"rate"`
}

// ListDemographics godoc
// @Summary      List employee demographics
// @Tags         hr
// @Produce      json
// @Security     BearerAuth
// @Param        company_id query string false "Company filter"
// @Param        gender query string false "Gender filter"
// @Success      200 {object} dto.Response{data=[]DemographicResponse}
// @Router       /hr/demographics [get]
func (h *HRHandler) ListDemographics(c *gin.Context) {
	var page dto.ListRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "Invalid paging parameters")
		return
	}

	rows, err := h.hrService.ListDemographics(c.Request.Context(), hr.Filter{
		CompanyID: c.Query("company_id"),
		Gender:    c.Query("gender"),
		Offset:    page.Offset,
		Limit:     page.Limit,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]DemographicResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, demographicResponse(d))
	}
	h.Success(c, out)
}

// GetDemographic godoc
// @Summary      Get one employee demographic row
// @Tags         hr
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Employee ID"
// @Success      200 {object} dto.Response{data=DemographicResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /hr/demographics/{id} [get]
func (h *HRHandler) GetDemographic(c *gin.Context) {
	row, err := h.hrService.GetDemographic(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, demographicResponse(*row))
}

// GetTenure godoc
// @Summary      Get one employee tenure row
// @Tags         hr
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Employee ID"
// @Success      200 {object} dto.Response{data=TenureResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /hr/tenure/{id} [get]
func (h *HRHandler) GetTenure(c *gin.Context) {
	row, err := h.hrService.GetTenure(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, TenureResponse{
		EmployeeID: row.EmployeeID,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		Active:     row.Active(),
	})
}

// Headcount godoc
// @Summary      Active headcount per company
// @Tags         hr
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]HeadcountResponse}
// @Router       /hr/headcount [get]
func (h *HRHandler) Headcount(c *gin.Context) {
	rows, err := h.hrService.Headcount(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]HeadcountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, HeadcountResponse{CompanyID: r.CompanyID, Total: r.Total})
	}
	h.Success(c, out)
}

// Attrition godoc
// @Summary      Yearly attrition report
// @Tags         hr
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]AttritionYearResponse}
// @Router       /hr/attrition [get]
func (h *HRHandler) Attrition(c *gin.Context) {
	rows, err := h.hrService.Attrition(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]AttritionYearResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, AttritionYearResponse{
			Year:     r.Year,
			Total:    r.Total,
			Resigned: r.Resigned,
			Rate:     r.Rate,
		})
	}
	h.Success(c, out)
}

func demographicResponse(d hr.Demographic) DemographicResponse {
	return DemographicResponse{
		EmployeeID: d.EmployeeID,
		CompanyID:  d.CompanyID,
		Gender:     d.Gender,
		Birthdate:  d.Birthdate,
		Position:   d.Position,
	}
}
