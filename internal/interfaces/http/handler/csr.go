package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appcsr "github.com/petroenergy/petrodash/internal/application/csr"
	"github.com/petroenergy/petrodash/internal/domain/csr"
)

// CSRHandler serves the silver CSR tables.
type CSRHandler struct {
	BaseHandler
	csrService *appcsr.Service
}

// NewCSRHandler creates a new CSR handler
func NewCSRHandler(csrService *appcsr.Service) *CSRHandler {
	return &CSRHandler{csrService: csrService}
}

// RegisterRoutes registers the CSR routes.
func (h *CSRHandler) RegisterRoutes(rg *gin.RouterGroup) {
	csrGroup := rg.Group("/csr")
	{
		csrGroup.GET("/programs", h.Programs)
		csrGroup.GET("/projects", h.Projects)
		csrGroup.GET("/activities", h.Activities)
	}
}

// ProgramResponse is one CSR program.
type ProgramResponse struct {
	ProgramID   string `json:"program_id"`
	ProgramName string `json:"program_name"`
}

// ProjectResponse is one CSR project.
type ProjectResponse struct {
	ProjectID      string `json:"project_id"`
	ProgramID      string `json:"program_id"`
	ProjectName    string `json:"project_name"`
	ProjectMetrics string `json:"project_metrics"`
}

// ActivityResponse is one CSR activity joined to its names and status.
type ActivityResponse struct {
	CSRID           string          `json:"csr_id"`
	CompanyID       string          `json:"company_id"`
	CompanyName     string          `json:"company_name"`
	ProjectID       string          `json:"project_id"`
	ProjectName     string          `json:"project_name"`
	ProgramName     string          `json:"program_name"`
	ProjectYear     int             `json:"project_year"`
	CSRReport       int64           `json:"csr_report"`
	ProjectExpenses decimal.Decimal `json:"project_expenses"`
	ProjectRemarks  string          `json:"project_remarks,omitempty"`
	StatusID        string          `json:"status_id,omitempty"`
	StatusRemarks   string          `json:"status_remarks,omitempty"`
}

// Programs godoc
// @Summary      List CSR programs
// @Tags         csr
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]ProgramResponse}
// @Router       /csr/programs [get]
func (h *CSRHandler) Programs(c *gin.Context) {
	programs, err := h.csrService.Programs(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]ProgramResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, ProgramResponse{ProgramID: p.ProgramID, ProgramName: p.ProgramName})
	}
	h.Success(c, out)
}

// Projects godoc
// @Summary      List CSR projects
// @Tags         csr
// @Produce      json
// @Security     BearerAuth
// @Param        program_id query string false "Program filter"
// @Success      200 {object} dto.Response{data=[]ProjectResponse}
// @Router       /csr/projects [get]
func (h *CSRHandler) Projects(c *gin.Context) {
	projects, err := h.csrService.Projects(c.Request.Context(), c.Query("program_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectResponse{
			ProjectID:      p.ProjectID,
			ProgramID:      p.ProgramID,
			ProjectName:    p.ProjectName,
			ProjectMetrics: p.ProjectMetrics,
		})
	}
	h.Success(c, out)
}

// Activities godoc
// @Summary      List CSR activities
// @Description  Activities joined to company, project and program names plus checker status
// @Tags         csr
// @Produce      json
// @Security     BearerAuth
// @Param        year query int false "Project year filter"
// @Param        company_id query string false "Company filter"
// @Param        program_id query string false "Program filter"
// @Success      200 {object} dto.Response{data=[]ActivityResponse}
// @Router       /csr/activities [get]
func (h *CSRHandler) Activities(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))

	activities, err := h.csrService.Activities(c.Request.Context(), csr.Filter{
		Year:      year,
		CompanyID: c.Query("company_id"),
		ProgramID: c.Query("program_id"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, ActivityResponse{
			CSRID:           a.CSRID,
			CompanyID:       a.CompanyID,
			CompanyName:     a.CompanyName,
			ProjectID:       a.ProjectID,
			ProjectName:     a.ProjectName,
			ProgramName:     a.ProgramName,
			ProjectYear:     a.ProjectYear,
			CSRReport:       a.CSRReport,
			ProjectExpenses: a.ProjectExpenses,
			ProjectRemarks:  a.ProjectRemarks,
			StatusID:        a.StatusID,
			StatusRemarks:   a.StatusRemarks,
		})
	}
	h.Success(c, out)
}
