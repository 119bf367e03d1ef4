package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appworkflow "github.com/petroenergy/petrodash/internal/application/workflow"
	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/domain/workflow"
	"github.com/petroenergy/petrodash/internal/interfaces/http/middleware"
)

// WorkflowHandler serves the checker workflow over bronze records.
type WorkflowHandler struct {
	BaseHandler
	workflowService *appworkflow.Service
}

// NewWorkflowHandler creates a new workflow handler
func NewWorkflowHandler(workflowService *appworkflow.Service) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService}
}

// RegisterRoutes registers the workflow routes. Status decisions are
// gated to the checker roles.
func (h *WorkflowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	wf := rg.Group("/workflow")
	{
		wf.GET("/status/:record_id", h.Get)
		wf.POST("/status",
			middleware.RequireRoles(identity.RoleOfficeChecker, identity.RoleSiteChecker), h.SetStatus)
	}
}

// SetStatusRequest is the checker's decision payload.
type SetStatusRequest struct {
	RecordID string `json:"record_id" binding:"required"`
	Status   string `json:"status" binding:"required"`
	Remarks  string `json:"remarks"`
}

// RecordStatusResponse is the checker state of one record.
type RecordStatusResponse struct {
	CSID       string    `json:"cs_id"`
	RecordID   string    `json:"record_id"`
	Table      string    `json:"table"`
	Status     string    `json:"status"`
	StatusName string    `json:"status_name"`
	Remarks    string    `json:"remarks,omitempty"`
	UpdatedBy  string    `json:"updated_by,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Get godoc
// @Summary      Get a record's checker status
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        record_id path string true "Record ID"
// @Success      200 {object} dto.Response{data=RecordStatusResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /workflow/status/{record_id} [get]
func (h *WorkflowHandler) Get(c *gin.Context) {
	rs, err := h.workflowService.Get(c.Request.Context(), c.Param("record_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, recordStatusResponse(rs))
}

// SetStatus godoc
// @Summary      Apply a checker decision to a record
// @Description  Move a record between pending, approved and rejected. Rejection requires remarks.
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SetStatusRequest true "Decision"
// @Success      200 {object} dto.Response{data=RecordStatusResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /workflow/status [post]
func (h *WorkflowHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	rs, err := h.workflowService.SetStatus(c.Request.Context(), middleware.GetAccountID(c),
		appworkflow.SetStatusInput{
			RecordID: req.RecordID,
			Status:   workflow.Status(req.Status),
			Remarks:  req.Remarks,
		})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recordStatusResponse(rs))
}

func recordStatusResponse(rs *workflow.RecordStatus) RecordStatusResponse {
	return RecordStatusResponse{
		CSID:       rs.CSID,
		RecordID:   rs.RecordID,
		Table:      rs.TableName,
		Status:     string(rs.Status),
		StatusName: rs.Status.Name(),
		Remarks:    rs.Remarks,
		UpdatedBy:  rs.UpdatedBy,
		UpdatedAt:  rs.UpdatedAt,
	}
}
