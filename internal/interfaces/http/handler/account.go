package handler

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	appidentity "github.com/petroenergy/petrodash/internal/application/identity"
	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/interfaces/http/middleware"
)

const maxBulkAccountUpload = 5 << 20 // 5 MiB

// AccountHandler handles the admin account management endpoints.
type AccountHandler struct {
	BaseHandler
	accountService *appidentity.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *appidentity.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RegisterRoutes registers the account management routes (R01 only).
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts", middleware.RequireRoles(identity.RoleSystemAdmin))
	{
		accounts.POST("", h.Create)
		accounts.GET("", h.List)
		accounts.PATCH("/:id/activate", h.Activate)
		accounts.PATCH("/:id/deactivate", h.Deactivate)
		accounts.POST("/bulk", h.BulkCreate)
		accounts.GET("/bulk/template", h.BulkTemplate)
	}
}

// Create godoc
// @Summary      Create account
// @Description  Create an account with its employee profile. Password defaults when omitted.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateAccountRequest true "Account details"
// @Success      201 {object} dto.Response{data=AccountDetailResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	input := appidentity.CreateAccountInput{
		Email:         req.Email,
		Password:      req.Password,
		Role:          identity.RoleCode(req.Role),
		PowerPlantID:  req.PowerPlantID,
		CompanyID:     req.CompanyID,
		EmpID:         req.EmpID,
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		Suffix:        req.Suffix,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Gender:        req.Gender,
	}
	if req.Birthdate != "" {
		birthdate, err := time.Parse("01/02/2006", req.Birthdate)
		if err != nil {
			h.BadRequest(c, "birthdate must be MM/DD/YYYY")
			return
		}
		input.Birthdate = &birthdate
	}

	detail, err := h.accountService.CreateAccount(c.Request.Context(), middleware.GetAccountID(c), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, accountDetailResponse(*detail))
}

// List godoc
// @Summary      List accounts
// @Description  List all accounts with profiles, newest first
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]AccountDetailResponse}
// @Router       /accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	details, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]AccountDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, accountDetailResponse(d))
	}
	h.Success(c, out)
}

// Activate godoc
// @Summary      Activate account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Account ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /accounts/{id}/activate [patch]
func (h *AccountHandler) Activate(c *gin.Context) {
	if err := h.accountService.Activate(c.Request.Context(), middleware.GetAccountID(c), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Account activated"})
}

// Deactivate godoc
// @Summary      Deactivate account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Account ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /accounts/{id}/deactivate [patch]
func (h *AccountHandler) Deactivate(c *gin.Context) {
	if err := h.accountService.Deactivate(c.Request.Context(), middleware.GetAccountID(c), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Account deactivated"})
}

// BulkCreate godoc
// @Summary      Bulk create accounts
// @Description  Create accounts from a CSV upload. Rows missing email or name are skipped.
// @Tags         accounts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "CSV file"
// @Success      200 {object} dto.Response{data=BulkCreateResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /accounts/bulk [post]
func (h *AccountHandler) BulkCreate(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A CSV file upload is required")
		return
	}
	if fileHeader.Size > maxBulkAccountUpload {
		h.BadRequest(c, "Uploaded file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBulkAccountUpload))
	if err != nil {
		h.BadRequest(c, "Unable to read uploaded file")
		return
	}

	result, err := h.accountService.BulkCreate(c.Request.Context(), middleware.GetAccountID(c), data)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := BulkCreateResponse{
		TotalRows: result.TotalRows,
		Created:   result.Created,
		Skipped:   result.Skipped,
	}
	for _, row := range result.SkippedRows {
		resp.SkippedRows = append(resp.SkippedRows, SkippedRowResponse{Line: row.Line, Reason: row.Reason})
	}
	h.Success(c, resp)
}

// BulkTemplate godoc
// @Summary      Bulk account CSV template
// @Description  Download the CSV template with header and sample row
// @Tags         accounts
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200 {string} string "CSV content"
// @Router       /accounts/bulk/template [get]
func (h *AccountHandler) BulkTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="accounts_template.csv"`)
	c.Data(200, "text/csv", h.accountService.BulkTemplate())
}
