package handler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appenvironment "github.com/petroenergy/petrodash/internal/application/environment"
	"github.com/petroenergy/petrodash/internal/domain/environment"
	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/interfaces/http/dto"
	"github.com/petroenergy/petrodash/internal/interfaces/http/middleware"
)

const maxEnvironmentUpload = 10 << 20 // 10 MiB

// EnvironmentHandler serves the bronze environment tables: CRUD per
// record type, Excel bulk upload, and template downloads.
type EnvironmentHandler struct {
	BaseHandler
	envService *appenvironment.Service
}

// NewEnvironmentHandler creates a new environment handler
func NewEnvironmentHandler(envService *appenvironment.Service) *EnvironmentHandler {
	return &EnvironmentHandler{envService: envService}
}

// RegisterRoutes registers the environment routes. Writes are gated to
// the encoder and site checker roles.
func (h *EnvironmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	env := rg.Group("/environment")
	{
		env.GET("/templates/:type", h.Template)
		env.GET("/:type", h.List)
		env.GET("/:type/:id", h.Get)
		env.POST("/:type",
			middleware.RequireRoles(identity.RoleSiteChecker, identity.RoleEncoder), h.Create)
		env.POST("/:type/bulk",
			middleware.RequireRoles(identity.RoleEncoder), h.BulkUpload)
	}
}

// CreateEnvironmentRecordRequest is the union create payload; each
// record type reads its own subset of fields.
type CreateEnvironmentRecordRequest struct {
	CompanyID         string          `json:"company_id" binding:"required"`
	CPID              string          `json:"cp_id"`
	CPName            string          `json:"cp_name"`
	CPType            string          `json:"cp_type"`
	Year              int             `json:"year"`
	Month             string          `json:"month"`
	Quarter           string          `json:"quarter" binding:"omitempty,quarter"`
	Source            string          `json:"source"`
	Metrics           string          `json:"metrics"`
	Date              string          `json:"date"` // YYYY-MM-DD
	Volume            decimal.Decimal `json:"volume"`
	Consumption       decimal.Decimal `json:"consumption"`
	Waste             decimal.Decimal `json:"waste"`
	WasteGenerated    decimal.Decimal `json:"waste_generated"`
	WasteDisposed     decimal.Decimal `json:"waste_disposed"`
	UnitOfMeasurement string          `json:"unit_of_measurement"`
}

// CreateEnvironmentRecordResponse returns the generated record ID.
type CreateEnvironmentRecordResponse struct {
	RecordID string `json:"record_id"`
}

func recordType(c *gin.Context) environment.RecordType {
	return environment.RecordType(c.Param("type"))
}

// List godoc
// @Summary      List environment records of one type
// @Tags         environment
// @Produce      json
// @Security     BearerAuth
// @Param        type path string true "Record type"
// @Param        company_id query string false "Company filter"
// @Param        year query int false "Year filter"
// @Param        quarter query string false "Quarter filter"
// @Param        offset query int false "Paging offset"
// @Param        limit query int false "Page size"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /environment/{type} [get]
func (h *EnvironmentHandler) List(c *gin.Context) {
	var page dto.ListRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, "Invalid paging parameters")
		return
	}
	year, _ := strconv.Atoi(c.Query("year"))

	records, err := h.envService.List(c.Request.Context(), recordType(c), environment.Filter{
		CompanyID: c.Query("company_id"),
		Year:      year,
		Quarter:   c.Query("quarter"),
		Offset:    page.Offset,
		Limit:     page.Limit,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// Get godoc
// @Summary      Get one environment record
// @Tags         environment
// @Produce      json
// @Security     BearerAuth
// @Param        type path string true "Record type"
// @Param        id path string true "Record ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /environment/{type}/{id} [get]
func (h *EnvironmentHandler) Get(c *gin.Context) {
	record, err := h.envService.Get(c.Request.Context(), recordType(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Create godoc
// @Summary      Create one environment record
// @Description  Insert a record with a server-generated sequential ID and a pending checker status
// @Tags         environment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        type path string true "Record type"
// @Param        request body CreateEnvironmentRecordRequest true "Record fields"
// @Success      201 {object} dto.Response{data=CreateEnvironmentRecordResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /environment/{type} [post]
func (h *EnvironmentHandler) Create(c *gin.Context) {
	t := recordType(c)

	var req CreateEnvironmentRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	rec, err := buildRecord(t, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.envService.Create(c.Request.Context(), middleware.GetAccountID(c), t, rec); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, CreateEnvironmentRecordResponse{RecordID: rec.RecordID()})
}

// BulkUpload godoc
// @Summary      Bulk upload environment records
// @Description  Upload an Excel workbook matching the record type's template. A file with any invalid cell is rejected whole.
// @Tags         environment
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        type path string true "Record type"
// @Param        file formData file true "Excel workbook"
// @Success      200 {object} dto.Response{data=upload.Result}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /environment/{type}/bulk [post]
func (h *EnvironmentHandler) BulkUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "An Excel file upload is required")
		return
	}
	if fileHeader.Size > maxEnvironmentUpload {
		h.BadRequest(c, "Uploaded file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.envService.BulkUpload(c.Request.Context(), middleware.GetAccountID(c),
		recordType(c), io.LimitReader(file, maxEnvironmentUpload))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if !result.IsValid() {
		c.JSON(http.StatusBadRequest, dto.Response{
			Success: false,
			Data:    result,
			Error: &dto.ErrorInfo{
				Code:      "UPLOAD_REJECTED",
				Message:   "Uploaded file failed validation",
				RequestID: middleware.GetRequestID(c),
			},
		})
		return
	}
	h.Success(c, result)
}

// Template godoc
// @Summary      Download an Excel upload template
// @Tags         environment
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        type path string true "Record type"
// @Success      200 {string} string "Workbook content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /environment/templates/{type} [get]
func (h *EnvironmentHandler) Template(c *gin.Context) {
	var buf bytes.Buffer
	name, err := h.envService.WriteTemplate(recordType(c), &buf)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func buildRecord(t environment.RecordType, req CreateEnvironmentRecordRequest) (environment.Record, error) {
	switch t {
	case environment.TypeCompanyProperty:
		return &environment.CompanyProperty{
			CompanyID: req.CompanyID,
			CPName:    req.CPName,
			CPType:    req.CPType,
		}, nil
	case environment.TypeWaterAbstraction:
		return &environment.WaterAbstraction{
			CompanyID:         req.CompanyID,
			Year:              req.Year,
			Month:             req.Month,
			Quarter:           req.Quarter,
			Volume:            req.Volume,
			UnitOfMeasurement: req.UnitOfMeasurement,
		}, nil
	case environment.TypeWaterDischarge:
		return &environment.WaterDischarge{
			CompanyID:         req.CompanyID,
			Year:              req.Year,
			Quarter:           req.Quarter,
			Volume:            req.Volume,
			UnitOfMeasurement: req.UnitOfMeasurement,
		}, nil
	case environment.TypeWaterConsumption:
		return &environment.WaterConsumption{
			CompanyID:         req.CompanyID,
			Year:              req.Year,
			Quarter:           req.Quarter,
			Volume:            req.Volume,
			UnitOfMeasurement: req.UnitOfMeasurement,
		}, nil
	case environment.TypeDieselConsumption:
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "date must be YYYY-MM-DD")
		}
		return &environment.DieselConsumption{
			CompanyID:         req.CompanyID,
			CPID:              req.CPID,
			UnitOfMeasurement: req.UnitOfMeasurement,
			Consumption:       req.Consumption,
			Date:              date,
		}, nil
	case environment.TypeElectricConsumption:
		return &environment.ElectricConsumption{
			CompanyID:         req.CompanyID,
			Source:            req.Source,
			UnitOfMeasurement: req.UnitOfMeasurement,
			Consumption:       req.Consumption,
			Quarter:           req.Quarter,
			Year:              req.Year,
		}, nil
	case environment.TypeNonHazardWaste:
		return &environment.NonHazardWaste{
			CompanyID:         req.CompanyID,
			Metrics:           req.Metrics,
			UnitOfMeasurement: req.UnitOfMeasurement,
			Waste:             req.Waste,
			Month:             req.Month,
			Quarter:           req.Quarter,
			Year:              req.Year,
		}, nil
	case environment.TypeHazardWasteGenerated:
		return &environment.HazardWasteGenerated{
			CompanyID:         req.CompanyID,
			Metrics:           req.Metrics,
			UnitOfMeasurement: req.UnitOfMeasurement,
			WasteGenerated:    req.WasteGenerated,
			Quarter:           req.Quarter,
			Year:              req.Year,
		}, nil
	case environment.TypeHazardWasteDisposed:
		return &environment.HazardWasteDisposed{
			CompanyID:         req.CompanyID,
			Metrics:           req.Metrics,
			UnitOfMeasurement: req.UnitOfMeasurement,
			WasteDisposed:     req.WasteDisposed,
			Year:              req.Year,
		}, nil
	default:
		return nil, shared.NewDomainError("INVALID_RECORD_TYPE", "unknown environment record type: "+string(t))
	}
}
