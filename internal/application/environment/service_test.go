package environment

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/audit"
	"github.com/petroenergy/petrodash/internal/domain/environment"
	"github.com/petroenergy/petrodash/internal/domain/reference"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/domain/workflow"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) FindCompanyProperty(ctx context.Context, id string) (*environment.CompanyProperty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*environment.CompanyProperty), args.Error(1)
}

func (m *MockRecordRepository) ListCompanyProperties(ctx context.Context, filter environment.Filter) ([]environment.CompanyProperty, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]environment.CompanyProperty), args.Error(1)
}

func (m *MockRecordRepository) FindWaterAbstraction(ctx context.Context, id string) (*environment.WaterAbstraction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*environment.WaterAbstraction), args.Error(1)
}

func (m *MockRecordRepository) ListWaterAbstractions(ctx context.Context, filter environment.Filter) ([]environment.WaterAbstraction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]environment.WaterAbstraction), args.Error(1)
}

func (m *MockRecordRepository) FindWaterDischarge(ctx context.Context, id string) (*environment.WaterDischarge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*environment.WaterDischarge), args.Error(1)
}

func (m *MockRecordRepository) ListWaterDischarges(ctx context.Context, filter environment.Filter) ([]environment.WaterDischarge, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]environment.WaterDischarge), args.Error(1)
}

func (m *MockRecordRepository) FindWaterConsumption(ctx context.Context, id string) (*environment.WaterConsumption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*environment.WaterConsumption), args.Error(1)
}

func (m *MockRecordRepository) ListWaterConsumptions(ctx context.Context, filter environment.Filter) ([]environment.WaterConsumption, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]environment.WaterConsumption), args.Error(1)
}

func (m *MockRecordRepository) FindDieselConsumption(ctx context.Context, id string) (*environment.DieselConsumption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*environment.DieselConsumption), args.Error(1)
}

func (m *MockRecordRepository) ListDieselConsumptions(ctx context.Context, filter environment.Filter) ([]environment.DieselConsumption, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]environment.DieselConsumption), args.Error(1)
}

func (m *MockRecordRepository) FindElectricConsumption(ctx context.Context, id string) (*environment.ElectricConsumption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*environment.ElectricConsumption), args.Error(1)
}

func (m *MockRecordRepository) ListElectricConsumptions(ctx context.Context, filter environment.Filter) ([]environment.ElectricConsumption, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]environment.ElectricConsumption), args.Error(1)
}

func (m *MockRecordRepository) FindNonHazardWaste(ctx context.Context, id string) (*environment.NonHazardWaste, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*environment.NonHazardWaste), args.Error(1)
}

func (m *MockRecordRepository) ListNonHazardWastes(ctx context.Context, filter environment.Filter) ([]environment.NonHazardWaste, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]environment.NonHazardWaste), args.Error(1)
}

func (m *MockRecordRepository) FindHazardWasteGenerated(ctx context.Context, id string) (*environment.HazardWasteGenerated, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*environment.HazardWasteGenerated), args.Error(1)
}

func (m *MockRecordRepository) ListHazardWasteGenerated(ctx context.Context, filter environment.Filter) ([]environment.HazardWasteGenerated, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]environment.HazardWasteGenerated), args.Error(1)
}

func (m *MockRecordRepository) FindHazardWasteDisposed(ctx context.Context, id string) (*environment.HazardWasteDisposed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*environment.HazardWasteDisposed), args.Error(1)
}

func (m *MockRecordRepository) ListHazardWasteDisposed(ctx context.Context, filter environment.Filter) ([]environment.HazardWasteDisposed, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]environment.HazardWasteDisposed), args.Error(1)
}

func (m *MockRecordRepository) Insert(ctx context.Context, t environment.RecordType, rec environment.Record) error {
	args := m.Called(ctx, t, rec)
	return args.Error(0)
}

func (m *MockRecordRepository) BulkInsert(ctx context.Context, t environment.RecordType, recs []environment.Record) (int, error) {
	args := m.Called(ctx, t, recs)
	return args.Int(0), args.Error(1)
}

type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) ListCompanies(ctx context.Context) ([]reference.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reference.Company), args.Error(1)
}

func (m *MockReferenceRepository) ListPowerPlants(ctx context.Context, companyID string) ([]reference.PowerPlant, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reference.PowerPlant), args.Error(1)
}

func (m *MockReferenceRepository) ListProvinces(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReferenceRepository) ListGenerationSources(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReferenceRepository) ListCO2Equivalences(ctx context.Context) ([]reference.CO2Equivalence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reference.CO2Equivalence), args.Error(1)
}

func (m *MockReferenceRepository) ListExpenditureTypes(ctx context.Context) ([]reference.ExpenditureType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reference.ExpenditureType), args.Error(1)
}

func (m *MockReferenceRepository) ListPlantInfo(ctx context.Context) ([]reference.PlantInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reference.PlantInfo), args.Error(1)
}

func (m *MockReferenceRepository) CompanyExists(ctx context.Context, companyID string) (bool, error) {
	args := m.Called(ctx, companyID)
	return args.Bool(0), args.Error(1)
}

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) Create(ctx context.Context, rs *workflow.RecordStatus) error {
	args := m.Called(ctx, rs)
	return args.Error(0)
}

func (m *MockStatusRepository) FindByRecord(ctx context.Context, recordID string) (*workflow.RecordStatus, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.RecordStatus), args.Error(1)
}

func (m *MockStatusRepository) Update(ctx context.Context, rs *workflow.RecordStatus) error {
	args := m.Called(ctx, rs)
	return args.Error(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, entry audit.Entry) {
	m.Called(ctx, entry)
}

func newTestService(records *MockRecordRepository, refs *MockReferenceRepository, statuses *MockStatusRepository, auditor *MockRecorder, maxRows int) *Service {
	return NewService(records, refs, statuses, auditor, zap.NewNop(), maxRows)
}

// buildWorkbook writes an xlsx with the given header row and data rows.
func buildWorkbook(t *testing.T, headers []string, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &headers))
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func waterHeaders(t *testing.T) []string {
	t.Helper()
	tpl, err := templateFor(environment.TypeWaterAbstraction)
	require.NoError(t, err)
	return tpl.Headers()
}

func TestService_Create_WaterAbstraction(t *testing.T) {
	records := new(MockRecordRepository)
	refs := new(MockReferenceRepository)
	statuses := new(MockStatusRepository)
	auditor := new(MockRecorder)
	service := newTestService(records, refs, statuses, auditor, 0)

	rec := &environment.WaterAbstraction{
		CompanyID:         "PSC",
		Year:              2024,
		Month:             "January",
		Quarter:           "Q1",
		Volume:            decimal.RequireFromString("1250.5"),
		UnitOfMeasurement: "cubic meter",
	}

	refs.On("CompanyExists", mock.Anything, "PSC").Return(true, nil)
	records.On("Insert", mock.Anything, environment.TypeWaterAbstraction, rec).
		Run(func(args mock.Arguments) {
			args.Get(2).(environment.Record).SetRecordID("PSC-2024-001")
		}).Return(nil)
	statuses.On("Create", mock.Anything, mock.MatchedBy(func(rs *workflow.RecordStatus) bool {
		return rs.RecordID == "PSC-2024-001" &&
			rs.TableName == "bronze.envi_water_abstraction" &&
			rs.Status == workflow.StatusPending
	})).Return(nil)
	auditor.On("Record", mock.Anything, mock.MatchedBy(func(e audit.Entry) bool {
		return e.ActionType == audit.ActionCreate && e.RecordID == "PSC-2024-001"
	})).Return()

	err := service.Create(context.Background(), "acc-1", environment.TypeWaterAbstraction, rec)

	require.NoError(t, err)
	records.AssertExpectations(t)
	statuses.AssertExpectations(t)
	auditor.AssertExpectations(t)
}

func TestService_Create_UnknownCompany(t *testing.T) {
	records := new(MockRecordRepository)
	refs := new(MockReferenceRepository)
	statuses := new(MockStatusRepository)
	auditor := new(MockRecorder)
	service := newTestService(records, refs, statuses, auditor, 0)

	refs.On("CompanyExists", mock.Anything, "XXX").Return(false, nil)

	rec := &environment.WaterAbstraction{CompanyID: "XXX", Year: 2024, Quarter: "Q1"}
	err := service.Create(context.Background(), "acc-1", environment.TypeWaterAbstraction, rec)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNKNOWN_COMPANY", domainErr.Code)
	records.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_DieselChecksProperty(t *testing.T) {
	records := new(MockRecordRepository)
	refs := new(MockReferenceRepository)
	statuses := new(MockStatusRepository)
	auditor := new(MockRecorder)
	service := newTestService(records, refs, statuses, auditor, 0)

	refs.On("CompanyExists", mock.Anything, "PSC").Return(true, nil)
	records.On("FindCompanyProperty", mock.Anything, "CP-99").Return(nil, shared.ErrNotFound)

	rec := &environment.DieselConsumption{CompanyID: "PSC", CPID: "CP-99"}
	err := service.Create(context.Background(), "acc-1", environment.TypeDieselConsumption, rec)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNKNOWN_PROPERTY", domainErr.Code)
}

func TestService_BulkUpload_InsertsValidRows(t *testing.T) {
	records := new(MockRecordRepository)
	refs := new(MockReferenceRepository)
	statuses := new(MockStatusRepository)
	auditor := new(MockRecorder)
	service := newTestService(records, refs, statuses, auditor, 0)

	file := buildWorkbook(t, waterHeaders(t), [][]interface{}{
		{"PSC", 2024, "January", "Q1", 1250.5, "cubic meter"},
		{"PSC", 2024, "February", "Q1", 980.25, "cubic meter"},
	})

	refs.On("CompanyExists", mock.Anything, "PSC").Return(true, nil)
	records.On("BulkInsert", mock.Anything, environment.TypeWaterAbstraction, mock.Anything).
		Run(func(args mock.Arguments) {
			recs := args.Get(2).([]environment.Record)
			for i, rec := range recs {
				rec.SetRecordID(fmt.Sprintf("PSC-2024-%03d", i+1))
			}
		}).Return(2, nil)
	statuses.On("Create", mock.Anything, mock.Anything).Return(nil).Times(2)
	auditor.On("Record", mock.Anything, mock.MatchedBy(func(e audit.Entry) bool {
		return e.ActionType == audit.ActionBulkCreate
	})).Return()

	result, err := service.BulkUpload(context.Background(), "acc-1", environment.TypeWaterAbstraction, file)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.ValidRows)
	assert.True(t, result.IsValid())
	records.AssertExpectations(t)
	statuses.AssertExpectations(t)
	auditor.AssertExpectations(t)

	// The PSC lookup is cached for the whole file.
	refs.AssertNumberOfCalls(t, "CompanyExists", 1)
}

func TestService_BulkUpload_RejectsFileWithInvalidRows(t *testing.T) {
	records := new(MockRecordRepository)
	refs := new(MockReferenceRepository)
	statuses := new(MockStatusRepository)
	auditor := new(MockRecorder)
	service := newTestService(records, refs, statuses, auditor, 0)

	file := buildWorkbook(t, waterHeaders(t), [][]interface{}{
		{"PSC", 2024, "January", "Q1", 1250.5, "cubic meter"},
		{"XXX", "not-a-year", "January", "Q9", -5, "cubic meter"},
	})

	refs.On("CompanyExists", mock.Anything, "PSC").Return(true, nil)
	refs.On("CompanyExists", mock.Anything, "XXX").Return(false, nil)

	result, err := service.BulkUpload(context.Background(), "acc-1", environment.TypeWaterAbstraction, file)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Zero(t, result.ValidRows)
	assert.Equal(t, 1, result.ErrorRows, "only the malformed row counts, not each of its errors")
	assert.False(t, result.IsValid())
	assert.NotEmpty(t, result.Errors)
	records.AssertNotCalled(t, "BulkInsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_BulkUpload_RejectsWrongHeaders(t *testing.T) {
	records := new(MockRecordRepository)
	refs := new(MockReferenceRepository)
	statuses := new(MockStatusRepository)
	auditor := new(MockRecorder)
	service := newTestService(records, refs, statuses, auditor, 0)

	file := buildWorkbook(t, []string{"company", "yr", "vol"}, [][]interface{}{
		{"PSC", 2024, 100},
	})

	result, err := service.BulkUpload(context.Background(), "acc-1", environment.TypeWaterAbstraction, file)

	require.NoError(t, err)
	assert.False(t, result.IsValid())
	assert.NotEmpty(t, result.Errors)
	assert.Equal(t, 1, result.TotalRows, "parsed rows are reported even when the header is wrong")
	assert.Equal(t, 1, result.ErrorRows)
	records.AssertNotCalled(t, "BulkInsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_BulkUpload_DieselAcceptsISODates(t *testing.T) {
	records := new(MockRecordRepository)
	refs := new(MockReferenceRepository)
	statuses := new(MockStatusRepository)
	auditor := new(MockRecorder)
	service := newTestService(records, refs, statuses, auditor, 0)

	tpl, err := templateFor(environment.TypeDieselConsumption)
	require.NoError(t, err)
	file := buildWorkbook(t, tpl.Headers(), [][]interface{}{
		{"PSC", "CP-001", "liter", 385.2, "2024-06-15"},
	})

	refs.On("CompanyExists", mock.Anything, "PSC").Return(true, nil)
	records.On("FindCompanyProperty", mock.Anything, "CP-001").
		Return(&environment.CompanyProperty{CPID: "CP-001", CompanyID: "PSC"}, nil)
	records.On("BulkInsert", mock.Anything, environment.TypeDieselConsumption, mock.MatchedBy(func(recs []environment.Record) bool {
		if len(recs) != 1 {
			return false
		}
		dc, ok := recs[0].(*environment.DieselConsumption)
		return ok && dc.Date.Equal(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	})).Run(func(args mock.Arguments) {
		args.Get(2).([]environment.Record)[0].SetRecordID("DC-PSC-2024-001")
	}).Return(1, nil)
	statuses.On("Create", mock.Anything, mock.Anything).Return(nil)
	auditor.On("Record", mock.Anything, mock.Anything).Return()

	result, err := service.BulkUpload(context.Background(), "acc-1", environment.TypeDieselConsumption, file)

	require.NoError(t, err)
	assert.True(t, result.IsValid())
	assert.Equal(t, 1, result.ValidRows)
	records.AssertExpectations(t)
}

func TestService_BulkUpload_DieselRejectsSlashDates(t *testing.T) {
	records := new(MockRecordRepository)
	refs := new(MockReferenceRepository)
	statuses := new(MockStatusRepository)
	auditor := new(MockRecorder)
	service := newTestService(records, refs, statuses, auditor, 0)

	tpl, err := templateFor(environment.TypeDieselConsumption)
	require.NoError(t, err)
	file := buildWorkbook(t, tpl.Headers(), [][]interface{}{
		{"PSC", "CP-001", "liter", 385.2, "06/15/2024"},
	})

	refs.On("CompanyExists", mock.Anything, "PSC").Return(true, nil)
	records.On("FindCompanyProperty", mock.Anything, "CP-001").
		Return(&environment.CompanyProperty{CPID: "CP-001", CompanyID: "PSC"}, nil)

	result, err := service.BulkUpload(context.Background(), "acc-1", environment.TypeDieselConsumption, file)

	require.NoError(t, err)
	assert.False(t, result.IsValid())
	assert.NotEmpty(t, result.Errors)
	records.AssertNotCalled(t, "BulkInsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_BulkUpload_EnforcesRowLimit(t *testing.T) {
	records := new(MockRecordRepository)
	refs := new(MockReferenceRepository)
	statuses := new(MockStatusRepository)
	auditor := new(MockRecorder)
	service := newTestService(records, refs, statuses, auditor, 1)

	file := buildWorkbook(t, waterHeaders(t), [][]interface{}{
		{"PSC", 2024, "January", "Q1", 1250.5, "cubic meter"},
		{"PSC", 2024, "February", "Q1", 980.25, "cubic meter"},
	})

	_, err := service.BulkUpload(context.Background(), "acc-1", environment.TypeWaterAbstraction, file)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOO_MANY_ROWS", domainErr.Code)
}

func TestService_WriteTemplate(t *testing.T) {
	service := newTestService(new(MockRecordRepository), new(MockReferenceRepository), new(MockStatusRepository), new(MockRecorder), 0)

	var buf bytes.Buffer
	name, err := service.WriteTemplate(environment.TypeDieselConsumption, &buf)

	require.NoError(t, err)
	assert.Equal(t, "diesel_consumption_template.xlsx", name)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	tpl, tplErr := templateFor(environment.TypeDieselConsumption)
	require.NoError(t, tplErr)
	rows, err := f.GetRows(tpl.SheetName)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, tpl.Headers(), rows[0])
}

func TestService_Get_InvalidType(t *testing.T) {
	service := newTestService(new(MockRecordRepository), new(MockReferenceRepository), new(MockStatusRepository), new(MockRecorder), 0)

	_, err := service.Get(context.Background(), environment.RecordType("mystery"), "X-001")

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_RECORD_TYPE", domainErr.Code)
}
