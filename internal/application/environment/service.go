package environment

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/audit"
	"github.com/petroenergy/petrodash/internal/domain/environment"
	"github.com/petroenergy/petrodash/internal/domain/reference"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/domain/workflow"
	"github.com/petroenergy/petrodash/internal/infrastructure/upload"
)

const defaultMaxUploadErrors = 100

// Service handles CRUD and bulk upload over the bronze environment
// tables. Every write pairs the record with a pending checker status
// and an audit entry.
type Service struct {
	records   environment.Repository
	reference reference.Repository
	statuses  workflow.Repository
	auditor   audit.Recorder
	logger    *zap.Logger
	maxRows   int
}

// NewService creates a new environment service. maxRows bounds bulk
// uploads; zero means no bound.
func NewService(
	records environment.Repository,
	refRepo reference.Repository,
	statuses workflow.Repository,
	auditor audit.Recorder,
	logger *zap.Logger,
	maxRows int,
) *Service {
	return &Service{
		records:   records,
		reference: refRepo,
		statuses:  statuses,
		auditor:   auditor,
		logger:    logger,
		maxRows:   maxRows,
	}
}

// Get finds one record of the given type by ID.
func (s *Service) Get(ctx context.Context, t environment.RecordType, id string) (interface{}, error) {
	switch t {
	case environment.TypeCompanyProperty:
		return s.records.FindCompanyProperty(ctx, id)
	case environment.TypeWaterAbstraction:
		return s.records.FindWaterAbstraction(ctx, id)
	case environment.TypeWaterDischarge:
		return s.records.FindWaterDischarge(ctx, id)
	case environment.TypeWaterConsumption:
		return s.records.FindWaterConsumption(ctx, id)
	case environment.TypeDieselConsumption:
		return s.records.FindDieselConsumption(ctx, id)
	case environment.TypeElectricConsumption:
		return s.records.FindElectricConsumption(ctx, id)
	case environment.TypeNonHazardWaste:
		return s.records.FindNonHazardWaste(ctx, id)
	case environment.TypeHazardWasteGenerated:
		return s.records.FindHazardWasteGenerated(ctx, id)
	case environment.TypeHazardWasteDisposed:
		return s.records.FindHazardWasteDisposed(ctx, id)
	default:
		return nil, invalidRecordType(t)
	}
}

// List lists records of the given type.
func (s *Service) List(ctx context.Context, t environment.RecordType, filter environment.Filter) (interface{}, error) {
	switch t {
	case environment.TypeCompanyProperty:
		return s.records.ListCompanyProperties(ctx, filter)
	case environment.TypeWaterAbstraction:
		return s.records.ListWaterAbstractions(ctx, filter)
	case environment.TypeWaterDischarge:
		return s.records.ListWaterDischarges(ctx, filter)
	case environment.TypeWaterConsumption:
		return s.records.ListWaterConsumptions(ctx, filter)
	case environment.TypeDieselConsumption:
		return s.records.ListDieselConsumptions(ctx, filter)
	case environment.TypeElectricConsumption:
		return s.records.ListElectricConsumptions(ctx, filter)
	case environment.TypeNonHazardWaste:
		return s.records.ListNonHazardWastes(ctx, filter)
	case environment.TypeHazardWasteGenerated:
		return s.records.ListHazardWasteGenerated(ctx, filter)
	case environment.TypeHazardWasteDisposed:
		return s.records.ListHazardWasteDisposed(ctx, filter)
	default:
		return nil, invalidRecordType(t)
	}
}

// Create validates references, inserts the record with a generated
// sequential ID, pairs it with a pending checker status, and audits it.
func (s *Service) Create(ctx context.Context, actorID string, t environment.RecordType, rec environment.Record) error {
	if !t.Valid() {
		return invalidRecordType(t)
	}
	if err := s.checkReferences(ctx, rec); err != nil {
		return err
	}
	if err := s.records.Insert(ctx, t, rec); err != nil {
		return err
	}
	s.pairStatus(ctx, t, rec.RecordID())

	s.auditor.Record(ctx, audit.NewEntry(
		actorID, t.Table(), rec.RecordID(), audit.ActionCreate,
		"", rec.RecordID(), "created "+string(t)+" record"))

	s.logger.Info("Environment record created",
		zap.String("record_type", string(t)),
		zap.String("record_id", rec.RecordID()))
	return nil
}

// BulkUpload parses an Excel workbook, validates it against the record
// type's template, and inserts all rows in one transaction. A file with
// any invalid cell is rejected whole; the result carries the full error
// list (truncated past the cap).
func (s *Service) BulkUpload(ctx context.Context, actorID string, t environment.RecordType, file io.Reader) (*upload.Result, error) {
	template, err := templateFor(t)
	if err != nil {
		return nil, err
	}

	wb, err := upload.OpenWorkbook(file)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", err.Error())
	}
	defer wb.Close()

	rows := wb.Rows()
	if problems := wb.ValidateHeaders(template.Headers()); len(problems) > 0 {
		// No row is usable under a bad header, so every parsed row
		// counts as an error row.
		result := &upload.Result{TotalRows: len(rows), ErrorRows: len(rows)}
		collection := upload.NewErrorCollection(defaultMaxUploadErrors)
		for _, problem := range problems {
			collection.AddValidationError(1, "", upload.ErrCodeUploadInvalidHeader, problem)
		}
		result.SetErrors(collection)
		if result.ErrorRows == 0 {
			result.ErrorRows = result.TotalErrors
		}
		return result, nil
	}

	if len(rows) == 0 {
		return nil, shared.NewDomainError("EMPTY_FILE", "workbook contains no data rows")
	}
	if s.maxRows > 0 && len(rows) > s.maxRows {
		return nil, shared.NewDomainError("TOO_MANY_ROWS",
			fmt.Sprintf("workbook has %d rows, the limit is %d", len(rows), s.maxRows))
	}

	rules := rulesFor(t)
	validator := upload.NewFieldValidator(rules, defaultMaxUploadErrors)
	refValidator := upload.NewReferenceValidator(s.lookupReference(ctx), defaultMaxUploadErrors)

	for _, row := range rows {
		validator.ValidateRow(row)
		for _, rule := range rules {
			if rule.Reference != "" {
				refValidator.ValidateReference(row.LineNumber, rule.Column, rule.Reference, row.Get(rule.Column))
			}
		}
	}

	result := &upload.Result{TotalRows: len(rows)}
	if validator.Errors().HasErrors() || refValidator.Errors().HasErrors() {
		merged := upload.NewErrorCollection(defaultMaxUploadErrors)
		badRows := make(map[int]struct{})
		for _, e := range validator.Errors().Errors() {
			merged.Add(e)
			badRows[e.Row] = struct{}{}
		}
		for _, e := range refValidator.Errors().Errors() {
			merged.Add(e)
			badRows[e.Row] = struct{}{}
		}
		result.SetErrors(merged)
		result.ErrorRows = len(badRows)
		s.logger.Warn("Environment bulk upload rejected",
			zap.String("record_type", string(t)),
			zap.Int("total_rows", result.TotalRows),
			zap.Int("errors", result.TotalErrors))
		return result, nil
	}

	recs := make([]environment.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := recordFromRow(t, row)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	inserted, err := s.records.BulkInsert(ctx, t, recs)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		s.pairStatus(ctx, t, rec.RecordID())
	}

	result.ValidRows = inserted
	s.auditor.Record(ctx, audit.NewEntry(
		actorID, t.Table(), "", audit.ActionBulkCreate,
		"", fmt.Sprintf("%d", inserted),
		fmt.Sprintf("bulk created %d %s records", inserted, t)))

	s.logger.Info("Environment bulk upload inserted",
		zap.String("record_type", string(t)),
		zap.Int("rows", inserted))
	return result, nil
}

// WriteTemplate builds the record type's Excel template and writes the
// workbook to w. It returns a download filename.
func (s *Service) WriteTemplate(t environment.RecordType, w io.Writer) (string, error) {
	template, err := templateFor(t)
	if err != nil {
		return "", err
	}
	if err := template.WriteTo(w); err != nil {
		return "", err
	}
	return string(t) + "_template.xlsx", nil
}

// checkReferences verifies the company and, for diesel rows, the
// company property behind a single insert.
func (s *Service) checkReferences(ctx context.Context, rec environment.Record) error {
	if companyID := recordCompanyID(rec); companyID != "" {
		exists, err := s.reference.CompanyExists(ctx, companyID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewDomainError("UNKNOWN_COMPANY", "company "+companyID+" is not registered")
		}
	}
	if diesel, ok := rec.(*environment.DieselConsumption); ok && diesel.CPID != "" {
		if _, err := s.records.FindCompanyProperty(ctx, diesel.CPID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("UNKNOWN_PROPERTY", "company property "+diesel.CPID+" is not registered")
			}
			return err
		}
	}
	return nil
}

func (s *Service) lookupReference(ctx context.Context) func(refType, value string) (bool, error) {
	return func(refType, value string) (bool, error) {
		switch refType {
		case "company":
			return s.reference.CompanyExists(ctx, value)
		case "company_property":
			_, err := s.records.FindCompanyProperty(ctx, value)
			if errors.Is(err, shared.ErrNotFound) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			return true, nil
		default:
			return false, fmt.Errorf("unknown reference type %q", refType)
		}
	}
}

// pairStatus creates the pending checker-status row for a record. A
// failure is logged but does not undo the insert.
func (s *Service) pairStatus(ctx context.Context, t environment.RecordType, recordID string) {
	rs := workflow.NewRecordStatus(recordID, t.Table())
	if err := s.statuses.Create(ctx, rs); err != nil {
		s.logger.Error("Failed to create checker status for record",
			zap.String("record_id", recordID),
			zap.String("record_type", string(t)),
			zap.Error(err))
	}
}

func recordCompanyID(rec environment.Record) string {
	switch v := rec.(type) {
	case *environment.CompanyProperty:
		return v.CompanyID
	case *environment.WaterAbstraction:
		return v.CompanyID
	case *environment.WaterDischarge:
		return v.CompanyID
	case *environment.WaterConsumption:
		return v.CompanyID
	case *environment.DieselConsumption:
		return v.CompanyID
	case *environment.ElectricConsumption:
		return v.CompanyID
	case *environment.NonHazardWaste:
		return v.CompanyID
	case *environment.HazardWasteGenerated:
		return v.CompanyID
	case *environment.HazardWasteDisposed:
		return v.CompanyID
	default:
		return ""
	}
}

func invalidRecordType(t environment.RecordType) error {
	return shared.NewDomainError("INVALID_RECORD_TYPE", "unknown environment record type: "+string(t))
}
