package environment

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/petroenergy/petrodash/internal/domain/environment"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/infrastructure/upload"
)

const dieselDateFormat = "2006-01-02"

var quarters = []string{"Q1", "Q2", "Q3", "Q4"}

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// templateFor returns the Excel upload template for a record type. The
// template headers are authoritative: uploads must match them exactly.
func templateFor(t environment.RecordType) (upload.Template, error) {
	switch t {
	case environment.TypeCompanyProperty:
		return upload.Template{
			SheetName: "Company Property",
			Columns: []upload.TemplateColumn{
				{Header: "company_id", Type: "string", Description: "Registered company ID", Example: "PSC"},
				{Header: "cp_name", Type: "string", Description: "Property or vehicle name", Example: "Service Truck 3"},
				{Header: "cp_type", Type: "string", Description: "Equipment or Vehicle", Example: "Vehicle"},
			},
		}, nil
	case environment.TypeWaterAbstraction:
		return upload.Template{
			SheetName: "Water Abstraction",
			Columns: []upload.TemplateColumn{
				{Header: "company_id", Type: "string", Description: "Registered company ID", Example: "PSC"},
				{Header: "year", Type: "integer", Description: "Reporting year", Example: "2024"},
				{Header: "month", Type: "string", Description: "Month name", Example: "January"},
				{Header: "quarter", Type: "string", Description: "Q1, Q2, Q3 or Q4", Example: "Q1"},
				{Header: "volume", Type: "decimal", Description: "Abstracted volume", Example: "1250.50"},
				{Header: "unit_of_measurement", Type: "string", Description: "Volume unit", Example: "cubic meter"},
			},
		}, nil
	case environment.TypeWaterDischarge:
		return upload.Template{
			SheetName: "Water Discharge",
			Columns:   quarterlyVolumeColumns("Discharged volume"),
		}, nil
	case environment.TypeWaterConsumption:
		return upload.Template{
			SheetName: "Water Consumption",
			Columns:   quarterlyVolumeColumns("Consumed volume"),
		}, nil
	case environment.TypeDieselConsumption:
		return upload.Template{
			SheetName: "Diesel Consumption",
			Columns: []upload.TemplateColumn{
				{Header: "company_id", Type: "string", Description: "Registered company ID", Example: "PSC"},
				{Header: "cp_id", Type: "string", Description: "Company property ID", Example: "CP-20250601-001"},
				{Header: "unit_of_measurement", Type: "string", Description: "Consumption unit", Example: "liter"},
				{Header: "consumption", Type: "decimal", Description: "Diesel consumed", Example: "385.20"},
				{Header: "date", Type: "date", Description: "Reading date, YYYY-MM-DD", Example: "2024-06-15"},
			},
		}, nil
	case environment.TypeElectricConsumption:
		return upload.Template{
			SheetName: "Electric Consumption",
			Columns: []upload.TemplateColumn{
				{Header: "company_id", Type: "string", Description: "Registered company ID", Example: "PSC"},
				{Header: "source", Type: "string", Description: "Consumption source location", Example: "Head Office"},
				{Header: "unit_of_measurement", Type: "string", Description: "Consumption unit", Example: "kWh"},
				{Header: "consumption", Type: "decimal", Description: "Electricity consumed", Example: "10500.00"},
				{Header: "quarter", Type: "string", Description: "Q1, Q2, Q3 or Q4", Example: "Q2"},
				{Header: "year", Type: "integer", Description: "Reporting year", Example: "2024"},
			},
		}, nil
	case environment.TypeNonHazardWaste:
		return upload.Template{
			SheetName: "Non-Hazardous Waste",
			Columns: []upload.TemplateColumn{
				{Header: "company_id", Type: "string", Description: "Registered company ID", Example: "PSC"},
				{Header: "metrics", Type: "string", Description: "Waste metric name", Example: "Residual"},
				{Header: "unit_of_measurement", Type: "string", Description: "Waste unit", Example: "kilogram"},
				{Header: "waste", Type: "decimal", Description: "Waste amount", Example: "120.00"},
				{Header: "month", Type: "string", Description: "Month name", Example: "March"},
				{Header: "quarter", Type: "string", Description: "Q1, Q2, Q3 or Q4", Example: "Q1"},
				{Header: "year", Type: "integer", Description: "Reporting year", Example: "2024"},
			},
		}, nil
	case environment.TypeHazardWasteGenerated:
		return upload.Template{
			SheetName: "Hazardous Waste Generated",
			Columns: []upload.TemplateColumn{
				{Header: "company_id", Type: "string", Description: "Registered company ID", Example: "PSC"},
				{Header: "metrics", Type: "string", Description: "Waste metric name", Example: "Used Oil"},
				{Header: "unit_of_measurement", Type: "string", Description: "Waste unit", Example: "liter"},
				{Header: "waste_generated", Type: "decimal", Description: "Waste generated", Example: "60.00"},
				{Header: "quarter", Type: "string", Description: "Q1, Q2, Q3 or Q4", Example: "Q3"},
				{Header: "year", Type: "integer", Description: "Reporting year", Example: "2024"},
			},
		}, nil
	case environment.TypeHazardWasteDisposed:
		return upload.Template{
			SheetName: "Hazardous Waste Disposed",
			Columns: []upload.TemplateColumn{
				{Header: "company_id", Type: "string", Description: "Registered company ID", Example: "PSC"},
				{Header: "metrics", Type: "string", Description: "Waste metric name", Example: "Busted Lamps"},
				{Header: "unit_of_measurement", Type: "string", Description: "Waste unit", Example: "piece"},
				{Header: "waste_disposed", Type: "decimal", Description: "Waste disposed", Example: "45.00"},
				{Header: "year", Type: "integer", Description: "Reporting year", Example: "2023"},
			},
		}, nil
	default:
		return upload.Template{}, shared.NewDomainError("INVALID_RECORD_TYPE", "unknown environment record type: "+string(t))
	}
}

func quarterlyVolumeColumns(volumeDescription string) []upload.TemplateColumn {
	return []upload.TemplateColumn{
		{Header: "company_id", Type: "string", Description: "Registered company ID", Example: "PSC"},
		{Header: "year", Type: "integer", Description: "Reporting year", Example: "2024"},
		{Header: "quarter", Type: "string", Description: "Q1, Q2, Q3 or Q4", Example: "Q1"},
		{Header: "volume", Type: "decimal", Description: volumeDescription, Example: "980.00"},
		{Header: "unit_of_measurement", Type: "string", Description: "Volume unit", Example: "cubic meter"},
	}
}

// rulesFor returns the per-cell validation rules for a record type.
func rulesFor(t environment.RecordType) []upload.FieldRule {
	company := upload.Field("company_id").Required().MaxLength(10).Reference("company").Build()
	year := upload.Field("year").Required().Int().Range(decimal.NewFromInt(2000), decimal.NewFromInt(2100)).Build()
	quarter := upload.Field("quarter").Required().OneOf(quarters...).Build()
	month := upload.Field("month").Required().OneOf(months...).Build()
	unit := upload.Field("unit_of_measurement").Required().MaxLength(30).Build()

	switch t {
	case environment.TypeCompanyProperty:
		return []upload.FieldRule{
			company,
			upload.Field("cp_name").Required().MaxLength(120).Build(),
			upload.Field("cp_type").Required().OneOf("Equipment", "Vehicle").Build(),
		}
	case environment.TypeWaterAbstraction:
		return []upload.FieldRule{
			company, year, month, quarter,
			upload.Field("volume").Required().Decimal().MinValue(decimal.Zero).Build(),
			unit,
		}
	case environment.TypeWaterDischarge, environment.TypeWaterConsumption:
		return []upload.FieldRule{
			company, year, quarter,
			upload.Field("volume").Required().Decimal().MinValue(decimal.Zero).Build(),
			unit,
		}
	case environment.TypeDieselConsumption:
		return []upload.FieldRule{
			company,
			upload.Field("cp_id").Required().MaxLength(20).Reference("company_property").Build(),
			unit,
			upload.Field("consumption").Required().Decimal().MinValue(decimal.Zero).Build(),
			upload.Field("date").Required().DateFormat(dieselDateFormat).Build(),
		}
	case environment.TypeElectricConsumption:
		return []upload.FieldRule{
			company,
			upload.Field("source").Required().MaxLength(120).Build(),
			unit,
			upload.Field("consumption").Required().Decimal().MinValue(decimal.Zero).Build(),
			quarter, year,
		}
	case environment.TypeNonHazardWaste:
		return []upload.FieldRule{
			company,
			upload.Field("metrics").Required().MaxLength(120).Build(),
			unit,
			upload.Field("waste").Required().Decimal().MinValue(decimal.Zero).Build(),
			month, quarter, year,
		}
	case environment.TypeHazardWasteGenerated:
		return []upload.FieldRule{
			company,
			upload.Field("metrics").Required().MaxLength(120).Build(),
			unit,
			upload.Field("waste_generated").Required().Decimal().MinValue(decimal.Zero).Build(),
			quarter, year,
		}
	case environment.TypeHazardWasteDisposed:
		return []upload.FieldRule{
			company,
			upload.Field("metrics").Required().MaxLength(120).Build(),
			unit,
			upload.Field("waste_disposed").Required().Decimal().MinValue(decimal.Zero).Build(),
			year,
		}
	default:
		return nil
	}
}

// recordFromRow maps a validated upload row to a domain record. Values
// have already passed cell validation; conversion errors still surface
// as domain errors rather than panics.
func recordFromRow(t environment.RecordType, row *upload.Row) (environment.Record, error) {
	switch t {
	case environment.TypeCompanyProperty:
		return &environment.CompanyProperty{
			CompanyID: cell(row, "company_id"),
			CPName:    cell(row, "cp_name"),
			CPType:    cell(row, "cp_type"),
		}, nil
	case environment.TypeWaterAbstraction:
		year, err := cellInt(row, "year")
		if err != nil {
			return nil, err
		}
		volume, err := cellDecimal(row, "volume")
		if err != nil {
			return nil, err
		}
		return &environment.WaterAbstraction{
			CompanyID:         cell(row, "company_id"),
			Year:              year,
			Month:             cell(row, "month"),
			Quarter:           cell(row, "quarter"),
			Volume:            volume,
			UnitOfMeasurement: cell(row, "unit_of_measurement"),
		}, nil
	case environment.TypeWaterDischarge:
		year, err := cellInt(row, "year")
		if err != nil {
			return nil, err
		}
		volume, err := cellDecimal(row, "volume")
		if err != nil {
			return nil, err
		}
		return &environment.WaterDischarge{
			CompanyID:         cell(row, "company_id"),
			Year:              year,
			Quarter:           cell(row, "quarter"),
			Volume:            volume,
			UnitOfMeasurement: cell(row, "unit_of_measurement"),
		}, nil
	case environment.TypeWaterConsumption:
		year, err := cellInt(row, "year")
		if err != nil {
			return nil, err
		}
		volume, err := cellDecimal(row, "volume")
		if err != nil {
			return nil, err
		}
		return &environment.WaterConsumption{
			CompanyID:         cell(row, "company_id"),
			Year:              year,
			Quarter:           cell(row, "quarter"),
			Volume:            volume,
			UnitOfMeasurement: cell(row, "unit_of_measurement"),
		}, nil
	case environment.TypeDieselConsumption:
		consumption, err := cellDecimal(row, "consumption")
		if err != nil {
			return nil, err
		}
		date, err := time.Parse(dieselDateFormat, cell(row, "date"))
		if err != nil {
			return nil, shared.NewDomainError("INVALID_CELL", "date must be YYYY-MM-DD")
		}
		return &environment.DieselConsumption{
			CompanyID:         cell(row, "company_id"),
			CPID:              cell(row, "cp_id"),
			UnitOfMeasurement: cell(row, "unit_of_measurement"),
			Consumption:       consumption,
			Date:              date,
		}, nil
	case environment.TypeElectricConsumption:
		year, err := cellInt(row, "year")
		if err != nil {
			return nil, err
		}
		consumption, err := cellDecimal(row, "consumption")
		if err != nil {
			return nil, err
		}
		return &environment.ElectricConsumption{
			CompanyID:         cell(row, "company_id"),
			Source:            cell(row, "source"),
			UnitOfMeasurement: cell(row, "unit_of_measurement"),
			Consumption:       consumption,
			Quarter:           cell(row, "quarter"),
			Year:              year,
		}, nil
	case environment.TypeNonHazardWaste:
		year, err := cellInt(row, "year")
		if err != nil {
			return nil, err
		}
		waste, err := cellDecimal(row, "waste")
		if err != nil {
			return nil, err
		}
		return &environment.NonHazardWaste{
			CompanyID:         cell(row, "company_id"),
			Metrics:           cell(row, "metrics"),
			UnitOfMeasurement: cell(row, "unit_of_measurement"),
			Waste:             waste,
			Month:             cell(row, "month"),
			Quarter:           cell(row, "quarter"),
			Year:              year,
		}, nil
	case environment.TypeHazardWasteGenerated:
		year, err := cellInt(row, "year")
		if err != nil {
			return nil, err
		}
		waste, err := cellDecimal(row, "waste_generated")
		if err != nil {
			return nil, err
		}
		return &environment.HazardWasteGenerated{
			CompanyID:         cell(row, "company_id"),
			Metrics:           cell(row, "metrics"),
			UnitOfMeasurement: cell(row, "unit_of_measurement"),
			WasteGenerated:    waste,
			Quarter:           cell(row, "quarter"),
			Year:              year,
		}, nil
	case environment.TypeHazardWasteDisposed:
		year, err := cellInt(row, "year")
		if err != nil {
			return nil, err
		}
		waste, err := cellDecimal(row, "waste_disposed")
		if err != nil {
			return nil, err
		}
		return &environment.HazardWasteDisposed{
			CompanyID:         cell(row, "company_id"),
			Metrics:           cell(row, "metrics"),
			UnitOfMeasurement: cell(row, "unit_of_measurement"),
			WasteDisposed:     waste,
			Year:              year,
		}, nil
	default:
		return nil, shared.NewDomainError("INVALID_RECORD_TYPE", "unknown environment record type: "+string(t))
	}
}

func cell(row *upload.Row, header string) string {
	return strings.TrimSpace(row.Get(header))
}

func cellInt(row *upload.Row, header string) (int, error) {
	v, err := strconv.Atoi(cell(row, header))
	if err != nil {
		return 0, shared.NewDomainError("INVALID_CELL", header+" must be a whole number")
	}
	return v, nil
}

func cellDecimal(row *upload.Row, header string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(cell(row, header))
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_CELL", header+" must be a number")
	}
	return v, nil
}
