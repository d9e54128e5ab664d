package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"personnel/internal/clients"
	"personnel/internal/i18n"
	"personnel/internal/model"
	"personnel/internal/payroll"
	"personnel/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=export_service.go -destination=../mocks/export_service.go -package=mocks

// ObjectStore is the S3 subset used to publish exports.
type ObjectStore interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Localizer resolves message keys for a locale.
type Localizer interface {
	T(locale, key string, args ...any) string
}

// ExportResult carries either a download URL (object storage configured) or the file itself.
type ExportResult struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Rows        int    `json:"rows"`
	URL         string `json:"url,omitempty"`
	Data        []byte `json:"-"`
}

type ExportService interface {
	ExportCalculations(ctx context.Context, q CalculationQuery, locale, userID string) (ExportResult, error)
}

type ExportOptions struct {
	MaxRows int
	URLTTL  time.Duration
}

type exportColumn struct {
	Header string // i18n key
	Width  float64
	Value  func(c model.PayrollCalculation) any
}

var calculationColumns = []exportColumn{
	{Header: i18n.KeyColNumber, Width: 14, Value: func(c model.PayrollCalculation) any { return c.Number }},
	{Header: i18n.KeyColPeriod, Width: 12, Value: func(c model.PayrollCalculation) any { return c.PeriodDate.Format(payroll.DateLayout) }},
	{Header: i18n.KeyColPersonnelNo, Width: 14, Value: func(c model.PayrollCalculation) any {
		if c.Employee == nil {
			return ""
		}
		return c.Employee.PersonnelNumber
	}},
	{Header: i18n.KeyColEmployee, Width: 30, Value: func(c model.PayrollCalculation) any {
		if c.Employee == nil {
			return ""
		}
		return c.Employee.FullName
	}},
	{Header: i18n.KeyColTaxStatus, Width: 16, Value: func(c model.PayrollCalculation) any { return c.TaxStatus }},
	{Header: i18n.KeyColDirection, Width: 12, Value: func(c model.PayrollCalculation) any { return c.Direction }},
	{Header: i18n.KeyColGross, Width: 14, Value: func(c model.PayrollCalculation) any { return money(c.Gross) }},
	{Header: i18n.KeyColWithheld, Width: 14, Value: func(c model.PayrollCalculation) any { return money(c.Withheld) }},
	{Header: i18n.KeyColNet, Width: 14, Value: func(c model.PayrollCalculation) any { return money(c.Net) }},
	{Header: i18n.KeyColRate, Width: 8, Value: func(c model.PayrollCalculation) any { return c.RateApplied.InexactFloat64() }},
}

// columns summed in the totals row, 1-based
var totalColumns = []int{7, 8, 9}

type exportService struct {
	calcRepo repository.PayrollCalculationRepository
	store    ObjectStore
	audit    AuditService
	loc      Localizer
	log      *slog.Logger
	opts     ExportOptions
	now      func() time.Time
}

// NewExportService builds the exporter. store may be nil, in which case the file is returned inline.
func NewExportService(calcRepo repository.PayrollCalculationRepository, store ObjectStore, audit AuditService, loc Localizer, log *slog.Logger, opts ExportOptions) ExportService {
	if opts.MaxRows <= 0 {
		opts.MaxRows = 50000
	}
	if opts.URLTTL <= 0 {
		opts.URLTTL = time.Hour
	}
	return &exportService{calcRepo: calcRepo, store: store, audit: audit, loc: loc, log: log, opts: opts, now: time.Now}
}

func (s *exportService) ExportCalculations(ctx context.Context, q CalculationQuery, locale, userID string) (ExportResult, error) {
	filter, err := parseCalculationQuery(q)
	if err != nil {
		return ExportResult{}, err
	}

	calcs, err := s.calcRepo.ListForExport(ctx, filter, s.opts.MaxRows+1)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to load payroll calculations: %w", err)
	}
	if len(calcs) > s.opts.MaxRows {
		return ExportResult{}, fmt.Errorf("%w: more than %d rows, narrow the period", ErrInvalidInput, s.opts.MaxRows)
	}

	data, err := s.buildWorkbook(calcs, locale)
	if err != nil {
		return ExportResult{}, err
	}

	res := ExportResult{
		FileName:    fmt.Sprintf("payroll_%s.xlsx", s.now().UTC().Format("20060102_150405")),
		ContentType: clients.ContentTypeXLSX,
		Rows:        len(calcs),
	}

	if s.store != nil {
		key, err := s.store.Upload(ctx, res.FileName, res.ContentType, data)
		if err != nil {
			return ExportResult{}, fmt.Errorf("failed to upload export: %w", err)
		}
		if res.URL, err = s.store.PresignedURL(ctx, key, s.opts.URLTTL); err != nil {
			return ExportResult{}, fmt.Errorf("failed to sign export url: %w", err)
		}
	} else {
		res.Data = data
	}

	if err := s.audit.Record(ctx, AuditEntry{
		UserID:   userID,
		Action:   model.ActionExportPayroll,
		Entity:   model.EntityPayrollCalculation,
		EntityID: res.FileName,
		NewValues: map[string]any{
			"rows":        res.Rows,
			"employee_id": q.EmployeeID,
			"from":        q.From,
			"to":          q.To,
		},
	}); err != nil {
		// the file already exists at this point
		s.log.ErrorContext(ctx, "failed to audit payroll export", slog.Any("error", err))
	}

	s.log.InfoContext(ctx, "payroll export built", slog.Int("rows", res.Rows), slog.Bool("uploaded", res.URL != ""))
	return res, nil
}

func (s *exportService) buildWorkbook(calcs []model.PayrollCalculation, locale string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := s.loc.T(locale, i18n.KeySheetPayroll)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("money style: %w", err)
	}

	for i, col := range calculationColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, s.loc.T(locale, col.Header)); err != nil {
			return nil, err
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, name, name, col.Width)
	}
	last, _ := excelize.CoordinatesToCellName(len(calculationColumns), 1)
	_ = f.SetCellStyle(sheet, "A1", last, headerStyle)

	rowIdx := 2
	for _, c := range calcs {
		for colIdx, col := range calculationColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, col.Value(c)); err != nil {
				return nil, err
			}
		}
		rowIdx++
	}

	// totals row
	label, _ := excelize.CoordinatesToCellName(1, rowIdx)
	_ = f.SetCellValue(sheet, label, s.loc.T(locale, i18n.KeyColTotal))
	_ = f.SetCellStyle(sheet, label, label, headerStyle)
	for _, colIdx := range totalColumns {
		name, _ := excelize.ColumnNumberToName(colIdx)
		cell, _ := excelize.CoordinatesToCellName(colIdx, rowIdx)
		if rowIdx > 2 {
			if err := f.SetCellFormula(sheet, cell, fmt.Sprintf("SUM(%s2:%s%d)", name, name, rowIdx-1)); err != nil {
				return nil, err
			}
		} else {
			_ = f.SetCellValue(sheet, cell, 0)
		}
		top, _ := excelize.CoordinatesToCellName(colIdx, 2)
		_ = f.SetCellStyle(sheet, top, cell, moneyStyle)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) float64 {
	return d.Round(payroll.CurrencyPlaces).InexactFloat64()
}
