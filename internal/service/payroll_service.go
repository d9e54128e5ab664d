package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"personnel/internal/model"
	"personnel/internal/payroll"
	"personnel/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=payroll_service.go -destination=../mocks/payroll_service.go -package=mocks

// maxStoredAmount is the first value a decimal(18,2) money column cannot hold.
var maxStoredAmount = decimal.New(1, 16)

// --- DTOs ---

// ConvertRequest converts one amount at the rate in force on Date.
type ConvertRequest struct {
	Amount       *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"1000.00"`
	Direction    string           `json:"direction" binding:"required" example:"grossToNet"`
	TaxStatus    string           `json:"taxStatus" binding:"required" example:"RESIDENT"`
	Date         string           `json:"date" binding:"required" example:"2023-06-01"`
	Jurisdiction string           `json:"jurisdiction" example:"RU"`
}

type ConvertResponse struct {
	Result        string `json:"result"`
	RateApplied   string `json:"rateApplied"`
	Gross         string `json:"gross"`
	Net           string `json:"net"`
	Withheld      string `json:"withheld"`
	Direction     string `json:"direction"`
	TaxStatus     string `json:"taxStatus"`
	RuleVersionID string `json:"ruleVersionId"`
	EffectiveFrom string `json:"effectiveFrom"`
	Jurisdiction  string `json:"jurisdiction"`
}

type ConvertBatchLine struct {
	Amount    *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string"`
	Direction string           `json:"direction" binding:"required"`
	TaxStatus string           `json:"taxStatus" binding:"required"`
}

// ConvertBatchRequest converts every line against a single rule snapshot.
type ConvertBatchRequest struct {
	Date         string             `json:"date" binding:"required"`
	Jurisdiction string             `json:"jurisdiction"`
	Lines        []ConvertBatchLine `json:"lines" binding:"required,min=1,dive"`
}

type ConvertBatchResponse struct {
	Date          string            `json:"date"`
	Jurisdiction  string            `json:"jurisdiction"`
	Lines         []ConvertResponse `json:"lines"`
	TotalGross    string            `json:"totalGross"`
	TotalNet      string            `json:"totalNet"`
	TotalWithheld string            `json:"totalWithheld"`
}

type CreateCalculationRequest struct {
	EmployeeID   string           `json:"employee_id"`
	Amount       *decimal.Decimal `json:"amount" swaggertype:"string"` // defaults to the employee's base salary for grossToNet
	Direction    string           `json:"direction" binding:"required"`
	TaxStatus    string           `json:"tax_status"` // defaults to the employee's tax status
	PeriodDate   string           `json:"period_date" binding:"required"`
	Jurisdiction string           `json:"jurisdiction"`
}

type CalculationQuery struct {
	EmployeeID string
	From       string
	To         string
}

type CalculationResponse struct {
	ID              string `json:"id"`
	Number          string `json:"number"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	PersonnelNumber string `json:"personnel_number"`
	RuleVersionID   string `json:"rule_version_id"`
	Direction       string `json:"direction"`
	TaxStatus       string `json:"tax_status"`
	PeriodDate      string `json:"period_date"`
	InputAmount     string `json:"input_amount"`
	Gross           string `json:"gross"`
	Net             string `json:"net"`
	Withheld        string `json:"withheld"`
	RateApplied     string `json:"rate_applied"`
	CreatedBy       string `json:"created_by"`
	CreatedAt       string `json:"created_at"`
}

// --- Interface ---

type PayrollService interface {
	Convert(ctx context.Context, req ConvertRequest) (ConvertResponse, error)
	ConvertBatch(ctx context.Context, req ConvertBatchRequest) (ConvertBatchResponse, error)
	CreateCalculation(ctx context.Context, req CreateCalculationRequest, userID string) (CalculationResponse, error)
	ListCalculations(ctx context.Context, q CalculationQuery, page, limit int) ([]CalculationResponse, int64, error)
	GetCalculation(ctx context.Context, id string) (CalculationResponse, error)
}

type PayrollOptions struct {
	DefaultJurisdiction string
	BatchMaxLines       int
}

type payrollService struct {
	rules        RuleSnapshotter
	calcRepo     repository.PayrollCalculationRepository
	employeeRepo repository.EmployeeRepository
	numbering    NumberingService
	audit        AuditService
	txManager    repository.TransactionManager
	log          *slog.Logger
	opts         PayrollOptions
}

func NewPayrollService(
	rules RuleSnapshotter,
	calcRepo repository.PayrollCalculationRepository,
	employeeRepo repository.EmployeeRepository,
	numbering NumberingService,
	audit AuditService,
	txManager repository.TransactionManager,
	log *slog.Logger,
	opts PayrollOptions,
) PayrollService {
	if opts.DefaultJurisdiction == "" {
		opts.DefaultJurisdiction = model.DefaultJurisdiction
	}
	if opts.BatchMaxLines <= 0 {
		opts.BatchMaxLines = 500
	}
	return &payrollService{
		rules:        rules,
		calcRepo:     calcRepo,
		employeeRepo: employeeRepo,
		numbering:    numbering,
		audit:        audit,
		txManager:    txManager,
		log:          log,
		opts:         opts,
	}
}

// --- Implementation ---

func (s *payrollService) Convert(ctx context.Context, req ConvertRequest) (ConvertResponse, error) {
	day, err := parseRequiredDate("date", req.Date)
	if err != nil {
		return ConvertResponse{}, err
	}
	jurisdiction := normalizeJurisdiction(req.Jurisdiction, s.opts.DefaultJurisdiction)

	rules, err := s.rules.Snapshot(ctx, jurisdiction)
	if err != nil {
		return ConvertResponse{}, err
	}

	out, _, err := convertLine(rules, day, jurisdiction, req.Amount, req.Direction, req.TaxStatus)
	return out, err
}

func (s *payrollService) ConvertBatch(ctx context.Context, req ConvertBatchRequest) (ConvertBatchResponse, error) {
	if len(req.Lines) == 0 {
		return ConvertBatchResponse{}, fmt.Errorf("%w: no lines", ErrInvalidInput)
	}
	if len(req.Lines) > s.opts.BatchMaxLines {
		return ConvertBatchResponse{}, fmt.Errorf("%w: at most %d lines per batch", ErrInvalidInput, s.opts.BatchMaxLines)
	}

	day, err := parseRequiredDate("date", req.Date)
	if err != nil {
		return ConvertBatchResponse{}, err
	}
	jurisdiction := normalizeJurisdiction(req.Jurisdiction, s.opts.DefaultJurisdiction)

	rules, err := s.rules.Snapshot(ctx, jurisdiction)
	if err != nil {
		return ConvertBatchResponse{}, err
	}

	res := ConvertBatchResponse{
		Date:         day.Format(payroll.DateLayout),
		Jurisdiction: jurisdiction,
		Lines:        make([]ConvertResponse, 0, len(req.Lines)),
	}
	totalGross, totalNet := decimal.Zero, decimal.Zero

	for i, line := range req.Lines {
		out, result, err := convertLine(rules, day, jurisdiction, line.Amount, line.Direction, line.TaxStatus)
		if err != nil {
			return ConvertBatchResponse{}, &LineError{Line: i + 1, Err: err}
		}
		res.Lines = append(res.Lines, out)

		// line values are already rounded, so the totals are exact
		totalGross = totalGross.Add(result.Gross)
		totalNet = totalNet.Add(result.Net)
	}

	res.TotalGross = totalGross.StringFixed(payroll.CurrencyPlaces)
	res.TotalNet = totalNet.StringFixed(payroll.CurrencyPlaces)
	res.TotalWithheld = totalGross.Sub(totalNet).StringFixed(payroll.CurrencyPlaces)
	return res, nil
}

func (s *payrollService) CreateCalculation(ctx context.Context, req CreateCalculationRequest, userID string) (CalculationResponse, error) {
	day, err := parseRequiredDate("period_date", req.PeriodDate)
	if err != nil {
		return CalculationResponse{}, err
	}

	direction := payroll.Direction(req.Direction)
	if !direction.Valid() {
		return CalculationResponse{}, fmt.Errorf("%w: %q", payroll.ErrInvalidDirection, req.Direction)
	}

	var employee *model.Employee
	if req.EmployeeID != "" {
		if employee, err = s.findEmployee(ctx, req.EmployeeID); err != nil {
			return CalculationResponse{}, err
		}
	}

	status := payroll.TaxStatus(req.TaxStatus)
	if status == "" && employee != nil {
		status = payroll.TaxStatus(employee.TaxStatus)
	}
	if !status.Valid() {
		return CalculationResponse{}, fmt.Errorf("%w: %q", payroll.ErrInvalidTaxStatus, status)
	}

	var amount decimal.Decimal
	switch {
	case req.Amount != nil:
		amount = *req.Amount
	case employee != nil && direction == payroll.DirectionGrossToNet:
		amount = employee.BaseSalary
	default:
		return CalculationResponse{}, fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}

	jurisdiction := normalizeJurisdiction(req.Jurisdiction, s.opts.DefaultJurisdiction)
	rules, err := s.rules.Snapshot(ctx, jurisdiction)
	if err != nil {
		return CalculationResponse{}, err
	}

	version, rate, err := rules.ResolveRate(day, status)
	if err != nil {
		return CalculationResponse{}, err
	}
	result, err := payroll.Convert(amount, direction, rate)
	if err != nil {
		return CalculationResponse{}, err
	}
	// gross is the largest derived figure in either direction
	if err := checkStoredAmount("amount", amount); err != nil {
		return CalculationResponse{}, err
	}
	if err := checkStoredAmount("gross", result.Gross); err != nil {
		return CalculationResponse{}, err
	}

	ruleVersionID, err := uuid.Parse(version.ID)
	if err != nil {
		return CalculationResponse{}, fmt.Errorf("rule version id %q: %w", version.ID, err)
	}

	calc := model.PayrollCalculation{
		RuleVersionID: ruleVersionID,
		Direction:     string(direction),
		TaxStatus:     string(status),
		PeriodDate:    day,
		InputAmount:   amount,
		Gross:         result.Gross,
		Net:           result.Net,
		Withheld:      result.Withheld,
		RateApplied:   result.RateApplied,
	}
	if employee != nil {
		calc.EmployeeID = &employee.ID
		calc.Employee = employee
	}
	if parsed, err := uuid.Parse(userID); err == nil {
		calc.CreatedBy = &parsed
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.rules.PinVersion(txCtx, jurisdiction, version); err != nil {
			return err
		}

		number, err := s.numbering.Next(txCtx, model.SequencePayrollCalculation)
		if err != nil {
			return err
		}
		calc.Number = number

		// the association is only for the response
		emp := calc.Employee
		calc.Employee = nil
		err = s.calcRepo.Create(txCtx, &calc)
		calc.Employee = emp
		if err != nil {
			return fmt.Errorf("failed to save payroll calculation: %w", err)
		}

		return s.audit.Record(txCtx, AuditEntry{
			UserID:    userID,
			Action:    model.ActionCreatePayrollCalculation,
			Entity:    model.EntityPayrollCalculation,
			EntityID:  calc.ID.String(),
			NewValues: toCalculationResponse(calc),
		})
	})
	if err != nil {
		return CalculationResponse{}, err
	}

	s.log.InfoContext(ctx, "payroll calculation created",
		slog.String("number", calc.Number),
		slog.String("rule_version_id", version.ID),
		slog.String("direction", calc.Direction),
	)

	return toCalculationResponse(calc), nil
}

func (s *payrollService) ListCalculations(ctx context.Context, q CalculationQuery, page, limit int) ([]CalculationResponse, int64, error) {
	filter, err := parseCalculationQuery(q)
	if err != nil {
		return nil, 0, err
	}

	calcs, total, err := s.calcRepo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payroll calculations: %w", err)
	}

	res := make([]CalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		res = append(res, toCalculationResponse(c))
	}
	return res, total, nil
}

func (s *payrollService) GetCalculation(ctx context.Context, id string) (CalculationResponse, error) {
	calcID, err := uuid.Parse(id)
	if err != nil {
		return CalculationResponse{}, fmt.Errorf("%w: invalid calculation id", ErrInvalidInput)
	}

	calc, err := s.calcRepo.FindByID(ctx, calcID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CalculationResponse{}, fmt.Errorf("%w: payroll calculation %s", ErrNotFound, id)
		}
		return CalculationResponse{}, fmt.Errorf("failed to fetch payroll calculation: %w", err)
	}
	return toCalculationResponse(*calc), nil
}

// --- Helpers ---

func (s *payrollService) findEmployee(ctx context.Context, id string) (*model.Employee, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid employee id", ErrInvalidInput)
	}

	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employee %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return employee, nil
}

func convertLine(rules payroll.RuleSet, day time.Time, jurisdiction string, amount *decimal.Decimal, direction, taxStatus string) (ConvertResponse, payroll.Result, error) {
	if amount == nil {
		return ConvertResponse{}, payroll.Result{}, fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}

	dir := payroll.Direction(direction)
	if !dir.Valid() {
		return ConvertResponse{}, payroll.Result{}, fmt.Errorf("%w: %q", payroll.ErrInvalidDirection, direction)
	}

	version, rate, err := rules.ResolveRate(day, payroll.TaxStatus(taxStatus))
	if err != nil {
		return ConvertResponse{}, payroll.Result{}, err
	}

	result, err := payroll.Convert(*amount, dir, rate)
	if err != nil {
		return ConvertResponse{}, payroll.Result{}, err
	}

	return ConvertResponse{
		Result:        result.Value(dir).StringFixed(payroll.CurrencyPlaces),
		RateApplied:   result.RateApplied.String(),
		Gross:         result.Gross.StringFixed(payroll.CurrencyPlaces),
		Net:           result.Net.StringFixed(payroll.CurrencyPlaces),
		Withheld:      result.Withheld.StringFixed(payroll.CurrencyPlaces),
		Direction:     string(dir),
		TaxStatus:     taxStatus,
		RuleVersionID: version.ID,
		EffectiveFrom: version.EffectiveFrom.Format(payroll.DateLayout),
		Jurisdiction:  jurisdiction,
	}, result, nil
}

func checkStoredAmount(field string, v decimal.Decimal) error {
	if v.Round(payroll.CurrencyPlaces).Abs().GreaterThanOrEqual(maxStoredAmount) {
		return fmt.Errorf("%w: %s must be less than %s", ErrInvalidInput, field, maxStoredAmount.String())
	}
	return nil
}

func parseRequiredDate(field, value string) (time.Time, error) {
	day, err := payroll.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidInput, field)
	}
	return day, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := parseRequiredDate(field, value)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func parseCalculationQuery(q CalculationQuery) (repository.CalculationFilter, error) {
	var filter repository.CalculationFilter

	if q.EmployeeID != "" {
		id, err := uuid.Parse(q.EmployeeID)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid employee_id", ErrInvalidInput)
		}
		filter.EmployeeID = &id
	}

	var err error
	if filter.From, err = parseOptionalDate("from", q.From); err != nil {
		return filter, err
	}
	if filter.To, err = parseOptionalDate("to", q.To); err != nil {
		return filter, err
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}
	return filter, nil
}

func toCalculationResponse(c model.PayrollCalculation) CalculationResponse {
	res := CalculationResponse{
		ID:            c.ID.String(),
		Number:        c.Number,
		RuleVersionID: c.RuleVersionID.String(),
		Direction:     c.Direction,
		TaxStatus:     c.TaxStatus,
		PeriodDate:    c.PeriodDate.Format(payroll.DateLayout),
		InputAmount:   c.InputAmount.StringFixed(payroll.CurrencyPlaces),
		Gross:         c.Gross.StringFixed(payroll.CurrencyPlaces),
		Net:           c.Net.StringFixed(payroll.CurrencyPlaces),
		Withheld:      c.Withheld.StringFixed(payroll.CurrencyPlaces),
		RateApplied:   c.RateApplied.StringFixed(rateScale),
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
	if c.EmployeeID != nil {
		res.EmployeeID = c.EmployeeID.String()
	}
	if c.Employee != nil {
		res.EmployeeName = c.Employee.FullName
		res.PersonnelNumber = c.Employee.PersonnelNumber
	}
	if c.CreatedBy != nil {
		res.CreatedBy = c.CreatedBy.String()
	}
	return res
}
