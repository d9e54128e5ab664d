package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"personnel/internal/model"
	"personnel/internal/payroll"
	"personnel/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=employee_service.go -destination=../mocks/employee_service.go -package=mocks

type EmployeeRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Position   string `json:"position"`
	TaxStatus  string `json:"tax_status" binding:"omitempty,oneof=RESIDENT NON_RESIDENT"`
	BaseSalary string `json:"base_salary"` // monthly gross, decimal string
	HiredAt    string `json:"hired_at" binding:"required"`
}

type EmployeeResponse struct {
	ID              string `json:"id"`
	PersonnelNumber string `json:"personnel_number"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Position        string `json:"position"`
	TaxStatus       string `json:"tax_status"`
	BaseSalary      string `json:"base_salary"`
	HiredAt         string `json:"hired_at"`
	CreatedAt       string `json:"created_at"`
}

type EmployeeService interface {
	ListEmployees(ctx context.Context, search string, page, limit int) ([]EmployeeResponse, int64, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req EmployeeRequest, userID string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req EmployeeRequest, userID string) (EmployeeResponse, error)
}

type employeeService struct {
	repo      repository.EmployeeRepository
	numbering NumberingService
	audit     AuditService
	txManager repository.TransactionManager
}

func NewEmployeeService(repo repository.EmployeeRepository, numbering NumberingService, audit AuditService, txManager repository.TransactionManager) EmployeeService {
	return &employeeService{repo: repo, numbering: numbering, audit: audit, txManager: txManager}
}

func (s *employeeService) ListEmployees(ctx context.Context, search string, page, limit int) ([]EmployeeResponse, int64, error) {
	employees, total, err := s.repo.List(ctx, strings.TrimSpace(search), page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch employees: %w", err)
	}

	res := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		res = append(res, toEmployeeResponse(e))
	}
	return res, total, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id string) (EmployeeResponse, error) {
	employee, err := s.find(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return toEmployeeResponse(*employee), nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req EmployeeRequest, userID string) (EmployeeResponse, error) {
	employee, err := parseEmployeeRequest(req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkEmail(txCtx, employee.Email, uuid.Nil); err != nil {
			return err
		}

		number, err := s.numbering.Next(txCtx, model.SequenceEmployee)
		if err != nil {
			return err
		}
		employee.PersonnelNumber = number

		if err := s.repo.Create(txCtx, &employee); err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		return s.audit.Record(txCtx, AuditEntry{
			UserID:    userID,
			Action:    model.ActionCreateEmployee,
			Entity:    model.EntityEmployee,
			EntityID:  employee.ID.String(),
			NewValues: toEmployeeResponse(employee),
		})
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	return toEmployeeResponse(employee), nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id string, req EmployeeRequest, userID string) (EmployeeResponse, error) {
	updated, err := parseEmployeeRequest(req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	var employee *model.Employee
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if employee, err = s.find(txCtx, id); err != nil {
			return err
		}
		if err := s.checkEmail(txCtx, updated.Email, employee.ID); err != nil {
			return err
		}

		before := toEmployeeResponse(*employee)

		employee.FullName = updated.FullName
		employee.Email = updated.Email
		employee.Position = updated.Position
		employee.TaxStatus = updated.TaxStatus
		employee.BaseSalary = updated.BaseSalary
		employee.HiredAt = updated.HiredAt

		if err := s.repo.Update(txCtx, employee); err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}

		return s.audit.Record(txCtx, AuditEntry{
			UserID:    userID,
			Action:    model.ActionUpdateEmployee,
			Entity:    model.EntityEmployee,
			EntityID:  employee.ID.String(),
			OldValues: before,
			NewValues: toEmployeeResponse(*employee),
		})
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	return toEmployeeResponse(*employee), nil
}

func (s *employeeService) find(ctx context.Context, id string) (*model.Employee, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid employee id", ErrInvalidInput)
	}

	employee, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employee %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return employee, nil
}

// checkEmail fails when another employee than self already uses email.
func (s *employeeService) checkEmail(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing.ID != self {
		return ErrEmailTaken
	}
	return nil
}

func parseEmployeeRequest(req EmployeeRequest) (model.Employee, error) {
	hiredAt, err := parseRequiredDate("hired_at", req.HiredAt)
	if err != nil {
		return model.Employee{}, err
	}

	status := payroll.TaxStatusResident
	if req.TaxStatus != "" {
		status = payroll.TaxStatus(req.TaxStatus)
	}
	if !status.Valid() {
		return model.Employee{}, fmt.Errorf("%w: %q", payroll.ErrInvalidTaxStatus, req.TaxStatus)
	}

	salary := decimal.Zero
	if req.BaseSalary != "" {
		if salary, err = decimal.NewFromString(req.BaseSalary); err != nil {
			return model.Employee{}, fmt.Errorf("%w: base_salary is not a decimal", ErrInvalidInput)
		}
		if salary.IsNegative() {
			return model.Employee{}, fmt.Errorf("base_salary: %w", payroll.ErrInvalidAmount)
		}
		if err := checkStoredAmount("base_salary", salary); err != nil {
			return model.Employee{}, err
		}
	}

	return model.Employee{
		FullName:   strings.TrimSpace(req.FullName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Position:   strings.TrimSpace(req.Position),
		TaxStatus:  string(status),
		BaseSalary: salary.Round(payroll.CurrencyPlaces),
		HiredAt:    hiredAt,
	}, nil
}

func toEmployeeResponse(e model.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID.String(),
		PersonnelNumber: e.PersonnelNumber,
		FullName:        e.FullName,
		Email:           e.Email,
		Position:        e.Position,
		TaxStatus:       e.TaxStatus,
		BaseSalary:      e.BaseSalary.StringFixed(payroll.CurrencyPlaces),
		HiredAt:         e.HiredAt.Format(payroll.DateLayout),
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}
