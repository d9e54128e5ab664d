package repository

import (
	"context"
	"time"

	"personnel/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=payroll_calc_repo.go -destination=../mocks/payroll_calc_repo.go -package=mocks

// CalculationFilter narrows calculation listings; zero values mean "any".
type CalculationFilter struct {
	EmployeeID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

type PayrollCalculationRepository interface {
	Create(ctx context.Context, calc *model.PayrollCalculation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PayrollCalculation, error)
	List(ctx context.Context, filter CalculationFilter, page, limit int) ([]model.PayrollCalculation, int64, error)
	ListForExport(ctx context.Context, filter CalculationFilter, max int) ([]model.PayrollCalculation, error)
}

type payrollCalculationRepository struct {
	db *gorm.DB
}

func NewPayrollCalculationRepository(db *gorm.DB) PayrollCalculationRepository {
	return &payrollCalculationRepository{db: db}
}

func (r *payrollCalculationRepository) Create(ctx context.Context, calc *model.PayrollCalculation) error {
	return GetDB(ctx, r.db).Create(calc).Error
}

func (r *payrollCalculationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PayrollCalculation, error) {
	var calc model.PayrollCalculation
	if err := GetDB(ctx, r.db).Preload("Employee").First(&calc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &calc, nil
}

func (r *payrollCalculationRepository) List(ctx context.Context, filter CalculationFilter, page, limit int) ([]model.PayrollCalculation, int64, error) {
	var calcs []model.PayrollCalculation
	var total int64

	query := applyCalculationFilter(GetDB(ctx, r.db).Model(&model.PayrollCalculation{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Employee").Order("created_at desc").Offset(offset).Limit(limit).Find(&calcs).Error; err != nil {
		return nil, 0, err
	}

	return calcs, total, nil
}

func (r *payrollCalculationRepository) ListForExport(ctx context.Context, filter CalculationFilter, max int) ([]model.PayrollCalculation, error) {
	var calcs []model.PayrollCalculation
	query := applyCalculationFilter(GetDB(ctx, r.db).Model(&model.PayrollCalculation{}), filter)
	if err := query.Preload("Employee").Order("period_date asc, number asc").Limit(max).Find(&calcs).Error; err != nil {
		return nil, err
	}
	return calcs, nil
}

func applyCalculationFilter(query *gorm.DB, filter CalculationFilter) *gorm.DB {
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.From != nil {
		query = query.Where("period_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("period_date <= ?", *filter.To)
	}
	return query
}
