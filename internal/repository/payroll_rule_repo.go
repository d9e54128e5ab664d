package repository

import (
	"context"
	"time"

	"personnel/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=payroll_rule_repo.go -destination=../mocks/payroll_rule_repo.go -package=mocks

type PayrollRuleRepository interface {
	Create(ctx context.Context, rule *model.PayrollRuleVersion) error
	Update(ctx context.Context, rule *model.PayrollRuleVersion) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PayrollRuleVersion, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.PayrollRuleVersion, error)
	FindByIDForShare(ctx context.Context, id uuid.UUID) (*model.PayrollRuleVersion, error)
	List(ctx context.Context, jurisdiction string, page, limit int) ([]model.PayrollRuleVersion, int64, error)
	ListByJurisdiction(ctx context.Context, jurisdiction string) ([]model.PayrollRuleVersion, error)
	ExistsAt(ctx context.Context, jurisdiction string, effectiveFrom time.Time, excludeID *uuid.UUID) (bool, error)
	CountCalculations(ctx context.Context, id uuid.UUID) (int64, error)
}

type payrollRuleRepository struct {
	db *gorm.DB
}

func NewPayrollRuleRepository(db *gorm.DB) PayrollRuleRepository {
	return &payrollRuleRepository{db: db}
}

func (r *payrollRuleRepository) Create(ctx context.Context, rule *model.PayrollRuleVersion) error {
	return GetDB(ctx, r.db).Create(rule).Error
}

func (r *payrollRuleRepository) Update(ctx context.Context, rule *model.PayrollRuleVersion) error {
	return GetDB(ctx, r.db).Save(rule).Error
}

func (r *payrollRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.PayrollRuleVersion{}).Error
}

func (r *payrollRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PayrollRuleVersion, error) {
	var rule model.PayrollRuleVersion
	if err := GetDB(ctx, r.db).First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *payrollRuleRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.PayrollRuleVersion, error) {
	return r.findLocked(ctx, id, "UPDATE")
}

// FindByIDForShare blocks writers of the row until the surrounding transaction ends.
func (r *payrollRuleRepository) FindByIDForShare(ctx context.Context, id uuid.UUID) (*model.PayrollRuleVersion, error) {
	return r.findLocked(ctx, id, "SHARE")
}

func (r *payrollRuleRepository) findLocked(ctx context.Context, id uuid.UUID, strength string) (*model.PayrollRuleVersion, error) {
	var rule model.PayrollRuleVersion
	if err := GetDB(ctx, r.db).
		Clauses(clause.Locking{Strength: strength}).
		First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *payrollRuleRepository) List(ctx context.Context, jurisdiction string, page, limit int) ([]model.PayrollRuleVersion, int64, error) {
	var rules []model.PayrollRuleVersion
	var total int64

	query := GetDB(ctx, r.db).Model(&model.PayrollRuleVersion{})
	if jurisdiction != "" {
		query = query.Where("jurisdiction = ?", jurisdiction)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("effective_from desc").Offset(offset).Limit(limit).Find(&rules).Error; err != nil {
		return nil, 0, err
	}

	return rules, total, nil
}

// ListByJurisdiction returns every version of a jurisdiction, oldest first.
func (r *payrollRuleRepository) ListByJurisdiction(ctx context.Context, jurisdiction string) ([]model.PayrollRuleVersion, error) {
	var rules []model.PayrollRuleVersion
	if err := GetDB(ctx, r.db).
		Where("jurisdiction = ?", jurisdiction).
		Order("effective_from asc").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *payrollRuleRepository) ExistsAt(ctx context.Context, jurisdiction string, effectiveFrom time.Time, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := GetDB(ctx, r.db).Model(&model.PayrollRuleVersion{}).
		Where("jurisdiction = ? AND effective_from = ?", jurisdiction, effectiveFrom)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountCalculations reports how many payroll calculations reference the version.
func (r *payrollRuleRepository) CountCalculations(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.PayrollCalculation{}).
		Where("rule_version_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
