package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"personnel/internal/clients"
	"personnel/internal/model"
	"personnel/internal/payroll"
	"personnel/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=payroll_rule_service.go -destination=../mocks/payroll_rule_service.go -package=mocks

// EventPayrollRulesChanged is pushed to websocket clients after any rule mutation.
const EventPayrollRulesChanged = "payroll_rules.changed"

// --- DTOs ---

type PayrollRuleRequest struct {
	Jurisdiction    string `json:"jurisdiction"`                         // defaults to the configured jurisdiction
	EffectiveFrom   string `json:"effective_from" binding:"required"`    // YYYY-MM-DD
	ResidentRate    string `json:"resident_rate" binding:"required"`     // Decimal string, e.g. "0.13"
	NonResidentRate string `json:"non_resident_rate" binding:"required"` // Decimal string, e.g. "0.30"
	Description     string `json:"description"`
}

type PayrollRuleResponse struct {
	ID              string `json:"id"`
	Jurisdiction    string `json:"jurisdiction"`
	EffectiveFrom   string `json:"effective_from"`
	ResidentRate    string `json:"resident_rate"`
	NonResidentRate string `json:"non_resident_rate"`
	Description     string `json:"description"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type ActiveRuleResponse struct {
	RuleVersionID   string `json:"rule_version_id"`
	Jurisdiction    string `json:"jurisdiction"`
	Date            string `json:"date"`
	EffectiveFrom   string `json:"effective_from"`
	ResidentRate    string `json:"resident_rate"`
	NonResidentRate string `json:"non_resident_rate"`
}

// RuleChangeEvent is the payload of EventPayrollRulesChanged.
type RuleChangeEvent struct {
	Action        string `json:"action"`
	RuleVersionID string `json:"rule_version_id"`
	Jurisdiction  string `json:"jurisdiction"`
	EffectiveFrom string `json:"effective_from"`
}

// Notifier fans events out to connected clients.
type Notifier interface {
	Publish(event string, payload any)
}

// RuleSnapshotter loads the rule versions of a jurisdiction as one immutable snapshot.
type RuleSnapshotter interface {
	Snapshot(ctx context.Context, jurisdiction string) (payroll.RuleSet, error)
	// PinVersion share-locks the stored row of a resolved version for the rest of the
	// caller's transaction and fails with ErrRuleVersionChanged when it no longer matches.
	PinVersion(ctx context.Context, jurisdiction string, expected payroll.RuleVersion) error
}

// maxJurisdictionLen matches the width of the jurisdiction column.
const maxJurisdictionLen = 10

// rateScale is the number of decimal places a stored rate keeps.
const rateScale = 4

// --- Interface ---

type PayrollRuleService interface {
	RuleSnapshotter
	ListRules(ctx context.Context, jurisdiction string, page, limit int) ([]PayrollRuleResponse, int64, error)
	GetRule(ctx context.Context, id string) (PayrollRuleResponse, error)
	CreateRule(ctx context.Context, req PayrollRuleRequest, userID string) (PayrollRuleResponse, error)
	UpdateRule(ctx context.Context, id string, req PayrollRuleRequest, userID string) (PayrollRuleResponse, error)
	DeleteRule(ctx context.Context, id string, userID string) error
	ActiveRule(ctx context.Context, jurisdiction, date string) (ActiveRuleResponse, error)
}

type payrollRuleService struct {
	repo                repository.PayrollRuleRepository
	txManager           repository.TransactionManager
	audit               AuditService
	cache               RuleCache
	notifier            Notifier
	log                 *slog.Logger
	defaultJurisdiction string
}

func NewPayrollRuleService(
	repo repository.PayrollRuleRepository,
	txManager repository.TransactionManager,
	audit AuditService,
	cache RuleCache,
	notifier Notifier,
	log *slog.Logger,
	defaultJurisdiction string,
) PayrollRuleService {
	if cache == nil {
		cache = NewNoopRuleCache()
	}
	if defaultJurisdiction == "" {
		defaultJurisdiction = model.DefaultJurisdiction
	}
	return &payrollRuleService{
		repo:                repo,
		txManager:           txManager,
		audit:               audit,
		cache:               cache,
		notifier:            notifier,
		log:                 log,
		defaultJurisdiction: defaultJurisdiction,
	}
}

// --- Implementation ---

func (s *payrollRuleService) ListRules(ctx context.Context, jurisdiction string, page, limit int) ([]PayrollRuleResponse, int64, error) {
	if jurisdiction != "" {
		jurisdiction = normalizeJurisdiction(jurisdiction, s.defaultJurisdiction)
	}

	rules, total, err := s.repo.List(ctx, jurisdiction, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payroll rules: %w", err)
	}

	res := make([]PayrollRuleResponse, 0, len(rules))
	for _, r := range rules {
		res = append(res, toPayrollRuleResponse(r))
	}
	return res, total, nil
}

func (s *payrollRuleService) GetRule(ctx context.Context, id string) (PayrollRuleResponse, error) {
	rule, err := s.findRule(ctx, id)
	if err != nil {
		return PayrollRuleResponse{}, err
	}
	return toPayrollRuleResponse(*rule), nil
}

func (s *payrollRuleService) CreateRule(ctx context.Context, req PayrollRuleRequest, userID string) (PayrollRuleResponse, error) {
	rule, err := s.parseRuleRequest(req)
	if err != nil {
		return PayrollRuleResponse{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkConflict(txCtx, rule.Jurisdiction, rule.EffectiveFrom, nil); err != nil {
			return err
		}

		if err := s.repo.Create(txCtx, &rule); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrRuleVersionConflict
			}
			return fmt.Errorf("failed to create payroll rule: %w", err)
		}

		return s.audit.Record(txCtx, AuditEntry{
			UserID:    userID,
			Action:    model.ActionCreatePayrollRule,
			Entity:    model.EntityPayrollRule,
			EntityID:  rule.ID.String(),
			NewValues: toPayrollRuleResponse(rule),
		})
	})
	if err != nil {
		return PayrollRuleResponse{}, err
	}

	s.afterMutation(ctx, model.ActionCreatePayrollRule, rule, rule.Jurisdiction)
	return toPayrollRuleResponse(rule), nil
}

func (s *payrollRuleService) UpdateRule(ctx context.Context, id string, req PayrollRuleRequest, userID string) (PayrollRuleResponse, error) {
	updated, err := s.parseRuleRequest(req)
	if err != nil {
		return PayrollRuleResponse{}, err
	}

	var rule *model.PayrollRuleVersion
	var oldJurisdiction string
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		rule, err = s.findRuleForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.checkUnused(txCtx, rule.ID); err != nil {
			return err
		}
		if err := s.checkConflict(txCtx, updated.Jurisdiction, updated.EffectiveFrom, &rule.ID); err != nil {
			return err
		}

		before := toPayrollRuleResponse(*rule)
		oldJurisdiction = rule.Jurisdiction

		rule.Jurisdiction = updated.Jurisdiction
		rule.EffectiveFrom = updated.EffectiveFrom
		rule.ResidentRate = updated.ResidentRate
		rule.NonResidentRate = updated.NonResidentRate
		rule.Description = updated.Description

		if err := s.repo.Update(txCtx, rule); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrRuleVersionConflict
			}
			return fmt.Errorf("failed to update payroll rule: %w", err)
		}

		return s.audit.Record(txCtx, AuditEntry{
			UserID:    userID,
			Action:    model.ActionUpdatePayrollRule,
			Entity:    model.EntityPayrollRule,
			EntityID:  rule.ID.String(),
			OldValues: before,
			NewValues: toPayrollRuleResponse(*rule),
		})
	})
	if err != nil {
		return PayrollRuleResponse{}, err
	}

	s.afterMutation(ctx, model.ActionUpdatePayrollRule, *rule, oldJurisdiction, rule.Jurisdiction)
	return toPayrollRuleResponse(*rule), nil
}

func (s *payrollRuleService) DeleteRule(ctx context.Context, id string, userID string) error {
	var rule *model.PayrollRuleVersion
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		rule, err = s.findRuleForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.checkUnused(txCtx, rule.ID); err != nil {
			return err
		}

		if err := s.repo.Delete(txCtx, rule.ID); err != nil {
			return fmt.Errorf("failed to delete payroll rule: %w", err)
		}

		return s.audit.Record(txCtx, AuditEntry{
			UserID:    userID,
			Action:    model.ActionDeletePayrollRule,
			Entity:    model.EntityPayrollRule,
			EntityID:  rule.ID.String(),
			OldValues: toPayrollRuleResponse(*rule),
		})
	})
	if err != nil {
		return err
	}

	s.afterMutation(ctx, model.ActionDeletePayrollRule, *rule, rule.Jurisdiction)
	return nil
}

// ActiveRule resolves the version in force on date (today when empty).
func (s *payrollRuleService) ActiveRule(ctx context.Context, jurisdiction, date string) (ActiveRuleResponse, error) {
	jurisdiction = normalizeJurisdiction(jurisdiction, s.defaultJurisdiction)

	day := payroll.Day(time.Now())
	if date != "" {
		var err error
		if day, err = payroll.ParseDate(date); err != nil {
			return ActiveRuleResponse{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	rules, err := s.Snapshot(ctx, jurisdiction)
	if err != nil {
		return ActiveRuleResponse{}, err
	}

	v, err := rules.Resolve(day)
	if err != nil {
		return ActiveRuleResponse{}, err
	}

	return ActiveRuleResponse{
		RuleVersionID:   v.ID,
		Jurisdiction:    jurisdiction,
		Date:            day.Format(payroll.DateLayout),
		EffectiveFrom:   v.EffectiveFrom.Format(payroll.DateLayout),
		ResidentRate:    v.ResidentRate.StringFixed(rateScale),
		NonResidentRate: v.NonResidentRate.StringFixed(rateScale),
	}, nil
}

// Snapshot returns every version of the jurisdiction. The cache is consulted first;
// a cache failure is logged and the database is used instead.
func (s *payrollRuleService) Snapshot(ctx context.Context, jurisdiction string) (payroll.RuleSet, error) {
	jurisdiction = normalizeJurisdiction(jurisdiction, s.defaultJurisdiction)

	// only a clean miss carries a generation worth filling
	fill := false
	versions, gen, err := s.cache.Get(ctx, jurisdiction)
	switch {
	case err == nil:
		if rules, err := payroll.NewRuleSet(versions); err == nil {
			return rules, nil
		}
		s.log.WarnContext(ctx, "discarding invalid cached payroll rules", slog.String("jurisdiction", jurisdiction))
		fill = true
	case errors.Is(err, clients.ErrCacheMiss):
		fill = true
	case !errors.Is(err, errCacheDisabled):
		s.log.WarnContext(ctx, "payroll rule cache read failed", slog.String("jurisdiction", jurisdiction), slog.Any("error", err))
	}

	rows, err := s.repo.ListByJurisdiction(ctx, jurisdiction)
	if err != nil {
		return payroll.RuleSet{}, fmt.Errorf("failed to load payroll rules: %w", err)
	}

	versions = make([]payroll.RuleVersion, 0, len(rows))
	for _, r := range rows {
		versions = append(versions, toRuleVersion(r))
	}

	rules, err := payroll.NewRuleSet(versions)
	if err != nil {
		return payroll.RuleSet{}, fmt.Errorf("payroll rules for %s: %w", jurisdiction, err)
	}

	if fill {
		if err := s.cache.Set(ctx, jurisdiction, gen, versions); err != nil {
			s.log.WarnContext(ctx, "payroll rule cache write failed", slog.String("jurisdiction", jurisdiction), slog.Any("error", err))
		}
	}

	return rules, nil
}

// PinVersion must run inside the transaction that records a calculation against the version.
// The share lock keeps UpdateRule and DeleteRule from touching the row until that transaction
// ends, and they refuse the row afterwards because it is referenced.
func (s *payrollRuleService) PinVersion(ctx context.Context, jurisdiction string, expected payroll.RuleVersion) error {
	jurisdiction = normalizeJurisdiction(jurisdiction, s.defaultJurisdiction)

	id, err := uuid.Parse(expected.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRuleVersionChanged, expected.ID)
	}

	row, err := s.repo.FindByIDForShare(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s was deleted", ErrRuleVersionChanged, expected.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to lock payroll rule: %w", err)
	}

	if row.Jurisdiction != jurisdiction ||
		!payroll.Day(row.EffectiveFrom).Equal(payroll.Day(expected.EffectiveFrom)) ||
		!row.ResidentRate.Equal(expected.ResidentRate) ||
		!row.NonResidentRate.Equal(expected.NonResidentRate) {
		return fmt.Errorf("%w: %s", ErrRuleVersionChanged, expected.ID)
	}
	return nil
}

// --- Helpers ---

func (s *payrollRuleService) findRule(ctx context.Context, id string) (*model.PayrollRuleVersion, error) {
	return s.lookupRule(ctx, id, s.repo.FindByID)
}

// findRuleForUpdate holds the row lock until the surrounding transaction ends.
func (s *payrollRuleService) findRuleForUpdate(ctx context.Context, id string) (*model.PayrollRuleVersion, error) {
	return s.lookupRule(ctx, id, s.repo.FindByIDForUpdate)
}

func (s *payrollRuleService) lookupRule(
	ctx context.Context,
	id string,
	find func(context.Context, uuid.UUID) (*model.PayrollRuleVersion, error),
) (*model.PayrollRuleVersion, error) {
	ruleID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payroll rule id", ErrInvalidInput)
	}

	rule, err := find(ctx, ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: payroll rule %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch payroll rule: %w", err)
	}
	return rule, nil
}

func (s *payrollRuleService) checkUnused(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountCalculations(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check rule usage: %w", err)
	}
	if count > 0 {
		return ErrRuleVersionInUse
	}
	return nil
}

func (s *payrollRuleService) checkConflict(ctx context.Context, jurisdiction string, from time.Time, excludeID *uuid.UUID) error {
	exists, err := s.repo.ExistsAt(ctx, jurisdiction, from, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check effective date: %w", err)
	}
	if exists {
		return ErrRuleVersionConflict
	}
	return nil
}

func (s *payrollRuleService) parseRuleRequest(req PayrollRuleRequest) (model.PayrollRuleVersion, error) {
	effectiveFrom, err := payroll.ParseDate(req.EffectiveFrom)
	if err != nil {
		return model.PayrollRuleVersion{}, fmt.Errorf("%w: effective_from must be YYYY-MM-DD", ErrInvalidInput)
	}

	resident, err := parseRate("resident_rate", req.ResidentRate)
	if err != nil {
		return model.PayrollRuleVersion{}, err
	}
	nonResident, err := parseRate("non_resident_rate", req.NonResidentRate)
	if err != nil {
		return model.PayrollRuleVersion{}, err
	}

	jurisdiction := normalizeJurisdiction(req.Jurisdiction, s.defaultJurisdiction)
	if utf8.RuneCountInString(jurisdiction) > maxJurisdictionLen {
		return model.PayrollRuleVersion{}, fmt.Errorf("%w: jurisdiction must be at most %d characters", ErrInvalidInput, maxJurisdictionLen)
	}

	return model.PayrollRuleVersion{
		Jurisdiction:    jurisdiction,
		EffectiveFrom:   effectiveFrom,
		ResidentRate:    resident,
		NonResidentRate: nonResident,
		Description:     strings.TrimSpace(req.Description),
	}, nil
}

// afterMutation drops cached snapshots and tells subscribers. Neither step fails the request.
func (s *payrollRuleService) afterMutation(ctx context.Context, action string, rule model.PayrollRuleVersion, jurisdictions ...string) {
	if err := s.cache.Invalidate(ctx, jurisdictions...); err != nil {
		s.log.WarnContext(ctx, "payroll rule cache invalidation failed", slog.Any("jurisdictions", jurisdictions), slog.Any("error", err))
	}

	if s.notifier != nil {
		s.notifier.Publish(EventPayrollRulesChanged, RuleChangeEvent{
			Action:        action,
			RuleVersionID: rule.ID.String(),
			Jurisdiction:  rule.Jurisdiction,
			EffectiveFrom: rule.EffectiveFrom.Format(payroll.DateLayout),
		})
	}

	s.log.InfoContext(ctx, "payroll rule changed",
		slog.String("action", action),
		slog.String("rule_version_id", rule.ID.String()),
		slog.String("jurisdiction", rule.Jurisdiction),
	)
}

func parseRate(field, value string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s is not a decimal", ErrInvalidInput, field)
	}
	// the column keeps rateScale places; anything finer would be rounded on insert
	if !rate.Equal(rate.Truncate(rateScale)) {
		return decimal.Zero, fmt.Errorf("%w: %s allows at most %d decimal places", ErrInvalidInput, field, rateScale)
	}
	if err := payroll.ValidateRate(rate); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, err)
	}
	return rate, nil
}

func normalizeJurisdiction(j, fallback string) string {
	j = strings.ToUpper(strings.TrimSpace(j))
	if j == "" {
		return fallback
	}
	return j
}

func toRuleVersion(r model.PayrollRuleVersion) payroll.RuleVersion {
	return payroll.RuleVersion{
		ID:              r.ID.String(),
		EffectiveFrom:   r.EffectiveFrom,
		ResidentRate:    r.ResidentRate,
		NonResidentRate: r.NonResidentRate,
	}
}

func toPayrollRuleResponse(r model.PayrollRuleVersion) PayrollRuleResponse {
	return PayrollRuleResponse{
		ID:              r.ID.String(),
		Jurisdiction:    r.Jurisdiction,
		EffectiveFrom:   r.EffectiveFrom.Format(payroll.DateLayout),
		ResidentRate:    r.ResidentRate.StringFixed(rateScale),
		NonResidentRate: r.NonResidentRate.StringFixed(rateScale),
		Description:     r.Description,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}
