package service

import (
	"context"
	"errors"
	"fmt"

	"personnel/internal/model"
	"personnel/internal/repository"

	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=numbering_service.go -destination=../mocks/numbering_service.go -package=mocks

// NumberingService issues monotonic, formatted identifiers keyed by entity name.
type NumberingService interface {
	Next(ctx context.Context, entity string) (string, error)
	EnsureDefaults(ctx context.Context) error
}

var defaultSequences = []model.NumberSequence{
	{Entity: model.SequencePayrollCalculation, Prefix: "PAY-", Padding: 6},
	{Entity: model.SequenceEmployee, Prefix: "EMP-", Padding: 5},
}

type numberingService struct {
	repo      repository.NumberSequenceRepository
	txManager repository.TransactionManager
}

func NewNumberingService(repo repository.NumberSequenceRepository, txManager repository.TransactionManager) NumberingService {
	return &numberingService{repo: repo, txManager: txManager}
}

// Next locks the sequence row for the rest of the surrounding transaction,
// so two callers can never be handed the same number.
func (s *numberingService) Next(ctx context.Context, entity string) (string, error) {
	var number string
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		seq, err := s.repo.Increment(txCtx, entity)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: number sequence %q", ErrNotFound, entity)
			}
			return fmt.Errorf("failed to increment sequence %q: %w", entity, err)
		}
		number = FormatNumber(seq.Prefix, seq.Padding, seq.LastValue)
		return nil
	})
	if err != nil {
		return "", err
	}
	return number, nil
}

func (s *numberingService) EnsureDefaults(ctx context.Context) error {
	for i := range defaultSequences {
		seq := defaultSequences[i]
		if err := s.repo.EnsureExists(ctx, &seq); err != nil {
			return fmt.Errorf("failed to seed sequence %q: %w", seq.Entity, err)
		}
	}
	return nil
}

// FormatNumber renders prefix followed by value zero-padded to padding digits.
func FormatNumber(prefix string, padding int, value int64) string {
	if padding < 1 {
		padding = 1
	}
	return fmt.Sprintf("%s%0*d", prefix, padding, value)
}
