package repository

import (
	"context"

	"personnel/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=numbering_repo.go -destination=../mocks/numbering_repo.go -package=mocks

type NumberSequenceRepository interface {
	// Increment locks the sequence row, bumps LastValue and returns the updated row.
	// It must run inside a transaction; gorm.ErrRecordNotFound if the sequence does not exist.
	Increment(ctx context.Context, entity string) (*model.NumberSequence, error)
	EnsureExists(ctx context.Context, seq *model.NumberSequence) error
}

type numberSequenceRepository struct {
	db *gorm.DB
}

func NewNumberSequenceRepository(db *gorm.DB) NumberSequenceRepository {
	return &numberSequenceRepository{db: db}
}

func (r *numberSequenceRepository) Increment(ctx context.Context, entity string) (*model.NumberSequence, error) {
	db := GetDB(ctx, r.db)

	var seq model.NumberSequence
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&seq, "entity = ?", entity).Error; err != nil {
		return nil, err
	}

	seq.LastValue++
	if err := db.Model(&seq).Update("last_value", seq.LastValue).Error; err != nil {
		return nil, err
	}

	return &seq, nil
}

// EnsureExists inserts seq unless a sequence for the entity is already present.
func (r *numberSequenceRepository) EnsureExists(ctx context.Context, seq *model.NumberSequence) error {
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(seq).Error
}
