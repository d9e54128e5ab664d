package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultJurisdiction is used when a request or rule does not name one.
const DefaultJurisdiction = "RU"

// PayrollRuleVersion stores withholding rates with temporal validity.
// A version is current from EffectiveFrom until the next version of the same jurisdiction.
type PayrollRuleVersion struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Jurisdiction    string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_rule_jurisdiction_from" json:"jurisdiction"`
	EffectiveFrom   time.Time       `gorm:"type:date;not null;uniqueIndex:idx_rule_jurisdiction_from" json:"effective_from"`
	ResidentRate    decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"resident_rate"`     // e.g. 0.13 = 13%
	NonResidentRate decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"non_resident_rate"` // e.g. 0.30 = 30%
	Description     string          `gorm:"type:text" json:"description"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
