package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollCalculation is an append-only record of one computed payroll line.
// Referencing a rule version freezes that version.
type PayrollCalculation struct {
	ID            uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Number        string              `gorm:"type:varchar(30);uniqueIndex;not null" json:"number"`
	EmployeeID    *uuid.UUID          `gorm:"type:uuid;index" json:"employee_id"`
	Employee      *Employee           `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	RuleVersionID uuid.UUID           `gorm:"type:uuid;not null;index" json:"rule_version_id"`
	RuleVersion   *PayrollRuleVersion `gorm:"foreignKey:RuleVersionID;constraint:OnDelete:RESTRICT" json:"rule_version,omitempty"`
	Direction     string              `gorm:"type:varchar(20);not null" json:"direction"`  // grossToNet, netToGross
	TaxStatus     string              `gorm:"type:varchar(20);not null" json:"tax_status"` // RESIDENT, NON_RESIDENT
	PeriodDate    time.Time           `gorm:"type:date;not null;index" json:"period_date"`
	InputAmount   decimal.Decimal     `gorm:"type:decimal(18,2);not null" json:"input_amount"`
	Gross         decimal.Decimal     `gorm:"type:decimal(18,2);not null" json:"gross"`
	Net           decimal.Decimal     `gorm:"type:decimal(18,2);not null" json:"net"`
	Withheld      decimal.Decimal     `gorm:"type:decimal(18,2);not null" json:"withheld"`
	RateApplied   decimal.Decimal     `gorm:"type:decimal(10,4);not null" json:"rate_applied"`
	CreatedBy     *uuid.UUID          `gorm:"type:uuid" json:"created_by"`
	CreatedAt     time.Time           `gorm:"index" json:"created_at"`
}
