package model

import "time"

// Numbered entities
const (
	SequencePayrollCalculation = "payroll_calculation"
	SequenceEmployee           = "employee"
)

// NumberSequence issues monotonic, formatted identifiers per entity.
type NumberSequence struct {
	Entity    string    `gorm:"type:varchar(50);primaryKey" json:"entity"`
	Prefix    string    `gorm:"type:varchar(20);not null" json:"prefix"`
	Padding   int       `gorm:"not null;default:6" json:"padding"`
	LastValue int64     `gorm:"not null;default:0" json:"last_value"`
	UpdatedAt time.Time `json:"updated_at"`
}
