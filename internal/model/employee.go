package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is a personnel record. TaxStatus is the default for payroll calculations.
type Employee struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PersonnelNumber string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"personnel_number"`
	FullName        string          `gorm:"type:varchar(255);not null" json:"full_name"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Position        string          `gorm:"type:varchar(255)" json:"position"`
	TaxStatus       string          `gorm:"type:varchar(20);not null;default:'RESIDENT'" json:"tax_status"`
	BaseSalary      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"base_salary"` // monthly gross
	HiredAt         time.Time       `gorm:"type:date;not null" json:"hired_at"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}
