package model

import (
	"time"

	"github.com/google/uuid"
)

// System roles
const (
	RoleAdmin      = "admin"
	RoleHR         = "hr"
	RoleAccountant = "accountant"
	RoleViewer     = "viewer"
)

// Role groups permission codes; a user carries exactly one role
type Role struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	IsSystem    bool         `gorm:"default:false" json:"is_system"` // seeded roles cannot be deleted
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Permission is a single grantable capability, e.g. "payroll.calculate"
type Permission struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"code"`
	Name  string    `gorm:"type:varchar(255);not null" json:"name"`
	Group string    `gorm:"type:varchar(50);not null;index" json:"group"`
}

// Permission codes checked by the HTTP layer
const (
	PermPayrollCalculate  = "payroll.calculate"
	PermPayrollRead       = "payroll.read"
	PermPayrollWrite      = "payroll.write"
	PermPayrollRulesRead  = "payroll_rules.read"
	PermPayrollRulesWrite = "payroll_rules.write"
	PermEmployeesRead     = "employees.read"
	PermEmployeesWrite    = "employees.write"
	PermAuditRead         = "audit.read"
	PermRolesManage       = "roles.manage"
)
