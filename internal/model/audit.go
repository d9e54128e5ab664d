package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreatePayrollRule        = "CREATE_PAYROLL_RULE"
	ActionUpdatePayrollRule        = "UPDATE_PAYROLL_RULE"
	ActionDeletePayrollRule        = "DELETE_PAYROLL_RULE"
	ActionCreatePayrollCalculation = "CREATE_PAYROLL_CALCULATION"
	ActionExportPayroll            = "EXPORT_PAYROLL"
	ActionCreateEmployee           = "CREATE_EMPLOYEE"
	ActionUpdateEmployee           = "UPDATE_EMPLOYEE"
	ActionUpdateRolePermissions    = "UPDATE_ROLE_PERMISSIONS"
)

// Audited entity names
const (
	EntityPayrollRule        = "payroll_rule_version"
	EntityPayrollCalculation = "payroll_calculation"
	EntityEmployee           = "employee"
	EntityRole               = "role"
)

// AuditLog tracks Who changed What, with the values before and after
type AuditLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // nil for system actions
	User      *User      `gorm:"foreignKey:UserID" json:"user"`
	Action    string     `gorm:"type:varchar(50);not null;index" json:"action"`
	Entity    string     `gorm:"type:varchar(50);not null;index" json:"entity"`
	EntityID  string     `gorm:"type:varchar(50);index" json:"entity_id"`
	OldValues *string    `gorm:"type:jsonb" json:"old_values"`
	NewValues *string    `gorm:"type:jsonb" json:"new_values"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}
