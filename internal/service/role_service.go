package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"personnel/internal/model"
	"personnel/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=role_service.go -destination=../mocks/role_service.go -package=mocks

// --- DTOs ---

type UpdateRolePermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids" binding:"required"`
}

type RoleResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	IsSystem    bool                 `json:"is_system"`
	Permissions []PermissionResponse `json:"permissions"`
	CreatedAt   string               `json:"created_at"`
}

type PermissionResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

// --- Interface ---

type RoleService interface {
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
	UpdateRolePermissions(ctx context.Context, roleID string, req UpdateRolePermissionsRequest, userID string) (RoleResponse, error)
	GetPermissionsByRoleName(ctx context.Context, roleName string) ([]string, error)
	SeedDefaultRolesAndPermissions(ctx context.Context) error
}

type roleService struct {
	repo      repository.RoleRepository
	audit     AuditService
	txManager repository.TransactionManager
}

func NewRoleService(repo repository.RoleRepository, audit AuditService, txManager repository.TransactionManager) RoleService {
	return &roleService{repo: repo, audit: audit, txManager: txManager}
}

var defaultPermissions = []model.Permission{
	{Code: model.PermPayrollCalculate, Name: "Run payroll conversions", Group: "payroll"},
	{Code: model.PermPayrollRead, Name: "View and export payroll calculations", Group: "payroll"},
	{Code: model.PermPayrollWrite, Name: "Record payroll calculations", Group: "payroll"},
	{Code: model.PermPayrollRulesRead, Name: "View withholding rule versions", Group: "payroll_rules"},
	{Code: model.PermPayrollRulesWrite, Name: "Manage withholding rule versions", Group: "payroll_rules"},
	{Code: model.PermEmployeesRead, Name: "View employees", Group: "employees"},
	{Code: model.PermEmployeesWrite, Name: "Manage employees", Group: "employees"},
	{Code: model.PermAuditRead, Name: "View audit log", Group: "audit"},
	{Code: model.PermRolesManage, Name: "Manage roles and users", Group: "roles"},
}

var defaultRoles = []struct {
	Name        string
	Description string
	PermCodes   []string
}{
	{
		Name:        model.RoleAdmin,
		Description: "Full access",
		PermCodes: []string{
			model.PermPayrollCalculate, model.PermPayrollRead, model.PermPayrollWrite,
			model.PermPayrollRulesRead, model.PermPayrollRulesWrite,
			model.PermEmployeesRead, model.PermEmployeesWrite,
			model.PermAuditRead, model.PermRolesManage,
		},
	},
	{
		Name:        model.RoleHR,
		Description: "Personnel records and payroll runs",
		PermCodes: []string{
			model.PermPayrollCalculate, model.PermPayrollRead, model.PermPayrollWrite,
			model.PermPayrollRulesRead,
			model.PermEmployeesRead, model.PermEmployeesWrite,
		},
	},
	{
		Name:        model.RoleAccountant,
		Description: "Withholding rules and payroll reporting",
		PermCodes: []string{
			model.PermPayrollCalculate, model.PermPayrollRead, model.PermPayrollWrite,
			model.PermPayrollRulesRead, model.PermPayrollRulesWrite,
			model.PermEmployeesRead, model.PermAuditRead,
		},
	},
	{
		Name:        model.RoleViewer,
		Description: "Read-only conversions",
		PermCodes: []string{
			model.PermPayrollCalculate, model.PermPayrollRulesRead,
		},
	},
}

// --- Implementation ---

func (s *roleService) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}

	res := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		res = append(res, toRoleResponse(r))
	}
	return res, nil
}

func (s *roleService) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch permissions: %w", err)
	}

	res := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		res = append(res, toPermissionResponse(p))
	}
	return res, nil
}

func (s *roleService) UpdateRolePermissions(ctx context.Context, roleID string, req UpdateRolePermissionsRequest, userID string) (RoleResponse, error) {
	id, err := uuid.Parse(roleID)
	if err != nil {
		return RoleResponse{}, fmt.Errorf("%w: invalid role id", ErrInvalidInput)
	}

	permIDs := make([]uuid.UUID, 0, len(req.PermissionIDs))
	for _, pid := range req.PermissionIDs {
		parsed, err := uuid.Parse(pid)
		if err != nil {
			return RoleResponse{}, fmt.Errorf("%w: invalid permission id %q", ErrInvalidInput, pid)
		}
		permIDs = append(permIDs, parsed)
	}

	var updated *model.Role
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.repo.FindByIDWithPermissions(txCtx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: role %s", ErrNotFound, roleID)
			}
			return fmt.Errorf("failed to fetch role: %w", err)
		}

		if err := s.repo.ReplacePermissions(txCtx, id, permIDs); err != nil {
			return fmt.Errorf("failed to update permissions: %w", err)
		}

		if updated, err = s.repo.FindByIDWithPermissions(txCtx, id); err != nil {
			return fmt.Errorf("failed to reload role: %w", err)
		}

		return s.audit.Record(txCtx, AuditEntry{
			UserID:    userID,
			Action:    model.ActionUpdateRolePermissions,
			Entity:    model.EntityRole,
			EntityID:  id.String(),
			OldValues: permissionCodes(before.Permissions),
			NewValues: permissionCodes(updated.Permissions),
		})
	})
	if err != nil {
		return RoleResponse{}, err
	}

	return toRoleResponse(*updated), nil
}

func (s *roleService) GetPermissionsByRoleName(ctx context.Context, roleName string) ([]string, error) {
	codes, err := s.repo.GetPermissionsByRoleName(ctx, roleName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch permissions of role %q: %w", roleName, err)
	}
	return codes, nil
}

// SeedDefaultRolesAndPermissions upserts permission codes and creates missing system roles.
// Existing roles keep whatever permissions an administrator gave them.
func (s *roleService) SeedDefaultRolesAndPermissions(ctx context.Context) error {
	permByCode := make(map[string]uuid.UUID, len(defaultPermissions))
	for i := range defaultPermissions {
		p := defaultPermissions[i]
		if err := s.repo.FindOrCreatePermission(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed permission %q: %w", p.Code, err)
		}
		permByCode[p.Code] = p.ID
	}

	for _, def := range defaultRoles {
		_, err := s.repo.FindByName(ctx, def.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to fetch role %q: %w", def.Name, err)
		}

		role := model.Role{Name: def.Name, Description: def.Description, IsSystem: true}
		if err := s.repo.Create(ctx, &role); err != nil {
			return fmt.Errorf("failed to seed role %q: %w", def.Name, err)
		}

		ids := make([]uuid.UUID, 0, len(def.PermCodes))
		for _, code := range def.PermCodes {
			ids = append(ids, permByCode[code])
		}
		if err := s.repo.ReplacePermissions(ctx, role.ID, ids); err != nil {
			return fmt.Errorf("failed to assign permissions to role %q: %w", def.Name, err)
		}
	}

	return nil
}

// --- Helpers ---

func permissionCodes(perms []model.Permission) []string {
	codes := make([]string, 0, len(perms))
	for _, p := range perms {
		codes = append(codes, p.Code)
	}
	return codes
}

func toRoleResponse(r model.Role) RoleResponse {
	perms := make([]PermissionResponse, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, toPermissionResponse(p))
	}

	return RoleResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
		IsSystem:    r.IsSystem,
		Permissions: perms,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func toPermissionResponse(p model.Permission) PermissionResponse {
	return PermissionResponse{
		ID:    p.ID.String(),
		Code:  p.Code,
		Name:  p.Name,
		Group: p.Group,
	}
}
