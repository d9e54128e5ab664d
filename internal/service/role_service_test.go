package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"personnel/internal/mocks"
	"personnel/internal/model"
	"personnel/internal/service"
)

func TestRoleService_SeedCreatesOnlyMissingRoles(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRoleRepository(ctrl)
	svc := service.NewRoleService(repo, mocks.NewMockAuditService(ctrl), passthroughTx(ctrl))

	permIDs := map[string]uuid.UUID{}
	repo.EXPECT().
		FindOrCreatePermission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *model.Permission) error {
			p.ID = uuid.New()
			permIDs[p.Code] = p.ID
			return nil
		}).
		Times(9)

	// admin already exists and keeps its permissions
	repo.EXPECT().FindByName(gomock.Any(), model.RoleAdmin).Return(&model.Role{Name: model.RoleAdmin}, nil)
	for _, name := range []string{model.RoleHR, model.RoleAccountant, model.RoleViewer} {
		repo.EXPECT().FindByName(gomock.Any(), name).Return(nil, gorm.ErrRecordNotFound)
	}

	created := map[string]uuid.UUID{}
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *model.Role) error {
			assert.True(t, r.IsSystem)
			r.ID = uuid.New()
			created[r.Name] = r.ID
			return nil
		}).
		Times(3)

	assigned := map[uuid.UUID][]uuid.UUID{}
	repo.EXPECT().
		ReplacePermissions(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, roleID uuid.UUID, ids []uuid.UUID) error {
			assigned[roleID] = ids
			return nil
		}).
		Times(3)

	require.NoError(t, svc.SeedDefaultRolesAndPermissions(context.Background()))

	assert.NotContains(t, created, model.RoleAdmin)
	assert.ElementsMatch(t,
		[]uuid.UUID{permIDs[model.PermPayrollCalculate], permIDs[model.PermPayrollRulesRead]},
		assigned[created[model.RoleViewer]],
	)
	assert.Contains(t, assigned[created[model.RoleAccountant]], permIDs[model.PermPayrollRulesWrite])
	assert.NotContains(t, assigned[created[model.RoleHR]], permIDs[model.PermPayrollRulesWrite])
}

func TestRoleService_UpdateRolePermissions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRoleRepository(ctrl)
	audit := mocks.NewMockAuditService(ctrl)
	svc := service.NewRoleService(repo, audit, passthroughTx(ctrl))

	roleID := uuid.New()
	permID := uuid.New()

	gomock.InOrder(
		repo.EXPECT().FindByIDWithPermissions(gomock.Any(), roleID).Return(&model.Role{
			ID: roleID, Name: model.RoleViewer,
			Permissions: []model.Permission{{Code: model.PermPayrollCalculate}},
		}, nil),
		repo.EXPECT().ReplacePermissions(gomock.Any(), roleID, []uuid.UUID{permID}).Return(nil),
		repo.EXPECT().FindByIDWithPermissions(gomock.Any(), roleID).Return(&model.Role{
			ID: roleID, Name: model.RoleViewer,
			Permissions: []model.Permission{{ID: permID, Code: model.PermPayrollRead}},
		}, nil),
	)
	audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry service.AuditEntry) error {
			assert.Equal(t, []string{model.PermPayrollCalculate}, entry.OldValues)
			assert.Equal(t, []string{model.PermPayrollRead}, entry.NewValues)
			return nil
		})

	got, err := svc.UpdateRolePermissions(context.Background(), roleID.String(), service.UpdateRolePermissionsRequest{
		PermissionIDs: []string{permID.String()},
	}, "")
	require.NoError(t, err)
	require.Len(t, got.Permissions, 1)
	assert.Equal(t, model.PermPayrollRead, got.Permissions[0].Code)

	_, err = svc.UpdateRolePermissions(context.Background(), roleID.String(), service.UpdateRolePermissionsRequest{
		PermissionIDs: []string{"nope"},
	}, "")
	require.ErrorIs(t, err, service.ErrInvalidInput)
}
