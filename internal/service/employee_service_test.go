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
	"personnel/internal/payroll"
	"personnel/internal/service"
)

type employeeDeps struct {
	repo      *mocks.MockEmployeeRepository
	numbering *mocks.MockNumberingService
	audit     *mocks.MockAuditService
}

func newEmployeeService(t *testing.T) (service.EmployeeService, employeeDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := employeeDeps{
		repo:      mocks.NewMockEmployeeRepository(ctrl),
		numbering: mocks.NewMockNumberingService(ctrl),
		audit:     mocks.NewMockAuditService(ctrl),
	}
	return service.NewEmployeeService(deps.repo, deps.numbering, deps.audit, passthroughTx(ctrl)), deps
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	t.Parallel()

	svc, deps := newEmployeeService(t)

	deps.repo.EXPECT().FindByEmail(gomock.Any(), "anna@example.com").Return(nil, gorm.ErrRecordNotFound)
	deps.numbering.EXPECT().Next(gomock.Any(), model.SequenceEmployee).Return("EMP-00001", nil)
	deps.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *model.Employee) error {
			assert.Equal(t, "EMP-00001", e.PersonnelNumber)
			e.ID = uuid.New()
			return nil
		})
	deps.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.CreateEmployee(context.Background(), service.EmployeeRequest{
		FullName:   " Anna Petrova ",
		Email:      "Anna@Example.com",
		BaseSalary: "120000.505",
		HiredAt:    "2021-03-15",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "EMP-00001", got.PersonnelNumber)
	assert.Equal(t, "Anna Petrova", got.FullName)
	assert.Equal(t, "anna@example.com", got.Email)
	assert.Equal(t, "RESIDENT", got.TaxStatus)
	assert.Equal(t, "120000.51", got.BaseSalary)
	assert.Equal(t, "2021-03-15", got.HiredAt)
}

func TestEmployeeService_CreateEmployeeRejected(t *testing.T) {
	t.Parallel()

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()

		svc, deps := newEmployeeService(t)
		deps.repo.EXPECT().FindByEmail(gomock.Any(), "anna@example.com").Return(&model.Employee{ID: uuid.New()}, nil)

		_, err := svc.CreateEmployee(context.Background(), service.EmployeeRequest{
			FullName: "Anna", Email: "anna@example.com", HiredAt: "2021-03-15",
		}, "")
		require.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("negative salary", func(t *testing.T) {
		t.Parallel()

		svc, _ := newEmployeeService(t)
		_, err := svc.CreateEmployee(context.Background(), service.EmployeeRequest{
			FullName: "Anna", Email: "anna@example.com", HiredAt: "2021-03-15", BaseSalary: "-1",
		}, "")
		require.ErrorIs(t, err, payroll.ErrInvalidAmount)
	})

	t.Run("salary wider than column", func(t *testing.T) {
		t.Parallel()

		svc, _ := newEmployeeService(t)
		_, err := svc.CreateEmployee(context.Background(), service.EmployeeRequest{
			FullName: "Anna", Email: "anna@example.com", HiredAt: "2021-03-15", BaseSalary: "10000000000000000",
		}, "")
		require.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("unknown tax status", func(t *testing.T) {
		t.Parallel()

		svc, _ := newEmployeeService(t)
		_, err := svc.CreateEmployee(context.Background(), service.EmployeeRequest{
			FullName: "Anna", Email: "anna@example.com", HiredAt: "2021-03-15", TaxStatus: "EXPAT",
		}, "")
		require.ErrorIs(t, err, payroll.ErrInvalidTaxStatus)
	})
}

func TestEmployeeService_UpdateEmployeeKeepsOwnEmail(t *testing.T) {
	t.Parallel()

	svc, deps := newEmployeeService(t)
	id := uuid.New()
	existing := &model.Employee{
		ID:              id,
		PersonnelNumber: "EMP-00003",
		FullName:        "Ivan Ivanov",
		Email:           "ivan@example.com",
		TaxStatus:       "RESIDENT",
		BaseSalary:      dec("50000"),
		HiredAt:         day("2020-01-10"),
	}

	deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
	deps.repo.EXPECT().FindByEmail(gomock.Any(), "ivan@example.com").Return(existing, nil)
	deps.repo.EXPECT().Update(gomock.Any(), existing).Return(nil)
	deps.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry service.AuditEntry) error {
			before := entry.OldValues.(service.EmployeeResponse)
			after := entry.NewValues.(service.EmployeeResponse)
			assert.Equal(t, "RESIDENT", before.TaxStatus)
			assert.Equal(t, "NON_RESIDENT", after.TaxStatus)
			return nil
		})

	got, err := svc.UpdateEmployee(context.Background(), id.String(), service.EmployeeRequest{
		FullName:   "Ivan Ivanov",
		Email:      "ivan@example.com",
		TaxStatus:  "NON_RESIDENT",
		BaseSalary: "55000",
		HiredAt:    "2020-01-10",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "EMP-00003", got.PersonnelNumber)
	assert.Equal(t, "55000.00", got.BaseSalary)
}
