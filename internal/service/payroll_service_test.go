package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"personnel/internal/mocks"
	"personnel/internal/model"
	"personnel/internal/payroll"
	"personnel/internal/repository"
	"personnel/internal/service"
)

type payrollDeps struct {
	rules     *mocks.MockRuleSnapshotter
	calcs     *mocks.MockPayrollCalculationRepository
	employees *mocks.MockEmployeeRepository
	numbering *mocks.MockNumberingService
	audit     *mocks.MockAuditService
}

func newPayrollService(t *testing.T, opts service.PayrollOptions) (service.PayrollService, payrollDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := payrollDeps{
		rules:     mocks.NewMockRuleSnapshotter(ctrl),
		calcs:     mocks.NewMockPayrollCalculationRepository(ctrl),
		employees: mocks.NewMockEmployeeRepository(ctrl),
		numbering: mocks.NewMockNumberingService(ctrl),
		audit:     mocks.NewMockAuditService(ctrl),
	}

	svc := service.NewPayrollService(
		deps.rules,
		deps.calcs,
		deps.employees,
		deps.numbering,
		deps.audit,
		passthroughTx(ctrl),
		discardLogger(),
		opts,
	)
	return svc, deps
}

func TestPayrollService_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  service.ConvertRequest
		want service.ConvertResponse
	}{
		{
			name: "gross to net before the 2023 change",
			req: service.ConvertRequest{
				Amount:    decPtr("1000"),
				Direction: "grossToNet",
				TaxStatus: "RESIDENT",
				Date:      "2022-06-01",
			},
			want: service.ConvertResponse{
				Result:        "870.00",
				RateApplied:   "0.13",
				Gross:         "1000.00",
				Net:           "870.00",
				Withheld:      "130.00",
				Direction:     "grossToNet",
				TaxStatus:     "RESIDENT",
				RuleVersionID: rule2020ID,
				EffectiveFrom: "2020-01-01",
				Jurisdiction:  "RU",
			},
		},
		{
			name: "gross to net after the 2023 change",
			req: service.ConvertRequest{
				Amount:    decPtr("1000"),
				Direction: "grossToNet",
				TaxStatus: "RESIDENT",
				Date:      "2023-06-01",
			},
			want: service.ConvertResponse{
				Result:        "850.00",
				RateApplied:   "0.15",
				Gross:         "1000.00",
				Net:           "850.00",
				Withheld:      "150.00",
				Direction:     "grossToNet",
				TaxStatus:     "RESIDENT",
				RuleVersionID: rule2023ID,
				EffectiveFrom: "2023-01-01",
				Jurisdiction:  "RU",
			},
		},
		{
			name: "net to gross",
			req: service.ConvertRequest{
				Amount:       decPtr("870"),
				Direction:    "netToGross",
				TaxStatus:    "RESIDENT",
				Date:         "2022-06-01",
				Jurisdiction: " ru ",
			},
			want: service.ConvertResponse{
				Result:        "1000.00",
				RateApplied:   "0.13",
				Gross:         "1000.00",
				Net:           "870.00",
				Withheld:      "130.00",
				Direction:     "netToGross",
				TaxStatus:     "RESIDENT",
				RuleVersionID: rule2020ID,
				EffectiveFrom: "2020-01-01",
				Jurisdiction:  "RU",
			},
		},
		{
			name: "non-resident",
			req: service.ConvertRequest{
				Amount:    decPtr("1000"),
				Direction: "grossToNet",
				TaxStatus: "NON_RESIDENT",
				Date:      "2023-06-01",
			},
			want: service.ConvertResponse{
				Result:        "700.00",
				RateApplied:   "0.3",
				Gross:         "1000.00",
				Net:           "700.00",
				Withheld:      "300.00",
				Direction:     "grossToNet",
				TaxStatus:     "NON_RESIDENT",
				RuleVersionID: rule2023ID,
				EffectiveFrom: "2023-01-01",
				Jurisdiction:  "RU",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, deps := newPayrollService(t, service.PayrollOptions{})
			deps.rules.EXPECT().Snapshot(gomock.Any(), "RU").Return(russianRules(t), nil)

			got, err := svc.Convert(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayrollService_ConvertErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      service.ConvertRequest
		snapshot bool
		wantErr  error
	}{
		{
			name:    "malformed date",
			req:     service.ConvertRequest{Amount: decPtr("1"), Direction: "grossToNet", TaxStatus: "RESIDENT", Date: "01.06.2022"},
			wantErr: service.ErrInvalidInput,
		},
		{
			name:     "date before the first version",
			req:      service.ConvertRequest{Amount: decPtr("1"), Direction: "grossToNet", TaxStatus: "RESIDENT", Date: "2019-12-31"},
			snapshot: true,
			wantErr:  payroll.ErrNoApplicableRule,
		},
		{
			name:     "unknown tax status",
			req:      service.ConvertRequest{Amount: decPtr("1"), Direction: "grossToNet", TaxStatus: "EXPAT", Date: "2022-06-01"},
			snapshot: true,
			wantErr:  payroll.ErrInvalidTaxStatus,
		},
		{
			name:     "unknown direction",
			req:      service.ConvertRequest{Amount: decPtr("1"), Direction: "sideways", TaxStatus: "RESIDENT", Date: "2022-06-01"},
			snapshot: true,
			wantErr:  payroll.ErrInvalidDirection,
		},
		{
			name:     "negative amount",
			req:      service.ConvertRequest{Amount: decPtr("-5"), Direction: "grossToNet", TaxStatus: "RESIDENT", Date: "2022-06-01"},
			snapshot: true,
			wantErr:  payroll.ErrInvalidAmount,
		},
		{
			name:     "missing amount",
			req:      service.ConvertRequest{Direction: "grossToNet", TaxStatus: "RESIDENT", Date: "2022-06-01"},
			snapshot: true,
			wantErr:  service.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, deps := newPayrollService(t, service.PayrollOptions{})
			if tt.snapshot {
				deps.rules.EXPECT().Snapshot(gomock.Any(), "RU").Return(russianRules(t), nil)
			}

			_, err := svc.Convert(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPayrollService_ConvertHighRateDefaultJurisdiction(t *testing.T) {
	t.Parallel()

	rules, err := payroll.NewRuleSet([]payroll.RuleVersion{
		{ID: rule2020ID, EffectiveFrom: day("2020-01-01"), ResidentRate: dec("0.13"), NonResidentRate: dec("0.99")},
	})
	require.NoError(t, err)

	svc, deps := newPayrollService(t, service.PayrollOptions{DefaultJurisdiction: "KZ"})
	deps.rules.EXPECT().Snapshot(gomock.Any(), "KZ").Return(rules, nil)

	got, err := svc.Convert(context.Background(), service.ConvertRequest{
		Amount:    decPtr("1"),
		Direction: "netToGross",
		TaxStatus: "NON_RESIDENT",
		Date:      "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "100.00", got.Result)
	assert.Equal(t, "KZ", got.Jurisdiction)
}

func TestPayrollService_ConvertSnapshotFailure(t *testing.T) {
	t.Parallel()

	svc, deps := newPayrollService(t, service.PayrollOptions{})
	boom := errors.New("connection refused")
	deps.rules.EXPECT().Snapshot(gomock.Any(), "RU").Return(payroll.RuleSet{}, boom)

	_, err := svc.Convert(context.Background(), service.ConvertRequest{
		Amount: decPtr("1"), Direction: "grossToNet", TaxStatus: "RESIDENT", Date: "2022-06-01",
	})
	require.ErrorIs(t, err, boom)
}

func TestPayrollService_ConvertBatch(t *testing.T) {
	t.Parallel()

	svc, deps := newPayrollService(t, service.PayrollOptions{})
	deps.rules.EXPECT().Snapshot(gomock.Any(), "RU").Return(russianRules(t), nil).Times(1)

	got, err := svc.ConvertBatch(context.Background(), service.ConvertBatchRequest{
		Date: "2022-06-01",
		Lines: []service.ConvertBatchLine{
			{Amount: decPtr("1000"), Direction: "grossToNet", TaxStatus: "RESIDENT"},
			{Amount: decPtr("870"), Direction: "netToGross", TaxStatus: "RESIDENT"},
			{Amount: decPtr("100"), Direction: "grossToNet", TaxStatus: "NON_RESIDENT"},
		},
	})
	require.NoError(t, err)

	require.Len(t, got.Lines, 3)
	assert.Equal(t, "2022-06-01", got.Date)
	assert.Equal(t, "RU", got.Jurisdiction)
	assert.Equal(t, "870.00", got.Lines[0].Result)
	assert.Equal(t, "1000.00", got.Lines[1].Result)
	assert.Equal(t, "70.00", got.Lines[2].Result)
	assert.Equal(t, "2100.00", got.TotalGross)
	assert.Equal(t, "1810.00", got.TotalNet)
	assert.Equal(t, "290.00", got.TotalWithheld)
}

func TestPayrollService_ConvertBatchLineError(t *testing.T) {
	t.Parallel()

	svc, deps := newPayrollService(t, service.PayrollOptions{})
	deps.rules.EXPECT().Snapshot(gomock.Any(), "RU").Return(russianRules(t), nil)

	_, err := svc.ConvertBatch(context.Background(), service.ConvertBatchRequest{
		Date: "2022-06-01",
		Lines: []service.ConvertBatchLine{
			{Amount: decPtr("1000"), Direction: "grossToNet", TaxStatus: "RESIDENT"},
			{Amount: decPtr("-1"), Direction: "grossToNet", TaxStatus: "RESIDENT"},
		},
	})
	require.ErrorIs(t, err, payroll.ErrInvalidAmount)

	var lineErr *service.LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)
}

func TestPayrollService_ConvertBatchLimits(t *testing.T) {
	t.Parallel()

	svc, _ := newPayrollService(t, service.PayrollOptions{BatchMaxLines: 2})

	line := service.ConvertBatchLine{Amount: decPtr("1"), Direction: "grossToNet", TaxStatus: "RESIDENT"}

	_, err := svc.ConvertBatch(context.Background(), service.ConvertBatchRequest{
		Date:  "2022-06-01",
		Lines: []service.ConvertBatchLine{line, line, line},
	})
	require.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.ConvertBatch(context.Background(), service.ConvertBatchRequest{Date: "2022-06-01"})
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestPayrollService_CreateCalculationDefaultsFromEmployee(t *testing.T) {
	t.Parallel()

	svc, deps := newPayrollService(t, service.PayrollOptions{})

	employeeID := uuid.New()
	userID := uuid.New()
	employee := &model.Employee{
		ID:              employeeID,
		PersonnelNumber: "EMP-00007",
		FullName:        "Anna Petrova",
		TaxStatus:       "NON_RESIDENT",
		BaseSalary:      dec("2000"),
	}

	deps.employees.EXPECT().FindByID(gomock.Any(), employeeID).Return(employee, nil)
	deps.rules.EXPECT().Snapshot(gomock.Any(), "RU").Return(russianRules(t), nil)
	deps.rules.EXPECT().
		PinVersion(gomock.Any(), "RU", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, v payroll.RuleVersion) error {
			assert.Equal(t, rule2023ID, v.ID)
			return nil
		})
	deps.numbering.EXPECT().Next(gomock.Any(), model.SequencePayrollCalculation).Return("PAY-000001", nil)
	deps.calcs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, calc *model.PayrollCalculation) error {
			assert.Nil(t, calc.Employee, "association must not be written")
			require.NotNil(t, calc.EmployeeID)
			assert.Equal(t, employeeID, *calc.EmployeeID)
			calc.ID = uuid.New()
			return nil
		})
	deps.audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry service.AuditEntry) error {
			assert.Equal(t, model.ActionCreatePayrollCalculation, entry.Action)
			assert.Equal(t, model.EntityPayrollCalculation, entry.Entity)
			assert.Equal(t, userID.String(), entry.UserID)
			return nil
		})

	got, err := svc.CreateCalculation(context.Background(), service.CreateCalculationRequest{
		EmployeeID: employeeID.String(),
		Direction:  "grossToNet",
		PeriodDate: "2023-06-01",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "PAY-000001", got.Number)
	assert.Equal(t, "NON_RESIDENT", got.TaxStatus)
	assert.Equal(t, "2000.00", got.InputAmount)
	assert.Equal(t, "2000.00", got.Gross)
	assert.Equal(t, "1400.00", got.Net)
	assert.Equal(t, "600.00", got.Withheld)
	assert.Equal(t, "0.3000", got.RateApplied)
	assert.Equal(t, rule2023ID, got.RuleVersionID)
	assert.Equal(t, "Anna Petrova", got.EmployeeName)
	assert.Equal(t, "EMP-00007", got.PersonnelNumber)
	assert.Equal(t, userID.String(), got.CreatedBy)
}

func TestPayrollService_CreateCalculationErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown employee", func(t *testing.T) {
		t.Parallel()

		svc, deps := newPayrollService(t, service.PayrollOptions{})
		deps.employees.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CreateCalculation(context.Background(), service.CreateCalculationRequest{
			EmployeeID: uuid.NewString(),
			Direction:  "grossToNet",
			PeriodDate: "2023-06-01",
		}, "")
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("net to gross needs an amount", func(t *testing.T) {
		t.Parallel()

		svc, _ := newPayrollService(t, service.PayrollOptions{})

		_, err := svc.CreateCalculation(context.Background(), service.CreateCalculationRequest{
			Direction:  "netToGross",
			TaxStatus:  "RESIDENT",
			PeriodDate: "2023-06-01",
		}, "")
		require.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("numbering failure is returned", func(t *testing.T) {
		t.Parallel()

		svc, deps := newPayrollService(t, service.PayrollOptions{})
		deps.rules.EXPECT().Snapshot(gomock.Any(), "RU").Return(russianRules(t), nil)
		deps.rules.EXPECT().PinVersion(gomock.Any(), "RU", gomock.Any()).Return(nil)
		deps.numbering.EXPECT().Next(gomock.Any(), model.SequencePayrollCalculation).Return("", service.ErrNotFound)

		_, err := svc.CreateCalculation(context.Background(), service.CreateCalculationRequest{
			Amount:     decPtr("1000"),
			Direction:  "grossToNet",
			TaxStatus:  "RESIDENT",
			PeriodDate: "2023-06-01",
		}, "")
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("rule version edited meanwhile", func(t *testing.T) {
		t.Parallel()

		svc, deps := newPayrollService(t, service.PayrollOptions{})
		deps.rules.EXPECT().Snapshot(gomock.Any(), "RU").Return(russianRules(t), nil)
		deps.rules.EXPECT().
			PinVersion(gomock.Any(), "RU", gomock.Any()).
			Return(fmt.Errorf("%w: %s", service.ErrRuleVersionChanged, rule2023ID))

		_, err := svc.CreateCalculation(context.Background(), service.CreateCalculationRequest{
			Amount:     decPtr("1000"),
			Direction:  "grossToNet",
			TaxStatus:  "RESIDENT",
			PeriodDate: "2023-06-01",
		}, "")
		require.ErrorIs(t, err, service.ErrRuleVersionChanged)
	})
}

func TestPayrollService_CreateCalculationAmountBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		amount    string
		direction string
	}{
		{"input too wide", "10000000000000000", "grossToNet"},
		{"rounds up past the limit", "9999999999999999.999", "grossToNet"},
		{"derived gross too wide", "9000000000000000", "netToGross"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, deps := newPayrollService(t, service.PayrollOptions{})
			deps.rules.EXPECT().Snapshot(gomock.Any(), "RU").Return(russianRules(t), nil)

			_, err := svc.CreateCalculation(context.Background(), service.CreateCalculationRequest{
				Amount:     decPtr(tt.amount),
				Direction:  tt.direction,
				TaxStatus:  "RESIDENT",
				PeriodDate: "2023-06-01",
			}, "")
			require.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

func TestPayrollService_ListCalculationsFilter(t *testing.T) {
	t.Parallel()

	t.Run("passes the parsed filter", func(t *testing.T) {
		t.Parallel()

		svc, deps := newPayrollService(t, service.PayrollOptions{})
		employeeID := uuid.New()

		deps.calcs.EXPECT().
			List(gomock.Any(), gomock.Any(), 2, 10).
			DoAndReturn(func(_ context.Context, f repository.CalculationFilter, _, _ int) ([]model.PayrollCalculation, int64, error) {
				require.NotNil(t, f.EmployeeID)
				assert.Equal(t, employeeID, *f.EmployeeID)
				require.NotNil(t, f.From)
				assert.Equal(t, day("2023-01-01"), *f.From)
				assert.Nil(t, f.To)
				return []model.PayrollCalculation{{Number: "PAY-000003", PeriodDate: day("2023-02-01")}}, 11, nil
			})

		got, total, err := svc.ListCalculations(context.Background(), service.CalculationQuery{
			EmployeeID: employeeID.String(),
			From:       "2023-01-01",
		}, 2, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 11, total)
		require.Len(t, got, 1)
		assert.Equal(t, "PAY-000003", got[0].Number)
		assert.Equal(t, "2023-02-01", got[0].PeriodDate)
	})

	t.Run("inverted range", func(t *testing.T) {
		t.Parallel()

		svc, _ := newPayrollService(t, service.PayrollOptions{})
		_, _, err := svc.ListCalculations(context.Background(), service.CalculationQuery{
			From: "2023-02-01",
			To:   "2023-01-01",
		}, 1, 20)
		require.ErrorIs(t, err, service.ErrInvalidInput)
	})
}
