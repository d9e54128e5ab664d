package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"personnel/internal/clients"
	"personnel/internal/i18n"
	"personnel/internal/mocks"
	"personnel/internal/model"
	"personnel/internal/service"
)

func exportRows() []model.PayrollCalculation {
	employeeID := uuid.New()
	employee := &model.Employee{ID: employeeID, PersonnelNumber: "EMP-00001", FullName: "Anna Petrova"}

	return []model.PayrollCalculation{
		{
			Number: "PAY-000001", EmployeeID: &employeeID, Employee: employee,
			Direction: "grossToNet", TaxStatus: "RESIDENT", PeriodDate: day("2023-01-31"),
			InputAmount: dec("1000"), Gross: dec("1000"), Net: dec("850"), Withheld: dec("150"), RateApplied: dec("0.15"),
		},
		{
			Number: "PAY-000002",
			Direction: "netToGross", TaxStatus: "NON_RESIDENT", PeriodDate: day("2023-02-28"),
			InputAmount: dec("700"), Gross: dec("1000"), Net: dec("700"), Withheld: dec("300"), RateApplied: dec("0.3"),
		},
	}
}

func TestExportService_InlineWorkbook(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	calcs := mocks.NewMockPayrollCalculationRepository(ctrl)
	audit := mocks.NewMockAuditService(ctrl)
	tr := i18n.New()

	calcs.EXPECT().ListForExport(gomock.Any(), gomock.Any(), 11).Return(exportRows(), nil)
	audit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry service.AuditEntry) error {
			assert.Equal(t, model.ActionExportPayroll, entry.Action)
			return nil
		})

	svc := service.NewExportService(calcs, nil, audit, tr, discardLogger(), service.ExportOptions{MaxRows: 10})
	res, err := svc.ExportCalculations(context.Background(), service.CalculationQuery{From: "2023-01-01"}, "ru", "")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, clients.ContentTypeXLSX, res.ContentType)
	assert.Regexp(t, `^payroll_\d{8}_\d{6}\.xlsx$`, res.FileName)
	assert.Empty(t, res.URL)
	require.NotEmpty(t, res.Data)

	f, err := excelize.OpenReader(bytes.NewReader(res.Data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := tr.T("ru", i18n.KeySheetPayroll)
	assert.Equal(t, sheet, f.GetSheetName(0))

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, tr.T("ru", i18n.KeyColNumber), header)

	number, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "PAY-000001", number)

	employee, err := f.GetCellValue(sheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "Anna Petrova", employee)

	total, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, tr.T("ru", i18n.KeyColTotal), total)

	formula, err := f.GetCellFormula(sheet, "G4")
	require.NoError(t, err)
	assert.Equal(t, "SUM(G2:G3)", formula)
}

func TestExportService_UploadsWhenStoreConfigured(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	calcs := mocks.NewMockPayrollCalculationRepository(ctrl)
	audit := mocks.NewMockAuditService(ctrl)
	store := mocks.NewMockObjectStore(ctrl)

	calcs.EXPECT().ListForExport(gomock.Any(), gomock.Any(), gomock.Any()).Return(exportRows(), nil)
	store.EXPECT().
		Upload(gomock.Any(), gomock.Any(), clients.ContentTypeXLSX, gomock.Any()).
		DoAndReturn(func(_ context.Context, name, _ string, data []byte) (string, error) {
			assert.NotEmpty(t, data)
			return "exports/" + name, nil
		})
	store.EXPECT().
		PresignedURL(gomock.Any(), gomock.Any(), 15*time.Minute).
		Return("https://s3.local/exports/payroll.xlsx?sig=1", nil)
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit table locked"))

	svc := service.NewExportService(calcs, store, audit, i18n.New(), discardLogger(), service.ExportOptions{URLTTL: 15 * time.Minute})
	res, err := svc.ExportCalculations(context.Background(), service.CalculationQuery{}, "en", "")
	require.NoError(t, err)

	assert.Equal(t, "https://s3.local/exports/payroll.xlsx?sig=1", res.URL)
	assert.Nil(t, res.Data)
}

func TestExportService_TooManyRows(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	calcs := mocks.NewMockPayrollCalculationRepository(ctrl)

	calcs.EXPECT().ListForExport(gomock.Any(), gomock.Any(), 2).Return(exportRows(), nil)

	svc := service.NewExportService(calcs, nil, mocks.NewMockAuditService(ctrl), i18n.New(), discardLogger(), service.ExportOptions{MaxRows: 1})
	_, err := svc.ExportCalculations(context.Background(), service.CalculationQuery{}, "en", "")
	require.ErrorIs(t, err, service.ErrInvalidInput)
}
