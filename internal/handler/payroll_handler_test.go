package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"personnel/internal/handler"
	"personnel/internal/i18n"
	"personnel/internal/middleware"
	"personnel/internal/mocks"
	"personnel/internal/model"
	"personnel/internal/payroll"
	"personnel/internal/service"
	"personnel/pkg/response"
)

const secret = "handler-secret"

// grants every permission to every role
type allowAll struct{}

func (allowAll) GetPermissionsByRoleName(context.Context, string) ([]string, error) {
	return []string{
		model.PermPayrollCalculate, model.PermPayrollRead, model.PermPayrollWrite,
		model.PermPayrollRulesRead, model.PermPayrollRulesWrite,
	}, nil
}

type server struct {
	router  *gin.Engine
	payroll *mocks.MockPayrollService
	export  *mocks.MockExportService
	rules   *mocks.MockPayrollRuleService
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newServer(t *testing.T) server {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := server{
		router:  gin.New(),
		payroll: mocks.NewMockPayrollService(ctrl),
		export:  mocks.NewMockExportService(ctrl),
		rules:   mocks.NewMockPayrollRuleService(ctrl),
	}

	tr := i18n.New()
	auth := middleware.NewAuthenticator(middleware.AuthConfig{Secret: secret}, allowAll{}, tr)
	s.router.Use(middleware.Localize(tr))

	api := s.router.Group("")
	handler.NewPayrollHandler(s.payroll, s.export, auth, tr).RegisterRoutes(api)
	handler.NewPayrollRuleHandler(s.rules, auth, tr).RegisterRoutes(api)
	return s
}

func (s server) do(t *testing.T, method, path string, body any, locale string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	token, err := service.IssueAccessToken(secret, uuid.NewString(), model.RoleAccountant, "", time.Hour, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if locale != "" {
		req.Header.Set("Accept-Language", locale)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var res response.Response
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	}
	return w, res
}

func convertBody() map[string]any {
	return map[string]any{
		"amount":    "1000.00",
		"direction": "grossToNet",
		"taxStatus": "RESIDENT",
		"date":      "2023-06-01",
	}
}

func TestPayrollHandler_Convert(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	s.payroll.EXPECT().
		Convert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req service.ConvertRequest) (service.ConvertResponse, error) {
			assert.Equal(t, "1000", req.Amount.String())
			assert.Equal(t, string(payroll.DirectionGrossToNet), req.Direction)
			return service.ConvertResponse{Result: "850.00", RateApplied: "0.15"}, nil
		})

	w, res := s.do(t, http.MethodPost, "/api/payroll/convert", convertBody(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.StatusSuccess, res.Status)

	data := res.Data.(map[string]any)
	assert.Equal(t, "850.00", data["result"])
	assert.Equal(t, "0.15", data["rateApplied"])
}

func TestPayrollHandler_ConvertErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"negative amount", payroll.ErrInvalidAmount, http.StatusBadRequest, "Amount must not be negative"},
		{"bad rate", fmt.Errorf("resolve: %w", payroll.ErrInvalidRate), http.StatusBadRequest, ""},
		{"bad direction", payroll.ErrInvalidDirection, http.StatusBadRequest, ""},
		{"no rule", payroll.ErrNoApplicableRule, http.StatusNotFound, "No payroll rule is effective on the requested date"},
		{"full withholding", payroll.ErrDivisionUndefined, http.StatusUnprocessableEntity, "Gross cannot be derived from net at a 100% rate"},
		{"bad input", fmt.Errorf("%w: invalid date", service.ErrInvalidInput), http.StatusBadRequest, ""},
		{"database", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newServer(t)
			s.payroll.EXPECT().Convert(gomock.Any(), gomock.Any()).Return(service.ConvertResponse{}, tt.err)

			w, res := s.do(t, http.MethodPost, "/api/payroll/convert", convertBody(), "")
			require.Equal(t, tt.status, w.Code)
			assert.Equal(t, response.StatusError, res.Status)
			assert.Equal(t, tt.status, res.StatusCode)
			if tt.message != "" {
				assert.Equal(t, tt.message, res.Error)
			}
			assert.NotContains(t, res.Error, "connection reset")
		})
	}
}

func TestPayrollHandler_ConvertMalformedBody(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	body := convertBody()
	delete(body, "amount")
	w, res := s.do(t, http.MethodPost, "/api/payroll/convert", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.StatusError, res.Status)
}

func TestPayrollHandler_ConvertBatchLineError(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	s.payroll.EXPECT().
		ConvertBatch(gomock.Any(), gomock.Any()).
		Return(service.ConvertBatchResponse{}, &service.LineError{Line: 2, Err: payroll.ErrInvalidAmount})

	body := map[string]any{
		"date": "2023-06-01",
		"lines": []map[string]any{
			{"amount": "1000", "direction": "grossToNet", "taxStatus": "RESIDENT"},
			{"amount": "-5", "direction": "grossToNet", "taxStatus": "RESIDENT"},
		},
	}

	w, res := s.do(t, http.MethodPost, "/api/payroll/convert/batch", body, "ru")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "#2: Сумма не может быть отрицательной", res.Error)
}

func TestPayrollHandler_CreateCalculationRuleChanged(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	s.payroll.EXPECT().
		CreateCalculation(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.CalculationResponse{}, fmt.Errorf("%w: %s", service.ErrRuleVersionChanged, uuid.NewString()))

	w, res := s.do(t, http.MethodPost, "/api/payroll/calculations", map[string]any{
		"amount":      "1000",
		"direction":   "grossToNet",
		"tax_status":  "RESIDENT",
		"period_date": "2023-06-01",
	}, "ru")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Правила расчёта изменились во время операции, повторите запрос", res.Error)
}

func TestPayrollHandler_ExportInline(t *testing.T) {
	t.Parallel()

	s := newServer(t)
	s.export.EXPECT().
		ExportCalculations(gomock.Any(), service.CalculationQuery{From: "2023-01-01"}, model.LocaleTurkish, gomock.Any()).
		Return(service.ExportResult{
			FileName:    "payroll_20230101_120000.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        []byte("PK\x03\x04"),
			Rows:        1,
		}, nil)

	w, _ := s.do(t, http.MethodGet, "/api/payroll/calculations/export?from=2023-01-01", nil, "tr-TR")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="payroll_20230101_120000.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, []byte("PK\x03\x04"), w.Body.Bytes())
}

func TestPayrollRuleHandler_ErrorStatus(t *testing.T) {
	t.Parallel()

	id := uuid.NewString()

	t.Run("delete referenced version", func(t *testing.T) {
		t.Parallel()

		s := newServer(t)
		s.rules.EXPECT().DeleteRule(gomock.Any(), id, gomock.Any()).Return(service.ErrRuleVersionInUse)

		w, res := s.do(t, http.MethodDelete, "/api/payroll-rules/"+id, nil, "")
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "The rule version is referenced by payroll calculations and cannot be changed", res.Error)
	})

	t.Run("duplicate effective date", func(t *testing.T) {
		t.Parallel()

		s := newServer(t)
		s.rules.EXPECT().
			CreateRule(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(service.PayrollRuleResponse{}, fmt.Errorf("%w: 2023-01-01", service.ErrRuleVersionConflict))

		w, _ := s.do(t, http.MethodPost, "/api/payroll-rules", map[string]any{
			"effective_from":    "2023-01-01",
			"resident_rate":     "0.15",
			"non_resident_rate": "0.30",
		}, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown version", func(t *testing.T) {
		t.Parallel()

		s := newServer(t)
		s.rules.EXPECT().GetRule(gomock.Any(), id).Return(service.PayrollRuleResponse{}, service.ErrNotFound)

		w, _ := s.do(t, http.MethodGet, "/api/payroll-rules/"+id, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
