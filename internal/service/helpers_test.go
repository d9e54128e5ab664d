package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"personnel/internal/mocks"
	"personnel/internal/payroll"
	"personnel/pkg/logger"
)

const (
	rule2020ID = "0b6f3a52-8a8e-4d0c-9d5e-6a4c3f1b2a01"
	rule2023ID = "0b6f3a52-8a8e-4d0c-9d5e-6a4c3f1b2a02"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func day(s string) time.Time {
	d, err := payroll.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func discardLogger() *slog.Logger {
	return logger.NewWithWriter(io.Discard, slog.LevelDebug)
}

// russianVersions is the NDFL history used throughout the tests: 13% from 2020, 15% from 2023.
func russianVersions() []payroll.RuleVersion {
	return []payroll.RuleVersion{
		{ID: rule2020ID, EffectiveFrom: day("2020-01-01"), ResidentRate: dec("0.13"), NonResidentRate: dec("0.30")},
		{ID: rule2023ID, EffectiveFrom: day("2023-01-01"), ResidentRate: dec("0.15"), NonResidentRate: dec("0.30")},
	}
}

func russianRules(t *testing.T) payroll.RuleSet {
	t.Helper()

	rules, err := payroll.NewRuleSet(russianVersions())
	require.NoError(t, err)
	return rules
}

// passthroughTx runs the callback directly, as if the transaction always commits.
func passthroughTx(ctrl *gomock.Controller) *mocks.MockTransactionManager {
	tx := mocks.NewMockTransactionManager(ctrl)
	tx.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	return tx
}
