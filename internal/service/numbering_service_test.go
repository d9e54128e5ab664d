package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"personnel/internal/mocks"
	"personnel/internal/model"
	"personnel/internal/service"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix  string
		padding int
		value   int64
		want    string
	}{
		{"PAY-", 6, 1, "PAY-000001"},
		{"PAY-", 6, 123456, "PAY-123456"},
		{"PAY-", 6, 1234567, "PAY-1234567"},
		{"EMP-", 5, 42, "EMP-00042"},
		{"", 3, 7, "007"},
		{"X", 0, 5, "X5"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, service.FormatNumber(tt.prefix, tt.padding, tt.value))
		})
	}
}

func TestNumberingService_Next(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seq     *model.NumberSequence
		repoErr error
		want    string
		wantErr error
	}{
		{
			name: "formats the incremented value",
			seq:  &model.NumberSequence{Entity: model.SequencePayrollCalculation, Prefix: "PAY-", Padding: 6, LastValue: 12},
			want: "PAY-000012",
		},
		{
			name:    "unknown sequence",
			repoErr: gorm.ErrRecordNotFound,
			wantErr: service.ErrNotFound,
		},
		{
			name:    "lock failure",
			repoErr: errors.New("deadlock detected"),
			wantErr: errors.New("deadlock detected"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := mocks.NewMockNumberSequenceRepository(ctrl)
			repo.EXPECT().Increment(gomock.Any(), model.SequencePayrollCalculation).Return(tt.seq, tt.repoErr)

			svc := service.NewNumberingService(repo, passthroughTx(ctrl))
			got, err := svc.Next(context.Background(), model.SequencePayrollCalculation)

			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			case errors.Is(tt.wantErr, service.ErrNotFound):
				require.ErrorIs(t, err, service.ErrNotFound)
			default:
				require.ErrorContains(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestNumberingService_EnsureDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNumberSequenceRepository(ctrl)

	seen := map[string]string{}
	repo.EXPECT().
		EnsureExists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, seq *model.NumberSequence) error {
			seen[seq.Entity] = seq.Prefix
			return nil
		}).
		Times(2)

	svc := service.NewNumberingService(repo, passthroughTx(ctrl))
	require.NoError(t, svc.EnsureDefaults(context.Background()))

	assert.Equal(t, "PAY-", seen[model.SequencePayrollCalculation])
	assert.Equal(t, "EMP-", seen[model.SequenceEmployee])
}
