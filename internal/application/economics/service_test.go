package economics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/economics"
)

type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) YearlySummary(ctx context.Context) ([]economics.ValueYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]economics.ValueYear), args.Error(1)
}

func TestService_Retention(t *testing.T) {
	repo := new(MockSummaryRepository)
	service := NewService(repo, zap.NewNop())

	repo.On("YearlySummary", mock.Anything).Return([]economics.ValueYear{
		{
			Year:        2022,
			Generated:   decimal.RequireFromString("1000"),
			Distributed: decimal.RequireFromString("850"),
		},
		{
			Year:        2023,
			Generated:   decimal.RequireFromString("1200.50"),
			Distributed: decimal.RequireFromString("900.25"),
		},
	}, nil)

	rates, err := service.Retention(context.Background())

	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, 2022, rates[0].Year)
	assert.True(t, rates[0].Rate.Equal(decimal.RequireFromString("15")), rates[0].Rate.String())
	assert.Equal(t, 2023, rates[1].Year)
	// (1200.50 - 900.25) / 1200.50 * 100 = 25.0104... -> 25.0
	assert.True(t, rates[1].Rate.Equal(decimal.RequireFromString("25")), rates[1].Rate.String())
}

func TestService_Retention_ZeroGenerated(t *testing.T) {
	repo := new(MockSummaryRepository)
	service := NewService(repo, zap.NewNop())

	repo.On("YearlySummary", mock.Anything).Return([]economics.ValueYear{
		{Year: 2021, Generated: decimal.Zero, Distributed: decimal.RequireFromString("50")},
	}, nil)

	rates, err := service.Retention(context.Background())

	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.True(t, rates[0].Rate.IsZero())
}

func TestService_Summary(t *testing.T) {
	repo := new(MockSummaryRepository)
	service := NewService(repo, zap.NewNop())

	rows := []economics.ValueYear{
		{Year: 2024, Generated: decimal.RequireFromString("500"), Distributed: decimal.RequireFromString("400")},
	}
	repo.On("YearlySummary", mock.Anything).Return(rows, nil)

	got, err := service.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
