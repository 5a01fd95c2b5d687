package impl

import (
	"context"
	"testing"
	"time"

	"smartpay/internal/domain/entity"
	mockRepo "smartpay/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyticsService(t *testing.T, now time.Time) (*analyticsService, *mockRepo.MockAnalyticsRepository) {
	repo := mockRepo.NewMockAnalyticsRepository(t)
	svc := NewAnalyticsService(AnalyticsServiceParams{
		AnalyticsRepo: repo,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	}).(*analyticsService)
	svc.now = func() time.Time { return now }

	return svc, repo
}

func expectSummary(repo *mockRepo.MockAnalyticsRepository, from, to time.Time) {
	ctx := context.Background()
	repo.EXPECT().CountUsersByRole(ctx, "Cliente", from, to).Return(10, nil)
	repo.EXPECT().CountUsersByRole(ctx, "Vendedor", from, to).Return(2, nil)
	repo.EXPECT().CountDevices(ctx, from, to).Return(7, nil)
	repo.EXPECT().SumPayments(ctx, from, to).Return(1520.5, nil)
}

func TestAnalyticsService_DateRangeSummary(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		now      time.Time
		start    time.Time
		end      *time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "whole days are covered",
			start:    day(1).Add(15 * time.Hour),
			end:      ptr(day(3).Add(2 * time.Hour)),
			wantFrom: day(1),
			wantTo:   day(4),
		},
		{
			name:     "reversed bounds are swapped",
			start:    day(5),
			end:      ptr(day(2)),
			wantFrom: day(2),
			wantTo:   day(6),
		},
		{
			name:     "missing end defaults to today",
			now:      day(10).Add(9 * time.Hour),
			start:    day(8),
			wantFrom: day(8),
			wantTo:   day(11),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAnalyticsService(t, tt.now)
			expectSummary(repo, tt.wantFrom, tt.wantTo)

			got, err := svc.DateRangeSummary(context.Background(), tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, &entity.DateRangeSummary{
				StartDate: tt.wantFrom,
				EndDate:   tt.wantTo.Add(-time.Millisecond),
				Customers: 10,
				Vendors:   2,
				Devices:   7,
				Payments:  1520.5,
			}, got)
		})
	}
}

func TestAnalyticsService_DateRangeSummaryRepositoryError(t *testing.T) {
	svc, repo := newTestAnalyticsService(t, time.Now())
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().CountUsersByRole(context.Background(), "Cliente", start, start.AddDate(0, 0, 1)).
		Return(0, errors.New("connection reset"))

	_, err := svc.DateRangeSummary(context.Background(), start, &start)
	assert.ErrorContains(t, err, "failed to count customers")
}

func ptr[T any](v T) *T {
	return &v
}
