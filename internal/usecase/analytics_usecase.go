package usecase

import (
	"context"
	"time"

	"smartpay/internal/domain/entity"
)

// AnalyticsUsecase reports activity aggregates.
type AnalyticsUsecase interface {
	// DateRangeSummary covers whole days from start through end. A nil end means today
	// and reversed bounds are swapped.
	DateRangeSummary(ctx context.Context, start time.Time, end *time.Time) (*entity.DateRangeSummary, error)
}
