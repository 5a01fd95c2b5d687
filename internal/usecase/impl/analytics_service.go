package impl

import (
	"context"
	"log/slog"
	"time"

	"smartpay/config"
	deliverycontext "smartpay/internal/delivery/context"
	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
	"smartpay/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	roles         config.AnalyticsConfig
	now           func() time.Time
	logger        *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAnalyticsService creates the analytics service.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: params.AnalyticsRepo,
		roles:         params.Config.Analytics,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (s *analyticsService) DateRangeSummary(ctx context.Context, start time.Time, end *time.Time) (*entity.DateRangeSummary, error) {
	last := s.now().In(start.Location())
	if end != nil {
		last = *end
	}
	if last.Before(start) {
		start, last = last, start
	}

	// Half-open [from, to) over whole days.
	from := startOfDay(start)
	to := startOfDay(last).AddDate(0, 0, 1)

	customers, err := s.analyticsRepo.CountUsersByRole(ctx, s.roles.CustomerRole, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}
	vendors, err := s.analyticsRepo.CountUsersByRole(ctx, s.roles.VendorRole, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count vendors")
	}
	devices, err := s.analyticsRepo.CountDevices(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count devices")
	}
	payments, err := s.analyticsRepo.SumPayments(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum payments")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Computed date range summary",
		slog.Time("from", from),
		slog.Time("to", to),
	)

	return &entity.DateRangeSummary{
		StartDate: from,
		EndDate:   to.Add(-time.Millisecond),
		Customers: customers,
		Vendors:   vendors,
		Devices:   devices,
		Payments:  payments,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
