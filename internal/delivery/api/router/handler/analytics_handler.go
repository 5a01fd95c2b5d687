package handler

import (
	"log/slog"
	"time"

	"smartpay/internal/delivery/api/response"
	deliverycontext "smartpay/internal/delivery/context"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves reporting endpoints.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// DateRange handles GET /analytics/date-range?start_date=&end_date=.
func (h *AnalyticsHandler) DateRange(c echo.Context) error {
	start, err := queryDate(c, "start_date")
	if err != nil {
		return err
	}
	if start == nil {
		return domainerrors.ErrValidation.WithMessage("start_date is required")
	}

	end, err := queryDate(c, "end_date")
	if err != nil {
		return err
	}

	summary, err := h.analyticsUC.DateRangeSummary(c.Request().Context(), *start, end)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Failed to build date range summary",
			slog.Any("error", err),
		)

		return err
	}

	return response.OK(c, summary)
}

// queryDate parses a date in UTC, returning nil when the parameter is absent.
func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	date, err := cast.ToTimeInDefaultLocationE(raw, time.UTC)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithMessagef("Invalid %s: expected YYYY-MM-DD", name)
	}

	return &date, nil
}
