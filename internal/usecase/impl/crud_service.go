// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"smartpay/config"
	deliverycontext "smartpay/internal/delivery/context"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// TransitionGuard inspects the stored entity and the incoming patch before an update is
// written. It runs inside the update transaction.
type TransitionGuard[E any] func(current *E, patch repository.Patch) error

// CRUDParams holds the dependencies shared by every CRUD service, injected by Fx.
type CRUDParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// CRUDService implements usecase.CRUDUsecase on top of a generic repository.
type CRUDService[E any, C usecase.CreateInput[E], U usecase.UpdateInput] struct {
	repo       repository.Repository[E]
	txManager  repository.TransactionManager
	pagination config.PaginationConfig
	resource   string
	guard      TransitionGuard[E]
	logger     *slog.Logger
}

// NewCRUDService creates a CRUD service. resource is the display name used in error
// messages, e.g. "Device".
func NewCRUDService[E any, C usecase.CreateInput[E], U usecase.UpdateInput](
	params CRUDParams,
	repo repository.Repository[E],
	resource string,
) *CRUDService[E, C, U] {
	pagination := params.Config.Pagination
	if pagination.DefaultLimit <= 0 {
		pagination.DefaultLimit = repository.DefaultListLimit
	}
	if pagination.MaxLimit < pagination.DefaultLimit {
		pagination.MaxLimit = pagination.DefaultLimit
	}

	return &CRUDService[E, C, U]{
		repo:       repo,
		txManager:  params.TxManager,
		pagination: pagination,
		resource:   resource,
		logger:     params.Logger,
	}
}

// WithTransitionGuard installs a guard consulted by Update.
func (s *CRUDService[E, C, U]) WithTransitionGuard(guard TransitionGuard[E]) *CRUDService[E, C, U] {
	s.guard = guard

	return s
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *CRUDService[E, C, U]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *CRUDService[E, C, U]) notFound() error {
	return domainerrors.ErrNotFound.WithMessagef("%s not found", s.resource)
}

func (s *CRUDService[E, C, U]) Get(ctx context.Context, id uuid.UUID, preload ...string) (*E, error) {
	entity, err := s.repo.Get(ctx, id, preload...)
	if err != nil {
		return nil, translateError(s.resource, "get", err)
	}
	if entity == nil {
		return nil, s.notFound()
	}

	return entity, nil
}

func (s *CRUDService[E, C, U]) List(ctx context.Context, opts repository.ListOptions) ([]*E, error) {
	opts.Offset = max(opts.Offset, 0)
	switch {
	case opts.Limit <= 0:
		opts.Limit = s.pagination.DefaultLimit
	case opts.Limit > s.pagination.MaxLimit:
		opts.Limit = s.pagination.MaxLimit
	}

	entities, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, translateError(s.resource, "list", err)
	}

	return entities, nil
}

func (s *CRUDService[E, C, U]) Count(ctx context.Context, opts repository.ListOptions) (int64, error) {
	count, err := s.repo.Count(ctx, opts)
	if err != nil {
		return 0, translateError(s.resource, "count", err)
	}

	return count, nil
}

func (s *CRUDService[E, C, U]) Create(ctx context.Context, in C) (*E, error) {
	created, err := s.repo.Create(ctx, in.ToEntity())
	if err != nil {
		s.log(ctx).Warn("Create failed", slog.String("resource", s.resource), slog.Any("error", err))

		return nil, translateError(s.resource, "create", err)
	}

	return created, nil
}

// Update writes only the fields present in the input, inside a transaction so the
// transition guard sees the row being replaced.
func (s *CRUDService[E, C, U]) Update(ctx context.Context, id uuid.UUID, in U) (*E, error) {
	patch := in.Patch()

	var updated *E
	err := s.txManager.Execute(ctx, func(ctx context.Context) error {
		if s.guard != nil && len(patch) > 0 {
			current, err := s.repo.Get(ctx, id)
			if err != nil || current == nil {
				return err
			}
			if err := s.guard(current, patch); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.repo.Update(ctx, id, patch)

		return err
	})
	if err != nil {
		s.log(ctx).Warn("Update failed",
			slog.String("resource", s.resource),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)

		return nil, translateError(s.resource, "update", err)
	}
	if updated == nil {
		return nil, s.notFound()
	}

	return updated, nil
}

func (s *CRUDService[E, C, U]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, translateError(s.resource, "delete", err)
	}

	return deleted, nil
}
