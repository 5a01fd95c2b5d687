package postgres

import (
	"context"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
	"smartpay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm/clause"
)

type storeContactRepository struct {
	*gormRepository[entity.StoreContact, model.StoreContactModel, *model.StoreContactModel]
}

func (repo *storeContactRepository) ListByStore(ctx context.Context, storeID uuid.UUID, categories []entity.AccountCategory) ([]*entity.StoreContact, error) {
	filters := repository.Filters{"store_id": storeID}
	if len(categories) > 0 {
		filters["account_type__category__in"] = lo.Map(categories, func(c entity.AccountCategory, _ int) string {
			return string(c)
		})
	}

	qb := newQueryBuilder(conn(ctx, repo.db).Model(&model.StoreContactModel{}), repo.schema, repo.namer)
	if err := qb.applyFilters(filters); err != nil {
		return nil, err
	}

	var models []*model.StoreContactModel
	err := qb.tx.
		Preload("AccountType").
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "created_at"}, Desc: true}).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store contacts")
	}

	return lo.Map(models, func(m *model.StoreContactModel, _ int) *entity.StoreContact {
		return m.ToEntity()
	}), nil
}
