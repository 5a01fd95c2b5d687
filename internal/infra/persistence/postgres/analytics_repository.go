package postgres

import (
	"context"
	"time"

	"smartpay/internal/domain/repository"
	"smartpay/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates the reporting repository. Its queries go to the read
// replicas when any are configured.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (repo *analyticsRepository) read(ctx context.Context) *gorm.DB {
	return conn(ctx, repo.db).Clauses(dbresolver.Read)
}

func between(table, column string, from, to time.Time) []clause.Expression {
	col := clause.Column{Table: table, Name: column}

	return []clause.Expression{
		clause.Gte{Column: col, Value: from},
		clause.Lt{Column: col, Value: to},
	}
}

func (repo *analyticsRepository) CountUsersByRole(ctx context.Context, role string, from, to time.Time) (int64, error) {
	users := model.UserModel{}.TableName()
	roles := model.RoleModel{}.TableName()

	var count int64
	err := repo.read(ctx).
		Model(&model.UserModel{}).
		Joins("JOIN ? ON ? = ?",
			clause.Table{Name: roles},
			clause.Column{Table: roles, Name: "role_id"},
			clause.Column{Table: users, Name: "role_id"}).
		Where(clause.Eq{Column: clause.Column{Table: roles, Name: "name"}, Value: role}).
		Where(clause.And(between(users, "created_at", from, to)...)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count users with role %s", role)
	}

	return count, nil
}

func (repo *analyticsRepository) CountDevices(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := repo.read(ctx).
		Model(&model.DeviceModel{}).
		Where(clause.And(between(model.DeviceModel{}.TableName(), "created_at", from, to)...)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count devices")
	}

	return count, nil
}

func (repo *analyticsRepository) SumPayments(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := repo.read(ctx).
		Model(&model.PaymentModel{}).
		Select("COALESCE(SUM(value), 0)").
		Where(clause.And(between(model.PaymentModel{}.TableName(), "date", from, to)...)).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum payments")
	}

	return total, nil
}
