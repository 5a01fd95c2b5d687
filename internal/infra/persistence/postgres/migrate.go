package postgres

import (
	"context"
	"log/slog"

	"smartpay/config"
	"smartpay/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// MigrateParams defines the dependencies of Migrate.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// Migrate registers a start hook that creates the schema when migration.auto is set.
func Migrate(params MigrateParams) {
	if !params.Config.Migration.Auto {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := AutoMigrate(params.DB.WithContext(ctx)); err != nil {
				return err
			}
			params.Logger.Info("Database schema migrated", slog.Int("models", len(model.All())))

			return nil
		},
	})
}

// AutoMigrate creates every table. Stores and users reference each other, so on
// postgres tables are created without foreign keys first and the constraints are added
// afterwards. SQLite accepts forward references and migrates in one pass.
func AutoMigrate(db *gorm.DB) error {
	models := model.All()
	if db.Dialector.Name() == "sqlite" {
		return errors.Wrap(db.AutoMigrate(models...), "failed to migrate tables")
	}

	db.Config.DisableForeignKeyConstraintWhenMigrating = true
	err := db.AutoMigrate(models...)
	db.Config.DisableForeignKeyConstraintWhenMigrating = false
	if err != nil {
		return errors.Wrap(err, "failed to migrate tables")
	}

	migrator := db.Migrator()
	for _, value := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(value); err != nil {
			return errors.Wrap(err, "failed to parse model schema")
		}

		for _, rel := range stmt.Schema.Relationships.Relations {
			constraint := rel.ParseConstraint()
			if constraint == nil || (constraint.Schema != stmt.Schema && rel.JoinTable == nil) {
				continue
			}
			if migrator.HasConstraint(value, constraint.Name) {
				continue
			}
			if err := migrator.CreateConstraint(value, constraint.Name); err != nil {
				return errors.Wrapf(err, "failed to create constraint %s", constraint.Name)
			}
		}
	}

	return nil
}
