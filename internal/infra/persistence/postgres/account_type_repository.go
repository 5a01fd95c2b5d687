package postgres

import (
	"context"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
	"smartpay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountTypeRepository struct {
	*gormRepository[entity.AccountType, model.AccountTypeModel, *model.AccountTypeModel]
	txManager repository.TransactionManager
}

// NewAccountTypeRepository creates the account type repository.
func NewAccountTypeRepository(db *gorm.DB) (repository.AccountTypeRepository, error) {
	base, err := newGormRepository[entity.AccountType, model.AccountTypeModel](db)
	if err != nil {
		return nil, err
	}

	return &accountTypeRepository{gormRepository: base, txManager: NewTransactionManager(db)}, nil
}

// Create inserts the account type and links its countries in one transaction.
func (repo *accountTypeRepository) Create(ctx context.Context, accountType *entity.AccountType) (*entity.AccountType, error) {
	var created *entity.AccountType
	err := repo.txManager.Execute(ctx, func(ctx context.Context) error {
		var err error
		if created, err = repo.gormRepository.Create(ctx, accountType); err != nil {
			return err
		}
		if len(accountType.CountryIDs) == 0 {
			return nil
		}
		if err = repo.ReplaceCountries(ctx, created.ID, accountType.CountryIDs); err != nil {
			return err
		}
		created, err = repo.gormRepository.Get(ctx, created.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update accepts repository.CountryIDsKey alongside regular columns.
func (repo *accountTypeRepository) Update(ctx context.Context, id uuid.UUID, patch repository.Patch) (*entity.AccountType, error) {
	raw, ok := patch[repository.CountryIDsKey]
	if !ok {
		return repo.gormRepository.Update(ctx, id, patch)
	}

	countryIDs, err := toUUIDs(raw)
	if err != nil {
		return nil, &repository.QueryError{Field: repository.CountryIDsKey, Reason: err.Error()}
	}

	var updated *entity.AccountType
	err = repo.txManager.Execute(ctx, func(ctx context.Context) error {
		var err error
		if updated, err = repo.gormRepository.Update(ctx, id, lo.OmitByKeys(patch, []string{repository.CountryIDsKey})); err != nil || updated == nil {
			return err
		}
		if err = repo.ReplaceCountries(ctx, id, countryIDs); err != nil {
			return err
		}
		updated, err = repo.gormRepository.Get(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the account type together with its country links.
func (repo *accountTypeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := conn(ctx, repo.db).Select("Countries").Delete(&model.AccountTypeModel{ID: id})
	if result.Error != nil {
		return false, errors.Wrap(translateError(result.Error), "failed to delete account type")
	}

	return result.RowsAffected > 0, nil
}

func (repo *accountTypeRepository) ListForCountry(ctx context.Context, countryID uuid.UUID, categories []entity.AccountCategory) ([]*entity.AccountType, error) {
	linked := conn(ctx, repo.db).
		Table("account_type_country").
		Select("1").
		Where("account_type_country.account_type_id = account_type.account_type_id").
		Where("account_type_country.country_id = ?", countryID)

	tx := conn(ctx, repo.db).
		Model(&model.AccountTypeModel{}).
		Where("account_type.is_international = ? OR EXISTS (?)", true, linked)
	if len(categories) > 0 {
		tx = tx.Where("account_type.category IN ?", lo.Map(categories, func(c entity.AccountCategory, _ int) string {
			return string(c)
		}))
	}

	var models []*model.AccountTypeModel
	if err := tx.Preload("Countries").Order("account_type.name ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list account types for country")
	}

	return lo.Map(models, func(m *model.AccountTypeModel, _ int) *entity.AccountType {
		return m.ToEntity()
	}), nil
}

// ReplaceCountries verifies every country exists, then swaps the link rows.
func (repo *accountTypeRepository) ReplaceCountries(ctx context.Context, id uuid.UUID, countryIDs []uuid.UUID) error {
	db := conn(ctx, repo.db)
	ids := lo.Uniq(countryIDs)

	var countries []*model.CountryModel
	if len(ids) > 0 {
		if err := db.Where(clause.IN{Column: clause.Column{Name: "country_id"}, Values: lo.ToAnySlice(ids)}).Find(&countries).Error; err != nil {
			return errors.Wrap(err, "failed to find countries")
		}
		if len(countries) != len(ids) {
			found := lo.Map(countries, func(c *model.CountryModel, _ int) uuid.UUID { return c.ID })
			missing, _ := lo.Difference(ids, found)

			return &repository.ReferenceNotFoundError{Relation: "country", Column: "country_id", Value: missing[0]}
		}
	}

	association := db.Model(&model.AccountTypeModel{ID: id}).Association("Countries")
	if len(countries) == 0 {
		if err := association.Clear(); err != nil {
			return errors.Wrap(err, "failed to clear account type countries")
		}

		return nil
	}
	if err := association.Replace(countries); err != nil {
		return errors.Wrap(translateError(err), "failed to replace account type countries")
	}

	return nil
}

func toUUIDs(raw any) ([]uuid.UUID, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []uuid.UUID:
		return v, nil
	case []string:
		ids := make([]uuid.UUID, 0, len(v))
		for _, s := range v {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}

		return ids, nil
	default:
		return nil, errors.Errorf("unsupported country id list %T", raw)
	}
}
