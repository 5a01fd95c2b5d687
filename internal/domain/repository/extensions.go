package repository

import (
	"context"
	"time"

	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsRepository runs aggregate queries for reporting.
type AnalyticsRepository interface {
	// CountUsersByRole counts users with the named role created in [from, to).
	CountUsersByRole(ctx context.Context, role string, from, to time.Time) (int64, error)
	// CountDevices counts devices created in [from, to).
	CountDevices(ctx context.Context, from, to time.Time) (int64, error)
	// SumPayments sums payment values dated in [from, to).
	SumPayments(ctx context.Context, from, to time.Time) (float64, error)
}

// AccountTypeRepository adds country-aware lookups to the generic repository.
type AccountTypeRepository interface {
	Repository[entity.AccountType]

	// ListForCountry returns the country's account types plus every international one,
	// ordered by name, without duplicates.
	ListForCountry(ctx context.Context, countryID uuid.UUID, categories []entity.AccountCategory) ([]*entity.AccountType, error)

	// ReplaceCountries sets the account type's country list.
	ReplaceCountries(ctx context.Context, id uuid.UUID, countryIDs []uuid.UUID) error
}

// StoreContactRepository adds store lookups to the generic repository.
type StoreContactRepository interface {
	Repository[entity.StoreContact]

	// ListByStore returns a store's contacts, restricted to the given account type
	// categories when any are given.
	ListByStore(ctx context.Context, storeID uuid.UUID, categories []entity.AccountCategory) ([]*entity.StoreContact, error)
}

// CountryIDsKey is the patch key carrying an account type's full country list.
const CountryIDsKey = "country_ids"
