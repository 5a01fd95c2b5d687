package postgres

import (
	"context"
	"testing"
	"time"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountTypeRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	countries := mustRepo(t, NewCountryRepository, f.db)
	accountTypes := mustRepo(t, NewAccountTypeRepository, f.db)

	peru, err := countries.Create(ctx, &entity.Country{Name: "Peru", Code: "PE", Prefix: "+51"})
	require.NoError(t, err)

	nequi, err := accountTypes.Create(ctx, &entity.AccountType{
		Name:       "Nequi",
		Category:   entity.CategoryMobilePayment,
		FormSchema: []entity.FormField{{Name: "phone", Label: "Phone", Type: entity.FieldTypeString, Required: true}},
		CountryIDs: []uuid.UUID{f.country.ID},
	})
	require.NoError(t, err)
	require.Len(t, nequi.Countries, 1)
	assert.Equal(t, []uuid.UUID{f.country.ID}, nequi.CountryIDs)
	assert.Equal(t, "phone", nequi.FormSchema[0].Name)

	yape, err := accountTypes.Create(ctx, &entity.AccountType{
		Name:       "Yape",
		Category:   entity.CategoryMobilePayment,
		CountryIDs: []uuid.UUID{peru.ID},
	})
	require.NoError(t, err)

	paypal, err := accountTypes.Create(ctx, &entity.AccountType{
		Name:            "PayPal",
		Category:        entity.CategoryPaymentGateway,
		IsInternational: true,
		CountryIDs:      []uuid.UUID{f.country.ID, peru.ID},
	})
	require.NoError(t, err)

	t.Run("lists national and international types once, by name", func(t *testing.T) {
		got, err := accountTypes.ListForCountry(ctx, f.country.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Nequi", "PayPal"}, lo.Map(got, func(a *entity.AccountType, _ int) string { return a.Name }))

		got, err = accountTypes.ListForCountry(ctx, peru.ID, []entity.AccountCategory{entity.CategoryMobilePayment})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, yape.ID, got[0].ID)
	})

	t.Run("rejects unknown countries", func(t *testing.T) {
		err := accountTypes.ReplaceCountries(ctx, nequi.ID, []uuid.UUID{peru.ID, uuid.New()})

		var rerr *repository.ReferenceNotFoundError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, "country", rerr.Relation)
	})

	t.Run("update replaces countries", func(t *testing.T) {
		got, err := accountTypes.Update(ctx, nequi.ID, repository.Patch{
			"description": "Colombian wallet",
			repository.CountryIDsKey: []uuid.UUID{peru.ID},
		})
		require.NoError(t, err)
		require.NotNil(t, got.Description)
		assert.Equal(t, "Colombian wallet", *got.Description)
		assert.Equal(t, []uuid.UUID{peru.ID}, got.CountryIDs)
	})

	t.Run("update form schema", func(t *testing.T) {
		got, err := accountTypes.Update(ctx, yape.ID, repository.Patch{
			"form_schema": []entity.FormField{{Name: "holder", Type: entity.FieldTypeString}},
		})
		require.NoError(t, err)
		require.Len(t, got.FormSchema, 1)
		assert.Equal(t, "holder", got.FormSchema[0].Name)
	})

	t.Run("delete drops country links", func(t *testing.T) {
		deleted, err := accountTypes.Delete(ctx, paypal.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		var links int64
		require.NoError(t, f.db.Table("account_type_country").Where("account_type_id = ?", paypal.ID).Count(&links).Error)
		assert.Zero(t, links)
	})
}

func TestStoreContactRepository_ListByStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	accountTypes := mustRepo(t, NewAccountTypeRepository, f.db)
	contacts := mustRepo(t, NewStoreContactRepository, f.db)

	bank, err := accountTypes.Create(ctx, &entity.AccountType{Name: "Bancolombia", Category: entity.CategoryBankAccount})
	require.NoError(t, err)
	wallet, err := accountTypes.Create(ctx, &entity.AccountType{Name: "Nequi", Category: entity.CategoryMobilePayment})
	require.NoError(t, err)

	bankContact, err := contacts.Create(ctx, &entity.StoreContact{
		StoreID:        f.stores[0].ID,
		AccountTypeID:  bank.ID,
		ContactDetails: map[string]any{"account": "123"},
	})
	require.NoError(t, err)
	require.NotNil(t, bankContact.AccountType)
	assert.Equal(t, "123", bankContact.ContactDetails["account"])

	_, err = contacts.Create(ctx, &entity.StoreContact{
		StoreID:        f.stores[0].ID,
		AccountTypeID:  wallet.ID,
		ContactDetails: map[string]any{"phone": "300"},
	})
	require.NoError(t, err)
	_, err = contacts.Create(ctx, &entity.StoreContact{
		StoreID:        f.stores[1].ID,
		AccountTypeID:  bank.ID,
		ContactDetails: map[string]any{"account": "999"},
	})
	require.NoError(t, err)

	all, err := contacts.ListByStore(ctx, f.stores[0].ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	banks, err := contacts.ListByStore(ctx, f.stores[0].ID, []entity.AccountCategory{entity.CategoryBankAccount})
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, bankContact.ID, banks[0].ID)
	require.NotNil(t, banks[0].AccountType)
	assert.Equal(t, "Bancolombia", banks[0].AccountType.Name)
}

func TestAnalyticsRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	analytics := NewAnalyticsRepository(f.db)
	plans := mustRepo(t, NewPlanRepository, f.db)
	payments := mustRepo(t, NewPaymentRepository, f.db)

	device := f.createDevice(t, f.createEnrolment(t, f.users["customer-0"], f.users["vendor-0"]), "555")
	plan, err := plans.Create(ctx, &entity.Plan{
		UserID:      f.users["customer-0"].ID,
		VendorID:    f.users["vendor-0"].ID,
		DeviceID:    &device.ID,
		InitialDate: time.Now(),
		Quotas:      12,
		Value:       1200,
		Contract:    "contract.pdf",
	})
	require.NoError(t, err)

	now := time.Now()
	for _, p := range []struct {
		value float64
		date  time.Time
	}{
		{value: 100.5, date: now},
		{value: 49.5, date: now.Add(-time.Hour)},
		{value: 1000, date: now.AddDate(0, 0, -10)},
	} {
		_, err := payments.Create(ctx, &entity.Payment{PlanID: plan.ID, Value: p.value, Method: "cash", Date: p.date, Reference: "ref"})
		require.NoError(t, err)
	}

	from, to := now.AddDate(0, 0, -1), now.Add(time.Minute)

	vendors, err := analytics.CountUsersByRole(ctx, "Vendedor", from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(4), vendors)

	customers, err := analytics.CountUsersByRole(ctx, "Cliente", from, to)
	require.NoError(t, err)
	assert.Zero(t, customers)

	devices, err := analytics.CountDevices(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(1), devices)

	total, err := analytics.SumPayments(ctx, from, to)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, total, 0.001)

	empty, err := analytics.SumPayments(ctx, now.AddDate(-1, 0, 0), now.AddDate(-1, 0, 1))
	require.NoError(t, err)
	assert.Zero(t, empty)
}
