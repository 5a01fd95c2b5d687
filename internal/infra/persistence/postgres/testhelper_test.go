package postgres

import (
	"context"
	"fmt"
	"testing"

	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))

	return db
}

// fixture builds a small tenant graph: two stores in one country, each with a vendor
// and a customer.
type fixture struct {
	db      *gorm.DB
	country *entity.Country
	city    *entity.City
	role    *entity.Role
	stores  []*entity.Store
	users   map[string]*entity.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)
	f := &fixture{db: db, users: map[string]*entity.User{}}

	countries := mustRepo(t, NewCountryRepository, db)
	regions := mustRepo(t, NewRegionRepository, db)
	cities := mustRepo(t, NewCityRepository, db)
	roles := mustRepo(t, NewRoleRepository, db)
	stores := mustRepo(t, NewStoreRepository, db)

	var err error
	f.country, err = countries.Create(ctx, &entity.Country{Name: "Colombia", Code: "CO", Prefix: "+57"})
	require.NoError(t, err)
	region, err := regions.Create(ctx, &entity.Region{Name: "Antioquia", CountryID: f.country.ID})
	require.NoError(t, err)
	f.city, err = cities.Create(ctx, &entity.City{Name: "Medellin", RegionID: region.ID})
	require.NoError(t, err)
	f.role, err = roles.Create(ctx, &entity.Role{Name: "Vendedor"})
	require.NoError(t, err)

	for _, name := range []string{"north", "south"} {
		store, err := stores.Create(ctx, &entity.Store{Name: name, CountryID: f.country.ID, Plan: "basic"})
		require.NoError(t, err)
		f.stores = append(f.stores, store)
	}

	for i, store := range f.stores {
		for _, kind := range []string{"vendor", "customer"} {
			key := fmt.Sprintf("%s-%d", kind, i)
			f.users[key] = f.createUser(t, key, &store.ID)
		}
	}

	return f
}

func (f *fixture) createUser(t *testing.T, key string, storeID *uuid.UUID) *entity.User {
	t.Helper()

	users := mustRepo(t, NewUserRepository, f.db)
	user, err := users.Create(context.Background(), &entity.User{
		CityID:    f.city.ID,
		RoleID:    f.role.ID,
		StoreID:   storeID,
		DNI:       "dni-" + key,
		FirstName: "Ana",
		LastName:  key,
		Email:     key + "@example.com",
		Prefix:    "+57",
		Phone:     "3000000000",
		Address:   "Calle 1",
	})
	require.NoError(t, err)

	return user
}

func (f *fixture) createEnrolment(t *testing.T, user, vendor *entity.User) *entity.Enrolment {
	t.Helper()

	enrolments := mustRepo(t, NewEnrolmentRepository, f.db)
	enrolment, err := enrolments.Create(context.Background(), &entity.Enrolment{UserID: user.ID, VendorID: vendor.ID})
	require.NoError(t, err)

	return enrolment
}

func (f *fixture) createDevice(t *testing.T, enrolment *entity.Enrolment, imei string) *entity.Device {
	t.Helper()

	devices := mustRepo(t, NewDeviceRepository, f.db)
	device, err := devices.Create(context.Background(), &entity.Device{
		EnrolmentID:  enrolment.ID,
		Name:         "phone " + imei,
		IMEI:         imei,
		SerialNumber: "sn-" + imei,
		Model:        "A14",
		Brand:        "Samsung",
		ProductName:  "Galaxy",
	})
	require.NoError(t, err)

	return device
}

func mustRepo[R any](t *testing.T, ctor func(*gorm.DB) (R, error), db *gorm.DB) R {
	t.Helper()

	repo, err := ctor(db)
	require.NoError(t, err)

	return repo
}
