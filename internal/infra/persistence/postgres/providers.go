package postgres

import (
	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
	"smartpay/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module provides the connection, the transaction manager and every repository.
var Module = fx.Module("persistence",
	fx.Provide(
		New,
		NewTransactionManager,
		NewCountryRepository,
		NewRegionRepository,
		NewCityRepository,
		NewRoleRepository,
		NewStoreRepository,
		NewUserRepository,
		NewConfigurationRepository,
		NewEnrolmentRepository,
		NewDeviceRepository,
		NewTelevisionRepository,
		NewSimRepository,
		NewPlanRepository,
		NewPaymentRepository,
		NewActionRepository,
		NewFactoryResetProtectionRepository,
		NewAccountTypeRepository,
		NewStoreContactRepository,
		NewAnalyticsRepository,
	),
	fx.Invoke(Migrate),
)

func NewCountryRepository(db *gorm.DB) (repository.Repository[entity.Country], error) {
	return NewRepository[entity.Country, model.CountryModel](db)
}

func NewRegionRepository(db *gorm.DB) (repository.Repository[entity.Region], error) {
	return NewRepository[entity.Region, model.RegionModel](db)
}

func NewCityRepository(db *gorm.DB) (repository.Repository[entity.City], error) {
	return NewRepository[entity.City, model.CityModel](db)
}

func NewRoleRepository(db *gorm.DB) (repository.Repository[entity.Role], error) {
	return NewRepository[entity.Role, model.RoleModel](db)
}

func NewStoreRepository(db *gorm.DB) (repository.Repository[entity.Store], error) {
	return NewRepository[entity.Store, model.StoreModel](db)
}

func NewUserRepository(db *gorm.DB) (repository.Repository[entity.User], error) {
	return NewRepository[entity.User, model.UserModel](db)
}

func NewConfigurationRepository(db *gorm.DB) (repository.Repository[entity.Configuration], error) {
	return NewRepository[entity.Configuration, model.ConfigurationModel](db)
}

func NewEnrolmentRepository(db *gorm.DB) (repository.Repository[entity.Enrolment], error) {
	return NewRepository[entity.Enrolment, model.EnrolmentModel](db)
}

func NewDeviceRepository(db *gorm.DB) (repository.Repository[entity.Device], error) {
	return NewRepository[entity.Device, model.DeviceModel](db)
}

func NewTelevisionRepository(db *gorm.DB) (repository.Repository[entity.Television], error) {
	return NewRepository[entity.Television, model.TelevisionModel](db)
}

func NewSimRepository(db *gorm.DB) (repository.Repository[entity.Sim], error) {
	return NewRepository[entity.Sim, model.SimModel](db)
}

func NewPlanRepository(db *gorm.DB) (repository.Repository[entity.Plan], error) {
	return NewRepository[entity.Plan, model.PlanModel](db)
}

func NewPaymentRepository(db *gorm.DB) (repository.Repository[entity.Payment], error) {
	return NewRepository[entity.Payment, model.PaymentModel](db)
}

func NewActionRepository(db *gorm.DB) (repository.Repository[entity.Action], error) {
	return NewRepository[entity.Action, model.ActionModel](db)
}

func NewFactoryResetProtectionRepository(db *gorm.DB) (repository.Repository[entity.FactoryResetProtection], error) {
	return NewRepository[entity.FactoryResetProtection, model.FactoryResetProtectionModel](db)
}

func NewStoreContactRepository(db *gorm.DB) (repository.StoreContactRepository, error) {
	base, err := newGormRepository[entity.StoreContact, model.StoreContactModel](db)
	if err != nil {
		return nil, err
	}

	return &storeContactRepository{gormRepository: base}, nil
}
