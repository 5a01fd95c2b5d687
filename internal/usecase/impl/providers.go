package impl

import (
	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
	"smartpay/internal/usecase"

	"go.uber.org/fx"
)

// Module provides every usecase.
var Module = fx.Module("usecase",
	fx.Provide(
		NewCountryService,
		NewRegionService,
		NewCityService,
		NewRoleService,
		NewStoreService,
		NewUserService,
		NewDeviceService,
		NewTelevisionService,
		NewPlanService,
		NewPaymentService,
		NewConfigurationService,
		NewSimService,
		NewFactoryResetProtectionService,
		NewEnrolmentService,
		NewActionService,
		NewAccountTypeService,
		NewStoreContactService,
		NewAnalyticsService,
	),
)

func NewCountryService(params CRUDParams, repo repository.Repository[entity.Country]) usecase.CountryUsecase {
	return NewCRUDService[entity.Country, usecase.CountryCreate, usecase.CountryUpdate](params, repo, "Country")
}

func NewRegionService(params CRUDParams, repo repository.Repository[entity.Region]) usecase.RegionUsecase {
	return NewCRUDService[entity.Region, usecase.RegionCreate, usecase.RegionUpdate](params, repo, "Region")
}

func NewCityService(params CRUDParams, repo repository.Repository[entity.City]) usecase.CityUsecase {
	return NewCRUDService[entity.City, usecase.CityCreate, usecase.CityUpdate](params, repo, "City")
}

func NewRoleService(params CRUDParams, repo repository.Repository[entity.Role]) usecase.RoleUsecase {
	return NewCRUDService[entity.Role, usecase.RoleCreate, usecase.RoleUpdate](params, repo, "Role")
}

func NewStoreService(params CRUDParams, repo repository.Repository[entity.Store]) usecase.StoreUsecase {
	return NewCRUDService[entity.Store, usecase.StoreCreate, usecase.StoreUpdate](params, repo, "Store")
}

func NewUserService(params CRUDParams, repo repository.Repository[entity.User]) usecase.UserUsecase {
	return NewCRUDService[entity.User, usecase.UserCreate, usecase.UserUpdate](params, repo, "User")
}

func NewDeviceService(params CRUDParams, repo repository.Repository[entity.Device]) usecase.DeviceUsecase {
	return NewCRUDService[entity.Device, usecase.DeviceCreate, usecase.DeviceUpdate](params, repo, "Device")
}

func NewTelevisionService(params CRUDParams, repo repository.Repository[entity.Television]) usecase.TelevisionUsecase {
	return NewCRUDService[entity.Television, usecase.TelevisionCreate, usecase.TelevisionUpdate](params, repo, "Television")
}

func NewPlanService(params CRUDParams, repo repository.Repository[entity.Plan]) usecase.PlanUsecase {
	return NewCRUDService[entity.Plan, usecase.PlanCreate, usecase.PlanUpdate](params, repo, "Plan")
}

// NewPaymentService guards payment state changes.
func NewPaymentService(params CRUDParams, repo repository.Repository[entity.Payment]) usecase.PaymentUsecase {
	return NewCRUDService[entity.Payment, usecase.PaymentCreate, usecase.PaymentUpdate](params, repo, "Payment").
		WithTransitionGuard(paymentTransitionGuard)
}

func NewConfigurationService(params CRUDParams, repo repository.Repository[entity.Configuration]) usecase.ConfigurationUsecase {
	return NewCRUDService[entity.Configuration, usecase.ConfigurationCreate, usecase.ConfigurationUpdate](params, repo, "Configuration")
}
