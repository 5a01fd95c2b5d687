// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"smartpay/internal/delivery/api/router/handler"
	"smartpay/internal/domain/entity"
	"smartpay/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CountryUC                usecase.CountryUsecase
	RegionUC                 usecase.RegionUsecase
	CityUC                   usecase.CityUsecase
	RoleUC                   usecase.RoleUsecase
	StoreUC                  usecase.StoreUsecase
	UserUC                   usecase.UserUsecase
	EnrolmentUC              usecase.EnrolmentUsecase
	DeviceUC                 usecase.DeviceUsecase
	TelevisionUC             usecase.TelevisionUsecase
	PlanUC                   usecase.PlanUsecase
	PaymentUC                usecase.PaymentUsecase
	SimUC                    usecase.SimUsecase
	ActionUC                 usecase.ActionUsecase
	FactoryResetProtectionUC usecase.FactoryResetProtectionUsecase
	ConfigurationUC          usecase.ConfigurationUsecase
	AccountTypeUC            usecase.AccountTypeUsecase
	StoreContactUC           usecase.StoreContactUsecase
	AnalyticsHandler         *handler.AnalyticsHandler
}

// resourceRoutes mounts one resource's endpoints on its group.
type resourceRoutes interface {
	Register(g *echo.Group)
}

type storeRoutes interface {
	ListByStore(c echo.Context) error
	CountByStore(c echo.Context) error
}

// router holds all the handlers that need to be registered.
type router struct {
	resources map[string]resourceRoutes
	// storeScoped lists the resources reachable from a store, served under
	// /stores/:id/<resource>.
	storeScoped map[string]storeRoutes

	storeContactHandler *handler.StoreContactHandler
	analyticsHandler    *handler.AnalyticsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required usecases here.
func NewRouter(params RouterParams) *router {
	users := handler.NewCRUDHandler[entity.User, usecase.UserCreate, usecase.UserUpdate]("User", params.UserUC)
	enrolments := handler.NewEnrolmentHandler(params.EnrolmentUC)
	devices := handler.NewCRUDHandler[entity.Device, usecase.DeviceCreate, usecase.DeviceUpdate]("Device", params.DeviceUC)
	televisions := handler.NewCRUDHandler[entity.Television, usecase.TelevisionCreate, usecase.TelevisionUpdate]("Television", params.TelevisionUC)
	plans := handler.NewCRUDHandler[entity.Plan, usecase.PlanCreate, usecase.PlanUpdate]("Plan", params.PlanUC)
	payments := handler.NewCRUDHandler[entity.Payment, usecase.PaymentCreate, usecase.PaymentUpdate]("Payment", params.PaymentUC)
	sims := handler.NewSimHandler(params.SimUC)
	actions := handler.NewCRUDHandler[entity.Action, usecase.ActionCreate, usecase.ActionUpdate]("Action", params.ActionUC)
	storeContacts := handler.NewStoreContactHandler(params.StoreContactUC)
	configurations := handler.NewCRUDHandler[entity.Configuration, usecase.ConfigurationCreate, usecase.ConfigurationUpdate](
		"Configuration", params.ConfigurationUC,
	)

	return &router{
		resources: map[string]resourceRoutes{
			"/countries":                 handler.NewCRUDHandler[entity.Country, usecase.CountryCreate, usecase.CountryUpdate]("Country", params.CountryUC),
			"/regions":                   handler.NewCRUDHandler[entity.Region, usecase.RegionCreate, usecase.RegionUpdate]("Region", params.RegionUC),
			"/cities":                    handler.NewCRUDHandler[entity.City, usecase.CityCreate, usecase.CityUpdate]("City", params.CityUC),
			"/roles":                     handler.NewCRUDHandler[entity.Role, usecase.RoleCreate, usecase.RoleUpdate]("Role", params.RoleUC),
			"/stores":                    handler.NewCRUDHandler[entity.Store, usecase.StoreCreate, usecase.StoreUpdate]("Store", params.StoreUC),
			"/users":                     users,
			"/enrolments":                enrolments,
			"/devices":                   devices,
			"/televisions":               televisions,
			"/plans":                     plans,
			"/payments":                  payments,
			"/sims":                      sims,
			"/actions":                   actions,
			"/configurations":            configurations,
			"/factory-reset-protections": handler.NewFactoryResetProtectionHandler(params.FactoryResetProtectionUC),
			"/account-types":             handler.NewAccountTypeHandler(params.AccountTypeUC),
			"/store-contacts":            storeContacts,
		},
		storeScoped: map[string]storeRoutes{
			"users":       users,
			"enrolments":  enrolments,
			"devices":     devices,
			"televisions": televisions,
			"plans":       plans,
			"payments":    payments,
			"sims":        sims,
			"actions":     actions,
		},
		storeContactHandler: storeContacts,
		analyticsHandler:    params.AnalyticsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	for prefix, resource := range r.resources {
		resource.Register(e.Group(prefix))
	}

	storesGroup := e.Group("/stores/:id")
	{
		for resource, h := range r.storeScoped {
			storesGroup.GET("/"+resource, h.ListByStore)
			storesGroup.GET("/"+resource+"/count", h.CountByStore)
		}
		storesGroup.GET("/contacts", r.storeContactHandler.ListByStore)
	}

	analyticsGroup := e.Group("/analytics")
	{
		analyticsGroup.GET("/date-range", r.analyticsHandler.DateRange)
	}
}
