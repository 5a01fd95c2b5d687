package handler

import (
	"net/http"

	"smartpay/internal/delivery/api/response"
	"smartpay/internal/domain/entity"
	"smartpay/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EnrolmentHandler adds the provisioning QR code to the CRUD endpoints.
type EnrolmentHandler struct {
	*CRUDHandler[entity.Enrolment, usecase.EnrolmentCreate, usecase.EnrolmentUpdate]
	uc usecase.EnrolmentUsecase
}

func NewEnrolmentHandler(uc usecase.EnrolmentUsecase) *EnrolmentHandler {
	return &EnrolmentHandler{
		CRUDHandler: NewCRUDHandler[entity.Enrolment, usecase.EnrolmentCreate, usecase.EnrolmentUpdate]("Enrolment", uc),
		uc:          uc,
	}
}

func (h *EnrolmentHandler) Register(g *echo.Group) {
	h.CRUDHandler.Register(g)
	g.GET("/:id/qrcode", h.QRCode)
}

// QRCode serves the enrolment's provisioning QR code as a PNG.
func (h *EnrolmentHandler) QRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.QRCode(h.requestContext(c), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// SimHandler adds device and number lookups to the CRUD endpoints.
type SimHandler struct {
	*CRUDHandler[entity.Sim, usecase.SimCreate, usecase.SimUpdate]
	uc usecase.SimUsecase
}

func NewSimHandler(uc usecase.SimUsecase) *SimHandler {
	return &SimHandler{
		CRUDHandler: NewCRUDHandler[entity.Sim, usecase.SimCreate, usecase.SimUpdate]("Sim", uc),
		uc:          uc,
	}
}

func (h *SimHandler) Register(g *echo.Group) {
	h.CRUDHandler.Register(g)
	g.GET("/by-device/:device_id", h.ListByDevice)
	g.GET("/number/:number", h.GetByNumber)
}

func (h *SimHandler) ListByDevice(c echo.Context) error {
	deviceID, err := pathID(c, "device_id")
	if err != nil {
		return err
	}

	sims, err := h.uc.ListByDevice(h.requestContext(c), deviceID)
	if err != nil {
		return err
	}

	return response.OK(c, sims)
}

func (h *SimHandler) GetByNumber(c echo.Context) error {
	sim, err := h.uc.GetByNumber(h.requestContext(c), c.Param("number"))
	if err != nil {
		return err
	}

	return response.OK(c, sim)
}

// FactoryResetProtectionHandler adds the Google account lookup to the CRUD endpoints.
type FactoryResetProtectionHandler struct {
	*CRUDHandler[entity.FactoryResetProtection, usecase.FactoryResetProtectionCreate, usecase.FactoryResetProtectionUpdate]
	uc usecase.FactoryResetProtectionUsecase
}

func NewFactoryResetProtectionHandler(uc usecase.FactoryResetProtectionUsecase) *FactoryResetProtectionHandler {
	return &FactoryResetProtectionHandler{
		CRUDHandler: NewCRUDHandler[entity.FactoryResetProtection, usecase.FactoryResetProtectionCreate, usecase.FactoryResetProtectionUpdate](
			"Factory reset protection", uc,
		),
		uc: uc,
	}
}

func (h *FactoryResetProtectionHandler) Register(g *echo.Group) {
	h.CRUDHandler.Register(g)
	g.GET("/account/:account_id", h.GetByAccount)
}

func (h *FactoryResetProtectionHandler) GetByAccount(c echo.Context) error {
	frp, err := h.uc.GetByAccount(h.requestContext(c), c.Param("account_id"))
	if err != nil {
		return err
	}

	return response.OK(c, frp)
}
