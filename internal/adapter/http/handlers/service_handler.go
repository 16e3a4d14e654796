package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "pagalotodo/internal/adapter/http/dto/request"
	response "pagalotodo/internal/adapter/http/dto/response"
	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/usecase"
	"pagalotodo/pkg"
)

var (
	errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
	errInvalidFieldsPayload  = pkg.NewDomainErrorSimple("INVALID_FIELD_TEMPLATE", "Invalid field template payload", http.StatusBadRequest)
	errInvalidDebtorsPayload = pkg.NewDomainErrorSimple("INVALID_DEBTORS_INPUT", "Invalid debtors payload", http.StatusBadRequest)
)

// ServiceHandler handles services, their report field templates and debtor rosters.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService godoc
// @Summary      Create service
// @Description  The new service gets a default "Id Pago" report column.
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      request.ServiceRequest  true  "Service"
// @Success      201   {object}  response.ServiceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[service][handler] create failed provider_id=%s err=%v", payload.ProviderID, err)
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(s))
}

// GetService godoc
// @Summary      Get service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  response.ServiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

// DeleteService godoc
// @Summary      Delete service
// @Tags         services
// @Param        id   path  string  true  "Service ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[service][handler] delete failed service_id=%s err=%v", id, err)
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceFieldTemplates godoc
// @Summary      Replace the report columns of a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Service ID"
// @Param        body  body      request.FieldTemplatesRequest  true  "Ordered field templates"
// @Success      200   {object}  response.ServiceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /services/{id}/fields [put]
func (h *ServiceHandler) ReplaceFieldTemplates(c *gin.Context) {
	id := c.Param("id")
	var payload request.FieldTemplatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFieldsPayload.HTTPStatus, errInvalidFieldsPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.ReplaceFieldTemplates(c.Request.Context(), id, payload.ToEntities())
	if err != nil {
		log.Printf("[service][handler] replace fields failed service_id=%s err=%v", id, err)
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

// GetFieldTemplates godoc
// @Summary      Get the report columns of a service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {array}   response.FieldTemplateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/fields [get]
func (h *ServiceHandler) GetFieldTemplates(c *gin.Context) {
	fields, err := h.usecase.GetFieldTemplates(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFieldTemplates(fields))
}

// AddDebtors godoc
// @Summary      Register debtors of a por_confirmacion service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Service ID"
// @Param        body  body      request.DebtorsRequest  true  "Identifiers"
// @Success      200   {array}   response.DebtorResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /services/{id}/debtors [post]
func (h *ServiceHandler) AddDebtors(c *gin.Context) {
	id := c.Param("id")
	var payload request.DebtorsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDebtorsPayload.HTTPStatus, errInvalidDebtorsPayload.ToHTTPError())
		return
	}

	debtors, err := h.usecase.AddDebtors(c.Request.Context(), id, payload.Identifiers)
	if err != nil {
		log.Printf("[service][handler] add debtors failed service_id=%s err=%v", id, err)
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDebtors(debtors))
}

// ListDebtors godoc
// @Summary      List debtors of a service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {array}   response.DebtorResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/debtors [get]
func (h *ServiceHandler) ListDebtors(c *gin.Context) {
	debtors, err := h.usecase.ListDebtors(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDebtors(debtors))
}

func mapServiceError(err error) *pkg.AppError {
	var cfgErr *conciliation.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		return pkg.NewDomainErrorSimple("INVALID_ATTR_REFERENCE", cfgErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServiceName), errors.Is(err, usecase.ErrInvalidProviderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceType):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_TYPE", "Service type must be por_confirmacion or directo", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFieldTemplate):
		return pkg.NewDomainErrorSimple("INVALID_FIELD_TEMPLATE", "Field templates need a name, an attr_reference and a non-negative length", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDebtorIdentifiers):
		return pkg.NewDomainErrorSimple("INVALID_DEBTORS_INPUT", "No valid debtor identifiers", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotConfirmable):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_CONFIRMABLE", "Service does not use a debtor roster", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceHasPayments):
		return pkg.NewDomainErrorSimple("SERVICE_HAS_PAYMENTS", "Service already has payments", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
