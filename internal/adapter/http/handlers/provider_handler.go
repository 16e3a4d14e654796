package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "pagalotodo/internal/adapter/http/dto/request"
	response "pagalotodo/internal/adapter/http/dto/response"
	"pagalotodo/internal/usecase"
	"pagalotodo/pkg"
)

var errInvalidProviderPayload = pkg.NewDomainErrorSimple("INVALID_PROVIDER_INPUT", "Invalid provider payload", http.StatusBadRequest)

// ProviderHandler handles HTTP requests for providers.

type ProviderHandler struct {
	usecase usecase.IProviderUseCase
}

func NewProviderHandler(uc usecase.IProviderUseCase) *ProviderHandler {
	return &ProviderHandler{usecase: uc}
}

// CreateProvider godoc
// @Summary      Create provider
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        body  body      request.ProviderRequest  true  "Provider"
// @Success      201   {object}  response.ProviderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /providers [post]
func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var payload request.ProviderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProviderPayload.HTTPStatus, errInvalidProviderPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Email)
	if err != nil {
		log.Printf("[provider][handler] create failed err=%v", err)
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProvider(p))
}

// ListProviders godoc
// @Summary      List providers
// @Tags         providers
// @Produce      json
// @Success      200  {array}  response.ProviderResponse
// @Router       /providers [get]
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	providers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProviders(providers))
}

// GetProvider godoc
// @Summary      Get provider
// @Tags         providers
// @Produce      json
// @Param        id   path      string  true  "Provider ID"
// @Success      200  {object}  response.ProviderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /providers/{id} [get]
func (h *ProviderHandler) GetProvider(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProvider(p))
}

// DeleteProvider godoc
// @Summary      Delete provider
// @Tags         providers
// @Param        id   path  string  true  "Provider ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /providers/{id} [delete]
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[provider][handler] delete failed provider_id=%s err=%v", id, err)
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProviderServices godoc
// @Summary      List the services of a provider
// @Tags         providers
// @Produce      json
// @Param        id   path      string  true  "Provider ID"
// @Success      200  {array}   response.ServiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /providers/{id}/services [get]
func (h *ProviderHandler) ListProviderServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func mapProviderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderID), errors.Is(err, usecase.ErrInvalidProviderName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProviderEmail):
		return pkg.NewDomainErrorSimple("INVALID_PROVIDER_EMAIL", "Invalid provider email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProviderHasServices):
		return pkg.NewDomainErrorSimple("PROVIDER_HAS_SERVICES", "Provider still has services", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
