package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	response "pagalotodo/internal/adapter/http/dto/response"
	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/usecase"
	"pagalotodo/pkg"
)

// AccountingCloseHandler exposes the administrative accounting close.

type AccountingCloseHandler struct {
	usecase usecase.IAccountingCloseUseCase
}

func NewAccountingCloseHandler(uc usecase.IAccountingCloseUseCase) *AccountingCloseHandler {
	return &AccountingCloseHandler{usecase: uc}
}

// RunAccountingClose godoc
// @Summary      Run the accounting close
// @Description  Emails every provider the balance sheets of payments pending since the last close and records a new close.
// @Tags         admin
// @Produce      plain
// @Success      200  {string}  string  "Se emitieron 2 archivos a 1 prestadores. Errores: 0"
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /admin/accounting-close [get]
func (h *AccountingCloseHandler) RunAccountingClose(c *gin.Context) {
	log.Printf("[close][handler] run start")
	summary, err := h.usecase.Execute(c.Request.Context())
	if err != nil {
		log.Printf("[close][handler] run failed err=%v", err)
		appErr := mapAccountingCloseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[close][handler] run success files=%d providers=%d errors=%d", summary.Files, summary.Providers, summary.Errors)
	c.String(http.StatusOK, summary.Message())
}

// GetLastAccountingClose godoc
// @Summary      Last recorded accounting close
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.AccountingCloseResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/accounting-close/last [get]
func (h *AccountingCloseHandler) GetLastAccountingClose(c *gin.Context) {
	last, err := h.usecase.Last(c.Request.Context())
	if err != nil {
		appErr := mapAccountingCloseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAccountingClose(last))
}

func mapAccountingCloseError(err error) *pkg.AppError {
	var cfgErr *conciliation.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		return pkg.NewDomainError("INVALID_FIELD_TEMPLATE", cfgErr.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCloseInProgress):
		return pkg.NewDomainErrorSimple("CLOSE_IN_PROGRESS", "An accounting close is already running", http.StatusConflict)
	case errors.Is(err, usecase.ErrAccountingCloseNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNTING_CLOSE_NOT_FOUND", "No accounting close recorded", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
