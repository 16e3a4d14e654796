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

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	errInvalidDateRange      = pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "from/to must be RFC3339 and from must not be after to", http.StatusBadRequest)
)

// PaymentHandler handles payment submission, lookup and administrative
// status changes.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Submit payment
// @Description  Payments to por_confirmacion services must carry the identifier of an unsettled debtor.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.PaymentRequest  true  "Payment"
// @Success      201   {object}  response.PaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start service_id=%s consumer_id=%s", payload.ServiceID, payload.ConsumerID)

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity(), payload.Payload())
	if err != nil {
		log.Printf("[payment][handler] create failed service_id=%s err=%v", payload.ServiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s", created.ID)
	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetPayment godoc
// @Summary      Get payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListServicePayments godoc
// @Summary      List payments of a service
// @Tags         payments
// @Produce      json
// @Param        service_id  path      string  true   "Service ID"
// @Param        from        query     string  false  "RFC3339 lower bound (inclusive)"
// @Param        to          query     string  false  "RFC3339 upper bound (inclusive)"
// @Success      200         {array}   response.PaymentResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/services/{service_id} [get]
func (h *PaymentHandler) ListServicePayments(c *gin.Context) {
	serviceID := c.Param("service_id")
	from, to, err := request.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(errInvalidDateRange.HTTPStatus, errInvalidDateRange.ToHTTPError())
		return
	}

	payments, err := h.usecase.ListByServiceID(c.Request.Context(), serviceID, from, to)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// UpdatePaymentStatus godoc
// @Summary      Confirm or reject a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Payment ID"
// @Param        body  body      request.PaymentStatusRequest  true  "Status"
// @Success      200   {object}  response.PaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /payments/{id}/status [patch]
func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.PaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.ToStatus())
	if err != nil {
		log.Printf("[payment][handler] status update failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(updated))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidConsumerID),
		errors.Is(err, usecase.ErrInvalidPaymentDetail), errors.Is(err, usecase.ErrInvalidGatewayPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_AMOUNT", "Amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentIdentifier):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_IDENTIFIER", "This service requires a debtor identifier", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_STATUS", "Status must be pending, confirmed or rejected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConsumerNotFound):
		return pkg.NewDomainErrorSimple("CONSUMER_NOT_FOUND", "Consumer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDebtorNotAvailable):
		return pkg.NewDomainErrorSimple("DEBTOR_NOT_AVAILABLE", "No pending debt for this identifier", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
