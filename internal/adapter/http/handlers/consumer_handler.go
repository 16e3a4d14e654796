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

var errInvalidConsumerPayload = pkg.NewDomainErrorSimple("INVALID_CONSUMER_INPUT", "Invalid consumer payload", http.StatusBadRequest)

type ConsumerHandler struct {
	usecase usecase.IConsumerUseCase
}

func NewConsumerHandler(uc usecase.IConsumerUseCase) *ConsumerHandler {
	return &ConsumerHandler{usecase: uc}
}

// CreateConsumer godoc
// @Summary      Register consumer
// @Tags         consumers
// @Accept       json
// @Produce      json
// @Param        body  body      request.ConsumerRequest  true  "Consumer"
// @Success      201   {object}  response.ConsumerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /consumers [post]
func (h *ConsumerHandler) CreateConsumer(c *gin.Context) {
	var payload request.ConsumerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConsumerPayload.HTTPStatus, errInvalidConsumerPayload.ToHTTPError())
		return
	}

	consumer, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[consumer][handler] create failed err=%v", err)
		appErr := mapConsumerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromConsumer(consumer))
}

// GetConsumer godoc
// @Summary      Get consumer
// @Tags         consumers
// @Produce      json
// @Param        id   path      string  true  "Consumer ID"
// @Success      200  {object}  response.ConsumerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /consumers/{id} [get]
func (h *ConsumerHandler) GetConsumer(c *gin.Context) {
	consumer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapConsumerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConsumer(consumer))
}

func mapConsumerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConsumerID), errors.Is(err, usecase.ErrInvalidConsumerName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidConsumerEmail):
		return pkg.NewDomainErrorSimple("INVALID_CONSUMER_EMAIL", "Invalid consumer email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConsumerNotFound):
		return pkg.NewDomainErrorSimple("CONSUMER_NOT_FOUND", "Consumer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
