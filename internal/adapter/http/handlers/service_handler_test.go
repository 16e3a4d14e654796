package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"pagalotodo/internal/adapter/http/handlers/mocks"
	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase"
)

func newServiceRouter(uc usecase.IServiceUseCase) *gin.Engine {
	h := NewServiceHandler(uc)
	r := gin.New()
	r.POST("/v1/services", h.CreateService)
	r.GET("/v1/services/:id", h.GetService)
	r.DELETE("/v1/services/:id", h.DeleteService)
	r.PUT("/v1/services/:id/fields", h.ReplaceFieldTemplates)
	r.GET("/v1/services/:id/fields", h.GetFieldTemplates)
	r.POST("/v1/services/:id/debtors", h.AddDebtors)
	r.GET("/v1/services/:id/debtors", h.ListDebtors)
	return r
}

func TestServiceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create provider not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := newServiceRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrProviderNotFound)
		w := perform(r, http.MethodPost, "/v1/services", `{"provider_id":"p-1","name":"Agua"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := newServiceRouter(uc)

		uc.EXPECT().Create(gomock.Any(), entities.Service{ProviderID: "p-1", Name: "Agua", ServiceType: entities.ServiceTypePorConfirmacion}).
			Return(entities.Service{ID: "s-1", ProviderID: "p-1", Name: "Agua"}, nil)
		w := perform(r, http.MethodPost, "/v1/services", `{"provider_id":"p-1","name":"Agua","service_type":"por_confirmacion"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("replace fields with unknown reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := newServiceRouter(uc)

		cfgErr := &conciliation.ConfigurationError{Field: "Total", Reference: "payment.total", Reason: "unknown payment property"}
		uc.EXPECT().ReplaceFieldTemplates(gomock.Any(), "s-1", gomock.Any()).Return(entities.Service{}, cfgErr)
		w := perform(r, http.MethodPut, "/v1/services/s-1/fields", `{"fields":[{"name":"Total","attr_reference":"payment.total"}]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("replace fields invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newServiceRouter(mocks.NewMockIServiceUseCase(ctrl))

		w := perform(r, http.MethodPut, "/v1/services/s-1/fields", `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("replace fields success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := newServiceRouter(uc)

		uc.EXPECT().ReplaceFieldTemplates(gomock.Any(), "s-1", []entities.FieldTemplate{{Name: "Cedula", AttrReference: "paymentdetail.cedula"}}).
			Return(entities.Service{ID: "s-1"}, nil)
		w := perform(r, http.MethodPut, "/v1/services/s-1/fields", `{"fields":[{"name":"Cedula","attr_reference":"paymentdetail.cedula"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("debtors on directo service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := newServiceRouter(uc)

		uc.EXPECT().AddDebtors(gomock.Any(), "s-1", []string{"A"}).Return(nil, usecase.ErrServiceNotConfirmable)
		w := perform(r, http.MethodPost, "/v1/services/s-1/debtors", `{"identifiers":["A"]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("debtors empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newServiceRouter(mocks.NewMockIServiceUseCase(ctrl))

		w := perform(r, http.MethodPost, "/v1/services/s-1/debtors", `{"identifiers":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := newServiceRouter(uc)

		uc.EXPECT().GetFieldTemplates(gomock.Any(), "s-1").Return([]entities.FieldTemplate{entities.DefaultFieldTemplate()}, nil)
		w := perform(r, http.MethodGet, "/v1/services/s-1/fields", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
