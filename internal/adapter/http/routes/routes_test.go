package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pagalotodo/internal/adapter/http/handlers/mocks"
	"pagalotodo/internal/bootstrap"
	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payments := mocks.NewMockIPaymentUseCase(ctrl)
	closes := mocks.NewMockIAccountingCloseUseCase(ctrl)
	app := &bootstrap.App{
		Providers:       mocks.NewMockIProviderUseCase(ctrl),
		Services:        mocks.NewMockIServiceUseCase(ctrl),
		Consumers:       mocks.NewMockIConsumerUseCase(ctrl),
		Payments:        payments,
		AccountingClose: closes,
	}
	router := NewRouter(app)

	payments.EXPECT().ListByServiceID(gomock.Any(), "s-1", gomock.Any(), gomock.Any()).Return([]entities.Payment{}, nil)
	payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1"}, nil)
	closes.EXPECT().Execute(gomock.Any()).Return(conciliation.Summary{}, nil)

	for _, path := range []string{
		"/v1/ping",
		"/v1/payments/services/s-1",
		"/v1/payments/pay-1",
		"/v1/admin/accounting-close",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}
