package routes

import (
	"pagalotodo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathProviders = "/providers"
	PathServices  = "/services"
	PathConsumers = "/consumers"
	PathPayments  = "/payments"
	PathAdmin     = "/admin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addProviderRoutes(rg *gin.RouterGroup, h *handlers.ProviderHandler) {
	providers := rg.Group(PathProviders)
	{
		providers.POST("", h.CreateProvider)
		providers.GET("", h.ListProviders)
		providers.GET("/:id", h.GetProvider)
		providers.DELETE("/:id", h.DeleteProvider)
		providers.GET("/:id/services", h.ListProviderServices)
	}
}

func addServiceRoutes(rg *gin.RouterGroup, h *handlers.ServiceHandler) {
	services := rg.Group(PathServices)
	{
		services.POST("", h.CreateService)
		services.GET("/:id", h.GetService)
		services.DELETE("/:id", h.DeleteService)
		services.PUT("/:id/fields", h.ReplaceFieldTemplates)
		services.GET("/:id/fields", h.GetFieldTemplates)
		services.POST("/:id/debtors", h.AddDebtors)
		services.GET("/:id/debtors", h.ListDebtors)
	}
}

func addConsumerRoutes(rg *gin.RouterGroup, h *handlers.ConsumerHandler) {
	consumers := rg.Group(PathConsumers)
	{
		consumers.POST("", h.CreateConsumer)
		consumers.GET("/:id", h.GetConsumer)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", h.CreatePayment)
		payments.GET("/services/:service_id", h.ListServicePayments)
		payments.GET("/:id", h.GetPayment)
		payments.PATCH("/:id/status", h.UpdatePaymentStatus)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AccountingCloseHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/accounting-close", h.RunAccountingClose)
		admin.GET("/accounting-close/last", h.GetLastAccountingClose)
	}
}
