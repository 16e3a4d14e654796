package routes

import (
	"fmt"
	"log"

	"pagalotodo/internal/adapter/http/handlers"
	"pagalotodo/internal/bootstrap"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(port int, app *bootstrap.App) error {
	router := NewRouter(app)
	log.Printf("[http] listening port=%d", port)
	if err := router.Run(fmt.Sprintf(":%d", port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with every /v1 route and the swagger UI.
func NewRouter(app *bootstrap.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProviderRoutes(v1, handlers.NewProviderHandler(app.Providers))
	addServiceRoutes(v1, handlers.NewServiceHandler(app.Services))
	addConsumerRoutes(v1, handlers.NewConsumerHandler(app.Consumers))
	addPaymentRoutes(v1, handlers.NewPaymentHandler(app.Payments))
	addAdminRoutes(v1, handlers.NewAccountingCloseHandler(app.AccountingClose))
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
