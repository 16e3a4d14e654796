package main

import (
	"context"
	"log"

	_ "pagalotodo/docs"
	"pagalotodo/internal/adapter/http/routes"
	"pagalotodo/internal/bootstrap"
	"pagalotodo/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PagaloTodo API
// @version         1.0
// @description     Payment collection for providers and services, with periodic accounting closes emailed to each provider.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to build the application: %v", err)
	}
	defer app.Close()

	if err := routes.Run(cfg.ServerPort, app); err != nil {
		log.Printf("%v", err)
	}
}
