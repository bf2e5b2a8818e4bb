package main

import (
	"log"

	_ "autopaint_quotation/docs"
	"autopaint_quotation/internal/adapter/http/routes"
	"autopaint_quotation/internal/infrastructure/config"
	"autopaint_quotation/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Auto Painting Quotation API
// @version         1.0
// @description     Quotation wizard for spot, panel and color-change painting, backed by DynamoDB or Postgres.
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
		log.Fatalf("invalid configuration: %v", err)
	}

	closeLog := logging.Setup(cfg.Log)
	defer func() {
		_ = closeLog()
	}()

	routes.Run(cfg)
}
