package main

import (
	_ "eto_pipeline/docs"
	"eto_pipeline/internal/adapter/http/routes"
	"eto_pipeline/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ETO Order Pipeline API
// @version         1.0
// @description     Quotation to production pipeline for engineer-to-order work, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run(config.MustConfig())
}
