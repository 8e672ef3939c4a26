package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/multistore-api/pkg/jwt"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Importer      csvImporter
	ImportTimeout time.Duration
	JWTSecret     string
	JWTIssuer     string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Importación masiva: solo personal de tienda
	importHandler := NewImportHandler(deps.Importer, deps.ImportTimeout, deps.Log)
	protected.Post("/import/csv", RequireRole(jwt.RoleAdmin, jwt.RoleManager), importHandler.ImportCSV)
}
