package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dzikriii24/dpd-backend/internal/application/ledger"
	"github.com/dzikriii24/dpd-backend/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	RecordMovement *ledger.RecordMovementUseCase
	ListMovements  *ledger.ListMovementsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movimientos: POST pasa por el motor transaccional; los GET son lecturas
	// sin bloqueo. No hay PUT ni DELETE: la bitácora es append-only.
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.RecordMovement, deps.ListMovements)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/product/:productId", movementHandler.ListByProduct)
}
