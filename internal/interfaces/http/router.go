package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kmorales/heladeria-api/internal/application/auth"
	"github.com/kmorales/heladeria-api/internal/application/inventory"
	"github.com/kmorales/heladeria-api/internal/application/reports"
	"github.com/kmorales/heladeria-api/internal/application/usecase"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ItemUC     *usecase.ItemUseCase
	BatchUC    *inventory.BatchUseCase
	KardexUC   *reports.KardexUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	EmployeeUC *usecase.EmployeeUseCase
	CustomerUC *usecase.CustomerUseCase
	JWTSecret  string
	Cookie     CookieConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret, deps.Cookie.Name)
	staffOnly := RequireRole(entity.RoleAdmin, entity.RoleEmpleado)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/isLoggedIn", authHandler.IsLoggedIn(deps.JWTSecret))
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Inventario: artículos, lotes y operaciones (admin y empleados)
	inventoryHandler := NewInventoryHandler(deps.ItemUC, deps.BatchUC, deps.KardexUC)
	invGroup := api.Group("/inventory", requireAuth, staffOnly)
	invGroup.Get("/expiring", inventoryHandler.ListExpiring)
	invGroup.Post("/", inventoryHandler.CreateItem)
	invGroup.Get("/", inventoryHandler.ListItems)
	invGroup.Get("/:id", inventoryHandler.GetItem)
	invGroup.Put("/:id", inventoryHandler.UpdateItem)
	invGroup.Put("/:id/toggleStatus", adminOnly, inventoryHandler.ToggleStatus)
	invGroup.Delete("/:id", adminOnly, inventoryHandler.DeleteItem)
	invGroup.Post("/:id/batch", inventoryHandler.CreateBatch)
	invGroup.Get("/:id/batches", inventoryHandler.ListBatches)
	invGroup.Get("/:id/stock", inventoryHandler.GetStock)
	invGroup.Put("/batch/:batchId/operation", inventoryHandler.ApplyOperation)
	invGroup.Get("/batch/:batchId/movements", inventoryHandler.ListMovements)
	invGroup.Get("/batch/:batchId/kardex", inventoryHandler.KardexPDF)

	// Catálogo: categorías (staff) y productos (lectura también para clientes)
	catalogHandler := NewCatalogHandler(deps.CategoryUC, deps.ProductUC)
	categories := api.Group("/categories", requireAuth, staffOnly)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", adminOnly, catalogHandler.DeleteCategory)

	products := api.Group("/products", requireAuth)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleEmpleado, entity.RoleCliente)
	products.Get("/", anyRole, catalogHandler.ListProducts)
	products.Get("/:id", anyRole, catalogHandler.GetProduct)
	products.Post("/", staffOnly, catalogHandler.CreateProduct)
	products.Put("/:id", staffOnly, catalogHandler.UpdateProduct)
	products.Delete("/:id", adminOnly, catalogHandler.DeleteProduct)

	// Personas: empleados (solo admin) y clientes
	peopleHandler := NewPeopleHandler(deps.EmployeeUC, deps.CustomerUC)
	employees := api.Group("/employees", requireAuth, adminOnly)
	employees.Post("/", peopleHandler.CreateEmployee)
	employees.Get("/", peopleHandler.ListEmployees)
	employees.Get("/:id", peopleHandler.GetEmployee)
	employees.Put("/:id", peopleHandler.UpdateEmployee)
	employees.Delete("/:id", peopleHandler.DeleteEmployee)

	customers := api.Group("/customers")
	customers.Post("/register", peopleHandler.RegisterCustomer) // público (app móvil)
	customers.Get("/", requireAuth, staffOnly, peopleHandler.ListCustomers)
	customers.Get("/:id", requireAuth, staffOnly, peopleHandler.GetCustomer)
	customers.Put("/:id", requireAuth, staffOnly, peopleHandler.UpdateCustomer)
}
