package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kmorales/heladeria-api/internal/application/auth"
	"github.com/kmorales/heladeria-api/internal/application/inventory"
	"github.com/kmorales/heladeria-api/internal/application/reports"
	"github.com/kmorales/heladeria-api/internal/application/usecase"
	infrapdf "github.com/kmorales/heladeria-api/internal/infrastructure/pdf"
	"github.com/kmorales/heladeria-api/internal/infrastructure/postgres"
	httpRouter "github.com/kmorales/heladeria-api/internal/interfaces/http"
	"github.com/kmorales/heladeria-api/pkg/config"
	"github.com/kmorales/heladeria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Zona horaria local del negocio: fechas de compra y ventanas de
	// vencimiento se calculan aquí, no en UTC.
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", cfg.App.Timezone).Msg("zona horaria inválida, usando UTC")
		loc = time.UTC
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewInventoryItemRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	batchUC := inventory.NewBatchUseCase(txRunner, itemRepo, batchRepo, movRepo, loc)
	itemUC := usecase.NewItemUseCase(itemRepo, batchRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)

	// PDF: kardex de lote (historial de movimientos)
	kardexGenerator := infrapdf.NewMarotoKardexGenerator()
	kardexUC := reports.NewKardexUseCase(itemRepo, batchRepo, movRepo, kardexGenerator, loc)

	authUC := auth.NewAuthUseCase(employeeRepo, customerRepo,
		auth.AdminConfig{
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Heladería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ItemUC:     itemUC,
		BatchUC:    batchUC,
		KardexUC:   kardexUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		EmployeeUC: employeeUC,
		CustomerUC: customerUC,
		JWTSecret:  cfg.JWT.Secret,
		Cookie: httpRouter.CookieConfig{
			Name:       cfg.JWT.CookieName,
			ExpMinutes: cfg.JWT.Expiration,
			Secure:     cfg.App.Env == "production",
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
