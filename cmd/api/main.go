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
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/mtn-stock-api/docs"
	"github.com/jhoicas/mtn-stock-api/internal/application/inventory"
	"github.com/jhoicas/mtn-stock-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/mtn-stock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/mtn-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/mtn-stock-api/internal/interfaces/http"
	"github.com/jhoicas/mtn-stock-api/pkg/config"
	"github.com/jhoicas/mtn-stock-api/pkg/logger"
)

// @title        MTN Stock API
// @version      1.0
// @description  Clientes, catálogo y libro de movimientos de stock.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// cantidades y montos como números JSON
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := usecase.NewCustomerUseCase(txRunner, customerRepo, accountRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, log.Named("stock"))

	// PDF: reporte de saldos
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	stockUC := inventory.NewStockUseCase(movementRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerFile != "" {
		if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerFile,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		} else {
			log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:      cfg.App.Name,
		CustomerUC:       customerUC,
		ProductUC:        productUC,
		WarehouseUC:      warehouseUC,
		RegisterMovement: registerMovementUC,
		StockUC:          stockUC,
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

func migrateUp(dsn string) error {
	mg, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer mg.Close()
	return mg.Up()
}
