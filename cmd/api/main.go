package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado-api/internal/application/movement"
	"github.com/jhoicas/almoxarifado-api/internal/application/stock"
	"github.com/jhoicas/almoxarifado-api/internal/application/usecase"
	"github.com/jhoicas/almoxarifado-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almoxarifado-api/internal/interfaces/http"
	"github.com/jhoicas/almoxarifado-api/pkg/config"
	"github.com/jhoicas/almoxarifado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	entryRepo := postgres.NewStockEntryRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	defaults := stock.Thresholds{
		Min: decimal.NewFromInt(int64(cfg.Stock.DefaultMinStock)),
		Max: decimal.NewFromInt(int64(cfg.Stock.DefaultMaxStock)),
	}

	transferUC := movement.NewTransferUseCase(txRunner, itemRepo, warehouseRepo, lotRepo, defaults, log)
	historyUC := movement.NewHistoryUseCase(movementRepo)
	queryUC := stock.NewQueryUseCase(entryRepo, cfg.Stock.NearExpiryDays)
	itemUC := usecase.NewItemUseCase(itemRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	lotUC := usecase.NewLotUseCase(lotRepo, itemRepo, cfg.Stock.NearExpiryDays)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Movements:  httpRouter.NewMovementHandler(transferUC, historyUC),
		Stock:      httpRouter.NewStockHandler(queryUC),
		Items:      httpRouter.NewItemHandler(itemUC),
		Warehouses: httpRouter.NewWarehouseHandler(warehouseUC),
		Lots:       httpRouter.NewLotHandler(lotUC),
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
