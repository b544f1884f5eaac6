package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/adegacloud/adega-api/internal/application/sales"
	appstock "github.com/adegacloud/adega-api/internal/application/stock"
	"github.com/adegacloud/adega-api/internal/infrastructure/memory"
	infrapdf "github.com/adegacloud/adega-api/internal/infrastructure/pdf"
	httpRouter "github.com/adegacloud/adega-api/internal/interfaces/http"
	"github.com/adegacloud/adega-api/pkg/config"
	"github.com/adegacloud/adega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Estado da sessão: estoque e log de baixas começam vazios e morrem com
	// o processo. Sem banco por decisão de escopo.
	productRepo := memory.NewProductRepository()
	saleLogRepo := memory.NewSaleLogRepository()

	stockUC := appstock.NewUseCase(productRepo, log)
	reportUC := appstock.NewReportUseCase(productRepo, infrapdf.NewMarotoReportGenerator())
	salesUC := sales.NewUseCase(productRepo, saleLogRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:  stockUC,
		ReportUC: reportUC,
		SalesUC:  salesUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
