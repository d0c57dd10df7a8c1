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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/ventas-api/docs"
	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/billing"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/infrastructure/document"
	infrapdf "github.com/jhoicas/ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ventas-api/internal/interfaces/http"
	"github.com/jhoicas/ventas-api/pkg/config"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

func main() {
	_ = godotenv.Load() // .env es opcional

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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	issuerRepo := postgres.NewIssuerConfigRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	detailRepo := postgres.NewSaleDetailRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	invoiceUC := billing.NewInvoiceUseCase(
		invoiceRepo, issuerRepo, cfg.Billing.IssuerConfigID,
		infrapdf.NewMarotoPDFGenerator(), document.NewXMLBuilderService(),
		log,
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.Config{
		AllowPlaintext: cfg.Auth.AllowPlaintext,
	}, log)
	if cfg.Auth.AllowPlaintext {
		log.Warn().Msg("AUTH_ALLOW_PLAINTEXT activo: se aceptan contraseñas sin hash")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	var metrics *httpRouter.Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics, err = httpRouter.NewMetrics(reg)
		if err != nil {
			log.Fatal().Err(err).Msg("registrar métricas")
		}
		app.Use(metrics.Middleware())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Docs.FilePath,
		Path:     "docs",
		Title:    "Ventas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		ProductUC:   usecase.NewProductUseCase(productRepo, log),
		SupplierUC:  usecase.NewResourceUseCase[entity.Supplier]("proveedor", supplierRepo, log),
		ClientUC:    usecase.NewResourceUseCase[entity.Client]("clientes", clientRepo, log),
		ConfigUC:    usecase.NewResourceUseCase[entity.IssuerConfig]("config", issuerRepo, log),
		SaleUC:      usecase.NewSaleUseCase(saleRepo, log),
		DetailUC:    usecase.NewResourceUseCase[entity.SaleDetail]("detalle", detailRepo, log),
		InvoiceUC:   invoiceUC,
		AuthUC:      authUC,
		Metrics:     metrics,
		OpenAPI:     docs.ReadDoc,
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
