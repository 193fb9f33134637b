package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/lunchcontrol-api/docs"
	appanalytics "github.com/jhoicas/lunchcontrol-api/internal/application/analytics"
	"github.com/jhoicas/lunchcontrol-api/internal/application/auth"
	"github.com/jhoicas/lunchcontrol-api/internal/application/scheduler"
	"github.com/jhoicas/lunchcontrol-api/internal/application/seed"
	"github.com/jhoicas/lunchcontrol-api/internal/application/usecase"
	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/metrics"
	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/lunchcontrol-api/internal/infrastructure/pdf"
	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/lunchcontrol-api/internal/interfaces/http"
)

const swaggerFile = "./docs/swagger.json"

// serveCmd arranca la API HTTP y las tareas periódicas.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	loc, err := cfg.App.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	m := metrics.New(true)
	store.SetObserver(m)
	feed := notify.NewFeed(notify.DefaultCapacity, log.Component("notify"))

	if cfg.Demo.Seed {
		seeded, err := seed.Apply(ctx, store, time.Now().In(loc), false)
		if err != nil {
			return err
		}
		if seeded {
			log.Info().Msg("datos de demostración cargados")
		}
	}

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		jwtSecret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío: se usa un secreto aleatorio; los tokens no sobreviven reinicios")
	}
	cred, err := auth.NewCredential(cfg.Demo.Email, cfg.Demo.Password, cfg.Demo.BcryptCost)
	if err != nil {
		return err
	}
	authUC := auth.NewAuthUseCase(store, cred,
		auth.Identity{ID: cfg.Demo.UserID, Name: cfg.Demo.UserName},
		auth.JWTConfig{Secret: jwtSecret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
		feed, m,
	)

	reportUC := appanalytics.NewReportUseCase(store, loc, feed).
		Register(infrapdf.NewReportRenderer(cfg.App.Name)).
		Register(xmlexport.Renderer{})

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Metrics:     m,
		Log:         log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.Swagger {
		if _, err := os.Stat(swaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: swaggerFile,
				Path:     "docs",
				Title:    "LunchControl API",
			}))
		} else {
			log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
		app.Get("/openapi.json", func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(docs.JSON())
		})
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     usecase.NewCompanyUseCase(store, feed),
		ProductUC:     usecase.NewProductUseCase(store, feed),
		OrderUC:       usecase.NewOrderUseCase(store, feed, m),
		UserUC:        usecase.NewUserUseCase(store, feed, cfg.Demo.BcryptCost),
		SettingsUC:    usecase.NewSettingsUseCase(store, feed),
		PreferencesUC: usecase.NewPreferencesUseCase(store.KV(), feed),
		DashboardUC:   appanalytics.NewDashboardUseCase(store, loc),
		ReportUC:      reportUC,
		Notifications: feed,
		JWTSecret:     jwtSecret,
		JWTIssuer:     cfg.JWT.Issuer,
	})

	sched := scheduler.New(store, feed, log.Component("scheduler"), scheduler.Config{
		AutosaveInterval:    cfg.Scheduler.AutosaveInterval,
		OrderSimEnabled:     cfg.Scheduler.OrderSimEnabled,
		OrderSimInterval:    cfg.Scheduler.OrderSimInterval,
		OrderSimProbability: cfg.Scheduler.OrderSimProbability,
	})
	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		sched.Run(ctx)
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	<-schedDone

	// Último guardado antes de salir.
	if err := store.Persist(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("guardado final")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
