package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/lunchcontrol-api/internal/application/analytics"
	"github.com/jhoicas/lunchcontrol-api/internal/application/auth"
	"github.com/jhoicas/lunchcontrol-api/internal/application/usecase"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	ProductUC     *usecase.ProductUseCase
	OrderUC       *usecase.OrderUseCase
	UserUC        *usecase.UserUseCase
	SettingsUC    *usecase.SettingsUseCase
	PreferencesUC *usecase.PreferencesUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *appanalytics.ReportUseCase
	Notifications NotificationSource
	JWTSecret     string
	JWTIssuer     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo logout/session)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Preferencias de interfaz (público: el tema se elige antes del login)
	prefs := api.Group("/preferences")
	prefsHandler := NewPreferencesHandler(deps.PreferencesUC)
	prefs.Get("/theme", prefsHandler.Theme)
	prefs.Put("/theme", prefsHandler.SetTheme)
	prefs.Post("/theme/toggle", prefsHandler.Toggle)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Get("/companies", companyHandler.List)

	// Rutas protegidas (Bearer Token + sesión viva)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer, deps.AuthUC))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/session", authHandler.Session)

	companies := protected.Group("/companies")
	companies.Get("/current", companyHandler.Current)
	companies.Put("/current", RequirePermission(entity.PermissionAll), companyHandler.SaveSettings)
	companies.Post("/switch", companyHandler.Switch)

	// Dashboard (cualquier rol con sesión)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	if deps.Notifications != nil {
		notificationHandler := NewNotificationHandler(deps.Notifications)
		protected.Get("/notifications", notificationHandler.List)
	}

	products := protected.Group("/products", RequirePermission(entity.PermissionProducts))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/options", productHandler.Options)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	orders := protected.Group("/orders", RequirePermission(entity.PermissionOrders))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Post("/preview", orderHandler.Preview)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)

	users := protected.Group("/users", RequirePermission(entity.PermissionAll))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	settings := protected.Group("/settings", RequirePermission(entity.PermissionAll))
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Save)

	reports := protected.Group("/reports", RequirePermission(entity.PermissionReports))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.Report)
	reports.Get("/export", reportHandler.Export)
}
