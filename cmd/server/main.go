package main

import (
	"log"
	"strings"

	"ciftlik-backend/internal/auth"
	"ciftlik-backend/internal/config"
	"ciftlik-backend/internal/customer"
	"ciftlik-backend/internal/dashboard"
	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/finance"
	"ciftlik-backend/internal/flock"
	"ciftlik-backend/internal/hr"
	"ciftlik-backend/internal/inventory"
	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/sales"
	"ciftlik-backend/internal/scheduler"
	"ciftlik-backend/internal/settings"
	"ciftlik-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	zlog := logger.Must(logger.New())
	defer zlog.Sync()

	// günlük düşük stok / ölüm taramaları
	sched := scheduler.New(database.DB, zlog)
	sched.Start()
	defer sched.Stop()

	weatherClient := dashboard.NewWeatherClient(cfg.WeatherURL)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Çiftlik ayarları
	protected.Get("/settings", settings.GetSettingsHandler())

	// Sürü yönetimi
	protected.Post("/flocks", flock.CreateFlockHandler())
	protected.Get("/flocks", flock.ListFlocksHandler())
	protected.Get("/flocks/:id", flock.GetFlockHandler())
	protected.Put("/flocks/:id", flock.UpdateFlockHandler())
	protected.Post("/flocks/:id/harvest", flock.HarvestFlockHandler())
	protected.Delete("/flocks/:id", flock.DeleteFlockHandler())
	protected.Post("/flocks/:id/logs", flock.CreateFlockLogHandler())
	protected.Get("/flocks/:id/logs", flock.ListFlockLogsHandler())

	// Stok yönetimi
	protected.Post("/inventory", inventory.CreateItemHandler())
	protected.Get("/inventory", inventory.ListItemsHandler())
	protected.Get("/inventory/low-stock", inventory.LowStockHandler())
	protected.Post("/inventory/import", inventory.ImportXLSXHandler())
	protected.Get("/inventory/:id", inventory.GetItemHandler())
	protected.Put("/inventory/:id", inventory.UpdateItemHandler())
	protected.Post("/inventory/:id/maintenance", inventory.CreateMaintenanceLogHandler())
	protected.Get("/inventory/:id/maintenance", inventory.ListMaintenanceLogsHandler())
	protected.Post("/inventory/:id/usage", inventory.CreateUsageLogHandler())
	protected.Get("/inventory/:id/usage", inventory.ListUsageLogsHandler())

	// Müşteriler
	protected.Post("/customers", customer.CreateCustomerHandler())
	protected.Get("/customers", customer.ListCustomersHandler())
	protected.Get("/customers/:id", customer.GetCustomerHandler())
	protected.Put("/customers/:id", customer.UpdateCustomerHandler())
	protected.Post("/customers/:id/recalculate", customer.RecalculateCustomerHandler())

	// Satış siparişleri
	protected.Post("/orders", sales.CreateOrderHandler())
	protected.Get("/orders", sales.ListOrdersHandler())
	protected.Get("/orders/analytics", sales.AnalyticsHandler())
	protected.Get("/orders/:id", sales.GetOrderHandler())
	protected.Put("/orders/:id", sales.UpdateOrderHandler())
	protected.Patch("/orders/:id/status", sales.UpdateOrderStatusHandler())
	protected.Delete("/orders/:id", sales.DeleteOrderHandler())

	// Gelir-gider kayıtları
	protected.Post("/transactions", finance.CreateTransactionHandler())
	protected.Get("/transactions", finance.ListTransactionsHandler())
	protected.Delete("/transactions/:id", finance.DeleteTransactionHandler())

	// Görevler
	protected.Post("/tasks", hr.CreateTaskHandler())
	protected.Get("/tasks", hr.ListTasksHandler())
	protected.Put("/tasks/:id", hr.UpdateTaskHandler())
	protected.Delete("/tasks/:id", hr.DeleteTaskHandler())

	// Dashboard
	protected.Get("/dashboard/summary", dashboard.SummaryHandler())
	protected.Get("/dashboard/revenue-chart", dashboard.RevenueChartHandler())
	protected.Get("/dashboard/weather", dashboard.WeatherHandler(weatherClient))

	// Admin route'ları: ayarlar, silmeler, finansal raporlar, personel
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Put("/settings", settings.UpdateSettingsHandler())
	adminRoutes.Delete("/inventory/:id", inventory.DeleteItemHandler())
	adminRoutes.Delete("/customers/:id", customer.DeleteCustomerHandler())

	adminRoutes.Get("/finance/pnl", finance.PnLHandler())
	adminRoutes.Get("/finance/tax-position", finance.TaxPositionHandler())
	adminRoutes.Get("/finance/balance-sheet", finance.BalanceSheetHandler())

	adminRoutes.Post("/employees", hr.CreateEmployeeHandler())
	adminRoutes.Get("/employees", hr.ListEmployeesHandler())
	adminRoutes.Get("/employees/:id", hr.GetEmployeeHandler())
	adminRoutes.Put("/employees/:id", hr.UpdateEmployeeHandler())
	adminRoutes.Delete("/employees/:id", hr.DeleteEmployeeHandler())

	adminRoutes.Post("/payroll/preview", hr.PreviewPayrollHandler())
	adminRoutes.Post("/payroll/run", hr.RunPayrollHandler())
	adminRoutes.Get("/payroll/runs", hr.ListPayrollRunsHandler())
	adminRoutes.Get("/payroll/runs/:id", hr.GetPayrollRunHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
