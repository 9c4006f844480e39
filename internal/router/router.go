package router

import (
	"time"

	"github.com/varunreddy1024/ledger-backend/internal/config"
	"github.com/varunreddy1024/ledger-backend/internal/handler"
	"github.com/varunreddy1024/ledger-backend/internal/middleware"
	"github.com/varunreddy1024/ledger-backend/internal/model"
	"github.com/varunreddy1024/ledger-backend/internal/repository"
	"github.com/varunreddy1024/ledger-backend/internal/service"
	"github.com/varunreddy1024/ledger-backend/internal/token"
	"github.com/varunreddy1024/ledger-backend/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	counterSaleRepo := repository.NewCounterSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	tokens := token.NewService(cfg.JWTSecret)
	authSvc := service.NewAuthService(userRepo, tokens, cfg)
	summarySvc := service.NewSummaryService(summaryRepo, saleRepo, counterSaleRepo, expenseRepo)
	dashboardSvc := service.NewDashboardService(hotelRepo, saleRepo, counterSaleRepo, expenseRepo)
	reportSvc := service.NewReportService(summaryRepo, dispatcher, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	hotelsH := handler.NewHotelsHandler(hotelRepo)
	salesH := handler.NewSalesHandler(saleRepo, hotelRepo)
	counterSalesH := handler.NewCounterSalesHandler(counterSaleRepo)
	expensesH := handler.NewExpensesHandler(expenseRepo)
	summaryH := handler.NewSummaryHandler(summarySvc, reportSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/auth/token", middleware.LoginRateLimiter(), authH.Token)

	// Everything else requires a bearer token. The middleware re-fetches the
	// user on every request so role changes and deletions apply immediately.
	authed := r.Group("/", middleware.Authenticate(tokens, userRepo))
	{
		authed.GET("/auth/profile", authH.Profile)

		users := authed.Group("/users", middleware.RequireRole(model.RoleAdmin))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		hotels := authed.Group("/hotels")
		{
			hotels.POST("", hotelsH.Create)
			hotels.GET("", hotelsH.List)
			hotels.GET("/:id", hotelsH.Get)
			hotels.PUT("/:id", hotelsH.Update)
			hotels.DELETE("/:id", hotelsH.Delete)
		}

		sales := authed.Group("/sales")
		{
			sales.POST("", salesH.Create)
			sales.GET("", salesH.List)
			sales.GET("/hotel/:hotel_id", salesH.ListByHotel)
			sales.GET("/:id", salesH.Get)
			sales.PUT("/:id", salesH.Update)
			sales.DELETE("/:id", salesH.Delete)
		}

		counterSales := authed.Group("/counter-sales")
		{
			counterSales.POST("", counterSalesH.Create)
			counterSales.GET("", counterSalesH.List)
			counterSales.GET("/date/:date", counterSalesH.ListByDate)
			counterSales.GET("/:id", counterSalesH.Get)
			counterSales.DELETE("/:id", counterSalesH.Delete)
		}

		expenses := authed.Group("/expenses")
		{
			expenses.POST("", expensesH.Create)
			expenses.GET("", expensesH.List)
			expenses.GET("/summary/:month/:year", expensesH.MonthlySummary)
			expenses.GET("/:id", expensesH.Get)
			expenses.PUT("/:id", expensesH.Update)
			expenses.DELETE("/:id", expensesH.Delete)
		}

		summary := authed.Group("/daily-summary")
		{
			summary.POST("/generate/:date", summaryH.Generate)
			summary.GET("", summaryH.List)
			summary.GET("/range/:start/:end", summaryH.Range)
			summary.GET("/:date", summaryH.Get)
			summary.PUT("/:date", summaryH.Update)
			summary.GET("/:date/pdf", summaryH.DownloadPDF)
			summary.POST("/:date/email", summaryH.EmailReport)
		}

		authed.GET("/dashboard/stats", dashboardH.Stats)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
