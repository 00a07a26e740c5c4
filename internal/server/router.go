package server

import (
	"log/slog"
	"strconv"

	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/middleware"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers are the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health    *handlers.HealthCheckHandler
	Auth      *handlers.AuthHandler
	Google    *handlers.GoogleAuthHandler
	Profile   *handlers.ProfileHandler
	Category  *handlers.CategoryHandler
	Statement *handlers.StatementHandler
	Ledger    *handlers.LedgerHandler
	Assistant *handlers.AssistantHandler
	BankFeed  *handlers.BankFeedHandler
}

type Options struct {
	Logger           *slog.Logger
	Registry         *prometheus.Registry
	TokenService     services.TokenServiceInterface
	BlacklistRepo    repositories.BlacklistedTokenRepositoryInterface
	RateLimiter      *middleware.RateLimiter
	CORSAllowOrigins []string
	MaxUploadBytes   int64
}

// NewRouter builds the echo instance with the global middleware chain and
// every route of the API.
func NewRouter(h Handlers, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(opts.Logger, opts.Registry).CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(middleware.PanicRecovery(opts.Logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: opts.CORSAllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	if opts.RateLimiter != nil {
		e.Use(opts.RateLimiter.Middleware())
	}

	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)
	auth.GET("/google/login", h.Google.Login)
	auth.GET("/google/callback", h.Google.Callback)

	protected := api.Group("", middleware.RequireAuth(opts.TokenService, opts.BlacklistRepo))
	protected.POST("/auth/logout", h.Auth.Logout)

	protected.GET("/me", h.Profile.Me)
	protected.GET("/me/activity", h.Profile.Activity)

	categories := protected.Group("/categories")
	categories.GET("", h.Category.List)
	categories.PUT("", h.Category.Replace)
	categories.POST("", h.Category.Create)
	categories.DELETE("/:name", h.Category.Delete)
	categories.POST("/:name/keywords", h.Category.AddKeyword)
	categories.DELETE("/:name/keywords", h.Category.RemoveKeyword)

	// Multipart overhead on top of the file itself.
	uploadLimit := strconv.FormatInt(opts.MaxUploadBytes+(1<<20), 10) + "B"
	statements := protected.Group("/statements")
	statements.POST("", h.Statement.Upload, echomw.BodyLimit(uploadLimit))
	statements.GET("/current", h.Statement.Current)
	statements.DELETE("/current", h.Statement.Clear)

	ledger := protected.Group("/ledger")
	ledger.GET("/transactions", h.Ledger.Transactions)
	ledger.PATCH("/transactions", h.Ledger.ApplyChanges)
	ledger.PATCH("/transactions/:row", h.Ledger.Override)
	ledger.GET("/totals", h.Ledger.Totals)
	ledger.GET("/waterfall", h.Ledger.Waterfall)
	ledger.GET("/summary", h.Ledger.Summary)

	assistant := protected.Group("/assistant")
	assistant.POST("/suggest", h.Assistant.Suggest)
	assistant.POST("/amend", h.Assistant.Amend)

	bankfeed := protected.Group("/bankfeed")
	bankfeed.POST("/connections", h.BankFeed.Link)
	bankfeed.GET("/connections/:id/accounts", h.BankFeed.Accounts)
	bankfeed.POST("/import", h.BankFeed.Import)

	return e
}
