package api

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dongzhentu/gallery-admin/internal/api/handler"
	"github.com/dongzhentu/gallery-admin/internal/api/metrics"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
	"github.com/dongzhentu/gallery-admin/internal/pkg/timeutil"
)

// Dependencies bundles everything the router needs. Services arrive as
// interfaces so handler wiring stays testable.
type Dependencies struct {
	Log        zerolog.Logger
	Auth       ports.AuthService
	Roles      ports.RoleService
	Users      ports.UserService
	Categories ports.CategoryService
	Images     ports.ImageService
	Times      *timeutil.Formatter

	// UploadDir is served statically under /uploads.
	UploadDir string
	// FrontendURL is the allowed CORS origin; empty allows any.
	FrontendURL string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	origins := []string{"*"}
	if deps.FrontendURL != "" {
		origins = []string{deps.FrontendURL}
	}
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: origins}))
	e.Use(requestDuration())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	roleHandler := handler.NewRoleHandler(deps.Roles, deps.Times)
	userHandler := handler.NewUserHandler(deps.Users, deps.Times)
	categoryHandler := handler.NewCategoryHandler(deps.Categories, deps.Times)
	imageHandler := handler.NewImageHandler(deps.Images, deps.Times)
	healthHandler := handler.NewHealthHandler()

	api := e.Group("/api")

	api.POST("/login", authHandler.Login)
	api.GET("/health", healthHandler.Check)

	api.GET("/categories", categoryHandler.List)
	api.POST("/categories", categoryHandler.Create)
	api.PUT("/categories/:id", categoryHandler.Update)
	api.DELETE("/categories/:id", categoryHandler.Delete)

	api.GET("/images", imageHandler.List)
	api.POST("/images", imageHandler.Create)
	api.PUT("/images/:id", imageHandler.Update)
	api.DELETE("/images/:id", imageHandler.Delete)

	api.GET("/roles", roleHandler.List)
	api.POST("/roles", roleHandler.Create)
	api.PUT("/roles/:id", roleHandler.Update)
	api.DELETE("/roles/:id", roleHandler.Delete)

	api.GET("/users", userHandler.List)
	api.POST("/users", userHandler.Create)
	api.PUT("/users/:id", userHandler.Update)
	api.DELETE("/users/:id", userHandler.Delete)
	api.POST("/users/:id/reset-password", userHandler.ResetPassword)

	// Uploaded files and Prometheus metrics live outside the /api group.
	e.Static("/uploads", deps.UploadDir)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// requestDuration records per-route request latency. The route template is
// used as the path label, never the raw URL, to keep cardinality bounded.
func requestDuration() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			metrics.RequestDuration.
				WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(c.Response().Status)).
				Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
