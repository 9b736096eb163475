package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/storely/storefront-service/config"
	"github.com/storely/storefront-service/internal/auth"
	"github.com/storely/storefront-service/internal/category"
	categoryHandler "github.com/storely/storefront-service/internal/category/handler"
	"github.com/storely/storefront-service/internal/product"
	productHandler "github.com/storely/storefront-service/internal/product/handler"
	"github.com/storely/storefront-service/internal/sitemap"
)

type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	logger *zap.Logger
}

func New(
	cfg *config.Config,
	log *zap.Logger,
	productUC product.UseCase,
	categoryUC category.UseCase,
	sitemapBuilder *sitemap.Builder,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = errorHandler(log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Error(v.Error),
			)
			return nil
		},
	}))

	api := e.Group("/api")
	productHandler.NewHandler(productUC, log).Register(api)
	categoryHandler.NewHandler(categoryUC, log).Register(api)

	admin := e.Group("/api/admin", auth.Middleware(cfg.JWT.SecretKey), auth.RequireAdmin)
	productHandler.NewAdminHandler(productUC, log).Register(admin)

	e.GET("/sitemap.xml", func(c echo.Context) error {
		body, err := sitemapBuilder.Build(c.Request().Context())
		if err != nil {
			log.Error("failed to build sitemap", zap.Error(err))
			return Fail(c, http.StatusInternalServerError, "Failed to build sitemap")
		}
		return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
	})

	return &Server{echo: e, cfg: cfg, logger: log}
}

// errorHandler keeps the single error envelope for everything echo raises
// itself (404s, auth middleware rejections, binding errors).
func errorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		message := "Internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			log.Error("unhandled error", zap.Error(err))
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = Fail(c, status, message)
	}
}

func (s *Server) Start() error {
	return s.echo.Start(s.cfg.Server.HTTPPort)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
