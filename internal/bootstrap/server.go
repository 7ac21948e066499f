package bootstrap

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/alkawthar/config"
	"github.com/Domenick1991/alkawthar/internal/auth"
	"github.com/Domenick1991/alkawthar/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openAPI []byte

// Registrar is implemented by every api handler.
type Registrar interface {
	Register(router *gin.RouterGroup)
}

type Handlers struct {
	Auth       Registrar
	Dashboard  Registrar
	Reference  Registrar
	Flights    Registrar
	Passengers Registrar
	Bookings   Registrar
	Tickets    Registrar
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// NewRouter mounts the API under /api. Everything except login requires a
// bearer token.
func NewRouter(cfg *config.Config, tokens *auth.TokenManager, h Handlers, checks map[string]HealthCheck) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(), middleware.Timeout(cfg.HTTP.RequestTimeoutSeconds))

	router.GET("/healthz", health(checks))
	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPI)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/openapi.json"))))

	api := router.Group("/api")
	h.Auth.Register(api.Group("/auth"))

	secured := api.Group("")
	secured.Use(auth.Middleware(tokens))
	h.Dashboard.Register(secured.Group("/dashboard"))
	h.Reference.Register(secured.Group("/reference"))
	h.Flights.Register(secured.Group("/flights"))
	h.Passengers.Register(secured.Group("/passengers"))
	h.Bookings.Register(secured.Group("/bookings"))
	h.Tickets.Register(secured.Group("/tickets"))

	return router
}

func health(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		result := gin.H{}
		for name, check := range checks {
			if err := check(c.Request.Context()); err != nil {
				status = http.StatusServiceUnavailable
				result[name] = err.Error()
				continue
			}
			result[name] = "ok"
		}
		c.JSON(status, result)
	}
}

// Run serves handler on cfg.HTTP.Address and blocks until ctx is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("address", cfg.HTTP.Address).Info("http server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logrus.Info("http server stopped")
		return nil
	}
}
