package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/duchauuuuu/flight-backend/api"
	"github.com/duchauuuuu/flight-backend/config"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handlers groups the HTTP handlers the server exposes.
type Handlers struct {
	Flights       *api.FlightHandler
	Bookings      *api.BookingHandler
	Notifications *api.NotificationHandler
	Loyalty       *api.LoyaltyHandler
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, logger *logrus.Logger, handlers Handlers) error {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	root := router.Group("/api/v1")
	handlers.Flights.Register(root.Group("/flights"))
	handlers.Bookings.Register(root.Group("/bookings"))
	handlers.Notifications.Register(root.Group("/notifications"))
	handlers.Loyalty.Register(root.Group("/users"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request handled")
	}
}
