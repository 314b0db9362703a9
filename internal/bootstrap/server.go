package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/daehyun-dev/skyreserve/api"
	"github.com/daehyun-dev/skyreserve/config"
	"github.com/daehyun-dev/skyreserve/internal/service/booking"
	"github.com/daehyun-dev/skyreserve/internal/service/flights"
	"github.com/daehyun-dev/skyreserve/internal/service/users"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, userSvc users.UserUseCase) error {
	router := newRouter(flightSvc, bookingSvc, userSvc)

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
		return httpSrv.Shutdown(shutdownCtx)
	}
}

func newRouter(flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, userSvc users.UserUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	flightHandler := api.NewFlightHandler(flightSvc)
	flightHandler.Register(v1.Group("/flights"))

	bookingHandler := api.NewBookingHandler(bookingSvc)
	bookingHandler.Register(v1.Group("/reservations"))
	bookingHandler.RegisterUserRoutes(v1.Group("/users"))

	userHandler := api.NewUserHandler(userSvc)
	userHandler.Register(v1)

	return router
}
