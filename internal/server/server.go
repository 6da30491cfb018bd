package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Hemantgupta27/Court-booking-application/internal/booking"
	"github.com/Hemantgupta27/Court-booking-application/internal/config"
	"github.com/Hemantgupta27/Court-booking-application/internal/email"
	"github.com/Hemantgupta27/Court-booking-application/internal/venue"
)

type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	db      *sqlx.DB
	config  *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service, catalog *venue.Catalog) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	bookingRepo := booking.NewRepository(db)
	bookingService := booking.NewService(bookingRepo, catalog, cfg.OperatingHours, emailService)
	bookingHandler := booking.NewHandler(bookingService)
	venueHandler := venue.NewHandler(catalog)

	api := router.Group("/api")
	{
		api.GET("/venues", venueHandler.ListVenues)
		api.GET("/slots", bookingHandler.GetSlots)
		api.POST("/bookings", bookingHandler.CreateBooking)
		api.GET("/my-bookings", bookingHandler.ListMyBookings)
		api.DELETE("/bookings/:id", bookingHandler.CancelBooking)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.httpSrv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
