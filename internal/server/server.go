// Package server is the HTTP face of the record store. Handlers translate
// requests to store calls and keep the original API's wire shapes: bare JSON
// arrays/objects on success and {"detail": "..."} error bodies.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

// EmployeeStore is the employee persistence surface the handlers need.
type EmployeeStore interface {
	List(department string) ([]models.Employee, error)
	GetByID(id string) (*models.Employee, error)
	Create(e *models.Employee) error
	Update(id string, e *models.Employee) (bool, error)
}

// VehicleStore is the fleet vehicle persistence surface.
type VehicleStore interface {
	List(assignedOnly *bool) ([]models.Vehicle, error)
	Create(v *models.Vehicle) error
	Assign(id, employeeID string) (bool, error)
}

// MedicalClaimStore is the medical claim persistence surface.
type MedicalClaimStore interface {
	List(employeeID, status string) ([]models.MedicalClaim, error)
	Create(c *models.MedicalClaim) error
	UpdateStatus(id, status, notes string) (bool, error)
}

// VehicleClaimStore is the vehicle claim persistence surface.
type VehicleClaimStore interface {
	List(vehicleID, status string) ([]models.VehicleClaim, error)
	Create(c *models.VehicleClaim) error
	UpdateStatus(id, status, notes string) (bool, error)
}

// ProviderStore is the service provider persistence surface.
type ProviderStore interface {
	List(networkTier string, activeOnly bool) ([]models.ServiceProvider, error)
	Create(p *models.ServiceProvider) error
}

// FlightStore is the flight reservation persistence surface.
type FlightStore interface {
	List(employeeID, status string) ([]models.FlightReservation, error)
	Create(f *models.FlightReservation) error
	UpdateStatus(id, status, bookingReference string) (bool, error)
}

// DashboardStore computes the aggregate counters.
type DashboardStore interface {
	Stats() (models.DashboardStats, error)
}

// Stores bundles the persistence surfaces behind the API.
type Stores struct {
	Employees     EmployeeStore
	Vehicles      VehicleStore
	MedicalClaims MedicalClaimStore
	VehicleClaims VehicleClaimStore
	Providers     ProviderStore
	Flights       FlightStore
	Dashboard     DashboardStore
}

// Config holds HTTP server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the record store HTTP server.
type Server struct {
	config     Config
	httpServer *http.Server
	router     *gin.Engine
	stores     Stores
	logger     *zap.Logger
}

// New creates a record store server over the given stores.
func New(config Config, stores Stores, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	s := &Server{
		config: config,
		router: router,
		stores: stores,
		logger: logger,
	}

	router.Use(gin.Recovery())
	router.Use(s.loggingMiddleware())
	router.Use(corsMiddleware())

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	h := newHandlers(s.stores, s.logger)

	s.router.GET("/health", h.HealthCheck)

	api := s.router.Group("/api")
	{
		api.GET("/dashboard", h.DashboardStats)

		api.GET("/employees", h.ListEmployees)
		api.POST("/employees", h.CreateEmployee)
		api.GET("/employees/:id", h.GetEmployee)
		api.PUT("/employees/:id", h.UpdateEmployee)

		api.GET("/vehicles", h.ListVehicles)
		api.POST("/vehicles", h.CreateVehicle)
		api.PUT("/vehicles/:id/assign", h.AssignVehicle)

		api.GET("/medical-claims", h.ListMedicalClaims)
		api.POST("/medical-claims", h.CreateMedicalClaim)
		api.PUT("/medical-claims/:id/status", h.UpdateMedicalClaimStatus)

		api.GET("/vehicle-claims", h.ListVehicleClaims)
		api.POST("/vehicle-claims", h.CreateVehicleClaim)
		api.PUT("/vehicle-claims/:id/status", h.UpdateVehicleClaimStatus)

		api.GET("/service-providers", h.ListProviders)
		api.POST("/service-providers", h.CreateProvider)

		api.GET("/flight-reservations", h.ListFlights)
		api.POST("/flight-reservations", h.CreateFlight)
		api.PUT("/flight-reservations/:id/status", h.UpdateFlightStatus)

		api.GET("/reports/claims", h.ClaimsReport)
	}
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		s.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Start runs the server until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	s.logger.Info("HTTP server listening", zap.String("addr", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("HTTP server shutdown requested")
		return s.Stop()
	case err := <-errCh:
		s.logger.Error("HTTP server error", zap.Error(err))
		return err
	}
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
		return err
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// Router returns the underlying gin router (for testing).
func (s *Server) Router() *gin.Engine {
	return s.router
}
