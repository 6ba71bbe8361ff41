package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/DeepakJD1226/Consultancy/api/swagger" // swagger docs
	"github.com/DeepakJD1226/Consultancy/internal/config"
	"github.com/DeepakJD1226/Consultancy/internal/database"
	"github.com/DeepakJD1226/Consultancy/internal/handler"
	"github.com/DeepakJD1226/Consultancy/internal/metrics"
	"github.com/DeepakJD1226/Consultancy/internal/middleware"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/internal/service"
	"github.com/DeepakJD1226/Consultancy/internal/websocket"
	"github.com/DeepakJD1226/Consultancy/pkg/response"
)

const (
	Name    = "R.K. Textiles API Server"
	Version = "1.0.0"
)

// App owns the store, the event hub and the HTTP router.
type App struct {
	cfg     config.Config
	logger  *zap.Logger
	db      *database.DB
	hub     *websocket.Hub
	metrics *metrics.Metrics
	router  *gin.Engine
}

// New opens the store, seeds it when configured and wires every route.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	db := database.Open()
	if cfg.SeedData {
		if err := database.Seed(ctx, db); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
		counts, err := db.Counts(ctx)
		if err != nil {
			return nil, fmt.Errorf("count records: %w", err)
		}
		logger.Info("sample data loaded", zap.Any("records", counts))
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		db:     db,
		hub:    websocket.NewHub(cfg.HTTP.CORSOrigins, logger),
	}
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(db)
	}
	a.router = a.buildRouter()
	return a, nil
}

// Router exposes the configured engine.
func (a *App) Router() *gin.Engine {
	return a.router
}

// DB exposes the backing store.
func (a *App) DB() *database.DB {
	return a.db
}

func (a *App) buildRouter() *gin.Engine {
	gin.SetMode(a.cfg.HTTP.Mode)
	router := gin.New()

	router.Use(middleware.RequestLogger(a.logger))
	if a.metrics != nil {
		router.Use(middleware.Metrics(a.metrics))
	}
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		a.logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error("Internal server error"))
	}))

	corsConfig := cors.DefaultConfig()
	if len(a.cfg.HTTP.CORSOrigins) == 0 || a.cfg.HTTP.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = a.cfg.HTTP.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	if a.cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if a.metrics != nil {
		router.GET(a.cfg.Metrics.Path, gin.WrapH(a.metrics.Handler()))
	}

	router.GET("/", a.banner)
	router.GET("/health", a.health)
	router.GET("/ws", a.hub.ServeWs)

	// Repository -> Service -> Handler
	txManager := repository.NewTransactionManager(a.db)
	customerRepo := repository.NewCustomerRepository(a.db)
	inventoryRepo := repository.NewInventoryRepository(a.db)
	orderRepo := repository.NewOrderRepository(a.db)
	billRepo := repository.NewBillRepository(a.db)
	millRepo := repository.NewMillRepository(a.db)

	customerService := service.NewCustomerService(customerRepo, txManager)
	inventoryService := service.NewInventoryService(inventoryRepo, a.hub, a.logger)
	orderService := service.NewOrderService(orderRepo, billRepo, customerRepo, inventoryRepo, txManager, a.hub, a.logger)
	billService := service.NewBillService(billRepo, customerRepo, orderRepo, txManager, a.hub, a.logger)
	millService := service.NewMillService(millRepo, inventoryRepo, txManager, a.hub, a.logger)
	reportService := service.NewReportService(customerRepo, orderRepo, inventoryRepo, billRepo, millRepo)

	api := router.Group("")
	handler.NewCustomerHandler(customerService).RegisterRoutes(api)
	handler.NewInventoryHandler(inventoryService).RegisterRoutes(api)
	handler.NewOrderHandler(orderService).RegisterRoutes(api)
	handler.NewBillHandler(billService).RegisterRoutes(api)
	handler.NewMillHandler(millService).RegisterRoutes(api)
	handler.NewReportHandler(reportService).RegisterRoutes(api)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Error("Route not found"))
	})
	return router
}

// banner godoc
// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (a *App) banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   Name,
		"version":   Version,
		"status":    "running",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (a *App) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Run serves HTTP until ctx is cancelled, then drains connections within the
// configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go a.hub.Run(hubCtx)

	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}
