package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "personnel/api/swagger" // swagger docs
	"personnel/internal/clients"
	"personnel/internal/config"
	"personnel/internal/database"
	"personnel/internal/handler"
	"personnel/internal/i18n"
	"personnel/internal/middleware"
	"personnel/internal/repository"
	"personnel/internal/service"
	"personnel/internal/websocket"
	"personnel/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Personnel Payroll API
// @version         1.0
// @description     HR backend with versioned withholding rules and gross/net payroll conversion.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(cfg.DB.DSN(), database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		log.Error("database migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("connected to PostgreSQL", "host", cfg.DB.Host, "db", cfg.DB.Name)

	// Redis backs the rule snapshot cache; without it every request reads the database.
	var ruleCache service.RuleCache
	if cfg.Redis.Addr != "" {
		rdb, err := clients.NewRedisClient(ctx, clients.RedisConfig{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			MaxRetries:  cfg.Redis.MaxRetries,
			DialTimeout: cfg.Redis.DialTimeout,
			Timeout:     cfg.Redis.Timeout,
			Prefix:      cfg.Redis.Prefix,
		})
		if err != nil {
			log.Warn("redis unavailable, rule cache disabled", "error", err)
		} else {
			defer rdb.Close()
			ruleCache = service.NewRedisRuleCache(rdb, cfg.Payroll.RuleCacheTTL)
			log.Info("rule cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Payroll.RuleCacheTTL)
		}
	}

	var exportStore service.ObjectStore
	if cfg.S3.Endpoint != "" {
		s3, err := clients.NewS3Client(ctx, clients.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Bucket:          cfg.S3.Bucket,
			UseSSL:          cfg.S3.UseSSL,
			Region:          cfg.S3.Region,
			Prefix:          cfg.S3.Prefix,
		})
		if err != nil {
			log.Error("s3 client failed", "error", err)
			os.Exit(1)
		}
		exportStore = s3
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run(ctx)

	tr := i18n.New()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	sequenceRepo := repository.NewNumberSequenceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	ruleRepo := repository.NewPayrollRuleRepository(db)
	calcRepo := repository.NewPayrollCalculationRepository(db)

	auditService := service.NewAuditService(auditRepo)
	numberingService := service.NewNumberingService(sequenceRepo, txManager)
	roleService := service.NewRoleService(roleRepo, auditService, txManager)
	userService := service.NewUserService(userRepo, txManager, log, service.AuthOptions{
		Secret:          cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
	})
	employeeService := service.NewEmployeeService(employeeRepo, numberingService, auditService, txManager)
	ruleService := service.NewPayrollRuleService(ruleRepo, txManager, auditService, ruleCache, wsHub, log, cfg.Payroll.DefaultJurisdiction)
	payrollService := service.NewPayrollService(ruleService, calcRepo, employeeRepo, numberingService, auditService, txManager, log, service.PayrollOptions{
		DefaultJurisdiction: cfg.Payroll.DefaultJurisdiction,
		BatchMaxLines:       cfg.Payroll.BatchMaxLines,
	})
	exportService := service.NewExportService(calcRepo, exportStore, auditService, tr, log, service.ExportOptions{
		MaxRows: cfg.Payroll.ExportMaxRows,
		URLTTL:  cfg.S3.URLTTL,
	})

	seedCtx, cancelSeed := context.WithTimeout(ctx, 30*time.Second)
	if err := roleService.SeedDefaultRolesAndPermissions(seedCtx); err != nil {
		log.Warn("failed to seed roles and permissions", "error", err)
	}
	if err := numberingService.EnsureDefaults(seedCtx); err != nil {
		log.Warn("failed to seed number sequences", "error", err)
	}
	if err := userService.EnsureBootstrapAdmin(seedCtx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Warn("failed to create bootstrap admin", "error", err)
	}
	cancelSeed()

	auth := middleware.NewAuthenticator(middleware.AuthConfig{
		Secret:          cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
		SecureCookies:   cfg.JWT.SecureCookies,
	}, roleService, tr)

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService, auth, tr)
	roleHandler := handler.NewRoleHandler(roleService, auth, tr)
	auditHandler := handler.NewAuditHandler(auditService, auth, tr)
	employeeHandler := handler.NewEmployeeHandler(employeeService, auth, tr)
	ruleHandler := handler.NewPayrollRuleHandler(ruleService, auth, tr)
	payrollHandler := handler.NewPayrollHandler(payrollService, exportService, auth, tr)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log), middleware.Localize(tr))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "Accept-Language", middleware.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", middleware.HeaderRequestID}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "ws_clients": wsHub.Clients()})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, auth, c)
	})

	// API Routing
	userHandler.RegisterRoutes(router.Group(""))
	roleHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))
	employeeHandler.RegisterRoutes(router.Group(""))
	ruleHandler.RegisterRoutes(router.Group(""))
	payrollHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
