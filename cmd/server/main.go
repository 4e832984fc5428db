package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	defenseapp "github.com/thesisdesk/backend/internal/application/defense"
	identityapp "github.com/thesisdesk/backend/internal/application/identity"
	thesisapp "github.com/thesisdesk/backend/internal/application/thesis"
	"github.com/thesisdesk/backend/internal/infrastructure/auth"
	"github.com/thesisdesk/backend/internal/infrastructure/config"
	"github.com/thesisdesk/backend/internal/infrastructure/event"
	"github.com/thesisdesk/backend/internal/infrastructure/logger"
	"github.com/thesisdesk/backend/internal/infrastructure/persistence"
	"github.com/thesisdesk/backend/internal/interfaces/http/handler"
	"github.com/thesisdesk/backend/internal/interfaces/http/middleware"
	"github.com/thesisdesk/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting thesisdesk backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	topicRepo := persistence.NewGormTopicRepository(db.DB)
	groupRepo := persistence.NewGormGroupRepository(db.DB)
	defenseRepo := persistence.NewGormDefenseRepository(db.DB)
	lecturerDefenseRepo := persistence.NewGormLecturerDefenseRepository(db.DB)
	planRepo := persistence.NewGormPlanRepository(db.DB)
	txManager := persistence.NewGormTransactionManager(db.DB)

	// Event bus with a logging subscriber for audit trails
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewLoggingEventHandler(log))
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Token infrastructure. Redis backs the logout blacklist; a process-local
	// blacklist keeps the server usable when Redis is unreachable in dev.
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Warn("Redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, eventBus, log)
	topicService := thesisapp.NewTopicService(topicRepo, log)
	groupService := thesisapp.NewGroupService(groupRepo, topicRepo, userRepo, log)
	defenseService := defenseapp.NewDefenseService(defenseRepo, txManager, eventBus, log)
	planService := defenseapp.NewPlanService(planRepo, defenseRepo, groupRepo, lecturerDefenseRepo, log)
	scoreService := defenseapp.NewScoreService(lecturerDefenseRepo, groupRepo, userRepo, defenseRepo, eventBus, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(&router.HealthRoutes{Handler: handler.NewHealthHandler(db.DB)}).
		Register(&router.AuthRoutes{Handler: handler.NewAuthHandler(authService)}).
		Register(&router.UserRoutes{Handler: handler.NewUserHandler(userService)}).
		Register(&router.TopicRoutes{Handler: handler.NewTopicHandler(topicService)}).
		Register(&router.GroupRoutes{Handler: handler.NewGroupHandler(groupService)}).
		Register(&router.DefenseRoutes{Handler: handler.NewDefenseHandler(defenseService)}).
		Register(&router.PlanRoutes{Handler: handler.NewPlanHandler(planService)}).
		Register(&router.LecturerDefenseRoutes{Handler: handler.NewLecturerDefenseHandler(scoreService)})
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
