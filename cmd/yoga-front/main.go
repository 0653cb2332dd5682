package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yoga-front/config"
	"yoga-front/internal/adapter/gateway"
	adapterhandler "yoga-front/internal/adapter/handler"
	"yoga-front/internal/infrastructure/flash"
	"yoga-front/internal/infrastructure/state"
	"yoga-front/internal/usecase"
	appmiddleware "yoga-front/middleware"
	"yoga-front/utils/logger"
	"yoga-front/utils/otel"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Handle healthcheck subcommand (for Docker healthcheck in distroless image)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Local development env file, ignored when absent
	_ = godotenv.Load()

	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		slog.Warn("failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		otelCfg.Enabled = false
	}

	// Initialize structured logger
	logger.Init(otelCfg.Enabled)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"api_base_url", cfg.APIBaseURL,
		"port", cfg.Port,
		"request_timeout", cfg.RequestTimeout)

	// Infrastructure
	sessionState := state.NewHolder()
	flashes := flash.NewStore(cfg.FlashSecret)
	apiClient := gateway.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, sessionState)
	authGateway := gateway.NewAuthGateway(apiClient)
	sessionGateway := gateway.NewSessionGateway(apiClient)
	teacherGateway := gateway.NewTeacherGateway(apiClient)
	userGateway := gateway.NewUserGateway(apiClient)

	// Usecases
	signInUC := usecase.NewSignIn(authGateway, sessionState, slog.Default())
	signUpUC := usecase.NewSignUp(authGateway, slog.Default())
	signOutUC := usecase.NewSignOut(sessionState, slog.Default())
	browseUC := usecase.NewBrowseSessions(sessionGateway, slog.Default())
	detailUC := usecase.NewGetSessionDetail(sessionGateway, teacherGateway, slog.Default())
	saveUC := usecase.NewSaveSession(sessionGateway, slog.Default())
	deleteUC := usecase.NewDeleteSession(sessionGateway, slog.Default())
	participationUC := usecase.NewParticipation(sessionGateway, sessionState, slog.Default())
	teachersUC := usecase.NewListTeachers(teacherGateway, slog.Default())
	accountUC := usecase.NewAccount(userGateway, sessionState, slog.Default())

	// Handlers
	authHandler := adapterhandler.NewAuthHandler(signInUC, signUpUC, signOutUC, sessionState, flashes)
	sessionHandler := adapterhandler.NewSessionHandler(browseUC, detailUC, saveUC, deleteUC, participationUC, teachersUC, sessionState, flashes)
	accountHandler := adapterhandler.NewAccountHandler(accountUC, sessionState, flashes)
	healthHandler := adapterhandler.NewHealthHandler()

	// Setup Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = adapterhandler.NewRenderer()

	// Security middleware
	e.Use(appmiddleware.SecurityHeaders())

	// OpenTelemetry tracing
	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
	}

	// Request logging
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			rctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(rctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(rctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(middleware.Recover())

	// Rate limiter on credential endpoints
	authRL := appmiddleware.NewRateLimiter(30.0/60.0, 5) // 30 req/min

	// Public routes
	e.GET("/", authHandler.Home)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.LoginSubmit, authRL.Middleware())
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.RegisterSubmit, authRL.Middleware())
	e.GET("/logout", authHandler.Logout)
	e.GET("/health", healthHandler.Handle)
	e.StaticFS("/static", echo.MustSubFS(adapterhandler.StaticFS, "static"))

	// Routes behind the login guard
	logged := e.Group("", appmiddleware.RequireLogin(sessionState))
	logged.GET("/sessions", sessionHandler.List)
	logged.GET("/sessions/detail/:id", sessionHandler.Detail)
	logged.POST("/sessions/:id/participate", sessionHandler.Participate)
	logged.POST("/sessions/:id/unparticipate", sessionHandler.Unparticipate)
	logged.GET("/me", accountHandler.Me)
	logged.POST("/me/delete", accountHandler.DeleteMe)

	// Admin-only session management
	admin := e.Group("", appmiddleware.RequireAdmin(sessionState))
	admin.GET("/sessions/create", sessionHandler.CreatePage)
	admin.POST("/sessions/create", sessionHandler.CreateSubmit)
	admin.GET("/sessions/update/:id", sessionHandler.UpdatePage)
	admin.POST("/sessions/update/:id", sessionHandler.UpdateSubmit)
	admin.POST("/sessions/:id/delete", sessionHandler.Delete)

	// Start server with errgroup for graceful shutdown
	address := fmt.Sprintf(":%s", cfg.Port)
	slog.InfoContext(ctx, "starting yoga-front server", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "4200"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
