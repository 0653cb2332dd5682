// Command yoga-backend-mock runs the in-memory yoga REST API for local
// development of the front end.
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

	"yoga-front/internal/backendmock"
	"yoga-front/internal/infrastructure/token"
	"yoga-front/utils/logger"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	_ = godotenv.Load()
	logger.Init(false)

	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "8080"
	}
	secret := os.Getenv("MOCK_TOKEN_SECRET")
	if secret == "" {
		secret = "yoga-backend-mock-dev"
	}

	issuer := token.NewIssuer(token.Config{
		Secret: secret,
		Issuer: "yoga-backend-mock",
		TTL:    24 * time.Hour,
	})

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           backendmock.New(issuer).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.InfoContext(ctx, "starting yoga-backend-mock", "address", server.Addr)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}
