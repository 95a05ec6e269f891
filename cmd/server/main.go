package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oracle-backend/internal/config"
	"oracle-backend/internal/conversation"
	"oracle-backend/internal/handlers"
	"oracle-backend/internal/logger"
	"oracle-backend/internal/router"
	"oracle-backend/internal/services"
	"oracle-backend/internal/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port  string
		debug bool
	)

	cmd := &cobra.Command{
		Use:           "oracle-server",
		Short:         "Serve the Detective Oracle chat widget and its /ai endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(port, debug)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides PORT)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging (overrides LOG_LEVEL)")

	return cmd
}

func run(portFlag string, debugFlag bool) error {
	// ──── Step 1: Load Environment Variables ────
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(debugFlag)
		defer log.Sync()

		var missing *config.MissingConfigError
		if errors.As(err, &missing) {
			log.Error("✗ "+missing.Error(), zap.String("hint", missing.Hint()))
		} else {
			log.Error("✗ Configuration failed", zap.Error(err))
		}
		return err
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}
	if debugFlag {
		cfg.Debug = true
	}

	log := logger.New(cfg.Debug)
	defer log.Sync()
	log.Info("✓ API key loaded", zap.String("env", cfg.Env))

	// ──── Step 2: Initialize Gemini Client ────
	gemini, err := services.NewGeminiService(
		context.Background(),
		cfg.GoogleAPIKey,
		cfg.GeminiModel,
		conversation.SystemInstruction,
		log,
	)
	if err != nil {
		log.Error("✗ Gemini client initialization failed", zap.Error(err))
		return err
	}
	defer gemini.Close()
	log.Info("✓ Gemini client initialized", zap.String("model", cfg.GeminiModel))

	// ──── Step 3: Wire Services and Handlers ────
	oracle := services.NewOracleService(gemini, conversation.Seed(), cfg.UpstreamTimeout, log)
	aiHandler := handlers.NewAIHandler(oracle)

	assets, err := web.Assets(cfg.StaticDir)
	if err != nil {
		log.Error("✗ Static bundle unavailable", zap.String("dir", cfg.StaticDir), zap.Error(err))
		return err
	}

	// ──── Step 4: Start HTTP Server ────
	r := router.New(aiHandler, assets, cfg.CORSOrigin, log)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		log.Error("✗ Listen failed", zap.String("addr", server.Addr), zap.Error(err))
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	log.Info(fmt.Sprintf("✓ Server running at http://localhost:%s", cfg.Port))
	log.Info(fmt.Sprintf("  Open http://localhost:%s in your browser", cfg.Port))

	return serve(server, ln, sigChan, log)
}

// serve runs server on ln until stop fires, then returns only after in-flight
// requests have drained (or the 30s shutdown budget is spent).
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, log *zap.Logger) error {
	done := make(chan struct{})

	// Graceful shutdown
	go func() {
		defer close(done)
		<-stop

		log.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Warn("Shutdown did not complete cleanly", zap.Error(err))
		}
	}()

	if err := server.Serve(ln); err != http.ErrServerClosed {
		log.Error("Server error", zap.Error(err))
		return err
	}
	<-done
	return nil
}
