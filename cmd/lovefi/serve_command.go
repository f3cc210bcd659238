package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MatheusHenriqueCIN/lovefi/internal/adapters/openai"
	"github.com/MatheusHenriqueCIN/lovefi/internal/adapters/rest"
	"github.com/MatheusHenriqueCIN/lovefi/internal/adapters/youtube"
	"github.com/MatheusHenriqueCIN/lovefi/internal/config"
	"github.com/MatheusHenriqueCIN/lovefi/internal/core/services"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the lovefi API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// Crash early if required config is missing.
	cfg := config.Load()
	if cfg.OpenAIAPIKey == "" || cfg.YouTubeAPIKey == "" {
		return errors.New("OPENAI_API_KEY and YOUTUBE_API_KEY environment variables are required")
	}

	// Driven adapters: the language model and the video platform.
	synth := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	search := youtube.NewClient(cfg.YouTubeAPIKey, cfg.YouTubeBaseURL)

	// Core pipeline with the adapters injected behind the ports.
	svc := services.NewPipeline(synth, search)

	// Driving adapter: the HTTP interface.
	handler := rest.NewHandler(svc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Println("------------------------------------------------")
	log.Printf("🎶 lovefi API is running on http://localhost%s", addr)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}
