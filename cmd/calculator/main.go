package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/natefinch/lumberjack.v2"

	"llm-calculator/internal/calculator"
	"llm-calculator/internal/client"
	"llm-calculator/internal/completion"
	"llm-calculator/internal/config"
	"llm-calculator/internal/ui"
)

func main() {

	// Credentials may live in a .env next to the binary; a missing file is fine
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, logCleanup := setupLogger(cfg)
	defer logCleanup()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	llmClient, err := client.NewLLM(ctx, cfg)
	if err != nil {
		slog.Error("create llm failed", "error", err)
		os.Exit(1)
	}
	slog.Info("llm initialized", "llm", llmClient.Name())

	// A failed check is only reported: the calculator shows request errors as results anyway
	if cfg.LLM.VerifyOnStart {
		if checker, ok := llmClient.(interface{ Ping(context.Context) error }); ok {
			if err := checker.Ping(ctx); err != nil {
				slog.Warn("llm health check failed", "error", err)
			}
		}
	}

	metricsServer := startMetricsServer(cfg.Metrics.Listen)

	calc := calculator.New(completion.NewClient(llmClient))
	calc.OnChange(func(s calculator.State) {
		slog.Debug("state changed", "entry", s.Entry, "display", s.Display, "explain", s.ExplainEnabled, "busy", s.Busy)
	})

	a := app.New()
	a.Settings().SetTheme(ui.NewTheme())
	window := ui.NewWindow(ctx, a, cfg.Window, calc)

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			slog.Info("signal received, quitting")
			fyne.Do(a.Quit)
		case <-done:
		}
	}()

	slog.Info("calculator starting", "title", cfg.Window.Title)
	window.ShowAndRun()
	close(done)

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("metrics shutdown forced", "error", err)
		}
	}

	slog.Info("calculator stopped")
}

// startMetricsServer exposes Prometheus metrics on addr. An empty addr disables it.
func startMetricsServer(addr string) *http.Server {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("metrics server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			// The calculator keeps working without metrics
			slog.Error("metrics server failed", "error", err)
		}
	}()

	return server
}

// setupLogger creates a logger based on configuration
func setupLogger(cfg *config.Config) (*slog.Logger, func()) {
	var writers []io.Writer
	var closers []io.Closer
	outputs := strings.Split(cfg.Log.Output, ",")

	for _, output := range outputs {
		output = strings.TrimSpace(output)
		if output == "" {
			continue
		}

		var w io.Writer
		switch output {
		case "stderr":
			w = os.Stderr
		case "stdout":
			w = os.Stdout
		default:
			// Use lumberjack for log rotation
			l := &lumberjack.Logger{
				Filename:   output,
				MaxSize:    cfg.Log.Rotation.MaxSize,
				MaxBackups: cfg.Log.Rotation.MaxBackups,
				MaxAge:     cfg.Log.Rotation.MaxAge,
				Compress:   cfg.Log.Rotation.Compress,
			}
			w = l
			closers = append(closers, l)
		}
		writers = append(writers, w)
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	multiWriter := io.MultiWriter(writers...)
	opts := &slog.HandlerOptions{Level: cfg.GetLogLevel()}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(multiWriter, opts)
	} else {
		handler = slog.NewTextHandler(multiWriter, opts)
	}

	cleanup := func() {
		for _, c := range closers {
			c.Close()
		}
	}

	return slog.New(handler), cleanup
}
