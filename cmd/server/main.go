package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/collectors"
    "go.uber.org/zap"

    "cryptomonitor/internal/config"
    "cryptomonitor/internal/httpx"
    "cryptomonitor/internal/logging"
    "cryptomonitor/internal/metrics"
    "cryptomonitor/internal/monitor"
    "cryptomonitor/internal/provider/mercadobitcoin"
)

func main() {
    // Config
    cfgPath := os.Getenv("CONFIG_FILE")
    cfg, err := config.Load(cfgPath)
    if err != nil { log.Fatalf("config: %v", err) }

    logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
    if err != nil { log.Fatalf("logger: %v", err) }
    defer logger.Sync()

    // Fail fast on a bad default display instead of on the first request
    if _, _, err := cfg.Display.Resolve(); err != nil {
        logger.Fatal("display settings", zap.Error(err))
    }

    httpClient := httpx.New(time.Duration(cfg.Ticker.TimeoutSec) * time.Second)
    httpClient.UserAgent = cfg.Ticker.UserAgent
    client := mercadobitcoin.NewClient(
        mercadobitcoin.WithBaseURL(cfg.Ticker.BaseURL),
        mercadobitcoin.WithHTTPClient(httpClient),
    )

    reg := prometheus.NewRegistry()
    reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
    svc := monitor.NewService(client, monitor.WithLogger(logger), monitor.WithMetrics(metrics.New(reg)))

    gin.SetMode(gin.ReleaseMode)
    h := &quoteHandler{
        quoter:  svc,
        display: cfg.Display,
        timeout: time.Duration(cfg.Server.RequestTimeoutSec) * time.Second,
        logger:  logger,
    }
    router := newRouter(h, reg, logger)

    srv := &http.Server{
        Addr:              ":" + cfg.Server.Port,
        Handler:           router,
        ReadHeaderTimeout: 5 * time.Second,
        ReadTimeout:       15 * time.Second,
        WriteTimeout:      20 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    go func() {
        logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("source", client.Name()))
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            logger.Fatal("server", zap.Error(err))
        }
    }()

    // graceful shutdown
    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()
    <-ctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Warn("shutdown", zap.Error(err))
    }
}
