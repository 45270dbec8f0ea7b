package main

import (
    "context"
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "go.uber.org/zap"

    "cryptomonitor/internal/config"
    "cryptomonitor/internal/monitor"
)

// quoteHandler serves one fetch cycle per request.
type quoteHandler struct {
    quoter  monitor.Quoter
    display config.Display
    timeout time.Duration
    logger  *zap.Logger
}

func newRouter(h *quoteHandler, gatherer prometheus.Gatherer, logger *zap.Logger) *gin.Engine {
    r := gin.New()
    r.Use(recoverPanic(logger), withCORS())
    h.RegisterRoutes(r)
    r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
    r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
    return r
}

func (h *quoteHandler) RegisterRoutes(r *gin.Engine) {
    r.GET("/api/quote", h.GetQuote)
}

// GetQuote answers GET /api/quote?locale=&tz=. Missing parameters fall back
// to the configured display settings.
func (h *quoteHandler) GetQuote(c *gin.Context) {
    locale := c.DefaultQuery("locale", h.display.Locale)
    tz := c.DefaultQuery("tz", h.display.Timezone)
    tag, loc, err := config.ParseDisplay(locale, tz)
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    ctx := c.Request.Context()
    if h.timeout > 0 {
        var cancel context.CancelFunc
        ctx, cancel = context.WithTimeout(ctx, h.timeout)
        defer cancel()
    }
    q, err := h.quoter.GetQuote(ctx, tag, loc)
    if err != nil {
        h.logger.Warn("quote request failed", zap.Error(err))
        c.JSON(http.StatusBadGateway, gin.H{"error": monitor.Message(err)})
        return
    }
    c.JSON(http.StatusOK, q)
}

func withCORS() gin.HandlerFunc {
    return func(c *gin.Context) {
        c.Header("Access-Control-Allow-Origin", "*")
        c.Header("Access-Control-Allow-Methods", "GET,OPTIONS")
        c.Header("Access-Control-Allow-Headers", "Content-Type")
        if c.Request.Method == http.MethodOptions {
            c.AbortWithStatus(http.StatusNoContent)
            return
        }
        c.Next()
    }
}

// recoverPanic turns handler panics into a logged 500.
func recoverPanic(logger *zap.Logger) gin.HandlerFunc {
    return func(c *gin.Context) {
        defer func() {
            if rec := recover(); rec != nil {
                logger.Error("panic in handler", zap.Any("panic", rec), zap.String("path", c.Request.URL.Path))
                c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
            }
        }()
        c.Next()
    }
}
