package main

import (
    "bufio"
    "context"
    "flag"
    "fmt"
    "io"
    "log"
    "os"
    "os/signal"
    "strings"
    "syscall"
    "time"

    "go.uber.org/zap"

    "cryptomonitor/internal/config"
    "cryptomonitor/internal/httpx"
    "cryptomonitor/internal/logging"
    "cryptomonitor/internal/monitor"
    "cryptomonitor/internal/provider/mercadobitcoin"
    "cryptomonitor/internal/quote"
)

func main() {
    var configPath string
    var locale string
    var timezone string
    var baseURL string
    var timeout int
    var once bool

    flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json or config.yaml (optional)")
    flag.StringVar(&locale, "locale", "", "display locale; formatted ones: "+supportedLocales())
    flag.StringVar(&timezone, "tz", "", "display timezone, e.g. America/Sao_Paulo")
    flag.StringVar(&baseURL, "base-url", "", "ticker API base URL")
    flag.IntVar(&timeout, "timeout", 0, "request timeout seconds")
    flag.BoolVar(&once, "once", getenvBool("MONITOR_ONCE", false), "fetch one quote, print it and exit")
    flag.Parse()

    cfg, err := config.Load(configPath)
    if err != nil { log.Fatalf("config: %v", err) }
    // Flags win over file and env
    if locale != "" { cfg.Display.Locale = locale }
    if timezone != "" { cfg.Display.Timezone = timezone }
    if baseURL != "" { cfg.Ticker.BaseURL = baseURL }
    if timeout > 0 { cfg.Ticker.TimeoutSec = timeout }

    logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
    if err != nil { log.Fatalf("logger: %v", err) }
    defer logger.Sync()

    tag, loc, err := cfg.Display.Resolve()
    if err != nil { logger.Fatal("display settings", zap.Error(err)) }

    httpClient := httpx.New(time.Duration(cfg.Ticker.TimeoutSec) * time.Second)
    httpClient.UserAgent = cfg.Ticker.UserAgent
    client := mercadobitcoin.NewClient(
        mercadobitcoin.WithBaseURL(cfg.Ticker.BaseURL),
        mercadobitcoin.WithHTTPClient(httpClient),
    )
    svc := monitor.NewService(client, monitor.WithLogger(logger))

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    if once {
        q, err := svc.GetQuote(ctx, tag, loc)
        if err != nil {
            fmt.Fprintln(os.Stderr, monitor.Message(err))
            os.Exit(1)
        }
        fmt.Printf("%s\n%s\n", q.Price, q.Timestamp)
        return
    }

    loop := monitor.NewLoop(16)
    screen := monitor.NewScreen(svc, loop, tag, loc)
    v := &view{out: os.Stdout}
    screen.Subscribe(v.render)
    screen.OnError(v.toast)

    v.header()
    v.render(screen.State())

    go readCommands(ctx, os.Stdin, loop, screen, stop)

    logger.Debug("monitor started",
        zap.String("source", client.Name()),
        zap.String("locale", tag.String()),
        zap.String("timezone", loc.String()),
    )
    _ = loop.Run(ctx)
}

// readCommands turns input lines into screen actions: an empty line (or
// "r") refreshes, "q" quits. End of input quits.
func readCommands(ctx context.Context, in io.Reader, ui monitor.Dispatcher, screen *monitor.Screen, quit func()) {
    defer quit()
    sc := bufio.NewScanner(in)
    for sc.Scan() {
        switch strings.ToLower(strings.TrimSpace(sc.Text())) {
        case "", "r", "refresh":
            ui.Post(func() { screen.Refresh(ctx) })
        case "q", "quit", "exit":
            return
        }
    }
}

// supportedLocales lists the locales with their own currency layout; others
// fall back to the first.
func supportedLocales() string {
    tags := quote.Supported()
    names := make([]string, len(tags))
    for i, t := range tags { names[i] = t.String() }
    return strings.Join(names, ", ")
}

func getenv(key, def string) string { if v := os.Getenv(key); v != "" { return v }; return def }
func getenvBool(key string, def bool) bool {
    if v := os.Getenv(key); v != "" {
        switch strings.ToLower(v) {
        case "1","true","yes","y": return true
        case "0","false","no","n": return false
        }
    }
    return def
}
