package main

import (
    "bufio"
    "bytes"
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "io"
    "log"
    "net/http"
    "os"
    "strings"
    "time"

    "cryptomonitor/internal/config"
    "cryptomonitor/internal/httpx"
)

func main() {
    var (
        cfgPath    string
        baseURL    string
        coin       string
        outPath    string
        timeoutSec int
    )
    flag.StringVar(&cfgPath, "config", "", "path to config.json or config.yaml (optional)")
    flag.StringVar(&baseURL, "base-url", "", "ticker API base URL (default from config)")
    flag.StringVar(&coin, "coin", "BTC", "coin symbol in the ticker path")
    flag.StringVar(&outPath, "out", "", "write the body to this file instead of stdout")
    flag.IntVar(&timeoutSec, "timeout", 0, "HTTP timeout seconds (default from config)")
    flag.Parse()

    cfg, err := config.Load(cfgPath)
    if err != nil {
        log.Fatalf("config: %v", err)
    }
    if baseURL != "" { cfg.Ticker.BaseURL = baseURL }
    if timeoutSec > 0 { cfg.Ticker.TimeoutSec = timeoutSec }

    hc := httpx.New(time.Duration(cfg.Ticker.TimeoutSec) * time.Second)
    hc.UserAgent = cfg.Ticker.UserAgent

    ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Ticker.TimeoutSec)*time.Second)
    defer cancel()

    url := tickerURL(cfg.Ticker.BaseURL, coin)
    status, body, err := fetch(ctx, hc, url)
    if err != nil {
        log.Fatalf("GET %s: %v", url, err)
    }
    log.Printf("GET %s -> %s (%d bytes)", url, status, len(body))

    var out io.Writer = os.Stdout
    if outPath != "" {
        f, err := os.Create(outPath)
        if err != nil {
            log.Fatalf("create out: %v", err)
        }
        defer f.Close()
        out = f
    }
    bw := bufio.NewWriter(out)
    if _, err := bw.Write(pretty(body)); err != nil {
        log.Fatalf("write: %v", err)
    }
    if err := bw.Flush(); err != nil {
        log.Fatalf("flush: %v", err)
    }
}

func tickerURL(base, coin string) string {
    return fmt.Sprintf("%s/api/%s/ticker/", strings.TrimRight(base, "/"), strings.ToUpper(coin))
}

// fetch performs the raw GET and returns the status line and body, whatever
// the status code.
func fetch(ctx context.Context, hc *httpx.Client, url string) (string, []byte, error) {
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
    if err != nil { return "", nil, err }
    req.Header.Set("Accept", "application/json")
    resp, err := hc.Do(req)
    if err != nil { return "", nil, err }
    defer resp.Body.Close()
    b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
    if err != nil { return resp.Status, nil, fmt.Errorf("read body: %w", err) }
    return resp.Status, b, nil
}

// pretty indents JSON bodies and passes anything else through.
func pretty(b []byte) []byte {
    var buf bytes.Buffer
    if err := json.Indent(&buf, b, "", "  "); err != nil {
        return append(b, '\n')
    }
    buf.WriteByte('\n')
    return buf.Bytes()
}
