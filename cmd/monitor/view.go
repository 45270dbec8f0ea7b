package main

import (
    "fmt"
    "io"

    "cryptomonitor/internal/monitor"
)

// view renders screen states as plain text lines.
type view struct {
    out io.Writer
}

func (v *view) header() {
    fmt.Fprintln(v.out, "Monitor de Crypto Moedas - BITCOIN")
    fmt.Fprintln(v.out, "[Enter] ATUALIZAR   [q] sair")
}

func (v *view) render(s monitor.State) {
    if s.Pending {
        fmt.Fprintln(v.out, "atualizando...")
        return
    }
    fmt.Fprintf(v.out, "Cotação - BITCOIN: %s  (%s)\n", s.Value, s.Date)
}

func (v *view) toast(msg string) {
    fmt.Fprintf(v.out, "! %s\n", msg)
}
