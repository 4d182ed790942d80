// token mints a bearer token for a register terminal, signed with
// AUTH_TERMINAL_SECRET.
//
// Usage:
//
//	go run ./cmd/token -terminal kasir-01 -ttl 12h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/kasir/internal/config"
	"github.com/MrJamesThe3rd/kasir/internal/http/auth"
)

func main() {
	terminal := flag.String("terminal", "", "terminal id carried as the token subject")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *terminal == "" {
		slog.Error("terminal id is required")
		flag.Usage()
		os.Exit(2)
	}

	if *ttl <= 0 {
		slog.Error("ttl must be positive", "ttl", *ttl)
		os.Exit(2)
	}

	authn := auth.New(cfg.Auth.TerminalSecret)
	if !authn.Enabled() {
		slog.Error("AUTH_TERMINAL_SECRET is not set, nothing to sign with")
		os.Exit(1)
	}

	token, err := authn.Issue(*terminal, time.Now(), *ttl)
	if err != nil {
		slog.Error("failed to issue token", "terminal", *terminal, "error", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
