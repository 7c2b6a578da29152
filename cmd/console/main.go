package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/realm-engine/internal/config"
	"github.com/jwebster45206/realm-engine/internal/logger"
	"github.com/jwebster45206/realm-engine/internal/storage"
	"github.com/jwebster45206/realm-engine/pkg/engine"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	var store engine.Store
	if cfg.RedisAddr != "" {
		rs := storage.NewRedisStore(cfg.RedisAddr, log)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := rs.WaitForConnection(ctx)
		cancel()
		if err != nil {
			log.Warn("Redis unavailable, saves are in-memory only", "addr", cfg.RedisAddr, "error", err)
			store = storage.NewMemoryStore()
		} else {
			defer func() {
				_ = rs.Close() // Ignore error in defer
			}()
			store = rs
		}
	} else {
		log.Info("No REDIS_ADDR configured, saves are in-memory only")
		store = storage.NewMemoryStore()
	}

	eng := engine.New(store, log, cfg.Seed)
	gs := eng.NewSession()

	p := tea.NewProgram(NewConsoleUI(eng, gs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
