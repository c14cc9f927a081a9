package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hayate891/naev/internal/config"
	"github.com/hayate891/naev/internal/logger"
	"github.com/hayate891/naev/internal/storage"
	"github.com/hayate891/naev/pkg/event"
	"github.com/hayate891/naev/pkg/gfx"
	"github.com/hayate891/naev/pkg/mission"
	"github.com/hayate891/naev/pkg/npc"
	"github.com/hayate891/naev/pkg/state"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// alertSink collects dialogue alerts raised during an interaction so the
// UI can show them as a modal after the dispatch returns.
type alertSink struct {
	pending []string
}

func (a *alertSink) Alert(msg string) {
	a.pending = append(a.pending, msg)
}

func (a *alertSink) take() (string, bool) {
	if len(a.pending) == 0 {
		return "", false
	}
	msg := a.pending[0]
	a.pending = a.pending[1:]
	return msg, true
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	var store storage.Storage
	if cfg.RedisURL != "" {
		rs, err := storage.NewRedisStorage(cfg.RedisURL, cfg.DataDir, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to set up storage: %v\n", err)
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := rs.Ping(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Could not connect to Redis at %s: %v\n", cfg.RedisURL, err)
			os.Exit(1)
		}
		store = rs
	} else {
		// No Redis configured: run fully in memory with a built-in
		// catalog so the client works out of the box.
		mock := storage.NewMockStorage()
		for filename, d := range builtinCatalog() {
			mock.AddMission(filename, d)
		}
		store = mock
		log.Info("No REDIS_URL set, using in-memory storage")
	}
	defer func() { _ = store.Close() }()

	catalog, err := store.ListMissions(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load mission catalog: %v\n", err)
		os.Exit(1)
	}

	cache := gfx.NewCache(log)
	engine := mission.NewEngine(catalog, cache, cfg.MaxActiveMissions, log)
	events := event.NewManager(log)
	sink := &alertSink{}

	session := state.NewSession()
	session.Land(
		getEnv("SPOB", "Em 1"),
		getEnv("SYSTEM", "Hakoi"),
		getEnv("FACTION", "Empire"),
	)
	if err := store.SaveSession(context.Background(), session); err != nil {
		logger.WithError(log, err).Warn("Failed to persist session")
	}

	registry := npc.NewRegistry(session, engine, events, sink, cache, log)

	// A running event seeds its own patron before the bar fills up.
	spacer := events.Start("old_spacer")
	spacer.RegisterHook("chat", func(id uint32) error {
		sink.Alert("The old spacer rambles about the jump routes of her youth.")
		return nil
	})
	if _, err := registry.AddEvent(spacer.ID, "chat", "Old Spacer", 10,
		"gfx/portraits/spacer.webp", "An old spacer nurses a drink in the corner."); err != nil {
		logger.WithError(log, err).Warn("Failed to seed event patron")
	}

	if err := registry.Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to populate the bar: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newBarUI(registry, engine, session, sink), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	// Departure tears the bar down; the session outlives it.
	registry.Close()
	session.Depart()
	if err := store.SaveSession(context.Background(), session); err != nil {
		logger.WithError(log, err).Warn("Failed to persist session")
	}
}

// builtinCatalog is the demo mission set used when no data directory is
// wired up.
func builtinCatalog() map[string]*mission.Data {
	return map[string]*mission.Data{
		"cargo_run.json": {
			Name:        "cargo_run",
			NPC:         "Harried Trader",
			Portrait:    "gfx/portraits/trader.webp",
			Description: "A trader drums her fingers on the bar, eyeing every pilot who walks in.",
			Avail:       mission.Avail{Location: mission.AvailabilityBar, Priority: 5},
		},
		"urgent_courier.json": {
			Name:        "urgent_courier",
			NPC:         "Nervous Courier",
			Portrait:    "gfx/portraits/courier.webp",
			Description: "A courier keeps glancing at the door. Whatever the package is, it can't wait.",
			Avail:       mission.Avail{Location: mission.AvailabilityBar, Priority: 1},
		},
		"patrol_escort.json": {
			Name:        "patrol_escort",
			NPC:         "Empire Liaison",
			Portrait:    "gfx/portraits/liaison.webp",
			Description: "A uniformed liaison sits too straight for this bar, a contract folder by her glass.",
			Avail:       mission.Avail{Location: mission.AvailabilityBar, Priority: 3, Chance: 80},
			Factions:    []string{"Empire"},
		},
	}
}
