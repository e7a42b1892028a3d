package cli

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hygrometer/internal/bookmarks"
	"hygrometer/internal/config"
	"hygrometer/internal/eventbus"
	"hygrometer/internal/geocode"
	"hygrometer/internal/logging"
	"hygrometer/internal/ui"
)

// app holds the services shared by every command
type app struct {
	bus       eventbus.EventBus
	configSvc config.ConfigService
	cfg       *config.Config
	store     *bookmarks.SQLiteStore
	searcher  geocode.Searcher
	logCloser io.Closer
}

// setupApp loads configuration and opens the bookmark store and geocoder
func setupApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	offline, _ := cmd.Flags().GetBool("offline")

	bus := eventbus.New()
	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("load config: %w", err)
	}

	a := &app{bus: bus, configSvc: configSvc, cfg: cfg}

	logCloser, err := logging.Setup(logging.Options{
		Path:       cfg.LogPath(configSvc.Dir()),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		// the terminal belongs to the TUI, so stay quiet
		logging.Discard()
	} else {
		a.logCloser = logCloser
	}
	log.Printf("config: %s", configSvc.Path())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a.store, err = bookmarks.OpenSQLite(ctx, cfg.BookmarksPath(configSvc.Dir()), bus)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("open bookmarks: %w", err)
	}

	a.searcher, err = geocode.FromConfig(cfg.Geocoder, offline)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create geocoder: %w", err)
	}
	return a, nil
}

// Close releases the store, the bus and the log file
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Printf("Failed to close bookmarks: %v", err)
		}
	}
	a.bus.Close()
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}

// rememberSelection persists the picked region as the startup region
func (a *app) rememberSelection() func() {
	return a.bus.Subscribe(eventbus.EventRegionSelected, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.RegionSelectedEvent)
		if !ok {
			return
		}
		a.cfg.LastRegion = config.NewRegionConfig(event.Region)
		if err := a.configSvc.Save(a.cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			log.Printf("Config saved to %s", a.configSvc.Path())
		}
	})
}

// runTUI starts the full-screen program, optionally with a sheet open
func (a *app) runTUI(start *ui.StartSheet) error {
	defer a.rememberSelection()()

	model := ui.NewModel(ui.Options{
		Bus:      a.bus,
		Config:   a.cfg,
		Searcher: a.searcher,
		Store:    a.store,
		Start:    start,
	})

	log.Printf("Starting UI...")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(p)

	// bookmark changes made outside the sheet still refresh it
	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	defer a.bus.Subscribe(eventbus.EventBookmarkAdded, forward)()
	defer a.bus.Subscribe(eventbus.EventBookmarkRemoved, forward)()

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("run ui: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
