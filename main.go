package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"swipe/internal/config"
	"swipe/internal/discovery"
	"swipe/internal/eventbus"
	"swipe/internal/ui"
)

func main() {
	// Parse command line arguments
	var targetDir, configPath, logPath string
	flag.StringVar(&targetDir, "dir", "", "Directory holding the panels (.md and .txt files)")
	flag.StringVar(&targetDir, "d", "", "Directory holding the panels (shorthand)")
	flag.StringVar(&configPath, "config", "", "Config file (default <panels dir>/"+config.FileName+")")
	flag.StringVar(&logPath, "log", "swipe.log", "Log file")
	flag.Parse()

	explicitDir := targetDir != "" || flag.NArg() > 0
	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}
	if targetDir == "" {
		var err error
		targetDir, err = os.Getwd()
		if err != nil {
			fmt.Printf("Error getting current directory: %v\n", err)
			os.Exit(1)
		}
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	if configPath == "" {
		configPath = config.DefaultPath(absDir)
	}
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, loadErr := configSvc.Load()
	if loadErr != nil {
		log.Printf("Failed to load config from %s: %v", configPath, loadErr)
		cfg = config.DefaultConfig()
	}
	cfg.PanelsDir = resolvePanelsDir(cfg.PanelsDir, absDir, explicitDir)
	log.Printf("Panels directory: %s", cfg.PanelsDir)

	discoverySvc := discovery.NewDiscoveryService(bus)

	uiModel := ui.NewModel(bus, cfg, configSvc)
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventPanelsLoaded,
		eventbus.EventError,
		eventbus.EventScanStarted,
		eventbus.EventScanCompleted,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forward)
	}
	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageChangedEvent); ok {
			log.Printf("Page %d/%d", event.Page+1, event.Count)
		}
	})
	if os.Getenv("SWIPE_E2E_TEST") == "1" {
		bus.Subscribe(eventbus.EventAppReady, func(eventbus.DomainEvent) {
			fmt.Fprint(os.Stderr, "__READY__")
		})
	}

	if loadErr != nil {
		bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("config: %v", loadErr),
			Err:     loadErr,
		})
	}

	if cfg.UISettings.WatchPanels {
		if err := discoverySvc.Watch(ctx, cfg.PanelsDir); err != nil {
			log.Printf("Could not watch %s: %v", cfg.PanelsDir, err)
		}
	}
	go discoverySvc.StartScan(ctx, cfg.PanelsDir)

	log.Printf("Starting UI...")
	_, runErr := p.Run()

	cancel()
	discoverySvc.StopScan()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", runErr)
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// resolvePanelsDir picks the directory to scan. A directory given on the
// command line wins; otherwise a relative panels_dir from the config is
// taken relative to the working directory.
func resolvePanelsDir(configured, dir string, explicit bool) string {
	if explicit || configured == "" || configured == "." {
		return dir
	}
	abs, err := filepath.Abs(configured)
	if err != nil {
		return dir
	}
	return abs
}
