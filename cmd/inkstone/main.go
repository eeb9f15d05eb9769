// cmd/inkstone/main.go
//
// Entry point for inkstone. With no arguments it wires the host side (content
// manager + bridge) and the TUI together in one process and runs the TUI.
// Subcommands:
//
//	inkstone list        print the registered content documents
//	inkstone edit <id>   open one document in the configured editor, no TUI

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomvale/inkstone/internal/bridge"
	"github.com/tomvale/inkstone/internal/content"
	"github.com/tomvale/inkstone/internal/editor"
	"github.com/tomvale/inkstone/internal/logging"
	"github.com/tomvale/inkstone/internal/settings"
	"github.com/tomvale/inkstone/internal/tui"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "list":
			runList()
			return
		case "edit":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: inkstone edit <id>")
				runList()
				os.Exit(2)
			}
			runEdit(os.Args[2])
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
			os.Exit(2)
		}
	}
	runTUI()
}

func runList() {
	for _, id := range content.All() {
		fmt.Printf("%-22s %s\n", id, id.FileName())
	}
}

func runEdit(name string) {
	id, ok := content.Parse(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown content id %q; known documents:\n", name)
		runList()
		os.Exit(2)
	}
	dir, cfg, logger := setup()
	defer logger.Close()
	mgr := content.NewManager(content.Deps{
		SettingsDir: dir,
		Store:       content.Store{},
		Editor:      editor.Command{Name: cfg.EditorCommand()},
		Logger:      logger,
	})
	if err := mgr.Open(id); err != nil {
		logger.Printf("edit %s: %v", id, err)
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", id, err)
		os.Exit(1)
	}
	if err := mgr.Refresh(id); err != nil {
		logger.Printf("refresh %s: %v", id, err)
		fmt.Fprintf(os.Stderr, "Error refreshing %s: %v\n", id, err)
		os.Exit(1)
	}
}

func runTUI() {
	dir, cfg, logger := setup()
	defer logger.Close()

	b := bridge.New(bridge.WithLogger(logger))
	mgr := content.NewManager(content.Deps{
		SettingsDir: dir,
		Store:       content.Store{},
		Editor:      editor.Command{Name: cfg.EditorCommand()},
		Notifier:    b.Notifier(),
		Logger:      logger,
	})

	hostSub := b.SubscribeHost()
	go bridge.ServeHost(hostSub, mgr, logger)
	defer hostSub.Close()

	// Initial full state push; the UI's subscription picks it up from the
	// bridge backlog once it attaches.
	b.Notifier().StateChanged(mgr.Snapshot())

	p := tea.NewProgram(
		tui.NewApp(b, dir, cfg),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		logger.Printf("tui: %v", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// setup resolves the settings directory, loads settings.yaml, and opens the
// log file. A failed logger is reported but not fatal; logging.Logger is
// nil-safe.
func setup() (string, settings.Settings, *logging.Logger) {
	dir, err := settings.Dir("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving settings directory: %v\n", err)
		os.Exit(1)
	}
	cfg, err := settings.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = nil
	}
	return dir, cfg, logger
}
