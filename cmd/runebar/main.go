package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/runebar/runebar/internal/cliphist"
	"github.com/runebar/runebar/internal/config"
	"github.com/runebar/runebar/internal/host"
	"github.com/runebar/runebar/internal/ui"
	"github.com/runebar/runebar/internal/ui/styles"
)

func main() {
	closeLog := setupLogging()
	defer closeLog()

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "runebar: invalid config: %v\n", err)
		os.Exit(1)
	}
	styles.DetectBackground()

	executor := &host.Executor{
		Editor:  os.Getenv("EDITOR"),
		History: cliphist.New(cliphist.DefaultLimit),
	}
	model := ui.New(executor)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "runebar: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends logs to a file next to the config; stderr belongs to
// the terminal UI. RUNEBAR_LOG=debug turns on debug logging.
func setupLogging() func() {
	log.SetLevel(log.WarnLevel)
	if level, err := log.ParseLevel(os.Getenv("RUNEBAR_LOG")); err == nil && os.Getenv("RUNEBAR_LOG") != "" {
		log.SetLevel(level)
	}

	dir := config.GetConfigDir()
	if dir == "" {
		log.SetOutput(os.Stderr)
		return func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "runebar.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }
}
