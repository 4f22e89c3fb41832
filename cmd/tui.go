package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/applyx/internal/shared"
	"github.com/desertthunder/applyx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	logPath := r.config.Log.File
	if logPath == "" {
		logPath = "./tmp/applyx-tui.log"
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, shared.ParseLogLevel(r.config.Log.Level))
	r.SetLogger(fileLogger)

	renderer := ui.NewRenderer(64)
	defer renderer.Close()

	a, err := r.newApp(renderer)
	if err != nil {
		return err
	}
	defer a.Close()
	renderer.Watch(a.toasts, a.router)

	model := ui.NewModel(ui.ModelOpts{
		Context:    ctx,
		Controller: a.ctrl,
		Router:     a.router,
		Renderer:   renderer,
		OpenURL:    r.openURL,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
