package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toasts/internal/core/styles"
	"github.com/colonyops/toasts/internal/core/toast"
	"github.com/colonyops/toasts/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "simulate",
			Usage:       "push a sample toast from a background goroutine at this interval (e.g. 2s)",
			Sources:     cli.EnvVars("TOASTS_SIMULATE"),
			Destination: &cmd.flags.Simulate,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	cfg, err := cmd.flags.LoadConfig()
	if err != nil {
		return err
	}
	styles.SetTheme(cfg.Palette())

	manager := toast.NewManager(cfg.ManagerOptions()...)
	model := tui.New(manager)

	log.Info().
		Str("theme", cfg.TUI.Theme).
		Dur("default_duration", cfg.Toasts.DefaultDuration).
		Dur("error_duration", cfg.Toasts.ErrorDuration).
		Int("max_visible", cfg.Toasts.MaxVisible).
		Msg("starting tui")

	if cmd.flags.Simulate > 0 {
		simCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go tui.Simulate(simCtx, model.Inbox(), cmd.flags.Simulate)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
