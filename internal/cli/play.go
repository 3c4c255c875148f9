package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"recall/internal/app"
	"recall/internal/config"
	"recall/internal/logging"
	"recall/internal/tui"
)

type playOptions struct {
	text   string
	count  string
	sample bool
}

func newPlayCmd() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Practise in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, closeLog, err := logging.SetupFile(cfg.Logging)
			if err != nil {
				return err
			}
			defer closeLog()

			program := tea.NewProgram(tui.NewModel(opts.modelOptions(logger, cfg.Drill.MaxTextBytes)), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run terminal ui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "text to memorise")
	cmd.Flags().StringVar(&opts.count, "count", "", "words removed per step")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "start with a random sample passage")

	return cmd
}

func (o playOptions) modelOptions(logger *slog.Logger, maxTextBytes int64) tui.Options {
	return tui.Options{
		Text:         o.initialText(),
		Count:        o.count,
		MaxTextBytes: maxTextBytes,
		Logger:       logger,
	}
}

// initialText picks the text the terminal screen opens with
func (o playOptions) initialText() string {
	if o.text == "" && o.sample {
		return app.RandomPassage()
	}
	return o.text
}
