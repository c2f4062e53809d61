package commands

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/katalvlaran/katas/internal/config"
)

// session is the per-invocation state shared by subcommands. It is filled
// in by the root PersistentPreRunE.
type session struct {
	output  string
	cfg     config.Config
	log     *slog.Logger
	printer *message.Printer
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:          "katas",
		Short:        "Small algorithmic katas",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = s.output
			}
			if cfg.Output, err = config.ParseOutput(cfg.Output); err != nil {
				return err
			}
			tag, err := cfg.Tag()
			if err != nil {
				return err
			}

			s.cfg = cfg
			s.log = cfg.NewLogger(cmd.ErrOrStderr())
			s.printer = message.NewPrinter(tag)
			s.log.Debug("command start", "cmd", cmd.Name(), "args", args, "output", cfg.Output)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			s.log.Debug("command done", "cmd", cmd.Name())
		},
	}

	root.PersistentFlags().StringVarP(&s.output, "output", "o", config.OutputText, "output format: text|json")

	root.AddCommand(
		compassCmd(s),
		expandCmd(s),
		zigzagCmd(s),
		dominoesCmd(s),
		rangesCmd(s),
	)
	return root
}

func (s *session) wantJSON() bool { return s.cfg.Output == config.OutputJSON }

// emit writes v as JSON when requested, otherwise calls text.
func (s *session) emit(w io.Writer, v any, text func(io.Writer) error) error {
	if s.wantJSON() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return text(w)
}
