// Package cli is the composition root: it parses flags, loads
// configuration, seeds the catalog and runs the TUI.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/catalog"
	"github.com/mmcdole/reel/internal/config"
	"github.com/mmcdole/reel/internal/log"
	"github.com/mmcdole/reel/internal/seed"
	"github.com/mmcdole/reel/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

type runDeps struct {
	stdoutFd   int
	isTerminal func(fd int) bool
	termSize   func(fd int) (width, height int, err error)
	runProgram func(m tea.Model) (tea.Model, error)
}

func defaultRunDeps() runDeps {
	return runDeps{
		stdoutFd:   int(os.Stdout.Fd()),
		isTerminal: term.IsTerminal,
		termSize:   term.GetSize,
		runProgram: func(m tea.Model) (tea.Model, error) {
			// Run restores the terminal on every exit path, including panics
			return tea.NewProgram(m, tea.WithAltScreen()).Run()
		},
	}
}

type options struct {
	configPath  string
	logLevel    string
	showVersion bool
}

// Run executes the root command and returns the process exit code
func Run(args []string, stdout, stderr io.Writer) int {
	return run(args, stdout, stderr, defaultRunDeps())
}

func run(args []string, stdout, stderr io.Writer, deps runDeps) int {
	cmd := newRootCommand(stdout, stderr, deps)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the reel command
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	return newRootCommand(stdout, stderr, defaultRunDeps())
}

func newRootCommand(stdout, stderr io.Writer, deps runDeps) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "reel",
		Short:         "Browse a movie catalog in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.showVersion {
				fmt.Fprintf(stdout, "reel %s\n", Version)
				return nil
			}
			return runApp(opts, deps)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVarP(&opts.showVersion, "version", "v", false, "print version")

	return cmd
}

func runApp(opts options, deps runDeps) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	if !deps.isTerminal(deps.stdoutFd) {
		return errors.New("reel must be run in an interactive terminal")
	}
	width, height, err := deps.termSize(deps.stdoutFd)
	if err != nil {
		logger.Warn("could not read terminal size", "error", err)
	}
	logger.Info("starting reel", "version", Version, "width", width, "height", height)

	selection, err := newSelection(logger)
	if err != nil {
		return err
	}

	model := tui.NewModel(selection, cfg.UI, logger)
	final, err := deps.runProgram(model)
	if err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}

	logger.Info("shutting down")
	return nil
}

// newSelection builds the seeded catalog and its selection model
func newSelection(logger *slog.Logger) (*catalog.Selection, error) {
	records, err := seed.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}

	movies := catalog.New()
	if err := seed.Populate(movies, records); err != nil {
		return nil, err
	}
	logger.Info("catalog seeded", "movies", movies.Len())

	return catalog.NewSelection(movies), nil
}
