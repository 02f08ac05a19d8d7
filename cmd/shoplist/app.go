package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/shoplist/internal/cli"
	"github.com/Makepad-fr/shoplist/internal/config"
	"github.com/Makepad-fr/shoplist/internal/shoplist"
	"github.com/Makepad-fr/shoplist/internal/tui"
	"github.com/Makepad-fr/shoplist/internal/ui"
)

const (
	Version = "0.1.0"
	appName = "shoplist"
)

// exitError carries a shell exit code through cobra.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	theme      string
	language   string
	noColor    bool
}

// app is everything a command needs once flags and config are resolved.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	theme    ui.Theme
	messages ui.Messages
	closer   io.Closer
}

func rootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Terminal shopping-list tracker",
		Long: `Shoplist keeps a shopping list for the current session: add products
with a shop and a category, mark them bought, delete them, and get a
celebration once everything has been bought.

Nothing is saved; the list lives only as long as the program runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(f, io.Discard)
			if err != nil {
				return err
			}
			defer a.close()

			sess := a.session()
			defer sess.Close()
			return tui.Run(tui.Options{
				Session:  sess,
				Theme:    a.theme,
				Messages: a.messages,
				Seed:     uint64(time.Now().UnixNano()),
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&f.theme, "theme", "", "Theme ("+strings.Join(ui.Themes, ", ")+")")
	pf.StringVar(&f.language, "lang", "", "Language (en, tr)")
	pf.BoolVar(&f.noColor, "no-color", false, "Disable colors")

	cmd.AddCommand(shellCmd(&f), catalogCmd(&f), versionCmd())
	return cmd
}

func shellCmd(f *rootFlags) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Read list commands from stdin, one per line",
		Long:  "Runs the list without the interactive screen. Type `help` for the commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*f, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()

			opt := cli.Options{
				Session:  a.session(),
				Theme:    a.theme,
				Messages: a.messages,
				Group:    group,
				Seed:     uint64(time.Now().UnixNano()),
			}
			if stdinIsTTY(cmd.InOrStdin()) {
				opt.Prompt = "> "
			}
			if code := cli.Run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opt); code != 0 {
				return exitError{code: code}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group ls output by pending/bought")
	return cmd
}

func catalogCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the shop and category tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*f, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()

			c, err := a.cfg.Catalog()
			if err != nil {
				return err
			}
			cli.PrintCatalog(cmd.OutOrStdout(), a.theme, c)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}

// setup configures logging and loads the layered config. Logs go to the
// --log-file when given, otherwise to fallback.
func setup(f rootFlags, fallback io.Writer) (*app, error) {
	logger, closer, err := newLogger(f.logLevel, f.logFile, fallback)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	cfg, err := config.NewLoader(logger).Load(f.configPath)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f.theme != "" {
		cfg.UI.Theme = f.theme
	}
	if f.language != "" {
		cfg.UI.Language = f.language
	}
	if err := cfg.Validate(); err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if f.noColor || cfg.UI.Theme == "mono" {
		ui.DisableColor()
	}

	logger.Debug("Config ready",
		"shops", len(cfg.Shops),
		"categories", len(cfg.Categories),
		"celebration_delay", cfg.Celebration.Delay,
		"theme", cfg.UI.Theme)

	return &app{
		cfg:      cfg,
		logger:   logger,
		theme:    ui.ThemeNamed(cfg.UI.Theme),
		messages: ui.MessagesFor(cfg.UI.Language),
		closer:   closer,
	}, nil
}

func (a *app) session() *shoplist.Session {
	// Validate already built the catalog once, so this cannot fail.
	c, _ := a.cfg.Catalog()
	return shoplist.NewSession(shoplist.Options{
		Catalog:          c,
		CelebrationDelay: a.cfg.Celebration.Delay,
		CelebrateEmpty:   a.cfg.Celebration.CelebrateEmpty,
		LenientLookup:    a.cfg.LenientLookup,
		Logger:           a.logger,
	})
}

func (a *app) close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func newLogger(level, path string, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	w, closer := fallback, io.Closer(nil)
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = file, file
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closer, nil
}

func stdinIsTTY(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
