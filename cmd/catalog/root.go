package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/catalog/internal/logger"
	"github.com/nikbrunner/catalog/internal/model"
	"github.com/nikbrunner/catalog/internal/render"
	"github.com/nikbrunner/catalog/internal/storage"
	"github.com/nikbrunner/catalog/internal/tui"
)

const (
	// sourceEnv overrides the configured product source.
	sourceEnv = "CATALOG_SOURCE"

	// fullScreenAnnotation marks commands that take over the terminal.
	fullScreenAnnotation = "catalog/fullscreen"
)

var (
	sourceFlag   string
	configFlag   string
	logLevelFlag string
	logFileFlag  string

	cfg     = storage.DefaultConfig()
	rootCtx = context.Background()

	// logFile is the --log-file target, closed by closeLogFile.
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse a product catalog",
	Long: `catalog loads a product list and lets you search it by title and
sort it by name or price.

Without a subcommand it opens the interactive viewer:
  type        filter by title (every keystroke)
  ^n / ^e     sort by name A-Z / Z-A        (also F1 / F2)
  ^p / ^r     sort by price low-high / high-low (also F3 / F4)
  ^y          copy the selected title
  ^l          clear the search
  esc         quit

Products come from --source, $CATALOG_SOURCE or the config file:
a JSON file (default ./db.json), an http(s) URL or sqlite://path.`,
	Args:              cobra.NoArgs,
	Annotations:       map[string]string{fullScreenAnnotation: "true"},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "product source: JSON file, http(s) URL or sqlite://path")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to the YAML config file (default ~/.config/catalog/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd, exportCmd, findCmd, importCmd, checkImagesCmd, serveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup resolves configuration and installs the logger for every command.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cfg = *c

	out, err := logOutput(cmd)
	if err != nil {
		return err
	}
	lgr := logger.Setup(cfg.LogLevel, out).WithValues("command", cmd.Name())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rootCtx = logger.WithLogger(ctx, &lgr)
	return nil
}

// resolveConfig applies, lowest first: defaults, config file, environment, flags.
func resolveConfig(cmd *cobra.Command) (*storage.Config, error) {
	path := configFlag
	if path == "" {
		p, err := storage.DefaultConfigFilePath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	c, err := storage.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if env := os.Getenv(sourceEnv); env != "" {
		c.Source = env
	}
	if cmd.Flags().Changed("source") {
		c.Source = sourceFlag
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = logLevelFlag
	}
	return c, nil
}

// logOutput keeps log lines off the terminal while a full-screen UI runs.
func logOutput(cmd *cobra.Command) (io.Writer, error) {
	if logFileFlag != "" {
		f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		return f, nil
	}
	if cmd.Annotations[fullScreenAnnotation] == "true" {
		return io.Discard, nil
	}
	return cmd.ErrOrStderr(), nil
}

// closeLogFile closes the --log-file target once logs are synced.
func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func openSource() (storage.Source, error) {
	src, err := storage.OpenSource(cfg.Source, storage.HTTPSourceParams{Timeout: cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("open source %s: %w", cfg.Source, err)
	}
	return src, nil
}

// loadCatalog loads the configured source once. Failures are logged with
// their source and status before being returned.
func loadCatalog(ctx context.Context) (*model.Catalog, error) {
	src, err := openSource()
	if err != nil {
		return nil, err
	}
	defer storage.CloseSource(src)

	cat, err := src.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err, "failed to load products", "source", cfg.Source)
		return nil, err
	}
	return cat, nil
}

func newRenderer(broken map[model.ID]bool) *render.Renderer {
	return render.NewRenderer(render.Options{
		Placeholder:  cfg.PlaceholderImage,
		BrokenImages: broken,
	})
}

func runTUI(cmd *cobra.Command, _ []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer storage.CloseSource(src)

	app := tui.NewApp(tui.AppParams{
		Context:  rootCtx,
		Source:   src,
		Renderer: newRenderer(nil),
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(rootCtx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
