package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"workshoplist/internal/catalog"
	"workshoplist/internal/config"
	"workshoplist/internal/eventbus"
	"workshoplist/internal/listing"
	"workshoplist/internal/pagination"
	"workshoplist/internal/search"
	"workshoplist/internal/ui"
)

var exitFunc = os.Exit

// errNoCatalog is returned when neither the arguments nor the config name a catalog
var errNoCatalog = errors.New("no catalog given: pass a file or posts directory, or set catalog in the config")

// rootOptions holds the flags shared by all commands
type rootOptions struct {
	configPath string
	catalog    string
	perPage    int
	query      string
	logFile    string
}

func main() {
	Execute()
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		exitFunc(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "workshoplist [catalog]",
		Short: "Browse a workshop catalog page by page",
		Long: `Browse a workshop catalog page by page and filter it by title.

The catalog is a YAML, JSON or TOML file with a "workshops" list, or a
directory of Markdown posts with YAML front matter.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default ./"+config.FileName+" or the user config)")
	flags.StringVar(&opts.catalog, "catalog", "", "workshop catalog file or posts directory")
	flags.IntVar(&opts.perPage, "per-page", 0, "workshops per page (default from config)")

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "initial search keyword")
	cmd.Flags().StringVar(&opts.logFile, "log", "", "log file (default from config)")

	cmd.AddCommand(newListCmd(opts))
	return cmd
}

// loadConfig resolves the config file and applies flag overrides
func loadConfig(cmd *cobra.Command, opts *rootOptions, bus eventbus.EventBus) (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Resolve(config.NewConfigServiceWithBus(bus), opts.configPath, dir)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("per-page") {
		cfg.PerPage = opts.perPage
	}
	if cmd.Flags().Changed("log") {
		cfg.LogFile = opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// catalogPath picks the catalog: positional argument, then --catalog, then config
func catalogPath(opts *rootOptions, cfg *config.Config, args []string) (string, error) {
	switch {
	case len(args) > 0:
		return args[0], nil
	case opts.catalog != "":
		return opts.catalog, nil
	case cfg.Catalog != "":
		return cfg.Catalog, nil
	}
	return "", errNoCatalog
}

// setupLogging redirects the standard logger to path. The returned func
// restores the previous output.
func setupLogging(path string) func() {
	prev := log.Writer()
	if path == "" {
		return func() {}
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(logFile)

	return func() {
		log.SetOutput(prev)
		logFile.Close()
	}
}

func pagerOptions(cfg *config.Config) pagination.Options {
	return pagination.Options{
		ContainerID: cfg.Container,
		PerPage:     cfg.PerPage,
		Previous:    cfg.Previous,
		Next:        cfg.Next,
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions, args []string) error {
	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	cfg, err := loadConfig(cmd, opts, bus)
	if err != nil {
		return err
	}

	closeLog := setupLogging(cfg.LogFile)
	defer closeLog()

	path, err := catalogPath(opts, cfg, args)
	if err != nil {
		return err
	}

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workshops, err := catalog.Load(ctx, path)
	if err != nil {
		return err
	}

	list := listing.New(workshops)
	pager := pagination.New(list, pagerOptions(cfg), bus)
	pager.Init()

	animator := search.NewTimedAnimator(time.Duration(cfg.AnimationMS) * time.Millisecond)
	filter := search.NewController(list, pager, animator, bus)
	defer filter.Close()

	// Create UI model
	log.Printf("Creating UI model...")
	model := ui.NewModel(cfg, list, pager, filter, opts.query)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward events the UI reports in its status line
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventCatalogLoaded, forward)
	bus.Subscribe(eventbus.EventError, forward)

	bus.Publish(eventbus.CatalogLoadedEvent{Source: path, Count: len(workshops)})

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Printf("UI interrupted")
			return nil
		}
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("run program: %w", err)
	}
	log.Printf("UI exited normally")

	return nil
}

