package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/bereshit/internal/app"
	"github.com/marcus/bereshit/internal/config"
	"github.com/marcus/bereshit/internal/gateway"
	"github.com/marcus/bereshit/internal/native"
	"github.com/marcus/bereshit/internal/picker"
	"github.com/marcus/bereshit/internal/project"
	"github.com/marcus/bereshit/internal/watch"
	"golang.org/x/term"
)

// Version is set via ldflags at build time.
var Version = ""

var (
	configPath  = flag.String("config", "", "path to config file")
	dataDir     = flag.String("data", "", "data directory (default: XDG data home)")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	listFlag    = flag.Bool("list", false, "print projects and exit")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("bereshit %s\n", effectiveVersion(Version))
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logOut, closeLog := openLogFile(config.StateDir())
	defer closeLog()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := loadConfig(*configPath, logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir := config.DataDir()
	if *dataDir != "" {
		dir = config.ExpandPath(*dataDir)
	}
	store, err := native.OpenStore(cfg.Store, dir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	execOpts := []native.Option{
		native.WithDefaults(cfg.Projects.Defaults.ProjectConfig()),
		native.WithLogger(logger),
	}

	list := *listFlag || !term.IsTerminal(int(os.Stdout.Fd()))

	var events <-chan struct{}
	if cfg.Watch.Enabled && !list {
		w, err := watch.New(store.Path(), cfg.Watch.Debounce)
		if err != nil {
			logger.Warn("watch: disabled", "path", store.Path(), "err", err)
		} else {
			defer w.Stop()
			events = w.Events()
			execOpts = append(execOpts, native.OnWrite(w.Rebaseline))
		}
	}

	gw := gateway.New(native.NewExecutor(store, execOpts...), logger)

	if list {
		projects, err := gw.ListProjects(ctx)
		if err != nil {
			return err
		}
		return printProjects(os.Stdout, projects, cfg.UI.DateLayout)
	}

	model := app.New(ctx, app.Options{
		Gateway:     gw,
		Picker:      picker.NewCommandPicker(cfg.Picker.Command),
		Logger:      logger,
		UI:          cfg.UI,
		StoreEvents: events,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}

// loadConfig reads path, or the default location. On first run the
// default config is written there so it can be edited.
func loadConfig(path string, logger *slog.Logger) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(config.ExpandPath(path))
	}
	written, err := config.WriteDefault()
	switch {
	case err != nil:
		logger.Warn("config: write defaults", "path", config.ConfigPath(), "err", err)
	case written:
		logger.Info("config: wrote defaults", "path", config.ConfigPath())
	}
	return config.Load()
}

// openLogFile opens bereshit.log in dir. The terminal belongs to the UI, so
// logs never go to stderr; if the file cannot be opened they are dropped.
func openLogFile(dir string) (io.Writer, func()) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "bereshit.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}

// printProjects writes one tab-aligned row per project.
func printProjects(w io.Writer, projects []project.Project, layout string) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects found")
		return err
	}
	if layout == "" {
		layout = "2006-01-02 15:04"
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tMODIFIED\tID")
	for _, p := range projects {
		modified := p.LastModified
		if t := p.Modified(); !t.IsZero() {
			modified = t.Local().Format(layout)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Path, modified, p.ID)
	}
	return tw.Flush()
}

// effectiveVersion returns v, or the module version from build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "devel+" + s.Value[:7]
		}
	}
	return "devel"
}
