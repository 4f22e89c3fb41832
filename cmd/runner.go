package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/applyx/internal/flows"
	"github.com/desertthunder/applyx/internal/repositories"
	"github.com/desertthunder/applyx/internal/router"
	"github.com/desertthunder/applyx/internal/services"
	"github.com/desertthunder/applyx/internal/session"
	"github.com/desertthunder/applyx/internal/shared"
	"github.com/desertthunder/applyx/internal/toast"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	api        *services.APIService
	session    *session.Manager
	db         *sql.DB
	scheduler  shared.Scheduler
	logger     *log.Logger
	output     io.Writer
	openURL    func(string) error
}

// RunnerOpts contains configuration options for creating a Runner.
//
// API and Session are built lazily from Config when nil.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	API        *services.APIService
	Session    *session.Manager
	Scheduler  shared.Scheduler
	Logger     *log.Logger
	Output     io.Writer
	OpenURL    func(string) error
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Scheduler == nil {
		opts.Scheduler = shared.RealScheduler{}
	}
	if opts.OpenURL == nil {
		opts.OpenURL = shared.OpenBrowser
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		api:        opts.API,
		session:    opts.Session,
		scheduler:  opts.Scheduler,
		logger:     opts.Logger,
		output:     opts.Output,
		openURL:    opts.OpenURL,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, profileCommand, searchCommand, applyCommand, applicationsCommand, openCommand, apiCommand,
		tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Before resolves the configuration named by --config and applies its log level.
//
// A missing default config.toml falls back to built-in defaults; an explicitly named file must exist unless the
// command is setup, which creates it.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	if cmd.IsSet("config") && cmd.Args().First() != "setup" {
		if _, err := os.Stat(path); err != nil {
			return ctx, fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
		}
	}

	config, err := shared.ResolveConfig(path)
	if err != nil {
		return ctx, err
	}

	r.config = config
	r.configPath = path
	shared.SetLogLevel(r.logger, shared.ParseLogLevel(config.Log.Level))
	r.logger.Debug("configuration resolved", "path", path, "api", config.API.BaseURL)
	return ctx, nil
}

// Close releases the database opened for the session, if any.
func (r *Runner) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) client() *services.APIService {
	if r.api == nil {
		r.api = services.NewAPIService(services.APIOpts{
			BaseURL:   r.config.API.BaseURL,
			Timeout:   r.config.API.Timeout,
			RateLimit: r.config.API.RateLimit,
			Logger:    r.logger,
		})
	}
	return r.api
}

// sessionManager opens the settings database on first use, migrating it when needed.
func (r *Runner) sessionManager() (*session.Manager, error) {
	if r.session != nil {
		return r.session, nil
	}

	db, err := shared.OpenDatabase(r.config.Database)
	if err != nil {
		return nil, err
	}

	r.db = db
	r.session = session.NewManager(repositories.NewSettingsRepository(db), r.logger)
	return r.session, nil
}

// app bundles a controller with the notifier and router it drives.
type app struct {
	ctrl   *flows.Controller
	toasts *toast.Notifier
	router *router.Router
}

// Close cancels the deferred search and the toast timer.
func (a *app) Close() {
	a.ctrl.Close()
}

// newApp wires a controller that renders through view.
func (r *Runner) newApp(view flows.Renderer) (*app, error) {
	sess, err := r.sessionManager()
	if err != nil {
		return nil, err
	}

	a := &app{toasts: toast.New(r.scheduler, r.logger), router: router.NewDefault()}
	a.ctrl = flows.New(flows.Opts{
		Backend:   r.client(),
		Session:   sess,
		Router:    a.router,
		Toasts:    a.toasts,
		Renderer:  view,
		Scheduler: r.scheduler,
		Logger:    r.logger,
	})
	return a, nil
}

// printToasts echoes every shown toast to the output.
func (r *Runner) printToasts(n *toast.Notifier) {
	n.OnChange(func(t toast.Toast) {
		if t.Visible {
			r.writePlain("» %s\n", t.Message)
		}
	})
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
