package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/trainpartner/tpx/internal/services"
	"github.com/trainpartner/tpx/internal/session"
	"github.com/trainpartner/tpx/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	svc        services.Service
	api        *services.APIService
	sessions   *session.Store
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Service    services.Service
	API        *services.APIService
	Sessions   *session.Store
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
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
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Config.Server.Timeout()}
	}
	if opts.API == nil {
		opts.API = services.NewAPIService(opts.Config.Server.BaseURL, opts.HTTPClient)
	}
	if opts.Service == nil {
		opts.Service = opts.API
	}

	return &Runner{
		config:     opts.Config,
		svc:        opts.Service,
		api:        opts.API,
		sessions:   opts.Sessions,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		loginCommand, signupCommand, logoutCommand, whoamiCommand, programCommand, diaryCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openSessions returns the session store, opening the database on demand.
// The returned closer must be called when the command is done with the store.
func (r *Runner) openSessions() (*session.Store, func(), error) {
	if r.sessions != nil {
		return r.sessions, func() {}, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session database (run 'tpx setup' first): %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	return session.NewStore(db), func() { db.Close() }, nil
}

// restoreSession loads the stored login and attaches its bearer token to the
// API client. Commands that talk to authenticated endpoints call this first.
func (r *Runner) restoreSession() (*session.Session, func(), error) {
	store, closer, err := r.openSessions()
	if err != nil {
		return nil, nil, err
	}

	sess, err := store.Current()
	if err != nil {
		closer()
		return nil, nil, err
	}

	if r.api != nil {
		r.api.SetToken(&oauth2.Token{AccessToken: sess.AccessToken, TokenType: "Bearer"})
	}
	return sess, closer, nil
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
