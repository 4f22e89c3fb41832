package flows

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/applyx/internal/models"
	"github.com/desertthunder/applyx/internal/router"
	"github.com/desertthunder/applyx/internal/services"
	"github.com/desertthunder/applyx/internal/session"
	"github.com/desertthunder/applyx/internal/shared"
	"github.com/desertthunder/applyx/internal/toast"
)

// SearchDelay is the pause between a successful profile save and the follow-up job search.
const SearchDelay = 1000 * time.Millisecond

// Controller runs the user-facing flows against a [services.Backend].
type Controller struct {
	backend   services.Backend
	session   *session.Manager
	router    *router.Router
	toasts    *toast.Notifier
	view      Renderer
	scheduler shared.Scheduler
	logger    *log.Logger

	searchSeq atomic.Uint64
	appsSeq   atomic.Uint64
	location  atomic.Value // string: current search location field

	mu       sync.Mutex
	pending  shared.Timer
	deferGen uint64
	closed   bool
	wg       sync.WaitGroup
}

// Opts contains the dependencies of a [Controller].
//
// Backend, Session, Router, Toasts and Renderer are required. Scheduler defaults to wall-clock time.
type Opts struct {
	Backend   services.Backend
	Session   *session.Manager
	Router    *router.Router
	Toasts    *toast.Notifier
	Renderer  Renderer
	Scheduler shared.Scheduler
	Logger    *log.Logger
}

// New creates a [Controller].
func New(opts Opts) *Controller {
	if opts.Scheduler == nil {
		opts.Scheduler = shared.RealScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	c := &Controller{
		backend:   opts.Backend,
		session:   opts.Session,
		router:    opts.Router,
		toasts:    opts.Toasts,
		view:      opts.Renderer,
		scheduler: opts.Scheduler,
		logger:    shared.WithLogger(opts.Logger, "component", "flows"),
	}
	c.location.Store("")
	return c
}

// Restore loads the stored user into the session without touching the view.
//
// A corrupt stored user is cleared and the session starts anonymous.
func (c *Controller) Restore() (*models.User, error) {
	user, err := c.session.Load()
	if errors.Is(err, shared.ErrDeserialization) {
		c.logger.Warn("discarding corrupt stored user", "error", err)
		if err := c.session.Clear(); err != nil {
			c.logger.Error("failed to clear stored user", "error", err)
		}
		return nil, nil
	}
	return user, err
}

// Start restores the stored user, if any, and picks the initial section.
func (c *Controller) Start() error {
	user, err := c.Restore()
	if err != nil {
		return err
	}

	if user == nil {
		return c.router.Activate(router.ProfileSection)
	}

	c.view.FillProfile(*user)
	if user.Location != "" {
		c.SetLocation(user.Location)
	}
	c.toasts.Notify(welcomeBackMsg(user.Name))
	return c.router.Activate(router.SearchSection)
}

// Navigate activates section id. Opening the applications section reloads the list.
func (c *Controller) Navigate(ctx context.Context, id router.SectionID) error {
	if err := c.router.Activate(id); err != nil {
		return err
	}
	if id == router.AppliedSection {
		c.LoadApplications(ctx)
	}
	return nil
}

// Location returns the current search location field.
func (c *Controller) Location() string {
	return c.location.Load().(string)
}

// SetLocation replaces the search location field and shows it.
func (c *Controller) SetLocation(location string) {
	c.location.Store(location)
	c.view.SetSearchLocation(location)
}

// CurrentUser returns a copy of the session user, or nil.
func (c *Controller) CurrentUser() *models.User {
	return c.session.Get()
}

// SubmitProfile registers profile with the backend and makes the result the current user.
//
// A duplicate email is reconciled by fetching the existing user. After a fresh registration the search section is
// opened and an empty-query search runs once [SearchDelay] has passed.
func (c *Controller) SubmitProfile(ctx context.Context, profile models.Profile) {
	c.view.SetSubmitting(true)
	defer c.view.SetSubmitting(false)

	user, err := c.backend.CreateUser(ctx, profile)
	if err == nil {
		c.toasts.Notify(MsgProfileSaved)
		c.saveUser(*user)
		c.toasts.Notify(MsgGeneratingSearch)
		c.after(SearchDelay, func() { c.searchAfterSave(ctx) })
		return
	}

	apiErr, ok := services.AsAPIError(err)
	if !ok {
		c.toasts.Notify(networkErrorMsg(err))
		return
	}

	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Detail != services.DetailEmailRegistered {
		c.toasts.Notify(profileErrorMsg(apiErr.Detail))
		return
	}

	existing, err := c.backend.GetUser(ctx, profile.Email)
	if err != nil {
		c.logger.Warn("failed to fetch registered user", "email", profile.Email, "error", err)
		c.toasts.Notify(profileErrorMsg(apiErr.Detail))
		return
	}

	c.saveUser(*existing)
	c.toasts.Notify(MsgProfileLoaded)
}

// Close cancels the deferred search and the toast timer.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.cancelPending()
	c.mu.Unlock()

	c.toasts.Close()
}

// Wait blocks until every deferred task has run or been cancelled.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) saveUser(user models.User) {
	if err := c.session.Set(user); err != nil {
		c.logger.Error("failed to persist user", "error", err)
	}
}

func (c *Controller) searchAfterSave(ctx context.Context) {
	if ctx.Err() != nil {
		c.logger.Debug("skipping deferred search", "error", ctx.Err())
		return
	}
	if err := c.router.Activate(router.SearchSection); err != nil {
		c.logger.Error("failed to open search", "error", err)
		return
	}
	c.view.ClearSearchQuery()
	c.SearchJobs(ctx, "", c.Location())
}

// after runs f once d has passed, replacing any task still waiting.
func (c *Controller) after(d time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.cancelPending()

	c.deferGen++
	gen := c.deferGen
	c.wg.Add(1)
	c.pending = c.scheduler.AfterFunc(d, func() {
		defer c.wg.Done()

		c.mu.Lock()
		if c.deferGen == gen {
			c.pending = nil
		}
		c.mu.Unlock()

		f()
	})
}

// cancelPending stops the waiting task. c.mu must be held.
func (c *Controller) cancelPending() {
	if c.pending == nil {
		return
	}
	if c.pending.Stop() {
		c.wg.Done()
	}
	c.pending = nil
}
