package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/applyx/internal/flows"
	"github.com/desertthunder/applyx/internal/models"
	"github.com/desertthunder/applyx/internal/router"
	"github.com/desertthunder/applyx/internal/toast"
)

// sectionOrder is the tab order of the sections.
var sectionOrder = []router.SectionID{router.ProfileSection, router.SearchSection, router.AppliedSection}

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	ctrl       *flows.Controller
	router     *router.Router
	renderer   *Renderer
	openURL    func(string) error
	width      int
	height     int
	profile    form
	search     form
	jobList    list.Model
	appList    list.Model
	noJobs     bool
	noApps     bool
	loading    bool
	submitting bool
	spinner    spinner.Model
	toast      toast.Toast
	status     string
	detail     *flows.ApplicationRow
	err        error
	help       help.Model
	keys       keyMap
}

// ModelOpts contains the dependencies of a [Model].
type ModelOpts struct {
	Context    context.Context
	Controller *flows.Controller
	Router     *router.Router
	Renderer   *Renderer          // must be the renderer the controller was built with
	OpenURL    func(string) error // opens outbound links
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(opts ModelOpts) *Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.OpenURL == nil {
		opts.OpenURL = func(string) error { return nil }
	}

	jobs := newList("Jobs")
	apps := newList("Applications")
	jobs.SetSize(80, 16)
	apps.SetSize(80, 16)

	return &Model{
		ctx:      opts.Context,
		ctrl:     opts.Controller,
		router:   opts.Router,
		renderer: opts.Renderer,
		openURL:  opts.OpenURL,
		profile:  newProfileForm(),
		search:   newSearchForm(),
		jobList:  jobs,
		appList:  apps,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.ok)),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// openedMsg reports the result of opening an outbound link.
type openedMsg struct {
	url string
	err error
}

// Init restores the stored user and starts listening for flow updates.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitForUpdate(), m.spinner.Tick, m.start())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.jobList.SetSize(msg.Width-4, msg.Height-14)
		m.appList.SetSize(msg.Width-4, msg.Height-8)
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case openedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Could not open %s: %v", msg.url, msg.err))
		} else {
			m.status = styles.muted.Render("Opened " + msg.url)
		}
		return m, nil

	case Msg:
		cmd := m.apply(msg)
		if msg.kind == MsgStarted {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.waitForUpdate())

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

// apply folds a flow update into the model.
func (m *Model) apply(msg Msg) tea.Cmd {
	switch msg.kind {
	case MsgStarted:
		if err, ok := msg.data.(error); ok && err != nil {
			m.err = err
		}
	case MsgSubmitting:
		m.submitting = msg.data.(bool)
	case MsgLoading:
		m.loading = msg.data.(bool)
	case MsgJobsCleared:
		m.noJobs = false
		return m.jobList.SetItems(nil)
	case MsgJobsRendered:
		m.noJobs = false
		return m.jobList.SetItems(jobItems(msg.data.([]flows.JobCard)))
	case MsgNoJobs:
		m.noJobs = true
		return m.jobList.SetItems(nil)
	case MsgApplicationsRendered:
		m.noApps = false
		return m.appList.SetItems(applicationItems(msg.data.([]flows.ApplicationRow)))
	case MsgNoApplications:
		m.noApps = true
		return m.appList.SetItems(nil)
	case MsgSearchQueryCleared:
		m.search.set(fieldQuery, "")
	case MsgProfileFilled:
		m.profile.fill(msg.data.(models.User))
	case MsgSearchLocation:
		m.search.set(fieldSearchLocation, msg.data.(string))
	case MsgToast:
		m.toast = msg.data.(toast.Toast)
	case MsgSection:
		m.profile.blur()
		m.search.blur()
		m.detail = nil
	}
	return nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.forceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.next):
		return m, m.navigate(m.neighbour(1))
	case key.Matches(msg, m.keys.prev):
		return m, m.navigate(m.neighbour(-1))
	}

	active := m.router.Active()
	if f := m.activeForm(active); f != nil && f.editing() {
		return m, m.handleFormKeys(active, f, msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.profile):
		return m, m.navigate(router.ProfileSection)
	case key.Matches(msg, m.keys.search):
		return m, m.navigate(router.SearchSection)
	case key.Matches(msg, m.keys.applied):
		return m, m.navigate(router.AppliedSection)
	}

	switch active {
	case router.ProfileSection:
		return m.handleProfileKeys(msg)
	case router.SearchSection:
		return m.handleSearchKeys(msg)
	case router.AppliedSection:
		return m.handleAppliedKeys(msg)
	}
	return m, nil
}

func (m *Model) handleFormKeys(active router.SectionID, f *form, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.back):
		f.blur()
		return nil
	case msg.Type == tea.KeyUp:
		return f.move(-1)
	case msg.Type == tea.KeyDown:
		return f.move(1)
	case key.Matches(msg, m.keys.submit) && active == router.ProfileSection:
		f.blur()
		return m.submitProfile()
	case msg.Type == tea.KeyEnter:
		if active == router.SearchSection {
			f.blur()
			return m.runSearch()
		}
		if f.last() {
			f.blur()
			return m.submitProfile()
		}
		return f.move(1)
	}
	return f.update(msg)
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.edit), key.Matches(msg, m.keys.enter):
		return m, m.profile.focusAt(0)
	case key.Matches(msg, m.keys.submit):
		return m, m.submitProfile()
	}
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.edit):
		return m, m.search.focusAt(fieldQuery)
	case key.Matches(msg, m.keys.enter):
		item, ok := m.jobList.SelectedItem().(jobItem)
		if !ok {
			return m, m.search.focusAt(fieldQuery)
		}
		if item.card.EasyApply {
			id := item.card.ID
			return m, m.run(func() { m.ctrl.Apply(m.ctx, id) })
		}
		return m, m.open(item.card.URL)
	case key.Matches(msg, m.keys.open):
		if item, ok := m.jobList.SelectedItem().(jobItem); ok {
			return m, m.open(item.card.URL)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.jobList, cmd = m.jobList.Update(msg)
	return m, cmd
}

func (m *Model) handleAppliedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail != nil {
		if key.Matches(msg, m.keys.back) || key.Matches(msg, m.keys.enter) {
			m.detail = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.appList.SelectedItem().(applicationItem); ok {
			row := item.row
			m.detail = &row
		}
		return m, nil
	case key.Matches(msg, m.keys.open):
		if item, ok := m.appList.SelectedItem().(applicationItem); ok && item.row.ApplyURL != "" {
			return m, m.open(item.row.ApplyURL)
		}
		return m, nil
	case key.Matches(msg, m.keys.refresh):
		return m, m.run(func() { m.ctrl.LoadApplications(m.ctx) })
	}

	var cmd tea.Cmd
	m.appList, cmd = m.appList.Update(msg)
	return m, cmd
}

func (m *Model) activeForm(active router.SectionID) *form {
	switch active {
	case router.ProfileSection:
		return &m.profile
	case router.SearchSection:
		return &m.search
	}
	return nil
}

func (m *Model) neighbour(delta int) router.SectionID {
	active := m.router.Active()
	for i, id := range sectionOrder {
		if id == active {
			n := len(sectionOrder)
			return sectionOrder[((i+delta)%n+n)%n]
		}
	}
	return sectionOrder[0]
}

func (m *Model) start() tea.Cmd {
	return func() tea.Msg {
		return startedMsg(m.ctrl.Start())
	}
}

func (m *Model) navigate(id router.SectionID) tea.Cmd {
	return m.run(func() {
		if err := m.ctrl.Navigate(m.ctx, id); err != nil {
			m.renderer.send(toastMsg(toast.Toast{Message: err.Error(), Visible: true}))
		}
	})
}

func (m *Model) submitProfile() tea.Cmd {
	if m.submitting {
		return nil
	}
	// The flow clears this through SetSubmitting(false) when the request finishes.
	m.submitting = true
	profile := m.profile.profile()
	return m.run(func() { m.ctrl.SubmitProfile(m.ctx, profile) })
}

func (m *Model) runSearch() tea.Cmd {
	query, location := m.search.value(fieldQuery), m.search.value(fieldSearchLocation)
	return m.run(func() { m.ctrl.SearchJobs(m.ctx, query, location) })
}

func (m *Model) open(url string) tea.Cmd {
	if url == "" {
		return nil
	}
	return func() tea.Msg {
		return openedMsg{url: url, err: m.openURL(url)}
	}
}

// run executes a flow off the event loop; its effects arrive through the renderer.
func (m *Model) run(f func()) tea.Cmd {
	return func() tea.Msg {
		f()
		return nil
	}
}

func (m *Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.renderer.updates:
			return msg
		case <-m.renderer.done:
			return nil
		}
	}
}
