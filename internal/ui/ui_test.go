package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/applyx/internal/flows"
	"github.com/desertthunder/applyx/internal/models"
	"github.com/desertthunder/applyx/internal/router"
	"github.com/desertthunder/applyx/internal/toast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *router.Router, *Renderer) {
	t.Helper()
	rt := router.NewDefault()
	r := NewRenderer(16)
	t.Cleanup(r.Close)
	return NewModel(ModelOpts{Router: rt, Renderer: r}), rt, r
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRenderer(t *testing.T) {
	t.Run("queues calls in order", func(t *testing.T) {
		r := NewRenderer(4)
		r.SetLoading(true)
		r.RenderNoJobs()

		assert.Equal(t, loadingMsg(true), <-r.updates)
		assert.Equal(t, MsgNoJobs, (<-r.updates).kind)
	})

	t.Run("Close unblocks a full queue", func(t *testing.T) {
		r := NewRenderer(0)
		done := make(chan struct{})
		go func() {
			r.ClearJobs()
			close(done)
		}()

		r.Close()
		<-done
		r.Close()
	})

	t.Run("Watch forwards toasts and sections", func(t *testing.T) {
		r := NewRenderer(4)
		n := toast.New(nil, nil)
		t.Cleanup(n.Close)
		rt := router.NewDefault()
		r.Watch(n, rt)

		n.Notify("hi")
		require.NoError(t, rt.Activate(router.SearchSection))

		assert.Equal(t, toastMsg(toast.Toast{Message: "hi", Visible: true}), <-r.updates)
		assert.Equal(t, sectionMsg(router.SearchSection), <-r.updates)
	})
}

func TestModelUpdates(t *testing.T) {
	t.Run("jobs render and clear", func(t *testing.T) {
		m, _, _ := newTestModel(t)
		cards := []flows.JobCard{{ID: 1, Title: "Go Dev", Company: "Acme", EasyApply: true}}

		m.Update(jobsRenderedMsg(cards))
		require.Len(t, m.jobList.Items(), 1)
		assert.Equal(t, "Go Dev • Acme", m.jobList.Items()[0].(jobItem).Title())

		m.Update(Msg{kind: MsgNoJobs})
		assert.True(t, m.noJobs)
		assert.Empty(t, m.jobList.Items())
	})

	t.Run("profile fill and search location", func(t *testing.T) {
		m, _, _ := newTestModel(t)

		m.Update(profileFilledMsg(models.User{Name: "Ada", Email: "ada@example.com", ResumePath: "/cv.pdf"}))
		m.Update(searchLocationMsg("London"))

		p := m.profile.profile()
		assert.Equal(t, "Ada", p.Name)
		assert.Equal(t, "ada@example.com", p.Email)
		assert.Equal(t, "/cv.pdf", p.ResumePath)
		assert.Equal(t, "London", m.search.value(fieldSearchLocation))
	})

	t.Run("toast is shown in the view", func(t *testing.T) {
		m, _, _ := newTestModel(t)

		m.Update(toastMsg(toast.Toast{Message: "Profile saved successfully!", Visible: true}))
		assert.Contains(t, m.View(), "Profile saved successfully!")

		m.Update(toastMsg(toast.Toast{Message: "Profile saved successfully!", Visible: false}))
		assert.NotContains(t, m.View(), "Profile saved successfully!")
	})

	t.Run("submitting relabels the button", func(t *testing.T) {
		m, _, _ := newTestModel(t)

		m.Update(submittingMsg(true))
		assert.Contains(t, m.View(), flows.SubmittingLabel)

		m.Update(submittingMsg(false))
		assert.Contains(t, m.View(), flows.SubmitLabel)
	})

	t.Run("a second submit before the flow reports back is ignored", func(t *testing.T) {
		m, _, _ := newTestModel(t)

		assert.NotNil(t, m.submitProfile())
		assert.Contains(t, m.View(), flows.SubmittingLabel)
		assert.Nil(t, m.submitProfile())

		m.Update(submittingMsg(false))
		assert.NotNil(t, m.submitProfile())
	})

	t.Run("placeholders", func(t *testing.T) {
		m, rt, _ := newTestModel(t)

		require.NoError(t, rt.Activate(router.SearchSection))
		m.Update(Msg{kind: MsgNoJobs})
		assert.Contains(t, m.View(), flows.NoJobsText)

		require.NoError(t, rt.Activate(router.AppliedSection))
		m.Update(Msg{kind: MsgNoApplications})
		assert.Contains(t, m.View(), flows.NoApplicationsText)
	})
}

func TestModelKeys(t *testing.T) {
	t.Run("number keys navigate when not editing", func(t *testing.T) {
		m, _, _ := newTestModel(t)

		_, cmd := m.Update(keyRunes("3"))
		assert.NotNil(t, cmd)
	})

	t.Run("enter focuses the profile form and typing fills it", func(t *testing.T) {
		m, _, _ := newTestModel(t)

		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.True(t, m.profile.editing())

		m.Update(keyRunes("3"))
		assert.Equal(t, "3", m.profile.value(fieldName))

		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, fieldEmail, m.profile.focus)

		m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.False(t, m.profile.editing())
	})

	t.Run("application detail shows the generated email", func(t *testing.T) {
		m, rt, _ := newTestModel(t)
		require.NoError(t, rt.Activate(router.AppliedSection))

		row := flows.NewApplicationRow(models.Application{ID: 1, JobID: 2, GeneratedEmail: "Dear hiring manager"})
		m.Update(applicationsRenderedMsg([]flows.ApplicationRow{row}))
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		require.NotNil(t, m.detail)
		assert.True(t, strings.Contains(m.View(), "Dear hiring manager"))

		m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.Nil(t, m.detail)
	})

	t.Run("enter on a manual job opens its link", func(t *testing.T) {
		m, rt, _ := newTestModel(t)
		var opened string
		m.openURL = func(u string) error { opened = u; return nil }
		require.NoError(t, rt.Activate(router.SearchSection))

		m.Update(jobsRenderedMsg([]flows.JobCard{{ID: 3, Title: "SRE", URL: "https://initech.example/3"}}))
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)

		msg := cmd()
		assert.Equal(t, openedMsg{url: "https://initech.example/3"}, msg)
		assert.Equal(t, "https://initech.example/3", opened)
	})
}
