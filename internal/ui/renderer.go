package ui

import (
	"github.com/desertthunder/applyx/internal/flows"
	"github.com/desertthunder/applyx/internal/models"
	"github.com/desertthunder/applyx/internal/router"
	"github.com/desertthunder/applyx/internal/toast"
)

var _ flows.Renderer = (*Renderer)(nil)

// Renderer turns [flows.Renderer] calls into [Msg] values for the [Model].
//
// Flows run inside tea.Cmds, off the bubbletea event loop, so every call is queued on a channel that the model drains
// with waitForUpdate.
type Renderer struct {
	updates chan Msg
	done    chan struct{}
}

// NewRenderer creates a [Renderer] with room for size queued updates.
func NewRenderer(size int) *Renderer {
	return &Renderer{updates: make(chan Msg, size), done: make(chan struct{})}
}

// Watch forwards toast and section changes to the model.
func (r *Renderer) Watch(n *toast.Notifier, rt *router.Router) {
	n.OnChange(func(t toast.Toast) { r.send(toastMsg(t)) })
	rt.OnChange(func(id router.SectionID) { r.send(sectionMsg(id)) })
}

// Close stops delivery; later calls are dropped.
func (r *Renderer) Close() {
	select {
	case <-r.done:
	default:
		close(r.done)
	}
}

// send queues msg, blocking while the queue is full until the renderer is closed.
func (r *Renderer) send(msg Msg) {
	select {
	case r.updates <- msg:
	case <-r.done:
	}
}

func (r *Renderer) SetSubmitting(b bool) { r.send(submittingMsg(b)) }
func (r *Renderer) SetLoading(b bool)    { r.send(loadingMsg(b)) }
func (r *Renderer) ClearJobs()           { r.send(Msg{kind: MsgJobsCleared}) }
func (r *Renderer) RenderNoJobs()        { r.send(Msg{kind: MsgNoJobs}) }
func (r *Renderer) ClearSearchQuery()    { r.send(Msg{kind: MsgSearchQueryCleared}) }
func (r *Renderer) RenderNoApplications() {
	r.send(Msg{kind: MsgNoApplications})
}

func (r *Renderer) RenderJobs(cards []flows.JobCard) { r.send(jobsRenderedMsg(cards)) }

func (r *Renderer) RenderApplications(rows []flows.ApplicationRow) {
	r.send(applicationsRenderedMsg(rows))
}

func (r *Renderer) FillProfile(u models.User)          { r.send(profileFilledMsg(u)) }
func (r *Renderer) SetSearchLocation(location string) { r.send(searchLocationMsg(location)) }
