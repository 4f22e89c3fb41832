package flows

import (
	"context"
	"net/http"

	"github.com/desertthunder/applyx/internal/models"
	"github.com/desertthunder/applyx/internal/router"
	"github.com/desertthunder/applyx/internal/services"
)

// SearchJobs runs a job search and renders the results.
//
// An empty query needs a current user, whose id lets the backend suggest jobs. Only the most recent search may render.
func (c *Controller) SearchJobs(ctx context.Context, query, location string) {
	user := c.session.Get()
	if query == "" && user == nil {
		c.toasts.Notify(MsgSearchNeedsQuery)
		return
	}
	c.location.Store(location)

	seq := c.searchSeq.Add(1)
	c.view.SetLoading(true)
	c.view.ClearJobs()

	params := services.SearchParams{Query: query, Location: location}
	if user.HasID() {
		params.UserID = user.ID
	}

	jobs, err := c.backend.SearchJobs(ctx, params)
	if latest := c.searchSeq.Load(); seq != latest {
		c.logger.Debug("dropping stale search response", "seq", seq, "latest", latest)
		return
	}

	c.view.SetLoading(false)
	if err != nil {
		c.toasts.Notify(searchErrorMsg(err))
		return
	}

	if len(jobs) == 0 {
		c.view.RenderNoJobs()
		return
	}
	c.view.RenderJobs(jobCards(jobs))
}

// Apply applies the current user to jobID and refreshes the applications list.
func (c *Controller) Apply(ctx context.Context, jobID int) {
	user := c.session.Get()
	if user == nil {
		c.toasts.Notify(MsgApplyNeedsProfile)
		c.activate(router.ProfileSection)
		return
	}

	c.toasts.Notify(MsgGeneratingEmail)

	app, err := c.backend.Apply(ctx, user.ID, jobID)
	if err != nil {
		apiErr, ok := services.AsAPIError(err)
		switch {
		case !ok:
			c.toasts.Notify(networkErrorMsg(err))
		case apiErr.StatusCode == http.StatusNotFound:
			c.toasts.Notify(MsgProfileMismatch)
			c.activate(router.ProfileSection)
		default:
			c.toasts.Notify(applicationFailedMsg(apiErr.Detail))
		}
		return
	}

	if app.StatusValue() == models.StatusManualApplyRequired {
		c.toasts.Notify(MsgManualRequired)
	} else {
		c.toasts.Notify(applicationSentMsg(app.StatusValue()))
	}

	c.LoadApplications(ctx)
}

// LoadApplications fetches and renders the current user's applications. Failures are logged only.
func (c *Controller) LoadApplications(ctx context.Context) {
	user := c.session.Get()
	if user == nil {
		return
	}

	seq := c.appsSeq.Add(1)
	apps, err := c.backend.ListApplications(ctx, user.ID)
	if latest := c.appsSeq.Load(); seq != latest {
		c.logger.Debug("dropping stale applications response", "seq", seq, "latest", latest)
		return
	}

	if err != nil {
		c.logger.Error("failed to load applications", "user_id", user.ID, "error", err)
		return
	}

	if len(apps) == 0 {
		c.view.RenderNoApplications()
		return
	}
	c.view.RenderApplications(applicationRows(apps))
}

func (c *Controller) activate(id router.SectionID) {
	if err := c.router.Activate(id); err != nil {
		c.logger.Error("failed to change section", "section", id, "error", err)
	}
}
