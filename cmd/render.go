package main

import (
	"sync"

	"github.com/desertthunder/applyx/internal/flows"
	"github.com/desertthunder/applyx/internal/models"
)

// textRenderer prints flow output as plain lines. Application rows are collected so the caller can export them in
// the requested format; with summarize set they are also listed one per line.
type textRenderer struct {
	r         *Runner
	summarize bool

	mu       sync.Mutex
	jobs     []flows.JobCard
	apps     []flows.ApplicationRow
	rendered bool
}

var _ flows.Renderer = (*textRenderer)(nil)

func newTextRenderer(r *Runner) *textRenderer {
	return &textRenderer{r: r}
}

func (t *textRenderer) SetSubmitting(submitting bool) {
	if submitting {
		t.r.writePlain("%s\n", flows.SubmittingLabel)
	}
}

func (t *textRenderer) SetLoading(loading bool) {
	if loading {
		t.r.writePlain("Searching...\n")
	}
}

func (t *textRenderer) ClearJobs() {
	t.mu.Lock()
	t.jobs = nil
	t.mu.Unlock()
}

func (t *textRenderer) RenderJobs(cards []flows.JobCard) {
	t.mu.Lock()
	t.jobs = cards
	t.mu.Unlock()

	t.r.writePlainHeader("Jobs")
	for _, c := range cards {
		t.r.writePlain("#%d %s\n", c.ID, c.Title)
		t.r.writePlain("   %s • %s\n", c.Company, c.Location)
		if c.Description != "" {
			t.r.writePlain("   %s\n", c.Description)
		}
		if c.EasyApply {
			t.r.writePlain("   → %s: applyx apply %d\n\n", c.ActionLabel(), c.ID)
		} else {
			t.r.writePlain("   → %s: %s\n\n", c.ActionLabel(), c.URL)
		}
	}
}

func (t *textRenderer) RenderNoJobs() {
	t.ClearJobs()
	t.r.writePlain("%s\n", flows.NoJobsText)
}

func (t *textRenderer) RenderApplications(rows []flows.ApplicationRow) {
	t.mu.Lock()
	t.apps = rows
	t.rendered = true
	t.mu.Unlock()

	if !t.summarize {
		return
	}
	t.r.writePlainHeader("Applications")
	if len(rows) == 0 {
		t.r.writePlain("%s\n", flows.NoApplicationsText)
	}
	for _, row := range rows {
		t.r.writePlain("#%d [%s] %s - %s\n", row.ID, row.Label, row.Title, row.Company)
	}
}

func (t *textRenderer) RenderNoApplications() {
	t.RenderApplications(nil)
}

func (t *textRenderer) ClearSearchQuery() {}

func (t *textRenderer) FillProfile(models.User) {}

func (t *textRenderer) SetSearchLocation(string) {}

// applications returns the last rendered rows and whether any were rendered.
func (t *textRenderer) applications() ([]flows.ApplicationRow, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.apps, t.rendered
}
