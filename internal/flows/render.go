package flows

import "github.com/desertthunder/applyx/internal/models"

// Renderer is the presentation surface driven by the [Controller].
//
// Implementations may be called from any goroutine.
type Renderer interface {
	SetSubmitting(submitting bool) // profile submit control: disabled with "Saving..." while true
	SetLoading(loading bool)       // search loading indicator
	ClearJobs()
	RenderJobs(cards []JobCard)
	RenderNoJobs()
	RenderApplications(rows []ApplicationRow)
	RenderNoApplications()
	ClearSearchQuery()
	FillProfile(user models.User)
	SetSearchLocation(location string)
}

// Labels of the profile submit control.
const (
	SubmitLabel     = "Save Profile"
	SubmittingLabel = "Saving..."
)

// Placeholders for empty result sets.
const (
	NoJobsText         = "No jobs found."
	NoApplicationsText = "No applications yet."
)

// JobCard is one rendered search result.
type JobCard struct {
	ID          int
	Title       string
	Company     string
	Location    string
	Description string // truncated preview
	EasyApply   bool   // true: "Easy Apply with AI" runs [Controller.Apply]; false: "Apply Manually" opens URL
	URL         string
}

// ActionLabel is the text of the card's call to action.
func (c JobCard) ActionLabel() string {
	if c.EasyApply {
		return "Easy Apply with AI"
	}
	return "Apply Manually"
}

// NewJobCard builds the card shown for job.
func NewJobCard(job models.Job) JobCard {
	return JobCard{
		ID:          job.ID,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Description: job.DescriptionPreview(),
		EasyApply:   job.EasyApply(),
		URL:         job.URL,
	}
}

// ApplicationRow is one rendered entry of the applications list.
type ApplicationRow struct {
	ID             int
	JobID          int
	Title          string
	Company        string
	Status         string
	Class          models.StatusClass
	Label          string
	ApplyURL       string // set only for manual applications with a job link
	GeneratedEmail string
}

// NewApplicationRow builds the row shown for app.
func NewApplicationRow(app models.Application) ApplicationRow {
	row := ApplicationRow{
		ID:             app.ID,
		JobID:          app.JobID,
		Title:          app.JobTitle(),
		Company:        app.Company(),
		Status:         app.StatusValue(),
		Class:          models.StatusClassOf(app.StatusValue()),
		Label:          models.StatusLabel(app.Status),
		GeneratedEmail: app.GeneratedEmail,
	}
	if u, ok := app.ManualApplyURL(); ok {
		row.ApplyURL = u
	}
	return row
}

func jobCards(jobs []models.Job) []JobCard {
	cards := make([]JobCard, len(jobs))
	for i, job := range jobs {
		cards[i] = NewJobCard(job)
	}
	return cards
}

func applicationRows(apps []models.Application) []ApplicationRow {
	rows := make([]ApplicationRow, len(apps))
	for i, app := range apps {
		rows[i] = NewApplicationRow(app)
	}
	return rows
}
