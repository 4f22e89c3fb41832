// package models defines the data model for the job application client
package models

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// DescriptionPreviewLen is the number of characters of a job description shown on a card.
const DescriptionPreviewLen = 100

// User is the applicant profile as stored by the backend.
type User struct {
	ID          int        `json:"id,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	Location    string     `json:"location"`
	ResumePath  string     `json:"resume_path"`
	Skills      string     `json:"skills"`
	Experience  string     `json:"experience"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// HasID reports whether the backend has assigned an ID to the user.
func (u *User) HasID() bool {
	return u != nil && u.ID != 0
}

// Profile returns the submitted fields of u.
func (u User) Profile() Profile {
	return Profile{
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Location:    u.Location,
		ResumePath:  u.ResumePath,
		Skills:      u.Skills,
		Experience:  u.Experience,
	}
}

// Profile holds the form fields sent to create a [User]. Empty strings are sent as-is.
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
	ResumePath  string `json:"resume_path"`
	Skills      string `json:"skills"`
	Experience  string `json:"experience"`
}

// Job is a read-only job posting returned by search.
type Job struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	HREmail     *string    `json:"hr_email,omitempty"`
	PostedAt    *time.Time `json:"posted_at,omitempty"`
}

// EasyApply reports whether the backend can email the hiring contact for this job.
func (j Job) EasyApply() bool {
	return j.HREmail != nil && *j.HREmail != ""
}

// DescriptionPreview returns the first [DescriptionPreviewLen] characters of the description followed by an ellipsis.
func (j Job) DescriptionPreview() string {
	desc := j.Description
	if utf8.RuneCountInString(desc) > DescriptionPreviewLen {
		desc = string([]rune(desc)[:DescriptionPreviewLen])
	}
	return desc + "..."
}

// Application is the record of an apply attempt.
type Application struct {
	ID             int        `json:"id"`
	UserID         int        `json:"user_id,omitempty"`
	JobID          int        `json:"job_id"`
	Status         *string    `json:"status,omitempty"`
	Job            *Job       `json:"job,omitempty"`
	GeneratedEmail string     `json:"generated_email_content,omitempty"`
	AppliedAt      *time.Time `json:"applied_at,omitempty"`
}

// StatusValue returns the status tag, or "" when the backend sent none.
func (a Application) StatusValue() string {
	if a.Status == nil {
		return ""
	}
	return *a.Status
}

// JobTitle returns the embedded job title, falling back to "Job #<id>".
func (a Application) JobTitle() string {
	if a.Job != nil {
		return a.Job.Title
	}
	return fmt.Sprintf("Job #%d", a.JobID)
}

// Company returns the embedded job company, or "" when no job is embedded.
func (a Application) Company() string {
	if a.Job != nil {
		return a.Job.Company
	}
	return ""
}

// ManualApplyURL returns the outbound link offered for manual applications.
//
// ok is false unless the status is [StatusManualApplyRequired] and the embedded job has a URL.
func (a Application) ManualApplyURL() (url string, ok bool) {
	if a.StatusValue() != StatusManualApplyRequired || a.Job == nil || a.Job.URL == "" {
		return "", false
	}
	return a.Job.URL, true
}
