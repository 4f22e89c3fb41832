// package services defines interface Backend for interacting with the job application API
package services

import (
	"context"

	"github.com/desertthunder/applyx/internal/models"
)

// Backend defines the operations the client performs against the job application API.
type Backend interface {
	// CreateUser registers a profile and returns the stored user with its ID.
	// A duplicate email answers 400 with detail [DetailEmailRegistered].
	CreateUser(ctx context.Context, profile models.Profile) (*models.User, error)

	// GetUser fetches an existing user by email.
	GetUser(ctx context.Context, email string) (*models.User, error)

	// SearchJobs runs a job search. A non-zero UserID enables personalised suggestions.
	SearchJobs(ctx context.Context, params SearchParams) ([]models.Job, error)

	// Apply applies userID to jobID and returns the resulting application.
	Apply(ctx context.Context, userID, jobID int) (*models.Application, error)

	// ListApplications returns the application history of userID.
	ListApplications(ctx context.Context, userID int) ([]models.Application, error)
}

// SearchParams are the query parameters of a job search. Empty strings are sent as-is.
type SearchParams struct {
	Query    string
	Location string
	UserID   int
}

// DetailEmailRegistered is the error detail the backend returns when creating a user whose email already exists.
const DetailEmailRegistered = "Email already registered"
