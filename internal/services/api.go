// API service for making HTTP requests to the job application backend
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/applyx/internal/models"
	"github.com/desertthunder/applyx/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL string = "http://127.0.0.1:8000"

var _ Backend = (*APIService)(nil)

// APIService implements [Backend] over HTTP.
type APIService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// APIOpts contains configuration options for creating an [APIService].
type APIOpts struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration // used only when HTTPClient is nil
	RateLimit  float64       // requests per second; zero or less disables limiting
	Logger     *log.Logger
}

// NewAPIService creates a new API service instance for the backend.
func NewAPIService(opts APIOpts) *APIService {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &APIService{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: opts.HTTPClient,
		limiter:    limiter,
		logger:     shared.WithLogger(opts.Logger, "component", "api"),
	}
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// Get performs a GET request to the specified path and returns the raw response.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	return a.raw(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with the given JSON data and returns the raw response.
func (a *APIService) Post(ctx context.Context, path string, data []byte) (*APIResponse, error) {
	return a.raw(ctx, http.MethodPost, path, data)
}

// CreateUser calls POST /users/.
func (a *APIService) CreateUser(ctx context.Context, profile models.Profile) (*models.User, error) {
	var user models.User
	if err := a.doJSON(ctx, http.MethodPost, "/users/", profile, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser calls GET /users/{email}.
func (a *APIService) GetUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := a.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(email), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchJobs calls GET /jobs/search?query=&location=[&user_id=].
func (a *APIService) SearchJobs(ctx context.Context, params SearchParams) ([]models.Job, error) {
	q := url.Values{}
	q.Set("query", params.Query)
	q.Set("location", params.Location)
	if params.UserID != 0 {
		q.Set("user_id", strconv.Itoa(params.UserID))
	}

	jobs := []models.Job{}
	if err := a.doJSON(ctx, http.MethodGet, "/jobs/search?"+q.Encode(), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Apply calls POST /apply/?user_id={userID} with {"job_id": jobID}.
func (a *APIService) Apply(ctx context.Context, userID, jobID int) (*models.Application, error) {
	body := struct {
		JobID int `json:"job_id"`
	}{JobID: jobID}

	var app models.Application
	endpoint := fmt.Sprintf("/apply/?user_id=%d", userID)
	if err := a.doJSON(ctx, http.MethodPost, endpoint, body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ListApplications calls GET /applications/{userID}.
func (a *APIService) ListApplications(ctx context.Context, userID int) ([]models.Application, error) {
	apps := []models.Application{}
	if err := a.doJSON(ctx, http.MethodGet, fmt.Sprintf("/applications/%d", userID), nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// doJSON sends body (if any) as JSON and decodes a 2xx answer into result.
func (a *APIService) doJSON(ctx context.Context, method, endpoint string, body, result any) error {
	var data []byte
	if body != nil {
		var err error
		if data, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	resp, err := a.raw(ctx, method, endpoint, data)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, resp.Body)
	}

	if result != nil {
		if err := json.Unmarshal(resp.Body, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (a *APIService) raw(ctx context.Context, method, endpoint string, data []byte) (*APIResponse, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, &NetworkError{Err: err}
	}

	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := shared.GenerateID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Warn("request failed", "method", method, "path", endpoint, "request_id", requestID, "error", err)
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	a.logger.Debug("request complete",
		"method", method, "path", endpoint, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(start))

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	var jsonData any
	if err := json.Unmarshal(respBody, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}
