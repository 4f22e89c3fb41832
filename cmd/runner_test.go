package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/applyx/internal/models"
	"github.com/desertthunder/applyx/internal/services"
	"github.com/desertthunder/applyx/internal/shared"
	tu "github.com/desertthunder/applyx/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			api := &services.APIService{}
			clock := tu.NewManualScheduler()

			runner := NewRunner(RunnerOpts{
				Config:    config,
				Logger:    logger,
				Output:    output,
				API:       api,
				Scheduler: clock,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.api != api {
				t.Error("expected api to be set")
			}
			if runner.scheduler != clock {
				t.Error("expected scheduler to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil scheduler uses wall-clock time", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if _, ok := runner.scheduler.(shared.RealScheduler); !ok {
				t.Errorf("expected RealScheduler, got %T", runner.scheduler)
			}
		})

		t.Run("with configPath sets field", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{ConfigPath: "/test/path/config.toml"})

			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("compact", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]int{"id": 1}, false); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.String() != "{\"id\":1}\n" {
				t.Errorf("unexpected output %q", output.String())
			}
		})

		t.Run("pretty", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]int{"id": 1}, true); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(output.String(), "\n  \"id\": 1\n") {
				t.Errorf("expected indented output, got %q", output.String())
			}
		})

		t.Run("unmarshalable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			if err := runner.writeJSON(make(chan int), false); err == nil {
				t.Error("expected marshal error")
			}
		})

		t.Run("write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writeJSON("x", false); err == nil {
				t.Error("expected write error")
			}
		})

		t.Run("newline failure", func(t *testing.T) {
			w := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &w})

			err := runner.writeJSON("x", false)
			if err == nil || !strings.Contains(err.Error(), "newline") {
				t.Errorf("expected newline error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		runner.writePlain("a %d\n", 1)
		runner.writePlainln("b")
		runner.writePlainHeader("Jobs")

		assert.Equal(t, "a 1\n\nb\n", output.String()[:7])
		assert.Contains(t, output.String(), "\nJobs\n")

		failing := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
		assert.Error(t, failing.writePlain("x"))
		assert.Error(t, failing.writePlainln("x"))
	})
}

// backend is a minimal in-memory job application API.
type backend struct {
	users        map[string]models.User
	applications []models.Application
	searches     []string
}

func (b *backend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/", func(w http.ResponseWriter, r *http.Request) {
		var p models.Profile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		if _, ok := b.users[p.Email]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"detail":"Email already registered"}`)
			return
		}
		u := models.User{ID: len(b.users) + 1, Name: p.Name, Email: p.Email, Location: p.Location, Skills: p.Skills}
		b.users[p.Email] = u
		writeBody(w, u)
	})
	mux.HandleFunc("GET /users/{email}", func(w http.ResponseWriter, r *http.Request) {
		u, ok := b.users[r.PathValue("email")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"detail":"User not found"}`)
			return
		}
		writeBody(w, u)
	})
	mux.HandleFunc("GET /jobs/search", func(w http.ResponseWriter, r *http.Request) {
		b.searches = append(b.searches, r.URL.RawQuery)
		hr := "hr@acme.example"
		writeBody(w, []models.Job{
			{ID: 11, Title: "Go Developer", Company: "Acme", Location: "London", HREmail: &hr},
			{ID: 12, Title: "SRE", Company: "Initech", Location: "Remote", URL: "https://initech.example/12"},
		})
	})
	mux.HandleFunc("POST /apply/", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			JobID int `json:"job_id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		status := "applied"
		app := models.Application{
			ID: len(b.applications) + 1, JobID: body.JobID, Status: &status,
			Job: &models.Job{ID: body.JobID, Title: "Go Developer", Company: "Acme", URL: "https://acme.example/11"},
		}
		b.applications = append(b.applications, app)
		writeBody(w, app)
	})
	mux.HandleFunc("GET /applications/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, b.applications)
	})
	return mux
}

func writeBody(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

type fixture struct {
	runner  *Runner
	backend *backend
	output  *bytes.Buffer
	opened  []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{backend: &backend{users: map[string]models.User{}}, output: &bytes.Buffer{}}
	srv := httptest.NewServer(f.backend.handler(t))
	t.Cleanup(srv.Close)

	config := shared.DefaultConfig()
	config.Database.Path = ":memory:"
	logger := shared.NewLogger(io.Discard)

	f.runner = NewRunner(RunnerOpts{
		Config: config,
		API:    services.NewAPIService(services.APIOpts{BaseURL: srv.URL, Logger: logger}),
		Logger: logger,
		Output: f.output,
		OpenURL: func(u string) error {
			f.opened = append(f.opened, u)
			return nil
		},
	})
	t.Cleanup(func() { f.runner.Close() })
	return f
}

func (f *fixture) run(args ...string) error {
	app := &cli.Command{Name: "applyx", Commands: f.runner.register(), Writer: io.Discard, ErrWriter: io.Discard}
	return app.Run(context.Background(), append([]string{"applyx"}, args...))
}

func TestCommands(t *testing.T) {
	t.Run("profile show without a stored user", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.run("profile", "show"))
		assert.Contains(t, f.output.String(), "No profile saved")
	})

	t.Run("profile save then show", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.run("profile", "save", "--name", "Ada", "--email", "ada@example.com",
			"--location", "London", "--no-search"))
		assert.Contains(t, f.output.String(), "» Profile saved successfully!")

		f.output.Reset()
		require.NoError(t, f.run("profile", "show", "--json"))

		var u models.User
		require.NoError(t, json.Unmarshal(f.output.Bytes(), &u))
		assert.Equal(t, 1, u.ID)
		assert.Equal(t, "London", u.Location)
	})

	t.Run("saving a registered email loads the existing profile", func(t *testing.T) {
		f := newFixture(t)
		f.backend.users["ada@example.com"] = models.User{ID: 9, Name: "Ada", Email: "ada@example.com"}

		require.NoError(t, f.run("profile", "save", "--name", "Ada L", "--email", "ada@example.com"))

		assert.Contains(t, f.output.String(), "» Welcome back! Profile loaded.")
		assert.Empty(t, f.backend.searches)
		assert.Equal(t, 9, f.runner.session.Get().ID)
	})

	t.Run("fresh save runs the follow-up search", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.run("profile", "save", "--name", "Ada", "--email", "ada@example.com",
			"--location", "London"))

		require.Len(t, f.backend.searches, 1)
		assert.Contains(t, f.backend.searches[0], "location=London")
		assert.Contains(t, f.backend.searches[0], "user_id=1")
		assert.Contains(t, f.output.String(), "#11 Go Developer")
	})

	t.Run("search prints cards and defaults the location to the profile", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.run("profile", "save", "--name", "Ada", "--email", "ada@example.com",
			"--location", "Berlin", "--no-search"))
		f.output.Reset()

		require.NoError(t, f.run("search", "--query", "go"))

		require.Len(t, f.backend.searches, 1)
		assert.Contains(t, f.backend.searches[0], "location=Berlin")
		assert.Contains(t, f.backend.searches[0], "query=go")
		out := f.output.String()
		assert.Contains(t, out, "Easy Apply with AI: applyx apply 11")
		assert.Contains(t, out, "Apply Manually: https://initech.example/12")
	})

	t.Run("anonymous empty search asks for a query", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.run("search"))
		assert.Empty(t, f.backend.searches)
		assert.Contains(t, f.output.String(), "Please enter a job title")
	})

	t.Run("apply requires a numeric job id", func(t *testing.T) {
		f := newFixture(t)

		err := f.run("apply", "abc")
		assert.True(t, errors.Is(err, shared.ErrInvalidArgument))

		err = f.run("apply")
		assert.True(t, errors.Is(err, shared.ErrMissingArgument))
	})

	t.Run("apply without a profile", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.run("apply", "11"))
		assert.Contains(t, f.output.String(), "Please save your profile first")
	})

	t.Run("apply and export applications", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.run("profile", "save", "--name", "Ada", "--email", "ada@example.com", "--no-search"))

		require.NoError(t, f.run("apply", "11"))
		assert.Contains(t, f.output.String(), "» Application Sent! Status: applied")
		assert.Contains(t, f.output.String(), "#1 [APPLIED] Go Developer - Acme\n")

		f.output.Reset()
		require.NoError(t, f.run("applications"))
		assert.Contains(t, f.output.String(), "1. [APPLIED] Go Developer - Acme")

		f.output.Reset()
		require.NoError(t, f.run("applications", "--format", "csv"))
		assert.True(t, strings.HasPrefix(f.output.String(), "ID,Job ID,Title,Company,Status,Apply URL\n"))

		path := filepath.Join(t.TempDir(), "apps.md")
		f.output.Reset()
		require.NoError(t, f.run("applications", "--format", "md", "--output", path))
		assert.Contains(t, f.output.String(), "Exported 1 applications")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Applications")
	})

	t.Run("applications without a profile", func(t *testing.T) {
		f := newFixture(t)

		err := f.run("applications")
		assert.True(t, errors.Is(err, shared.ErrNoSession))
	})

	t.Run("applications rejects unknown formats", func(t *testing.T) {
		f := newFixture(t)

		err := f.run("applications", "--format", "xml")
		assert.True(t, errors.Is(err, shared.ErrInvalidArgument))
	})

	t.Run("empty application history", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.run("profile", "save", "--name", "Ada", "--email", "ada@example.com", "--no-search"))
		f.output.Reset()

		require.NoError(t, f.run("applications"))
		assert.Equal(t, "No applications yet.\n", f.output.String())
	})

	t.Run("open", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.run("open", "https://initech.example/12"))
		assert.Equal(t, []string{"https://initech.example/12"}, f.opened)

		assert.True(t, errors.Is(f.run("open"), shared.ErrMissingArgument))
	})

	t.Run("api get and post", func(t *testing.T) {
		f := newFixture(t)
		f.backend.users["ada@example.com"] = models.User{ID: 3, Name: "Ada", Email: "ada@example.com"}

		require.NoError(t, f.run("api", "get", "--json", "/users/ada@example.com"))
		assert.Contains(t, f.output.String(), `"id":3`)

		err := f.run("api", "get", "/users/nobody@example.com")
		assert.True(t, errors.Is(err, shared.ErrAPIRequest))

		err = f.run("api", "post", "--data", "{bad", "/users/")
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))

		f.output.Reset()
		require.NoError(t, f.run("api", "post", "--data", `{"name":"Bo","email":"bo@example.com"}`, "/users/"))
		assert.Contains(t, f.output.String(), `"email": "bo@example.com"`)
	})
}

func TestSetup(t *testing.T) {
	t.Chdir(t.TempDir())
	f := newFixture(t)
	f.runner.configPath = "config.toml"

	require.NoError(t, f.run("setup"))

	_, err := os.Stat("config.toml")
	require.NoError(t, err)
	assert.Contains(t, f.output.String(), "Config written to config.toml")
	assert.Contains(t, f.output.String(), "(schema version 0)")
	assert.NotNil(t, f.runner.session)
}

func TestBefore(t *testing.T) {
	t.Chdir(t.TempDir())

	newRoot := func(r *Runner) *cli.Command {
		return &cli.Command{
			Name:      "applyx",
			Flags:     []cli.Flag{&cli.StringFlag{Name: "config", Value: "config.toml"}},
			Before:    r.Before,
			Commands:  r.register(),
			Writer:    io.Discard,
			ErrWriter: io.Discard,
		}
	}

	t.Run("explicit missing config fails", func(t *testing.T) {
		r := NewRunner(RunnerOpts{Logger: shared.NewLogger(io.Discard), Output: &bytes.Buffer{}})

		err := newRoot(r).Run(context.Background(), []string{"applyx", "--config", "nope.toml", "profile", "show"})
		assert.True(t, errors.Is(err, shared.ErrMissingConfig))
	})

	t.Run("config file is loaded", func(t *testing.T) {
		data := "[database]\npath = \":memory:\"\n\n[log]\nlevel = \"debug\"\n"
		require.NoError(t, os.WriteFile("custom.toml", []byte(data), 0644))

		output := &bytes.Buffer{}
		r := NewRunner(RunnerOpts{Logger: shared.NewLogger(io.Discard), Output: output})
		t.Cleanup(func() { r.Close() })

		require.NoError(t, newRoot(r).Run(context.Background(), []string{"applyx", "--config", "custom.toml", "profile", "show"}))
		assert.Equal(t, "custom.toml", r.configPath)
		assert.Equal(t, ":memory:", r.config.Database.Path)
		assert.Equal(t, "debug", r.config.Log.Level)
		assert.Contains(t, output.String(), "No profile saved")
	})
}
