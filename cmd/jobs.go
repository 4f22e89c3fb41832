package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/applyx/internal/formatter"
	"github.com/desertthunder/applyx/internal/models"
	"github.com/desertthunder/applyx/internal/shared"
	"github.com/urfave/cli/v3"
)

// ProfileShow prints the stored profile.
func (r *Runner) ProfileShow(ctx context.Context, cmd *cli.Command) error {
	a, err := r.newApp(newTextRenderer(r))
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := a.ctrl.Restore()
	if err != nil {
		return err
	}
	if user == nil {
		r.writePlain("No profile saved. Run 'applyx profile save' to create one.\n")
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, true)
	}

	r.writePlainHeader(user.Name)
	r.writePlain("ID:         %d\n", user.ID)
	r.writePlain("Email:      %s\n", user.Email)
	r.writePlain("Phone:      %s\n", user.PhoneNumber)
	r.writePlain("Location:   %s\n", user.Location)
	r.writePlain("Resume:     %s\n", user.ResumePath)
	r.writePlain("Skills:     %s\n", user.Skills)
	r.writePlain("Experience: %s\n", user.Experience)
	return nil
}

// ProfileSave registers the profile given by flags and waits for the follow-up search, if any.
func (r *Runner) ProfileSave(ctx context.Context, cmd *cli.Command) error {
	a, err := r.newApp(newTextRenderer(r))
	if err != nil {
		return err
	}
	defer a.Close()
	r.printToasts(a.toasts)

	if _, err := a.ctrl.Restore(); err != nil {
		return err
	}

	profile := models.Profile{
		Name:        cmd.String("name"),
		Email:       cmd.String("email"),
		PhoneNumber: cmd.String("phone"),
		Location:    cmd.String("location"),
		ResumePath:  cmd.String("resume"),
		Skills:      cmd.String("skills"),
		Experience:  cmd.String("experience"),
	}
	a.ctrl.SetLocation(profile.Location)
	a.ctrl.SubmitProfile(ctx, profile)

	if cmd.Bool("no-search") {
		a.ctrl.Close()
	}
	a.ctrl.Wait()
	return nil
}

// Search runs a job search. The location defaults to the stored profile's.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	a, err := r.newApp(newTextRenderer(r))
	if err != nil {
		return err
	}
	defer a.Close()
	r.printToasts(a.toasts)

	user, err := a.ctrl.Restore()
	if err != nil {
		return err
	}

	location := cmd.String("location")
	if !cmd.IsSet("location") && user != nil {
		location = user.Location
	}

	a.ctrl.SearchJobs(ctx, cmd.String("query"), location)
	return nil
}

// Apply submits an Easy Apply application for the job given as argument.
func (r *Runner) Apply(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("job-id")
	if raw == "" {
		return fmt.Errorf("%w: job-id", shared.ErrMissingArgument)
	}
	jobID, err := strconv.Atoi(raw)
	if err != nil || jobID <= 0 {
		return fmt.Errorf("%w: job-id must be a positive integer, got %q", shared.ErrInvalidArgument, raw)
	}

	view := newTextRenderer(r)
	view.summarize = true
	a, err := r.newApp(view)
	if err != nil {
		return err
	}
	defer a.Close()
	r.printToasts(a.toasts)

	if _, err := a.ctrl.Restore(); err != nil {
		return err
	}

	a.ctrl.Apply(ctx, jobID)
	return nil
}

// Applications lists the current user's applications in the requested format.
func (r *Runner) Applications(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	view := newTextRenderer(r)
	a, err := r.newApp(view)
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := a.ctrl.Restore()
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: run 'applyx profile save' first", shared.ErrNoSession)
	}

	a.ctrl.LoadApplications(ctx)
	rows, ok := view.applications()
	if !ok {
		return fmt.Errorf("%w: could not load applications", shared.ErrAPIRequest)
	}

	if path := cmd.String("output"); path != "" {
		written, err := formatter.WriteExportFile(format, rows, path)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported %d applications to %s\n", len(rows), written)
		return nil
	}

	return formatter.WriteExport(r.output, format, rows)
}

// Open opens a job link in the default browser.
func (r *Runner) Open(ctx context.Context, cmd *cli.Command) error {
	url := cmd.StringArg("url")
	if url == "" {
		return fmt.Errorf("%w: url", shared.ErrMissingArgument)
	}

	if err := r.openURL(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	r.writePlain("Opened %s\n", url)
	return nil
}
