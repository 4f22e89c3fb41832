// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create the config file and initialize the local database",
		Action: r.Setup,
	}
}

// profileCommand manages the current user
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show or save your applicant profile",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the stored profile",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ProfileShow,
			},
			{
				Name:  "save",
				Usage: "Register a profile and make it the current user",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Full name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address (unique per user)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "phone",
						Usage: "Phone number",
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "Preferred job location",
					},
					&cli.StringFlag{
						Name:  "resume",
						Usage: "Path to your resume",
					},
					&cli.StringFlag{
						Name:  "skills",
						Usage: "Comma separated skills",
					},
					&cli.StringFlag{
						Name:  "experience",
						Usage: "Short summary of your experience",
					},
					&cli.BoolFlag{
						Name:  "no-search",
						Usage: "Skip the job search that follows a new registration",
					},
				},
				Action: r.ProfileSave,
			},
		},
	}
}

func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search for jobs (an empty query asks for AI suggestions)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Job title or keywords",
			},
			&cli.StringFlag{
				Name:    "location",
				Aliases: []string{"l"},
				Usage:   "Location filter (defaults to the profile location)",
			},
		},
		Action: r.Search,
	}
}

func applyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Easy Apply to a job with an AI generated email",
		ArgsUsage: "<job-id>",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "job-id",
				UsageText: "Job ID from search results",
			},
		},
		Action: r.Apply,
	}
}

func applicationsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "applications",
		Aliases: []string{"apps"},
		Usage:   "List your applications",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (text, csv, md)",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to a file instead of stdout",
			},
		},
		Action: r.Applications,
	}
}

func openCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "open",
		Usage:     "Open a job link in the browser",
		ArgsUsage: "<url>",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "url",
				UsageText: "Link to open",
			},
		},
		Action: r.Open,
	}
}

// apiCommand handles raw backend requests
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct backend API access for debugging",
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Make a GET request to the backend",
				ArgsUsage: "<path>",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:      "path",
						UsageText: "API endpoint path (e.g., /users/jane@example.com)",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output compact JSON",
					},
				},
				Action: r.APIGet,
			},
			{
				Name:      "post",
				Usage:     "Make a POST request to the backend",
				ArgsUsage: "<path>",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:      "path",
						UsageText: "API endpoint path (e.g., /users/)",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON request body",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive terminal UI",
		Action: r.TUI,
	}
}
