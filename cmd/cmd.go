// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// loginCommand authenticates against the backend and stores the session.
func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in and store the access token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				Usage:    "Account username",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "Account password",
				Required: true,
			},
		},
		Action: r.Login,
	}
}

// signupCommand registers a new account.
func signupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "Create a new account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "Full name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				Usage:    "Desired username",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "email",
				Aliases:  []string{"e"},
				Usage:    "Email address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "Account password",
				Required: true,
			},
		},
		Action: r.Signup,
	}
}

// logoutCommand clears the stored session.
func logoutCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Clear the stored session",
		Action: r.Logout,
	}
}

// whoamiCommand prints the authenticated user.
func whoamiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the logged-in user",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Whoami,
	}
}

// programCommand handles workout program operations.
func programCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "program",
		Aliases: []string{"prog"},
		Usage:   "Workout program operations",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print a program's exercise table",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
					&cli.BoolFlag{
						Name:    "markdown",
						Aliases: []string{"md"},
						Usage:   "Output Markdown",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.ProgramShow,
			},
			{
				Name:  "edit",
				Usage: "Edit an existing program in the interactive editor",
				Arguments: []cli.Argument{
					&cli.IntArg{Name: "id"},
				},
				Action: r.ProgramEdit,
			},
			{
				Name:   "new",
				Usage:  "Create a program in the interactive editor",
				Action: r.ProgramNew,
			},
		},
	}
}

// diaryCommand renders the diary calendar.
func diaryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "diary",
		Usage: "Show the diary calendar for a month",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "year",
				Usage: "Calendar year (defaults to current)",
			},
			&cli.IntFlag{
				Name:  "month",
				Usage: "Calendar month 1-12 (defaults to current)",
			},
		},
		Action: r.Diary,
	}
}

// setupCommand initializes local state.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize config file, session database and migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}
