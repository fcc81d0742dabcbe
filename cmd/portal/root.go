package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/app"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/config"
	applog "github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/log"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/ui"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/session"
	"github.com/spf13/cobra"
)

// cli carries what every subcommand shares.
type cli struct {
	configFile string
	opts       []app.Option

	app *app.App
	out io.Writer
	err io.Writer
}

func newCLI(stdout, stderr io.Writer, opts ...app.Option) *cli {
	return &cli{out: stdout, err: stderr, opts: opts}
}

// rootCmd builds the command tree. Call close once it has executed.
func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portal",
		Short:         "XCalibr recruiting portal client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			displayAppname(c.out, c.app.Config.AppName)
			return cmd.Help()
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.err)
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default ./portal.yaml or ~/.xcalibr/portal.yaml)")

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.statusCmd(),
		c.signupCmd(),
		c.jobsCmd(),
		c.profileCmd(),
		c.applicationsCmd(),
		c.applyCmd(),
		c.feedbackCmd(),
		c.recruiterDashboardCmd(),
		c.rankingsCmd(),
		c.adminDashboardCmd(),
		c.adminUsersCmd(),
		c.systemLogsCmd(),
	)
	return root
}

func (c *cli) open(ctx context.Context) error {
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return err
	}
	applog.New(cfg.Environment, cfg.Log.Level)
	if cfg.IsProduction() {
		ui.DisableColour()
	}

	c.app, err = app.New(ctx, cfg, c.opts...)
	return err
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

// context bounds one command by the configured timeout.
func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.app.Config.API.Timeout)
}

// signInRequiredError is returned when a guarded command has no valid session.
type signInRequiredError struct {
	scope scope.Scope
	page  string
}

func (e *signInRequiredError) Error() string {
	return fmt.Sprintf("Not signed in as %s (login page %s). Run: portal login %s", e.scope, e.page, e.scope)
}

func (e *signInRequiredError) Unwrap() error {
	return session.ErrUnauthenticated
}

// authenticate mounts the admin guard or the dashboard layout for s and
// returns a context carrying the verified identity.
func (c *cli) authenticate(ctx context.Context, s scope.Scope) (context.Context, error) {
	var target string
	nav := session.NavigatorFunc(func(path string, _ bool) { target = path })

	if s == scope.Admin {
		guard := c.app.NewGuard(s, nav)
		defer guard.Unmount()

		switch guard.Mount(ctx) {
		case session.StateAuthenticated:
			id, _ := guard.Identity()
			return identity.WithIdentity(ctx, id), nil
		case session.StateChecking:
			return nil, fmt.Errorf("verify %s session: %w", s, ctx.Err())
		}
		return nil, &signInRequiredError{scope: s, page: target}
	}

	layout := c.app.NewLayout(nav)
	defer layout.Unmount()

	switch layout.Mount(ctx, s.Describe().LandingPage) {
	case session.StateAuthenticated:
		return layout.Page(ctx)
	case session.StateChecking:
		return nil, fmt.Errorf("verify %s session: %w", s, ctx.Err())
	}
	return nil, &signInRequiredError{scope: s, page: target}
}

func scopeArg(args []string) (scope.Scope, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected one scope: candidate, recruiter or admin")
	}
	return scope.Parse(args[0])
}
