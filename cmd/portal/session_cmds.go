package main

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/ui"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/utils"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/session"
	"github.com/spf13/cobra"
)

func (c *cli) loginCmd() *cobra.Command {
	var (
		email         string
		password      string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login <candidate|recruiter|admin>",
		Short: "Sign in to one scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scopeArg(args)
			if err != nil {
				return err
			}
			if passwordStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password from stdin: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			landing, err := session.Login(ctx, c.app.Clients.Public, c.app.Store, s, session.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			ui.Success(c.out, "Signed in as %s. Landing page: %s", ui.ScopeLabel(s), landing)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout <candidate|recruiter|admin|all>",
		Short: "Sign out of one scope, or all of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav := session.NavigatorFunc(func(path string, _ bool) {
				ui.Success(c.out, "Signed out. Next page: %s", path)
			})
			if args[0] == "all" {
				return session.LogoutAll(c.app.Store, nav)
			}
			s, err := scopeArg(args)
			if err != nil {
				return err
			}
			return session.Logout(c.app.Store, nav, s)
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami <candidate|recruiter|admin>",
		Short: "Verify a scope's session and show its identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scopeArg(args)
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			pageCtx, err := c.authenticate(ctx, s)
			if err != nil {
				return err
			}
			id, _ := identity.FromContext(pageCtx)

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Scope:\t%s\n", ui.ScopeLabel(id.Scope()))
			fmt.Fprintf(w, "ID:\t%d\n", id.ID())
			fmt.Fprintf(w, "Name:\t%s\n", id.FullName())
			fmt.Fprintf(w, "Email:\t%s\n", id.EmailAddress())

			switch v := id.(type) {
			case *identity.Candidate:
				fmt.Fprintf(w, "Title:\t%s\n", utils.Value(v.CurrentTitle))
				fmt.Fprintf(w, "Skills:\t%s\n", utils.Value(v.Skills))
				fmt.Fprintf(w, "Applications:\t%d\n", v.ApplicationsCount)
				if !v.DateRegistered.IsZero() {
					fmt.Fprintf(w, "Registered:\t%s\n", v.DateRegistered.Format(time.DateOnly))
				}
			case *identity.Recruiter:
				fmt.Fprintf(w, "Designation:\t%s\n", utils.Value(v.Designation))
				fmt.Fprintf(w, "Active:\t%t\n", v.IsActive)
			case *identity.Admin:
				fmt.Fprintf(w, "Organization:\t%s\n", utils.Value(v.Organization))
			}
			return w.Flush()
		},
	}
}

// statusCmd reports what is stored locally, without calling the backend.
func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored sessions without contacting the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := ui.NewTable(c.out)
			fmt.Fprintln(w, "SCOPE\tTOKEN\tNAME\tEXPIRES")
			for _, s := range scope.All {
				token, ok := c.app.Store.Token(s)
				if !ok {
					fmt.Fprintf(w, "%s\t-\t-\t-\n", s)
					continue
				}
				name, _ := c.app.Store.DisplayName(s)
				expires := "unknown"
				if exp, ok := credentials.ExpiryHint(token); ok {
					expires = exp.Local().Format(time.DateTime)
					if time.Now().After(exp) {
						expires += " (expired)"
					}
				}
				fmt.Fprintf(w, "%s\tstored\t%s\t%s\n", s, dash(name), expires)
			}
			return w.Flush()
		},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
