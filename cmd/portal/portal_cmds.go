package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/ui"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/utils"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/portal"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/spf13/cobra"
)

var errNoChanges = errors.New("nothing to update: pass at least one field")

func (c *cli) signupCmd() *cobra.Command {
	var (
		form    portal.CandidateSignup
		confirm string
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a candidate account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			created, err := c.app.Portal.Public.SignupCandidate(ctx, form, confirm)
			if err != nil {
				return err
			}
			ui.Success(c.out, "Account created for %s. Sign in with: portal login candidate --email %s", created.FullName(), created.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email")
	cmd.Flags().StringVar(&form.PassWord, "password", "", "password")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "password again")
	return cmd
}

func (c *cli) jobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List open jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			jobs, err := c.app.Portal.Public.ListJobs(ctx)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tTYPE\tDEADLINE")
			for _, j := range jobs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", j.JobID, j.Title,
					dash(utils.Value(j.CompanyName)), dash(utils.Value(j.Location)),
					dash(utils.Value(j.EmploymentType)), date(j.Deadline.Time))
			}
			return w.Flush()
		},
	}
}

func (c *cli) profileCmd() *cobra.Command {
	var title, skills, summary, github, linkedin, leetcode, contact, resume string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the candidate profile, or upload a resume with --resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.authenticate(ctx, scope.Candidate); err != nil {
				return err
			}

			if resume != "" {
				upload, closeFile, err := openUpload(resume)
				if err != nil {
					return err
				}
				defer closeFile()
				if _, err := c.app.Portal.Candidate.UploadResume(ctx, upload); err != nil {
					return err
				}
				ui.Success(c.out, "Resume uploaded.")
			}

			update := portal.CandidateUpdate{
				CurrentTitle:        utils.NonEmpty(title),
				Skills:              utils.NonEmpty(skills),
				ProfessionalSummary: utils.NonEmpty(summary),
				GithubLink:          utils.NonEmpty(github),
				LeetcodeLink:        utils.NonEmpty(leetcode),
				ContactInfo:         utils.NonEmpty(contact),
			}
			if linkedin != "" {
				upload, closeFile, err := openUpload(linkedin)
				if err != nil {
					return err
				}
				defer closeFile()
				if _, err := c.app.Portal.Candidate.UploadLinkedinPDF(ctx, upload); err != nil {
					return err
				}
				ui.Success(c.out, "LinkedIn PDF uploaded.")
			}
			if update == (portal.CandidateUpdate{}) {
				if resume != "" || linkedin != "" {
					return nil
				}
				return errNoChanges
			}

			updated, err := c.app.Portal.Candidate.UpdateProfile(ctx, update)
			if err != nil {
				return err
			}
			ui.Success(c.out, "Profile updated for %s.", updated.FullName())
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "current title")
	cmd.Flags().StringVar(&skills, "skills", "", "comma separated skills")
	cmd.Flags().StringVar(&summary, "summary", "", "professional summary")
	cmd.Flags().StringVar(&github, "github", "", "GitHub profile link")
	cmd.Flags().StringVar(&leetcode, "leetcode", "", "LeetCode profile link")
	cmd.Flags().StringVar(&contact, "contact", "", "contact info")
	cmd.Flags().StringVar(&resume, "resume", "", "resume file to upload (.pdf, .doc, .docx)")
	cmd.Flags().StringVar(&linkedin, "linkedin-pdf", "", "LinkedIn profile PDF to upload")
	return cmd
}

func (c *cli) applicationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "applications",
		Short: "List the candidate's applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.authenticate(ctx, scope.Candidate); err != nil {
				return err
			}
			apps, err := c.app.Portal.Candidate.Applications(ctx)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tJOB\tCOMPANY\tSTATUS\tAPPLIED")
			for _, a := range apps {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", a.ApplicationID, a.Job.Title,
					dash(utils.Value(a.Job.CompanyName)), a.Status, date(a.AppliedOn.Time))
			}
			return w.Flush()
		},
	}
}

func (c *cli) applyCmd() *cobra.Command {
	var (
		jobID int
		cv    string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply to a job, optionally with a job-specific CV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			pageCtx, err := c.authenticate(ctx, scope.Candidate)
			if err != nil {
				return err
			}
			me, _ := identity.FromContext(pageCtx)

			app := portal.Application{CandID: me.ID(), JobID: jobID}
			if cv != "" {
				upload, closeFile, err := openUpload(cv)
				if err != nil {
					return err
				}
				defer closeFile()
				app.CV = upload
			}

			result, err := c.app.Portal.Candidate.Apply(ctx, app)
			if err != nil {
				return err
			}
			ui.Success(c.out, "%s (application %d)", result.Message, result.ApplicationID)
			return nil
		},
	}
	cmd.Flags().IntVar(&jobID, "job", 0, "job id")
	cmd.Flags().StringVar(&cv, "cv", "", "CV file for this application")
	return cmd
}

func (c *cli) feedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feedback",
		Short: "Show messages recruiters sent the candidate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.authenticate(ctx, scope.Candidate); err != nil {
				return err
			}
			messages, err := c.app.Portal.Candidate.MyFeedback(ctx)
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				ui.Notice(c.out, "No feedback yet.")
				return nil
			}
			for _, m := range messages {
				from := "XCalibr"
				if m.Sender != nil {
					from = m.Sender.FullName()
				}
				ui.Title(c.out, fmt.Sprintf("%s from %s, %s", m.MessageType, from, date(m.SentAt.Time)))
				fmt.Fprintln(c.out, utils.Value(m.Content))
				fmt.Fprintln(c.out)
			}
			return nil
		},
	}
}

func (c *cli) recruiterDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recruiter-dashboard",
		Short: "Show the recruiter dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.authenticate(ctx, scope.Recruiter); err != nil {
				return err
			}
			d := portal.LoadRecruiterDashboard(ctx, c.app.Portal.Recruiter)

			ui.Title(c.out, "At a glance")
			if c.section(d.KPIs.Err, "Failed to load dashboard KPIs.") {
				k := d.KPIs.Value
				w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
				fmt.Fprintf(w, "Active jobs:\t%d\n", k.ActiveJobs)
				fmt.Fprintf(w, "Total applicants:\t%d\n", k.TotalApplicants)
				fmt.Fprintf(w, "New this week:\t%d\n", k.NewApplicantsWeekly)
				fmt.Fprintf(w, "Pending analyses:\t%d\n", k.PendingAnalyses)
				_ = w.Flush()
			}

			ui.Title(c.out, "Job postings")
			if c.section(d.Jobs.Err, "Failed to load job summaries.") {
				w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tAPPLICANTS\tNEW\tPENDING")
				for _, j := range d.Jobs.Value {
					fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\n", j.JobID, j.Title, j.Status, j.TotalApplicants, j.NewApplicants, j.PendingAnalyses)
				}
				_ = w.Flush()
			}

			ui.Title(c.out, "Applicant volume")
			if c.section(d.Volume.Err, "Failed to load applicant volume.") {
				printVolume(c.out, d.Volume.Value)
			}

			if d.Failed() {
				return fmt.Errorf("recruiter dashboard unavailable: %w", d.KPIs.Err)
			}
			return nil
		},
	}
}

func (c *cli) rankingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rankings <job-id>",
		Short: "Show ranked applicants for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("job id %q: %w", args[0], err)
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.authenticate(ctx, scope.Recruiter); err != nil {
				return err
			}
			r, err := c.app.Portal.Recruiter.Rankings(ctx, jobID)
			if err != nil {
				return err
			}

			ui.Title(c.out, fmt.Sprintf("Job %d: %d applicants", r.JobID, r.TotalApplicants))
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tAPPLICATION\tCANDIDATE\tEMAIL\tOVERALL\tJD MATCH\tSTATUS")
			for _, a := range r.Rankings {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n", a.Rank, a.ApplicationID, a.CandidateName, a.CandidateEmail,
					score(a.OverallScore), score(a.JDMatchScore), a.AnalysisStatus)
			}
			return w.Flush()
		},
	}
}

func (c *cli) adminDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "admin-dashboard",
		Short: "Show the admin console dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.authenticate(ctx, scope.Admin); err != nil {
				return err
			}
			d := portal.LoadAdminDashboard(ctx, c.app.Portal.Admin)

			ui.Title(c.out, "Platform")
			if c.section(d.KPIs.Err, "Failed to load KPIs.") {
				k := d.KPIs.Value
				w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
				fmt.Fprintf(w, "HR users:\t%d\n", k.TotalHRUsers)
				fmt.Fprintf(w, "Candidates:\t%d\n", k.TotalCandidates)
				fmt.Fprintf(w, "Active jobs:\t%d\n", k.TotalActiveJobs)
				fmt.Fprintf(w, "Pending analyses:\t%d\n", k.PendingAnalyses)
				_ = w.Flush()
				fmt.Fprintln(c.out)
				printVolume(c.out, k.ApplicantVolume)
			}

			ui.Title(c.out, "HR activity")
			if c.section(d.Activity.Err, "Failed to load HR activity.") {
				w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tEMAIL\tACTIVE\tJOBS\tAPPLICANTS\tPENDING")
				for _, a := range d.Activity.Value {
					fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%d\t%d\t%d\n", a.HRID, a.FullName(), a.Email, a.IsActive,
						a.TotalActiveJobs, a.TotalApplicants, a.PendingAnalyses)
				}
				_ = w.Flush()
			}

			if d.Failed() {
				return fmt.Errorf("admin dashboard unavailable, retry later: %w", d.KPIs.Err)
			}
			return nil
		},
	}
}

func (c *cli) adminUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "admin-users",
		Short: "List HR users and candidates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.authenticate(ctx, scope.Admin); err != nil {
				return err
			}
			hrUsers, err := c.app.Portal.Admin.ListHR(ctx)
			if err != nil {
				return err
			}
			candidates, err := c.app.Portal.Admin.ListCandidates(ctx)
			if err != nil {
				return err
			}

			ui.Title(c.out, fmt.Sprintf("HR Management (%d)", len(hrUsers)))
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tACTIVE")
			for _, h := range hrUsers {
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", h.HRID, h.FullName(), h.Email, h.IsActive)
			}
			_ = w.Flush()
			fmt.Fprintln(c.out)

			ui.Title(c.out, fmt.Sprintf("Candidate Management (%d)", len(candidates)))
			w = tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tACTIVE\tAPPLICATIONS")
			for _, cand := range candidates {
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%d\n", cand.CandID, cand.FullName(), cand.Email, cand.IsActive, cand.ApplicationsCount)
			}
			return w.Flush()
		},
	}
}

func (c *cli) systemLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "system-logs",
		Short: "Show the admin audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.authenticate(ctx, scope.Admin); err != nil {
				return err
			}
			logs, err := c.app.Portal.Admin.SystemLogs(ctx)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tACTION\tTABLE\tSTATUS\tADMIN\tDESCRIPTION")
			for _, l := range logs {
				admin := "-"
				if l.Admin != nil {
					admin = l.Admin.Email
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", l.Timestamped.Local().Format(time.DateTime), l.ActionType,
					dash(utils.Value(l.AffectedTable)), dash(utils.Value(l.Status)), admin, dash(utils.Value(l.ActionDescription)))
			}
			return w.Flush()
		},
	}
}

// section prints the failure of one dashboard section and reports whether
// the section loaded.
func (c *cli) section(err error, fallback string) bool {
	if err == nil {
		return true
	}
	ui.Failure(c.out, "%s", portal.UserMessage(err, fallback))
	fmt.Fprintln(c.out)
	return false
}

func printVolume(w io.Writer, volume []portal.ApplicantVolume) {
	for _, v := range volume {
		bar := strings.Repeat("#", min(v.Count, 50))
		fmt.Fprintf(w, "%s %3d %s\n", v.Date.Format(time.DateOnly), v.Count, bar)
	}
	fmt.Fprintln(w)
}

func openUpload(path string) (*portal.Upload, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &portal.Upload{Filename: filepath.Base(path), Content: f}, func() { _ = f.Close() }, nil
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateOnly)
}

func score(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
