package portal

import (
	"context"
	"fmt"
	"strings"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/apiclient"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/session"
)

// Recruiter holds the endpoints authorised by the HR token.
type Recruiter struct {
	client *apiclient.Client
}

func (r *Recruiter) Me(ctx context.Context) (*identity.Recruiter, error) {
	var me identity.Recruiter
	if err := r.client.Get(ctx, "/hr/me", &me); err != nil {
		return nil, fmt.Errorf("[Recruiter.Me] %w", err)
	}
	return &me, nil
}

func (r *Recruiter) Jobs(ctx context.Context, hrID int) ([]JobPosting, error) {
	var jobs []JobPosting
	if err := r.client.Get(ctx, pathf("/hr/%s/jobs", hrID), &jobs); err != nil {
		return nil, fmt.Errorf("[Recruiter.Jobs] %w", err)
	}
	return jobs, nil
}

// CreateJob posts a job with its text fields trimmed.
func (r *Recruiter) CreateJob(ctx context.Context, job JobCreate) (*JobPosting, error) {
	job.Title = strings.TrimSpace(job.Title)
	job.CompanyName = strings.TrimSpace(job.CompanyName)
	job.Description = strings.TrimSpace(job.Description)
	job.Requirements = strings.TrimSpace(job.Requirements)
	job.Location = strings.TrimSpace(job.Location)
	job.SalaryRange = strings.TrimSpace(job.SalaryRange)
	if err := ValidateJob(job); err != nil {
		return nil, err
	}

	var created JobPosting
	if err := r.client.Post(ctx, "/jobs/", job, &created); err != nil {
		return nil, fmt.Errorf("[Recruiter.CreateJob] %w", err)
	}
	return &created, nil
}

func (r *Recruiter) Rankings(ctx context.Context, jobID int) (*JobRankings, error) {
	var rankings JobRankings
	if err := r.client.Get(ctx, pathf("/hr-views/jobs/%s/rankings", jobID), &rankings); err != nil {
		return nil, fmt.Errorf("[Recruiter.Rankings] %w", err)
	}
	return &rankings, nil
}

func (r *Recruiter) DashboardKPIs(ctx context.Context) (*RecruiterKPIs, error) {
	var kpis RecruiterKPIs
	if err := r.client.Get(ctx, "/hr/dashboard/kpis", &kpis); err != nil {
		return nil, fmt.Errorf("[Recruiter.DashboardKPIs] %w", err)
	}
	return &kpis, nil
}

func (r *Recruiter) JobSummaries(ctx context.Context) ([]JobSummary, error) {
	var summaries []JobSummary
	if err := r.client.Get(ctx, "/hr/dashboard/job-summaries", &summaries); err != nil {
		return nil, fmt.Errorf("[Recruiter.JobSummaries] %w", err)
	}
	return summaries, nil
}

func (r *Recruiter) ApplicantVolume(ctx context.Context) ([]ApplicantVolume, error) {
	var volume []ApplicantVolume
	if err := r.client.Get(ctx, "/hr/dashboard/applicant-volume", &volume); err != nil {
		return nil, fmt.Errorf("[Recruiter.ApplicantVolume] %w", err)
	}
	return volume, nil
}

// RetryAnalysis re-queues the analysis of an application with its stored CV.
func (r *Recruiter) RetryAnalysis(ctx context.Context, applicationID int) (*Message, error) {
	var msg Message
	if err := r.client.Post(ctx, pathf("/analysis/retry/%s", applicationID), nil, &msg); err != nil {
		return nil, fmt.Errorf("[Recruiter.RetryAnalysis] %w", err)
	}
	return &msg, nil
}

// RerunAnalysis re-runs the analysis of an application against a new CV.
func (r *Recruiter) RerunAnalysis(ctx context.Context, applicationID int, cv *Upload) (*Message, error) {
	if err := requireUpload("file", cv); err != nil {
		return nil, err
	}
	form := apiclient.NewForm().File("file", cv.Filename, cv.Content)

	var msg Message
	if err := r.client.PostMultipart(ctx, pathf("/analysis/rerun/%s", applicationID), form, &msg); err != nil {
		return nil, fmt.Errorf("[Recruiter.RerunAnalysis] %w", err)
	}
	return &msg, nil
}

func (r *Recruiter) ChangePassword(ctx context.Context, hrID int, change PasswordChange) error {
	if err := ValidatePasswordChange(change); err != nil {
		return err
	}
	if err := r.client.Put(ctx, pathf("/hr/%s/change-password", hrID), change, nil); err != nil {
		return fmt.Errorf("[Recruiter.ChangePassword] %w", err)
	}
	return nil
}

// DeleteAccount deletes the recruiter's own account, then signs the scope out.
func (r *Recruiter) DeleteAccount(ctx context.Context, hrID int, store session.CredentialStore, nav session.Navigator) error {
	if err := r.client.Delete(ctx, pathf("/hr/%s", hrID), nil); err != nil {
		return fmt.Errorf("[Recruiter.DeleteAccount] %w", err)
	}
	return session.Logout(store, nav, scope.Recruiter)
}

func (r *Recruiter) Applicants(ctx context.Context) ([]Applicant, error) {
	var applicants []Applicant
	if err := r.client.Get(ctx, "/hr/my-applicants/list", &applicants); err != nil {
		return nil, fmt.Errorf("[Recruiter.Applicants] %w", err)
	}
	return applicants, nil
}

// Reports lists the analysis reports available for a candidate.
func (r *Recruiter) Reports(ctx context.Context, candID int) ([]Report, error) {
	var reports []Report
	if err := r.client.Get(ctx, pathf("/hr/my-applicants/reports/%s", candID), &reports); err != nil {
		return nil, fmt.Errorf("[Recruiter.Reports] %w", err)
	}
	return reports, nil
}

func (r *Recruiter) SendFeedback(ctx context.Context, feedback FeedbackCreate) (*Feedback, error) {
	if err := ValidateFeedback(feedback); err != nil {
		return nil, err
	}
	var sent Feedback
	if err := r.client.Post(ctx, "/hr/feedback", feedback, &sent); err != nil {
		return nil, fmt.Errorf("[Recruiter.SendFeedback] %w", err)
	}
	return &sent, nil
}
