package portal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/apiclient"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	apperrors "github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/errors"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/session"
)

// Candidate holds the endpoints authorised by the candidate token.
type Candidate struct {
	client *apiclient.Client
}

func (c *Candidate) Me(ctx context.Context) (*identity.Candidate, error) {
	var me identity.Candidate
	if err := c.client.Get(ctx, "/candidates/me", &me); err != nil {
		return nil, fmt.Errorf("[Candidate.Me] %w", err)
	}
	return &me, nil
}

func (c *Candidate) UpdateProfile(ctx context.Context, update CandidateUpdate) (*identity.Candidate, error) {
	var updated identity.Candidate
	if err := c.client.Put(ctx, "/candidates/profile", update, &updated); err != nil {
		return nil, fmt.Errorf("[Candidate.UpdateProfile] %w", err)
	}
	return &updated, nil
}

// UploadResume replaces the master resume.
func (c *Candidate) UploadResume(ctx context.Context, file *Upload) (*identity.Candidate, error) {
	return c.upload(ctx, "/candidates/upload-resume", file)
}

func (c *Candidate) UploadLinkedinPDF(ctx context.Context, file *Upload) (*identity.Candidate, error) {
	return c.upload(ctx, "/candidates/upload-linkedin-pdf", file)
}

func (c *Candidate) upload(ctx context.Context, path string, file *Upload) (*identity.Candidate, error) {
	if err := requireUpload("file", file); err != nil {
		return nil, err
	}
	form := apiclient.NewForm().File("file", file.Filename, file.Content)

	var updated identity.Candidate
	if err := c.client.PostMultipart(ctx, path, form, &updated); err != nil {
		return nil, fmt.Errorf("[Candidate.upload] %s: %w", path, err)
	}
	return &updated, nil
}

func (c *Candidate) ChangePassword(ctx context.Context, change PasswordChange) error {
	if err := ValidatePasswordChange(change); err != nil {
		return err
	}
	if err := c.client.Put(ctx, "/candidates/me/change-password", change, nil); err != nil {
		return fmt.Errorf("[Candidate.ChangePassword] %w", err)
	}
	return nil
}

// DeleteAccount deletes the signed-in candidate, then signs the scope out.
func (c *Candidate) DeleteAccount(ctx context.Context, store session.CredentialStore, nav session.Navigator) error {
	if err := c.client.Delete(ctx, "/candidates/me", nil); err != nil {
		return fmt.Errorf("[Candidate.DeleteAccount] %w", err)
	}
	return session.Logout(store, nav, scope.Candidate)
}

func (c *Candidate) Applications(ctx context.Context) ([]CandidateApplication, error) {
	var apps []CandidateApplication
	if err := c.client.Get(ctx, "/applications/candidate", &apps); err != nil {
		return nil, fmt.Errorf("[Candidate.Applications] %w", err)
	}
	return apps, nil
}

// Application is a job application form. Without a CV the backend uses the
// candidate's master resume.
type Application struct {
	CandID           int
	JobID            int
	CV               *Upload
	GithubOverride   string
	LinkedinOverride string
}

func (c *Candidate) Apply(ctx context.Context, app Application) (*ApplyResult, error) {
	if app.CandID <= 0 {
		return nil, apperrors.Invalid("candid", "Invalid user ID. Please log in again.")
	}
	if app.JobID <= 0 {
		return nil, apperrors.Invalid("job_id", "Please choose a job to apply for.")
	}

	form := apiclient.NewForm().
		Field("candid", strconv.Itoa(app.CandID)).
		Field("job_id", strconv.Itoa(app.JobID))
	if app.GithubOverride != "" {
		form.Field("github_link_override", app.GithubOverride)
	}
	if app.LinkedinOverride != "" {
		form.Field("linkedin_link_override", app.LinkedinOverride)
	}
	if app.CV.present() {
		form.File("cv_file", app.CV.Filename, app.CV.Content)
	}

	var result ApplyResult
	if err := c.client.PostMultipart(ctx, "/applications/apply", form, &result); err != nil {
		return nil, fmt.Errorf("[Candidate.Apply] %w", err)
	}
	return &result, nil
}

func (c *Candidate) MyFeedback(ctx context.Context) ([]Feedback, error) {
	var feedback []Feedback
	if err := c.client.Get(ctx, "/candidates/my-feedback", &feedback); err != nil {
		return nil, fmt.Errorf("[Candidate.MyFeedback] %w", err)
	}
	return feedback, nil
}
