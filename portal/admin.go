package portal

import (
	"context"
	"fmt"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/apiclient"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
)

// Admin holds the admin console endpoints.
type Admin struct {
	client *apiclient.Client
}

func (a *Admin) Me(ctx context.Context) (*identity.Admin, error) {
	var me identity.Admin
	if err := a.client.Get(ctx, "/api/admin/me", &me); err != nil {
		return nil, fmt.Errorf("[Admin.Me] %w", err)
	}
	return &me, nil
}

func (a *Admin) DashboardKPIs(ctx context.Context) (*AdminKPIs, error) {
	var kpis AdminKPIs
	if err := a.client.Get(ctx, "/admin-dashboard/kpis", &kpis); err != nil {
		return nil, fmt.Errorf("[Admin.DashboardKPIs] %w", err)
	}
	return &kpis, nil
}

func (a *Admin) HRActivity(ctx context.Context) ([]HRActivity, error) {
	var activity []HRActivity
	if err := a.client.Get(ctx, "/admin-dashboard/hr-activity", &activity); err != nil {
		return nil, fmt.Errorf("[Admin.HRActivity] %w", err)
	}
	return activity, nil
}

// CreateHR registers a recruiter account.
func (a *Admin) CreateHR(ctx context.Context, hr HRCreate) (*identity.Recruiter, error) {
	if err := ValidateHRCreate(hr); err != nil {
		return nil, err
	}
	var created identity.Recruiter
	if err := a.client.Post(ctx, "/hr/", hr, &created); err != nil {
		return nil, fmt.Errorf("[Admin.CreateHR] %w", err)
	}
	return &created, nil
}

func (a *Admin) ListHR(ctx context.Context) ([]identity.Recruiter, error) {
	var users []identity.Recruiter
	if err := a.client.Get(ctx, "/api/admin/hr", &users); err != nil {
		return nil, fmt.Errorf("[Admin.ListHR] %w", err)
	}
	return users, nil
}

func (a *Admin) SuspendHR(ctx context.Context, hrID int) (*identity.Recruiter, error) {
	return a.hrAction(ctx, pathf("/api/admin/hr/%s/suspend", hrID))
}

func (a *Admin) ActivateHR(ctx context.Context, hrID int) (*identity.Recruiter, error) {
	return a.hrAction(ctx, pathf("/api/admin/hr/%s/activate", hrID))
}

func (a *Admin) hrAction(ctx context.Context, path string) (*identity.Recruiter, error) {
	var hr identity.Recruiter
	if err := a.client.Post(ctx, path, nil, &hr); err != nil {
		return nil, fmt.Errorf("[Admin] %s: %w", path, err)
	}
	return &hr, nil
}

func (a *Admin) DeleteHR(ctx context.Context, hrID int) error {
	if err := a.client.Delete(ctx, pathf("/api/admin/hr/%s", hrID), nil); err != nil {
		return fmt.Errorf("[Admin.DeleteHR] %w", err)
	}
	return nil
}

func (a *Admin) ResetHRPassword(ctx context.Context, hrID int, password, confirm string) (*Message, error) {
	return a.resetPassword(ctx, pathf("/api/admin/hr/%s/reset-password", hrID), password, confirm)
}

func (a *Admin) ListCandidates(ctx context.Context) ([]identity.Candidate, error) {
	var candidates []identity.Candidate
	if err := a.client.Get(ctx, "/api/admin/candidates", &candidates); err != nil {
		return nil, fmt.Errorf("[Admin.ListCandidates] %w", err)
	}
	return candidates, nil
}

func (a *Admin) SuspendCandidate(ctx context.Context, candID int) (*identity.Candidate, error) {
	return a.candidateAction(ctx, pathf("/api/admin/candidates/%s/suspend", candID))
}

func (a *Admin) ActivateCandidate(ctx context.Context, candID int) (*identity.Candidate, error) {
	return a.candidateAction(ctx, pathf("/api/admin/candidates/%s/activate", candID))
}

func (a *Admin) candidateAction(ctx context.Context, path string) (*identity.Candidate, error) {
	var c identity.Candidate
	if err := a.client.Post(ctx, path, nil, &c); err != nil {
		return nil, fmt.Errorf("[Admin] %s: %w", path, err)
	}
	return &c, nil
}

func (a *Admin) DeleteCandidate(ctx context.Context, candID int) error {
	if err := a.client.Delete(ctx, pathf("/api/admin/candidates/%s", candID), nil); err != nil {
		return fmt.Errorf("[Admin.DeleteCandidate] %w", err)
	}
	return nil
}

func (a *Admin) ResetCandidatePassword(ctx context.Context, candID int, password, confirm string) (*Message, error) {
	return a.resetPassword(ctx, pathf("/api/admin/candidates/%s/reset-password", candID), password, confirm)
}

func (a *Admin) resetPassword(ctx context.Context, path, password, confirm string) (*Message, error) {
	if err := ValidatePasswordReset(password, confirm); err != nil {
		return nil, err
	}
	var msg Message
	if err := a.client.Put(ctx, path, passwordReset{NewPassword: password}, &msg); err != nil {
		return nil, fmt.Errorf("[Admin] %s: %w", path, err)
	}
	return &msg, nil
}

// SystemLogs returns the admin audit trail, newest first as served.
func (a *Admin) SystemLogs(ctx context.Context) ([]SystemLog, error) {
	var logs []SystemLog
	if err := a.client.Get(ctx, "/api/admin/system-logs", &logs); err != nil {
		return nil, fmt.Errorf("[Admin.SystemLogs] %w", err)
	}
	return logs, nil
}
