package portal

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Section is one independently loaded part of a dashboard.
type Section[T any] struct {
	Value T
	Err   error
}

func (s Section[T]) Loaded() bool {
	return s.Err == nil
}

type AdminDashboard struct {
	KPIs     Section[*AdminKPIs]
	Activity Section[[]HRActivity]
}

// Failed reports whether every section failed, which the console shows as a
// page-level error with a retry.
func (d AdminDashboard) Failed() bool {
	return !d.KPIs.Loaded() && !d.Activity.Loaded()
}

type RecruiterDashboard struct {
	KPIs   Section[*RecruiterKPIs]
	Jobs   Section[[]JobSummary]
	Volume Section[[]ApplicantVolume]
}

func (d RecruiterDashboard) Failed() bool {
	return !d.KPIs.Loaded() && !d.Jobs.Loaded() && !d.Volume.Loaded()
}

// LoadAdminDashboard fetches the KPI cards and HR activity concurrently. A
// failed section never blanks the other.
func LoadAdminDashboard(ctx context.Context, a *Admin) AdminDashboard {
	var (
		d AdminDashboard
		g errgroup.Group
	)
	g.Go(func() error {
		d.KPIs.Value, d.KPIs.Err = a.DashboardKPIs(ctx)
		logSection("kpis", d.KPIs.Err)
		return nil
	})
	g.Go(func() error {
		d.Activity.Value, d.Activity.Err = a.HRActivity(ctx)
		logSection("hr-activity", d.Activity.Err)
		return nil
	})
	_ = g.Wait()
	return d
}

// LoadRecruiterDashboard fetches KPIs, job summaries and applicant volume
// concurrently.
func LoadRecruiterDashboard(ctx context.Context, r *Recruiter) RecruiterDashboard {
	var (
		d RecruiterDashboard
		g errgroup.Group
	)
	g.Go(func() error {
		d.KPIs.Value, d.KPIs.Err = r.DashboardKPIs(ctx)
		logSection("kpis", d.KPIs.Err)
		return nil
	})
	g.Go(func() error {
		d.Jobs.Value, d.Jobs.Err = r.JobSummaries(ctx)
		logSection("job-summaries", d.Jobs.Err)
		return nil
	})
	g.Go(func() error {
		d.Volume.Value, d.Volume.Err = r.ApplicantVolume(ctx)
		logSection("applicant-volume", d.Volume.Err)
		return nil
	})
	_ = g.Wait()
	return d
}

func logSection(name string, err error) {
	if err != nil {
		log.Err(err).Str("section", name).Msg("[dashboard] section failed to load")
	}
}
