package portal

import (
	"context"
	"fmt"
	"strings"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/apiclient"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
)

// Public holds the endpoints that need no token.
type Public struct {
	client *apiclient.Client
}

// SignupCandidate validates the form and registers a new candidate.
func (p *Public) SignupCandidate(ctx context.Context, s CandidateSignup, confirm string) (*identity.Candidate, error) {
	if err := ValidateSignup(s, confirm); err != nil {
		return nil, err
	}
	s.Email = strings.TrimSpace(s.Email)

	var created identity.Candidate
	if err := p.client.Post(ctx, "/candidates/", s, &created); err != nil {
		return nil, fmt.Errorf("[SignupCandidate] %w", err)
	}
	return &created, nil
}

// ListJobs returns the public job board.
func (p *Public) ListJobs(ctx context.Context) ([]JobPosting, error) {
	var jobs []JobPosting
	if err := p.client.Get(ctx, "/jobs/", &jobs); err != nil {
		return nil, fmt.Errorf("[ListJobs] %w", err)
	}
	return jobs, nil
}
