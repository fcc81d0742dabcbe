package apiclient

import (
	"fmt"
	"net/http"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
)

// Set is the public client plus one client per scope, all against the same
// backend origin.
type Set struct {
	Public    *Client
	Candidate *Client
	Recruiter *Client
	Admin     *Client
}

func NewSet(baseURL string, tokens TokenSource, base http.RoundTripper) (*Set, error) {
	public, err := New(Config{BaseURL: baseURL, Base: base})
	if err != nil {
		return nil, err
	}
	set := &Set{Public: public}
	for _, s := range scope.All {
		c, err := New(Config{BaseURL: baseURL, Scope: s, Tokens: tokens, Base: base})
		if err != nil {
			return nil, fmt.Errorf("[apiclient NewSet] %s: %w", s, err)
		}
		switch s {
		case scope.Candidate:
			set.Candidate = c
		case scope.Recruiter:
			set.Recruiter = c
		case scope.Admin:
			set.Admin = c
		}
	}
	return set, nil
}

// For returns the client bound to s.
func (s *Set) For(sc scope.Scope) *Client {
	switch sc {
	case scope.Candidate:
		return s.Candidate
	case scope.Recruiter:
		return s.Recruiter
	case scope.Admin:
		return s.Admin
	}
	panic(fmt.Sprintf("apiclient: no client for scope %q", string(sc)))
}
