package identity

import (
	"context"
	"strings"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/jsontime"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
)

// Identity is the server-confirmed principal behind a valid token. The set of
// variants is closed; switch on the concrete type to reach scope-specific
// fields.
type Identity interface {
	Scope() scope.Scope
	ID() int
	FullName() string
	EmailAddress() string

	sealed()
}

// Candidate is the candidate profile returned by /candidates/me
type Candidate struct {
	CandID              int           `json:"candid"`
	FirstName           string        `json:"firstname"`
	LastName            string        `json:"lastname"`
	Email               string        `json:"email"`
	ContactInfo         *string       `json:"contactinfo,omitempty"`
	ResumeLink          *string       `json:"resumelink,omitempty"`
	GithubLink          *string       `json:"github_link,omitempty"`
	SOPLink             *string       `json:"sop_link,omitempty"`
	LinkedinLink        *string       `json:"linkedin_link,omitempty"`
	LinkedinPDFLink     *string       `json:"linkedin_pdf_link,omitempty"`
	LeetcodeLink        *string       `json:"leetcode_link,omitempty"`
	CurrentTitle        *string       `json:"current_title,omitempty"`
	YearsOfExperience   *string       `json:"years_of_experience,omitempty"`
	ProfessionalSummary *string       `json:"professional_summary,omitempty"`
	Skills              *string       `json:"skills,omitempty"`
	DateRegistered      jsontime.Time `json:"dateregistered"`
	ApplicationsCount   int           `json:"applications_count"`
	IsActive            bool          `json:"is_active"`
}

// Recruiter is the HR profile returned by /hr/me
type Recruiter struct {
	HRID        int     `json:"hr_id"`
	FirstName   string  `json:"firstname"`
	LastName    string  `json:"lastname"`
	Email       string  `json:"email"`
	Designation *string `json:"designation,omitempty"`
	Permissions *string `json:"permissions,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// Admin is the admin profile returned by /api/admin/me
type Admin struct {
	AdminID      int     `json:"adminid"`
	FirstName    string  `json:"firstname"`
	LastName     string  `json:"lastname"`
	Email        string  `json:"email"`
	Organization *string `json:"organization,omitempty"`
	Permissions  *string `json:"permissions,omitempty"`
}

var (
	_ Identity = (*Candidate)(nil)
	_ Identity = (*Recruiter)(nil)
	_ Identity = (*Admin)(nil)
)

func (c *Candidate) Scope() scope.Scope   { return scope.Candidate }
func (c *Candidate) ID() int              { return c.CandID }
func (c *Candidate) FullName() string     { return joinName(c.FirstName, c.LastName) }
func (c *Candidate) EmailAddress() string { return c.Email }
func (*Candidate) sealed()                {}

func (r *Recruiter) Scope() scope.Scope   { return scope.Recruiter }
func (r *Recruiter) ID() int              { return r.HRID }
func (r *Recruiter) FullName() string     { return joinName(r.FirstName, r.LastName) }
func (r *Recruiter) EmailAddress() string { return r.Email }
func (*Recruiter) sealed()                {}

func (a *Admin) Scope() scope.Scope   { return scope.Admin }
func (a *Admin) ID() int              { return a.AdminID }
func (a *Admin) FullName() string     { return joinName(a.FirstName, a.LastName) }
func (a *Admin) EmailAddress() string { return a.Email }
func (*Admin) sealed()                {}

// New returns an empty variant for s, ready to be decoded into.
func New(s scope.Scope) Identity {
	switch s {
	case scope.Candidate:
		return &Candidate{}
	case scope.Recruiter:
		return &Recruiter{}
	case scope.Admin:
		return &Admin{}
	}
	return nil
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyIdentity stores the resolved identity
	ContextKeyIdentity ContextKey = "identity"
)

// WithIdentity returns a context carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ContextKeyIdentity).(Identity)
	return id, ok && id != nil
}
