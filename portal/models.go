package portal

import (
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/jsontime"
)

// Message is the generic {"message": ...} acknowledgement
type Message struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Text returns whichever acknowledgement field the backend filled in.
func (m Message) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Detail
}

// CandidateSignup is the body of POST /candidates/
type CandidateSignup struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	PassWord  string `json:"pass_word"`
}

// CandidateUpdate carries only the profile fields being changed
type CandidateUpdate struct {
	FirstName           *string `json:"firstname,omitempty"`
	LastName            *string `json:"lastname,omitempty"`
	Email               *string `json:"email,omitempty"`
	ContactInfo         *string `json:"contactinfo,omitempty"`
	ResumeLink          *string `json:"resumelink,omitempty"`
	GithubLink          *string `json:"github_link,omitempty"`
	SOPLink             *string `json:"sop_link,omitempty"`
	LeetcodeLink        *string `json:"leetcode_link,omitempty"`
	CurrentTitle        *string `json:"current_title,omitempty"`
	YearsOfExperience   *string `json:"years_of_experience,omitempty"`
	ProfessionalSummary *string `json:"professional_summary,omitempty"`
	Skills              *string `json:"skills,omitempty"`
}

// PasswordChange is the self-service password change body
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type passwordReset struct {
	NewPassword string `json:"new_password"`
}

// JobPosting as listed publicly and per recruiter
type JobPosting struct {
	JobID           int           `json:"job_id"`
	HRID            int           `json:"hr_id"`
	Title           string        `json:"title"`
	CompanyName     *string       `json:"company_name,omitempty"`
	Description     string        `json:"description"`
	Requirements    *string       `json:"requirements,omitempty"`
	Location        *string       `json:"location,omitempty"`
	SalaryRange     *string       `json:"salary_range,omitempty"`
	EmploymentType  *string       `json:"employment_type,omitempty"`
	DatePosted      jsontime.Time `json:"date_posted"`
	Deadline        jsontime.Time `json:"deadline"`
	Status          string        `json:"status"`
	AnalyzeGithub   bool          `json:"analyze_github"`
	AnalyzeLeetcode bool          `json:"analyze_leetcode"`
	AnalyzeLinkedin bool          `json:"analyze_linkedin"`
}

// JobCreate is the body of POST /jobs/
type JobCreate struct {
	HRID            int           `json:"hr_id"`
	Title           string        `json:"title"`
	CompanyName     string        `json:"company_name"`
	Description     string        `json:"description"`
	Requirements    string        `json:"requirements,omitempty"`
	Location        string        `json:"location,omitempty"`
	SalaryRange     string        `json:"salary_range,omitempty"`
	EmploymentType  string        `json:"employment_type,omitempty"`
	Deadline        jsontime.Time `json:"deadline"`
	AnalyzeGithub   bool          `json:"analyze_github"`
	AnalyzeLeetcode bool          `json:"analyze_leetcode"`
	AnalyzeLinkedin bool          `json:"analyze_linkedin"`
}

// CandidateApplication is one of the signed-in candidate's applications
type CandidateApplication struct {
	ApplicationID int           `json:"application_id"`
	Status        string        `json:"status"`
	AppliedOn     jsontime.Time `json:"applied_on"`
	Job           JobPosting    `json:"job"`
}

// ApplyResult acknowledges a submitted application
type ApplyResult struct {
	Message       string `json:"message"`
	ApplicationID int    `json:"application_id"`
}

// JobSimple is the job reference embedded in analysis reports
type JobSimple struct {
	JobID       int     `json:"job_id"`
	Title       string  `json:"title"`
	CompanyName *string `json:"company_name,omitempty"`
}

// Report is an analysis report card for a candidate
type Report struct {
	ReportID           int        `json:"reportid"`
	CandID             int        `json:"candid"`
	TrustScore         *int       `json:"trustscore"`
	CareerScore        *int       `json:"careerscore"`
	GithubScore        *int       `json:"githubscore"`
	LinkedinScore      *int       `json:"linkedinscore"`
	LeetcodeScore      *int       `json:"leetcodescore"`
	JDMatchScore       *int       `json:"jd_match_score"`
	Remarks            *string    `json:"remarks"`
	ReportCardLink     *string    `json:"reportcardlink"`
	OverallScore       *int       `json:"overall_score"`
	TotalPossibleScore *int       `json:"total_possible_score"`
	Feedback           *string    `json:"feedback"`
	Job                *JobSimple `json:"job"`
}

// Feedback is a message a recruiter sent to a candidate
type Feedback struct {
	FeedbackID  int                 `json:"feedbackid"`
	CandID      int                 `json:"candid"`
	HRID        *int                `json:"hr_id"`
	ReportID    *int                `json:"reportid"`
	Content     *string             `json:"content"`
	MessageType string              `json:"message_type"`
	SentAt      jsontime.Time       `json:"sent_at"`
	Sender      *identity.Recruiter `json:"sender"`
}

// FeedbackCreate is the body of POST /hr/feedback
type FeedbackCreate struct {
	CandID      int    `json:"candid"`
	ReportID    *int   `json:"reportid,omitempty"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}

// Applicant is a candidate who applied to one of the recruiter's jobs
type Applicant struct {
	CandID        int    `json:"candid"`
	FirstName     string `json:"firstname"`
	LastName      string `json:"lastname"`
	Email         string `json:"email"`
	ApplicationID int    `json:"application_id"`
	JobID         int    `json:"job_id"`
	JobTitle      string `json:"job_title"`
}

// RankedApplicant is one row of a job's ranking table
type RankedApplicant struct {
	Rank           int           `json:"rank"`
	ApplicationID  int           `json:"application_id"`
	CandidateName  string        `json:"candidate_name"`
	CandidateEmail string        `json:"candidate_email"`
	OverallScore   *int          `json:"overall_score"`
	CareerScore    *int          `json:"careerscore"`
	GithubScore    *int          `json:"githubscore"`
	TrustScore     *int          `json:"trustscore"`
	JDMatchScore   *int          `json:"jd_match_score"`
	LeetcodeScore  *int          `json:"leetcodescore"`
	LinkedinScore  *int          `json:"linkedinscore"`
	AppliedOn      jsontime.Time `json:"applied_on"`
	AnalysisStatus string        `json:"analysis_status"`
}

type JobRankings struct {
	JobID           int               `json:"job_id"`
	TotalApplicants int               `json:"total_applicants"`
	Rankings        []RankedApplicant `json:"rankings"`
}

// RecruiterKPIs are the recruiter dashboard "at a glance" cards
type RecruiterKPIs struct {
	ActiveJobs          int `json:"active_jobs"`
	TotalApplicants     int `json:"total_applicants"`
	NewApplicantsWeekly int `json:"new_applicants_weekly"`
	PendingAnalyses     int `json:"pending_analyses"`
}

// JobSummary is one row of the recruiter job overview
type JobSummary struct {
	JobID           int     `json:"job_id"`
	Title           string  `json:"title"`
	CompanyName     *string `json:"company_name,omitempty"`
	Location        *string `json:"location,omitempty"`
	Status          string  `json:"status"`
	TotalApplicants int     `json:"total_applicants"`
	NewApplicants   int     `json:"new_applicants"`
	PendingAnalyses int     `json:"pending_analyses"`
}

// ApplicantVolume is one day of the applicant volume chart
type ApplicantVolume struct {
	Date  jsontime.Time `json:"date"`
	Count int           `json:"count"`
}

// AdminKPIs are the admin dashboard totals plus 14 days of volume
type AdminKPIs struct {
	TotalHRUsers    int               `json:"total_hr_users"`
	TotalCandidates int               `json:"total_candidates"`
	TotalActiveJobs int               `json:"total_active_jobs"`
	PendingAnalyses int               `json:"pending_analyses"`
	ApplicantVolume []ApplicantVolume `json:"applicant_volume"`
}

// HRActivity is an HR user with aggregated job metrics
type HRActivity struct {
	identity.Recruiter
	TotalActiveJobs int `json:"total_active_jobs"`
	TotalApplicants int `json:"total_applicants"`
	PendingAnalyses int `json:"pending_analyses"`
}

// HRCreate is the body an admin posts to create a recruiter
type HRCreate struct {
	FirstName   string  `json:"firstname"`
	LastName    string  `json:"lastname"`
	Email       string  `json:"email"`
	PassWord    string  `json:"pass_word"`
	Designation *string `json:"designation,omitempty"`
	Permissions *string `json:"permissions,omitempty"`
}

type SystemLogAdmin struct {
	AdminID   int    `json:"adminid"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

// SystemLog is one audit entry of admin actions
type SystemLog struct {
	LogID             int             `json:"logid"`
	ActionType        string          `json:"actiontype"`
	ActionDescription *string         `json:"actiondescription"`
	AffectedTable     *string         `json:"affectedtable"`
	Timestamped       jsontime.Time   `json:"timestamped"`
	IPAddress         *string         `json:"ip_address"`
	Status            *string         `json:"status"`
	Admin             *SystemLogAdmin `json:"admin"`
}
