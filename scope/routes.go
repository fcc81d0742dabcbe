package scope

// Portal page routes
// All page paths used for navigation are defined here to keep redirects consistent
const (
	// Public pages
	RouteHome    = "/"
	RouteCareers = "/careers"
	RouteAbout   = "/about"
	RoutePricing = "/pricing"
	RouteContact = "/contact"

	// Candidate pages
	RouteCandidateLogin          = "/candidate/login"
	RouteCandidateSignup         = "/candidate/signup"
	RouteCandidateForgotPassword = "/candidate/forgot-password"
	RouteCandidateProfile        = "/candidate/profile"
	RouteCandidateJobBoard       = "/candidate/job-board"
	RouteCandidateApplications   = "/candidate/applications"
	RouteCandidateFeedback       = "/candidate/feedback"
	RouteCandidateSettings       = "/candidate/settings"

	// Recruiter pages
	RouteRecruiterLogin          = "/recruiter/login"
	RouteRecruiterForgotPassword = "/recruiter/forgot-password"
	RouteRecruiterDashboard      = "/recruiter/dashboard"
	RouteRecruiterApplicants     = "/recruiter/applicants"
	RouteRecruiterFeedback       = "/recruiter/feedback"
	RouteRecruiterPostJob        = "/recruiter/post-job"
	RouteRecruiterSettings       = "/recruiter/settings"

	// Admin pages
	RouteAdminLogin          = "/admin/login"
	RouteAdminPortal         = "/system-admin-portal-2024"
	RouteAdminUserManagement = RouteAdminPortal + "/user-management"
	RouteAdminSystemLogs     = RouteAdminPortal + "/system-logs"
)
