package portal

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	apperrors "github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/errors"
)

const (
	MinSignupPasswordLength = 12
	MinResetPasswordLength  = 6

	specialCharacters = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

// ValidatePasswordStrength checks the signup password policy and names every
// missing requirement at once.
func ValidatePasswordStrength(password string) error {
	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasNumber = true
		case strings.ContainsRune(specialCharacters, char):
			hasSpecial = true
		}
	}

	var missing []string
	if len([]rune(password)) < MinSignupPasswordLength {
		missing = append(missing, fmt.Sprintf("at least %d characters", MinSignupPasswordLength))
	}
	if !hasLower {
		missing = append(missing, "a lowercase letter")
	}
	if !hasUpper {
		missing = append(missing, "an uppercase letter")
	}
	if !hasNumber {
		missing = append(missing, "a number")
	}
	if !hasSpecial {
		missing = append(missing, "a special character (e.g., @, #, $)")
	}

	if len(missing) > 0 {
		return apperrors.Invalid("password", "Password must contain: %s.", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateSignup checks a signup form in the order the form reports problems.
func ValidateSignup(s CandidateSignup, confirm string) error {
	if s.PassWord != confirm {
		return apperrors.Invalid("confirm_password", "Passwords do not match!")
	}
	if blank(s.FirstName) || blank(s.LastName) || blank(s.Email) || s.PassWord == "" {
		return apperrors.Invalid("form", "Please fill in all fields.")
	}
	return ValidatePasswordStrength(s.PassWord)
}

func ValidatePasswordChange(c PasswordChange) error {
	if c.CurrentPassword == "" || c.NewPassword == "" {
		return apperrors.Invalid("password", "Please fill in all fields.")
	}
	return nil
}

// ValidatePasswordReset checks an admin-initiated reset.
func ValidatePasswordReset(password, confirm string) error {
	if password == "" || confirm == "" {
		return apperrors.Invalid("password", "Please fill in both password fields.")
	}
	if len([]rune(password)) < MinResetPasswordLength {
		return apperrors.Invalid("password", "Password must be at least %d characters.", MinResetPasswordLength)
	}
	if password != confirm {
		return apperrors.Invalid("confirm_password", "Passwords do not match.")
	}
	return nil
}

func ValidateJob(j JobCreate) error {
	if j.HRID <= 0 {
		return apperrors.Invalid("hr_id", "You must be logged in to post a job.")
	}
	switch {
	case blank(j.Title):
		return apperrors.Invalid("title", "Job title is required.")
	case blank(j.CompanyName):
		return apperrors.Invalid("company_name", "Company name is required.")
	case blank(j.Description):
		return apperrors.Invalid("description", "Job description is required.")
	}
	return nil
}

func ValidateFeedback(f FeedbackCreate) error {
	switch {
	case f.CandID <= 0:
		return apperrors.Invalid("candid", "Please select an applicant.")
	case blank(f.Content):
		return apperrors.Invalid("content", "Message cannot be empty.")
	case blank(f.MessageType):
		return apperrors.Invalid("message_type", "Please choose a message type.")
	}
	return nil
}

func ValidateHRCreate(h HRCreate) error {
	if blank(h.FirstName) || blank(h.LastName) || blank(h.Email) || h.PassWord == "" {
		return apperrors.Invalid("form", "Please fill in all fields.")
	}
	return nil
}

// Upload is a file picked for a multipart request
type Upload struct {
	Filename string
	Content  io.Reader
}

func (u *Upload) present() bool {
	return u != nil && u.Content != nil && u.Filename != ""
}

func requireUpload(field string, u *Upload) error {
	if !u.present() {
		return apperrors.Invalid(field, "Please select a file to upload.")
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
