package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/apiclient"
	apperrors "github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/errors"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/rs/zerolog/log"
)

// Credentials entered on a login page
type Credentials struct {
	Email    string
	Password string
}

// TokenResponse is the body returned by every login endpoint
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Candidate and HR logins take pass_word, the admin login takes password.
type loginRequest struct {
	Email    string `json:"email"`
	PassWord string `json:"pass_word,omitempty"`
	Password string `json:"password,omitempty"`
}

// Login exchanges creds for a token on s's login endpoint, stores it and
// returns the page to land on. public must be the unauthenticated client.
func Login(ctx context.Context, public *apiclient.Client, store CredentialStore, s scope.Scope, creds Credentials) (string, error) {
	if !s.Valid() {
		return "", apperrors.Invalid("scope", "unknown scope %q", string(s))
	}
	email := strings.TrimSpace(creds.Email)
	if email == "" {
		return "", apperrors.Invalid("email", "Email is required")
	}
	if creds.Password == "" {
		return "", apperrors.Invalid("password", "Password is required")
	}

	body := loginRequest{Email: email}
	if s == scope.Admin {
		body.Password = creds.Password
	} else {
		body.PassWord = creds.Password
	}

	d := s.Describe()
	var resp TokenResponse
	if err := public.Post(ctx, d.LoginEndpoint, body, &resp); err != nil {
		return "", fmt.Errorf("[Login] %s: %w", s, err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("[Login] %s: no access token received: %w", s, apperrors.ErrInternal)
	}

	if err := store.SetToken(s, resp.AccessToken); err != nil {
		return "", fmt.Errorf("[Login] %s: failed to store token: %w", s, err)
	}
	if err := store.SetDisplayName(s, ""); err != nil {
		log.Err(err).Str("scope", s.String()).Msg("[Login] failed to drop stale display name")
	}

	log.Info().Str("scope", s.String()).Str("email", email).Msg("[Login] signed in")
	return d.LandingPage, nil
}
