package session

import (
	"fmt"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/rs/zerolog/log"
)

// Logout clears only s's credentials and navigates to its logout target.
func Logout(store CredentialStore, nav Navigator, s scope.Scope) error {
	d := s.Describe()
	err := store.ClearToken(s)
	if err != nil {
		log.Err(err).Str("scope", s.String()).Msg("[Logout] failed to clear token")
		err = fmt.Errorf("[Logout] %s: %w", s, err)
	}
	nav.Navigate(d.LogoutTarget, true)
	return err
}

// LogoutAll wipes every scope and returns to the home page.
func LogoutAll(store CredentialStore, nav Navigator) error {
	err := store.ClearAll()
	if err != nil {
		log.Err(err).Msg("[LogoutAll] failed to clear credential store")
		err = fmt.Errorf("[LogoutAll] %w", err)
	}
	nav.Navigate(scope.RouteHome, true)
	return err
}
