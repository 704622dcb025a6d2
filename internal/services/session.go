package services

import (
	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/models"
)

// Session is the authenticated identity of one request. Handlers build it
// from the auth cookie and hand it to every service call.
type Session struct {
	Profile models.Profile
}

func NewSession(profile models.Profile) Session {
	return Session{Profile: profile}
}

func (session Session) UserID() uint {
	return session.Profile.ID
}

func (session Session) OnboardingRequired() bool {
	return !session.Profile.OnboardingCompleted
}

// WithAward returns the session as it stands after an XP award committed.
func (session Session) WithAward(award *db.XPAward) Session {
	if award == nil {
		return session
	}
	session.Profile.XP = award.XP
	session.Profile.Level = award.Level
	return session
}
