package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/terraincognita07/aurora/internal/models"
)

func TestDecideSessionGate(t *testing.T) {
	onboarded := NewSession(models.Profile{ID: 1, OnboardingCompleted: true})
	pending := NewSession(models.Profile{ID: 2})

	tests := []struct {
		name    string
		session *Session
		path    string
		want    GateDecision
	}{
		{name: "anonymous private", path: "/dashboard", want: GateDecision{Action: GateRedirectLogin, Location: LoginPath}},
		{name: "anonymous onboarding", path: "/onboarding", want: GateDecision{Action: GateRedirectLogin, Location: LoginPath}},
		{name: "anonymous login", path: "/auth/login", want: GateDecision{Action: GateAllow}},
		{name: "anonymous signup", path: "/auth/signup", want: GateDecision{Action: GateAllow}},
		{name: "anonymous forgot subpath", path: "/auth/forgot-password/sent", want: GateDecision{Action: GateAllow}},
		{name: "signed in on login", session: &onboarded, path: "/auth/login", want: GateDecision{Action: GateRedirectDashboard, Location: DashboardPath}},
		{name: "pending on signup", session: &pending, path: "/auth/signup", want: GateDecision{Action: GateRedirectDashboard, Location: DashboardPath}},
		{name: "pending on dashboard", session: &pending, path: "/dashboard", want: GateDecision{Action: GateRedirectOnboarding, Location: OnboardingPath}},
		{name: "pending on onboarding", session: &pending, path: "/onboarding", want: GateDecision{Action: GateAllow}},
		{name: "pending on onboarding subpath", session: &pending, path: "/onboarding/step-2", want: GateDecision{Action: GateAllow}},
		{name: "pending on lookalike path", session: &pending, path: "/onboardingx", want: GateDecision{Action: GateRedirectOnboarding, Location: OnboardingPath}},
		{name: "onboarded on diary", session: &onboarded, path: "/diary", want: GateDecision{Action: GateAllow}},
		{name: "onboarded on onboarding", session: &onboarded, path: "/onboarding", want: GateDecision{Action: GateAllow}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := DecideSessionGate(testCase.session, testCase.path)
			assert.Equal(t, testCase.want, got)
			assert.Equal(t, testCase.want.Action == GateAllow, got.Allowed())
		})
	}
}
