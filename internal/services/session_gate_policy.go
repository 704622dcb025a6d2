package services

import "strings"

const (
	LoginPath      = "/auth/login"
	SignupPath     = "/auth/signup"
	ForgotPath     = "/auth/forgot-password"
	DashboardPath  = "/dashboard"
	OnboardingPath = "/onboarding"
)

type GateAction int

const (
	GateAllow GateAction = iota
	GateRedirectLogin
	GateRedirectDashboard
	GateRedirectOnboarding
)

type GateDecision struct {
	Action   GateAction
	Location string
}

func (decision GateDecision) Allowed() bool {
	return decision.Action == GateAllow
}

var publicAuthPaths = []string{LoginPath, SignupPath, ForgotPath}

func IsPublicAuthPath(path string) bool {
	cleanPath := strings.TrimSpace(path)
	for _, prefix := range publicAuthPaths {
		if strings.HasPrefix(cleanPath, prefix) {
			return true
		}
	}
	return false
}

func IsOnboardingPath(path string) bool {
	cleanPath := strings.TrimSpace(path)
	return cleanPath == OnboardingPath || strings.HasPrefix(cleanPath, OnboardingPath+"/")
}

// DecideSessionGate evaluates the page gate for one request:
//
//	no session,  private route -> login
//	no session,  public route  -> allow
//	session,     public route  -> dashboard
//	session,     private route -> allow, or onboarding until it is completed
func DecideSessionGate(session *Session, path string) GateDecision {
	public := IsPublicAuthPath(path)
	switch {
	case session == nil && !public:
		return GateDecision{Action: GateRedirectLogin, Location: LoginPath}
	case session == nil:
		return GateDecision{Action: GateAllow}
	case public:
		return GateDecision{Action: GateRedirectDashboard, Location: DashboardPath}
	case session.OnboardingRequired() && !IsOnboardingPath(path):
		return GateDecision{Action: GateRedirectOnboarding, Location: OnboardingPath}
	default:
		return GateDecision{Action: GateAllow}
	}
}
