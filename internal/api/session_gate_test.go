package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageGateForAnonymousVisitor(t *testing.T) {
	app, _, _ := newTestApp(t)

	tests := []struct {
		path         string
		wantStatus   int
		wantLocation string
	}{
		{path: "/", wantStatus: http.StatusSeeOther, wantLocation: "/auth/login"},
		{path: "/dashboard", wantStatus: http.StatusSeeOther, wantLocation: "/auth/login"},
		{path: "/onboarding", wantStatus: http.StatusSeeOther, wantLocation: "/auth/login"},
		{path: "/diary", wantStatus: http.StatusSeeOther, wantLocation: "/auth/login"},
		{path: "/auth/login", wantStatus: http.StatusOK},
		{path: "/auth/signup", wantStatus: http.StatusOK},
		{path: "/auth/forgot-password", wantStatus: http.StatusOK},
		{path: "/healthz", wantStatus: http.StatusOK},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			response := doRequest(t, app, http.MethodGet, test.path, "", nil)
			assert.Equal(t, test.wantStatus, response.StatusCode)
			assert.Equal(t, test.wantLocation, response.Header.Get("Location"))
		})
	}
}

func TestPageGateForPendingOnboarding(t *testing.T) {
	app, _, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "pending@example.com")

	tests := []struct {
		path         string
		wantStatus   int
		wantLocation string
	}{
		{path: "/dashboard", wantStatus: http.StatusSeeOther, wantLocation: "/onboarding"},
		{path: "/trails", wantStatus: http.StatusSeeOther, wantLocation: "/onboarding"},
		{path: "/auth/login", wantStatus: http.StatusSeeOther, wantLocation: "/dashboard"},
		{path: "/onboarding", wantStatus: http.StatusOK},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			response := doRequest(t, app, http.MethodGet, test.path, authCookie, nil)
			assert.Equal(t, test.wantStatus, response.StatusCode)
			assert.Equal(t, test.wantLocation, response.Header.Get("Location"))
		})
	}
}

func TestAPIGateStatuses(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := doRequest(t, app, http.MethodGet, "/api/stats/overview", "", nil)
	require.Equal(t, http.StatusUnauthorized, response.StatusCode)
	apiErr := readAPIError(t, response.Body)
	assert.Equal(t, "unauthorized", apiErr.Error)
	assert.Equal(t, "Please sign in to continue.", apiErr.Message)

	authCookie := registerAndExtractAuthCookie(t, app, "gate@example.com")

	response = doRequest(t, app, http.MethodGet, "/api/stats/overview", authCookie, nil)
	require.Equal(t, http.StatusForbidden, response.StatusCode)
	assert.Equal(t, "onboarding required", readAPIError(t, response.Body).Error)

	response = doRequest(t, app, http.MethodPost, "/api/auth/logout", authCookie, nil)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	cleared := responseCookie(response.Cookies(), authCookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestInvalidAuthCookieIsCleared(t *testing.T) {
	app, _, _ := newTestApp(t)

	response := doRequest(t, app, http.MethodGet, "/dashboard", authCookieName+"=not-a-token", nil)
	assert.Equal(t, http.StatusSeeOther, response.StatusCode)
	assert.Equal(t, "/auth/login", response.Header.Get("Location"))
	cleared := responseCookie(response.Cookies(), authCookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestOnboardingUnlocksDashboard(t *testing.T) {
	app, _, _ := newTestApp(t)
	authCookie := onboardedAuthCookie(t, app, "onboarded@example.com")

	response := doRequest(t, app, http.MethodGet, "/dashboard", authCookie, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	page := decodeJSON[struct {
		Page string        `json:"page"`
		Data dashboardView `json:"data"`
	}](t, response.Body)
	assert.Equal(t, "dashboard", page.Page)
	assert.Equal(t, 3, page.Data.Stats.TotalHabits)
	assert.Zero(t, page.Data.Stats.HabitsCompleted)
	assert.Zero(t, page.Data.Stats.WeeklyProgress)
	assert.Equal(t, 1, page.Data.Stats.Level)
	assert.Equal(t, 1500, page.Data.Stats.NextLevelXP)
	assert.Len(t, page.Data.Tasks, 3)

	response = doRequest(t, app, http.MethodPost, "/api/onboarding/complete", authCookie, map[string]any{
		"goals":       []string{"Again"},
		"stressLevel": 5,
	})
	assert.Equal(t, http.StatusConflict, response.StatusCode)
	assert.Equal(t, "onboarding already completed", readAPIError(t, response.Body).Error)
}

func TestOnboardingValidation(t *testing.T) {
	app, _, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "invalid-onboarding@example.com")

	response := doRequest(t, app, http.MethodPost, "/api/onboarding/complete", authCookie, map[string]any{
		"goals":       []string{},
		"stressLevel": 5,
	})
	require.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "onboarding goals required", readAPIError(t, response.Body).Error)
}
