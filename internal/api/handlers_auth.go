package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/models"
	"github.com/terraincognita07/aurora/internal/services"
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	FullName        string `json:"full_name" form:"full_name"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

type authResponse struct {
	OK       bool            `json:"ok"`
	Redirect string          `json:"redirect"`
	Notice   string          `json:"notice,omitempty"`
	Profile  *models.Profile `json:"profile,omitempty"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}
	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.ConfirmPassword != "" && strings.TrimSpace(input.ConfirmPassword) != password {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "password mismatch")
	}

	handler.ensureDependencies()
	profile, err := handler.authService.Register(email, password, input.FullName, handler.now())
	switch {
	case errors.Is(err, services.ErrWeakPassword):
		return handler.respondAuthError(c, fiber.StatusBadRequest, "weak password")
	case errors.Is(err, services.ErrAuthEmailTaken):
		return handler.respondAuthError(c, fiber.StatusConflict, "email already exists")
	case err != nil:
		return handler.respondServiceError(c, "register", err)
	}

	if err := handler.setAuthCookie(c, &profile, input.RememberMe); err != nil {
		return handler.respondServiceError(c, "register_session", err)
	}
	return handler.respondAuthSuccess(c, fiber.StatusCreated, &profile, "notice.welcome")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	limiterKey := loginLimiterKey(c, email)
	now := handler.now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		wait := handler.loginLimiter.retryAfter(limiterKey, now, loginAttemptWindow)
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfterSeconds(wait)))
		return handler.respondAuthError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	handler.ensureDependencies()
	profile, err := handler.authService.Authenticate(email, password)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &profile, input.RememberMe); err != nil {
		return handler.respondServiceError(c, "login_session", err)
	}
	return handler.respondAuthSuccess(c, fiber.StatusOK, &profile, "notice.signed_in")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	notice := translate(c, "notice.signed_out")
	if acceptsJSON(c) {
		return c.JSON(authResponse{OK: true, Redirect: services.LoginPath, Notice: notice})
	}
	handler.setFlashCookie(c, FlashPayload{Notice: notice})
	return c.Redirect(services.LoginPath, fiber.StatusSeeOther)
}

type profileInput struct {
	FullName string `json:"full_name" form:"full_name"`
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	profile, err := handler.authService.UpdateFullName(currentSession(c).UserID(), input.FullName)
	if err != nil {
		return handler.respondServiceError(c, "update_profile", err)
	}
	return c.JSON(profile)
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(user)
}

func (handler *Handler) respondAuthSuccess(c *fiber.Ctx, status int, profile *models.Profile, noticeKey string) error {
	redirect := postLoginRedirectPath(profile)
	notice := translate(c, noticeKey)
	if acceptsJSON(c) {
		return c.Status(status).JSON(authResponse{OK: true, Redirect: redirect, Notice: notice, Profile: profile})
	}
	handler.setFlashCookie(c, FlashPayload{Notice: notice})
	return c.Redirect(redirect, fiber.StatusSeeOther)
}

// respondAuthError sends form posts back to their page with a flash and JSON
// clients an error body.
func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, code string) error {
	if acceptsJSON(c) {
		return apiError(c, status, code)
	}

	flash := FlashPayload{Error: translate(c, errorTranslationKey(code))}
	target := services.LoginPath
	if c.Path() == "/api/auth/register" {
		target = services.SignupPath
	} else {
		flash.LoginEmail = c.FormValue("email")
	}
	handler.setFlashCookie(c, flash)
	return c.Redirect(target, fiber.StatusSeeOther)
}

func postLoginRedirectPath(profile *models.Profile) string {
	if profile == nil || services.NewSession(*profile).OnboardingRequired() {
		return services.OnboardingPath
	}
	return services.DashboardPath
}
