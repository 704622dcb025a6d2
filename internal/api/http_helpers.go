package api

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func redirectOrJSON(c *fiber.Ctx, path string) error {
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true, "redirect": path})
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

// apiError writes the machine code with its localized message.
func apiError(c *fiber.Ctx, status int, code string) error {
	return c.Status(status).JSON(errorBody{
		Error:   code,
		Message: translate(c, errorTranslationKey(code)),
	})
}

func errorTranslationKey(code string) string {
	return "error." + strings.ReplaceAll(strings.TrimSpace(code), " ", "_")
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json") ||
		strings.Contains(strings.ToLower(c.Get("Content-Type")), "application/json")
}

func sanitizeRedirectPath(raw string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return fallback
	}
	if strings.HasPrefix(candidate, "//") || !strings.HasPrefix(candidate, "/") {
		return fallback
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.IsAbs() {
		return fallback
	}
	return candidate
}

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	value, err := c.ParamsInt(name)
	if err != nil || value <= 0 {
		return 0, false
	}
	return uint(value), true
}
