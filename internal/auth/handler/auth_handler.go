package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/dto"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/identity"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/service"
	autherror "github.com/AhapraxAhmed/mockrithm/internal/errors"
	authconstant "github.com/AhapraxAhmed/mockrithm/pkg/constant"
)

type AuthHandler struct {
	rateLimiter *service.RateLimitService
	sessions    *service.SessionService
	directory   *service.DirectoryService
	cascade     *service.CascadeService
	resets      *service.PasswordResetService
	provider    identity.Provider
	production  bool
	log         zerolog.Logger
}

func NewAuthHandler(
	rateLimiter *service.RateLimitService,
	sessions *service.SessionService,
	directory *service.DirectoryService,
	cascade *service.CascadeService,
	resets *service.PasswordResetService,
	provider identity.Provider,
	production bool,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		rateLimiter: rateLimiter,
		sessions:    sessions,
		directory:   directory,
		cascade:     cascade,
		resets:      resets,
		provider:    provider,
		production:  production,
		log:         log,
	}
}

// clientIP prefers the first X-Forwarded-For hop so bans land on the real
// caller behind the proxy.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}

func setCookie(c *fiber.Ctx, cookie *dto.SessionCookie) {
	fc := fiber.Cookie{
		Name:     cookie.Name,
		Value:    cookie.Value,
		MaxAge:   cookie.MaxAge,
		Path:     cookie.Path,
		HTTPOnly: cookie.HTTPOnly,
		Secure:   cookie.Secure,
		SameSite: cookie.SameSite,
	}
	if cookie.MaxAge < 0 {
		// fasthttp only serializes a positive Max-Age; a past Expires is
		// what actually puts the deletion on the wire.
		fc.Expires = time.Unix(0, 0)
	}
	c.Cookie(&fc)
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var input dto.SignUpInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "invalid input",
		})
	}

	ctx := c.UserContext()

	ident, err := h.provider.CreateIdentity(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false, "message": "This email is already in use",
			})
		}
		h.log.Error().Err(err).Msg("sign up failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to create account. Please try again.",
		})
	}

	if _, err := h.directory.EnsureUserRecord(ctx, ident.SubjectID, ident.Email, input.Name); err != nil {
		h.log.Error().Err(err).Str("uid", ident.SubjectID).Msg("user record creation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to create account. Please try again.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true, "message": "Account created successfully. Please sign in.",
	})
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var input dto.SignInInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "invalid input",
		})
	}

	ctx := c.UserContext()
	input.IPAddress = clientIP(c)

	// The ban check runs before the credential check, so a banned IP is
	// rejected even with correct credentials.
	status, err := h.rateLimiter.Check(ctx, input.IPAddress)
	if err != nil {
		h.log.Error().Err(err).Msg("rate limit check failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to log into account. Please try again.",
		})
	}
	if status.Banned {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"success": false, "message": status.Message,
		})
	}

	token, ident, err := h.provider.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrIdentityNotFound):
			if rlErr := h.rateLimiter.RecordAttempt(ctx, input.IPAddress, false); rlErr != nil {
				h.log.Error().Err(rlErr).Msg("failed to record login attempt")
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "User does not exist. Create an account.",
			})
		case errors.Is(err, autherror.ErrInvalidCredentials):
			if rlErr := h.rateLimiter.RecordAttempt(ctx, input.IPAddress, false); rlErr != nil {
				h.log.Error().Err(rlErr).Msg("failed to record login attempt")
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "Invalid email or password.",
			})
		}
		h.log.Error().Err(err).Msg("authentication failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to log into account. Please try again.",
		})
	}

	if err := h.rateLimiter.RecordAttempt(ctx, input.IPAddress, true); err != nil {
		h.log.Error().Err(err).Msg("failed to clear rate limit record")
	}

	cookie, err := h.sessions.IssueSession(ctx, token)
	if err != nil {
		h.log.Error().Err(err).Msg("session issuance failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to log into account. Please try again.",
		})
	}
	setCookie(c, cookie)

	user, err := h.directory.EnsureUserRecord(ctx, ident.SubjectID, ident.Email, "")
	if err != nil {
		h.log.Error().Err(err).Str("uid", ident.SubjectID).Msg("directory sync failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to log into account. Please try again.",
		})
	}

	if err := h.directory.RecordSignIn(ctx, user.ID, user.Email); err != nil {
		h.log.Error().Err(err).Str("uid", user.ID).Msg("sign-in audit append failed")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	setCookie(c, h.sessions.ClearSession())

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := h.sessions.CurrentUser(c.UserContext(), c.Cookies(authconstant.SessionCookieName))
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false, "message": "Not authenticated",
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user := h.sessions.CurrentUser(ctx, c.Cookies(authconstant.SessionCookieName))
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false, "message": "Not authenticated",
		})
	}

	result := h.cascade.DeleteAccount(ctx, user.ID)
	if !result.Success {
		return c.Status(fiber.StatusInternalServerError).JSON(result)
	}

	// Final cascade step: drop the session cookie.
	setCookie(c, h.sessions.ClearSession())

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AuthHandler) TrackSession(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user := h.sessions.CurrentUser(ctx, c.Cookies(authconstant.SessionCookieName))
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false, "message": "Not authenticated",
		})
	}

	// The browser-session marker travels as a cookie the client presents,
	// not as server-side state.
	alreadyTracked := c.Cookies(authconstant.SessionTrackedCookie) != ""

	tracked, err := h.directory.TrackSession(ctx, user.ID, user.Email, alreadyTracked)
	if err != nil {
		h.log.Error().Err(err).Str("uid", user.ID).Msg("session tracking failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to track session",
		})
	}

	if tracked {
		c.Cookie(&fiber.Cookie{
			Name:     authconstant.SessionTrackedCookie,
			Value:    "true",
			Path:     authconstant.SessionCookiePath,
			HTTPOnly: true,
			Secure:   h.production,
			SameSite: authconstant.SessionCookieSameSite,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "tracked": tracked})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "Email is required",
		})
	}

	err := h.resets.RequestReset(c.UserContext(), input.Email)
	if err == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true, "message": "Verification code sent to your email.",
		})
	}

	if errors.Is(err, autherror.ErrIdentityNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "message": "This email is not registered.",
		})
	}

	h.log.Error().Err(err).Msg("forgot password failed")
	response := fiber.Map{
		"success": false,
		"message": "Failed to send reset code. Please check if your SMTP details are correct or try again later.",
	}
	if !h.production {
		response["error"] = err.Error()
	}

	return c.Status(fiber.StatusInternalServerError).JSON(response)
}
