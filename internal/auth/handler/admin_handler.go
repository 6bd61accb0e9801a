package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/service"
)

type AdminHandler struct {
	admin   *service.AdminService
	cascade *service.CascadeService
	log     zerolog.Logger
}

func NewAdminHandler(admin *service.AdminService, cascade *service.CascadeService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, cascade: cascade, log: log}
}

func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.admin.ListCollection(c.UserContext(), domain.CollectionUsers)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list users")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

func (h *AdminHandler) Feedbacks(c *fiber.Ctx) error {
	feedbacks, err := h.admin.ListCollection(c.UserContext(), domain.CollectionFeedbacks)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list feedbacks")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch feedbacks",
		})
	}

	return c.Status(fiber.StatusOK).JSON(feedbacks)
}

func (h *AdminHandler) Metrics(c *fiber.Ctx) error {
	metrics, err := h.admin.Metrics(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to compute metrics")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch metrics",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": metrics})
}

func (h *AdminHandler) RecentActivity(c *fiber.Ctx) error {
	activity, err := h.admin.RecentActivity(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch recent activity")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to fetch activity",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": activity})
}

// ResetSessions drains the entire sign-in audit collection.
func (h *AdminHandler) ResetSessions(c *fiber.Ctx) error {
	if err := h.cascade.ResetCollection(c.UserContext(), domain.CollectionSessions); err != nil {
		h.log.Error().Err(err).Msg("failed to reset sessions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Failed to reset sessions",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
