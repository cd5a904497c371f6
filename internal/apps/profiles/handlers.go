package profiles

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	service *ProfileService
}

func NewProfileHandler(service *ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) List(c *fiber.Ctx) error {
	profiles, err := h.service.List()
	if err != nil {
		slog.Error("profile list failed", "action", "profiles.list", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profiles",
		})
	}

	return c.JSON(ProfileListResponse{Profiles: profiles, Total: len(profiles)})
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	p, err := h.service.Get(id)
	if err != nil {
		return h.fail(c, "profiles.get", err, "Failed to fetch profile")
	}

	return c.JSON(p)
}

func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	p, err := h.service.Create(req)
	if err != nil {
		return h.fail(c, "profiles.create", err, "Failed to create profile")
	}

	return c.Status(fiber.StatusCreated).JSON(CreateProfileResponse{ID: p.ID})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	p, err := h.service.Update(id, req)
	if err != nil {
		return h.fail(c, "profiles.update", err, "Failed to update profile")
	}

	return c.JSON(p)
}

func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	if err := h.service.Delete(id); err != nil {
		return h.fail(c, "profiles.delete", err, "Failed to delete profile")
	}

	return c.JSON(dto.MessageResponse{Message: "Profile deleted successfully"})
}

func (h *ProfileHandler) fail(c *fiber.Ctx, action string, err error, fallback string) error {
	var vErr *ValidationError
	switch {
	case errors.Is(err, ErrProfileNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	slog.Error("profile operation failed", "action", action, "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

// invalidID answers like an unknown id: ids are opaque to clients.
func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: ErrProfileNotFound.Error(),
	})
}
