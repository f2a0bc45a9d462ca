package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.adminService.Dashboard()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	users, total, err := h.adminService.ListUsers(c.Query("search"), page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.UserListResponse{
		Data: users,
		Meta: dto.NewListMeta(total, page, limit),
	})
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.adminService.GetUser(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.adminService.UpdateUser(id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.adminService.DeleteUser(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}

func (h *AdminHandler) PendingProviders(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	providers, total, err := h.adminService.PendingProviders(page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.ProviderListResponse{
		Data: providers,
		Meta: dto.NewListMeta(total, page, limit),
	})
}

// RevenueReport defaults to the last 30 days when no window is given.
func (h *AdminHandler) RevenueReport(c *fiber.Ctx) error {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(c, "Invalid from date, expected YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(c, "Invalid to date, expected YYYY-MM-DD")
		}
		to = parsed
	}

	entries, err := h.adminService.RevenueReport(from, to)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": entries})
}
