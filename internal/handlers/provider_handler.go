package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/models"
	"github.com/dienstly/dienstly-backend/internal/services"
)

type ProviderHandler struct {
	providerService *services.ProviderService
	requestService  *services.RequestService
	bookingService  *services.BookingService
	categoryService *services.CategoryService
}

func NewProviderHandler(providerService *services.ProviderService, requestService *services.RequestService, bookingService *services.BookingService, categoryService *services.CategoryService) *ProviderHandler {
	return &ProviderHandler{
		providerService: providerService,
		requestService:  requestService,
		bookingService:  bookingService,
		categoryService: categoryService,
	}
}

// List is the public provider search with category, rating and area filters.
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	filter := &services.ProviderFilter{
		CategorySlug: c.Query("category"),
		MinRating:    c.QueryFloat("min_rating"),
		RadiusKm:     c.QueryFloat("radius"),
		Page:         c.QueryInt("page", 1),
		Limit:        c.QueryInt("limit", 10),
	}
	if c.Query("lat") != "" && c.Query("lng") != "" {
		lat := c.QueryFloat("lat")
		lng := c.QueryFloat("lng")
		filter.Lat = &lat
		filter.Lng = &lng
	}

	providers, total, err := h.providerService.List(filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.ProviderListResponse{
		Data: providers,
		Meta: dto.NewListMeta(total, filter.Page, filter.Limit),
	})
}

func (h *ProviderHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid provider id")
	}

	provider, err := h.providerService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(provider)
}

func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	provider, err := h.providerService.Create(userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(provider)
}

func (h *ProviderHandler) Me(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	provider, err := h.providerService.GetByUserID(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(provider)
}

func (h *ProviderHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	provider, err := h.providerService.GetByUserID(userID)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := h.providerService.Update(provider.ID, userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(updated)
}

func (h *ProviderHandler) Stats(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	stats, err := h.providerService.Stats(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(stats)
}

func (h *ProviderHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	dashboard, err := h.providerService.Dashboard(userID, h.requestService)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dashboard)
}

// Requests lists open requests the calling provider may quote on.
func (h *ProviderHandler) Requests(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	provider, err := h.providerService.GetByUserID(userID)
	if err != nil {
		return respondError(c, err)
	}

	page, limit := pageParams(c)
	filter := &services.RequestFilter{
		CategorySlug: c.Query("category"),
		Page:         page,
		Limit:        limit,
	}

	requests, total, err := h.requestService.VisibleToProvider(provider, filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.RequestListResponse{
		Data: requests,
		Meta: dto.NewListMeta(total, page, limit),
	})
}

func (h *ProviderHandler) Bookings(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	bookings, err := h.bookingService.ListByProvider(
		userID,
		c.QueryInt("month"),
		c.QueryInt("year"),
		models.BookingStatus(c.Query("status")),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": bookings})
}

func (h *ProviderHandler) CreateService(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	service, err := h.providerService.CreateService(userID, &req, h.categoryService)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

func (h *ProviderHandler) UpdateService(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	serviceID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid service id")
	}

	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	service, err := h.providerService.UpdateService(userID, serviceID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(service)
}

func (h *ProviderHandler) DeleteService(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	serviceID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid service id")
	}

	if err := h.providerService.DeleteService(userID, serviceID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Service deleted"})
}

func (h *ProviderHandler) Approve(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid provider id")
	}

	var req dto.ApproveProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	provider, err := h.providerService.Approve(id, req.IsApproved)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(provider)
}
