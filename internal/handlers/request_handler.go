package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/models"
	"github.com/dienstly/dienstly-backend/internal/services"
)

type RequestHandler struct {
	requestService *services.RequestService
}

func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	request, err := h.requestService.Create(userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// List is the public request browse with category, status, postal and
// area filters.
func (h *RequestHandler) List(c *fiber.Ctx) error {
	filter := &services.RequestFilter{
		CategorySlug: c.Query("category"),
		Status:       models.RequestStatus(c.Query("status")),
		PostalPrefix: c.Query("postal_code"),
		RadiusKm:     c.QueryFloat("radius"),
		Page:         c.QueryInt("page", 1),
		Limit:        c.QueryInt("limit", 10),
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid category_id")
		}
		filter.CategoryID = &id
	}
	if c.Query("lat") != "" && c.Query("lng") != "" {
		lat := c.QueryFloat("lat")
		lng := c.QueryFloat("lng")
		filter.Lat = &lat
		filter.Lng = &lng
	}

	requests, total, err := h.requestService.List(filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.RequestListResponse{
		Data: requests,
		Meta: dto.NewListMeta(total, filter.Page, filter.Limit),
	})
}

func (h *RequestHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid request id")
	}

	request, err := h.requestService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(request)
}

func (h *RequestHandler) Mine(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	requests, err := h.requestService.ListByCustomer(userID, models.RequestStatus(c.Query("status")))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": requests})
}

func (h *RequestHandler) Update(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid request id")
	}

	var req dto.UpdateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	request, err := h.requestService.Update(id, userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(request)
}

func (h *RequestHandler) Cancel(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid request id")
	}

	request, err := h.requestService.Cancel(id, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(request)
}
