package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/services"
)

type ReviewHandler struct {
	reviewService   *services.ReviewService
	providerService *services.ProviderService
}

func NewReviewHandler(reviewService *services.ReviewService, providerService *services.ProviderService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, providerService: providerService}
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.Create(userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewHandler) Reply(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid review id")
	}

	var req dto.ReplyToReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.Reply(userID, id, req.Reply)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(review)
}

// ListForProvider returns the public review page for a provider profile.
func (h *ReviewHandler) ListForProvider(c *fiber.Ctx) error {
	providerID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid provider id")
	}

	provider, err := h.providerService.GetByID(providerID)
	if err != nil {
		return respondError(c, err)
	}

	page, limit := pageParams(c)
	reviews, stats, total, err := h.reviewService.ListForProvider(provider.UserID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.ReviewListResponse{
		Data:  reviews,
		Stats: *stats,
		Meta:  dto.NewListMeta(total, page, limit),
	})
}

// Mine returns the reviews of the calling provider's own profile.
func (h *ReviewHandler) Mine(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, limit := pageParams(c)
	reviews, stats, total, err := h.reviewService.ListForProvider(userID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.ReviewListResponse{
		Data:  reviews,
		Stats: *stats,
		Meta:  dto.NewListMeta(total, page, limit),
	})
}
