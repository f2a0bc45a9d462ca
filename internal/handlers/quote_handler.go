package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/services"
)

type QuoteHandler struct {
	quoteService *services.QuoteService
}

func NewQuoteHandler(quoteService *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	quote, err := h.quoteService.Create(userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(quote)
}

func (h *QuoteHandler) Accept(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid quote id")
	}

	var req dto.AcceptQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.quoteService.Accept(userID, id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

func (h *QuoteHandler) Reject(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid quote id")
	}

	quote, err := h.quoteService.Reject(userID, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(quote)
}

func (h *QuoteHandler) Mine(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, limit := pageParams(c)
	quotes, total, err := h.quoteService.ListByProvider(userID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.QuoteListResponse{
		Data: quotes,
		Meta: dto.NewListMeta(total, page, limit),
	})
}
