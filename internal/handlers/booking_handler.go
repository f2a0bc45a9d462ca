package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/models"
	"github.com/dienstly/dienstly-backend/internal/services"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) Get(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid booking id")
	}

	booking, err := h.bookingService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if booking.CustomerID != userID && booking.Provider.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Not authorized to view this booking",
		})
	}

	return c.JSON(booking)
}

func (h *BookingHandler) Confirm(c *fiber.Ctx) error {
	return h.transition(c, h.bookingService.Confirm)
}

func (h *BookingHandler) Start(c *fiber.Ctx) error {
	return h.transition(c, h.bookingService.Start)
}

func (h *BookingHandler) Complete(c *fiber.Ctx) error {
	return h.transition(c, h.bookingService.Complete)
}

func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	return h.transition(c, h.bookingService.Cancel)
}

// SetPaymentStatus is driven by back-office staff, not by either booking
// party; the admin route group gates access. Payment state is orthogonal
// to the booking lifecycle.
func (h *BookingHandler) SetPaymentStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid booking id")
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.bookingService.SetPaymentStatus(id, models.PaymentStatus(req.PaymentStatus))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(updated)
}

func (h *BookingHandler) Mine(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, limit := pageParams(c)
	bookings, total, err := h.bookingService.ListByCustomer(userID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.BookingListResponse{
		Data: bookings,
		Meta: dto.NewListMeta(total, page, limit),
	})
}

func (h *BookingHandler) transition(c *fiber.Ctx, op func(userID uuid.UUID, id uuid.UUID) (*models.Booking, error)) error {
	userID, err := requireUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid booking id")
	}

	booking, err := op(userID, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(booking)
}
