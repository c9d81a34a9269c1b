package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) BookEvent(c *ginext.Context) {
	eventID, ok := pathID(c, domain.ErrEventNotFound)
	if !ok {
		return
	}

	// тело необязательно: по умолчанию один билет General
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), identity(c), eventID, domain.BookInput{
		TicketType: req.TicketType,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	bookingID, ok := pathID(c, domain.ErrBookingNotFound)
	if !ok {
		return
	}

	booking, err := h.bookingService.Confirm(c.Request.Context(), identity(c), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListMine(c.Request.Context(), identity(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}
