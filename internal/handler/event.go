package handler

import (
	"net/http"

	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	input, ok := bindEventInput(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), identity(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrEventNotFound)
	if !ok {
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.ListPublished(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrEventNotFound)
	if !ok {
		return
	}

	// сначала 404/403, потом ошибки тела запроса
	if err := h.eventService.CheckEditable(c.Request.Context(), identity(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	input, ok := bindEventInput(c)
	if !ok {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), identity(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrEventNotFound)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), identity(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "event removed"})
}

func bindEventInput(c *ginext.Context) (domain.EventInput, bool) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return domain.EventInput{}, false
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return domain.EventInput{}, false
	}

	ticketTypes := make([]domain.TicketType, 0, len(req.TicketTypes))
	for _, t := range req.TicketTypes {
		ticketTypes = append(ticketTypes, domain.TicketType{
			Name:     t.Name,
			Price:    t.Price,
			Quantity: t.Quantity,
		})
	}

	return domain.EventInput{
		Name:             req.Name,
		Description:      req.Description,
		Date:             date,
		Location:         req.Location,
		Category:         req.Category,
		ImageURL:         req.ImageURL,
		Price:            req.Price,
		AvailableTickets: req.AvailableTickets,
		IsPublished:      req.IsPublished,
		TicketTypes:      ticketTypes,
	}, true
}
