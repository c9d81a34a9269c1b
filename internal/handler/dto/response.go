package dto

import (
	"time"

	"github.com/ajit-max/event/internal/domain"
)

type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

type IdentityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TicketTypeResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type EventResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	Date             string               `json:"date"`
	Location         string               `json:"location"`
	Category         string               `json:"category"`
	ImageURL         string               `json:"imageUrl"`
	Price            float64              `json:"price"`
	AvailableTickets int                  `json:"availableTickets"`
	Organizer        string               `json:"organizer"`
	IsPublished      bool                 `json:"isPublished"`
	TicketTypes      []TicketTypeResponse `json:"ticketTypes"`
	CreatedAt        string               `json:"createdAt"`
	UpdatedAt        string               `json:"updatedAt"`
}

type BookingResponse struct {
	ID         string  `json:"id"`
	EventID    string  `json:"eventId"`
	UserID     string  `json:"userId"`
	TicketType string  `json:"ticketType"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToAuthResponse(r *domain.AuthResult) AuthResponse {
	return AuthResponse{
		ID:    r.User.ID,
		Name:  r.User.Name,
		Email: r.User.Email,
		Role:  string(r.User.Role),
		Token: r.Token,
	}
}

func ToIdentityResponse(i *domain.Identity) IdentityResponse {
	return IdentityResponse{
		ID:    i.ID,
		Name:  i.Name,
		Email: i.Email,
		Role:  string(i.Role),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	ticketTypes := make([]TicketTypeResponse, 0, len(e.TicketTypes))
	for _, t := range e.TicketTypes {
		ticketTypes = append(ticketTypes, TicketTypeResponse{
			Name:     t.Name,
			Price:    t.Price,
			Quantity: t.Quantity,
		})
	}

	return EventResponse{
		ID:               e.ID,
		Name:             e.Name,
		Description:      e.Description,
		Date:             e.Date.Format(time.RFC3339),
		Location:         e.Location,
		Category:         string(e.Category),
		ImageURL:         e.ImageURL,
		Price:            e.Price,
		AvailableTickets: e.AvailableTickets,
		Organizer:        e.OrganizerID,
		IsPublished:      e.IsPublished,
		TicketTypes:      ticketTypes,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		EventID:    b.EventID,
		UserID:     b.UserID,
		TicketType: b.TicketType,
		Quantity:   b.Quantity,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
