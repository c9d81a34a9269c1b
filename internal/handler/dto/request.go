package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TicketTypeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// EventRequest используется и для создания, и для полной замены события.
type EventRequest struct {
	Name             string              `json:"name" binding:"required"`
	Description      string              `json:"description" binding:"required"`
	Date             string              `json:"date" binding:"required"`
	Location         string              `json:"location" binding:"required"`
	Category         string              `json:"category" binding:"required"`
	ImageURL         string              `json:"imageUrl"`
	Price            float64             `json:"price"`
	AvailableTickets int                 `json:"availableTickets"`
	IsPublished      bool                `json:"isPublished"`
	TicketTypes      []TicketTypeRequest `json:"ticketTypes" binding:"dive"`
}

type BookRequest struct {
	TicketType string `json:"ticketType"`
	Quantity   int    `json:"quantity"`
}
