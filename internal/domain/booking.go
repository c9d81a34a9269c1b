package domain

import "time"

// GeneralTicket names the flat inventory of an event without ticket types.
const GeneralTicket = "General"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID         string        `json:"id"`
	EventID    string        `json:"event_id"`
	UserID     string        `json:"user_id"`
	TicketType string        `json:"ticket_type"`
	Quantity   int           `json:"quantity"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type BookInput struct {
	TicketType string
	Quantity   int
}
