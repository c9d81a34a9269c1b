package domain

import (
	"fmt"
	"time"
)

const DefaultImageURL = "https://via.placeholder.com/400x200/4B0082/FFFFFF?text=Elevate+Events"

type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryMusic      Category = "Music"
	CategorySports     Category = "Sports"
	CategoryArt        Category = "Art"
	CategoryBusiness   Category = "Business"
	CategoryEducation  Category = "Education"
	CategoryOther      Category = "Other"
)

var Categories = []Category{
	CategoryTechnology, CategoryMusic, CategorySports, CategoryArt,
	CategoryBusiness, CategoryEducation, CategoryOther,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
}

type TicketType struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Event struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Date             time.Time    `json:"date"`
	Location         string       `json:"location"`
	Category         Category     `json:"category"`
	ImageURL         string       `json:"image_url"`
	Price            float64      `json:"price"`
	AvailableTickets int          `json:"available_tickets"`
	OrganizerID      string       `json:"organizer_id"`
	IsPublished      bool         `json:"is_published"`
	TicketTypes      []TicketType `json:"ticket_types"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// TicketType returns the ticket type with the given name. An event without ticket
// types exposes its flat price and inventory under the empty name.
func (e *Event) TicketType(name string) (TicketType, bool) {
	if len(e.TicketTypes) == 0 {
		if name != "" && name != GeneralTicket {
			return TicketType{}, false
		}
		return TicketType{Name: GeneralTicket, Price: e.Price, Quantity: e.AvailableTickets}, true
	}
	for _, t := range e.TicketTypes {
		if t.Name == name {
			return t, true
		}
	}
	return TicketType{}, false
}

// EventInput carries the full set of mutable event fields for create and replace.
type EventInput struct {
	Name             string
	Description      string
	Date             time.Time
	Location         string
	Category         string
	ImageURL         string
	Price            float64
	AvailableTickets int
	IsPublished      bool
	TicketTypes      []TicketType
}
