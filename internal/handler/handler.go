package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/handler/dto"
	"github.com/ajit-max/event/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
}

type EventSvc interface {
	Create(ctx context.Context, identity *domain.Identity, input domain.EventInput) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	ListPublished(ctx context.Context) ([]*domain.Event, error)
	ListAll(ctx context.Context) ([]*domain.Event, error)
	CheckEditable(ctx context.Context, identity *domain.Identity, id string) error
	Update(ctx context.Context, identity *domain.Identity, id string, input domain.EventInput) (*domain.Event, error)
	Delete(ctx context.Context, identity *domain.Identity, id string) error
}

type BookingSvc interface {
	Book(ctx context.Context, identity *domain.Identity, eventID string, input domain.BookInput) (*domain.Booking, error)
	Confirm(ctx context.Context, identity *domain.Identity, bookingID string) (*domain.Booking, error)
	ListMine(ctx context.Context, identity *domain.Identity) ([]*domain.Booking, error)
}

type UserSvc interface {
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	authService    AuthSvc
	eventService   EventSvc
	bookingService BookingSvc
	userService    UserSvc
}

func NewHandler(authService AuthSvc, eventService EventSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		authService:    authService,
		eventService:   eventService,
		bookingService: bookingService,
		userService:    userService,
	}
}

// pathID возвращает id из пути. Не-UUID id не может существовать, отвечаем notFound.
func pathID(c *ginext.Context, notFound error) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.Set("error", "invalid id "+id)
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: notFound.Error()})
		return "", false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("invalid date format, expected RFC3339")
	}
	return t, nil
}

func identity(c *ginext.Context) *domain.Identity {
	return middleware.IdentityFrom(c.Request.Context())
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrNoAvailableTickets),
		errors.Is(err, domain.ErrEventNotPublished),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrBookingExpired):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "server error"})
	}
}
