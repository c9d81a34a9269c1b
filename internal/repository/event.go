package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ajit-max/event/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const selectEvent = `
	SELECT e.id, e.name, e.description, e.event_date, e.location, e.category,
	       e.image_url, e.price, e.available_tickets, e.organizer_id, e.is_published,
	       e.created_at, e.updated_at,
	       COALESCE(
	           json_agg(json_build_object('name', t.name, 'price', t.price, 'quantity', t.quantity)
	                    ORDER BY t.position) FILTER (WHERE t.event_id IS NOT NULL),
	           '[]'
	       )
	FROM events e
	LEFT JOIN event_ticket_types t ON t.event_id = e.id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e           domain.Event
		ticketTypes []byte
	)
	if err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &e.Location, &e.Category,
		&e.ImageURL, &e.Price, &e.AvailableTickets, &e.OrganizerID, &e.IsPublished,
		&e.CreatedAt, &e.UpdatedAt, &ticketTypes,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ticketTypes, &e.TicketTypes); err != nil {
		return nil, fmt.Errorf("decode ticket types: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	query := `INSERT INTO events (id, name, description, event_date, location, category, image_url,
	                              price, available_tickets, organizer_id, is_published, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	if _, err = tx.ExecContext(
		ctx, query,
		e.ID, e.Name, e.Description, e.Date, e.Location, e.Category, e.ImageURL,
		e.Price, e.AvailableTickets, e.OrganizerID, e.IsPublished, now, now,
	); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	if err = insertTicketTypes(ctx, tx, e.ID, e.TicketTypes); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	e.CreatedAt, e.UpdatedAt = now, now

	return nil
}

func insertTicketTypes(ctx context.Context, tx *sql.Tx, eventID string, types []domain.TicketType) error {
	query := `INSERT INTO event_ticket_types (event_id, position, name, price, quantity)
			  VALUES ($1, $2, $3, $4, $5)`
	for i, t := range types {
		if _, err := tx.ExecContext(ctx, query, eventID, i, t.Name, t.Price, t.Quantity); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: duplicate ticket type %q", domain.ErrValidation, t.Name)
			}
			return fmt.Errorf("insert ticket type: %w", err)
		}
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := selectEvent + `
	WHERE e.id = $1
	GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) ListPublished(ctx context.Context) ([]*domain.Event, error) {
	return r.list(ctx, selectEvent+`
	WHERE e.is_published
	GROUP BY e.id
	ORDER BY e.event_date ASC`)
}

func (r *EventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	return r.list(ctx, selectEvent+`
	GROUP BY e.id
	ORDER BY e.event_date ASC`)
}

func (r *EventRepository) list(ctx context.Context, query string) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// Update полностью заменяет изменяемые поля и типы билетов. organizer_id не трогаем.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE events
			  SET name = $2, description = $3, event_date = $4, location = $5, category = $6,
			      image_url = $7, price = $8, available_tickets = $9, is_published = $10,
			      updated_at = now()
			  WHERE id = $1
			  RETURNING updated_at`
	err = tx.QueryRowContext(
		ctx, query,
		e.ID, e.Name, e.Description, e.Date, e.Location, e.Category,
		e.ImageURL, e.Price, e.AvailableTickets, e.IsPublished,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM event_ticket_types WHERE event_id = $1`, e.ID); err != nil {
		return fmt.Errorf("clear ticket types: %w", err)
	}
	if err = insertTicketTypes(ctx, tx, e.ID, e.TicketTypes); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
