package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ajit-max/event/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const bookingColumns = `id, event_id, user_id, ticket_type, quantity, total_price, status, created_at, updated_at`

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.EventID, &b.UserID, &b.TicketType, &b.Quantity,
		&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create списывает билеты условным UPDATE и сохраняет бронь в одной транзакции.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var res sql.Result
	if b.TicketType == "" {
		res, err = tx.ExecContext(ctx,
			`UPDATE events
			 SET available_tickets = available_tickets - $2, updated_at = now()
			 WHERE id = $1 AND is_published AND available_tickets >= $2`,
			b.EventID, b.Quantity,
		)
	} else {
		res, err = tx.ExecContext(ctx,
			`UPDATE event_ticket_types t
			 SET quantity = t.quantity - $3
			 FROM events e
			 WHERE t.event_id = e.id AND e.is_published
			   AND t.event_id = $1 AND t.name = $2 AND t.quantity >= $3`,
			b.EventID, b.TicketType, b.Quantity,
		)
	}
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("reserve tickets: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNoAvailableTickets
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, query, b.ID, b.EventID, b.UserID, b.TicketType, b.Quantity,
		b.TotalPrice, b.Status, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE user_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) Confirm(ctx context.Context, id string, ttl time.Duration) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Атомарно проверяем статус и TTL, обновляем бронь
	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1
			    AND status = $2
			    AND created_at + make_interval(secs => $4) >= now()
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(
		ctx, query, id,
		domain.BookingStatusPending, domain.BookingStatusConfirmed,
		ttl.Seconds(),
	))
	if err == nil {
		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return b, nil
	}
	if isInvalidID(err) {
		return nil, domain.ErrBookingNotFound
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	// Определяем причину: бронь не найдена, не pending или истекла
	var (
		status    domain.BookingStatus
		createdAt time.Time
	)
	err = tx.QueryRowContext(ctx, `SELECT status, created_at FROM bookings WHERE id = $1`, id).
		Scan(&status, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("check booking: %w", err)
	}
	if status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}
	if time.Since(createdAt) > ttl {
		return nil, domain.ErrBookingExpired
	}

	return nil, domain.ErrBookingNotFound
}

// CancelExpired отменяет просроченные pending-брони и возвращает билеты в продажу.
func (r *BookingRepository) CancelExpired(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND created_at + make_interval(secs => $3) < now()
			  RETURNING ` + bookingColumns

	rows, err := tx.QueryContext(
		ctx, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled,
		ttl.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, b)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("cancel expired rows: %w", err)
	}

	for _, b := range res {
		if err = restoreTickets(ctx, tx, b); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return res, nil
}

func restoreTickets(ctx context.Context, tx *sql.Tx, b *domain.Booking) error {
	var err error
	if b.TicketType == "" {
		_, err = tx.ExecContext(ctx,
			`UPDATE events SET available_tickets = available_tickets + $2, updated_at = now() WHERE id = $1`,
			b.EventID, b.Quantity,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE event_ticket_types SET quantity = quantity + $3 WHERE event_id = $1 AND name = $2`,
			b.EventID, b.TicketType, b.Quantity,
		)
	}
	if err != nil {
		return fmt.Errorf("restore tickets for booking %s: %w", b.ID, err)
	}
	return nil
}
