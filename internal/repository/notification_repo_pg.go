package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	ListUnreadByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	CountUnreadByUser(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	MarkAllReadByUser(ctx context.Context, userID string) error
}

type PGNotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) NotificationRepository {
	return &PGNotificationRepository{db: db}
}

const notificationColumns = `id, user_id, title, message, type, is_read, booking_id, created_at`

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	var bookingID *string
	var typ string
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &typ, &n.IsRead, &bookingID, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Type = domain.NotificationType(typ)
	if bookingID != nil {
		n.BookingID = *bookingID
	}
	return &n, nil
}

func (r *PGNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	var bookingID *string
	if n.BookingID != "" {
		bookingID = &n.BookingID
	}
	return r.db.QueryRow(ctx, `
		INSERT INTO notifications (id, user_id, title, message, type, is_read, booking_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		n.ID, n.UserID, n.Title, n.Message, string(n.Type), n.IsRead, bookingID).
		Scan(&n.CreatedAt)
}

func (r *PGNotificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return r.list(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE user_id=$1 ORDER BY created_at DESC`, userID)
}

func (r *PGNotificationRepository) ListUnreadByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return r.list(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE user_id=$1 AND is_read=false ORDER BY created_at DESC`, userID)
}

func (r *PGNotificationRepository) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM notifications WHERE user_id=$1 AND is_read=false`, userID).Scan(&count)
	return count, err
}

func (r *PGNotificationRepository) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	row := r.db.QueryRow(ctx, `UPDATE notifications SET is_read=true WHERE id=$1 RETURNING `+notificationColumns, id)
	n, err := scanNotification(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return n, err
}

func (r *PGNotificationRepository) MarkAllReadByUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET is_read=true WHERE user_id=$1 AND is_read=false`, userID)
	return err
}

func (r *PGNotificationRepository) list(ctx context.Context, sql string, args ...interface{}) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *n)
	}
	return list, rows.Err()
}

var _ NotificationRepository = (*PGNotificationRepository)(nil)
