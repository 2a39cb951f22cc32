package repository

import (
	"context"
	"database/sql"

	"github.com/haiderrentals/rental-api/internal/model"
)

// MessageRepo provides CRUD operations for contact messages.  Messages are
// created by the public contact form and managed only by admins.
type MessageRepo struct {
	db *sql.DB
}

// NewMessageRepo returns a new MessageRepo bound to the given database.
func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{db: db} }

const messageColumns = "id, name, email, phone, message, is_read, created_at"

// Create inserts a new unread message and populates the generated ID and
// creation timestamp on the provided record.
func (r *MessageRepo) Create(ctx context.Context, m *model.ContactMessage) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO contact_messages (name, email, phone, message) VALUES (?,?,?,?)",
		m.Name, m.Email, m.Phone, m.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT is_read, created_at FROM contact_messages WHERE id=?",
		m.ID).Scan(&m.Read, &m.CreatedAt)
}

// ListAll returns every message ordered by creation time descending.
func (r *MessageRepo) ListAll(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+messageColumns+" FROM contact_messages ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.ContactMessage, 0)
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead sets the read flag.  The operation is idempotent: marking an
// already-read message succeeds without change.  ErrNotFound is returned
// when the message does not exist.
func (r *MessageRepo) MarkRead(ctx context.Context, id uint64) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM contact_messages WHERE id=? LIMIT 1", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"UPDATE contact_messages SET is_read=1 WHERE id=?", id)
	return err
}

// Delete permanently removes a message.  ErrNotFound is returned when no
// row was deleted.
func (r *MessageRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
