// ABOUTME: Message record operations for the SQLite store
// ABOUTME: Insert and per-user inbox/outbox listing

package store

import (
	"context"
	"fmt"
	"time"
)

// CreateMessage inserts a new message record.
func (s *SQLiteStore) CreateMessage(ctx context.Context, msg *Message) error {
	query := `
		INSERT INTO messages (id, message, senderId, receiverId, senderEmail, projectId, senderName, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		msg.ID,
		msg.Message,
		msg.SenderID,
		msg.ReceiverID,
		msg.SenderEmail,
		msg.ProjectID,
		msg.SenderName,
		msg.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}

	s.logger.Debug("created message", "id", msg.ID, "sender_id", msg.SenderID, "receiver_id", msg.ReceiverID)
	return nil
}

// ListMessagesForUser returns all messages sent or received by the given
// user, oldest first.
func (s *SQLiteStore) ListMessagesForUser(ctx context.Context, userID string) ([]*Message, error) {
	query := `
		SELECT id, message, senderId, receiverId, senderEmail, projectId, senderName, created_at
		FROM messages
		WHERE senderId = ? OR receiverId = ?
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []*Message
	for rows.Next() {
		var msg Message
		var createdAtStr string

		if err := rows.Scan(
			&msg.ID,
			&msg.Message,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.SenderEmail,
			&msg.ProjectID,
			&msg.SenderName,
			&createdAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}

		msg.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}

	return messages, nil
}
