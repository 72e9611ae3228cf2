package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/safecircle/peer_support_system/internal/models"
	"github.com/safecircle/peer_support_system/internal/service"
)

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) service.MessageRepository {
	return &MessageRepository{db: db}
}

// Insert сохраняет сообщение и обновляет счетчики активности отправителя в
// одной транзакции. serverTimestamp назначается в SQL как
// GREATEST(NOW(), max по кругу), поэтому последовательность меток внутри
// круга монотонно неубывает даже при сдвиге часов; равные метки упорядочивает
// последовательный seq (порядок прибытия).
func (r *MessageRepository) Insert(ctx context.Context, msg *models.CircleMessage) (int, error) {
	reactions, err := json.Marshal(msg.Reactions)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal reactions: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin message transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO circle_messages (id, circle_id, sender_id, sender_display_name, body, server_timestamp, risk_score, flagged, reactions)
		VALUES (
			$1, $2, $3, $4, $5,
			GREATEST(NOW(), COALESCE((SELECT MAX(server_timestamp) FROM circle_messages WHERE circle_id = $2), NOW())),
			$6, $7, $8
		) RETURNING server_timestamp;
	`,
		msg.ID,
		msg.CircleID,
		msg.SenderID,
		msg.SenderDisplayName,
		msg.Body,
		msg.RiskScore,
		msg.Flagged,
		reactions,
	).Scan(&msg.ServerTimestamp)
	if err != nil {
		return 0, fmt.Errorf("failed to insert message: %w", err)
	}

	var messageCount int
	err = tx.QueryRow(ctx, `
		UPDATE circle_members SET
			message_count = message_count + 1,
			last_active_at = NOW()
		WHERE circle_id = $1 AND participant_id = $2 AND is_active
		RETURNING message_count;
	`, msg.CircleID, msg.SenderID).Scan(&messageCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("sender %s: %w", msg.SenderID, service.ErrNotAMember)
		}
		return 0, fmt.Errorf("failed to update sender activity: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit message transaction: %w", err)
	}
	return messageCount, nil
}

const messageColumns = `
			id,
			circle_id,
			sender_id,
			sender_display_name,
			body,
			server_timestamp,
			risk_score,
			flagged,
			reactions,
			edited,
			edited_at`

func scanMessage(row pgx.Row) (*models.CircleMessage, error) {
	msg := &models.CircleMessage{}
	var reactions []byte
	err := row.Scan(
		&msg.ID,
		&msg.CircleID,
		&msg.SenderID,
		&msg.SenderDisplayName,
		&msg.Body,
		&msg.ServerTimestamp,
		&msg.RiskScore,
		&msg.Flagged,
		&reactions,
		&msg.Edited,
		&msg.EditedAt,
	)
	if err != nil {
		return nil, err
	}

	msg.Reactions = models.Reactions{}
	if len(reactions) > 0 {
		if err := json.Unmarshal(reactions, &msg.Reactions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reactions: %w", err)
		}
	}
	return msg, nil
}

// List возвращает последние limit сообщений круга с server_timestamp < before
// (или просто последние limit), в порядке возрастания метки времени
func (r *MessageRepository) List(ctx context.Context, circleID uuid.UUID, limit int, before *time.Time) ([]*models.CircleMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM circle_messages
		WHERE circle_id = $1
	`
	args := []any{circleID}
	if before != nil {
		query += ` AND server_timestamp < $2`
		args = append(args, *before)
	}
	query += fmt.Sprintf(` ORDER BY server_timestamp DESC, seq DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.CircleMessage, 0)
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in List: %w", err)
	}

	// Запрос отдает новейшие первыми - разворачиваем в хронологический порядок
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// GetByID возвращает сообщение по id в рамках круга
func (r *MessageRepository) GetByID(ctx context.Context, circleID, messageID uuid.UUID) (*models.CircleMessage, error) {
	query := `SELECT ` + messageColumns + ` FROM circle_messages WHERE id = $1 AND circle_id = $2;`

	msg, err := scanMessage(r.db.QueryRow(ctx, query, messageID, circleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("message with id %s: %w", messageID, service.ErrMessageNotFound)
		}
		return nil, fmt.Errorf("failed to get message by id: %w", err)
	}
	return msg, nil
}

// UpdateReactions перезаписывает реакции сообщения
func (r *MessageRepository) UpdateReactions(ctx context.Context, messageID uuid.UUID, reactions models.Reactions) error {
	payload, err := json.Marshal(reactions)
	if err != nil {
		return fmt.Errorf("failed to marshal reactions: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, `
		UPDATE circle_messages SET reactions = $2 WHERE id = $1;
	`, messageID, payload)
	if err != nil {
		return fmt.Errorf("failed to update reactions: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("message with id %s: %w", messageID, service.ErrMessageNotFound)
	}
	return nil
}

// UpdateBody меняет текст сообщения и ставит флаг редактирования
func (r *MessageRepository) UpdateBody(ctx context.Context, messageID uuid.UUID, body string, editedAt time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE circle_messages SET
			body = $2,
			edited = TRUE,
			edited_at = $3
		WHERE id = $1;
	`, messageID, body, editedAt)
	if err != nil {
		return fmt.Errorf("failed to update message body: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("message with id %s: %w", messageID, service.ErrMessageNotFound)
	}
	return nil
}
