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
	"github.com/redis/go-redis/v9"
	"github.com/safecircle/peer_support_system/internal/models"
	"github.com/safecircle/peer_support_system/internal/service"
)

const circleCacheTTL = 5 * time.Minute

type CircleRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewCircleRepository(db *pgxpool.Pool, redisClient *redis.Client) service.CircleRepository {
	return &CircleRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись о круге в бд
func (r *CircleRepository) Create(ctx context.Context, circle *models.Circle) error {
	query := `
		INSERT INTO circles (id, name, description, incident_type, location_region, language, max_members, facilitator_id, tags, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING member_count, average_helpfulness_score, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		circle.ID,
		circle.Name,
		circle.Description,
		circle.IncidentType,
		circle.LocationRegion,
		circle.Language,
		circle.MaxMembers,
		circle.FacilitatorID,
		circle.Tags,
		circle.IsActive,
	).Scan(&circle.MemberCount, &circle.AverageHelpfulnessScore, &circle.CreatedAt, &circle.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create circle: %w", err)
	}
	return nil
}

const circleColumns = `
			id,
			name,
			description,
			incident_type,
			location_region,
			language,
			member_count,
			max_members,
			facilitator_id,
			tags,
			average_helpfulness_score,
			is_active,
			created_at,
			updated_at`

func scanCircle(row pgx.Row) (*models.Circle, error) {
	circle := &models.Circle{}
	err := row.Scan(
		&circle.ID,
		&circle.Name,
		&circle.Description,
		&circle.IncidentType,
		&circle.LocationRegion,
		&circle.Language,
		&circle.MemberCount,
		&circle.MaxMembers,
		&circle.FacilitatorID,
		&circle.Tags,
		&circle.AverageHelpfulnessScore,
		&circle.IsActive,
		&circle.CreatedAt,
		&circle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return circle, nil
}

// GetByID возвращает круг по его UUID
func (r *CircleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Circle, error) {
	query := `SELECT ` + circleColumns + ` FROM circles WHERE id = $1;`

	circle, err := scanCircle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("circle with id %s: %w", id, service.ErrCircleNotFound)
		}
		return nil, fmt.Errorf("failed to get circle by id: %w", err)
	}
	return circle, nil
}

// FindCandidates возвращает до limit активных кругов со свободным местом и
// точным совпадением ключей подбора, отсортированных по member_count ASC,
// average_helpfulness_score DESC
func (r *CircleRepository) FindCandidates(ctx context.Context, incidentType, locationRegion, language string, limit int) ([]*models.Circle, error) {
	query := `
		SELECT ` + circleColumns + `
		FROM circles
		WHERE
			incident_type = $1
			AND location_region = $2
			AND language = $3
			AND is_active
			AND member_count < max_members
		ORDER BY member_count ASC, average_helpfulness_score DESC
		LIMIT $4;
	`
	rows, err := r.db.Query(ctx, query, incidentType, locationRegion, language, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find candidate circles: %w", err)
	}
	defer rows.Close()

	circles := make([]*models.Circle, 0)
	for rows.Next() {
		circle, err := scanCircle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan circle row in FindCandidates: %w", err)
		}
		circles = append(circles, circle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FindCandidates: %w", err)
	}
	return circles, nil
}

// JoinCircle атомарно регистрирует участника: условный инкремент счетчика и
// вставка членства выполняются в одной транзакции. Гонка двух вступлений за
// последнее место не может превысить max_members - проигравший получает
// service.ErrCapacityExceeded.
func (r *CircleRepository) JoinCircle(ctx context.Context, circleID uuid.UUID, member *models.CircleMember) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin join transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE circles SET
			member_count = member_count + 1,
			updated_at = NOW()
		WHERE id = $1 AND is_active AND member_count < max_members;
	`, circleID)
	if err != nil {
		return fmt.Errorf("failed to increment member count: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Различаем отсутствующий/деактивированный круг и заполненный
		var isActive bool
		err := tx.QueryRow(ctx, `SELECT is_active FROM circles WHERE id = $1;`, circleID).Scan(&isActive)
		if errors.Is(err, pgx.ErrNoRows) || (err == nil && !isActive) {
			return fmt.Errorf("circle with id %s: %w", circleID, service.ErrCircleNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to check circle state: %w", err)
		}
		return fmt.Errorf("circle with id %s is full: %w", circleID, service.ErrCapacityExceeded)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO circle_members (circle_id, participant_id, display_name, report_id, is_active)
		VALUES ($1, $2, $3, $4, TRUE) RETURNING id, joined_at, last_active_at;
	`,
		circleID,
		member.ParticipantID,
		member.DisplayName,
		member.ReportID,
	).Scan(&member.ID, &member.JoinedAt, &member.LastActiveAt)
	if err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit join transaction: %w", err)
	}

	member.CircleID = circleID
	member.IsActive = true
	return nil
}

// LeaveCircle логически удаляет членство и декрементирует счетчик круга в
// одной транзакции. Возвращает false без ошибки, если членство уже неактивно
// (повторный выход - no-op, декремент не повторяется).
func (r *CircleRepository) LeaveCircle(ctx context.Context, circleID uuid.UUID, participantID string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin leave transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE circle_members SET
			is_active = FALSE,
			last_active_at = NOW()
		WHERE circle_id = $1 AND participant_id = $2 AND is_active;
	`, circleID, participantID)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate membership: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var count int
		err := tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM circle_members WHERE circle_id = $1 AND participant_id = $2;
		`, circleID, participantID).Scan(&count)
		if err != nil {
			return false, fmt.Errorf("failed to check membership existence: %w", err)
		}
		if count == 0 {
			return false, fmt.Errorf("membership for participant %s: %w", participantID, service.ErrMemberNotFound)
		}
		return false, nil // уже вышел
	}

	_, err = tx.Exec(ctx, `
		UPDATE circles SET
			member_count = GREATEST(member_count - 1, 0),
			updated_at = NOW()
		WHERE id = $1;
	`, circleID)
	if err != nil {
		return false, fmt.Errorf("failed to decrement member count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit leave transaction: %w", err)
	}
	return true, nil
}

// Stats возвращает агрегированную статистику по активным кругам
func (r *CircleRepository) Stats(ctx context.Context) (*models.CircleStats, error) {
	stats := &models.CircleStats{}

	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM circles WHERE is_active),
			(SELECT COUNT(*) FROM circle_members WHERE is_active),
			(SELECT COUNT(*) FROM circle_messages);
	`).Scan(&stats.TotalCircles, &stats.TotalMembers, &stats.TotalMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to get circle stats: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT incident_type, COUNT(*)
		FROM circles
		WHERE is_active
		GROUP BY incident_type
		ORDER BY COUNT(*) DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get circles by type: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tc models.IncidentTypeCount
		if err := rows.Scan(&tc.IncidentType, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan incident type count: %w", err)
		}
		stats.CirclesByType = append(stats.CirclesByType, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in Stats: %w", err)
	}
	return stats, nil
}

// GetCircleFromCache пытается получить круг из Redis
func (r *CircleRepository) GetCircleFromCache(ctx context.Context, id uuid.UUID) (*models.Circle, error) {
	key := fmt.Sprintf("circle:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get circle from cache: %w", err)
	}

	circle := &models.Circle{}
	if err := json.Unmarshal(val, circle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal circle from cache: %w", err)
	}
	return circle, nil
}

// SetCircleCache сохраняет круг в Redis
func (r *CircleRepository) SetCircleCache(ctx context.Context, circle *models.Circle) error {
	key := fmt.Sprintf("circle:%s", circle.ID.String())
	val, err := json.Marshal(circle)
	if err != nil {
		return fmt.Errorf("failed to marshal circle for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, circleCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set circle in cache: %w", err)
	}
	return nil
}

// InvalidateCircleCache удаляет круг из Redis кэша
func (r *CircleRepository) InvalidateCircleCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("circle:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate circle cache: %w", err)
	}
	return nil
}
