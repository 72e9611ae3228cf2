package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/safecircle/peer_support_system/internal/models"
	"github.com/safecircle/peer_support_system/internal/service"
)

type MemberRepository struct {
	db *pgxpool.Pool
}

func NewMemberRepository(db *pgxpool.Pool) service.MemberRepository {
	return &MemberRepository{db: db}
}

const memberColumns = `
			id,
			circle_id,
			participant_id,
			display_name,
			report_id,
			joined_at,
			last_active_at,
			is_active,
			message_count,
			helpfulness_score,
			received_helpfulness_ratings`

func scanMember(row pgx.Row) (*models.CircleMember, error) {
	member := &models.CircleMember{}
	err := row.Scan(
		&member.ID,
		&member.CircleID,
		&member.ParticipantID,
		&member.DisplayName,
		&member.ReportID,
		&member.JoinedAt,
		&member.LastActiveAt,
		&member.IsActive,
		&member.MessageCount,
		&member.HelpfulnessScore,
		&member.ReceivedHelpfulnessRatings,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}

// GetActiveMember возвращает активное членство участника в круге или (nil, nil)
func (r *MemberRepository) GetActiveMember(ctx context.Context, circleID uuid.UUID, participantID string) (*models.CircleMember, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM circle_members
		WHERE circle_id = $1 AND participant_id = $2 AND is_active;
	`
	member, err := scanMember(r.db.QueryRow(ctx, query, circleID, participantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active member: %w", err)
	}
	return member, nil
}

// ListActiveMembers возвращает активных участников круга в порядке вступления
func (r *MemberRepository) ListActiveMembers(ctx context.Context, circleID uuid.UUID) ([]*models.CircleMember, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM circle_members
		WHERE circle_id = $1 AND is_active
		ORDER BY joined_at ASC;
	`
	rows, err := r.db.Query(ctx, query, circleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active members: %w", err)
	}
	defer rows.Close()

	members := make([]*models.CircleMember, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListActiveMembers: %w", err)
	}
	return members, nil
}
