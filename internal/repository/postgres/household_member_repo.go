package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

type householdMemberRepository struct {
	DB *sql.DB
}

func NewHouseholdMemberRepository(db *sql.DB) domain.HouseholdMemberRepository {
	return &householdMemberRepository{DB: db}
}

func (r *householdMemberRepository) Add(ctx context.Context, m *domain.HouseholdMember) error {
	query := `
		INSERT INTO household_members (household_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (household_id, user_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, m.HouseholdID, m.UserID, m.Role, m.CreatedAt)
	return err
}

func (r *householdMemberRepository) GetByUserID(ctx context.Context, userID string) (*domain.HouseholdMember, error) {
	query := `
		SELECT household_id, user_id, role, created_at
		FROM household_members
		WHERE user_id = $1
	`
	m := &domain.HouseholdMember{}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&m.HouseholdID, &m.UserID, &m.Role, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotInHousehold
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *householdMemberRepository) ListByHouseholdID(ctx context.Context, householdID string) ([]*domain.HouseholdMember, error) {
	query := `
		SELECT household_id, user_id, role, created_at
		FROM household_members
		WHERE household_id = $1
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.HouseholdMember
	for rows.Next() {
		m := &domain.HouseholdMember{}
		if err := rows.Scan(&m.HouseholdID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
