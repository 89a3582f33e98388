package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

type householdRepository struct {
	DB *sql.DB
}

func NewHouseholdRepository(db *sql.DB) domain.HouseholdRepository {
	return &householdRepository{DB: db}
}

func (r *householdRepository) Create(ctx context.Context, h *domain.Household) error {
	query := `
		INSERT INTO households (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, h.Name, h.CreatedAt, h.UpdatedAt).Scan(&h.ID)
}

func (r *householdRepository) GetByID(ctx context.Context, id string) (*domain.Household, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM households
		WHERE id = $1
	`
	h := &domain.Household{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&h.ID, &h.Name, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrHouseholdNotFound
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}
