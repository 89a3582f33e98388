package domain

import (
	"context"
	"errors"
	"time"
)

// Membership roles within a household.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Sentinel errors for household operations.
var (
	ErrHouseholdNotFound  = errors.New("household not found")
	ErrNotInHousehold     = errors.New("user is not in a household")
	ErrAlreadyInHousehold = errors.New("user already belongs to a household")
)

// Household represents a group of users sharing an inventory.
// swagger:model Household
type Household struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewHousehold returns a new Household with the given name. ID is set by the repository on create.
func NewHousehold(name string, createdAt, updatedAt time.Time) *Household {
	return &Household{Name: name, CreatedAt: createdAt, UpdatedAt: updatedAt}
}

// HouseholdMember links a user to a household with a role (admin or member).
// swagger:model HouseholdMember
type HouseholdMember struct {
	HouseholdID string    `json:"household_id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// HouseholdRepository defines the interface for household storage
type HouseholdRepository interface {
	Create(ctx context.Context, h *Household) error
	GetByID(ctx context.Context, id string) (*Household, error)
}

// HouseholdMemberRepository defines the interface for membership storage.
// Add is idempotent: inserting an existing (household, user) pair is a no-op.
type HouseholdMemberRepository interface {
	Add(ctx context.Context, m *HouseholdMember) error
	GetByUserID(ctx context.Context, userID string) (*HouseholdMember, error)
	ListByHouseholdID(ctx context.Context, householdID string) ([]*HouseholdMember, error)
}

// HouseholdService defines the business logic for household lifecycle and membership.
type HouseholdService interface {
	Create(ctx context.Context, userID, name string) (*Household, error)
	Join(ctx context.Context, userID, inviteToken string) (*Household, error)
	GetMine(ctx context.Context, userID string) (*Household, []*HouseholdMember, error)
}
