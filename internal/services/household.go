package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

type householdService struct {
	householdRepo domain.HouseholdRepository
	memberRepo    domain.HouseholdMemberRepository
	inviteService domain.InviteService
}

// NewHouseholdService creates a HouseholdService with the given repositories
// and the invite service used to verify join tokens.
func NewHouseholdService(householdRepo domain.HouseholdRepository, memberRepo domain.HouseholdMemberRepository, inviteService domain.InviteService) domain.HouseholdService {
	return &householdService{
		householdRepo: householdRepo,
		memberRepo:    memberRepo,
		inviteService: inviteService,
	}
}

// Create makes a new household and adds the creator as its admin.
func (s *householdService) Create(ctx context.Context, userID, name string) (*domain.Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("household name is required")
	}
	if err := s.ensureNotInHousehold(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	household := domain.NewHousehold(name, now, now)
	if err := s.householdRepo.Create(ctx, household); err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}
	member := &domain.HouseholdMember{
		HouseholdID: household.ID,
		UserID:      userID,
		Role:        domain.RoleAdmin,
		CreatedAt:   now,
	}
	if err := s.memberRepo.Add(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add admin member: %w", err)
	}
	return household, nil
}

// Join redeems an invite token for the given user. Verification has no side
// effect on the token; a valid token can be redeemed again until it expires.
func (s *householdService) Join(ctx context.Context, userID, inviteToken string) (*domain.Household, error) {
	verification, err := s.inviteService.VerifyInvite(inviteToken)
	if err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.GetByUserID(ctx, userID)
	if err == nil {
		if existing.HouseholdID == verification.HouseholdID {
			// Re-joining the same household is a no-op.
			return s.householdRepo.GetByID(ctx, verification.HouseholdID)
		}
		return nil, domain.ErrAlreadyInHousehold
	}
	if !errors.Is(err, domain.ErrNotInHousehold) {
		return nil, err
	}

	member := &domain.HouseholdMember{
		HouseholdID: verification.HouseholdID,
		UserID:      userID,
		Role:        domain.RoleMember,
		CreatedAt:   time.Now(),
	}
	if err := s.memberRepo.Add(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return s.householdRepo.GetByID(ctx, verification.HouseholdID)
}

// GetMine returns the user's household and its member list.
func (s *householdService) GetMine(ctx context.Context, userID string) (*domain.Household, []*domain.HouseholdMember, error) {
	member, err := s.memberRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	household, err := s.householdRepo.GetByID(ctx, member.HouseholdID)
	if err != nil {
		return nil, nil, err
	}
	members, err := s.memberRepo.ListByHouseholdID(ctx, household.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list members: %w", err)
	}
	return household, members, nil
}

func (s *householdService) ensureNotInHousehold(ctx context.Context, userID string) error {
	_, err := s.memberRepo.GetByUserID(ctx, userID)
	if err == nil {
		return domain.ErrAlreadyInHousehold
	}
	if !errors.Is(err, domain.ErrNotInHousehold) {
		return err
	}
	return nil
}
