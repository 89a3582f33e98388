package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

type inviteService struct {
	memberRepo    domain.HouseholdMemberRepository
	householdRepo domain.HouseholdRepository
	userRepo      domain.UserRepository
	codec         domain.InviteTokenCodec
	emailService  domain.EmailService
	appOrigin     string
}

// NewInviteService creates an InviteService. appOrigin is the base URL the
// invite link points at (e.g. https://app.example.com). emailService may be
// nil; invites are then link-only.
func NewInviteService(memberRepo domain.HouseholdMemberRepository, householdRepo domain.HouseholdRepository, userRepo domain.UserRepository, codec domain.InviteTokenCodec, emailService domain.EmailService, appOrigin string) domain.InviteService {
	return &inviteService{
		memberRepo:    memberRepo,
		householdRepo: householdRepo,
		userRepo:      userRepo,
		codec:         codec,
		emailService:  emailService,
		appOrigin:     strings.TrimSuffix(appOrigin, "/"),
	}
}

// CreateInviteLink mints a signed invite link for the requester's household.
// Nothing is persisted; the token is the sole carrier of the invite.
func (s *inviteService) CreateInviteLink(ctx context.Context, requesterID, recipientEmail string) (string, error) {
	member, err := s.memberRepo.GetByUserID(ctx, requesterID)
	if err != nil {
		return "", err
	}
	household, err := s.householdRepo.GetByID(ctx, member.HouseholdID)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := domain.InviteClaims{
		HouseholdID:   household.ID,
		HouseholdName: household.Name,
		InviterID:     requesterID,
		IssuedAt:      now,
		ExpiresAt:     now.Add(domain.InviteTTL),
	}
	token, err := s.codec.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("failed to sign invite: %w", err)
	}
	inviteURL := s.appOrigin + "/join?token=" + url.QueryEscape(token)

	if recipientEmail != "" && s.emailService != nil {
		inviterName := requesterID
		if inviter, err := s.userRepo.GetByID(ctx, requesterID); err == nil && inviter.Name != "" {
			inviterName = inviter.Name
		}
		data := &domain.InviteEmailData{
			Email:          recipientEmail,
			InviterName:    inviterName,
			HouseholdName:  household.Name,
			InviteURL:      inviteURL,
			ExpiresInHours: int(domain.InviteTTL / time.Hour),
		}
		// Delivery is best effort; the caller still gets the URL.
		if err := s.emailService.SendInvite(ctx, data); err != nil {
			log.Printf("[INVITE] Failed to send invite email to %s: %v", recipientEmail, err)
		}
	}

	return inviteURL, nil
}

// VerifyInvite checks the token signature and expiry and returns the claims a
// client needs to render the join screen. It has no side effects.
func (s *inviteService) VerifyInvite(token string) (*domain.InviteVerification, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.ErrMissingInviteToken
	}
	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, err
	}
	if time.Now().After(claims.ExpiresAt) {
		return nil, domain.ErrInviteExpired
	}
	return &domain.InviteVerification{
		HouseholdID:   claims.HouseholdID,
		HouseholdName: claims.HouseholdName,
		InviterID:     claims.InviterID,
	}, nil
}
