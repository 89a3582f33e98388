package domain

import (
	"context"
	"errors"
	"time"
)

// InviteTTL is the fixed lifetime of an invite link. Not configurable.
const InviteTTL = 24 * time.Hour

// Sentinel errors for invite token handling.
var (
	ErrMissingInviteToken   = errors.New("invite token is missing")
	ErrMalformedInviteToken = errors.New("invite token is malformed")
	ErrInvalidInviteToken   = errors.New("invite token signature is invalid")
	ErrInviteExpired        = errors.New("invite token has expired")
)

// InviteClaims is the payload embedded in a signed invite token.
// HouseholdName is a snapshot taken at issuance time and is not refreshed
// if the household is later renamed.
type InviteClaims struct {
	HouseholdID   string
	HouseholdName string
	InviterID     string
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

// InviteTokenCodec produces and checks the tamper-evident invite token.
// Verify checks structure and signature only; expiry is evaluated by the
// caller against the returned ExpiresAt claim.
type InviteTokenCodec interface {
	Sign(claims InviteClaims) (string, error)
	Verify(token string) (InviteClaims, error)
}

// InviteVerification is the subset of claims returned to redeeming clients.
type InviteVerification struct {
	HouseholdID   string `json:"household_id"`
	HouseholdName string `json:"household_name"`
	InviterID     string `json:"inviter_id"`
}

// InviteService defines the business logic for invite link issuance and verification.
type InviteService interface {
	CreateInviteLink(ctx context.Context, requesterID, recipientEmail string) (inviteURL string, err error)
	VerifyInvite(token string) (*InviteVerification, error)
}
