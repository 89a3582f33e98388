package invitetoken

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

type inviteClaims struct {
	jwt.RegisteredClaims
	HouseholdID   string `json:"household_id"`
	HouseholdName string `json:"household_name"`
}

type codec struct {
	secret []byte
}

// NewCodec returns an InviteTokenCodec that signs invite claims with HS256
// using the given secret. The secret is process-wide configuration and must
// be shared by issuer and verifier.
func NewCodec(secret string) domain.InviteTokenCodec {
	return &codec{secret: []byte(secret)}
}

func (c *codec) Sign(claims domain.InviteClaims) (string, error) {
	jc := inviteClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.InviterID,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
		HouseholdID:   claims.HouseholdID,
		HouseholdName: claims.HouseholdName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jc)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign invite token: %w", err)
	}
	return tokenString, nil
}

// Verify checks the token's structure and signature only. Expiry is not
// evaluated here; callers compare the returned ExpiresAt against their clock
// so an expired token can be distinguished from a forged one.
func (c *codec) Verify(token string) (domain.InviteClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	parsed, err := parser.ParseWithClaims(token, &inviteClaims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return domain.InviteClaims{}, domain.ErrMalformedInviteToken
		}
		return domain.InviteClaims{}, domain.ErrInvalidInviteToken
	}
	jc, ok := parsed.Claims.(*inviteClaims)
	if !ok || jc.ExpiresAt == nil || jc.IssuedAt == nil {
		return domain.InviteClaims{}, domain.ErrMalformedInviteToken
	}
	return domain.InviteClaims{
		HouseholdID:   jc.HouseholdID,
		HouseholdName: jc.HouseholdName,
		InviterID:     jc.Subject,
		IssuedAt:      jc.IssuedAt.Time,
		ExpiresAt:     jc.ExpiresAt.Time,
	}, nil
}
