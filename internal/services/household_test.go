package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viraj-FG/Techcentral-sub004/internal/adapters/invitetoken"
	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

func newHouseholdFixture(t *testing.T) (domain.HouseholdService, *fakeMemberRepo, *fakeHouseholdRepo, domain.InviteTokenCodec) {
	t.Helper()
	members := newFakeMemberRepo()
	households := newFakeHouseholdRepo()
	codec := invitetoken.NewCodec("test-secret")
	inviteSvc := NewInviteService(members, households, newFakeUserRepo(), codec, nil, "https://app.example.com")
	svc := NewHouseholdService(households, members, inviteSvc)
	return svc, members, households, codec
}

func signInvite(t *testing.T, codec domain.InviteTokenCodec, householdID, name, inviterID string, expiresAt time.Time) string {
	t.Helper()
	token, err := codec.Sign(domain.InviteClaims{
		HouseholdID:   householdID,
		HouseholdName: name,
		InviterID:     inviterID,
		IssuedAt:      time.Now(),
		ExpiresAt:     expiresAt,
	})
	require.NoError(t, err)
	return token
}

func TestHouseholdService_Create_BootstrapsAdmin(t *testing.T) {
	ctx := context.Background()
	svc, members, _, _ := newHouseholdFixture(t)

	household, err := svc.Create(ctx, "user-a", "Smiths")
	require.NoError(t, err)
	require.NotEmpty(t, household.ID)
	assert.Equal(t, "Smiths", household.Name)

	member, err := members.GetByUserID(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, member.Role)
	assert.Equal(t, household.ID, member.HouseholdID)
}

func TestHouseholdService_Create_AlreadyInHousehold(t *testing.T) {
	ctx := context.Background()
	svc, members, households, _ := newHouseholdFixture(t)
	seedHousehold(members, households, "h1", "Smiths", "user-a")

	_, err := svc.Create(ctx, "user-a", "Another")
	require.ErrorIs(t, err, domain.ErrAlreadyInHousehold)
}

func TestHouseholdService_Create_EmptyName(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newHouseholdFixture(t)

	_, err := svc.Create(ctx, "user-a", "   ")
	require.Error(t, err)
}

func TestHouseholdService_Join(t *testing.T) {
	ctx := context.Background()
	svc, members, households, codec := newHouseholdFixture(t)
	seedHousehold(members, households, "h1", "Smiths", "user-a")
	token := signInvite(t, codec, "h1", "Smiths", "user-a", time.Now().Add(time.Hour))

	household, err := svc.Join(ctx, "user-b", token)
	require.NoError(t, err)
	assert.Equal(t, "h1", household.ID)

	member, err := members.GetByUserID(ctx, "user-b")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, member.Role)
}

func TestHouseholdService_Join_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc, members, households, codec := newHouseholdFixture(t)
	seedHousehold(members, households, "h1", "Smiths", "user-a")
	token := signInvite(t, codec, "h1", "Smiths", "user-a", time.Now().Add(-time.Minute))

	_, err := svc.Join(ctx, "user-b", token)
	require.ErrorIs(t, err, domain.ErrInviteExpired)

	_, err = members.GetByUserID(ctx, "user-b")
	require.ErrorIs(t, err, domain.ErrNotInHousehold)
}

func TestHouseholdService_Join_SameHouseholdIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, members, households, codec := newHouseholdFixture(t)
	seedHousehold(members, households, "h1", "Smiths", "user-a")
	token := signInvite(t, codec, "h1", "Smiths", "user-a", time.Now().Add(time.Hour))

	_, err := svc.Join(ctx, "user-b", token)
	require.NoError(t, err)
	added := len(members.added)

	household, err := svc.Join(ctx, "user-b", token)
	require.NoError(t, err)
	assert.Equal(t, "h1", household.ID)
	assert.Equal(t, added, len(members.added), "re-join must not add another membership")
}

func TestHouseholdService_Join_OtherHouseholdConflicts(t *testing.T) {
	ctx := context.Background()
	svc, members, households, codec := newHouseholdFixture(t)
	seedHousehold(members, households, "h1", "Smiths", "user-a")
	seedHousehold(members, households, "h2", "Jones", "user-c")
	token := signInvite(t, codec, "h2", "Jones", "user-c", time.Now().Add(time.Hour))

	_, err := svc.Join(ctx, "user-a", token)
	require.ErrorIs(t, err, domain.ErrAlreadyInHousehold)
}

func TestHouseholdService_GetMine(t *testing.T) {
	ctx := context.Background()
	svc, members, households, _ := newHouseholdFixture(t)
	seedHousehold(members, households, "h1", "Smiths", "user-a")

	household, list, err := svc.GetMine(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "h1", household.ID)
	require.Len(t, list, 1)
	assert.Equal(t, domain.RoleAdmin, list[0].Role)

	_, _, err = svc.GetMine(ctx, "stranger")
	require.ErrorIs(t, err, domain.ErrNotInHousehold)
}
