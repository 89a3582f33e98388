package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http/helpers"
	"github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http/middleware"
	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

// fakeInviteService implements domain.InviteService for handler tests.
type fakeInviteService struct {
	inviteURL    string
	createErr    error
	lastEmail    string
	verification *domain.InviteVerification
	verifyErr    error
	lastToken    string
}

func (f *fakeInviteService) CreateInviteLink(ctx context.Context, requesterID, recipientEmail string) (string, error) {
	f.lastEmail = recipientEmail
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.inviteURL, nil
}

func (f *fakeInviteService) VerifyInvite(token string) (*domain.InviteVerification, error) {
	f.lastToken = token
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.verification, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestInviteController_CreateInviteLink(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		body          string
		fake          *fakeInviteService
		wantStatus    int
		wantURL       string
		wantErrBody   string
	}{
		{
			name:          "success without body",
			authenticated: true,
			fake:          &fakeInviteService{inviteURL: "https://app.example.com/join?token=abc"},
			wantStatus:    http.StatusOK,
			wantURL:       "https://app.example.com/join?token=abc",
		},
		{
			name:          "success with recipient email",
			authenticated: true,
			body:          `{"email":"bob@example.com"}`,
			fake:          &fakeInviteService{inviteURL: "https://app.example.com/join?token=abc"},
			wantStatus:    http.StatusOK,
			wantURL:       "https://app.example.com/join?token=abc",
		},
		{
			name:          "invalid email",
			authenticated: true,
			body:          `{"email":"not-an-email"}`,
			fake:          &fakeInviteService{},
			wantStatus:    http.StatusBadRequest,
			wantErrBody:   "invalid email format",
		},
		{
			name:          "unauthenticated",
			authenticated: false,
			fake:          &fakeInviteService{},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "not in household",
			authenticated: true,
			fake:          &fakeInviteService{createErr: domain.ErrNotInHousehold},
			wantStatus:    http.StatusBadRequest,
			wantErrBody:   "you are not in a household",
		},
		{
			name:          "household not found",
			authenticated: true,
			fake:          &fakeInviteService{createErr: domain.ErrHouseholdNotFound},
			wantStatus:    http.StatusNotFound,
		},
		{
			name:          "internal error",
			authenticated: true,
			fake:          &fakeInviteService{createErr: assert.AnError},
			wantStatus:    http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewInviteController(discardLogger(), tt.fake)

			var body io.Reader
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			}
			req := httptest.NewRequest(http.MethodPost, "http://test/create-invite-link", body)
			if tt.authenticated {
				req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			}
			rr := httptest.NewRecorder()

			ctrl.CreateInviteLink(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantURL != "" {
				var resp CreateInviteLinkResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantURL, resp.InviteURL)
			}
			if tt.wantErrBody != "" {
				var resp helpers.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Contains(t, resp.Error, tt.wantErrBody)
			}
		})
	}
}

func TestInviteController_VerifyInvite(t *testing.T) {
	verification := &domain.InviteVerification{
		HouseholdID:   "h1",
		HouseholdName: "Smiths",
		InviterID:     "user-a",
	}

	tests := []struct {
		name        string
		body        string
		fake        *fakeInviteService
		wantStatus  int
		wantErrBody string
	}{
		{
			name:       "success",
			body:       `{"token":"some-token"}`,
			fake:       &fakeInviteService{verification: verification},
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing token",
			body:        `{"token":""}`,
			fake:        &fakeInviteService{verifyErr: domain.ErrMissingInviteToken},
			wantStatus:  http.StatusBadRequest,
			wantErrBody: "token is required",
		},
		{
			name:        "expired",
			body:        `{"token":"old"}`,
			fake:        &fakeInviteService{verifyErr: domain.ErrInviteExpired},
			wantStatus:  http.StatusBadRequest,
			wantErrBody: "invite link has expired",
		},
		{
			name:        "invalid signature",
			body:        `{"token":"forged"}`,
			fake:        &fakeInviteService{verifyErr: domain.ErrInvalidInviteToken},
			wantStatus:  http.StatusBadRequest,
			wantErrBody: "invalid or expired token",
		},
		{
			name:        "malformed",
			body:        `{"token":"garbage"}`,
			fake:        &fakeInviteService{verifyErr: domain.ErrMalformedInviteToken},
			wantStatus:  http.StatusBadRequest,
			wantErrBody: "invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewInviteController(discardLogger(), tt.fake)

			req := httptest.NewRequest(http.MethodPost, "http://test/verify-invite", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.VerifyInvite(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var resp domain.InviteVerification
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, *verification, resp)
			}
			if tt.wantErrBody != "" {
				var resp helpers.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Contains(t, resp.Error, tt.wantErrBody)
			}
		})
	}
}
