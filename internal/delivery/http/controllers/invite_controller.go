package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http/helpers"
	"github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http/middleware"
	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

// CreateInviteLinkRequest is the optional request body for POST /create-invite-link.
// When email is set, the invite link is also sent to that address.
type CreateInviteLinkRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (c CreateInviteLinkRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email != "" && !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// CreateInviteLinkResponse is the response body for POST /create-invite-link.
type CreateInviteLinkResponse struct {
	InviteURL string `json:"inviteUrl"`
}

// VerifyInviteRequest is the request body for POST /verify-invite.
type VerifyInviteRequest struct {
	Token string `json:"token"`
}

// InviteController handles invite link issuance and verification.
type InviteController struct {
	Logger  *slog.Logger
	Service domain.InviteService
}

// NewInviteController creates an InviteController with the given logger and service.
func NewInviteController(logger *slog.Logger, svc domain.InviteService) *InviteController {
	return &InviteController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateInviteLink godoc
// @Summary Create an invite link
// @Description Mints a signed invite link for the requester's household, valid for 24 hours. Optional email in the body sends the link to that address. Requires Bearer token.
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateInviteLinkRequest false "Optional recipient email"
// @Success 200 {object} controllers.CreateInviteLinkResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /create-invite-link [post]
func (c *InviteController) CreateInviteLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// The body is optional; an empty body means a link-only invite.
	var req CreateInviteLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, strings.Join(errs, "; "))
		return
	}

	inviteURL, err := c.Service.CreateInviteLink(r.Context(), userID, strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotInHousehold):
			helpers.WriteJSONError(w, http.StatusBadRequest, "you are not in a household")
		case errors.Is(err, domain.ErrHouseholdNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "household not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to create invite link")
		}
		return
	}

	helpers.WriteJSON(w, http.StatusOK, CreateInviteLinkResponse{InviteURL: inviteURL})
}

// VerifyInvite godoc
// @Summary Verify an invite token
// @Description Validates the token's signature and expiry and returns the embedded household id, household name, and inviter id. Has no side effects.
// @Tags invites
// @Accept json
// @Produce json
// @Param body body VerifyInviteRequest true "Invite token"
// @Success 200 {object} domain.InviteVerification
// @Failure 400 {object} helpers.ErrorResponse
// @Router /verify-invite [post]
func (c *InviteController) VerifyInvite(w http.ResponseWriter, r *http.Request) {
	var req VerifyInviteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	verification, err := c.Service.VerifyInvite(req.Token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingInviteToken):
			helpers.WriteJSONError(w, http.StatusBadRequest, "token is required")
		case errors.Is(err, domain.ErrInviteExpired):
			helpers.WriteJSONError(w, http.StatusBadRequest, "invite link has expired")
		case errors.Is(err, domain.ErrMalformedInviteToken), errors.Is(err, domain.ErrInvalidInviteToken):
			helpers.WriteJSONError(w, http.StatusBadRequest, "invalid or expired token")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusBadRequest, "invalid or expired token")
		}
		return
	}

	helpers.WriteJSON(w, http.StatusOK, verification)
}
