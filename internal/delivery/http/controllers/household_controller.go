package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http/helpers"
	"github.com/Viraj-FG/Techcentral-sub004/internal/delivery/http/middleware"
	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

// CreateHouseholdRequest is the request body for POST /households
type CreateHouseholdRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateHouseholdRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// JoinRequest is the request body for POST /join
type JoinRequest struct {
	Token string `json:"token"`
}

// HouseholdResponse is the response body for GET /households/me
type HouseholdResponse struct {
	Household *domain.Household         `json:"household"`
	Members   []*domain.HouseholdMember `json:"members"`
}

// HouseholdController handles household lifecycle and membership endpoints.
type HouseholdController struct {
	Logger  *slog.Logger
	Service domain.HouseholdService
}

// NewHouseholdController creates a HouseholdController with the given logger and service.
func NewHouseholdController(logger *slog.Logger, svc domain.HouseholdService) *HouseholdController {
	return &HouseholdController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a household
// @Description Create a household and add the authenticated user as its admin. Fails if the user already belongs to a household.
// @Tags households
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateHouseholdRequest true "Household name"
// @Success 201 {object} domain.Household
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /households [post]
func (c *HouseholdController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req CreateHouseholdRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	household, err := c.Service.Create(r.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyInHousehold) {
			helpers.WriteJSONError(w, http.StatusConflict, "you already belong to a household")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to create household")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, household)
}

// Join godoc
// @Summary Join a household via invite token
// @Description Redeem a signed invite token and add the authenticated user to the household as a member. Rejoining the same household is a no-op.
// @Tags households
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body JoinRequest true "Invite token"
// @Success 200 {object} domain.Household
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /join [post]
func (c *HouseholdController) Join(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req JoinRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	household, err := c.Service.Join(r.Context(), userID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingInviteToken):
			helpers.WriteJSONError(w, http.StatusBadRequest, "token is required")
		case errors.Is(err, domain.ErrInviteExpired):
			helpers.WriteJSONError(w, http.StatusBadRequest, "invite link has expired")
		case errors.Is(err, domain.ErrMalformedInviteToken), errors.Is(err, domain.ErrInvalidInviteToken):
			helpers.WriteJSONError(w, http.StatusBadRequest, "invalid or expired token")
		case errors.Is(err, domain.ErrAlreadyInHousehold):
			helpers.WriteJSONError(w, http.StatusConflict, "you already belong to a household")
		case errors.Is(err, domain.ErrHouseholdNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "household not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to join household")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, household)
}

// GetMine godoc
// @Summary Get current household
// @Description Returns the authenticated user's household and its members.
// @Tags households
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.HouseholdResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /households/me [get]
func (c *HouseholdController) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	household, members, err := c.Service.GetMine(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotInHousehold):
			helpers.WriteJSONError(w, http.StatusNotFound, "you are not in a household")
		case errors.Is(err, domain.ErrHouseholdNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "household not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to load household")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, HouseholdResponse{Household: household, Members: members})
}
