package controllers

import (
	"errors"
	"net/http"

	"github.com/dnstock/realty-backend/internal/dtos"
	"github.com/dnstock/realty-backend/internal/services"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

type AuthController struct {
	authService services.AuthService
	runner      repositories.ContextRunner
}

func NewAuthController(authService services.AuthService, runner repositories.ContextRunner) *AuthController {
	return &AuthController{authService: authService, runner: runner}
}

// POST /api/v1/auth/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var (
		user            *models.User
		access, refresh string
	)
	err := c.runner(r.Context(), nil, func(rc *repositories.RequestContext) error {
		var err error
		user, access, refresh, err = c.authService.Login(rc, req.Email, req.Password)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidCredentials), errors.Is(err, utils.ErrInactiveUser):
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil,
			)
		default:
			utils.RespondErrorWithCode(
				w, http.StatusInternalServerError, utils.ErrCodeInternal, "Login failed", nil, err,
			)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// POST /api/v1/auth/refresh
func (c *AuthController) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RefreshRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var access, refresh string
	err := c.runner(r.Context(), nil, func(rc *repositories.RequestContext) error {
		var err error
		access, refresh, err = c.authService.Refresh(rc, req.RefreshToken)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidToken), errors.Is(err, utils.ErrInactiveUser):
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid refresh token", nil,
			)
		default:
			utils.RespondErrorWithCode(
				w, http.StatusInternalServerError, utils.ErrCodeInternal, "Token refresh failed", nil, err,
			)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.RefreshResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}
