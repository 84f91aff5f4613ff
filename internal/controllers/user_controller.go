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

type UserController struct {
	authService services.AuthService
	userRepo    repositories.UserRepository
	runner      repositories.ContextRunner
}

func NewUserController(
	authService services.AuthService,
	userRepo repositories.UserRepository,
	runner repositories.ContextRunner,
) *UserController {
	return &UserController{authService: authService, userRepo: userRepo, runner: runner}
}

// POST /api/v1/users
func (c *UserController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var user *models.User
	err := c.runner(r.Context(), nil, func(rc *repositories.RequestContext) error {
		var err error
		user, err = c.authService.Register(rc, req)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmailExists), errors.Is(err, utils.ErrConflict):
			utils.RespondErrorWithCode(
				w, http.StatusConflict, utils.ErrCodeConflict, "Email is already registered", nil,
			)
		default:
			utils.RespondErrorWithCode(
				w, http.StatusInternalServerError, utils.ErrCodeInternal, "Registration failed", nil, err,
			)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, user)
}

// GET /api/v1/users/me
func (c *UserController) GetMeHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// PUT /api/v1/users/me
func (c *UserController) UpdateMeHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}

	var req dtos.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*models.User, error) {
			return c.userRepo.Update(rc, req.Fields(), user.ID)
		})
}
