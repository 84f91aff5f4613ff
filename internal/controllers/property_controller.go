package controllers

import (
	"net/http"

	"github.com/dnstock/realty-backend/internal/dtos"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

type PropertyController struct {
	propertyRepo repositories.PropertyRepository
	runner       repositories.ContextRunner
}

func NewPropertyController(propertyRepo repositories.PropertyRepository, runner repositories.ContextRunner) *PropertyController {
	return &PropertyController{propertyRepo: propertyRepo, runner: runner}
}

// GET /api/v1/properties
func (c *PropertyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Property], error) {
			return c.propertyRepo.GetPage(rc, skip, limit)
		})
}

// GET /api/v1/properties/{id}
func (c *PropertyController) GetHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*models.Property, error) {
			return c.propertyRepo.GetByID(rc, id)
		})
}

// POST /api/v1/properties
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	var req dtos.CreatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusCreated,
		func(rc *repositories.RequestContext) (*models.Property, error) {
			return c.propertyRepo.Create(rc, req.Fields())
		})
}

// PUT /api/v1/properties/{id}
func (c *PropertyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.UpdatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*models.Property, error) {
			return c.propertyRepo.Update(rc, req.Fields(), id)
		})
}
