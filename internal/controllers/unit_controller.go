package controllers

import (
	"net/http"

	"github.com/dnstock/realty-backend/internal/dtos"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

type UnitController struct {
	unitRepo repositories.UnitRepository
	runner   repositories.ContextRunner
}

func NewUnitController(unitRepo repositories.UnitRepository, runner repositories.ContextRunner) *UnitController {
	return &UnitController{unitRepo: unitRepo, runner: runner}
}

// GET /api/v1/units
func (c *UnitController) ListHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Unit], error) {
			return c.unitRepo.GetPage(rc, skip, limit)
		})
}

// GET /api/v1/buildings/{parentId}/units
func (c *UnitController) ListForBuildingHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	buildingID, err := pathID(r, "parentId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Unit], error) {
			if err := repositories.AuthorizeOwnership(rc, "Building", buildingID); err != nil {
				return nil, err
			}
			return c.unitRepo.GetPageForParent(rc, buildingID, skip, limit)
		})
}

// GET /api/v1/units/{id}
func (c *UnitController) GetHandler(w http.ResponseWriter, r *http.Request) {
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
		func(rc *repositories.RequestContext) (*models.Unit, error) {
			return c.unitRepo.GetByID(rc, id)
		})
}

// POST /api/v1/buildings/{parentId}/units
func (c *UnitController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	buildingID, err := pathID(r, "parentId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.CreateUnitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusCreated,
		func(rc *repositories.RequestContext) (*models.Unit, error) {
			if err := repositories.AuthorizeOwnership(rc, "Building", buildingID); err != nil {
				return nil, err
			}
			return c.unitRepo.Create(rc, req.Fields(), buildingID)
		})
}

// PUT /api/v1/units/{id}
func (c *UnitController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.UpdateUnitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*models.Unit, error) {
			return c.unitRepo.Update(rc, req.Fields(), id)
		})
}
