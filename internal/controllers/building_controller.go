package controllers

import (
	"net/http"

	"github.com/dnstock/realty-backend/internal/dtos"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

type BuildingController struct {
	buildingRepo repositories.BuildingRepository
	runner       repositories.ContextRunner
}

func NewBuildingController(buildingRepo repositories.BuildingRepository, runner repositories.ContextRunner) *BuildingController {
	return &BuildingController{buildingRepo: buildingRepo, runner: runner}
}

// GET /api/v1/buildings
func (c *BuildingController) ListHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Building], error) {
			return c.buildingRepo.GetPage(rc, skip, limit)
		})
}

// GET /api/v1/properties/{parentId}/buildings
func (c *BuildingController) ListForPropertyHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	propertyID, err := pathID(r, "parentId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Building], error) {
			if err := repositories.AuthorizeOwnership(rc, "Property", propertyID); err != nil {
				return nil, err
			}
			return c.buildingRepo.GetPageForParent(rc, propertyID, skip, limit)
		})
}

// GET /api/v1/buildings/{id}
func (c *BuildingController) GetHandler(w http.ResponseWriter, r *http.Request) {
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
		func(rc *repositories.RequestContext) (*models.Building, error) {
			return c.buildingRepo.GetByID(rc, id)
		})
}

// POST /api/v1/properties/{parentId}/buildings
func (c *BuildingController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	propertyID, err := pathID(r, "parentId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.CreateBuildingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusCreated,
		func(rc *repositories.RequestContext) (*models.Building, error) {
			if err := repositories.AuthorizeOwnership(rc, "Property", propertyID); err != nil {
				return nil, err
			}
			return c.buildingRepo.Create(rc, req.Fields(), propertyID)
		})
}

// PUT /api/v1/buildings/{id}
func (c *BuildingController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.UpdateBuildingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*models.Building, error) {
			return c.buildingRepo.Update(rc, req.Fields(), id)
		})
}
